package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/inbound"
	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/channel_utils"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type indexedFile struct {
	index int
	path  string
}

type sceneAssetProducer struct {
	logger         outbound.LoggerPort
	workerPool     outbound.TaskDispatcher
	imageGenerator outbound.ImageGeneratorPort
	audioGenerator outbound.AudioGeneratorPort
	cardRenderer   outbound.CardRendererPort
	callTimeout    time.Duration
}

func NewSceneAssetProducer(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	imageGenerator outbound.ImageGeneratorPort, audioGenerator outbound.AudioGeneratorPort,
	cardRenderer outbound.CardRendererPort, callTimeout time.Duration) inbound.SceneAssetProducerPort {
	return &sceneAssetProducer{
		logger:         logger,
		workerPool:     workerPool,
		imageGenerator: imageGenerator,
		audioGenerator: audioGenerator,
		cardRenderer:   cardRenderer,
		callTimeout:    callTimeout,
	}
}

func (p *sceneAssetProducer) Produce(ctx context.Context, params inbound.ProduceAssetsParams) (*inbound.ProducedAssets, error) {
	style, ok := domain.StyleByID(params.Script.Style)
	if !ok {
		return nil, fmt.Errorf("unknown style %q", params.Script.Style)
	}
	characterHint := characterHint(params.Topic)

	imagesCh, imageErrCh := p.produceSceneImages(ctx, params, style, characterHint)
	audioCh, audioErrCh := p.produceSceneAudio(ctx, params)
	titleCh, titleErrCh := p.produceTitleAssets(ctx, params, style)

	mergedErrCh, err := channel_utils.MergeChannels(p.workerPool, imageErrCh, audioErrCh, titleErrCh)
	if err != nil {
		p.logger.Error(err, "failed to merge asset error channels")
		return nil, err
	}

	assets := &inbound.ProducedAssets{
		Scenes: make([]domain.SceneAsset, len(params.Script.Scenes)),
	}
	for i := range assets.Scenes {
		assets.Scenes[i].Index = i
	}

	for imagesCh != nil || audioCh != nil || titleCh != nil {
		select {
		case file, ok := <-imagesCh:
			if !ok {
				imagesCh = nil
				continue
			}
			assets.Scenes[file.index].ImagePath = file.path
		case file, ok := <-audioCh:
			if !ok {
				audioCh = nil
				continue
			}
			assets.Scenes[file.index].AudioPath = file.path
		case title, ok := <-titleCh:
			if !ok {
				titleCh = nil
				continue
			}
			assets.Title = title
		case err, ok := <-mergedErrCh:
			if !ok {
				mergedErrCh = nil
				continue
			}
			p.logger.Error(err, "error in asset fan-out")
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return assets, nil
}

func (p *sceneAssetProducer) produceSceneImages(ctx context.Context, params inbound.ProduceAssetsParams,
	style domain.VisualStyle, characterHint string) (<-chan indexedFile, <-chan error) {
	out := make(chan indexedFile)
	errCh := make(chan error, len(params.Script.Scenes)+1)

	err := p.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		var wg sync.WaitGroup
		for i, scene := range params.Script.Scenes {
			index, concept := i, scene.VisualConcept
			wg.Add(1)
			submitErr := p.workerPool.Submit(func() {
				defer wg.Done()
				path := p.sceneImage(ctx, params, style, index, concept, characterHint)
				select {
				case out <- indexedFile{index: index, path: path}:
				case <-ctx.Done():
				}
			})
			if submitErr != nil {
				wg.Done()
				errCh <- submitErr
			}
		}
		wg.Wait()
	})
	if err != nil {
		errCh <- err
		close(out)
		close(errCh)
	}

	return out, errCh
}

// sceneImage writes the generated image for one scene, degrading to a locally
// rendered placeholder on upstream failure. An empty path means even the
// placeholder could not be produced.
func (p *sceneAssetProducer) sceneImage(ctx context.Context, params inbound.ProduceAssetsParams,
	style domain.VisualStyle, index int, concept string, characterHint string) string {
	callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()

	data, err := p.imageGenerator.Generate(callCtx, outbound.GenerateImageRequest{
		Concept:       concept,
		Style:         style,
		SceneIndex:    index,
		CharacterHint: characterHint,
	})
	if err != nil {
		p.logger.WarnWithFields("image generation degraded to placeholder", map[string]interface{}{
			"job_id": params.JobID,
			"scene":  index,
			"error":  err.Error(),
		})
		data, err = p.cardRenderer.RenderPlaceholder(style, index, concept)
		if err != nil {
			p.logger.Error(err, "failed to render placeholder image")
			return ""
		}
	}

	path := filepath.Join(params.WorkDir, fmt.Sprintf("%s_scene_%d.png", style.ID, index))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		p.logger.Error(err, "failed to write scene image")
		return ""
	}
	return path
}

func (p *sceneAssetProducer) produceSceneAudio(ctx context.Context, params inbound.ProduceAssetsParams) (<-chan indexedFile, <-chan error) {
	out := make(chan indexedFile)
	errCh := make(chan error, len(params.Script.Scenes)+1)

	err := p.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		var wg sync.WaitGroup
		for i, scene := range params.Script.Scenes {
			index, text := i, scene.Text
			wg.Add(1)
			submitErr := p.workerPool.Submit(func() {
				defer wg.Done()
				path := p.sceneAudio(ctx, params, index, text)
				select {
				case out <- indexedFile{index: index, path: path}:
				case <-ctx.Done():
				}
			})
			if submitErr != nil {
				wg.Done()
				errCh <- submitErr
			}
		}
		wg.Wait()
	})
	if err != nil {
		errCh <- err
		close(out)
		close(errCh)
	}

	return out, errCh
}

// sceneAudio writes one scene's narration. An empty path is the degrade
// marker; downstream drops the scene instead of failing the job.
func (p *sceneAssetProducer) sceneAudio(ctx context.Context, params inbound.ProduceAssetsParams, index int, text string) string {
	callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()

	data, err := p.audioGenerator.Generate(callCtx, outbound.GenerateAudioRequest{
		Text:    text,
		Speaker: params.Speaker,
	})
	if err != nil {
		p.logger.WarnWithFields("audio generation degraded to empty marker", map[string]interface{}{
			"job_id": params.JobID,
			"scene":  index,
			"error":  err.Error(),
		})
		return ""
	}

	path := filepath.Join(params.WorkDir, fmt.Sprintf("scene_%d.wav", index))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		p.logger.Error(err, "failed to write scene audio")
		return ""
	}
	return path
}

func (p *sceneAssetProducer) produceTitleAssets(ctx context.Context, params inbound.ProduceAssetsParams,
	style domain.VisualStyle) (<-chan domain.TitleAsset, <-chan error) {
	out := make(chan domain.TitleAsset)
	errCh := make(chan error, 1)

	err := p.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		title := domain.TitleAsset{
			ImagePath: p.titleImage(params, style),
			AudioPath: p.titleAudio(ctx, params),
		}
		select {
		case out <- title:
		case <-ctx.Done():
		}
	})
	if err != nil {
		errCh <- err
		close(out)
		close(errCh)
	}

	return out, errCh
}

func (p *sceneAssetProducer) titleImage(params inbound.ProduceAssetsParams, style domain.VisualStyle) string {
	data, err := p.cardRenderer.RenderTitleCard(style, params.Script.Title)
	if err != nil {
		p.logger.Error(err, "failed to render title card")
		return ""
	}
	path := filepath.Join(params.WorkDir, fmt.Sprintf("title_%s.png", style.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		p.logger.Error(err, "failed to write title card")
		return ""
	}
	return path
}

func (p *sceneAssetProducer) titleAudio(ctx context.Context, params inbound.ProduceAssetsParams) string {
	callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
	defer cancel()

	data, err := p.audioGenerator.Generate(callCtx, outbound.GenerateAudioRequest{
		Text:         params.Script.Title,
		Speaker:      params.Speaker,
		TitleReadout: true,
	})
	if err != nil {
		p.logger.WarnWithFields("title audio degraded to empty marker", map[string]interface{}{
			"job_id": params.JobID,
			"error":  err.Error(),
		})
		return ""
	}

	path := filepath.Join(params.WorkDir, "title_audio.wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		p.logger.Error(err, "failed to write title audio")
		return ""
	}
	return path
}

// characterHint asks image generation for a recurring character design when
// the topic is about people.
func characterHint(topic string) string {
	lowered := strings.ToLower(topic)
	if strings.Contains(topic, "人") || strings.Contains(lowered, "people") || strings.Contains(lowered, "person") {
		return "same consistent character design throughout all scenes"
	}
	return ""
}
