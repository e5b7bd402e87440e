package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/inbound"
	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/config"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type pipelineOrchestrator struct {
	logger          outbound.LoggerPort
	jobStore        outbound.JobStorePort
	progressCache   outbound.ProgressCachePort
	scriptGenerator outbound.ScriptGeneratorPort
	assetProducer   inbound.SceneAssetProducerPort
	videoEncoder    outbound.VideoEncoderPort
	pipelineConfig  *config.PipelineConfig
}

func NewPipelineOrchestrator(logger outbound.LoggerPort, jobStore outbound.JobStorePort,
	progressCache outbound.ProgressCachePort, scriptGenerator outbound.ScriptGeneratorPort,
	assetProducer inbound.SceneAssetProducerPort, videoEncoder outbound.VideoEncoderPort,
	pipelineConfig *config.PipelineConfig) inbound.PipelineOrchestratorPort {
	return &pipelineOrchestrator{
		logger:          logger,
		jobStore:        jobStore,
		progressCache:   progressCache,
		scriptGenerator: scriptGenerator,
		assetProducer:   assetProducer,
		videoEncoder:    videoEncoder,
		pipelineConfig:  pipelineConfig,
	}
}

// Run drives one job through script generation, asset fan-out and encoding.
// Script and encode failures are fatal; per-asset failures degrade inside the
// producer. Every path ends in exactly one terminal store write.
func (o *pipelineOrchestrator) Run(ctx context.Context, job domain.Job) {
	progress := newProgressReporter(o.logger, o.progressCache, job.ID)

	if err := o.jobStore.MarkProcessing(ctx, job.ID); err != nil {
		o.logger.Error(err, "failed to mark job processing")
		return
	}
	progress.Report(ctx, 10, "generating script")

	script, err := o.scriptGenerator.Generate(ctx, outbound.GenerateScriptRequest{
		Topic: job.Topic,
		Style: job.Style,
	})
	if err != nil {
		o.fail(ctx, progress, job.ID, err.Error(), nil)
		return
	}
	progress.Report(ctx, 30, "script ready")

	workDir := filepath.Join(o.pipelineConfig.WorkDir, job.ID)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		o.fail(ctx, progress, job.ID, fmt.Sprintf("failed to create working directory: %v", err), nil)
		return
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			o.logger.Error(err, "failed to reclaim working directory")
		}
	}()

	assets, err := o.assetProducer.Produce(ctx, inbound.ProduceAssetsParams{
		JobID:   job.ID,
		Topic:   job.Topic,
		Script:  *script,
		Speaker: job.Speaker,
		WorkDir: workDir,
	})
	if err != nil {
		o.fail(ctx, progress, job.ID, fmt.Sprintf("asset generation failed: %v", err), nil)
		return
	}
	progress.Report(ctx, 70, "assets ready")

	segments, outcomes := joinSceneAssets(assets.Scenes)

	if err := os.MkdirAll(o.pipelineConfig.OutputDir, 0o755); err != nil {
		o.fail(ctx, progress, job.ID, fmt.Sprintf("failed to create output directory: %v", err), outcomes)
		return
	}
	outputPath := filepath.Join(o.pipelineConfig.OutputDir, job.ID+".mp4")

	resultPath, err := o.videoEncoder.Encode(ctx, outbound.EncodeRequest{
		Title: outbound.EncodeSegment{
			ImagePath: assets.Title.ImagePath,
			AudioPath: assets.Title.AudioPath,
		},
		Scenes:     segments,
		WorkDir:    workDir,
		OutputPath: outputPath,
	})
	if err != nil {
		o.fail(ctx, progress, job.ID, err.Error(), outcomes)
		return
	}

	if err := o.jobStore.MarkCompleted(ctx, job.ID, resultPath, outcomes); err != nil {
		o.logger.Error(err, "failed to mark job completed")
		return
	}
	progress.Report(ctx, 100, "completed")
	o.logger.InfoWithFields("video generation completed", map[string]interface{}{
		"job_id": job.ID,
		"result": resultPath,
	})
}

func (o *pipelineOrchestrator) fail(ctx context.Context, progress *progressReporter, jobID string,
	detail string, outcomes []domain.SceneOutcome) {
	if err := o.jobStore.MarkFailed(ctx, jobID, detail, outcomes); err != nil {
		o.logger.Error(err, "failed to mark job failed")
	}
	progress.Report(ctx, 0, "failed")
	o.logger.WarnWithFields("video generation failed", map[string]interface{}{
		"job_id": jobID,
		"detail": detail,
	})
}

// joinSceneAssets re-joins fan-out results by scene index and drops scenes
// missing either half of their image/audio pair. Relative order of survivors
// is the script order.
func joinSceneAssets(scenes []domain.SceneAsset) ([]outbound.EncodeSegment, []domain.SceneOutcome) {
	segments := make([]outbound.EncodeSegment, 0, len(scenes))
	outcomes := make([]domain.SceneOutcome, 0, len(scenes))
	for _, asset := range scenes {
		outcome := domain.SceneOutcome{Index: asset.Index, Included: true}
		switch {
		case asset.ImagePath == "":
			outcome.Included = false
			outcome.Reason = "image unavailable"
		case asset.AudioPath == "":
			outcome.Included = false
			outcome.Reason = "audio unavailable"
		default:
			segments = append(segments, outbound.EncodeSegment{
				ImagePath: asset.ImagePath,
				AudioPath: asset.AudioPath,
			})
		}
		outcomes = append(outcomes, outcome)
	}
	return segments, outcomes
}

// progressReporter writes advisory snapshots to the progress cache. Percent
// never decreases within one run; cache write failures are logged and
// swallowed because the job store stays authoritative.
type progressReporter struct {
	logger outbound.LoggerPort
	cache  outbound.ProgressCachePort
	jobID  string
	last   int
}

func newProgressReporter(logger outbound.LoggerPort, cache outbound.ProgressCachePort, jobID string) *progressReporter {
	return &progressReporter{
		logger: logger,
		cache:  cache,
		jobID:  jobID,
	}
}

func (r *progressReporter) Report(ctx context.Context, percent int, step string) {
	if percent < r.last {
		percent = r.last
	}
	r.last = percent
	err := r.cache.Put(ctx, r.jobID, domain.Progress{
		Percent: percent,
		Step:    step,
	})
	if err != nil {
		r.logger.WarnWithFields("failed to write progress snapshot", map[string]interface{}{
			"job_id": r.jobID,
			"error":  err.Error(),
		})
	}
}
