package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/inbound"
	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type fakeJobStore struct {
	mu   sync.Mutex
	jobs map[string]domain.Job

	createErr error
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[string]domain.Job)}
}

func (s *fakeJobStore) Create(_ context.Context, job domain.Job) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
	return nil
}

func (s *fakeJobStore) Get(_ context.Context, id string) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &job, nil
}

func (s *fakeJobStore) MarkProcessing(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !job.Status.Terminal() {
		job.Status = domain.JobProcessing
		s.jobs[id] = job
	}
	return nil
}

func (s *fakeJobStore) MarkCompleted(_ context.Context, id string, resultPath string, outcomes []domain.SceneOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !job.Status.Terminal() {
		job.Status = domain.JobCompleted
		job.ResultPath = resultPath
		job.SceneOutcomes = outcomes
		s.jobs[id] = job
	}
	return nil
}

func (s *fakeJobStore) MarkFailed(_ context.Context, id string, detail string, outcomes []domain.SceneOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !job.Status.Terminal() {
		job.Status = domain.JobFailed
		job.ErrorDetail = detail
		job.SceneOutcomes = outcomes
		s.jobs[id] = job
	}
	return nil
}

func (s *fakeJobStore) ListByUser(_ context.Context, userID string, limit int) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var jobs []domain.Job
	for _, job := range s.jobs {
		if job.UserID == userID && len(jobs) < limit {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

type fakeProgressCache struct {
	mu        sync.Mutex
	snapshots map[string][]domain.Progress

	putErr error
}

func newFakeProgressCache() *fakeProgressCache {
	return &fakeProgressCache{snapshots: make(map[string][]domain.Progress)}
}

func (c *fakeProgressCache) Put(_ context.Context, jobID string, progress domain.Progress) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[jobID] = append(c.snapshots[jobID], progress)
	return nil
}

func (c *fakeProgressCache) Get(_ context.Context, jobID string) (*domain.Progress, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	history := c.snapshots[jobID]
	if len(history) == 0 {
		return nil, nil
	}
	latest := history[len(history)-1]
	return &latest, nil
}

func (c *fakeProgressCache) Ping(_ context.Context) error {
	return nil
}

func (c *fakeProgressCache) history(jobID string) []domain.Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Progress(nil), c.snapshots[jobID]...)
}

type fakeScriptGenerator struct {
	script *domain.Script
	err    error
}

func (g *fakeScriptGenerator) Generate(_ context.Context, _ outbound.GenerateScriptRequest) (*domain.Script, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.script, nil
}

type fakeAssetProducer struct {
	assets *inbound.ProducedAssets
	err    error
}

func (p *fakeAssetProducer) Produce(_ context.Context, _ inbound.ProduceAssetsParams) (*inbound.ProducedAssets, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.assets, nil
}

type fakeVideoEncoder struct {
	err  error
	seen outbound.EncodeRequest
}

func (e *fakeVideoEncoder) Encode(_ context.Context, req outbound.EncodeRequest) (string, error) {
	e.seen = req
	if e.err != nil {
		return "", e.err
	}
	return req.OutputPath, nil
}

type fakeImageGenerator struct {
	failIndexes map[int]bool
}

func (g *fakeImageGenerator) Generate(_ context.Context, req outbound.GenerateImageRequest) ([]byte, error) {
	if g.failIndexes[req.SceneIndex] {
		return nil, errors.New("image upstream down")
	}
	return []byte(fmt.Sprintf("image-%d", req.SceneIndex)), nil
}

type fakeAudioGenerator struct {
	failTexts map[string]bool
}

func (g *fakeAudioGenerator) Generate(_ context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	if g.failTexts[req.Text] {
		return nil, errors.New("audio upstream down")
	}
	return []byte("audio:" + req.Text), nil
}

func (g *fakeAudioGenerator) Ping(_ context.Context) error {
	return nil
}

type fakeCardRenderer struct {
	failPlaceholder bool
}

func (r *fakeCardRenderer) RenderPlaceholder(_ domain.VisualStyle, sceneIndex int, _ string) ([]byte, error) {
	if r.failPlaceholder {
		return nil, errors.New("renderer down")
	}
	return []byte(fmt.Sprintf("placeholder-%d", sceneIndex)), nil
}

func (r *fakeCardRenderer) RenderTitleCard(_ domain.VisualStyle, _ string) ([]byte, error) {
	return []byte("title-card"), nil
}

type fakeOrchestrator struct {
	mu   sync.Mutex
	runs []domain.Job
	done chan struct{}
}

func newFakeOrchestrator() *fakeOrchestrator {
	return &fakeOrchestrator{done: make(chan struct{}, 1)}
}

func (o *fakeOrchestrator) Run(_ context.Context, job domain.Job) {
	o.mu.Lock()
	o.runs = append(o.runs, job)
	o.mu.Unlock()
	o.done <- struct{}{}
}

type inlineDispatcher struct{}

func (inlineDispatcher) Submit(task func()) error {
	task()
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string)                                         {}
func (noopLogger) InfoWithFields(string, map[string]interface{})       {}
func (noopLogger) Error(error, string)                                 {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                        {}
func (noopLogger) DebugWithFields(string, map[string]interface{})      {}
func (noopLogger) Warn(string)                                         {}
func (noopLogger) WarnWithFields(string, map[string]interface{})       {}
