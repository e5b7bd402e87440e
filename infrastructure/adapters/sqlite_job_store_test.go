package adapters

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

func newTestJobStore(t *testing.T) *sqliteJobStore {
	t.Helper()
	store, err := NewSqliteJobStore(filepath.Join(t.TempDir(), "jobs.db"), NewZerologWrapper())
	if err != nil {
		t.Fatal("Failed to open job store:", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Error("Failed to close job store:", err)
		}
	})
	return store
}

func storeTestJob(id string) domain.Job {
	return domain.Job{
		ID:        id,
		UserID:    "user-1",
		Topic:     "morning routines",
		Style:     "ghibli",
		Speaker:   1,
		Status:    domain.JobPending,
		CreatedAt: time.Now().UTC(),
	}
}

func TestSqliteJobStore_RoundTrip(t *testing.T) {
	store := newTestJobStore(t)
	ctx := context.Background()

	job := storeTestJob("rt-1")
	job.EnablePreview = true
	if err := store.Create(ctx, job); err != nil {
		t.Fatal("Failed to create job:", err)
	}

	got, err := store.Get(ctx, job.ID)
	if err != nil {
		t.Fatal("Failed to get job:", err)
	}
	if got.Topic != job.Topic || got.Style != job.Style || !got.EnablePreview {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Status != domain.JobPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}
	if got.CompletedAt != nil {
		t.Fatal("expected no completion time on a fresh job")
	}
}

func TestSqliteJobStore_GetUnknown(t *testing.T) {
	store := newTestJobStore(t)

	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSqliteJobStore_Lifecycle(t *testing.T) {
	store := newTestJobStore(t)
	ctx := context.Background()

	job := storeTestJob("life-1")
	if err := store.Create(ctx, job); err != nil {
		t.Fatal("Failed to create job:", err)
	}
	if err := store.MarkProcessing(ctx, job.ID); err != nil {
		t.Fatal("Failed to mark processing:", err)
	}

	outcomes := []domain.SceneOutcome{
		{Index: 0, Included: true},
		{Index: 1, Included: false, Reason: "image unavailable"},
	}
	if err := store.MarkCompleted(ctx, job.ID, "/tmp/life-1.mp4", outcomes); err != nil {
		t.Fatal("Failed to mark completed:", err)
	}

	got, err := store.Get(ctx, job.ID)
	if err != nil {
		t.Fatal("Failed to get job:", err)
	}
	if got.Status != domain.JobCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
	if got.ResultPath != "/tmp/life-1.mp4" {
		t.Fatalf("unexpected result path %q", got.ResultPath)
	}
	if got.CompletedAt == nil {
		t.Fatal("expected a completion time")
	}
	if len(got.SceneOutcomes) != 2 || got.SceneOutcomes[1].Reason != "image unavailable" {
		t.Fatalf("scene outcomes did not round trip: %+v", got.SceneOutcomes)
	}
}

func TestSqliteJobStore_TerminalIsAbsorbing(t *testing.T) {
	store := newTestJobStore(t)
	ctx := context.Background()

	job := storeTestJob("term-1")
	if err := store.Create(ctx, job); err != nil {
		t.Fatal("Failed to create job:", err)
	}
	if err := store.MarkCompleted(ctx, job.ID, "/tmp/term-1.mp4", nil); err != nil {
		t.Fatal("Failed to mark completed:", err)
	}

	if err := store.MarkFailed(ctx, job.ID, "late failure", nil); err != nil {
		t.Fatal("MarkFailed on a terminal job should be a no-op, got:", err)
	}
	if err := store.MarkProcessing(ctx, job.ID); err != nil {
		t.Fatal("MarkProcessing on a terminal job should be a no-op, got:", err)
	}

	got, err := store.Get(ctx, job.ID)
	if err != nil {
		t.Fatal("Failed to get job:", err)
	}
	if got.Status != domain.JobCompleted {
		t.Fatalf("terminal state was overwritten: %s", got.Status)
	}
	if got.ErrorDetail != "" {
		t.Fatalf("error detail leaked onto a completed job: %q", got.ErrorDetail)
	}
}

func TestSqliteJobStore_ListByUser(t *testing.T) {
	store := newTestJobStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"list-1", "list-2", "list-3"} {
		job := storeTestJob(id)
		job.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.Create(ctx, job); err != nil {
			t.Fatal("Failed to create job:", err)
		}
	}
	other := storeTestJob("other-user")
	other.UserID = "user-2"
	if err := store.Create(ctx, other); err != nil {
		t.Fatal("Failed to create job:", err)
	}

	jobs, err := store.ListByUser(ctx, "user-1", 2)
	if err != nil {
		t.Fatal("Failed to list jobs:", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "list-3" || jobs[1].ID != "list-2" {
		t.Fatalf("expected newest first, got %s then %s", jobs[0].ID, jobs[1].ID)
	}
}
