package services

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/inbound"
)

func newTestPool(t *testing.T) *ants.Pool {
	t.Helper()
	workerPool, err := ants.NewPool(20)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	t.Cleanup(workerPool.Release)
	return workerPool
}

func TestSceneAssetProducer_AlignsAssetsByIndex(t *testing.T) {
	workerPool := newTestPool(t)
	workDir := t.TempDir()

	producer := NewSceneAssetProducer(noopLogger{}, workerPool,
		&fakeImageGenerator{}, &fakeAudioGenerator{}, &fakeCardRenderer{}, 5*time.Second)

	script := testScript()
	assets, err := producer.Produce(context.Background(), inbound.ProduceAssetsParams{
		JobID:   "job-align",
		Topic:   script.Title,
		Script:  *script,
		Speaker: 1,
		WorkDir: workDir,
	})
	if err != nil {
		t.Fatal("Failed to produce assets:", err)
	}

	if len(assets.Scenes) != len(script.Scenes) {
		t.Fatalf("expected %d scene assets, got %d", len(script.Scenes), len(assets.Scenes))
	}
	for i, asset := range assets.Scenes {
		if asset.Index != i {
			t.Fatalf("scene %d carries index %d", i, asset.Index)
		}
		image, err := os.ReadFile(asset.ImagePath)
		if err != nil {
			t.Fatalf("scene %d image missing: %v", i, err)
		}
		if string(image) != fmt.Sprintf("image-%d", i) {
			t.Fatalf("scene %d got image payload %q", i, image)
		}
		audio, err := os.ReadFile(asset.AudioPath)
		if err != nil {
			t.Fatalf("scene %d audio missing: %v", i, err)
		}
		if string(audio) != "audio:"+script.Scenes[i].Text {
			t.Fatalf("scene %d got audio payload %q", i, audio)
		}
	}

	if assets.Title.ImagePath == "" || assets.Title.AudioPath == "" {
		t.Fatal("expected title assets to be produced")
	}
}

func TestSceneAssetProducer_ImageFailureDegradesToPlaceholder(t *testing.T) {
	workerPool := newTestPool(t)
	workDir := t.TempDir()

	producer := NewSceneAssetProducer(noopLogger{}, workerPool,
		&fakeImageGenerator{failIndexes: map[int]bool{1: true}},
		&fakeAudioGenerator{}, &fakeCardRenderer{}, 5*time.Second)

	script := testScript()
	assets, err := producer.Produce(context.Background(), inbound.ProduceAssetsParams{
		JobID:   "job-image-degrade",
		Topic:   script.Title,
		Script:  *script,
		Speaker: 1,
		WorkDir: workDir,
	})
	if err != nil {
		t.Fatal("Failed to produce assets:", err)
	}

	image, err := os.ReadFile(assets.Scenes[1].ImagePath)
	if err != nil {
		t.Fatal("placeholder image missing:", err)
	}
	if string(image) != "placeholder-1" {
		t.Fatalf("expected a placeholder for scene 1, got %q", image)
	}
}

func TestSceneAssetProducer_DoubleImageFailureLeavesEmptyPath(t *testing.T) {
	workerPool := newTestPool(t)
	workDir := t.TempDir()

	producer := NewSceneAssetProducer(noopLogger{}, workerPool,
		&fakeImageGenerator{failIndexes: map[int]bool{0: true, 1: true, 2: true}},
		&fakeAudioGenerator{}, &fakeCardRenderer{failPlaceholder: true}, 5*time.Second)

	script := testScript()
	assets, err := producer.Produce(context.Background(), inbound.ProduceAssetsParams{
		JobID:   "job-image-empty",
		Topic:   script.Title,
		Script:  *script,
		Speaker: 1,
		WorkDir: workDir,
	})
	if err != nil {
		t.Fatal("Failed to produce assets:", err)
	}

	for i, asset := range assets.Scenes {
		if asset.ImagePath != "" {
			t.Fatalf("scene %d should carry an empty image path", i)
		}
		if asset.AudioPath == "" {
			t.Fatalf("scene %d audio should still be produced", i)
		}
	}
}

func TestSceneAssetProducer_AudioFailureLeavesEmptyPath(t *testing.T) {
	workerPool := newTestPool(t)
	workDir := t.TempDir()

	script := testScript()
	producer := NewSceneAssetProducer(noopLogger{}, workerPool,
		&fakeImageGenerator{},
		&fakeAudioGenerator{failTexts: map[string]bool{script.Scenes[2].Text: true}},
		&fakeCardRenderer{}, 5*time.Second)

	assets, err := producer.Produce(context.Background(), inbound.ProduceAssetsParams{
		JobID:   "job-audio-degrade",
		Topic:   script.Title,
		Script:  *script,
		Speaker: 1,
		WorkDir: workDir,
	})
	if err != nil {
		t.Fatal("Failed to produce assets:", err)
	}

	if assets.Scenes[2].AudioPath != "" {
		t.Fatal("expected scene 2 audio path to stay empty")
	}
	if assets.Scenes[0].AudioPath == "" || assets.Scenes[1].AudioPath == "" {
		t.Fatal("expected the other scenes to keep their audio")
	}
}

func TestSceneAssetProducer_RejectsUnknownStyle(t *testing.T) {
	workerPool := newTestPool(t)

	producer := NewSceneAssetProducer(noopLogger{}, workerPool,
		&fakeImageGenerator{}, &fakeAudioGenerator{}, &fakeCardRenderer{}, 5*time.Second)

	script := testScript()
	script.Style = "vaporwave"
	_, err := producer.Produce(context.Background(), inbound.ProduceAssetsParams{
		JobID:   "job-bad-style",
		Script:  *script,
		WorkDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown style")
	}
}
