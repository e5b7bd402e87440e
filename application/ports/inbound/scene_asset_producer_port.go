package inbound

import (
	"context"

	"github.com/toruasakawa/short-video-generator-clean/domain"
)

type ProduceAssetsParams struct {
	JobID   string
	Topic   string
	Script  domain.Script
	Speaker int
	WorkDir string
}

// ProducedAssets keeps scene assets indexed by their script position. A
// degraded asset has an empty path; the slice length always equals the scene
// count so pairing can never cross scenes.
type ProducedAssets struct {
	Title  domain.TitleAsset
	Scenes []domain.SceneAsset
}

// SceneAssetProducerPort fans out per-scene image and audio generation plus
// the title assets. Upstream failures degrade to placeholder images or empty
// audio markers; the returned error covers scheduling failures only.
type SceneAssetProducerPort interface {
	Produce(ctx context.Context, params ProduceAssetsParams) (*ProducedAssets, error)
}
