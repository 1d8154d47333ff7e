package engine

import (
	"context"
	"fmt"

	"github.com/scuttlehq/scuttle/internal/logging"
	"github.com/scuttlehq/scuttle/internal/topology"
)

// Discover probes every registry resource and returns the manifest of those
// that still exist, in registry order. A missing resource is not an error;
// any other probe failure aborts discovery before anything is deleted.
func (e *Engine) Discover(ctx context.Context, reg *topology.Registry) (*topology.Manifest, error) {
	var present []topology.Resource
	for _, res := range reg.Resources() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}
		exists, err := e.provider.Exists(ctx, res)
		if err != nil {
			return nil, fmt.Errorf("failed to probe %s: %w", res, err)
		}
		logging.Debug("probed resource", "resource", res.ID, "kind", string(res.Kind), "exists", exists)
		if exists {
			present = append(present, res)
		}
	}
	return topology.NewManifest(present), nil
}
