// Package aws implements resource probing and deletion against the AWS
// APIs for every resource kind in the topology.
package aws

import (
	"context"
	"fmt"

	"github.com/scuttlehq/scuttle/internal/engine"
	"github.com/scuttlehq/scuttle/internal/topology"
)

var _ engine.Provider = (*Client)(nil)

// Exists reports whether the resource is still present. A clean not-found
// is (false, nil); anything else is returned for the engine to abort on.
func (c *Client) Exists(ctx context.Context, res topology.Resource) (bool, error) {
	exists, err := c.probe(ctx, res)
	if err != nil {
		if isAccessDenied(err) {
			return false, fmt.Errorf("not authorized: %w", err)
		}
		return false, err
	}
	return exists, nil
}

func (c *Client) probe(ctx context.Context, res topology.Resource) (bool, error) {
	switch res.Kind {
	case topology.KindBucket:
		return c.bucketExists(ctx, res.ID)
	case topology.KindTable:
		return c.tableExists(ctx, res.ID)
	case topology.KindKeyAlias:
		return c.keyAliasExists(ctx, res.ID)
	case topology.KindRole:
		return c.roleExists(ctx, res.ID)
	case topology.KindUser:
		return c.userExists(ctx, res.ID)
	case topology.KindFunction:
		return c.functionExists(ctx, res.ID)
	case topology.KindLayer:
		return c.layerExists(ctx, res.ID)
	case topology.KindLogGroup:
		return c.logGroupExists(ctx, res.ID)
	case topology.KindParameter:
		return c.parameterExists(ctx, res.ID)
	}
	return false, fmt.Errorf("unknown resource kind: %s", res.Kind)
}

// Delete removes the resource, completing whatever sub-steps its kind
// requires before the final call. A resource that was already gone yields
// engine.ErrNotFound.
func (c *Client) Delete(ctx context.Context, res topology.Resource) error {
	switch res.Kind {
	case topology.KindBucket:
		return c.deleteBucket(ctx, res.ID)
	case topology.KindTable:
		return c.deleteTable(ctx, res.ID)
	case topology.KindKeyAlias:
		return c.deleteKeyAlias(ctx, res.ID)
	case topology.KindRole:
		return c.deleteRole(ctx, res.ID)
	case topology.KindUser:
		return c.deleteUser(ctx, res.ID)
	case topology.KindFunction:
		return c.deleteFunction(ctx, res.ID)
	case topology.KindLayer:
		return c.deleteLayer(ctx, res.ID)
	case topology.KindLogGroup:
		return c.deleteLogGroup(ctx, res.ID)
	case topology.KindParameter:
		return c.deleteParameter(ctx, res.ID)
	}
	return fmt.Errorf("unknown resource kind: %s", res.Kind)
}
