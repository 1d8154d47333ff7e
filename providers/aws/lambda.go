package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/scuttlehq/scuttle/internal/engine"
	"github.com/scuttlehq/scuttle/internal/logging"
)

func (c *Client) functionExists(ctx context.Context, name string) (bool, error) {
	_, err := c.lambda.GetFunction(ctx, &lambda.GetFunctionInput{FunctionName: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check function: %w", err)
	}
	return true, nil
}

func (c *Client) deleteFunction(ctx context.Context, name string) error {
	if _, err := c.lambda.DeleteFunction(ctx, &lambda.DeleteFunctionInput{FunctionName: aws.String(name)}); err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to delete function: %w", err)
	}
	return nil
}

// layerExists treats a layer with no remaining versions as gone; versions
// are all a layer consists of.
func (c *Client) layerExists(ctx context.Context, name string) (bool, error) {
	out, err := c.lambda.ListLayerVersions(ctx, &lambda.ListLayerVersionsInput{LayerName: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check layer: %w", err)
	}
	return len(out.LayerVersions) > 0, nil
}

// deleteLayer removes the layer one published version at a time; no call
// drops a layer wholesale.
func (c *Client) deleteLayer(ctx context.Context, name string) error {
	deleted := 0
	paginator := lambda.NewListLayerVersionsPaginator(c.lambda, &lambda.ListLayerVersionsInput{LayerName: aws.String(name)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if isNotFound(err) {
				break
			}
			return fmt.Errorf("failed to list layer versions: %w", err)
		}
		for _, version := range page.LayerVersions {
			_, err := c.lambda.DeleteLayerVersion(ctx, &lambda.DeleteLayerVersionInput{
				LayerName:     aws.String(name),
				VersionNumber: aws.Int64(version.Version),
			})
			if err != nil && !isNotFound(err) {
				return fmt.Errorf("failed to delete layer version %d: %w", version.Version, err)
			}
			logging.Debug("deleted layer version", "layer", name, "version", version.Version)
			deleted++
		}
	}
	if deleted == 0 {
		return engine.ErrNotFound
	}
	return nil
}
