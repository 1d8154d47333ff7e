package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/scuttlehq/scuttle/internal/engine"
)

func (c *Client) parameterExists(ctx context.Context, name string) (bool, error) {
	_, err := c.ssm.GetParameter(ctx, &ssm.GetParameterInput{Name: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check parameter: %w", err)
	}
	return true, nil
}

func (c *Client) deleteParameter(ctx context.Context, name string) error {
	if _, err := c.ssm.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: aws.String(name)}); err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to delete parameter: %w", err)
	}
	return nil
}
