package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/scuttlehq/scuttle/internal/engine"
)

func (c *Client) tableExists(ctx context.Context, name string) (bool, error) {
	_, err := c.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check table: %w", err)
	}
	return true, nil
}

// deleteTable drops the lock table. Any lease still recorded in it belongs
// to the environment being retired and is abandoned with it.
func (c *Client) deleteTable(ctx context.Context, name string) error {
	if _, err := c.db.DeleteTable(ctx, &dynamodb.DeleteTableInput{TableName: aws.String(name)}); err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to delete table: %w", err)
	}
	return nil
}
