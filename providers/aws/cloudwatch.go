package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"

	"github.com/scuttlehq/scuttle/internal/engine"
)

// logGroupExists compares names exactly. The lookup API filters by prefix,
// and a sibling group sharing the prefix must not count as a match.
func (c *Client) logGroupExists(ctx context.Context, name string) (bool, error) {
	paginator := cloudwatchlogs.NewDescribeLogGroupsPaginator(c.logs, &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: aws.String(name),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to describe log groups: %w", err)
		}
		for _, group := range page.LogGroups {
			if aws.ToString(group.LogGroupName) == name {
				return true, nil
			}
		}
	}
	return false, nil
}

func (c *Client) deleteLogGroup(ctx context.Context, name string) error {
	if _, err := c.logs.DeleteLogGroup(ctx, &cloudwatchlogs.DeleteLogGroupInput{LogGroupName: aws.String(name)}); err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to delete log group: %w", err)
	}
	return nil
}
