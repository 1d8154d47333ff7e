package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/scuttlehq/scuttle/internal/engine"
	"github.com/scuttlehq/scuttle/internal/logging"
)

// maxDeleteBatch is the most objects one DeleteObjects call accepts.
const maxDeleteBatch = 1000

func (c *Client) bucketExists(ctx context.Context, name string) (bool, error) {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return true, nil
}

// deleteBucket purges every object version first: a bucket cannot be
// deleted while non-empty, and a versioned bucket stays non-empty until
// both live versions and delete markers are gone.
func (c *Client) deleteBucket(ctx context.Context, name string) error {
	versions, markers, err := c.listObjectVersions(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to list object versions: %w", err)
	}

	if len(versions)+len(markers) > 0 {
		logging.Info("purging bucket", "bucket", name, "versions", len(versions), "delete_markers", len(markers))
		c.deleteObjectBatches(ctx, name, versions)
		c.deleteObjectBatches(ctx, name, markers)
	}

	if _, err := c.s3.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(name)}); err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to delete bucket: %w", err)
	}
	return nil
}

// listObjectVersions walks the complete version listing and returns live
// versions and delete markers as separate collections.
func (c *Client) listObjectVersions(ctx context.Context, name string) (versions, markers []s3types.ObjectIdentifier, err error) {
	input := &s3.ListObjectVersionsInput{Bucket: aws.String(name)}
	for {
		page, err := c.s3.ListObjectVersions(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		for _, v := range page.Versions {
			versions = append(versions, s3types.ObjectIdentifier{Key: v.Key, VersionId: v.VersionId})
		}
		for _, m := range page.DeleteMarkers {
			markers = append(markers, s3types.ObjectIdentifier{Key: m.Key, VersionId: m.VersionId})
		}
		if !aws.ToBool(page.IsTruncated) {
			return versions, markers, nil
		}
		input.KeyMarker = page.NextKeyMarker
		input.VersionIdMarker = page.NextVersionIdMarker
	}
}

// deleteObjectBatches removes objects in chunks of maxDeleteBatch. A failed
// batch is logged and the sweep moves on; anything it leaves behind keeps
// the bucket non-empty, which the bucket deletion itself will then report.
func (c *Client) deleteObjectBatches(ctx context.Context, bucket string, objects []s3types.ObjectIdentifier) {
	for start := 0; start < len(objects); start += maxDeleteBatch {
		end := start + maxDeleteBatch
		if end > len(objects) {
			end = len(objects)
		}
		batch := objects[start:end]

		out, err := c.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &s3types.Delete{Objects: batch, Quiet: aws.Bool(true)},
		})
		if err != nil {
			logging.Warn("batch delete failed", "bucket", bucket, "objects", len(batch), "error", err)
			continue
		}
		for _, reject := range out.Errors {
			logging.Warn("object delete rejected", "bucket", bucket,
				"key", aws.ToString(reject.Key), "code", aws.ToString(reject.Code), "message", aws.ToString(reject.Message))
		}
	}
}
