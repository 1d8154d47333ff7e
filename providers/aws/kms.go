package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	kmstypes "github.com/aws/aws-sdk-go-v2/service/kms/types"

	"github.com/scuttlehq/scuttle/internal/engine"
	"github.com/scuttlehq/scuttle/internal/logging"
)

// kmsPendingWindowDays is the shortest deletion window KMS accepts. Keys
// are never removed immediately; scheduling leaves a cancellation window.
const kmsPendingWindowDays = 7

func (c *Client) keyAliasExists(ctx context.Context, alias string) (bool, error) {
	_, err := c.kms.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(alias)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check key alias: %w", err)
	}
	return true, nil
}

// deleteKeyAlias resolves the key behind the alias, removes the alias, and
// schedules the key for deletion. Resolution has to happen first: the alias
// is the only handle on the key id.
func (c *Client) deleteKeyAlias(ctx context.Context, alias string) error {
	desc, err := c.kms.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(alias)})
	if err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to resolve key behind alias: %w", err)
	}
	keyID := aws.ToString(desc.KeyMetadata.KeyId)

	if _, err := c.kms.DeleteAlias(ctx, &kms.DeleteAliasInput{AliasName: aws.String(alias)}); err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete alias: %w", err)
	}

	_, err = c.kms.ScheduleKeyDeletion(ctx, &kms.ScheduleKeyDeletionInput{
		KeyId:               aws.String(keyID),
		PendingWindowInDays: aws.Int32(kmsPendingWindowDays),
	})
	if err != nil {
		// A key already pending deletion rejects another schedule call.
		var state *kmstypes.KMSInvalidStateException
		if errors.As(err, &state) || isNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to schedule key deletion: %w", err)
	}
	logging.Info("scheduled key deletion", "key", keyID, "alias", alias, "pending_days", kmsPendingWindowDays)
	return nil
}
