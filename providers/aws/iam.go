package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/scuttlehq/scuttle/internal/engine"
	"github.com/scuttlehq/scuttle/internal/logging"
)

func (c *Client) roleExists(ctx context.Context, name string) (bool, error) {
	_, err := c.iam.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return true, nil
}

// deleteRole strips every inline policy before deleting the role; IAM
// rejects deleting a role that still carries policies.
func (c *Client) deleteRole(ctx context.Context, name string) error {
	paginator := iam.NewListRolePoliciesPaginator(c.iam, &iam.ListRolePoliciesInput{RoleName: aws.String(name)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			if isNotFound(err) {
				return engine.ErrNotFound
			}
			return fmt.Errorf("failed to list role policies: %w", err)
		}
		for _, policy := range page.PolicyNames {
			_, err := c.iam.DeleteRolePolicy(ctx, &iam.DeleteRolePolicyInput{
				RoleName:   aws.String(name),
				PolicyName: aws.String(policy),
			})
			if err != nil && !isNotFound(err) {
				return fmt.Errorf("failed to delete role policy %q: %w", policy, err)
			}
			logging.Debug("deleted inline policy", "role", name, "policy", policy)
		}
	}

	if _, err := c.iam.DeleteRole(ctx, &iam.DeleteRoleInput{RoleName: aws.String(name)}); err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (c *Client) userExists(ctx context.Context, name string) (bool, error) {
	_, err := c.iam.GetUser(ctx, &iam.GetUserInput{UserName: aws.String(name)})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return true, nil
}

// deleteUser removes the user's access keys, then inline policies, then the
// user itself. Either kind of attachment blocks the user deletion.
func (c *Client) deleteUser(ctx context.Context, name string) error {
	keys := iam.NewListAccessKeysPaginator(c.iam, &iam.ListAccessKeysInput{UserName: aws.String(name)})
	for keys.HasMorePages() {
		page, err := keys.NextPage(ctx)
		if err != nil {
			if isNotFound(err) {
				return engine.ErrNotFound
			}
			return fmt.Errorf("failed to list access keys: %w", err)
		}
		for _, key := range page.AccessKeyMetadata {
			_, err := c.iam.DeleteAccessKey(ctx, &iam.DeleteAccessKeyInput{
				UserName:    aws.String(name),
				AccessKeyId: key.AccessKeyId,
			})
			if err != nil && !isNotFound(err) {
				return fmt.Errorf("failed to delete access key %s: %w", aws.ToString(key.AccessKeyId), err)
			}
			logging.Debug("deleted access key", "user", name, "access_key", aws.ToString(key.AccessKeyId))
		}
	}

	policies := iam.NewListUserPoliciesPaginator(c.iam, &iam.ListUserPoliciesInput{UserName: aws.String(name)})
	for policies.HasMorePages() {
		page, err := policies.NextPage(ctx)
		if err != nil {
			if isNotFound(err) {
				return engine.ErrNotFound
			}
			return fmt.Errorf("failed to list user policies: %w", err)
		}
		for _, policy := range page.PolicyNames {
			_, err := c.iam.DeleteUserPolicy(ctx, &iam.DeleteUserPolicyInput{
				UserName:   aws.String(name),
				PolicyName: aws.String(policy),
			})
			if err != nil && !isNotFound(err) {
				return fmt.Errorf("failed to delete user policy %q: %w", policy, err)
			}
			logging.Debug("deleted inline policy", "user", name, "policy", policy)
		}
	}

	if _, err := c.iam.DeleteUser(ctx, &iam.DeleteUserInput{UserName: aws.String(name)}); err != nil {
		if isNotFound(err) {
			return engine.ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
