package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
)

// apiError fabricates a modeled service error carrying the given code, the
// shape every SDK client surfaces failures in.
func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code}
}

// The fakes below implement the service interfaces through function fields.
// A nil field answers with an empty output and no error.

type fakeS3 struct {
	HeadBucketFunc         func(context.Context, *s3.HeadBucketInput) (*s3.HeadBucketOutput, error)
	ListObjectVersionsFunc func(context.Context, *s3.ListObjectVersionsInput) (*s3.ListObjectVersionsOutput, error)
	DeleteObjectsFunc      func(context.Context, *s3.DeleteObjectsInput) (*s3.DeleteObjectsOutput, error)
	DeleteBucketFunc       func(context.Context, *s3.DeleteBucketInput) (*s3.DeleteBucketOutput, error)
}

func (f *fakeS3) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.HeadBucketFunc != nil {
		return f.HeadBucketFunc(ctx, params)
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) ListObjectVersions(ctx context.Context, params *s3.ListObjectVersionsInput, _ ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error) {
	if f.ListObjectVersionsFunc != nil {
		return f.ListObjectVersionsFunc(ctx, params)
	}
	return &s3.ListObjectVersionsOutput{}, nil
}

func (f *fakeS3) DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	if f.DeleteObjectsFunc != nil {
		return f.DeleteObjectsFunc(ctx, params)
	}
	return &s3.DeleteObjectsOutput{}, nil
}

func (f *fakeS3) DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, _ ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
	if f.DeleteBucketFunc != nil {
		return f.DeleteBucketFunc(ctx, params)
	}
	return &s3.DeleteBucketOutput{}, nil
}

type fakeDynamoDB struct {
	DescribeTableFunc func(context.Context, *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error)
	DeleteTableFunc   func(context.Context, *dynamodb.DeleteTableInput) (*dynamodb.DeleteTableOutput, error)
}

func (f *fakeDynamoDB) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.DescribeTableFunc != nil {
		return f.DescribeTableFunc(ctx, params)
	}
	return &dynamodb.DescribeTableOutput{}, nil
}

func (f *fakeDynamoDB) DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error) {
	if f.DeleteTableFunc != nil {
		return f.DeleteTableFunc(ctx, params)
	}
	return &dynamodb.DeleteTableOutput{}, nil
}

type fakeKMS struct {
	DescribeKeyFunc         func(context.Context, *kms.DescribeKeyInput) (*kms.DescribeKeyOutput, error)
	DeleteAliasFunc         func(context.Context, *kms.DeleteAliasInput) (*kms.DeleteAliasOutput, error)
	ScheduleKeyDeletionFunc func(context.Context, *kms.ScheduleKeyDeletionInput) (*kms.ScheduleKeyDeletionOutput, error)
}

func (f *fakeKMS) DescribeKey(ctx context.Context, params *kms.DescribeKeyInput, _ ...func(*kms.Options)) (*kms.DescribeKeyOutput, error) {
	if f.DescribeKeyFunc != nil {
		return f.DescribeKeyFunc(ctx, params)
	}
	return &kms.DescribeKeyOutput{}, nil
}

func (f *fakeKMS) DeleteAlias(ctx context.Context, params *kms.DeleteAliasInput, _ ...func(*kms.Options)) (*kms.DeleteAliasOutput, error) {
	if f.DeleteAliasFunc != nil {
		return f.DeleteAliasFunc(ctx, params)
	}
	return &kms.DeleteAliasOutput{}, nil
}

func (f *fakeKMS) ScheduleKeyDeletion(ctx context.Context, params *kms.ScheduleKeyDeletionInput, _ ...func(*kms.Options)) (*kms.ScheduleKeyDeletionOutput, error) {
	if f.ScheduleKeyDeletionFunc != nil {
		return f.ScheduleKeyDeletionFunc(ctx, params)
	}
	return &kms.ScheduleKeyDeletionOutput{}, nil
}

type fakeIAM struct {
	GetRoleFunc          func(context.Context, *iam.GetRoleInput) (*iam.GetRoleOutput, error)
	ListRolePoliciesFunc func(context.Context, *iam.ListRolePoliciesInput) (*iam.ListRolePoliciesOutput, error)
	DeleteRolePolicyFunc func(context.Context, *iam.DeleteRolePolicyInput) (*iam.DeleteRolePolicyOutput, error)
	DeleteRoleFunc       func(context.Context, *iam.DeleteRoleInput) (*iam.DeleteRoleOutput, error)
	GetUserFunc          func(context.Context, *iam.GetUserInput) (*iam.GetUserOutput, error)
	ListAccessKeysFunc   func(context.Context, *iam.ListAccessKeysInput) (*iam.ListAccessKeysOutput, error)
	DeleteAccessKeyFunc  func(context.Context, *iam.DeleteAccessKeyInput) (*iam.DeleteAccessKeyOutput, error)
	ListUserPoliciesFunc func(context.Context, *iam.ListUserPoliciesInput) (*iam.ListUserPoliciesOutput, error)
	DeleteUserPolicyFunc func(context.Context, *iam.DeleteUserPolicyInput) (*iam.DeleteUserPolicyOutput, error)
	DeleteUserFunc       func(context.Context, *iam.DeleteUserInput) (*iam.DeleteUserOutput, error)
}

func (f *fakeIAM) GetRole(ctx context.Context, params *iam.GetRoleInput, _ ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	if f.GetRoleFunc != nil {
		return f.GetRoleFunc(ctx, params)
	}
	return &iam.GetRoleOutput{}, nil
}

func (f *fakeIAM) ListRolePolicies(ctx context.Context, params *iam.ListRolePoliciesInput, _ ...func(*iam.Options)) (*iam.ListRolePoliciesOutput, error) {
	if f.ListRolePoliciesFunc != nil {
		return f.ListRolePoliciesFunc(ctx, params)
	}
	return &iam.ListRolePoliciesOutput{}, nil
}

func (f *fakeIAM) DeleteRolePolicy(ctx context.Context, params *iam.DeleteRolePolicyInput, _ ...func(*iam.Options)) (*iam.DeleteRolePolicyOutput, error) {
	if f.DeleteRolePolicyFunc != nil {
		return f.DeleteRolePolicyFunc(ctx, params)
	}
	return &iam.DeleteRolePolicyOutput{}, nil
}

func (f *fakeIAM) DeleteRole(ctx context.Context, params *iam.DeleteRoleInput, _ ...func(*iam.Options)) (*iam.DeleteRoleOutput, error) {
	if f.DeleteRoleFunc != nil {
		return f.DeleteRoleFunc(ctx, params)
	}
	return &iam.DeleteRoleOutput{}, nil
}

func (f *fakeIAM) GetUser(ctx context.Context, params *iam.GetUserInput, _ ...func(*iam.Options)) (*iam.GetUserOutput, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, params)
	}
	return &iam.GetUserOutput{}, nil
}

func (f *fakeIAM) ListAccessKeys(ctx context.Context, params *iam.ListAccessKeysInput, _ ...func(*iam.Options)) (*iam.ListAccessKeysOutput, error) {
	if f.ListAccessKeysFunc != nil {
		return f.ListAccessKeysFunc(ctx, params)
	}
	return &iam.ListAccessKeysOutput{}, nil
}

func (f *fakeIAM) DeleteAccessKey(ctx context.Context, params *iam.DeleteAccessKeyInput, _ ...func(*iam.Options)) (*iam.DeleteAccessKeyOutput, error) {
	if f.DeleteAccessKeyFunc != nil {
		return f.DeleteAccessKeyFunc(ctx, params)
	}
	return &iam.DeleteAccessKeyOutput{}, nil
}

func (f *fakeIAM) ListUserPolicies(ctx context.Context, params *iam.ListUserPoliciesInput, _ ...func(*iam.Options)) (*iam.ListUserPoliciesOutput, error) {
	if f.ListUserPoliciesFunc != nil {
		return f.ListUserPoliciesFunc(ctx, params)
	}
	return &iam.ListUserPoliciesOutput{}, nil
}

func (f *fakeIAM) DeleteUserPolicy(ctx context.Context, params *iam.DeleteUserPolicyInput, _ ...func(*iam.Options)) (*iam.DeleteUserPolicyOutput, error) {
	if f.DeleteUserPolicyFunc != nil {
		return f.DeleteUserPolicyFunc(ctx, params)
	}
	return &iam.DeleteUserPolicyOutput{}, nil
}

func (f *fakeIAM) DeleteUser(ctx context.Context, params *iam.DeleteUserInput, _ ...func(*iam.Options)) (*iam.DeleteUserOutput, error) {
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, params)
	}
	return &iam.DeleteUserOutput{}, nil
}

type fakeLambda struct {
	GetFunctionFunc        func(context.Context, *lambda.GetFunctionInput) (*lambda.GetFunctionOutput, error)
	DeleteFunctionFunc     func(context.Context, *lambda.DeleteFunctionInput) (*lambda.DeleteFunctionOutput, error)
	ListLayerVersionsFunc  func(context.Context, *lambda.ListLayerVersionsInput) (*lambda.ListLayerVersionsOutput, error)
	DeleteLayerVersionFunc func(context.Context, *lambda.DeleteLayerVersionInput) (*lambda.DeleteLayerVersionOutput, error)
}

func (f *fakeLambda) GetFunction(ctx context.Context, params *lambda.GetFunctionInput, _ ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	if f.GetFunctionFunc != nil {
		return f.GetFunctionFunc(ctx, params)
	}
	return &lambda.GetFunctionOutput{}, nil
}

func (f *fakeLambda) DeleteFunction(ctx context.Context, params *lambda.DeleteFunctionInput, _ ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error) {
	if f.DeleteFunctionFunc != nil {
		return f.DeleteFunctionFunc(ctx, params)
	}
	return &lambda.DeleteFunctionOutput{}, nil
}

func (f *fakeLambda) ListLayerVersions(ctx context.Context, params *lambda.ListLayerVersionsInput, _ ...func(*lambda.Options)) (*lambda.ListLayerVersionsOutput, error) {
	if f.ListLayerVersionsFunc != nil {
		return f.ListLayerVersionsFunc(ctx, params)
	}
	return &lambda.ListLayerVersionsOutput{}, nil
}

func (f *fakeLambda) DeleteLayerVersion(ctx context.Context, params *lambda.DeleteLayerVersionInput, _ ...func(*lambda.Options)) (*lambda.DeleteLayerVersionOutput, error) {
	if f.DeleteLayerVersionFunc != nil {
		return f.DeleteLayerVersionFunc(ctx, params)
	}
	return &lambda.DeleteLayerVersionOutput{}, nil
}

type fakeLogs struct {
	DescribeLogGroupsFunc func(context.Context, *cloudwatchlogs.DescribeLogGroupsInput) (*cloudwatchlogs.DescribeLogGroupsOutput, error)
	DeleteLogGroupFunc    func(context.Context, *cloudwatchlogs.DeleteLogGroupInput) (*cloudwatchlogs.DeleteLogGroupOutput, error)
}

func (f *fakeLogs) DescribeLogGroups(ctx context.Context, params *cloudwatchlogs.DescribeLogGroupsInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DescribeLogGroupsOutput, error) {
	if f.DescribeLogGroupsFunc != nil {
		return f.DescribeLogGroupsFunc(ctx, params)
	}
	return &cloudwatchlogs.DescribeLogGroupsOutput{}, nil
}

func (f *fakeLogs) DeleteLogGroup(ctx context.Context, params *cloudwatchlogs.DeleteLogGroupInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteLogGroupOutput, error) {
	if f.DeleteLogGroupFunc != nil {
		return f.DeleteLogGroupFunc(ctx, params)
	}
	return &cloudwatchlogs.DeleteLogGroupOutput{}, nil
}

type fakeSSM struct {
	GetParameterFunc    func(context.Context, *ssm.GetParameterInput) (*ssm.GetParameterOutput, error)
	DeleteParameterFunc func(context.Context, *ssm.DeleteParameterInput) (*ssm.DeleteParameterOutput, error)
}

func (f *fakeSSM) GetParameter(ctx context.Context, params *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if f.GetParameterFunc != nil {
		return f.GetParameterFunc(ctx, params)
	}
	return &ssm.GetParameterOutput{}, nil
}

func (f *fakeSSM) DeleteParameter(ctx context.Context, params *ssm.DeleteParameterInput, _ ...func(*ssm.Options)) (*ssm.DeleteParameterOutput, error) {
	if f.DeleteParameterFunc != nil {
		return f.DeleteParameterFunc(ctx, params)
	}
	return &ssm.DeleteParameterOutput{}, nil
}

type fakeSTS struct {
	GetCallerIdentityFunc func(context.Context, *sts.GetCallerIdentityInput) (*sts.GetCallerIdentityOutput, error)
}

func (f *fakeSTS) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.GetCallerIdentityFunc != nil {
		return f.GetCallerIdentityFunc(ctx, params)
	}
	return &sts.GetCallerIdentityOutput{}, nil
}

var (
	_ s3API       = (*fakeS3)(nil)
	_ dynamoDBAPI = (*fakeDynamoDB)(nil)
	_ kmsAPI      = (*fakeKMS)(nil)
	_ iamAPI      = (*fakeIAM)(nil)
	_ lambdaAPI   = (*fakeLambda)(nil)
	_ logsAPI     = (*fakeLogs)(nil)
	_ ssmAPI      = (*fakeSSM)(nil)
	_ stsAPI      = (*fakeSTS)(nil)
)
