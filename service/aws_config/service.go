// Package awsconfig loads AWS configuration for the DynamoDB backend.
package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const (
	localAccessKey = "local"
	localRegion    = "us-east-1"
)

// loadSharedConfigProfile and loadDefaultConfig are variables to allow mocking in tests.
var (
	loadSharedConfigProfile = config.LoadSharedConfigProfile
	loadDefaultConfig       = config.LoadDefaultConfig
)

// NewService creates a new AWS configuration service.
func NewService() Service {
	return &service{}
}

func (s *service) GetAWSCfg(ctx context.Context, opts Options) (aws.Config, error) {
	if opts.Local {
		region := opts.Region
		if region == "" {
			region = localRegion
		}
		cfg, err := loadDefaultConfig(ctx,
			config.WithRegion(region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(localAccessKey, localAccessKey, "")),
		)
		if err != nil {
			return aws.Config{}, fmt.Errorf("unable to load local AWS config: %w", err)
		}
		return cfg, nil
	}

	// Profiles that assume a role with MFA need the token provider wired by hand.
	if opts.Profile != "" {
		shared, err := loadSharedConfigProfile(ctx, opts.Profile)
		if err == nil && shared.RoleARN != "" && shared.MFASerial != "" {
			return s.loadWithMFA(ctx, opts, shared)
		}
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := loadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return cfg, nil
}

func (s *service) loadWithMFA(ctx context.Context, opts Options, shared config.SharedConfig) (aws.Config, error) {
	source := shared.SourceProfileName
	if source == "" {
		source = "default"
	}
	region := opts.Region
	if region == "" {
		region = shared.Region
	}
	if region == "" {
		region = localRegion
	}

	base, err := loadDefaultConfig(ctx,
		config.WithSharedConfigProfile(source),
		config.WithRegion(region),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load source profile %q: %w", source, err)
	}

	provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(base), shared.RoleARN, func(o *stscreds.AssumeRoleOptions) {
		o.SerialNumber = aws.String(shared.MFASerial)
		o.TokenProvider = stscreds.StdinTokenProvider
	})

	cfg, err := loadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(aws.NewCredentialsCache(provider)),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load config with mfa: %w", err)
	}

	// Prompt for the MFA code now, before any spinner takes over the terminal.
	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		return aws.Config{}, fmt.Errorf("failed to retrieve credentials (MFA might have failed): %w", err)
	}
	return cfg, nil
}
