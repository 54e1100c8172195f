package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// Options selects how credentials and region are resolved.
type Options struct {
	Region  string
	Profile string
	// Local uses fixed dummy credentials, for DynamoDB Local and similar emulators.
	Local bool
}

type service struct{}

// Service is the interface for loading AWS configuration.
type Service interface {
	GetAWSCfg(ctx context.Context, opts Options) (aws.Config, error)
}
