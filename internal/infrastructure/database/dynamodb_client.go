package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

// DynamoDBOptions selects the ledger table location. Static credentials are
// used only when both keys are set, otherwise the default AWS chain applies.
// A local endpoint (DynamoDB Local) gets placeholder credentials.
type DynamoDBOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates the DynamoDB client backing the processed-payments ledger.
func ConnectDynamoDB(ctx context.Context, opts DynamoDBOptions, logg *logrus.Logger) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, opts)
	if err != nil {
		logg.WithError(err).Error("[ledger][dynamodb] failed to create config")
		return nil, err
	}
	logg.WithFields(logrus.Fields{"region": cfg.Region, "endpoint": opts.Endpoint}).Info("[ledger][dynamodb] client initialized")
	return dynamodb.NewFromConfig(cfg, withEndpoint(opts.Endpoint)), nil
}

// NewAWSConfig builds the SDK configuration for opts.
func NewAWSConfig(ctx context.Context, opts DynamoDBOptions) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}

	key, secret := opts.AccessKeyID, opts.SecretAccessKey
	if opts.Endpoint != "" && (key == "" || secret == "") {
		key, secret = "local", "local"
	}
	if key != "" && secret != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")))
	}
	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func withEndpoint(endpoint string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}
