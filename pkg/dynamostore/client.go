package dynamostore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Config selects the AWS profile, region and an optional endpoint (DynamoDB Local).
type Config struct {
	Profile  string `env:"AWS_PROFILE"`
	Region   string `env:"AWS_REGION" envDefault:"us-east-1"`
	Endpoint string `env:"DYNAMODB_ENDPOINT"`
}

// NewClient loads the default AWS configuration chain and creates a DynamoDB client.
func NewClient(ctx context.Context, cfg Config) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// Healthcheck returns a check function for pkg/health that describes table.
func Healthcheck(client *dynamodb.Client, table string) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
		return err
	}
}
