package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewAWSConfig(t *testing.T) {
	cases := []struct {
		name       string
		opts       DynamoDBOptions
		wantKey    string
		wantSecret string
	}{
		{
			name:       "local endpoint gets placeholder credentials",
			opts:       DynamoDBOptions{Region: "us-east-1", Endpoint: "http://dynamodb:8000"},
			wantKey:    "local",
			wantSecret: "local",
		},
		{
			name:       "explicit keys win",
			opts:       DynamoDBOptions{Region: "sa-east-1", AccessKeyID: "AKIA", SecretAccessKey: "shh"},
			wantKey:    "AKIA",
			wantSecret: "shh",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewAWSConfig(context.Background(), tc.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Region != tc.opts.Region {
				t.Fatalf("unexpected region %q", cfg.Region)
			}
			creds, err := cfg.Credentials.Retrieve(context.Background())
			if err != nil {
				t.Fatalf("retrieve credentials: %v", err)
			}
			if creds.AccessKeyID != tc.wantKey || creds.SecretAccessKey != tc.wantSecret {
				t.Fatalf("unexpected credentials %q/%q", creds.AccessKeyID, creds.SecretAccessKey)
			}
		})
	}
}

func TestWithEndpoint(t *testing.T) {
	var o dynamodb.Options
	withEndpoint("")(&o)
	if o.BaseEndpoint != nil {
		t.Fatalf("expected regional endpoint, got %q", *o.BaseEndpoint)
	}
	withEndpoint("http://dynamodb:8000")(&o)
	if o.BaseEndpoint == nil || *o.BaseEndpoint != "http://dynamodb:8000" {
		t.Fatalf("endpoint not applied")
	}
}
