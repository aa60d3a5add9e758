// Package oss provides client initialization and configuration.
package oss

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	osserrors "github.com/fine-build/oss-upload/errors"
	"github.com/fine-build/oss-upload/internal/ossapi"
)

// ClientConfig holds the configuration applied by functional options.
type ClientConfig struct {
	// Endpoint is the OSS service endpoint, with or without a scheme prefix
	Endpoint string

	// Region is the signing region; OSS ignores it but the SDK requires one
	Region string

	// AccessKeyID and AccessKeySecret form the long-lived credential pair
	AccessKeyID     string
	AccessKeySecret string

	// SecurityToken is the optional STS token; when present the client
	// authenticates with temporary three-factor credentials
	SecurityToken string

	// UsePathStyle forces path-style addressing instead of the
	// bucket-subdomain style OSS uses in production
	UsePathStyle bool

	// HTTPClient overrides the SDK's default HTTP client
	HTTPClient *http.Client
}

// Option configures the client.
type Option func(*ClientConfig)

// Client performs uploads against an OSS bucket.
type Client struct {
	// api is the storage interface used by operations
	api ossapi.API

	// raw holds the actual SDK client
	raw *s3.Client
}

// New creates a new OSS client with the provided options.
//
// When static credentials are supplied via WithStaticCredentials they are
// used directly (with the security token switching the client to temporary
// STS auth). Otherwise the SDK's default credential chain is consulted.
func New(opts ...Option) (*Client, error) {
	cfg := &ClientConfig{
		Region: "auto",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Endpoint == "" {
		return nil, osserrors.NewError("client initialization", osserrors.ErrInvalidInput).
			WithMessage("endpoint cannot be empty")
	}

	var awsCfg aws.Config
	if cfg.AccessKeyID != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID, cfg.AccessKeySecret, cfg.SecurityToken,
			),
		}
	} else {
		loaded, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, osserrors.NewError("client initialization", err)
		}
		awsCfg = loaded
		if cfg.Region != "" {
			awsCfg.Region = cfg.Region
		}
	}

	endpoint := NormalizeEndpoint(cfg.Endpoint)
	s3Opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		},
	}
	if cfg.UsePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}
	if cfg.HTTPClient != nil {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.HTTPClient = cfg.HTTPClient
		})
	}

	raw := s3.NewFromConfig(awsCfg, s3Opts...)

	return &Client{
		api: raw,
		raw: raw,
	}, nil
}

// NewWithClient creates a new Client with a custom API implementation.
// This is primarily used for testing with mocked clients.
func NewWithClient(api ossapi.API) *Client {
	return &Client{
		api: api,
	}
}
