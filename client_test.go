// Package oss provides tests for client initialization and configuration.
package oss

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fine-build/oss-upload/internal/testutil"
)

// TestNew tests the New() constructor.
func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "no endpoint",
			opts:    []Option{WithStaticCredentials("id", "secret", "")},
			wantErr: true,
		},
		{
			name: "endpoint and static credentials",
			opts: []Option{
				WithEndpoint("oss-cn-hangzhou.aliyuncs.com"),
				WithStaticCredentials("id", "secret", ""),
			},
			wantErr: false,
		},
		{
			name: "endpoint and temporary credentials",
			opts: []Option{
				WithEndpoint("oss-cn-hangzhou.aliyuncs.com"),
				WithStaticCredentials("id", "secret", "sts-token"),
			},
			wantErr: false,
		},
		{
			name: "path style and custom http client",
			opts: []Option{
				WithEndpoint("http://localhost:9000"),
				WithStaticCredentials("id", "secret", ""),
				WithPathStyle(true),
				WithHTTPClient(&http.Client{}),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, client)
			assert.NotNil(t, client.api)
			assert.NotNil(t, client.raw)
		})
	}
}

// TestNewWithClient tests construction with a custom API implementation.
func TestNewWithClient(t *testing.T) {
	mock := &testutil.MockClient{}
	client := NewWithClient(mock)

	require.NotNil(t, client)
	assert.Equal(t, mock, client.api)
}

// TestOptions tests that functional options mutate the configuration.
func TestOptions(t *testing.T) {
	cfg := &ClientConfig{}

	WithEndpoint("oss-cn-hangzhou.aliyuncs.com")(cfg)
	WithRegion("cn-hangzhou")(cfg)
	WithStaticCredentials("id", "secret", "token")(cfg)
	WithPathStyle(true)(cfg)

	assert.Equal(t, "oss-cn-hangzhou.aliyuncs.com", cfg.Endpoint)
	assert.Equal(t, "cn-hangzhou", cfg.Region)
	assert.Equal(t, "id", cfg.AccessKeyID)
	assert.Equal(t, "secret", cfg.AccessKeySecret)
	assert.Equal(t, "token", cfg.SecurityToken)
	assert.True(t, cfg.UsePathStyle)
}
