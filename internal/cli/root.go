// Package cli implements the oss-upload command-line interface.
//
// The tool is a one-shot CI/CD step: it resolves configuration from the
// process environment, uploads a single packaged plugin archive to OSS,
// and prints the resulting public download URL.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	oss "github.com/fine-build/oss-upload"
	osserrors "github.com/fine-build/oss-upload/errors"
	"github.com/fine-build/oss-upload/internal/env"
	"github.com/fine-build/oss-upload/internal/validation"
)

// Defaults used when the corresponding flag or env var is absent.
const (
	DefaultFilePath  = "dist/obsidian-publish-everywhere.zip"
	DefaultBucket    = "fine-build"
	DefaultObjectKey = "test/obsidian-publish-everywhere.zip"
)

// Environment variable names. Credential variables also carry the legacy
// short alias; the first non-blank value wins.
const (
	envEndpoint          = "FINE_OSS_ENDPOINT"
	envBucket            = "FINE_OSS_BUCKET"
	envAccessKeyID       = "FINE_OSS_ACCESS_KEY_ID"
	envAccessKeyIDAlias  = "FINE_OSS_ID"
	envAccessSecret      = "FINE_OSS_ACCESS_KEY_SECRET"
	envAccessSecretAlias = "FINE_OSS_SECRET"
	envSecurityToken     = "FINE_OSS_SECURITY_TOKEN"
)

// newClient builds the upload client. Swapped in tests to run the
// pipeline against a mocked storage API.
var newClient = func(endpoint, accessKeyID, accessKeySecret, securityToken string) (*oss.Client, error) {
	return oss.New(
		oss.WithEndpoint(endpoint),
		oss.WithStaticCredentials(accessKeyID, accessKeySecret, securityToken),
	)
}

// NewRootCmd constructs the root command.
func NewRootCmd() *cobra.Command {
	var (
		filePath  string
		objectKey string
	)

	cmd := &cobra.Command{
		Use:           "oss-upload",
		Short:         "Upload a plugin archive to OSS and print its public URL",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, filePath, objectKey)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", DefaultFilePath, "local archive path to upload")
	cmd.Flags().StringVar(&objectKey, "object-key", DefaultObjectKey, "destination object key within the bucket")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// run sequences the upload pipeline: validate the local file, resolve
// configuration from the environment, upload, and report.
func run(cmd *cobra.Command, filePath, objectKey string) error {
	if info, err := os.Stat(filePath); err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", osserrors.ErrFileNotFound, filePath)
	}

	rawEndpoint, err := env.Require(envEndpoint)
	if err != nil {
		return err
	}
	endpoint := oss.NormalizeEndpoint(rawEndpoint)

	// A blank bucket var silently falls back to the default; only the
	// credential and endpoint vars are fatal when missing.
	bucket := env.Lookup(envBucket)
	if bucket == "" {
		bucket = DefaultBucket
	}

	accessKeyID, err := env.Require(envAccessKeyID, envAccessKeyIDAlias)
	if err != nil {
		return err
	}
	accessKeySecret, err := env.Require(envAccessSecret, envAccessSecretAlias)
	if err != nil {
		return err
	}
	securityToken := env.Lookup(envSecurityToken)

	key, err := validation.NormalizeObjectKey(objectKey)
	if err != nil {
		return err
	}

	client, err := newClient(endpoint, accessKeyID, accessKeySecret, securityToken)
	if err != nil {
		return err
	}

	if _, err := client.UploadFile(cmd.Context(), bucket, key, filePath); err != nil {
		return err
	}

	downloadURL := oss.PublicURL(endpoint, bucket, key)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Uploaded: %s\n", filePath)
	fmt.Fprintf(out, "OSS Path: oss://%s/%s\n", bucket, key)
	fmt.Fprintf(out, "URL: %s\n", downloadURL)
	fmt.Fprintf(out, "下载地址: %s\n", downloadURL)
	return nil
}
