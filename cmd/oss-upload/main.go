// Package main provides the oss-upload CLI entry point.
// oss-upload pushes a packaged plugin archive to an OSS bucket and prints
// the public download URL. It is intended to run as a one-shot CI/CD step.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fine-build/oss-upload/internal/cli"
)

func main() {
	// Best effort: CI provides the real environment, .env serves local runs
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "upload failed: %v\n", err)
		os.Exit(1)
	}
}
