// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package console

import (
	"context"
	"io"
	"os"

	"github.com/kr/text"
	"namespacelabs.dev/clusterconfig/internal/console/colors"
)

type contextKey string

var _outputsKey = contextKey("clusterconfig.console.outputs")

type outputs struct {
	stdout io.Writer
	stderr io.Writer
}

// WithOutputs rebinds the writers returned by Stdout/Stderr for ctx, e.g. to
// capture output in tests.
func WithOutputs(ctx context.Context, stdout, stderr io.Writer) context.Context {
	return context.WithValue(ctx, _outputsKey, &outputs{stdout: stdout, stderr: stderr})
}

func Stdout(ctx context.Context) io.Writer {
	if out, ok := ctx.Value(_outputsKey).(*outputs); ok {
		return out.stdout
	}
	return os.Stdout
}

func Stderr(ctx context.Context) io.Writer {
	if out, ok := ctx.Value(_outputsKey).(*outputs); ok {
		return out.stderr
	}
	return os.Stderr
}

func Warnings(ctx context.Context) io.Writer {
	return text.NewIndentWriter(Stderr(ctx), []byte(colors.Faded("warning: ")))
}

func Errors(ctx context.Context) io.Writer {
	return text.NewIndentWriter(Stderr(ctx), []byte(colors.Faded("error: ")))
}
