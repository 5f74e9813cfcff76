// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package deferred

import (
	"context"

	"namespacelabs.dev/clusterconfig/internal/executor"
)

// Compute runs f on its own goroutine and returns a promise for its result.
// This is the only entrypoint in the package that starts work; everything
// else composes resolutions owned by the caller.
func Compute[V any](ctx context.Context, name string, f func(context.Context) (V, error)) *Promise[V] {
	p := NewPromise[V]()

	exec, wait := executor.New(ctx, name)
	exec.Go(func(ctx context.Context) error {
		v, err := f(ctx)
		if err != nil {
			return p.Fail(err)
		}
		return p.Resolve(v)
	})

	go wait() // Failures are delivered through the promise itself.

	return p
}
