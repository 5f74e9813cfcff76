// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package deferred

// Map returns a promise resolved with f applied to p's value. f runs on the
// goroutine that resolves p; failures of p bypass f and propagate as is.
func Map[V, W any](p *Promise[V], f func(V) (W, error)) *Promise[W] {
	r := NewPromise[W]()

	p.whenResolved(func(v V, err error) {
		if err != nil {
			_ = r.Fail(err)
			return
		}

		w, err := f(v)
		if err != nil {
			_ = r.Fail(err)
			return
		}

		_ = r.Resolve(w)
	})

	return r
}
