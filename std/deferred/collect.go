// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package deferred

import (
	"fmt"
	"sync"

	"namespacelabs.dev/clusterconfig/internal/fnerrors"
)

// Collect joins N promises into one that resolves only once every input has
// resolved, preserving input order. The first input failure fails the result;
// remaining resolutions are then ignored.
func Collect[V any](promises ...*Promise[V]) *Promise[[]V] {
	for k, p := range promises {
		if p == nil {
			return ErrPromise[[]V](fnerrors.InternalError("collect[%d]: nil promise", k))
		}
	}

	r := NewPromise[[]V]()

	if len(promises) == 0 {
		_ = r.Resolve(nil)
		return r
	}

	var mu sync.Mutex
	pending := len(promises)
	results := make([]V, len(promises))

	for k, p := range promises {
		k := k
		p.whenResolved(func(v V, err error) {
			if err != nil {
				// A sibling may have failed first; losing that race is fine.
				_ = r.Fail(fnerrors.DependencyFailed(fmt.Sprintf("collect[%d]", k), err))
				return
			}

			mu.Lock()
			results[k] = v
			pending--
			last := pending == 0
			mu.Unlock()

			if last {
				_ = r.Resolve(results)
			}
		})
	}

	return r
}
