// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package deferred implements the value-passing primitive used throughout
// this repository: a promise for a value that only becomes known at a later
// stage of the surrounding deployment pipeline. Promises are resolved exactly
// once, by the deployment engine that owns them; consumers compose them with
// Map and Collect, and never observe partial state.
package deferred

import (
	"context"
	"sync"

	"namespacelabs.dev/clusterconfig/internal/fnerrors"
	"namespacelabs.dev/go-ids"
)

// A Promise holds a value that is not yet known. It is resolved (or failed)
// at most once, and is immutable from then on.
type Promise[V any] struct {
	id string

	mu        sync.Mutex
	done      chan struct{}
	value     V
	err       error
	resolved  bool
	callbacks []func(V, error)
}

func NewPromise[V any]() *Promise[V] {
	return &Promise[V]{
		id:   ids.NewRandomBase32ID(8),
		done: make(chan struct{}),
	}
}

// Done returns a promise that has already been resolved to v.
func Done[V any](v V) *Promise[V] {
	p := NewPromise[V]()
	_ = p.Resolve(v)
	return p
}

// ErrPromise returns a promise that has already failed with err.
func ErrPromise[V any](err error) *Promise[V] {
	p := NewPromise[V]()
	_ = p.Fail(err)
	return p
}

// ID returns an opaque identifier, for debugging and log attribution only.
func (p *Promise[V]) ID() string { return p.id }

// Resolve sets the promise's value. Resolving an already resolved promise is
// an error: ownership of resolution belongs to a single party.
func (p *Promise[V]) Resolve(v V) error {
	return p.complete(v, nil)
}

// Fail resolves the promise with an error, which is then observed by all
// consumers derived from it.
func (p *Promise[V]) Fail(err error) error {
	if err == nil {
		err = fnerrors.InternalError("promise %s: failed with a nil error", p.id)
	}
	var empty V
	return p.complete(empty, err)
}

func (p *Promise[V]) complete(v V, err error) error {
	p.mu.Lock()
	if p.resolved {
		p.mu.Unlock()
		return fnerrors.InternalError("promise %s: already resolved", p.id)
	}

	p.value = v
	p.err = err
	p.resolved = true
	callbacks := p.callbacks
	p.callbacks = nil
	close(p.done)
	p.mu.Unlock()

	// Callbacks run on the resolver's goroutine, in registration order.
	for _, callback := range callbacks {
		callback(v, err)
	}

	return nil
}

// whenResolved registers f, invoking it in place if the promise has already
// been resolved.
func (p *Promise[V]) whenResolved(f func(V, error)) {
	p.mu.Lock()
	if !p.resolved {
		p.callbacks = append(p.callbacks, f)
		p.mu.Unlock()
		return
	}
	v, err := p.value, p.err
	p.mu.Unlock()

	f(v, err)
}

// Wait blocks until the promise is resolved, or until ctx is done.
func (p *Promise[V]) Wait(ctx context.Context) (V, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var empty V
		return empty, ctx.Err()
	}
}
