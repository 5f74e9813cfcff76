// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package executor

import (
	"context"
	"fmt"
	"sync"

	"namespacelabs.dev/go-ids"
)

type Executor interface {
	Go(func(context.Context) error)
	Wait() error
}

func New(ctx context.Context, name string) (Executor, func() error) {
	ctxWithCancel, cancel := context.WithCancel(ctx)
	exec := &errGroupExecutor{ctx: ctxWithCancel, cancel: cancel, name: name, id: ids.NewRandomBase32ID(8)}
	return exec, exec.Wait
}

func Newf(ctx context.Context, format string, args ...interface{}) (Executor, func() error) {
	return New(ctx, fmt.Sprintf(format, args...))
}

type errGroupExecutor struct {
	ctx    context.Context
	cancel func()
	name   string
	id     string

	wg sync.WaitGroup

	errOnce sync.Once
	err     error
}

func (exec *errGroupExecutor) Wait() error {
	exec.wg.Wait()
	exec.cancel()
	return exec.err
}

func (exec *errGroupExecutor) Go(f func(context.Context) error) {
	exec.wg.Add(1)

	go func() {
		defer exec.wg.Done()

		if err := f(exec.ctx); err != nil {
			exec.errOnce.Do(func() {
				exec.err = err
				exec.cancel()
			})
		}
	}()
}
