// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package deferred

// A String is a string-typed input that is either known immediately or
// supplied by a promise the deployment engine resolves later. The zero value
// is the empty immediate string.
type String struct {
	value   string
	promise *Promise[string]
}

// Static wraps an immediately known value.
func Static(value string) String {
	return String{value: value}
}

// FromPromise wraps a value that resolves later.
func FromPromise(p *Promise[string]) String {
	return String{promise: p}
}

// Promise normalizes to the deferred representation; immediate values yield
// an already-resolved promise.
func (s String) Promise() *Promise[string] {
	if s.promise != nil {
		return s.promise
	}
	return Done(s.value)
}
