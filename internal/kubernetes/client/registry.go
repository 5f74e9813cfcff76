// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package client

import (
	"namespacelabs.dev/clusterconfig/internal/fnerrors"
	"namespacelabs.dev/clusterconfig/std/deferred"
)

// KubeconfigSource carries the connection details a kubeconfig provider
// renders from. BearerToken is only consulted by token-based providers.
type KubeconfigSource struct {
	ClusterName deferred.String
	Endpoint    deferred.String
	CACertData  deferred.String
	BearerToken deferred.String
}

type KubeconfigFunc func(KubeconfigSource) *deferred.Promise[string]

var providers = map[string]KubeconfigFunc{}

func RegisterKubeconfigProvider(name string, fn KubeconfigFunc) {
	providers[name] = fn
}

func LookupKubeconfigProvider(name string) (KubeconfigFunc, error) {
	fn, ok := providers[name]
	if !ok {
		return nil, fnerrors.BadInputError("%s: no such kubeconfig provider", name)
	}
	return fn, nil
}
