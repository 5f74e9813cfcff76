// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package kubeconfig

import (
	"namespacelabs.dev/clusterconfig/internal/kubernetes/client"
	"namespacelabs.dev/clusterconfig/std/deferred"
)

func Register() {
	client.RegisterKubeconfigProvider("gcp", func(src client.KubeconfigSource) *deferred.Promise[string] {
		return GCP(src.ClusterName, src.Endpoint, src.CACertData)
	})
	client.RegisterKubeconfigProvider("gke-exec", func(src client.KubeconfigSource) *deferred.Promise[string] {
		return GKEExec(src.ClusterName, src.Endpoint, src.CACertData)
	})
	client.RegisterKubeconfigProvider("token", func(src client.KubeconfigSource) *deferred.Promise[string] {
		return BearerToken(src.ClusterName, src.Endpoint, src.CACertData, src.BearerToken)
	})
}
