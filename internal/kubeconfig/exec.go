// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package kubeconfig

import "namespacelabs.dev/clusterconfig/std/deferred"

const gkeExecTemplate = base + `    exec:
      apiVersion: client.authentication.k8s.io/v1
      command: gke-gcloud-auth-plugin
      installHint: >-
        Install gke-gcloud-auth-plugin: https://cloud.google.com/blog/products/containers-kubernetes/kubectl-auth-changes-in-gke
      provideClusterInfo: true
      interactiveMode: Never
`

// GKEExec renders a kubeconfig whose user entry invokes gke-gcloud-auth-plugin
// through the exec credential API, as required by modern client-go against
// GKE. Like GCP, the document embeds no secret.
func GKEExec(clusterName, endpoint, caCertData deferred.String) *deferred.Promise[string] {
	return render(gkeExecTemplate, clusterName, endpoint, caCertData)
}
