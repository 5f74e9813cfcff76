// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package kubeconfig

import "namespacelabs.dev/clusterconfig/std/deferred"

const gcpTemplate = base + `    auth-provider:
      name: gcp
`

// GCP renders a kubeconfig whose user entry names the gcp auth-provider
// plugin. The document embeds no secret; credential resolution is delegated
// to the external helper when the configuration is consumed.
func GCP(clusterName, endpoint, caCertData deferred.String) *deferred.Promise[string] {
	return render(gcpTemplate, clusterName, endpoint, caCertData)
}
