// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package kubeconfig

import "namespacelabs.dev/clusterconfig/std/deferred"

const tokenTemplate = base + `    token: %[4]s
`

// BearerToken renders a kubeconfig whose user entry holds the token verbatim.
// The resolved document is a secret: it must not end up in unencrypted
// persisted state or in logs, a classification the surrounding engine owns.
func BearerToken(clusterName, endpoint, caCertData, token deferred.String) *deferred.Promise[string] {
	return render(tokenTemplate, clusterName, endpoint, caCertData, token)
}
