// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package kubeconfig renders client configuration documents for a single
// cluster from values that may only resolve at deployment time. The cluster,
// context and user entries deliberately share one name: the supplied cluster
// name.
//
// Inputs are embedded verbatim, with no escaping or validation; a hostile or
// malformed name or certificate string will corrupt the document. Callers own
// input hygiene.
package kubeconfig

import (
	"fmt"

	"namespacelabs.dev/clusterconfig/std/deferred"
)

const base = `apiVersion: v1
clusters:
- cluster:
    certificate-authority-data: %[3]s
    server: https://%[2]s
  name: %[1]s
contexts:
- context:
    cluster: %[1]s
    user: %[1]s
  name: %[1]s
current-context: %[1]s
kind: Config
preferences: {}
users:
- name: %[1]s
  user:
`

func render(template string, inputs ...deferred.String) *deferred.Promise[string] {
	promises := make([]*deferred.Promise[string], len(inputs))
	for k, input := range inputs {
		promises[k] = input.Promise()
	}

	return deferred.Map(deferred.Collect(promises...), func(parts []string) (string, error) {
		args := make([]interface{}, len(parts))
		for k, part := range parts {
			args[k] = part
		}
		return fmt.Sprintf(template, args...), nil
	})
}
