// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package kubeconfig

import (
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// ApiConfig builds the structured equivalent of the rendered documents, for
// callers that want a clientcmdapi.Config rather than text. An empty token
// selects the gcp auth-provider user entry; otherwise the token is embedded.
func ApiConfig(clusterName, endpoint string, caCert []byte, token string) *clientcmdapi.Config {
	authInfo := &clientcmdapi.AuthInfo{}
	if token != "" {
		authInfo.Token = token
	} else {
		authInfo.AuthProvider = &clientcmdapi.AuthProviderConfig{Name: "gcp"}
	}

	return &clientcmdapi.Config{
		Clusters: map[string]*clientcmdapi.Cluster{
			clusterName: {
				Server:                   "https://" + endpoint,
				CertificateAuthorityData: caCert,
			},
		},
		Contexts: map[string]*clientcmdapi.Context{
			clusterName: {
				Cluster:  clusterName,
				AuthInfo: clusterName,
			},
		},
		CurrentContext: clusterName,
		AuthInfos: map[string]*clientcmdapi.AuthInfo{
			clusterName: authInfo,
		},
	}
}
