// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package kubeconfig

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
	"namespacelabs.dev/clusterconfig/std/deferred"
)

func TestGCPRendersFixedDocument(t *testing.T) {
	const expected = `apiVersion: v1
clusters:
- cluster:
    certificate-authority-data: QUJD
    server: https://10.0.0.1:443
  name: prod
contexts:
- context:
    cluster: prod
    user: prod
  name: prod
current-context: prod
kind: Config
preferences: {}
users:
- name: prod
  user:
    auth-provider:
      name: gcp
`

	got := renderGCP(t, "prod", "10.0.0.1:443", "QUJD")
	if d := cmp.Diff(expected, got); d != "" {
		t.Errorf("rendered document mismatch (-want +got):\n%s", d)
	}
}

func TestGCPFieldOccurrences(t *testing.T) {
	got := renderGCP(t, "prod", "10.0.0.1:443", "QUJD")

	for _, line := range []string{
		"server: https://10.0.0.1:443",
		"certificate-authority-data: QUJD",
		"current-context: prod",
	} {
		if n := strings.Count(got, line); n != 1 {
			t.Errorf("expected exactly one %q line, got %d", line, n)
		}
	}

	// The cluster, context and user entries all carry the cluster name.
	if n := strings.Count(got, "name: prod"); n != 3 {
		t.Errorf("expected three name fields equal to the cluster name, got %d", n)
	}
}

func TestBearerTokenEmbedsToken(t *testing.T) {
	doc := BearerToken(deferred.Static("prod"), deferred.Static("10.0.0.1:443"),
		deferred.Static("QUJD"), deferred.Static("sekret"))

	got, err := doc.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if n := strings.Count(got, "token: sekret"); n != 1 {
		t.Errorf("expected exactly one token line, got %d", n)
	}
	if strings.Contains(got, "auth-provider") {
		t.Error("bearer token variant must not carry an auth-provider section")
	}
}

func TestRenderingIsIdempotent(t *testing.T) {
	first := renderGCP(t, "prod", "10.0.0.1:443", "QUJD")
	second := renderGCP(t, "prod", "10.0.0.1:443", "QUJD")

	if first != second {
		t.Error("identical inputs must render byte-identical documents")
	}
}

func TestDeferredInputsMatchImmediate(t *testing.T) {
	name := deferred.NewPromise[string]()
	endpoint := deferred.NewPromise[string]()
	ca := deferred.NewPromise[string]()

	doc := GCP(deferred.FromPromise(name), deferred.FromPromise(endpoint), deferred.FromPromise(ca))

	for p, v := range map[*deferred.Promise[string]]string{
		name:     "prod",
		endpoint: "10.0.0.1:443",
		ca:       "QUJD",
	} {
		if err := p.Resolve(v); err != nil {
			t.Fatal(err)
		}
	}

	got, err := doc.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if immediate := renderGCP(t, "prod", "10.0.0.1:443", "QUJD"); got != immediate {
		t.Errorf("deferred inputs rendered differently:\n%s", cmp.Diff(immediate, got))
	}
}

func TestRenderedDocumentUnifiesIdentities(t *testing.T) {
	config := loadRendered(t, renderGCP(t, "prod", "10.0.0.1:443", "QUJD"))

	if config.CurrentContext != "prod" {
		t.Errorf("current-context: expected %q got %q", "prod", config.CurrentContext)
	}

	cluster, ok := config.Clusters["prod"]
	if !ok {
		t.Fatal("missing cluster entry named after the cluster")
	}
	if cluster.Server != "https://10.0.0.1:443" {
		t.Errorf("server: got %q", cluster.Server)
	}
	if got := string(cluster.CertificateAuthorityData); got != "ABC" {
		t.Errorf("certificate authority data: got %q", got)
	}

	kubectx, ok := config.Contexts["prod"]
	if !ok {
		t.Fatal("missing context entry named after the cluster")
	}
	if kubectx.Cluster != "prod" || kubectx.AuthInfo != "prod" {
		t.Errorf("context must bind same-named cluster and user, got %q/%q", kubectx.Cluster, kubectx.AuthInfo)
	}

	user, ok := config.AuthInfos["prod"]
	if !ok {
		t.Fatal("missing user entry named after the cluster")
	}
	if user.AuthProvider == nil || user.AuthProvider.Name != "gcp" {
		t.Errorf("expected gcp auth-provider, got %+v", user.AuthProvider)
	}
	if user.Token != "" {
		t.Error("gcp variant must not embed a token")
	}
}

func TestBearerTokenDocumentLoads(t *testing.T) {
	doc := BearerToken(deferred.Static("prod"), deferred.Static("10.0.0.1:443"),
		deferred.Static("QUJD"), deferred.Static("sekret"))

	rendered, err := doc.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	config := loadRendered(t, rendered)
	if got := config.AuthInfos["prod"].Token; got != "sekret" {
		t.Errorf("token: got %q", got)
	}
}

func TestGKEExecDocumentLoads(t *testing.T) {
	doc := GKEExec(deferred.Static("prod"), deferred.Static("10.0.0.1:443"), deferred.Static("QUJD"))

	rendered, err := doc.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	exec := loadRendered(t, rendered).AuthInfos["prod"].Exec
	if exec == nil {
		t.Fatal("missing exec stanza")
	}
	if exec.Command != "gke-gcloud-auth-plugin" {
		t.Errorf("command: got %q", exec.Command)
	}
	if exec.APIVersion != "client.authentication.k8s.io/v1" {
		t.Errorf("apiVersion: got %q", exec.APIVersion)
	}
	if !exec.ProvideClusterInfo {
		t.Error("expected provideClusterInfo to be set")
	}
	if exec.InteractiveMode != clientcmdapi.NeverExecInteractiveMode {
		t.Errorf("interactiveMode: got %q", exec.InteractiveMode)
	}
}

func TestApiConfigMirrorsRenderedShape(t *testing.T) {
	config := ApiConfig("prod", "10.0.0.1:443", []byte("ABC"), "")

	if config.CurrentContext != "prod" {
		t.Errorf("current-context: got %q", config.CurrentContext)
	}
	if got := config.Clusters["prod"].Server; got != "https://10.0.0.1:443" {
		t.Errorf("server: got %q", got)
	}
	if config.AuthInfos["prod"].AuthProvider.Name != "gcp" {
		t.Error("empty token must select the gcp auth-provider")
	}

	withToken := ApiConfig("prod", "10.0.0.1:443", []byte("ABC"), "sekret")
	if withToken.AuthInfos["prod"].AuthProvider != nil {
		t.Error("token variant must not carry an auth-provider")
	}
	if got := withToken.AuthInfos["prod"].Token; got != "sekret" {
		t.Errorf("token: got %q", got)
	}
}

func renderGCP(t *testing.T, name, endpoint, ca string) string {
	t.Helper()

	got, err := GCP(deferred.Static(name), deferred.Static(endpoint), deferred.Static(ca)).Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return got
}

// loadRendered round-trips a rendered document through client-go; the
// renderers themselves never parse.
func loadRendered(t *testing.T, rendered string) *clientcmdapi.Config {
	t.Helper()

	config, err := clientcmd.Load([]byte(rendered))
	if err != nil {
		t.Fatalf("rendered document does not load: %v", err)
	}
	return config
}
