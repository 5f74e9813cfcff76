// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package client turns rendered kubeconfig documents into provider handles:
// configured Kubernetes clients whose lifecycle belongs to the surrounding
// deployment graph.
package client

import (
	"context"

	k8s "k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"namespacelabs.dev/clusterconfig/std/deferred"
)

// A Provider is an opaque handle for a configured client. It is constructed
// once from a kubeconfig document, immediate or deferred; it does not manage
// its own lifecycle.
type Provider struct {
	name   string
	parent *Provider
	config *deferred.Promise[clientcmd.ClientConfig]
}

type ProviderOption func(*Provider)

// WithParent scopes the handle to parent in the deployment graph. The link is
// carried through unchanged; acting on it is the engine's job.
func WithParent(parent *Provider) ProviderOption {
	return func(p *Provider) {
		p.parent = parent
	}
}

// NewProvider constructs a provider handle from a kubeconfig document. The
// document is normalized to its deferred form and handed to client-go's
// factory once resolved; no validation happens here, and no connection is
// established until the resulting configuration is used.
func NewProvider(name string, kubeconfig deferred.String, opts ...ProviderOption) *Provider {
	p := &Provider{name: name}

	for _, opt := range opts {
		opt(p)
	}

	p.config = deferred.Map(kubeconfig.Promise(), func(doc string) (clientcmd.ClientConfig, error) {
		return clientcmd.NewClientConfigFromBytes([]byte(doc))
	})

	return p
}

func (p *Provider) Name() string      { return p.name }
func (p *Provider) Parent() *Provider { return p.parent }

// ClientConfig returns the deferred client configuration backing this handle.
func (p *Provider) ClientConfig() *deferred.Promise[clientcmd.ClientConfig] {
	return p.config
}

// RESTConfig blocks until the kubeconfig resolves and returns the resulting
// rest configuration.
func (p *Provider) RESTConfig(ctx context.Context) (*rest.Config, error) {
	config, err := p.config.Wait(ctx)
	if err != nil {
		return nil, err
	}

	return config.ClientConfig()
}

// Clientset blocks until the kubeconfig resolves and returns a typed
// clientset for it. Construction is offline; requests are made by the caller.
func (p *Provider) Clientset(ctx context.Context) (*k8s.Clientset, error) {
	restcfg, err := p.RESTConfig(ctx)
	if err != nil {
		return nil, err
	}

	return k8s.NewForConfig(restcfg)
}
