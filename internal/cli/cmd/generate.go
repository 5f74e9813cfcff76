// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package cmd

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"namespacelabs.dev/clusterconfig/internal/console"
	"namespacelabs.dev/clusterconfig/internal/fnerrors"
	"namespacelabs.dev/clusterconfig/internal/kubeconfig"
	"namespacelabs.dev/clusterconfig/internal/kubernetes/client"
	"namespacelabs.dev/clusterconfig/std/deferred"
)

func NewGenerateCmd() *cobra.Command {
	var (
		clusterName string
		endpoint    string
		caData      string
		caFile      string
		token       string
		auth        string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a kubeconfig from cluster connection details.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if auth == "token" && token == "" {
				return fnerrors.BadInputError("--token is required with --auth=token")
			}

			ca := deferred.Static(caData)
			if caFile != "" {
				ca = deferred.FromPromise(deferred.Compute(ctx, "kubecfg.read-ca",
					func(ctx context.Context) (string, error) {
						contents, err := os.ReadFile(caFile)
						if err != nil {
							return "", err
						}
						return base64.StdEncoding.EncodeToString(contents), nil
					}))
			}

			render, err := client.LookupKubeconfigProvider(auth)
			if err != nil {
				return err
			}

			doc := render(client.KubeconfigSource{
				ClusterName: deferred.Static(clusterName),
				Endpoint:    deferred.Static(endpoint),
				CACertData:  ca,
				BearerToken: deferred.Static(token),
			})

			switch output {
			case "yaml":
				rendered, err := doc.Wait(ctx)
				if err != nil {
					return err
				}

				fmt.Fprint(console.Stdout(ctx), rendered)
				return nil

			case "json":
				if auth == "gke-exec" {
					return fnerrors.BadInputError("json output supports gcp and token credentials only")
				}

				caResolved, err := ca.Promise().Wait(ctx)
				if err != nil {
					return err
				}

				decoded, err := base64.StdEncoding.DecodeString(caResolved)
				if err != nil {
					return fnerrors.BadInputError("failed to decode certificate authority data: %w", err)
				}

				enc := json.NewEncoder(console.Stdout(ctx))
				enc.SetIndent("", "  ")
				return enc.Encode(kubeconfig.ApiConfig(clusterName, endpoint, decoded, token))

			default:
				return fnerrors.BadInputError("%s: unsupported output format", output)
			}
		},
	}

	cmd.Flags().StringVar(&clusterName, "cluster", "", "Name used for the cluster, context and user entries.")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "API server host[:port]; https:// is prepended.")
	cmd.Flags().StringVar(&caData, "ca-data", "", "Base64-encoded cluster CA certificate.")
	cmd.Flags().StringVar(&caFile, "ca-file", "", "Path to a PEM CA certificate; encoded before embedding.")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token, embedded verbatim (--auth=token only).")
	cmd.Flags().StringVar(&auth, "auth", "gcp", "User credential mechanism: gcp, gke-exec or token.")
	cmd.Flags().StringVar(&output, "output", "yaml", "Output format: yaml or json.")

	_ = cmd.MarkFlagRequired("cluster")
	_ = cmd.MarkFlagRequired("endpoint")

	return cmd
}
