// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"namespacelabs.dev/clusterconfig/internal/cli/cmd"
	"namespacelabs.dev/clusterconfig/internal/fnerrors"
	"namespacelabs.dev/clusterconfig/internal/kubeconfig"
)

func main() {
	kubeconfig.Register()

	root := &cobra.Command{
		Use:           "kubecfg",
		Short:         "Renders kubeconfigs for clusters managed by a deployment graph.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.NewGenerateCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fnerrors.Format(os.Stderr, err)
		os.Exit(1)
	}
}
