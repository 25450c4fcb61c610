// Copyright 2025 go-equalize Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command equalize applies contrast-enhancement methods to a directory of
// images and reports quality measures.
//
// Usage:
//
//	equalize summary --dataset ./images                # print metric means and medians
//	equalize images --config equalize.yaml --limit 3   # write processed images and stats
//	equalize histograms --methods dqhepl,bhepl-d       # write histogram plots
//	equalize info                                      # print the detected SIMD level
//
// Flags override the values read from --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "equalize",
		Short:         "Histogram equalization of grayscale image datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.register(root)

	root.AddCommand(
		newRunCmd(opts, "summary", "Print mean and median metrics per method over the whole dataset"),
		newRunCmd(opts, "images", "Write original and processed images with per-image statistics"),
		newRunCmd(opts, "histograms", "Write histogram plots of original and processed images"),
		newInfoCmd(),
	)
	return root
}
