// Package main implements the forge CLI tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/forge/workspace"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Forge - runtime resource workspaces for ML graphs",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Forge %s\n", version)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [config.toml]",
	Short: "Construct a workspace from a config and list its resources",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := workspace.DefaultConfig()
	if len(args) == 1 {
		var err error
		cfg, err = workspace.LoadConfig(args[0])
		if err != nil {
			return err
		}
	}
	name := cfg.Name
	if name == "" {
		name = "default"
	}

	ws := workspace.NewWithConfig(name, cfg)
	fmt.Printf("workspace %q\n", ws.Name())
	fmt.Println("tensors:")
	for _, n := range ws.TensorNames() {
		fmt.Printf("  %s\n", n)
	}
	categories := make([]string, 0, len(cfg.Buffers))
	for category := range cfg.Buffers {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	fmt.Println("buffer categories:")
	for _, category := range categories {
		fmt.Printf("  %s: %d pooled\n", category, ws.PooledBuffers(category))
	}
	if graphs := ws.GraphNames(); len(graphs) > 0 {
		fmt.Println("graphs:")
		for _, n := range graphs {
			fmt.Printf("  %s\n", n)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inspectCmd)
}
