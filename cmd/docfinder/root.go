package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docfinder/docfinder-mcp/internal/lookup"
	"github.com/docfinder/docfinder-mcp/internal/mcp"
	"github.com/docfinder/docfinder-mcp/internal/model"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docfinder",
		Short: "MCP server answering 'what API exists and how do I call it'",
		Long: `Docfinder indexes a library's public API surface - components, call
signatures, and short descriptions - and serves exact, combination,
substring, and fuzzy lookups over MCP so an LLM agent can discover
operations, confirm signatures, and recover from near-miss spelling.

The object model comes either from a Go package tree (--source) or from a
precomputed JSON/YAML manifest (--manifest).`,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		RunE:  runServe,
	}
	serveCmd.Flags().String("source", "", "Path to a Go library source tree to introspect")
	serveCmd.Flags().String("manifest", "", "Path to a precomputed API manifest (.json, .yaml)")
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio|sse|http")
	serveCmd.Flags().String("host", "127.0.0.1", "Host address for sse/http transports")
	serveCmd.Flags().Int("port", 8111, "Port for sse/http transports")
	serveCmd.Flags().String("path", "/mcp", "URL path for the http transport")
	serveCmd.Flags().StringSlice("groups", nil, "Override the sub-namespace allow-list (default: io,functions,convert,datatypes)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s (built %s)\n", mcp.ServerName, version, buildTime)
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)
	return rootCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	source, _ := flags.GetString("source")
	manifest, _ := flags.GetString("manifest")
	transport, _ := flags.GetString("transport")
	host, _ := flags.GetString("host")
	port, _ := flags.GetInt("port")
	httpPath, _ := flags.GetString("path")
	groups, _ := flags.GetStringSlice("groups")

	// Stdout is reserved for MCP protocol framing on the stdio transport.
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := loadModel(ctx, source, manifest)
	if err != nil {
		return err
	}
	info := m.Info()
	log.Printf("%s v%s starting: indexing %s (%s)", mcp.ServerName, version, info.Name, info.Version)

	server := mcp.NewServerWithOptions(m, lookup.Options{Groups: groupsOrDefault(groups)})

	errChan := make(chan error, 1)
	go func() {
		switch transport {
		case "stdio":
			log.Println("MCP server ready, listening on stdio...")
			errChan <- server.ServeStdio(ctx)
		case "sse":
			addr := fmt.Sprintf("%s:%d", host, port)
			log.Printf("MCP server ready, SSE on %s", addr)
			errChan <- server.ServeSSE(ctx, addr)
		case "http":
			addr := fmt.Sprintf("%s:%d", host, port)
			log.Printf("MCP server ready, streamable HTTP on %s%s", addr, httpPath)
			errChan <- server.ServeStreamableHTTP(ctx, addr, httpPath)
		default:
			errChan <- fmt.Errorf("unknown transport %q (want stdio, sse, or http)", transport)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutdown signal received, stopping...")
		return nil
	case err := <-errChan:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
		return err
	}
}

// loadModel builds the object model from exactly one of --source or
// --manifest.
func loadModel(ctx context.Context, source, manifest string) (model.Model, error) {
	switch {
	case source != "" && manifest != "":
		return nil, fmt.Errorf("--source and --manifest are mutually exclusive")
	case source != "":
		return model.LoadSource(ctx, source)
	case manifest != "":
		return model.LoadManifest(manifest)
	default:
		return nil, fmt.Errorf("one of --source or --manifest is required")
	}
}

func groupsOrDefault(groups []string) []string {
	if len(groups) == 0 {
		return nil // lookup.Options applies the default allow-list
	}
	return groups
}
