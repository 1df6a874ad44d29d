// Linear MCP server.
//
// Exposes a Linear workspace to AI assistants over MCP's stdio
// transport: listing and mutating issues, project and cycle analytics,
// and workspace lookups.
//
// Usage:
//
//	linear-mcp serve     # Start MCP server (stdio transport)
//	linear-mcp version   # Print the version
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/rmarth/linear-mcp/internal/linear"
	"github.com/rmarth/linear-mcp/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:           "linear-mcp",
		Short:         "MCP server exposing a Linear workspace to AI assistants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var debug bool
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(debug)
		},
	}
	serveCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("linear-mcp v%s\n", server.Version)
		},
	}

	root.AddCommand(serveCmd, versionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serve(debug bool) error {
	// Logs go to stderr so they never interfere with MCP's stdio
	// transport on stdout.
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	apiKey, err := linear.LoadAPIKey()
	if err != nil {
		return err
	}

	client, err := linear.NewClient(apiKey, linear.WithLogger(log))
	if err != nil {
		return err
	}

	s := server.New(client)

	// ServeStdio returns when stdin closes; an interrupt just exits.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("shutting down")
		os.Exit(0)
	}()

	log.Info().Str("version", server.Version).Msg("starting linear-mcp")
	return mcpserver.ServeStdio(s)
}
