// Package main provides the browsercloud MCP server binary. It exposes
// the Browser Use Cloud API v2 as tools for language-model agents over
// stdio (default) or stateless streamable HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/browsercloud/pkg/config"
	"github.com/entrhq/browsercloud/pkg/server"
)

// Config holds the command-line options.
type Config struct {
	HTTPAddr    string
	EnvFile     string
	ScriptPath  string
	ShowVersion bool
}

func main() {
	cfg := parseFlags()

	if cfg.ShowVersion {
		fmt.Printf("browsercloud v%s\n", server.Version)
		return
	}

	appCfg, err := config.Load(cfg.EnvFile)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if cfg.ScriptPath != "" {
		if err := runScript(ctx, appCfg, cfg.ScriptPath); err != nil {
			log.Fatalf("Script error: %v", err)
		}
		return
	}

	srv, err := server.New(appCfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if cfg.HTTPAddr != "" {
		fmt.Fprintf(os.Stderr, "browsercloud listening on %s/mcp\n", cfg.HTTPAddr)
		errChan := make(chan error, 1)
		go func() {
			errChan <- server.ServeHTTP(srv, cfg.HTTPAddr)
		}()
		select {
		case err := <-errChan:
			if err != nil {
				log.Fatalf("Server error: %v", err)
			}
		case <-ctx.Done():
		}
		return
	}

	// Stdio transport: the client owns both standard streams, so nothing
	// else in the process may write to them.
	if err := server.ServeStdio(srv); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.HTTPAddr, "http", "",
		"Serve streamable HTTP on this address (e.g. :8080) instead of stdio")
	flag.StringVar(&cfg.EnvFile, "env", "",
		"Load environment variables from this file before reading config")
	flag.StringVar(&cfg.ScriptPath, "script", "",
		"Run the task described in this YAML file once and exit")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")

	flag.Parse()
	return cfg
}
