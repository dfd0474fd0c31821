package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TomLaclavere/HyDE/api"
	"github.com/TomLaclavere/HyDE/internal/config"
	"github.com/TomLaclavere/HyDE/internal/platform"
	"github.com/TomLaclavere/HyDE/internal/status"
)

func main() {
	serve := flag.Bool("serve", false, "Serve the report over HTTP instead of printing it once")
	port := flag.String("port", "8090", "Port to run the server on (with -serve)")
	bind := flag.String("bind", "127.0.0.1", "IP address to bind the server to (with -serve)")
	flag.Parse()

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatalf("Platform validation failed: %v", err)
	}

	cfg := config.Load()

	if *serve {
		runServer(cfg, *bind+":"+*port)
		return
	}

	runOnce(cfg)
}

// runOnce prints exactly one JSON record on stdout. The bar invokes this
// on its polling interval, so even a failed run must produce a record.
func runOnce(cfg config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The tooltip carries Pango markup, so HTML escaping stays off.
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	collector := status.NewCollector(cfg)
	rep, err := collector.Collect(ctx)
	if err != nil {
		enc.Encode(map[string]string{
			"text":    "CPU ?",
			"tooltip": fmt.Sprintf("cpuinfo error: %v", err),
		})
		os.Exit(1)
	}

	enc.Encode(rep)
}

func runServer(cfg config.Config, address string) {
	server, err := api.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	log.Printf("Starting cpuinfo server on %s", address)
	log.Fatal(server.Start(address))
}
