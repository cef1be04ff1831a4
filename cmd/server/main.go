// Command server runs picoserver.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tony-montemuro/picoserver"
	"github.com/tony-montemuro/picoserver/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		host       = flag.String("host", "", "host to listen on (default: 0.0.0.0)")
		port       = flag.Int("port", -1, "port to listen on (default: 8080)")
		root       = flag.String("root", "", "directory static files are served from (default: pages)")
		help       = flag.Bool("help", false, "show this help")
	)

	flag.Parse()

	if *help {
		fmt.Println("picoserver")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  server [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port >= 0 {
		cfg.Server.Port = *port
	}
	if *root != "" {
		cfg.Files.Root = *root
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid options: %v", err)
	}

	srv := &picoserver.Server{
		Config: cfg,
		Router: picoserver.Router{
			Files:  os.DirFS(cfg.Files.Root),
			Routes: picoserver.DefaultRoutes(),
		},
	}

	ln, err := srv.Listen()
	if err != nil {
		log.Fatalf("problem starting server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx, ln); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
	log.Println("server shut down")
}
