package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ScottBrooks/grapple"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "grapple.yaml", "path to the grapple config file")
	players := flag.Int("players", 4, "number of simulated players")
	flag.Parse()

	cfg, err := grapple.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	if err := grapple.ConfigureLogging(log.StandardLogger(), cfg, colorable.NewColorableStdout()); err != nil {
		log.Fatalf("Configuring logging: %v", err)
	}

	srv := grapple.NewServer(cfg, nil)
	anchors := []mgl32.Vec3{
		{1024, 0, 512},
		{-1024, 0, 512},
		{0, 1024, 768},
		{0, -1024, 256},
	}
	for i := 0; i < *players; i++ {
		srv.Connect("player", false, mgl32.Vec3{float32(i * 64), 0, 0})
	}
	srv.AddSystem(&grapple.DriverSystem{Server: srv, Anchors: anchors})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Server stopped: %v", err)
	}
}
