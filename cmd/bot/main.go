package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/ScottBrooks/grapple"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
)

// Soak run: many simulated players grapple between random anchors as fast as
// the CPU allows, with a round end every roundLength.
func main() {
	configPath := flag.String("config", "grapple.yaml", "path to the grapple config file")
	players := flag.Int("players", 64, "number of simulated players")
	bots := flag.Int("bots", 8, "number of bots, which never grapple")
	ticks := flag.Int("ticks", 64*120, "number of ticks to simulate")
	roundLength := flag.Duration("round", 30*time.Second, "simulated round length")
	seed := flag.Int64("seed", time.Now().Unix(), "random seed")
	flag.Parse()

	cfg, err := grapple.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	if err := grapple.ConfigureLogging(log.StandardLogger(), cfg, colorable.NewColorableStdout()); err != nil {
		log.Fatalf("Configuring logging: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	srv := grapple.NewServer(cfg, nil)

	var anchors []mgl32.Vec3
	for i := 0; i < 32; i++ {
		anchors = append(anchors, mgl32.Vec3{rng.Float32()*8192 - 4096, rng.Float32()*8192 - 4096, rng.Float32() * 2048})
	}
	spawn := func() mgl32.Vec3 {
		return mgl32.Vec3{rng.Float32()*8192 - 4096, rng.Float32()*8192 - 4096, 0}
	}
	for i := 0; i < *players; i++ {
		srv.Connect(fmt.Sprintf("player%d", i), false, spawn())
	}
	for i := 0; i < *bots; i++ {
		srv.Connect(fmt.Sprintf("bot%d", i), true, spawn())
	}
	srv.AddSystem(&grapple.DriverSystem{Server: srv, Anchors: anchors, Rand: rng, MaxWait: 5 * time.Second})

	dt := float32(cfg.TickInterval().Seconds())
	ticksPerRound := int(roundLength.Seconds() * float64(cfg.TickRate))
	start := time.Now()
	for tick := 1; tick <= *ticks; tick++ {
		srv.Step(dt)
		if ticksPerRound > 0 && tick%ticksPerRound == 0 {
			log.Infof("Round over at tick %d, %d wires live", tick, len(srv.Arena.Wires()))
			srv.EndRound()
		}
	}
	log.Infof("Simulated %d ticks for %d players in %v, %d wires live", *ticks, *players+*bots, time.Since(start), len(srv.Arena.Wires()))
}
