package grapple

import (
	"context"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// Server is a headless game host: an Arena of simulated players, the grapple
// system and any extra systems, advanced together by an ecs world.
type Server struct {
	Config  Config
	Arena   *Arena
	Grapple *System

	world *ecs.World
}

// NewServer builds a server and loads the grapple. newWire is passed through
// to NewSystem.
func NewServer(cfg Config, newWire func() WireID) *Server {
	arena := NewArena()
	s := &Server{
		Config:  cfg,
		Arena:   arena,
		Grapple: NewSystem(arena, cfg, newWire),
		world:   &ecs.World{},
	}
	s.world.AddSystem(s.Grapple)
	s.world.AddSystem(s.Arena)
	s.Grapple.Load(false)
	return s
}

func (s *Server) AddSystem(sys ecs.System) {
	s.world.AddSystem(sys)
}

// Connect adds a player and announces it to the grapple.
func (s *Server) Connect(name string, bot bool, pos mgl32.Vec3) *Player {
	p := s.Arena.Connect(name, bot, pos)
	log.Debugf("Connected %q in slot %d", name, p.Slot)
	s.Grapple.Add(&p.BasicEntity, p.Slot)
	return p
}

func (s *Server) Disconnect(slot Slot) {
	p, ok := s.Arena.Get(slot)
	if !ok {
		return
	}
	log.Debugf("Disconnecting %q from slot %d", p.Name, slot)
	s.world.RemoveEntity(p.BasicEntity)
}

func (s *Server) Kill(slot Slot) {
	p, ok := s.Arena.Get(slot)
	if !ok {
		return
	}
	p.Alive = false
	p.Vel = mgl32.Vec3{}
	s.Grapple.Dispatch(DeathMessage{Slot: slot})
}

func (s *Server) Respawn(slot Slot, pos mgl32.Vec3) {
	p, ok := s.Arena.Get(slot)
	if !ok {
		return
	}
	p.Alive = true
	p.Pos = pos
	p.Vel = mgl32.Vec3{}
}

// Ping marks target for the player in slot, firing their hook.
func (s *Server) Ping(slot Slot, target mgl32.Vec3) {
	ps, ok := s.Arena.Player(slot)
	if !ok {
		return
	}
	s.Grapple.Dispatch(PingMessage{Player: ps, Target: target})
}

func (s *Server) EndRound() {
	s.Grapple.Dispatch(RoundEndMessage{})
}

// Step advances the simulation by dt seconds.
func (s *Server) Step(dt float32) {
	s.world.Update(dt)
}

// Run steps the simulation at the configured tick rate until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	interval := s.Config.TickInterval()
	dt := float32(interval.Seconds())
	start := time.Now()
	log.Infof("Running at %d ticks per second", s.Config.TickRate)

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Grapple.Unload()
			log.Infof("Stopped after %v", time.Since(start))
			return ctx.Err()
		case <-t.C:
			s.Step(dt)
		}
	}
}
