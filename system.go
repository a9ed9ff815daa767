package grapple

import (
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/google/uuid"
)

// System is the grapple as an ecs system. The host calls Dispatch for events
// and the ecs world calls Update once per simulation step; both must happen on
// the same goroutine.
type System struct {
	Host   Host
	Config Config

	table    *Table
	timers   Timers
	roundEnd map[uint64]bool
	exec     Executor
	pull     Pull
	entities map[uint64]Slot
}

// NewSystem builds a system over host. newWire may be nil, in which case wire
// handles are random UUIDs.
func NewSystem(host Host, cfg Config, newWire func() WireID) *System {
	if newWire == nil {
		newWire = func() WireID { return WireID(uuid.NewString()) }
	}
	s := &System{
		Host:     host,
		Config:   cfg,
		table:    NewTable(),
		roundEnd: map[uint64]bool{},
		entities: map[uint64]Slot{},
	}
	s.exec = Executor{Mover: host, Renderer: host, Table: s.table}
	s.pull = cfg.Pull(newWire)
	return s
}

// Load prepares the server for grappling. On a hot reload every player that
// is already connected is registered.
func (s *System) Load(hotReload bool) {
	log.Infof("Loading...")

	s.Host.SetFloat(CvarPingCooldown, 0)

	if hotReload {
		ents, _ := s.Host.(Entities)
		for _, slot := range s.Host.Players() {
			if ents != nil {
				if basic, ok := ents.Entity(slot); ok {
					s.Add(basic, slot)
					continue
				}
			}
			if ps, ok := s.Host.Player(slot); ok {
				s.Dispatch(ConnectMessage{Player: ps})
			}
		}
	}

	log.Infof("Plugin Loaded")
}

// Unload detaches everyone and drops any pending round-end detach.
func (s *System) Unload() {
	for id := range s.roundEnd {
		s.timers.Cancel(id)
		delete(s.roundEnd, id)
	}
	s.apply(s.table.DetachAll())
	log.Infof("Plugin Unloaded")
}

// Add ties an ecs entity to a player slot so that removing the entity from the
// world disconnects the player.
func (s *System) Add(basic *ecs.BasicEntity, slot Slot) {
	s.entities[basic.ID()] = slot
	ps, ok := s.Host.Player(slot)
	if !ok {
		return
	}
	s.Dispatch(ConnectMessage{Player: ps})
}

func (s *System) Remove(basic ecs.BasicEntity) {
	slot, ok := s.entities[basic.ID()]
	if !ok {
		return
	}
	delete(s.entities, basic.ID())
	ps, ok := s.Host.Player(slot)
	if !ok {
		ps = PlayerState{Slot: slot, Valid: true}
	}
	s.Dispatch(DisconnectMessage{Player: ps})
}

func (s *System) Update(dt float32) {
	s.timers.Advance(time.Duration(float64(dt) * float64(time.Second)))
	s.apply(Tick(s.table, s.Host, s.pull))
}

// Dispatch delivers a host event.
func (s *System) Dispatch(msg Message) {
	if _, ok := msg.(RoundEndMessage); ok {
		s.scheduleRoundEnd()
		return
	}
	log.Debugf("%s: %+v", msg.Type(), msg)
	s.apply(HandleEvent(s.table, msg))
}

func (s *System) scheduleRoundEnd() {
	delay, ok := s.Host.Float(CvarRoundRestartDelay)
	if !ok {
		return
	}
	d := time.Duration(float64(delay)*float64(time.Second)) - s.Config.RoundEndMargin
	log.Debugf("Detaching everyone in %v", d)
	var id uint64
	id = s.timers.After(d, func() {
		delete(s.roundEnd, id)
		s.apply(s.table.DetachAll())
	})
	s.roundEnd[id] = true
}

// Grapple returns a copy of slot's state.
func (s *System) Grapple(slot Slot) (Grapple, bool) {
	g := s.table.Get(slot)
	if g == nil {
		return Grapple{}, false
	}
	cp := Grapple{Slot: g.Slot}
	if g.Hook != nil {
		h := *g.Hook
		cp.Hook = &h
	}
	return cp, true
}

func (s *System) Registered() int { return s.table.Len() }

func (s *System) apply(effects []Effect) {
	for _, err := range s.exec.Apply(effects) {
		log.Warnf("%v", err)
	}
}

// Priority runs the grapple after input drivers and before body movement.
func (*System) Priority() int { return 10 }
