package grapple

import "github.com/go-gl/mathgl/mgl32"

// Message is a host notification delivered to the grapple system.
type Message interface {
	Type() string
}

type ConnectMessage struct {
	Player PlayerState
}

type DisconnectMessage struct {
	Player PlayerState
}

type DeathMessage struct {
	Slot Slot
}

// RoundEndMessage is raised when the round is over. The system schedules the
// detach itself, just before the restart.
type RoundEndMessage struct{}

// PingMessage is a player marking a world point, which fires the hook.
type PingMessage struct {
	Player PlayerState
	Target mgl32.Vec3
}

func (ConnectMessage) Type() string    { return "ConnectMessage" }
func (DisconnectMessage) Type() string { return "DisconnectMessage" }
func (DeathMessage) Type() string      { return "DeathMessage" }
func (RoundEndMessage) Type() string   { return "RoundEndMessage" }
func (PingMessage) Type() string       { return "PingMessage" }

// HandleEvent applies msg to t and returns the resulting host effects.
// RoundEndMessage has no immediate effect; the delayed detach is scheduled by
// System.
func HandleEvent(t *Table, msg Message) []Effect {
	switch m := msg.(type) {
	case ConnectMessage:
		if !m.Player.Eligible() {
			return nil
		}
		return t.Register(m.Player.Slot)
	case DisconnectMessage:
		if !m.Player.Eligible() {
			return nil
		}
		return t.Unregister(m.Player.Slot)
	case DeathMessage:
		return t.Detach(m.Slot)
	case PingMessage:
		if !m.Player.Eligible() {
			return nil
		}
		return t.Attach(m.Player.Slot, m.Target)
	}
	return nil
}
