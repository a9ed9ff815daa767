package grapple

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeRenderer struct {
	spawnErr, moveErr, removeErr error
	calls                        []string
}

func (f *fakeRenderer) SpawnWire(w SpawnWire) error {
	f.calls = append(f.calls, "spawn "+string(w.Wire))
	return f.spawnErr
}

func (f *fakeRenderer) MoveWire(id WireID, origin mgl32.Vec3) error {
	f.calls = append(f.calls, "move "+string(id))
	return f.moveErr
}

func (f *fakeRenderer) RemoveWire(id WireID) error {
	f.calls = append(f.calls, "remove "+string(id))
	return f.removeErr
}

type unknownEffect struct{}

func (unknownEffect) Owner() Slot { return 0 }

func TestExecutorAppliesInOrder(t *testing.T) {
	r := &fakeRenderer{}
	ex := &Executor{Renderer: r}
	errs := ex.Apply([]Effect{
		SpawnWire{Slot: 0, Wire: "a"},
		MoveWire{Slot: 0, Wire: "a"},
		MoveWire{Slot: 1, Wire: ""},
		RemoveWire{Slot: 0, Wire: "a"},
		RemoveWire{Slot: 1, Wire: ""},
		SetVelocity{Slot: 0},
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	want := "spawn a,move a,remove a"
	if got := strings.Join(r.calls, ","); got != want {
		t.Fatalf("calls = %q, want %q", got, want)
	}
}

func TestExecutorErrors(t *testing.T) {
	var tests = []struct {
		name   string
		r      *fakeRenderer
		effect Effect
		want   string
	}{
		{"move", &fakeRenderer{moveErr: errors.New("gone")}, MoveWire{Wire: "a"}, "move wire a: gone"},
		{"remove", &fakeRenderer{removeErr: errors.New("gone")}, RemoveWire{Wire: "a"}, "remove wire a: gone"},
		{"unknown", &fakeRenderer{}, unknownEffect{}, "unknown effect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := &Executor{Renderer: tt.r}
			errs := ex.Apply([]Effect{tt.effect})
			if len(errs) != 1 || !strings.Contains(errs[0].Error(), tt.want) {
				t.Fatalf("got %v, want one error containing %q", errs, tt.want)
			}
		})
	}
}

func TestExecutorSpawnFailureIsScoped(t *testing.T) {
	tbl := NewTable()
	tbl.Attach(0, mgl32.Vec3{1000, 0, 0})
	tbl.Attach(1, mgl32.Vec3{0, 1000, 0})
	tbl.Get(0).Hook.Wire = "a"
	tbl.Get(1).Hook.Wire = "b"

	r := &fakeRenderer{spawnErr: errors.New("no edicts")}
	arena := NewArena()
	arena.Connect("p0", false, mgl32.Vec3{})
	arena.Connect("p1", false, mgl32.Vec3{})
	ex := &Executor{Mover: arena, Renderer: r, Table: tbl}

	errs := ex.Apply([]Effect{
		SpawnWire{Slot: 0, Wire: "a"},
		SetVelocity{Slot: 0, Velocity: mgl32.Vec3{500, 0, 0}},
		MoveWire{Slot: 0, Wire: "a"},
		SetVelocity{Slot: 1, Velocity: mgl32.Vec3{0, 500, 0}},
	})
	if len(errs) != 1 || !errors.Is(errs[0], ErrWireSpawn) {
		t.Fatalf("got %v, want one ErrWireSpawn", errs)
	}
	if tbl.Get(0).Hook.Wire != "" {
		t.Fatalf("failed wire not forgotten")
	}
	if tbl.Get(1).Hook.Wire != "b" {
		t.Fatalf("other player's wire touched")
	}
	p0, _ := arena.Get(0)
	p1, _ := arena.Get(1)
	if p0.Vel != (mgl32.Vec3{}) {
		t.Fatalf("slot 0 velocity applied after spawn failure: %v", p0.Vel)
	}
	if p1.Vel != (mgl32.Vec3{0, 500, 0}) {
		t.Fatalf("slot 1 velocity = %v, want applied", p1.Vel)
	}
	if len(r.calls) != 1 {
		t.Fatalf("renderer calls = %v, want only the spawn", r.calls)
	}
}

func TestExecutorSetVelocityUnknownSlot(t *testing.T) {
	ex := &Executor{Mover: NewArena()}
	errs := ex.Apply([]Effect{SetVelocity{Slot: 4}})
	if len(errs) != 1 || !errors.Is(errs[0], ErrUnknownSlot) {
		t.Fatalf("got %v, want ErrUnknownSlot", errs)
	}
}
