package grapple

import (
	"math/rand"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// DriverSystem plays simulated players: every few seconds each one looks at a
// random anchor point, pings it and strafes for a while.
type DriverSystem struct {
	Server  *Server
	Anchors []mgl32.Vec3
	Rand    *rand.Rand

	// MaxWait bounds the random pause between pings.
	MaxWait time.Duration

	now   time.Duration
	plans map[Slot]*drivePlan
}

type drivePlan struct {
	NextPingAt   time.Duration
	StopStrafeAt time.Duration
}

func (*DriverSystem) Priority() int { return 20 }

func (ds *DriverSystem) Remove(basic ecs.BasicEntity) {
	for slot := range ds.plans {
		if p, ok := ds.Server.Arena.Get(slot); !ok || p.ID() == basic.ID() {
			delete(ds.plans, slot)
		}
	}
}

func (ds *DriverSystem) Update(dt float32) {
	if len(ds.Anchors) == 0 {
		return
	}
	if ds.plans == nil {
		ds.plans = map[Slot]*drivePlan{}
	}
	if ds.Rand == nil {
		ds.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ds.MaxWait <= 0 {
		ds.MaxWait = 10 * time.Second
	}
	ds.now += time.Duration(float64(dt) * float64(time.Second))

	for _, slot := range ds.Server.Arena.Players() {
		p, _ := ds.Server.Arena.Get(slot)
		if p.Bot || !p.Alive {
			continue
		}
		plan, ok := ds.plans[slot]
		if !ok {
			plan = &drivePlan{NextPingAt: ds.now + ds.wait()}
			ds.plans[slot] = plan
		}

		if plan.NextPingAt <= ds.now {
			target := ds.Anchors[ds.Rand.Intn(len(ds.Anchors))]
			p.Face(target)
			ds.Server.Ping(slot, target)

			plan.NextPingAt = ds.now + ds.wait()
			plan.StopStrafeAt = ds.now + 2*time.Second
			p.Buttons &^= ButtonMoveLeft | ButtonMoveRight
			if ds.Rand.Intn(2) == 0 {
				log.Debugf("Slot %d strafing left", slot)
				p.Buttons |= ButtonMoveLeft
			} else {
				log.Debugf("Slot %d strafing right", slot)
				p.Buttons |= ButtonMoveRight
			}
		}
		if plan.StopStrafeAt <= ds.now {
			p.Buttons &^= ButtonMoveLeft | ButtonMoveRight
		}
	}
}

func (ds *DriverSystem) wait() time.Duration {
	return time.Second + time.Duration(ds.Rand.Int63n(int64(ds.MaxWait)))
}
