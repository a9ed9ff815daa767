package grapple

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestNormalize(t *testing.T) {
	var tests = []mgl32.Vec3{
		{1, 0, 0},
		{1000, 0, 0},
		{3, 4, 0},
		{-2, 7, 11},
		{0.001, -0.002, 0.003},
		{1e4, 1e4, -1e4},
	}
	for _, v := range tests {
		t.Run(fmt.Sprintf("%v", v), func(t *testing.T) {
			n := Normalize(v)
			if !near(n.Len(), 1) {
				t.Errorf("got length %f, want 1", n.Len())
			}
			if cos := n.Dot(v) / v.Len(); !near(cos, 1) {
				t.Errorf("direction changed: cos=%f", cos)
			}
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := Normalize(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Fatalf("got %v, want zero vector", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 6, 3}); !near(got, 5) {
		t.Fatalf("got %f, want 5", got)
	}
	if got := Distance(mgl32.Vec3{7, 7, 7}, mgl32.Vec3{7, 7, 7}); got != 0 {
		t.Fatalf("got %f, want 0", got)
	}
}

func TestAngularDelta(t *testing.T) {
	var tests = []struct {
		a, b mgl32.Vec3
		want float32
	}{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}, 0},
		{mgl32.Vec3{10, 0, 0}, mgl32.Vec3{0, 0, 0}, 10},
		{mgl32.Vec3{0, 350, 0}, mgl32.Vec3{0, 10, 0}, 20},
		{mgl32.Vec3{0, -170, 0}, mgl32.Vec3{0, 170, 0}, 20},
		{mgl32.Vec3{45, 90, 0}, mgl32.Vec3{0, 0, 0}, 90},
		{mgl32.Vec3{0, 180, 0}, mgl32.Vec3{0, 0, 0}, 180},
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1000, 0, 0}, 80},
		{mgl32.Vec3{0, 0, 99}, mgl32.Vec3{0, 0, -99}, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v vs %v", tt.a, tt.b), func(t *testing.T) {
			ab := AngularDelta(tt.a, tt.b)
			ba := AngularDelta(tt.b, tt.a)
			if !near(ab, tt.want) {
				t.Errorf("got %f, want %f", ab, tt.want)
			}
			if ab != ba {
				t.Errorf("not symmetric: %f vs %f", ab, ba)
			}
			if ab < 0 || ab > 180 {
				t.Errorf("out of range: %f", ab)
			}
		})
	}
}

func TestRightVector(t *testing.T) {
	var tests = []struct {
		view mgl32.Vec3
		want mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -1, 0}},
		{mgl32.Vec3{0, 90, 0}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{0, 180, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-60, 270, 15}, mgl32.Vec3{-1, 0, 0}},
		{mgl32.Vec3{89, 33, -5}, mgl32.Vec3{float32(math.Cos(-57 * math.Pi / 180)), float32(math.Sin(-57 * math.Pi / 180)), 0}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.view), func(t *testing.T) {
			r := RightVector(tt.view)
			if r[2] != 0 {
				t.Errorf("not horizontal: %v", r)
			}
			if !near(r.Len(), 1) {
				t.Errorf("got length %f, want 1", r.Len())
			}
			if !r.ApproxEqualThreshold(tt.want, 1e-4) {
				t.Errorf("got %v, want %v", r, tt.want)
			}
		})
	}
}

func TestAimAngles(t *testing.T) {
	var tests = []struct {
		dir  mgl32.Vec3
		want mgl32.Vec3
	}{
		{mgl32.Vec3{1000, 0, 0}, mgl32.Vec3{0, 0, 0}},
		{mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 90, 0}},
		{mgl32.Vec3{-3, 0, 0}, mgl32.Vec3{0, 180, 0}},
		{mgl32.Vec3{0, 0, 10}, mgl32.Vec3{-90, 0, 0}},
		{mgl32.Vec3{1, 0, -1}, mgl32.Vec3{45, 0, 0}},
		{mgl32.Vec3{}, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.dir), func(t *testing.T) {
			got := AimAngles(tt.dir)
			if !got.ApproxEqualThreshold(tt.want, 1e-3) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
