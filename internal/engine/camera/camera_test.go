package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultFraming(t *testing.T) {
	c := New()

	pos := c.Position()
	want := mgl32.Vec3{0, 0, 3.5}
	if pos.Sub(want).Len() > 1e-5 {
		t.Errorf("expected default position %v, got %v", want, pos)
	}
}

func TestPositionDistanceInvariant(t *testing.T) {
	c := New()

	for _, d := range []float32{1.5, 3.5, 10, 30} {
		c.Distance = d
		for _, yaw := range []float32{0, 0.7, 2.1, -1.3} {
			c.Yaw = yaw
			for _, pitch := range []float32{0, 0.5, -0.9} {
				c.Pitch = pitch

				r := c.Position().Sub(c.Center).Len()
				if gomath.Abs(float64(r-d)) > 1e-4 {
					t.Fatalf("distance %f at yaw=%f pitch=%f, expected %f", r, yaw, pitch, d)
				}
			}
		}
	}
}

func TestPitchClamp(t *testing.T) {
	c := New()

	c.HandleDrag(0, 10000)
	if c.Pitch != c.MaxPitch {
		t.Errorf("expected pitch clamped to %f, got %f", c.MaxPitch, c.Pitch)
	}

	c.HandleDrag(0, -20000)
	if c.Pitch != c.MinPitch {
		t.Errorf("expected pitch clamped to %f, got %f", c.MinPitch, c.Pitch)
	}
}

func TestZoomClamp(t *testing.T) {
	c := New()

	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("expected distance clamped to %f, got %f", c.MinDistance, c.Distance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("expected distance clamped to %f, got %f", c.MaxDistance, c.Distance)
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := New()
	c.Yaw = 0.8
	c.Pitch = 0.4

	view := c.ViewMatrix()

	// The center must land on the negative Z axis in view space
	center := view.Mul4x1(c.Center.Vec4(1))
	if gomath.Abs(float64(center.X())) > 1e-4 || gomath.Abs(float64(center.Y())) > 1e-4 {
		t.Errorf("center not on view axis: %v", center)
	}
	if center.Z() >= 0 {
		t.Errorf("center in front of camera expected negative Z, got %f", center.Z())
	}
	if gomath.Abs(float64(center.Z()+c.Distance)) > 1e-4 {
		t.Errorf("center depth %f, expected %f", center.Z(), -c.Distance)
	}
}

func TestReset(t *testing.T) {
	c := New()
	c.HandleDrag(300, 150)
	c.HandleZoom(5)
	c.Center = mgl32.Vec3{1, 2, 3}

	c.Reset()

	if c.Distance != 3.5 || c.Pitch != 0 || c.Yaw != 0 {
		t.Errorf("reset did not restore defaults: %+v", c)
	}
	if c.Center != (mgl32.Vec3{}) {
		t.Errorf("reset did not recenter: %v", c.Center)
	}
}
