// Package scene defines the planet scenes and their GPU rendering.
package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderKind selects the surface program used for an object.
type ShaderKind int

const (
	ShaderRocky ShaderKind = iota
	ShaderGasGiant
	ShaderCrystal
	ShaderLava
	ShaderIce
	ShaderMoon
	ShaderRing
)

// String returns a human-readable shader name.
func (k ShaderKind) String() string {
	switch k {
	case ShaderRocky:
		return "rocky"
	case ShaderGasGiant:
		return "gas-giant"
	case ShaderCrystal:
		return "crystal"
	case ShaderLava:
		return "lava"
	case ShaderIce:
		return "ice"
	case ShaderMoon:
		return "moon"
	case ShaderRing:
		return "ring"
	default:
		return "unknown"
	}
}

// Drawable is a mesh that can issue its own draw call.
// Satisfied by renderer.GPUMesh.
type Drawable interface {
	Draw()
}

// Orbit animates an object's position on a circular path around the origin.
type Orbit struct {
	Radius float32
	Speed  float32
	// Bob is the vertical oscillation amplitude; the vertical phase
	// runs at 0.7x the orbital speed.
	Bob float32
}

// PositionAt returns the orbital position at the given time.
func (o Orbit) PositionAt(time float32) mgl32.Vec3 {
	t := float64(time * o.Speed)
	return mgl32.Vec3{
		float32(gomath.Cos(t)) * o.Radius,
		float32(gomath.Sin(float64(time*o.Speed*0.7))) * o.Bob,
		float32(gomath.Sin(t)) * o.Radius,
	}
}

// Object is a renderable body in a scene.
type Object struct {
	Mesh          Drawable
	Shader        ShaderKind
	Position      mgl32.Vec3
	Scale         float32
	RotationSpeed float32
	RotationAxis  mgl32.Vec3
	// Blend marks translucent objects drawn after the opaque pass.
	Blend bool
	// Orbit, when set, overrides Position every frame.
	Orbit *Orbit
}

// NewObject creates an object with default rotation (1 rad/s around Y).
func NewObject(mesh Drawable, shader ShaderKind, position mgl32.Vec3, scale float32) *Object {
	return &Object{
		Mesh:          mesh,
		Shader:        shader,
		Position:      position,
		Scale:         scale,
		RotationSpeed: 1.0,
		RotationAxis:  mgl32.Vec3{0, 1, 0},
	}
}

// ModelMatrix returns translation * rotation(time) * scale.
func (o *Object) ModelMatrix(time float32) mgl32.Mat4 {
	m := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3D(time*o.RotationSpeed, o.RotationAxis))
	m = m.Mul4(mgl32.Scale3D(o.Scale, o.Scale, o.Scale))
	return m
}
