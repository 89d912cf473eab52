package viewer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lumenforge/orrery/internal/engine/geometry"
)

// normalizeMesh recenters the mesh on the origin and scales its
// largest extent to a diameter of 2, matching the procedural sphere.
func normalizeMesh(m *geometry.Mesh) {
	if len(m.Vertices) == 0 {
		return
	}

	b := m.Bounds()
	center := b.Center()
	size := b.Size()

	maxExtent := size.X()
	if size.Y() > maxExtent {
		maxExtent = size.Y()
	}
	if size.Z() > maxExtent {
		maxExtent = size.Z()
	}

	scale := float32(1.0)
	if maxExtent > 0 {
		scale = 2.0 / maxExtent
	}

	for i := range m.Vertices {
		p := m.Vertices[i].Position.Sub(center)
		m.Vertices[i].Position = mgl32.Vec3{
			p.X() * scale,
			p.Y() * scale,
			p.Z() * scale,
		}
	}
}
