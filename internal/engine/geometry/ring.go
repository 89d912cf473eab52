package geometry

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ring generates a flat annulus in the XZ plane with upward normals.
// U runs around the ring, V runs from the inner to the outer edge.
func Ring(innerRadius, outerRadius float32, segments uint32) *Mesh {
	mesh := &Mesh{}

	for ring := 0; ring <= 1; ring++ {
		radius := innerRadius
		if ring == 1 {
			radius = outerRadius
		}

		for s := uint32(0); s <= segments; s++ {
			angle := 2 * gomath.Pi * float64(s) / float64(segments)
			x := float32(gomath.Cos(angle)) * radius
			z := float32(gomath.Sin(angle)) * radius

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: mgl32.Vec3{x, 0, z},
				Normal:   mgl32.Vec3{0, 1, 0},
				TexCoord: mgl32.Vec2{float32(s) / float32(segments), float32(ring)},
			})
		}
	}

	for s := uint32(0); s < segments; s++ {
		i0 := s
		i1 := s + 1
		i2 := s + segments + 1
		i3 := s + segments + 2

		mesh.Indices = append(mesh.Indices,
			i0, i2, i1,
			i1, i2, i3,
		)
	}

	return mesh
}
