package geometry

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// UVSphere generates a UV sphere with dedicated pole vertices.
//
// Rings counts latitude subdivisions, sectors counts longitude
// subdivisions. Each intermediate ring carries sectors+1 vertices so
// the texture seam has its own column.
func UVSphere(radius float32, rings, sectors uint32) *Mesh {
	mesh := &Mesh{}

	// North pole
	mesh.Vertices = append(mesh.Vertices, Vertex{
		Position: mgl32.Vec3{0, radius, 0},
		Normal:   mgl32.Vec3{0, 1, 0},
		TexCoord: mgl32.Vec2{0.5, 0},
	})

	for r := uint32(1); r < rings; r++ {
		for s := uint32(0); s <= sectors; s++ {
			theta := gomath.Pi * float64(r) / float64(rings)
			phi := 2 * gomath.Pi * float64(s) / float64(sectors)

			x := float32(gomath.Sin(theta) * gomath.Cos(phi))
			y := float32(gomath.Cos(theta))
			z := float32(gomath.Sin(theta) * gomath.Sin(phi))

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: mgl32.Vec3{x * radius, y * radius, z * radius},
				Normal:   mgl32.Vec3{x, y, z},
				TexCoord: mgl32.Vec2{float32(s) / float32(sectors), float32(r) / float32(rings)},
			})
		}
	}

	// South pole
	mesh.Vertices = append(mesh.Vertices, Vertex{
		Position: mgl32.Vec3{0, -radius, 0},
		Normal:   mgl32.Vec3{0, -1, 0},
		TexCoord: mgl32.Vec2{0.5, 1},
	})

	// North cap
	for s := uint32(0); s < sectors; s++ {
		mesh.Indices = append(mesh.Indices, 0, 1+s, 1+s+1)
	}

	// Quad bands between intermediate rings
	for r := uint32(0); r+2 < rings; r++ {
		for s := uint32(0); s < sectors; s++ {
			current := 1 + r*(sectors+1) + s
			next := current + sectors + 1

			mesh.Indices = append(mesh.Indices,
				current, next, current+1,
				current+1, next, next+1,
			)
		}
	}

	// South cap
	southPole := uint32(len(mesh.Vertices)) - 1
	lastRingStart := southPole - (sectors + 1)
	for s := uint32(0); s < sectors; s++ {
		mesh.Indices = append(mesh.Indices, lastRingStart+s, southPole, lastRingStart+s+1)
	}

	return mesh
}
