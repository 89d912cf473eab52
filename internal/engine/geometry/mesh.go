// Package geometry provides mesh types, procedural primitives, and OBJ conversion.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lumenforge/orrery/pkg/formats"
)

// Vertex is the interleaved vertex format shared by all meshes.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Mesh holds triangle geometry ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the center point of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds computes the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}

// FromOBJ converts a parsed OBJ into a renderable mesh.
//
// Polygonal faces are fan-triangulated. Each distinct
// position/texcoord/normal triple becomes one vertex. Files without
// normals get smooth normals accumulated from face normals.
func FromOBJ(obj *formats.OBJ) (*Mesh, error) {
	mesh := &Mesh{}

	type key struct{ p, t, n int }
	lookup := make(map[key]uint32)

	addVertex := func(fv formats.OBJFaceVertex) uint32 {
		k := key{fv.Position, fv.TexCoord, fv.Normal}
		if idx, ok := lookup[k]; ok {
			return idx
		}

		v := Vertex{Position: mgl32.Vec3(obj.Positions[fv.Position])}
		if fv.TexCoord >= 0 {
			v.TexCoord = mgl32.Vec2(obj.TexCoords[fv.TexCoord])
		}
		if fv.Normal >= 0 {
			n := mgl32.Vec3(obj.Normals[fv.Normal])
			if n.Len() > 0 {
				n = n.Normalize()
			}
			v.Normal = n
		}

		idx := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, v)
		lookup[k] = idx
		return idx
	}

	for _, face := range obj.Faces {
		if len(face.Vertices) < 3 {
			return nil, fmt.Errorf("face with %d vertices", len(face.Vertices))
		}
		// Fan triangulation around the first vertex
		first := addVertex(face.Vertices[0])
		prev := addVertex(face.Vertices[1])
		for _, fv := range face.Vertices[2:] {
			cur := addVertex(fv)
			mesh.Indices = append(mesh.Indices, first, prev, cur)
			prev = cur
		}
	}

	if !obj.HasNormals() {
		mesh.ComputeSmoothNormals()
	}

	return mesh, nil
}

// ComputeSmoothNormals replaces vertex normals with area-weighted
// averages of the adjacent face normals.
func (m *Mesh) ComputeSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = mgl32.Vec3{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		v0 := m.Vertices[i0].Position
		v1 := m.Vertices[i1].Position
		v2 := m.Vertices[i2].Position

		// Cross product length carries the area weighting
		n := v1.Sub(v0).Cross(v2.Sub(v0))

		m.Vertices[i0].Normal = m.Vertices[i0].Normal.Add(n)
		m.Vertices[i1].Normal = m.Vertices[i1].Normal.Add(n)
		m.Vertices[i2].Normal = m.Vertices[i2].Normal.Add(n)
	}

	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		if n.Len() > 1e-8 {
			m.Vertices[i].Normal = n.Normalize()
		}
	}
}
