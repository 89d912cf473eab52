package geometry

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lumenforge/orrery/pkg/formats"
)

func TestUVSphere_Topology(t *testing.T) {
	const rings, sectors = 10, 12
	mesh := UVSphere(1.0, rings, sectors)

	// 2 poles + (rings-1) intermediate rings of (sectors+1) vertices
	wantVerts := 2 + (rings-1)*(sectors+1)
	if len(mesh.Vertices) != wantVerts {
		t.Errorf("expected %d vertices, got %d", wantVerts, len(mesh.Vertices))
	}

	// Caps: sectors triangles each. Bands: (rings-2)*sectors quads.
	wantTris := 2*sectors + (rings-2)*sectors*2
	if mesh.TriangleCount() != wantTris {
		t.Errorf("expected %d triangles, got %d", wantTris, mesh.TriangleCount())
	}

	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range at %d", idx, i)
		}
	}
}

func TestUVSphere_Poles(t *testing.T) {
	mesh := UVSphere(2.0, 8, 8)

	north := mesh.Vertices[0]
	if north.Position != (mgl32.Vec3{0, 2, 0}) {
		t.Errorf("unexpected north pole position %v", north.Position)
	}
	if north.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("unexpected north pole normal %v", north.Normal)
	}

	south := mesh.Vertices[len(mesh.Vertices)-1]
	if south.Position != (mgl32.Vec3{0, -2, 0}) {
		t.Errorf("unexpected south pole position %v", south.Position)
	}
}

func TestUVSphere_RadiusAndNormals(t *testing.T) {
	const radius = 1.5
	mesh := UVSphere(radius, 12, 16)

	for i, v := range mesh.Vertices {
		r := v.Position.Len()
		if gomath.Abs(float64(r-radius)) > 1e-4 {
			t.Fatalf("vertex %d: radius %f, expected %f", i, r, radius)
		}

		n := v.Normal.Len()
		if gomath.Abs(float64(n-1)) > 1e-4 {
			t.Fatalf("vertex %d: normal length %f, expected 1", i, n)
		}

		// Normal should point radially outward
		dot := v.Normal.Dot(v.Position.Normalize())
		if dot < 0.999 {
			t.Fatalf("vertex %d: normal not radial (dot %f)", i, dot)
		}
	}
}

func TestRing_Topology(t *testing.T) {
	const segments = 24
	mesh := Ring(1.3, 2.0, segments)

	wantVerts := 2 * (segments + 1)
	if len(mesh.Vertices) != wantVerts {
		t.Errorf("expected %d vertices, got %d", wantVerts, len(mesh.Vertices))
	}
	if mesh.TriangleCount() != segments*2 {
		t.Errorf("expected %d triangles, got %d", segments*2, mesh.TriangleCount())
	}

	for _, v := range mesh.Vertices {
		if v.Position.Y() != 0 {
			t.Fatalf("ring vertex off the XZ plane: %v", v.Position)
		}
		if v.Normal != (mgl32.Vec3{0, 1, 0}) {
			t.Fatalf("ring normal not up: %v", v.Normal)
		}

		r := float64(v.Position.Len())
		if r < 1.3-1e-4 || r > 2.0+1e-4 {
			t.Fatalf("ring vertex radius %f outside [1.3, 2.0]", r)
		}
	}
}

func TestMeshBounds(t *testing.T) {
	mesh := UVSphere(1.0, 16, 16)
	b := mesh.Bounds()

	for i := 0; i < 3; i++ {
		if b.Min[i] < -1.001 || b.Max[i] > 1.001 {
			t.Errorf("axis %d: bounds [%f, %f] exceed unit sphere", i, b.Min[i], b.Max[i])
		}
	}

	c := b.Center()
	if c.Len() > 1e-3 {
		t.Errorf("sphere bounds center %v not at origin", c)
	}
}

func TestFromOBJ_Triangle(t *testing.T) {
	obj := &formats.OBJ{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Normals:   [][3]float32{{0, 0, 1}},
		Faces: []formats.OBJFace{
			{Vertices: []formats.OBJFaceVertex{
				{Position: 0, TexCoord: -1, Normal: 0},
				{Position: 1, TexCoord: -1, Normal: 0},
				{Position: 2, TexCoord: -1, Normal: 0},
			}},
		},
	}

	mesh, err := FromOBJ(obj)
	if err != nil {
		t.Fatalf("FromOBJ failed: %v", err)
	}

	if len(mesh.Vertices) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", mesh.TriangleCount())
	}
	if mesh.Vertices[0].Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("unexpected normal %v", mesh.Vertices[0].Normal)
	}
}

func TestFromOBJ_QuadTriangulation(t *testing.T) {
	obj := &formats.OBJ{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces: []formats.OBJFace{
			{Vertices: []formats.OBJFaceVertex{
				{Position: 0, TexCoord: -1, Normal: -1},
				{Position: 1, TexCoord: -1, Normal: -1},
				{Position: 2, TexCoord: -1, Normal: -1},
				{Position: 3, TexCoord: -1, Normal: -1},
			}},
		},
	}

	mesh, err := FromOBJ(obj)
	if err != nil {
		t.Fatalf("FromOBJ failed: %v", err)
	}

	if len(mesh.Vertices) != 4 {
		t.Errorf("expected 4 deduplicated vertices, got %d", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", mesh.TriangleCount())
	}
}

func TestFromOBJ_SmoothNormalsFallback(t *testing.T) {
	// Flat quad in the XY plane, no normals in the file
	obj := &formats.OBJ{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces: []formats.OBJFace{
			{Vertices: []formats.OBJFaceVertex{
				{Position: 0, TexCoord: -1, Normal: -1},
				{Position: 1, TexCoord: -1, Normal: -1},
				{Position: 2, TexCoord: -1, Normal: -1},
				{Position: 3, TexCoord: -1, Normal: -1},
			}},
		},
	}

	mesh, err := FromOBJ(obj)
	if err != nil {
		t.Fatalf("FromOBJ failed: %v", err)
	}

	want := mgl32.Vec3{0, 0, 1}
	for i, v := range mesh.Vertices {
		if v.Normal.Sub(want).Len() > 1e-5 {
			t.Errorf("vertex %d: expected computed normal %v, got %v", i, want, v.Normal)
		}
	}
}

func TestFromOBJ_VertexDedup(t *testing.T) {
	// Two triangles sharing an edge: shared triples collapse to one vertex
	obj := &formats.OBJ{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces: []formats.OBJFace{
			{Vertices: []formats.OBJFaceVertex{
				{Position: 0, TexCoord: -1, Normal: -1},
				{Position: 1, TexCoord: -1, Normal: -1},
				{Position: 2, TexCoord: -1, Normal: -1},
			}},
			{Vertices: []formats.OBJFaceVertex{
				{Position: 0, TexCoord: -1, Normal: -1},
				{Position: 2, TexCoord: -1, Normal: -1},
				{Position: 3, TexCoord: -1, Normal: -1},
			}},
		},
	}

	mesh, err := FromOBJ(obj)
	if err != nil {
		t.Fatalf("FromOBJ failed: %v", err)
	}

	if len(mesh.Vertices) != 4 {
		t.Errorf("expected 4 vertices after dedup, got %d", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", mesh.TriangleCount())
	}
}
