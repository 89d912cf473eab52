package scene

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type fakeMesh struct{ draws int }

func (m *fakeMesh) Draw() { m.draws++ }

func TestShaderKindString(t *testing.T) {
	cases := []struct {
		kind ShaderKind
		want string
	}{
		{ShaderRocky, "rocky"},
		{ShaderGasGiant, "gas-giant"},
		{ShaderCrystal, "crystal"},
		{ShaderLava, "lava"},
		{ShaderIce, "ice"},
		{ShaderMoon, "moon"},
		{ShaderRing, "ring"},
		{ShaderKind(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("ShaderKind(%d).String() = %q, want %q", int(c.kind), got, c.want)
		}
	}
}

func TestOrbitPositionAt(t *testing.T) {
	o := Orbit{Radius: 2.5, Speed: 0.5, Bob: 0.3}

	p := o.PositionAt(0)
	if p.X() != 2.5 || p.Y() != 0 || p.Z() != 0 {
		t.Errorf("position at t=0 = %v, want (2.5, 0, 0)", p)
	}

	// Quarter orbit: t*speed = pi/2 puts the object on the +Z axis.
	tq := float32(gomath.Pi / 2 / 0.5)
	p = o.PositionAt(tq)
	if gomath.Abs(float64(p.X())) > 1e-5 {
		t.Errorf("quarter orbit X = %f, want 0", p.X())
	}
	if gomath.Abs(float64(p.Z())-2.5) > 1e-5 {
		t.Errorf("quarter orbit Z = %f, want 2.5", p.Z())
	}

	wantY := float32(gomath.Sin(float64(tq*0.5*0.7))) * 0.3
	if gomath.Abs(float64(p.Y()-wantY)) > 1e-6 {
		t.Errorf("bob Y = %f, want %f", p.Y(), wantY)
	}
}

func TestOrbitRadiusInvariant(t *testing.T) {
	o := Orbit{Radius: 2.5, Speed: 0.5, Bob: 0.3}
	for _, time := range []float32{0, 1.3, 7.7, 42.0} {
		p := o.PositionAt(time)
		r := gomath.Hypot(float64(p.X()), float64(p.Z()))
		if gomath.Abs(r-2.5) > 1e-4 {
			t.Errorf("horizontal radius at t=%f is %f, want 2.5", time, r)
		}
		if gomath.Abs(float64(p.Y())) > 0.3+1e-6 {
			t.Errorf("bob at t=%f is %f, exceeds amplitude 0.3", time, p.Y())
		}
	}
}

func TestModelMatrixTranslationAndScale(t *testing.T) {
	obj := NewObject(nil, ShaderRocky, mgl32.Vec3{1, 2, 3}, 2.0)
	obj.RotationSpeed = 0

	m := obj.ModelMatrix(5.0)

	// Origin maps to the object position.
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if origin.X() != 1 || origin.Y() != 2 || origin.Z() != 3 {
		t.Errorf("origin maps to %v, want (1, 2, 3)", origin)
	}

	// A unit X offset scales by 2.
	px := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if gomath.Abs(float64(px.X()-3)) > 1e-5 {
		t.Errorf("unit X maps to X=%f, want 3", px.X())
	}
}

func TestModelMatrixRotation(t *testing.T) {
	obj := NewObject(nil, ShaderRocky, mgl32.Vec3{}, 1.0)

	// Half a turn around Y flips the X axis.
	m := obj.ModelMatrix(gomath.Pi)
	px := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if gomath.Abs(float64(px.X()+1)) > 1e-5 || gomath.Abs(float64(px.Z())) > 1e-5 {
		t.Errorf("half-turn maps unit X to %v, want (-1, 0, 0)", px)
	}

	// Rotation around Y leaves Y untouched.
	py := m.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	if gomath.Abs(float64(py.Y()-1)) > 1e-6 {
		t.Errorf("half-turn maps unit Y to Y=%f, want 1", py.Y())
	}
}

func TestBuildScenes(t *testing.T) {
	sphere := &fakeMesh{}
	ring := &fakeMesh{}
	scenes := BuildScenes(Meshes{Sphere: sphere, Ring: ring})

	if len(scenes) != 5 {
		t.Fatalf("got %d scenes, want 5", len(scenes))
	}

	wantNames := []string{
		"Rocky Planet",
		"Gas Giant + Rings",
		"Crystal Planet",
		"Lava Planet + Moon",
		"Frozen World + Moon",
	}
	for i, name := range wantNames {
		if scenes[i].Name != name {
			t.Errorf("scene %d name = %q, want %q", i, scenes[i].Name, name)
		}
	}

	gas := scenes[1]
	if len(gas.Objects) != 2 {
		t.Fatalf("gas giant scene has %d objects, want 2", len(gas.Objects))
	}
	ringObj := gas.Objects[1]
	if ringObj.Mesh != ring {
		t.Error("ring object does not use the ring mesh")
	}
	if !ringObj.Blend {
		t.Error("ring object should be marked for blending")
	}
	if ringObj.Shader != ShaderRing {
		t.Errorf("ring shader = %v, want ring", ringObj.Shader)
	}
	axisLen := ringObj.RotationAxis.Len()
	if gomath.Abs(float64(axisLen)-1) > 1e-5 {
		t.Errorf("ring rotation axis length = %f, want 1", axisLen)
	}

	for _, idx := range []int{3, 4} {
		s := scenes[idx]
		if len(s.Objects) != 2 {
			t.Fatalf("scene %q has %d objects, want 2", s.Name, len(s.Objects))
		}
		moon := s.Objects[1]
		if moon.Shader != ShaderMoon {
			t.Errorf("scene %q second object shader = %v, want moon", s.Name, moon.Shader)
		}
		if moon.Orbit == nil {
			t.Fatalf("scene %q moon has no orbit", s.Name)
		}
		if moon.Orbit.Radius != 2.5 || moon.Orbit.Speed != 0.5 {
			t.Errorf("scene %q moon orbit = %+v, want radius 2.5 speed 0.5", s.Name, *moon.Orbit)
		}
	}
}

func TestSceneUpdateAppliesOrbits(t *testing.T) {
	sphere := &fakeMesh{}
	planet := NewObject(sphere, ShaderLava, mgl32.Vec3{}, 1.0)
	moon := &Object{
		Mesh:  sphere,
		Scale: 0.3,
		Orbit: &Orbit{Radius: 2.5, Speed: 0.5, Bob: 0.3},
	}
	s := &Scene{Name: "test", Objects: []*Object{planet, moon}}

	s.Update(0)
	if moon.Position.X() != 2.5 {
		t.Errorf("moon X at t=0 = %f, want 2.5", moon.Position.X())
	}
	if planet.Position != (mgl32.Vec3{}) {
		t.Errorf("planet moved to %v, want origin", planet.Position)
	}

	s.Update(3.0)
	want := moon.Orbit.PositionAt(3.0)
	if moon.Position != want {
		t.Errorf("moon position = %v, want %v", moon.Position, want)
	}
}
