package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene is a named collection of objects.
type Scene struct {
	Name    string
	Objects []*Object
}

// Update advances orbital positions to the given time.
func (s *Scene) Update(time float32) {
	for _, obj := range s.Objects {
		if obj.Orbit != nil {
			obj.Position = obj.Orbit.PositionAt(time)
		}
	}
}

// Meshes groups the drawables the scenes are built from.
type Meshes struct {
	Sphere Drawable
	Ring   Drawable
}

// BuildScenes constructs the five planet scenes.
func BuildScenes(m Meshes) []*Scene {
	return []*Scene{
		{
			Name: "Rocky Planet",
			Objects: []*Object{
				NewObject(m.Sphere, ShaderRocky, mgl32.Vec3{}, 1.0),
			},
		},
		{
			Name: "Gas Giant + Rings",
			Objects: []*Object{
				NewObject(m.Sphere, ShaderGasGiant, mgl32.Vec3{}, 1.2),
				{
					Mesh:          m.Ring,
					Shader:        ShaderRing,
					Scale:         1.0,
					RotationSpeed: 0.3,
					RotationAxis:  mgl32.Vec3{0.3, 1.0, 0.1}.Normalize(),
					Blend:         true,
				},
			},
		},
		{
			Name: "Crystal Planet",
			Objects: []*Object{
				NewObject(m.Sphere, ShaderCrystal, mgl32.Vec3{}, 1.0),
			},
		},
		{
			Name: "Lava Planet + Moon",
			Objects: []*Object{
				NewObject(m.Sphere, ShaderLava, mgl32.Vec3{}, 1.0),
				{
					Mesh:          m.Sphere,
					Shader:        ShaderMoon,
					Scale:         0.3,
					RotationSpeed: 0.5,
					RotationAxis:  mgl32.Vec3{0, 1, 0},
					Orbit:         &Orbit{Radius: 2.5, Speed: 0.5, Bob: 0.3},
				},
			},
		},
		{
			Name: "Frozen World + Moon",
			Objects: []*Object{
				NewObject(m.Sphere, ShaderIce, mgl32.Vec3{}, 1.0),
				{
					Mesh:          m.Sphere,
					Shader:        ShaderMoon,
					Scale:         0.25,
					RotationSpeed: 0.3,
					RotationAxis:  mgl32.Vec3{0, 1, 0},
					Orbit:         &Orbit{Radius: 2.5, Speed: 0.5, Bob: 0.3},
				},
			},
		},
	}
}
