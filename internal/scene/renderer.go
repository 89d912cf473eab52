package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lumenforge/orrery/internal/engine/shader"
	"github.com/lumenforge/orrery/internal/scene/shaders"
)

// program is a compiled planet program with its uniform locations.
type program struct {
	id            uint32
	locModel      int32
	locView       int32
	locProjection int32
	locTime       int32
}

// Renderer draws scenes with the per-shader GLSL programs.
type Renderer struct {
	programs map[ShaderKind]*program
}

// NewRenderer compiles all planet programs.
// Must be called with a current OpenGL context.
func NewRenderer() (*Renderer, error) {
	sources := map[ShaderKind]string{
		ShaderRocky:    shaders.RockyFragmentShader,
		ShaderGasGiant: shaders.GasGiantFragmentShader,
		ShaderCrystal:  shaders.CrystalFragmentShader,
		ShaderLava:     shaders.LavaFragmentShader,
		ShaderIce:      shaders.IceFragmentShader,
		ShaderMoon:     shaders.MoonFragmentShader,
		ShaderRing:     shaders.RingFragmentShader,
	}

	r := &Renderer{
		programs: make(map[ShaderKind]*program, len(sources)),
	}

	for kind, fragSrc := range sources {
		id, err := shader.CompileProgram(shaders.PlanetVertexShader, fragSrc)
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("%s shader: %w", kind, err)
		}
		r.programs[kind] = &program{
			id:            id,
			locModel:      shader.GetUniform(id, "uModel"),
			locView:       shader.GetUniform(id, "uView"),
			locProjection: shader.GetUniform(id, "uProjection"),
			locTime:       shader.GetUniform(id, "uTime"),
		}
	}

	return r, nil
}

// Render draws the scene: opaque objects first, then translucent ones
// with blending enabled and depth writes off.
func (r *Renderer) Render(s *Scene, view, projection mgl32.Mat4, time float32) {
	for _, obj := range s.Objects {
		if !obj.Blend {
			r.drawObject(obj, view, projection, time)
		}
	}

	blendPass := false
	for _, obj := range s.Objects {
		if obj.Blend {
			if !blendPass {
				gl.Enable(gl.BLEND)
				gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
				gl.DepthMask(false)
				blendPass = true
			}
			r.drawObject(obj, view, projection, time)
		}
	}
	if blendPass {
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

func (r *Renderer) drawObject(obj *Object, view, projection mgl32.Mat4, time float32) {
	if obj.Mesh == nil {
		return
	}

	p, ok := r.programs[obj.Shader]
	if !ok {
		return
	}

	gl.UseProgram(p.id)

	model := obj.ModelMatrix(time)
	gl.UniformMatrix4fv(p.locModel, 1, false, &model[0])
	gl.UniformMatrix4fv(p.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(p.locProjection, 1, false, &projection[0])
	gl.Uniform1f(p.locTime, time)

	obj.Mesh.Draw()
}

// Destroy releases all compiled programs.
func (r *Renderer) Destroy() {
	for _, p := range r.programs {
		if p.id != 0 {
			gl.DeleteProgram(p.id)
		}
	}
	r.programs = nil
}
