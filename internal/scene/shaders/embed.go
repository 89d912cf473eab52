// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PlanetVertexShader is the vertex shader shared by every planet program.
//
//go:embed planet.vert
var PlanetVertexShader string

// RockyFragmentShader renders the rocky planet surface.
//
//go:embed rocky.frag
var RockyFragmentShader string

// GasGiantFragmentShader renders the banded gas giant.
//
//go:embed gasgiant.frag
var GasGiantFragmentShader string

// CrystalFragmentShader renders the iridescent crystal planet.
//
//go:embed crystal.frag
var CrystalFragmentShader string

// LavaFragmentShader renders the cracked lava planet.
//
//go:embed lava.frag
var LavaFragmentShader string

// IceFragmentShader renders the frozen world.
//
//go:embed ice.frag
var IceFragmentShader string

// MoonFragmentShader renders the cratered moon.
//
//go:embed moon.frag
var MoonFragmentShader string

// RingFragmentShader renders the translucent planetary ring.
//
//go:embed ring.frag
var RingFragmentShader string
