// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BlitVertexShader is the vertex shader for the full-screen blit.
//
//go:embed blit.vert
var BlitVertexShader string

// BlitFragmentShader is the fragment shader for the full-screen blit.
//
//go:embed blit.frag
var BlitFragmentShader string

// BackgroundVertexShader is the vertex shader for the scrolling background.
//
//go:embed background.vert
var BackgroundVertexShader string

// BackgroundFragmentShader is the fragment shader for the scrolling background.
//
//go:embed background.frag
var BackgroundFragmentShader string

// ObjectVertexShader is the vertex shader for instanced object rendering.
//
//go:embed object.vert
var ObjectVertexShader string

// ObjectFragmentShader is the fragment shader for instanced object rendering.
//
//go:embed object.frag
var ObjectFragmentShader string

// GridVertexShader is the vertex shader for the grid-instanced tilemap.
//
//go:embed grid.vert
var GridVertexShader string

// GridFragmentShader is the fragment shader for the grid-instanced tilemap.
//
//go:embed grid.frag
var GridFragmentShader string
