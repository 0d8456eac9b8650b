// Package scene renders uploaded meshes with a single lit pipeline.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/hollybyte/skydrop/internal/engine/geometry"
	"github.com/hollybyte/skydrop/internal/engine/scene/shaders"
	"github.com/hollybyte/skydrop/internal/engine/shader"
	"github.com/hollybyte/skydrop/internal/logger"
	"github.com/hollybyte/skydrop/pkg/math"
)

// GPUMesh is a mesh uploaded to the GPU, plus the texture handles it was
// built with. Caller frees it through Renderer.Delete.
type GPUMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32

	texture   uint32
	normalMap uint32
	heightMap uint32
}

// Renderer owns the scene shader program and draws uploaded meshes.
// Create it after the OpenGL context exists.
type Renderer struct {
	program uint32

	locModel       int32
	locView        int32
	locProjection  int32
	locLightDir    int32
	locViewPos     int32
	locTexture     int32
	locNormalMap   int32
	locUseNormal   int32
	locHeightMap   int32
	locIsTerrain   int32
	locHeightScale int32

	heightScale float32
}

// New initializes OpenGL state and compiles the scene program.
// heightScale converts full height-map intensity to world units for
// terrain displacement.
func New(heightScale float32) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger.Sugar.Infof("OpenGL %s, %s", version, gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	// Sky color
	gl.ClearColor(0.5, 0.7, 1.0, 1.0)

	program, err := shader.CompileProgram(shaders.VertexShader, shaders.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}

	r := &Renderer{
		program:     program,
		heightScale: heightScale,

		locModel:       shader.GetUniform(program, "uModel"),
		locView:        shader.GetUniform(program, "uView"),
		locProjection:  shader.GetUniform(program, "uProjection"),
		locLightDir:    shader.GetUniform(program, "uLightDir"),
		locViewPos:     shader.GetUniform(program, "uViewPos"),
		locTexture:     shader.GetUniform(program, "uTexture"),
		locNormalMap:   shader.GetUniform(program, "uNormalMap"),
		locUseNormal:   shader.GetUniform(program, "uUseNormalMap"),
		locHeightMap:   shader.GetUniform(program, "uHeightMap"),
		locIsTerrain:   shader.GetUniform(program, "uIsTerrain"),
		locHeightScale: shader.GetUniform(program, "uHeightScale"),
	}

	return r, nil
}

// Close releases the shader program.
func (r *Renderer) Close() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Upload moves a mesh to the GPU with the shared interleaved layout:
// position, normal, UV, tangent, bitangent bound by fixed byte offset.
func (r *Renderer) Upload(m *geometry.Mesh) *GPUMesh {
	gm := &GPUMesh{
		indexCount: int32(len(m.Indices)),
		texture:    m.Texture,
		normalMap:  m.NormalMap,
		heightMap:  m.HeightMap,
	}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	stride := int32(unsafe.Sizeof(geometry.Vertex{}))

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride),
		unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4,
		unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, 8*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(4, 3, gl.FLOAT, false, stride, 11*4)
	gl.EnableVertexAttribArray(4)

	gl.BindVertexArray(0)
	return gm
}

// Delete frees the mesh's GPU buffers. Texture handles are shared across
// meshes and stay alive.
func (r *Renderer) Delete(gm *GPUMesh) {
	gl.DeleteBuffers(1, &gm.vbo)
	gl.DeleteBuffers(1, &gm.ebo)
	gl.DeleteVertexArrays(1, &gm.vao)
}

// BeginFrame clears the frame and sets the per-frame camera and light
// uniforms.
func (r *Renderer) BeginFrame(view, projection math.Mat4, eye, lightDir math.Vec3) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())
	gl.Uniform3f(r.locLightDir, lightDir.X, lightDir.Y, lightDir.Z)
	gl.Uniform3f(r.locViewPos, eye.X, eye.Y, eye.Z)
	gl.Uniform1f(r.locHeightScale, r.heightScale)
}

// ReadPixels copies the current framebuffer into a fresh RGBA slice,
// rows in GL bottom-up order.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Draw renders a mesh with the given model matrix.
func (r *Renderer) Draw(gm *GPUMesh, model math.Mat4) {
	r.draw(gm, model, false)
}

// DrawTerrain renders the terrain mesh: the vertex stage displaces it by
// the mesh's height map.
func (r *Renderer) DrawTerrain(gm *GPUMesh, model math.Mat4) {
	r.draw(gm, model, true)
}

func (r *Renderer) draw(gm *GPUMesh, model math.Mat4, isTerrain bool) {
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, gm.texture)
	gl.Uniform1i(r.locTexture, 0)

	if gm.normalMap != 0 {
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, gm.normalMap)
		gl.Uniform1i(r.locNormalMap, 1)
		gl.Uniform1i(r.locUseNormal, 1)
	} else {
		gl.Uniform1i(r.locUseNormal, 0)
	}

	if isTerrain {
		gl.ActiveTexture(gl.TEXTURE2)
		gl.BindTexture(gl.TEXTURE_2D, gm.heightMap)
		gl.Uniform1i(r.locHeightMap, 2)
		gl.Uniform1i(r.locIsTerrain, 1)
	} else {
		gl.Uniform1i(r.locIsTerrain, 0)
	}

	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
