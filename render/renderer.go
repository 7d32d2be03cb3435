package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/samuelyuan/go-gltutorial/scene"
)

type Renderer struct {
	Shader *Shader
	Meshes []*Mesh
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Init loads the GL function pointers and builds the shader program.
// A context must be current.
func (r *Renderer) Init(vertexPath, fragmentPath string) error {
	if err := gl.Init(); err != nil {
		return err
	}

	shader, err := NewShader(vertexPath, fragmentPath)
	if err != nil {
		return err
	}
	r.Shader = shader

	gl.ClearColor(0.1, 0.3, 0.1, 0.0)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (r *Renderer) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (r *Renderer) Upload(s scene.Scene) {
	for _, m := range s.Meshes {
		r.Meshes = append(r.Meshes, UploadMesh(m))
	}
}

func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (r *Renderer) PrepareFrame(transformation mgl32.Mat4, cameraPosition mgl32.Vec3, light scene.DirectionalLight) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.Shader.Use()
	u := r.Shader.Uniforms

	// Pass the camera to the shader
	gl.UniformMatrix4fv(u.Transformation, 1, false, &transformation[0])
	gl.Uniform3fv(u.CameraPosition, 1, &cameraPosition[0])

	gl.Uniform3fv(u.LightDirection, 1, &light.Direction[0])
	gl.Uniform3fv(u.LightAmbientColor, 1, &light.Ambient[0])
	gl.Uniform3fv(u.LightDiffuseColor, 1, &light.Diffuse[0])
	gl.Uniform3fv(u.LightSpecularColor, 1, &light.Specular[0])
	gl.Uniform1f(u.LightAmbientIntensity, light.AmbientIntensity)
	gl.Uniform1f(u.LightDiffuseIntensity, light.DiffuseIntensity)
	gl.Uniform1f(u.LightSpecularIntensity, light.SpecularIntensity)
}

func (r *Renderer) DrawMesh(mesh *Mesh) {
	u := r.Shader.Uniforms
	material := mesh.Material

	gl.Uniform3fv(u.MaterialAmbientColor, 1, &material.Ambient[0])
	gl.Uniform3fv(u.MaterialDiffuseColor, 1, &material.Diffuse[0])
	gl.Uniform3fv(u.MaterialSpecularColor, 1, &material.Specular[0])
	gl.Uniform1f(u.MaterialShininess, material.Shininess)

	gl.BindVertexArray(mesh.Vao)
	gl.DrawElements(gl.TRIANGLES, mesh.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (r *Renderer) DrawAll() {
	for _, mesh := range r.Meshes {
		r.DrawMesh(mesh)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) Delete() {
	for _, mesh := range r.Meshes {
		mesh.Delete()
	}
	r.Meshes = nil
	if r.Shader != nil {
		r.Shader.Delete()
	}
}
