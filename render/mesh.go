package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/samuelyuan/go-gltutorial/scene"
)

const (
	FLOAT_SIZE = 4
	INDEX_SIZE = 4
)

// Mesh is a scene.Mesh uploaded to the GPU.
type Mesh struct {
	Name       string
	Vao        uint32
	Vbo        uint32
	Ibo        uint32
	IndexCount int32
	Material   scene.Material
}

func UploadMesh(m scene.Mesh) *Mesh {
	mesh := &Mesh{
		Name:       m.Name,
		IndexCount: int32(len(m.Indices)),
		Material:   m.Material,
	}

	gl.GenVertexArrays(1, &mesh.Vao)
	gl.BindVertexArray(mesh.Vao)

	// Fill vertex buffer
	vertices := m.Interleave()
	gl.GenBuffers(1, &mesh.Vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.Vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*FLOAT_SIZE, gl.Ptr(vertices), gl.STATIC_DRAW)

	// The element buffer binding is stored in the vertex array
	gl.GenBuffers(1, &mesh.Ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.Ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*INDEX_SIZE, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	// 3 floats for position, 3 floats for normal
	stride := int32(scene.VertexSize * FLOAT_SIZE)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Normal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*FLOAT_SIZE))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return mesh
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.Vao)
	gl.DeleteBuffers(1, &m.Vbo)
	gl.DeleteBuffers(1, &m.Ibo)
}
