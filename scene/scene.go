// Package scene holds the CPU-side geometry, materials and light of the
// lighting demo.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// 3 floats for position, 3 floats for normal
	VertexSize = 6
)

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3

	AmbientIntensity  float32
	DiffuseIntensity  float32
	SpecularIntensity float32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Material Material
}

type Scene struct {
	Meshes []Mesh
	Light  DirectionalLight
}

// Interleave packs the vertices as position followed by normal.
func (m Mesh) Interleave() []float32 {
	buffer := make([]float32, 0, len(m.Vertices)*VertexSize)
	for _, v := range m.Vertices {
		buffer = append(buffer, v.Position[:]...)
		buffer = append(buffer, v.Normal[:]...)
	}
	return buffer
}

func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh %s: %d indices do not form triangles", m.Name, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("mesh %s: index %d at %d out of range (%d vertices)", m.Name, idx, i, len(m.Vertices))
		}
	}
	return nil
}

func DefaultLight() DirectionalLight {
	return DirectionalLight{
		Direction:         mgl32.Vec3{0.5, -0.5, -1},
		Ambient:           mgl32.Vec3{0.05, 0.03, 0},
		Diffuse:           mgl32.Vec3{0.5, 0.4, 0.3},
		Specular:          mgl32.Vec3{0.6, 0.6, 0.7},
		AmbientIntensity:  1,
		DiffuseIntensity:  1,
		SpecularIntensity: 1,
	}
}

// Lighting returns the demo scene: grass, pyramid and wall under one light.
func Lighting(light DirectionalLight) Scene {
	return Scene{
		Meshes: []Mesh{Grass(), Pyramid(), Wall(16)},
		Light:  light,
	}
}
