package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightingMeshesAreValid(t *testing.T) {
	s := Lighting(DefaultLight())
	require.Len(t, s.Meshes, 3)

	counts := map[string]int{"grass": 8, "pyramid": 6, "wall": 450}
	for _, m := range s.Meshes {
		assert.NoError(t, m.Validate(), m.Name)
		assert.Equal(t, counts[m.Name], m.TriangleCount(), m.Name)
	}
}

func TestWallGrid(t *testing.T) {
	w := Wall(3)
	assert.Len(t, w.Vertices, 9)
	assert.Equal(t, 8, w.TriangleCount())

	first := w.Vertices[0].Position
	last := w.Vertices[len(w.Vertices)-1].Position
	assert.Equal(t, mgl32.Vec3{-5, -0.5, -10}, first)
	assert.Equal(t, mgl32.Vec3{5, 9.5, -10}, last)

	assert.Panics(t, func() { Wall(1) })
}

func TestInterleave(t *testing.T) {
	m := Mesh{
		Vertices: []Vertex{
			{mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}},
			{mgl32.Vec3{7, 8, 9}, mgl32.Vec3{10, 11, 12}},
		},
	}
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, m.Interleave())
}

func TestValidate(t *testing.T) {
	m := Pyramid()
	m.Indices = append(m.Indices, 0)
	assert.Error(t, m.Validate())

	m = Pyramid()
	m.Indices[2] = 5
	assert.ErrorContains(t, m.Validate(), "out of range")
}
