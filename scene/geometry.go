package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

func Pyramid() Mesh {
	return Mesh{
		Name: "pyramid",
		Vertices: []Vertex{
			{mgl32.Vec3{-0.5, -0.5, -5}, mgl32.Vec3{-0.5, -0.25, -0.5}},
			{mgl32.Vec3{0.5, -0.5, -5}, mgl32.Vec3{0.5, -0.25, -0.5}},
			{mgl32.Vec3{-0.5, -0.5, -4}, mgl32.Vec3{-0.5, -0.25, 0.5}},
			{mgl32.Vec3{0.5, -0.5, -4}, mgl32.Vec3{0.5, -0.25, 0.5}},
			{mgl32.Vec3{0, 0.5, -4.5}, mgl32.Vec3{0, 1, 0}},
		},
		Indices: []uint32{
			0, 1, 2, // bottom
			2, 1, 3,
			0, 2, 4, // left
			1, 4, 3, // right
			2, 3, 4, // front
			1, 0, 4, // back
		},
		Material: Material{
			Ambient:   mgl32.Vec3{0.5, 0.5, 0.5},
			Diffuse:   mgl32.Vec3{1, 0.8, 0.8},
			Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
			Shininess: 20,
		},
	}
}

// Grass is a 20x20 field at y = -0.5 split into a 3x3 vertex grid.
func Grass() Mesh {
	up := mgl32.Vec3{0, 1, 0}
	vertices := make([]Vertex, 0, 9)
	for _, z := range []float32{-10, 0, 10} {
		for _, x := range []float32{-10, 0, 10} {
			vertices = append(vertices, Vertex{mgl32.Vec3{x, -0.5, z}, up})
		}
	}

	return Mesh{
		Name:     "grass",
		Vertices: vertices,
		Indices: []uint32{
			0, 3, 4,
			0, 4, 1,
			1, 4, 5,
			1, 5, 2,
			3, 6, 7,
			3, 7, 4,
			4, 7, 8,
			4, 8, 5,
		},
		Material: Material{
			Ambient:   mgl32.Vec3{0.9, 1, 0.9},
			Diffuse:   mgl32.Vec3{0.3, 1, 0.3},
			Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess: 10,
		},
	}
}

// Wall is a 10x10 square at z = -10 tessellated into a grid of
// sideVerts x sideVerts vertices, so per-vertex lighting shows the highlight.
func Wall(sideVerts int) Mesh {
	if sideVerts < 2 {
		panic(fmt.Sprintf("scene: wall needs at least 2 vertices per side, got %d", sideVerts))
	}

	step := 10 / float32(sideVerts-1)
	normal := mgl32.Vec3{0, 0, 1}

	vertices := make([]Vertex, sideVerts*sideVerts)
	for r := 0; r < sideVerts; r++ {
		for c := 0; c < sideVerts; c++ {
			vertices[r*sideVerts+c] = Vertex{
				Position: mgl32.Vec3{-5 + step*float32(r), -0.5 + step*float32(c), -10},
				Normal:   normal,
			}
		}
	}

	quads := sideVerts - 1
	indices := make([]uint32, 0, quads*quads*6)
	for r := 0; r < quads; r++ {
		for c := 0; c < quads; c++ {
			v := uint32(r*sideVerts + c)
			side := uint32(sideVerts)
			indices = append(indices,
				v, v+1, v+side,
				v+1, v+side+1, v+side,
			)
		}
	}

	return Mesh{
		Name:     "wall",
		Vertices: vertices,
		Indices:  indices,
		Material: Material{
			Ambient:   mgl32.Vec3{0.5, 0.5, 0.5},
			Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
			Specular:  mgl32.Vec3{1, 1, 1},
			Shininess: 50,
		},
	}
}
