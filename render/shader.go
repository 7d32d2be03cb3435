package render

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Uniforms holds the locations of the lighting program's uniforms.
// A location of -1 means the program does not use that uniform.
type Uniforms struct {
	Transformation int32
	CameraPosition int32

	LightDirection         int32
	LightAmbientColor      int32
	LightDiffuseColor      int32
	LightSpecularColor     int32
	LightAmbientIntensity  int32
	LightDiffuseIntensity  int32
	LightSpecularIntensity int32

	MaterialAmbientColor  int32
	MaterialDiffuseColor  int32
	MaterialSpecularColor int32
	MaterialShininess     int32
}

type Shader struct {
	VertexPath    string
	FragmentPath  string
	ProgramShader uint32
	Uniforms      Uniforms
}

// NewShader builds a program from the GLSL files at vertexPath and
// fragmentPath.
func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	sh := &Shader{
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
	}
	if err := sh.Reload(); err != nil {
		return nil, err
	}
	return sh, nil
}

// Reload rebuilds the program from disk. The current program stays in use if
// the new one fails to build.
func (sh *Shader) Reload() error {
	program, err := buildProgram(sh.VertexPath, sh.FragmentPath)
	if err != nil {
		return err
	}

	uniforms := lookupUniforms(program)
	if uniforms.Transformation == -1 {
		gl.DeleteProgram(program)
		return fmt.Errorf("shader %s: uniform transformation not found", sh.VertexPath)
	}

	if sh.ProgramShader != 0 {
		gl.DeleteProgram(sh.ProgramShader)
	}
	sh.ProgramShader = program
	sh.Uniforms = uniforms
	return nil
}

func (sh *Shader) Use() {
	gl.UseProgram(sh.ProgramShader)
}

func (sh *Shader) Delete() {
	if sh.ProgramShader != 0 {
		gl.DeleteProgram(sh.ProgramShader)
		sh.ProgramShader = 0
	}
}

func buildProgram(vertexPath, fragmentPath string) (uint32, error) {
	vertexShader, err := compileShaderFile(vertexPath, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShaderFile(fragmentPath, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("cannot create shader program")
	}
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link %v and %v: %v", vertexPath, fragmentPath, log)
	}

	// Core profiles without a bound vertex array fail validation, so this
	// is only reported
	gl.ValidateProgram(program)
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	if status == gl.FALSE {
		slog.Warn("shader program did not validate", "vertex", vertexPath, "fragment", fragmentPath, "log", programInfoLog(program))
	}

	return program, nil
}

func compileShaderFile(path string, shaderType uint32) (uint32, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read shader: %w", err)
	}

	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %v: %v", path, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func lookupUniforms(program uint32) Uniforms {
	loc := func(name string) int32 {
		return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	return Uniforms{
		Transformation: loc("transformation"),
		CameraPosition: loc("camera_position"),

		LightDirection:         loc("d_light_direction"),
		LightAmbientColor:      loc("d_light_a_color"),
		LightDiffuseColor:      loc("d_light_d_color"),
		LightSpecularColor:     loc("d_light_s_color"),
		LightAmbientIntensity:  loc("d_light_a_intensity"),
		LightDiffuseIntensity:  loc("d_light_d_intensity"),
		LightSpecularIntensity: loc("d_light_s_intensity"),

		MaterialAmbientColor:  loc("material_a_color"),
		MaterialDiffuseColor:  loc("material_d_color"),
		MaterialSpecularColor: loc("material_s_color"),
		MaterialShininess:     loc("material_shininess"),
	}
}
