package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed shaders
var shaders embed.FS

// LoadShader returns a built-in GLSL source as a null-terminated string
// for OpenGL. A file of the same name under dir, when dir is not empty,
// takes precedence.
func LoadShader(dir, name string) (string, error) {
	var b []byte
	var err error
	if dir != "" {
		b, err = os.ReadFile(filepath.Join(dir, name))
	}
	if dir == "" || os.IsNotExist(err) {
		b, err = shaders.ReadFile("shaders/" + name)
	}
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
