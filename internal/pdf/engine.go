package pdf

import (
	"context"
	"fmt"
	"strings"
)

// Engine selects how the TeX toolchain is invoked.
type Engine string

const (
	// EngineLocal runs pdflatex from the host's TeX installation.
	EngineLocal Engine = "local"

	// EngineDocker runs the compile inside a TeX Live container.
	EngineDocker Engine = "docker"
)

// DefaultImage is the TeX Live image used by the docker engine when the
// user does not override it. The full texlive image is large but carries
// every package the built-in template needs (fontawesome5, enumitem, ...).
const DefaultImage = "texlive/texlive:latest"

// String returns the string representation of Engine.
func (e Engine) String() string {
	return string(e)
}

// IsValid checks whether the Engine value is one of the predefined engines.
func (e Engine) IsValid() bool {
	switch e {
	case EngineLocal, EngineDocker:
		return true
	default:
		return false
	}
}

// ParseEngine converts a string to an Engine.
// Returns an error if the string does not match any valid engine.
func ParseEngine(s string) (Engine, error) {
	engine := Engine(strings.ToLower(s))
	if !engine.IsValid() {
		return "", fmt.Errorf("invalid PDF engine: %q (valid: local, docker)", s)
	}
	return engine, nil
}

// Compile runs the selected engine over texFile (a path relative to
// workDir). On success the PDF sits next to the .tex file with the same
// base name. The image parameter applies to the docker engine only; an
// empty value selects DefaultImage.
func Compile(ctx context.Context, engine Engine, workDir, texFile, image string) error {
	switch engine {
	case EngineDocker:
		if image == "" {
			image = DefaultImage
		}
		return CompileDocker(ctx, workDir, texFile, image)
	default:
		return CompileLocal(ctx, workDir, texFile)
	}
}

// logTail returns the last n lines of TeX output. pdflatex logs are
// verbose; the tail is where the actual error sits.
func logTail(output string, n int) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
