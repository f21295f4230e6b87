// local.go runs pdflatex from the host's TeX installation.
//
// We shell out to pdflatex rather than binding any TeX library because
// TeX distributions are only usable as command-line toolchains; the
// subprocess's exit status is the success signal.
package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// texLogTailLines is how much of the pdflatex output is attached to
// compile errors.
const texLogTailLines = 20

// CompileLocal compiles texFile inside workDir with the host's pdflatex.
//
// The compile runs twice: the first pass writes the .aux data that
// hyperref and cross-references need, the second produces the final
// layout. -halt-on-error makes pdflatex exit non-zero on the first
// error instead of prompting interactively.
func CompileLocal(ctx context.Context, workDir, texFile string) error {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return model.WrapCLIError(
			model.ExitTeXFailed,
			"pdflatex not found on PATH (install a TeX distribution or use --engine docker)",
			err,
		)
	}

	for pass := 1; pass <= 2; pass++ {
		if err := runPDFLaTeX(ctx, workDir, texFile); err != nil {
			return err
		}
	}
	return nil
}

// runPDFLaTeX executes a single pdflatex pass as a child process.
// Output (stdout and stderr combined) is captured for error reporting.
func runPDFLaTeX(ctx context.Context, workDir, texFile string) error {
	cmd := exec.CommandContext(ctx, "pdflatex",
		"-interaction=nonstopmode",
		"-halt-on-error",
		texFile,
	)
	// pdflatex writes its outputs next to the input file; the working
	// directory must be where the .tex lives.
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return model.WrapCLIError(
			model.ExitTeXFailed,
			fmt.Sprintf("pdflatex failed:\n%s", logTail(string(output), texLogTailLines)),
			err,
		)
	}

	// pdflatex can exit zero while still reporting problems; surface
	// emergency stops explicitly.
	if strings.Contains(string(output), "Emergency stop") {
		return model.NewCLIError(
			model.ExitTeXFailed,
			fmt.Sprintf("pdflatex reported an emergency stop:\n%s", logTail(string(output), texLogTailLines)),
		)
	}
	return nil
}
