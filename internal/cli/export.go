// export.go implements the "resumake export" command.
//
// Orchestration steps:
//  1. Load and validate the resume
//  2. Render LaTeX source (built-in layout or a user template)
//  3. For --format latex: write the .tex and stop
//  4. For --format pdf: compile in a scratch directory via the selected
//     engine (local pdflatex or a TeX Live container) and copy the PDF
//     to the output path
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/resumake/internal/latex"
	"github.com/mmr-tortoise/resumake/internal/model"
	"github.com/mmr-tortoise/resumake/internal/pdf"
)

// exportFlags holds the flag values for the export command.
type exportFlags struct {
	format   string // --format: latex or pdf
	template string // --template: path to a custom template
	output   string // --output: output path
	engine   string // --engine: local or docker
	image    string // --image: TeX Live image for the docker engine
	keepTex  bool   // --keep-tex: keep the .tex next to the PDF
}

// NewExportCommand creates the "export" cobra command.
func NewExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the resume to LaTeX or PDF",
		Long: `Render the resume through a LaTeX template and, for PDF output,
compile it with a TeX toolchain.

Without --template the bundled single-page layout is used. A custom
template is a Go text/template over the document tree; referencing an
item field that does not exist fails the export.

The pdf format needs a TeX toolchain: either pdflatex on the host
(--engine local, the default) or Docker (--engine docker), which runs
the compile in a TeX Live container.

Examples:
  resumake export
  resumake export --format latex --output resume.tex
  resumake export --engine docker --output resume.pdf
  resumake export --template minimal.tex.tmpl --keep-tex`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "pdf", "Output format (latex, pdf)")
	cmd.Flags().StringVar(&flags.template, "template", "", "Custom template file (default: built-in layout)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output path (default: resume.tex / resume.pdf)")
	cmd.Flags().StringVar(&flags.engine, "engine", "local", "PDF engine (local, docker)")
	cmd.Flags().StringVar(&flags.image, "image", "", "TeX Live image for --engine docker")
	cmd.Flags().BoolVar(&flags.keepTex, "keep-tex", false, "Keep the rendered .tex next to the PDF")

	return cmd
}

// runExport is the main orchestration function for the export command.
func runExport(cmd *cobra.Command, flags *exportFlags) error {
	if flags.format != "latex" && flags.format != "pdf" {
		return model.NewValidationError("format", "%q is not a valid format (valid: latex, pdf)", flags.format)
	}

	r, err := loadResume()
	if err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	source, err := renderSource(r, flags.template)
	if err != nil {
		return err
	}
	VerboseLog("Rendered %d bytes of LaTeX source", len(source))

	if flags.format == "latex" {
		out := flags.output
		if out == "" {
			out = "resume.tex"
		}
		if err := os.WriteFile(out, []byte(source), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		reportExport(out)
		return nil
	}

	engine, err := pdf.ParseEngine(flags.engine)
	if err != nil {
		return model.NewValidationError("engine", "%v", err)
	}

	out := flags.output
	if out == "" {
		out = "resume.pdf"
	}
	return exportPDF(cmd, flags, source, out, engine)
}

// renderSource picks the rendering path: built-in layout when no
// template is given, otherwise the user's template file.
func renderSource(r *model.Resume, templatePath string) (string, error) {
	if templatePath == "" {
		return latex.RenderBuiltin(r)
	}

	text, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}
	return latex.Render(r, string(text))
}

// exportPDF compiles the rendered source in a scratch directory and
// copies the resulting PDF (and optionally the .tex) to the output path.
func exportPDF(cmd *cobra.Command, flags *exportFlags, source, out string, engine pdf.Engine) error {
	workDir, err := os.MkdirTemp("", "resumake-tex-")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texName := "resume.tex"
	texPath := filepath.Join(workDir, texName)
	if err := os.WriteFile(texPath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", texPath, err)
	}

	VerboseLog("Compiling with engine %s in %s", engine, workDir)
	if err := pdf.Compile(cmd.Context(), engine, workDir, texName, flags.image); err != nil {
		return err
	}

	pdfPath := filepath.Join(workDir, strings.TrimSuffix(texName, ".tex")+".pdf")
	if err := copyFile(pdfPath, out); err != nil {
		return fmt.Errorf("failed to place PDF at %s: %w", out, err)
	}

	if flags.keepTex {
		texOut := strings.TrimSuffix(out, filepath.Ext(out)) + ".tex"
		if err := copyFile(texPath, texOut); err != nil {
			return fmt.Errorf("failed to place .tex at %s: %w", texOut, err)
		}
		VerboseLog("Kept rendered source at %s", texOut)
	}

	reportExport(out)
	return nil
}

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// reportExport prints the export result in text or JSON format.
func reportExport(out string) {
	if IsJSONOutput() {
		printJSON(map[string]string{"output": out, "status": "exported"})
	} else {
		fmt.Printf("Exported %s\n", out)
	}
}
