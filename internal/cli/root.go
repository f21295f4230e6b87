// Package cli implements the cobra-based CLI commands for resumake.
//
// Each subcommand (new, contact, section, item, show, check, import,
// export) is defined in its own file within this package. This file
// defines the root command that serves as the parent for all subcommands
// and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/resumake/internal/model"
	"github.com/mmr-tortoise/resumake/internal/store"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// resumeFile is the path of the resume being edited.
	resumeFile string

	// jsonOutput controls whether command output is formatted as JSON.
	// When true, all output uses structured JSON format for machine
	// consumption. When false (default), output is human-readable text.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by
// subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "resumake",
		Short: "Compose resumes and export them to LaTeX/PDF",
		Long: `resumake maintains a resume as a structured YAML document — ordered
sections of field/value items — and exports it through a LaTeX template
to a polished single-page PDF.

Edit operations (section add/move, item add/edit, ...) load the file,
apply one change, and save atomically; a rejected change never corrupts
the document.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands.
	rootCmd.PersistentFlags().StringVarP(&resumeFile, "file", "f", "resume.yaml", "Resume file to operate on")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Register subcommands. Each subcommand is defined in its own file
	// and returns a *cobra.Command.
	rootCmd.AddCommand(NewNewCommand())
	rootCmd.AddCommand(NewContactCommand())
	rootCmd.AddCommand(NewSectionCommand())
	rootCmd.AddCommand(NewItemCommand())
	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewExportCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them into
// appropriate OS exit codes: CLIErrors carry their own code, and the
// domain error kinds (validation/index/parse/template) map to fixed
// codes via model.ExitCodeFor.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(int(model.ExitCodeFor(err)))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(err error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
				"code":    int(model.ExitCodeFor(err)),
			},
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// printJSON writes a value to stdout as indented JSON. Used by every
// subcommand's --json output path.
func printJSON(v interface{}) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}

// loadResume loads the resume named by the --file flag.
func loadResume() (*model.Resume, error) {
	VerboseLog("Loading resume from %s", resumeFile)
	return store.Load(resumeFile)
}

// saveResume persists the resume back to the --file path atomically.
func saveResume(r *model.Resume) error {
	VerboseLog("Saving resume to %s", resumeFile)
	return store.Save(resumeFile, r)
}

// mutateResume runs a single edit operation between a load and an atomic
// save. Every mutating subcommand goes through here, which is what gives
// the CLI its load → apply one change → save shape.
func mutateResume(op func(r *model.Resume) error) error {
	r, err := loadResume()
	if err != nil {
		return err
	}
	if err := op(r); err != nil {
		return err
	}
	return saveResume(r)
}
