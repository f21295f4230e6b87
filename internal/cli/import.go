// import.go implements the "resumake import" command, which converts a
// JSON file written by the legacy desktop application into the YAML
// persisted form at the --file path.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/resumake/internal/model"
	"github.com/mmr-tortoise/resumake/internal/store"
)

// NewImportCommand creates the "import" cobra command.
func NewImportCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <legacy.json>",
		Short: "Import a legacy JSON resume",
		Long: `Convert a resume saved by the legacy desktop application (JSON with a
header object and skills/experience/projects/education blocks) into the
YAML document at --file. Comments and trailing commas in the JSON are
tolerated.

Examples:
  resumake import old-resume.json
  resumake import old-resume.json -f cv.yaml --force`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing resume file")

	return cmd
}

// runImport converts the legacy file and saves the result.
func runImport(legacyPath string, force bool) error {
	if !force {
		if _, err := os.Stat(resumeFile); err == nil {
			return model.NewCLIError(
				model.ExitGeneralError,
				fmt.Sprintf("%s already exists (use --force to overwrite)", resumeFile),
			)
		}
	}

	VerboseLog("Importing legacy resume from %s", legacyPath)
	r, err := store.ImportJSONFile(legacyPath)
	if err != nil {
		return err
	}

	if err := store.Save(resumeFile, r); err != nil {
		return err
	}

	if IsJSONOutput() {
		printJSON(map[string]interface{}{
			"source": legacyPath, "file": resumeFile,
			"sections": len(r.Sections), "status": "imported",
		})
	} else {
		fmt.Printf("Imported %s into %s (%d section(s))\n", legacyPath, resumeFile, len(r.Sections))
	}
	return nil
}
