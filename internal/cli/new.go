// new.go implements the "resumake new" command, which creates an empty
// resume file at the --file path.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/resumake/internal/model"
	"github.com/mmr-tortoise/resumake/internal/store"
)

// newFlags holds the flag values for the new command.
type newFlags struct {
	name  string // --name: contact name to seed the header with
	force bool   // --force: overwrite an existing file
}

// NewNewCommand creates the "new" cobra command.
func NewNewCommand() *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty resume file",
		Long: `Create an empty resume document at the path given by --file
(default: resume.yaml). Refuses to overwrite an existing file
unless --force is given.

Examples:
  resumake new
  resumake new --name "Ada Lovelace"
  resumake new -f cv.yaml --force`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Contact name for the resume header")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing resume file")

	return cmd
}

// runNew creates and saves the empty document.
func runNew(flags *newFlags) error {
	if !flags.force {
		if _, err := os.Stat(resumeFile); err == nil {
			return model.NewCLIError(
				model.ExitGeneralError,
				fmt.Sprintf("%s already exists (use --force to overwrite)", resumeFile),
			)
		}
	}

	r := model.NewResume()
	r.Contact.Name = flags.name

	if err := store.Save(resumeFile, r); err != nil {
		return err
	}

	if IsJSONOutput() {
		printJSON(map[string]string{"file": resumeFile, "status": "created"})
	} else {
		fmt.Printf("Created %s\n", resumeFile)
	}
	return nil
}
