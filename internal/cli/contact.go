// contact.go implements the "resumake contact" command, which updates the
// resume's contact header. Only flags the user actually passed are
// applied, so unset flags never clear existing values; an empty string
// value clears a field explicitly.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// NewContactCommand creates the "contact" cobra command.
func NewContactCommand() *cobra.Command {
	var c model.Contact

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Set contact header fields",
		Long: `Update the resume's contact header. Each flag sets one field; flags
not given leave the current value in place. Values are format-checked
(email address, 10-digit phone, LinkedIn/GitHub URL prefixes) and a
failing value rejects the whole update.

Examples:
  resumake contact --name "Ada Lovelace" --email ada@example.com
  resumake contact --github https://github.com/ada
  resumake contact --phone ""`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runContact(cmd, &c)
		},
	}

	cmd.Flags().StringVar(&c.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&c.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&c.Phone, "phone", "", "Phone number (10 digits)")
	cmd.Flags().StringVar(&c.LinkedIn, "linkedin", "", "LinkedIn profile URL")
	cmd.Flags().StringVar(&c.GitHub, "github", "", "GitHub profile URL")
	cmd.Flags().StringVar(&c.Website, "website", "", "Portfolio/website URL")

	return cmd
}

// runContact merges the changed flags into the stored contact and saves.
func runContact(cmd *cobra.Command, updated *model.Contact) error {
	return mutateResume(func(r *model.Resume) error {
		merged := r.Contact

		// cobra tracks which flags were explicitly set; only those are
		// merged, which is what lets "" clear a field deliberately.
		apply := []struct {
			flag string
			dst  *string
			src  string
		}{
			{"name", &merged.Name, updated.Name},
			{"email", &merged.Email, updated.Email},
			{"phone", &merged.Phone, updated.Phone},
			{"linkedin", &merged.LinkedIn, updated.LinkedIn},
			{"github", &merged.GitHub, updated.GitHub},
			{"website", &merged.Website, updated.Website},
		}
		changed := false
		for _, a := range apply {
			if cmd.Flags().Changed(a.flag) {
				*a.dst = a.src
				changed = true
			}
		}
		if !changed {
			return model.NewCLIError(model.ExitGeneralError, "no contact flags given (see `resumake contact --help`)")
		}

		if err := r.SetContact(merged); err != nil {
			return err
		}

		if IsJSONOutput() {
			printJSON(r.Contact)
		} else {
			fmt.Println("Updated contact header")
		}
		return nil
	})
}
