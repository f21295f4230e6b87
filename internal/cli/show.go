// show.go implements the "resumake show" command, which prints the
// document tree as indented text or, with --json, as the full document
// in JSON.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// NewShowCommand creates the "show" cobra command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resume tree",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResume()
			if err != nil {
				return err
			}

			if IsJSONOutput() {
				printJSON(r)
				return nil
			}

			printResumeText(r)
			return nil
		},
	}
}

// printResumeText renders the tree as human-readable indented text.
func printResumeText(r *model.Resume) {
	if r.Contact.Name != "" {
		fmt.Println(r.Contact.Name)
	}
	contactLine := contactSummary(r.Contact)
	if contactLine != "" {
		fmt.Println(contactLine)
	}
	if r.Contact.Name != "" || contactLine != "" {
		fmt.Println()
	}

	if len(r.Sections) == 0 {
		fmt.Println("(empty resume)")
		return
	}

	for si, sec := range r.Sections {
		fmt.Printf("[%d] %s (%s)\n", si, sec.Title, sec.Kind)
		for ii, item := range sec.Items {
			fmt.Printf("  [%d]\n", ii)
			// Sorted keys keep the output stable across runs.
			for _, key := range item.Keys() {
				value := item[key]
				if key == "highlights" {
					fmt.Printf("      %s:\n", key)
					for _, b := range model.Bullets(value) {
						fmt.Printf("        - %s\n", b)
					}
					continue
				}
				fmt.Printf("      %s: %s\n", key, value)
			}
		}
	}
}

// contactSummary joins the filled-in contact channels for the one-line
// header under the name.
func contactSummary(c model.Contact) string {
	var parts []string
	for _, v := range []string{c.Email, c.Phone, c.LinkedIn, c.GitHub, c.Website} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}
