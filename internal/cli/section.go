// section.go implements the "resumake section" command group:
// add, remove, move and list operations on resume sections.
//
// Sections are addressed by zero-based index, matching the order shown
// by "section list" and "show".
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// NewSectionCommand creates the "section" command group.
func NewSectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Add, remove, move, and list resume sections",
	}

	cmd.AddCommand(newSectionAddCommand())
	cmd.AddCommand(newSectionRemoveCommand())
	cmd.AddCommand(newSectionMoveCommand())
	cmd.AddCommand(newSectionListCommand())

	return cmd
}

// newSectionAddCommand creates "section add <title>".
func newSectionAddCommand() *cobra.Command {
	var kindStr string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Append a new empty section",
		Long: `Append a new empty section with the given title. The title must be
non-empty and unique within the resume. The kind controls which item
fields are required and how the built-in template lays the section out.

Examples:
  resumake section add Experience --kind experience
  resumake section add "Volunteer Work" --kind custom`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseSectionKind(kindStr)
			if err != nil {
				return model.NewValidationError("kind", "%v", err)
			}
			return mutateResume(func(r *model.Resume) error {
				sec, err := r.AddSection(args[0], kind)
				if err != nil {
					return err
				}
				index := len(r.Sections) - 1
				if IsJSONOutput() {
					printJSON(map[string]interface{}{
						"index": index, "title": sec.Title, "kind": sec.Kind.String(),
					})
				} else {
					fmt.Printf("Added section %q (%s) at index %d\n", sec.Title, sec.Kind, index)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&kindStr, "kind", "custom",
		"Section kind (experience, education, project, skills, custom)")

	return cmd
}

// newSectionRemoveCommand creates "section remove <index>".
func newSectionRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Delete the section at the given index",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0], "section index")
			if err != nil {
				return err
			}
			return mutateResume(func(r *model.Resume) error {
				title := ""
				if index >= 0 && index < len(r.Sections) {
					title = r.Sections[index].Title
				}
				if err := r.RemoveSection(index); err != nil {
					return err
				}
				if IsJSONOutput() {
					printJSON(map[string]interface{}{"index": index, "title": title, "status": "removed"})
				} else {
					fmt.Printf("Removed section %q\n", title)
				}
				return nil
			})
		},
	}
}

// newSectionMoveCommand creates "section move <from> <to>".
func newSectionMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Reorder a section",
		Args:  cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[0], "from index")
			if err != nil {
				return err
			}
			to, err := parseIndex(args[1], "to index")
			if err != nil {
				return err
			}
			return mutateResume(func(r *model.Resume) error {
				if err := r.MoveSection(from, to); err != nil {
					return err
				}
				if IsJSONOutput() {
					printJSON(map[string]interface{}{"from": from, "to": to, "status": "moved"})
				} else {
					fmt.Printf("Moved section %d to position %d\n", from, to)
				}
				return nil
			})
		},
	}
}

// newSectionListCommand creates "section list".
func newSectionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sections in order",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadResume()
			if err != nil {
				return err
			}

			if IsJSONOutput() {
				type sectionJSON struct {
					Index int    `json:"index"`
					Title string `json:"title"`
					Kind  string `json:"kind"`
					Items int    `json:"items"`
				}
				out := make([]sectionJSON, 0, len(r.Sections))
				for i, sec := range r.Sections {
					out = append(out, sectionJSON{i, sec.Title, sec.Kind.String(), len(sec.Items)})
				}
				printJSON(out)
				return nil
			}

			if len(r.Sections) == 0 {
				fmt.Println("No sections")
				return nil
			}
			for i, sec := range r.Sections {
				fmt.Printf("%3d  %-24s %-12s %d item(s)\n", i, sec.Title, sec.Kind, len(sec.Items))
			}
			return nil
		},
	}
}

// parseIndex converts a positional argument to an index. Non-numeric
// input is a user error, not an out-of-range index.
func parseIndex(arg, what string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, model.NewValidationError(what, "%q is not a number", arg)
	}
	return index, nil
}
