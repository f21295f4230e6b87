// item.go implements the "resumake item" command group: add, edit,
// remove and move operations on items within a section.
//
// Fields are passed as repeated --field key=value flags. Multi-line
// values (the highlights field) use "\n" escapes or shell-quoted
// literal newlines.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// NewItemCommand creates the "item" command group.
func NewItemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Add, edit, remove, and move items within a section",
	}

	cmd.AddCommand(newItemAddCommand())
	cmd.AddCommand(newItemEditCommand())
	cmd.AddCommand(newItemRemoveCommand())
	cmd.AddCommand(newItemMoveCommand())

	return cmd
}

// newItemAddCommand creates "item add <section-index>".
func newItemAddCommand() *cobra.Command {
	var fieldFlags []string

	cmd := &cobra.Command{
		Use:   "add <section-index>",
		Short: "Append an item to a section",
		Long: `Append an item to the section at the given index. Every required
field of the section's kind must be supplied (the value may be empty).

Examples:
  resumake item add 0 --field school="MIT" --field degree="BSc Computer Science"
  resumake item add 1 --field position=Engineer --field company=Acme \
      --field start=01-06-2022 --field end=present`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			sectionIndex, err := parseIndex(args[0], "section index")
			if err != nil {
				return err
			}
			fields, err := parseFields(fieldFlags)
			if err != nil {
				return err
			}
			return mutateResume(func(r *model.Resume) error {
				item, err := r.AddItem(sectionIndex, fields)
				if err != nil {
					return err
				}
				itemIndex := len(r.Sections[sectionIndex].Items) - 1
				if IsJSONOutput() {
					printJSON(map[string]interface{}{
						"section": sectionIndex, "index": itemIndex, "fields": item,
					})
				} else {
					fmt.Printf("Added item %d to section %q\n", itemIndex, r.Sections[sectionIndex].Title)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&fieldFlags, "field", nil, "Item field as key=value (repeatable)")

	return cmd
}

// newItemEditCommand creates "item edit <section-index> <item-index>".
func newItemEditCommand() *cobra.Command {
	var fieldFlags []string

	cmd := &cobra.Command{
		Use:   "edit <section-index> <item-index>",
		Short: "Merge fields into an existing item",
		Long: `Merge the given fields into the item at the given position. Fields
not named keep their current values.

Examples:
  resumake item edit 1 0 --field end=01-03-2024
  resumake item edit 0 2 --field gpa=3.9`,

		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			sectionIndex, err := parseIndex(args[0], "section index")
			if err != nil {
				return err
			}
			itemIndex, err := parseIndex(args[1], "item index")
			if err != nil {
				return err
			}
			fields, err := parseFields(fieldFlags)
			if err != nil {
				return err
			}
			return mutateResume(func(r *model.Resume) error {
				if err := r.EditItem(sectionIndex, itemIndex, fields); err != nil {
					return err
				}
				if IsJSONOutput() {
					printJSON(map[string]interface{}{
						"section": sectionIndex, "index": itemIndex,
						"fields": r.Sections[sectionIndex].Items[itemIndex],
					})
				} else {
					fmt.Printf("Updated item %d of section %q\n", itemIndex, r.Sections[sectionIndex].Title)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&fieldFlags, "field", nil, "Item field as key=value (repeatable)")

	return cmd
}

// newItemRemoveCommand creates "item remove <section-index> <item-index>".
func newItemRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <section-index> <item-index>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			sectionIndex, err := parseIndex(args[0], "section index")
			if err != nil {
				return err
			}
			itemIndex, err := parseIndex(args[1], "item index")
			if err != nil {
				return err
			}
			return mutateResume(func(r *model.Resume) error {
				if err := r.RemoveItem(sectionIndex, itemIndex); err != nil {
					return err
				}
				if IsJSONOutput() {
					printJSON(map[string]interface{}{
						"section": sectionIndex, "index": itemIndex, "status": "removed",
					})
				} else {
					fmt.Printf("Removed item %d from section %q\n", itemIndex, r.Sections[sectionIndex].Title)
				}
				return nil
			})
		},
	}
}

// newItemMoveCommand creates "item move <section-index> <from> <to>".
func newItemMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <section-index> <from> <to>",
		Short: "Reorder an item within its section",
		Args:  cobra.ExactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			sectionIndex, err := parseIndex(args[0], "section index")
			if err != nil {
				return err
			}
			from, err := parseIndex(args[1], "from index")
			if err != nil {
				return err
			}
			to, err := parseIndex(args[2], "to index")
			if err != nil {
				return err
			}
			return mutateResume(func(r *model.Resume) error {
				if err := r.MoveItem(sectionIndex, from, to); err != nil {
					return err
				}
				if IsJSONOutput() {
					printJSON(map[string]interface{}{
						"section": sectionIndex, "from": from, "to": to, "status": "moved",
					})
				} else {
					fmt.Printf("Moved item %d to position %d in section %q\n",
						from, to, r.Sections[sectionIndex].Title)
				}
				return nil
			})
		},
	}
}

// parseFields converts repeated key=value flags into an item field map.
// The value may contain "=" (URLs); only the first "=" splits. "\n"
// escapes in values become real newlines so multi-bullet highlights can
// be passed on one line.
func parseFields(flags []string) (model.Item, error) {
	fields := make(model.Item, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, model.NewValidationError("field", "%q is not in key=value form", f)
		}
		fields[key] = strings.ReplaceAll(value, `\n`, "\n")
	}
	return fields, nil
}
