package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lootboard/internal/board"
	"github.com/mesh-intelligence/lootboard/internal/validation"
	"github.com/mesh-intelligence/lootboard/pkg/types"
)

func newItemCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Add, edit, or remove loot types",
	}
	cmd.AddCommand(newItemAddCmd(f))
	cmd.AddCommand(newItemEditCmd(f))
	cmd.AddCommand(newItemRemoveCmd(f))
	return cmd
}

func newItemAddCmd(f *rootFlags) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a loot type to the catalog",
		Example: `  lootboard item add "Wyvern Gem" --tags Rare,Gem
  lootboard item add Stone`,
		Args: args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			form := validation.LootForm{ID: a[0], Tags: normalizeTags(tags)}
			if err := s.validator.SubmitLoot(s.board, form, ""); err != nil {
				return err
			}
			return printItem(cmd, f, s.board, form.ID, "Added")
		},
	}
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	return cmd
}

func newItemEditCmd(f *rootFlags) *cobra.Command {
	var (
		name string
		tags []string
	)

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Rename a loot type or replace its tags",
		Long: "Edit changes a loot type's name, tags, or both. Quantities held under the\n" +
			"old name move to the new one. Renaming onto an existing loot type replaces it.",
		Example: `  lootboard item edit Stone --name "Polished Stone"
  lootboard item edit Stone --tags Basic,Ore`,
		Args: args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			prevID := a[0]
			item, err := s.board.RowAction(prevID, board.ActionEdit)
			if err != nil {
				return err
			}

			form := validation.LootFormFor(item)
			if cmd.Flags().Changed("name") {
				form.ID = name
			}
			if cmd.Flags().Changed("tags") {
				form.Tags = normalizeTags(tags)
			}
			if err := s.validator.SubmitLoot(s.board, form, prevID); err != nil {
				return err
			}
			return printItem(cmd, f, s.board, form.ID, "Updated")
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "replacement tags (comma-separated; empty clears)")
	return cmd
}

func newItemRemoveCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a loot type from the catalog",
		Long: "Remove deletes a loot type from the catalog. Quantities players hold\n" +
			"under that name are kept and reappear if the loot type is added again.",
		Args: args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			item, err := s.board.RowAction(a[0], board.ActionRemove)
			if err != nil {
				return err
			}
			if f.jsonMode {
				return writeJSON(cmd.OutOrStdout(), item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", item.ID)
			return nil
		},
	}
}

// printItem reports the item now stored under id.
func printItem(cmd *cobra.Command, f *rootFlags, b *board.Board, id, verb string) error {
	item, err := b.Catalog().Get(id)
	if err != nil {
		return err
	}
	if f.jsonMode {
		return writeJSON(cmd.OutOrStdout(), item)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", verb, item.ID, formatTags(item))
	return nil
}

func formatTags(item types.Item) string {
	return "[" + strings.Join(item.Tags, ", ") + "]"
}

// normalizeTags trims tags and drops blanks; a nil slice becomes empty.
func normalizeTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		out = append(out, splitTags(t)...)
	}
	return out
}
