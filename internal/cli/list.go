package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lootboard/internal/board"
	"github.com/mesh-intelligence/lootboard/pkg/types"
)

type listOptions struct {
	filters []string
	sort    string
	desc    bool
}

func newListCmd(f *rootFlags) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the loot board",
		Long: `List prints one row per loot type with each active player's quantity and
the row total. Zero quantities print as "-".

Filters take the form <operator>=<tag>[,<tag>...] and are ANDed together.
Operators: hasAtLeastOne, hasAll, doesNotHave. A filter with no tags
matches every row.

Sort fields: id, tags, total, or a player slot (1-4).

Example:
  lootboard list
  lootboard list --filter hasAll=Ore,Bone
  lootboard list --filter doesNotHave=Consumable --sort total --desc`,
		Args: args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, f, opts)
		},
	}
	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil, "tag filter <operator>=<tags> (repeatable)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort by column")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "sort in descending order")
	return cmd
}

func runList(cmd *cobra.Command, f *rootFlags, opts listOptions) error {
	filters, err := parseTagFilters(opts.filters)
	if err != nil {
		return err
	}

	s, err := openSession(f)
	if err != nil {
		return err
	}
	defer s.close()

	view := s.board.Project()
	rows := board.FilterRows(view.Rows, filters...)
	if opts.sort != "" {
		if err := board.SortRows(rows, sortField(opts.sort), opts.desc); err != nil {
			return usageError{err}
		}
	}

	if f.jsonMode {
		view.Rows = rows
		return writeJSON(cmd.OutOrStdout(), view)
	}
	return writeTable(cmd.OutOrStdout(), view.Columns, rows)
}

// parseTagFilters parses --filter values of the form op=tag,tag.
func parseTagFilters(raw []string) ([]board.TagFilter, error) {
	filters := make([]board.TagFilter, 0, len(raw))
	for _, r := range raw {
		name, tagList, ok := strings.Cut(r, "=")
		if !ok {
			return nil, usagef("invalid filter %q (expected <operator>=<tags>)", r)
		}
		op, err := board.ParseTagOperator(name)
		if err != nil {
			return nil, usageError{err}
		}
		filters = append(filters, board.TagFilter{Operator: op, Chosen: splitTags(tagList)})
	}
	return filters, nil
}

// sortField maps a bare slot number to its quantity column.
func sortField(field string) string {
	if slot, err := types.ParseSlotID(field); err == nil {
		return board.QuantityField(slot)
	}
	return field
}

// splitTags splits a comma-separated tag list, dropping blanks.
func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
