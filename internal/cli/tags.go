package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lootboard/internal/board"
)

func newTagsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in the catalog",
		Long:  "Tags prints the distinct tags used by the catalog, in order of first appearance.",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			tags := board.TagVocabulary(s.board.Catalog())
			if f.jsonMode {
				return writeJSON(cmd.OutOrStdout(), tags)
			}
			for _, t := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
