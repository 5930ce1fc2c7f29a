package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lootboard/internal/board"
	"github.com/mesh-intelligence/lootboard/pkg/types"
)

func newSetCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <item> <slot> <quantity>",
		Short: "Set the quantity of a loot type held by a player",
		Long: "Set records how many of a loot type the player in slot (1-4) holds.\n" +
			"Quantities are whole numbers: fractions are truncated, and negative or\n" +
			"non-numeric values are stored as 0.\n\n" +
			"Flags must come before <item>; everything after it is read as arguments,\n" +
			"so a negative quantity is not mistaken for a flag.",
		Example: `  lootboard set Stone 1 3
  lootboard set --json "Monster Bone S" 2 0
  lootboard set Stone 1 -3`,
		Args: args(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, a []string) error {
			itemID, slotArg, qtyArg := a[0], a[1], a[2]

			slot, err := types.ParseSlotID(slotArg)
			if err != nil {
				return err
			}

			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.board.CommitCell(itemID, board.QuantityField(slot), qtyArg); err != nil {
				return err
			}

			qty := s.board.Ledger().Quantity(slot, itemID)
			if f.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"item":     itemID,
					"slot":     slot,
					"quantity": qty,
				})
			}
			name := s.board.Registry().Name(slot)
			if name == "" {
				name = "slot " + slot.String()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s = %d\n", name, itemID, qty)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}
