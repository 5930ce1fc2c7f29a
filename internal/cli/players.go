package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lootboard/internal/board"
	"github.com/mesh-intelligence/lootboard/internal/validation"
	"github.com/mesh-intelligence/lootboard/pkg/types"
)

func newPlayersCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Show or configure the four player slots",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlayersShow(cmd, f)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the player slots",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlayersShow(cmd, f)
		},
	})
	cmd.AddCommand(newPlayersConfigureCmd(f))
	cmd.AddCommand(newPlayersClearCmd(f))
	return cmd
}

func runPlayersShow(cmd *cobra.Command, f *rootFlags) error {
	s, err := openSession(f)
	if err != nil {
		return err
	}
	defer s.close()
	return writePlayers(cmd, f, s.board.Registry())
}

func writePlayers(cmd *cobra.Command, f *rootFlags, r *board.Registry) error {
	participants := r.Participants()
	if f.jsonMode {
		return writeJSON(cmd.OutOrStdout(), participants)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tNAME\tACTIVE")
	for _, p := range participants {
		name := p.Name
		if name == "" {
			name = board.EmptyMarker
		}
		fmt.Fprintf(tw, "%d\t%s\t%t\n", p.Slot, name, p.Active())
	}
	return tw.Flush()
}

func newPlayersConfigureCmd(f *rootFlags) *cobra.Command {
	var names [types.NumSlots]string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Name the players",
		Long: "Configure sets player names by slot. Slots not given keep their current\n" +
			"name, and empty names are ignored; use \"players clear\" to free a slot.\n" +
			"Player 1 must always have a name.",
		Example: `  lootboard players configure --player1 Ana --player3 Cai`,
		Args:    args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			form := validation.PlayersFormFor(s.board.Registry())
			fields := [types.NumSlots]*string{&form.Player1, &form.Player2, &form.Player3, &form.Player4}
			for i, slot := range types.Slots {
				if cmd.Flags().Changed(playerFlag(slot)) {
					*fields[i] = names[i]
				}
			}
			if err := s.validator.SubmitPlayers(s.board, form); err != nil {
				return err
			}
			return writePlayers(cmd, f, s.board.Registry())
		},
	}
	for i, slot := range types.Slots {
		cmd.Flags().StringVar(&names[i], playerFlag(slot), "", fmt.Sprintf("name for slot %d", slot))
	}
	return cmd
}

func newPlayersClearCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <slot>",
		Short: "Free a player slot (2-4)",
		Long: "Clear removes the name from a slot so the player no longer appears on the\n" +
			"board. Quantities they held are kept and return when the slot is named again.",
		Args: args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			slot, err := types.ParseSlotID(a[0])
			if err != nil {
				return err
			}
			if slot == types.Slots[0] {
				return usagef("player 1 cannot be cleared")
			}

			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.board.ConfigurePlayers(map[types.SlotID]string{slot: ""}); err != nil {
				return err
			}
			return writePlayers(cmd, f, s.board.Registry())
		},
	}
}

func playerFlag(slot types.SlotID) string {
	return "player" + slot.String()
}
