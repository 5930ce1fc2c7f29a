package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lootboard/internal/paths"
)

func newExportCmd(f *rootFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored key to a JSON file",
		Long: "Export writes the whole store as a JSON object of key to raw string value.\n" +
			"Use \"-\" as the output to print to stdout.",
		Args: args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			data, err := s.gateway.Export()
			if err != nil {
				return err
			}
			if out == "-" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", paths.DefaultExportFile, "output file")
	return cmd
}

func newImportCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load an exported JSON file into the store",
		Long: "Import writes every key of an exported file into the store and reloads the\n" +
			"board. Keys not in the file are kept. A malformed file changes nothing.",
		Args: args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			blob, err := os.ReadFile(a[0])
			if err != nil {
				return usagef("read import file: %w", err)
			}

			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			b, err := s.gateway.Import(blob)
			if err != nil {
				return err
			}
			s.board = b
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d loot types, %d active players\n",
				a[0], b.Catalog().Len(), len(b.Registry().Active()))
			return nil
		},
	}
}

func newResetCmd(f *rootFlags) *cobra.Command {
	var noBackup bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the store and restore the starter data",
		Long: "Reset deletes every stored key and reloads the board, which repopulates it\n" +
			"with the starter loot types and players. The previous contents are saved\n" +
			"to <data-dir>/backups/ unless --no-backup is set.",
		Args: args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(f)
			if err != nil {
				return err
			}
			defer s.close()

			backup, b, err := s.gateway.Reset()
			if !noBackup && backup != nil {
				path, werr := writeBackup(s.settings.DataDir, backup)
				if werr != nil {
					return errors.Join(werr, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
			}
			if err != nil {
				return err
			}
			s.board = b
			fmt.Fprintln(cmd.OutOrStdout(), "Board reset to starter data")
			return nil
		},
	}
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "do not save the previous contents")
	return cmd
}

// writeBackup stores data under a time-ordered UUIDv7 file name.
func writeBackup(dataDir string, data []byte) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("backup id: %w", err)
	}
	path := paths.BackupFile(dataDir, time.Now(), id.String())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}
