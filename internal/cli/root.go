// Package cli implements the lootboard command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lootboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	logLevel  string
	jsonMode  bool
}

// NewRootCmd creates the top-level "lootboard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "lootboard",
		Short: "Track loot held by up to four players",
		Long: "Lootboard keeps a catalog of tagged loot types and the quantity of each\n" +
			"held by up to four players, stored in a local database.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configDir, "config-dir", "", "configuration directory (env LOOTBOARD_CONFIG_DIR)")
	pf.StringVar(&f.dataDir, "data-dir", "", "data directory (default: ./.lootboard-db)")
	pf.StringVar(&f.backend, "backend", "", "storage backend: sqlite, badger, or jsonl")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&f.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(f))
	root.AddCommand(newListCmd(f))
	root.AddCommand(newTagsCmd(f))
	root.AddCommand(newItemCmd(f))
	root.AddCommand(newSetCmd(f))
	root.AddCommand(newPlayersCmd(f))
	root.AddCommand(newExportCmd(f))
	root.AddCommand(newImportCmd(f))
	root.AddCommand(newResetCmd(f))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "lootboard:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// usageError marks a bad invocation, such as a malformed argument.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// userErrors are the board errors caused by the input rather than the system.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrDuplicateID,
	types.ErrInvalidID,
	types.ErrInvalidSlot,
	types.ErrFieldNotEditable,
	types.ErrUnknownAction,
	types.ErrImportParse,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
}

// exitCode maps an error to exitUserError or exitSysError.
func exitCode(err error) int {
	var ue usageError
	var ve *types.ValidationError
	if errors.As(err, &ue) || errors.As(err, &ve) {
		return exitUserError
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	// cobra reports unknown commands as a plain error before any RunE.
	if strings.HasPrefix(err.Error(), "unknown command") {
		return exitUserError
	}
	return exitSysError
}

// args wraps a cobra argument validator so its failures exit as usage errors.
func args(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := validate(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}
