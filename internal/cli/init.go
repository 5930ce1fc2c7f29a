package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/lootboard/internal/paths"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

func newInitCmd(f *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize lootboard storage",
		Long: "Create the configuration and data directories, write config.yaml, and\n" +
			"load the board once so an empty store is filled with the starter data.\n\n" +
			"Flags given to init (--backend, --data-dir, --log-level) are recorded in\n" +
			"config.yaml. An existing config.yaml is kept unless --force is set.",
		Args: args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, f, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, f *rootFlags, force bool) error {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	cfg := configFile{
		Backend:  f.backend,
		DataDir:  f.dataDir,
		LogLevel: f.logLevel,
	}
	if cfg.Backend == "" {
		cfg.Backend = defaultBackend
	}
	if cfg.DataDir != "" {
		if cfg.DataDir, err = filepath.Abs(cfg.DataDir); err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
	}
	if err := writeConfig(configPath, cfg, force); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	s, err := openSession(f)
	if err != nil {
		return err
	}
	defer s.close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Lootboard initialized successfully")
	fmt.Fprintf(out, "  config:  %s\n", configPath)
	fmt.Fprintf(out, "  backend: %s\n", s.settings.Backend)
	fmt.Fprintf(out, "  data:    %s\n", s.settings.DataDir)
	if alt, err := paths.DefaultDataDir(); err == nil && alt != s.settings.DataDir {
		fmt.Fprintf(out, "To share one board across directories, set data_dir to %s\n", alt)
	}
	return nil
}

// writeConfig writes cfg to path. An existing file is left alone unless
// force is set.
func writeConfig(path string, cfg configFile, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
