package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/lootboard/internal/paths"
	"github.com/mesh-intelligence/lootboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyLogLevel = "log_level"

	envPrefix      = "LOOTBOARD"
	defaultBackend = types.BackendSQLite
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# lootboard configuration

# Storage backend: sqlite, badger, or jsonl
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Log level: debug, info, warn, error
log_level: warn
`

// settings is the resolved configuration for one command run.
type settings struct {
	ConfigDir string
	DataDir   string
	Backend   string
	LogLevel  string
}

// storageConfig returns the backend configuration for Storage.Attach.
func (s settings) storageConfig() types.Config {
	return types.Config{Backend: s.Backend, DataDir: s.DataDir}
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. LOOTBOARD_BACKEND
// and LOOTBOARD_LOG_LEVEL override file values.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	// data_dir is not bound: LOOTBOARD_DATA_DIR ranks below config.yaml and
	// is handled by paths.ResolveDataDir.
	if err := v.BindEnv(cfgKeyBackend); err != nil {
		return nil, err
	}
	if err := v.BindEnv(cfgKeyLogLevel); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in configDir.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolveSettings combines flags, config.yaml, and the environment.
func resolveSettings(f *rootFlags) (settings, error) {
	configDir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}

	dataDir, err := paths.ResolveDataDir(f.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}

	s := settings{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Backend:   v.GetString(cfgKeyBackend),
		LogLevel:  v.GetString(cfgKeyLogLevel),
	}
	if f.backend != "" {
		s.Backend = f.backend
	}
	if f.logLevel != "" {
		s.LogLevel = f.logLevel
	}
	return s, nil
}
