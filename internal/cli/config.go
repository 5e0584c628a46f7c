package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/ownlists/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyVariant = "variant"
	cfgKeyDataDir = "data_dir"
	cfgKeyJournal = "journal"

	envPrefix = "OWNLISTS"

	defaultVariant = types.VariantOwned
)

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error; defaults and the OWNLISTS_VARIANT and OWNLISTS_JOURNAL
// environment variables still apply.
func loadConfig(configDir string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyVariant, defaultVariant)
	v.SetDefault(cfgKeyJournal, true)
	v.SetDefault(cfgKeyDataDir, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	// data_dir is not bound; OWNLISTS_DATA_DIR ranks below the config file
	// (see paths.ResolveDataDir).
	for _, key := range []string{cfgKeyVariant, cfgKeyJournal} {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Variant: v.GetString(cfgKeyVariant),
		DataDir: v.GetString(cfgKeyDataDir),
		Journal: v.GetBool(cfgKeyJournal),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config %s: %w", cfgKeyVariant, err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with cfg if the file does not
// exist. Returns true when a file was written.
func writeConfigIfMissing(configDir string, cfg types.Config) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# ownlists configuration\n# variant: value | borrowed | cell | owned\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
