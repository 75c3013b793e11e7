// Package config loads Grist connection settings from a YAML file, a .env
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvAPIKey    = "GRIST_API_KEY"
	EnvServer    = "GRIST_SERVER"
	EnvOrg       = "GRIST_ORG"
	EnvWorkspace = "GRIST_WORKSPACE"
	EnvDoc       = "GRIST_DOC"
)

// ErrMissingCredentials indicates the API key or server is not configured.
var ErrMissingCredentials = errors.New("missing Grist credentials")

// Config holds Grist connection settings.
type Config struct {
	APIKey    string `yaml:"api_key"`
	Server    string `yaml:"server"`
	Org       string `yaml:"org"`
	Workspace string `yaml:"workspace"`
	Doc       string `yaml:"doc"`
}

// Default returns a config with default org and document.
func Default() *Config {
	return &Config{
		Org: grist.DefaultOrg,
		Doc: shiftsync.DefaultDoc,
	}
}

// Load builds a config from defaults, then the YAML file at path (optional),
// then the environment. The .env file at envFile is loaded into the
// environment first without overriding variables that are already set.
// Missing files are ignored unless explicitly named.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	for env, field := range map[string]*string{
		EnvAPIKey:    &c.APIKey,
		EnvServer:    &c.Server,
		EnvOrg:       &c.Org,
		EnvWorkspace: &c.Workspace,
		EnvDoc:       &c.Doc,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
}

// Validate checks that the API key and server are set.
func (c *Config) Validate() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "api key ("+EnvAPIKey+" or --api-key)")
	}
	if c.Server == "" {
		missing = append(missing, "server ("+EnvServer+" or --server)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingCredentials, missing)
	}
	return nil
}
