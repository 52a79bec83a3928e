package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// ServerFile is the optional YAML configuration for the serve command.
// Values present in the file override the corresponding flags.
type ServerFile struct {
	Addr        string        `yaml:"addr,omitempty"`
	LoginURL    string        `yaml:"login_url,omitempty"`
	AuthTimeout time.Duration `yaml:"auth_timeout,omitempty"`
}

// LoadServerFile reads a server configuration file
func LoadServerFile(path string) (*ServerFile, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var cfg ServerFile
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return &cfg, nil
}

// GenerateServerFile writes a commented template of the server
// configuration
func GenerateServerFile(path string) error {
	template := ServerFile{
		Addr:        "127.0.0.1:8080",
		LoginURL:    "/api/auth/login?redirect_to=",
		AuthTimeout: 2 * time.Minute,
	}

	raw, err := yaml.Marshal(&template)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal config template")
	}

	header := []byte("# komainu server configuration\n# Values here override the corresponding CLI flags.\n")
	if err := os.WriteFile(filepath.Clean(path), append(header, raw...), 0600); err != nil {
		return goerr.Wrap(err, "failed to write config template", goerr.V("path", path))
	}
	return nil
}
