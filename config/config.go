package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const appName = "flagrgb"

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// directory of the flag images
	FlagsDir string `yaml:"flagsDir,omitempty" json:"flagsDir,omitempty"`
	// directory the thumbnail paths point at
	ThumbnailsDir string `yaml:"thumbnailsDir,omitempty" json:"thumbnailsDir,omitempty"`
	// path of the manifest
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
	// file name suffix of the flag images, case-sensitive
	Extension string `yaml:"extension,omitempty" json:"extension,omitempty"`
	// Whether to sort the manifest by label
	SortByLabel *bool `yaml:"sortByLabel,omitempty" json:"sortByLabel,omitempty"`
	// size of generated thumbnails
	Thumbnail *Thumbnail `yaml:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	// number of clusters for the cluster command
	Clusters int `yaml:"clusters,omitempty" json:"clusters,omitempty"`
}

type Thumbnail struct {
	Width  int `yaml:"width,omitempty" json:"width,omitempty"`
	Height int `yaml:"height,omitempty" json:"height,omitempty"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/flagrgb/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/flagrgb/config.yml
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(b, cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config %s: %w", configPath, err)
				}
				return cfg, nil
			}
		}
	}
	return cfg, nil
}

// Path returns the config file Load would read for profile, or "" if there is none.
func Path(profile string) string {
	names := []string{"config"}
	if profile != "" {
		names = append([]string{fmt.Sprintf("config-%s", profile)}, names...)
	}
	for _, name := range names {
		for _, ext := range []string{".yml", ".yaml"} {
			p := filepath.Join(configPath(), name+ext)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, appName)
	} else {
		configHomePath = filepath.Join(homePath, ".config", appName)
	}
	return configHomePath
}

func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, appName)
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", appName)
	}
	return stateHomePath
}
