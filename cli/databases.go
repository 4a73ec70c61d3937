package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when no config path
// is given and the file exists.
const DefaultConfigFile = "exporttocsv.yaml"

// DatabaseEntry maps a database name to a driver and data source name.
type DatabaseEntry struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// DatabasesFile is the named-database configuration file.
type DatabasesFile struct {
	Databases map[string]DatabaseEntry `yaml:"databases"`
}

// LoadDatabases reads a named-database file. An empty path yields an empty
// configuration.
func LoadDatabases(path string) (*DatabasesFile, error) {
	if path == "" {
		return &DatabasesFile{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &DatabasesFile{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for name, entry := range cfg.Databases {
		if strings.TrimSpace(entry.Driver) == "" {
			return nil, fmt.Errorf("parse config %s: database %q has no driver", path, name)
		}
	}
	return cfg, nil
}

// Lookup finds name, first exactly and then ignoring case.
func (f *DatabasesFile) Lookup(name string) (DatabaseEntry, bool) {
	if entry, ok := f.Databases[name]; ok {
		return entry, true
	}
	for key, entry := range f.Databases {
		if strings.EqualFold(key, name) {
			return entry, true
		}
	}
	return DatabaseEntry{}, false
}

// configPath picks the config file: the flag, then EXPORTTOCSV_CONFIG, then
// DefaultConfigFile if it exists.
func configPath(flagValue string, getenv func(string) string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := strings.TrimSpace(getenv("EXPORTTOCSV_CONFIG")); v != "" {
		return v
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}
