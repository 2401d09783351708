package config

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 2

// VersionedConfig wraps a Config with a version field for migrations
type VersionedConfig struct {
	Version int     `json:"version"`
	Config  *Config `json:"config,omitempty"`
}

// Migration represents a config migration function
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]interface{}) (map[string]interface{}, error)
}

// v1 kept every setting at the top level
var v1Keys = map[string][2]string{
	"dataDir":        {"storage", "dir"},
	"backend":        {"storage", "backend"},
	"strictReassign": {"schedule", "strictReassign"},
	"theme":          {"ui", "theme"},
	"notificationMs": {"ui", "notificationMs"},
	"logLevel":       {"log", "level"},
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// 0 -> 1: add version field, no structural changes
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			data["version"] = 1
			return data, nil
		},
	},
	// 1 -> 2: flat keys move into sections
	{
		FromVersion: 1,
		ToVersion:   2,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			for old, dest := range v1Keys {
				v, ok := data[old]
				if !ok {
					continue
				}
				section, ok := data[dest[0]].(map[string]interface{})
				if !ok {
					if _, exists := data[dest[0]]; exists {
						return nil, fmt.Errorf("%q is not an object", dest[0])
					}
					section = map[string]interface{}{}
					data[dest[0]] = section
				}
				if _, set := section[dest[1]]; !set {
					section[dest[1]] = v
				}
				delete(data, old)
			}
			data["version"] = 2
			return data, nil
		},
	},
}

// ParseVersionedConfig parses config data with version migration support
func ParseVersionedConfig(data []byte) (*Config, error) {
	var rawConfig map[string]interface{}
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// 0 if not present = legacy config
	version := 0
	if v, ok := rawConfig["version"].(float64); ok {
		version = int(v)
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	if version < CurrentVersion {
		var err error
		rawConfig, err = ApplyMigrations(rawConfig, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
	}

	migratedData, err := json.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrated config: %w", err)
	}

	// Nested {"version": 2, "config": {...}} layout
	var versioned VersionedConfig
	if err := json.Unmarshal(migratedData, &versioned); err != nil {
		return nil, fmt.Errorf("failed to parse versioned config: %w", err)
	}
	if versioned.Config != nil {
		return versioned.Config, nil
	}

	var cfg Config
	if err := json.Unmarshal(migratedData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flat config: %w", err)
	}
	return &cfg, nil
}

// ApplyMigrations applies all migrations from the given version to CurrentVersion
func ApplyMigrations(data map[string]interface{}, fromVersion int) (map[string]interface{}, error) {
	for _, migration := range migrations {
		if migration.FromVersion == fromVersion {
			var err error
			data, err = migration.Migrate(data)
			if err != nil {
				return nil, fmt.Errorf("migration %d -> %d failed: %w",
					migration.FromVersion, migration.ToVersion, err)
			}
			fromVersion = migration.ToVersion
		}
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}

// MarshalVersionedConfig serializes a config as a flat object with a
// version key
func MarshalVersionedConfig(cfg *Config) ([]byte, error) {
	cfgData, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal(cfgData, &result); err != nil {
		return nil, err
	}
	result["version"] = CurrentVersion

	return json.MarshalIndent(result, "", "  ")
}
