package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/tilemux/config.schema.json"
	schema.Title = "tilemux configuration"
	schema.Description = "Configuration schema for tilemux, a tiling terminal multiplexer"
	return schema
}

// MarshalSchema renders Schema as indented JSON.
func MarshalSchema() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GetSchemaFile returns the path of config.schema.json.
func GetSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "config.schema.json"), nil
}

// GenerateSchemaFile writes config.schema.json next to the configuration file.
// It runs when a default config is created.
func GenerateSchemaFile() error {
	schemaFile, err := GetSchemaFile()
	if err != nil {
		return err
	}

	data, err := MarshalSchema()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(schemaFile), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
