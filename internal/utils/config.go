package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// CreateConfigDir creates the config directory, with its conversations directory,
// if it doesn't exist.
func CreateConfigDir(configDirPath string) error {
	if _, err := os.Stat(ConversationsDir(configDirPath)); os.IsNotExist(err) {
		err := setupRatConfigDir(configDirPath)
		if err != nil {
			return fmt.Errorf("failed to setup config dotdir: %w", err)
		}
	}
	return nil
}

func setupRatConfigDir(configPath string) error {
	conversationsDir := ConversationsDir(configPath)
	if err := os.MkdirAll(conversationsDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create .rat + .rat/conversations directory: %w", err)
	}
	ancli.PrintOK(fmt.Sprintf("created .rat directory at: '%v'\n", configPath))
	return nil
}

func createDefaultConfigFile[T any](configFilePath string, dflt *T) error {
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		if misc.Truthy(os.Getenv("DEBUG")) {
			ancli.PrintOK(fmt.Sprintf("attempting to create file: '%v'\n", configFilePath))
		}
		err := CreateFile(configFilePath, dflt)
		if err != nil {
			return fmt.Errorf("failed to write config: '%v', error: %w", configFilePath, err)
		}
	}
	return nil
}

// LoadConfigFromFile reads the yaml config at configFilePath. The file is created
// from dflt if missing, and fields which are zero in the file are set from dflt.
func LoadConfigFromFile[T any](configFilePath string, dflt *T) (T, error) {
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("attempting to load file: %v\n", configFilePath))
	}
	var conf T
	if err := os.MkdirAll(filepath.Dir(configFilePath), os.ModePerm); err != nil {
		return conf, fmt.Errorf("failed to create config directory: %w", err)
	}

	err := createDefaultConfigFile(configFilePath, dflt)
	if err != nil {
		return conf, err
	}

	err = ReadAndUnmarshal(configFilePath, &conf)
	if err != nil {
		return conf, fmt.Errorf("failed to unmarshal config '%v', error: %w", configFilePath, err)
	}

	// Append any new fields from default config, in case of config extension
	hasChanged := setNonZeroValueFields(&conf, dflt)

	if hasChanged {
		err = CreateFile(configFilePath, &conf)
		if err != nil {
			return conf, fmt.Errorf("failed to write config '%v' post zero-field appendage, error: %w", configFilePath, err)
		}
		ancli.PrintOK(fmt.Sprintf("appended new fields to config and updated config file: %v\n", configFilePath))
	}

	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("found config: %+v\n", conf))
	}
	return conf, nil
}

// setNonZeroValueFields on a using b as template
func setNonZeroValueFields[T any](a, b *T) bool {
	hasChanged := false
	t := reflect.TypeOf(*a)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		aVal := reflect.ValueOf(a).Elem().FieldByName(f.Name)
		bVal := reflect.ValueOf(b).Elem().FieldByName(f.Name)
		if f.IsExported() && aVal.IsZero() && !bVal.IsZero() {
			hasChanged = true
			aVal.Set(bVal)
		}
	}
	return hasChanged
}

func ReturnNonDefault[T comparable](a, b, defaultVal T) (T, error) {
	if a != defaultVal && b != defaultVal {
		return defaultVal, fmt.Errorf("values are mutually exclusive")
	}
	if a != defaultVal {
		return a, nil
	}
	if b != defaultVal {
		return b, nil
	}
	return defaultVal, nil
}
