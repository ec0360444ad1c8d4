package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile loads configuration variables from a file and returns them as a map.
// The file format is detected from the file extension:
//   - .json files are expected to have an "env" field containing string key-value pairs
//   - .yml/.yaml files are expected to have an "env" field containing string key-value pairs
//
// Example YAML file:
//
//	env:
//	  LOG_LEVEL: debug
//	  SEQUENCE_METRICS: "true"
func LoadEnvFile(path string) (map[string]string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(fileInfo.Name())

	switch {
	case strings.HasSuffix(name, ".json"):
		return loadFile(path, json.Unmarshal)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadFile(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, fileInfo.Name())
	}
}

// FileSource loads an env file and returns it as a Source.
func FileSource(path string) (Source, error) {
	vars, err := LoadEnvFile(path)
	if err != nil {
		return nil, err
	}

	return FromMap(vars), nil
}

// envFile is the shape shared by JSON and YAML env files.
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadFile(path string, unmarshal func([]byte, any) error) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}

	if err := unmarshal(bts, out); err != nil {
		return nil, err
	}

	if out.Env == nil {
		return map[string]string{}, nil
	}

	return out.Env, nil
}
