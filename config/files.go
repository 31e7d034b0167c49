package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadFromFile(conf *Config, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return unmarshalJSON(data, conf)
	case ".yaml", ".yml":
		return unmarshalYAML(data, conf)
	default:
		return fmt.Errorf("unsupported file extension %s for file %s", ext, filename)
	}
}

func unmarshalYAML(data []byte, conf *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func unmarshalJSON(data []byte, conf *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(conf)
}

func loadFromFiles(conf *Config, filenames []string) error {
	for _, filename := range filenames {
		if err := loadFromFile(conf, filename); err != nil {
			return fmt.Errorf("failed to load file %s: %w", filename, err)
		}
	}
	return nil
}
