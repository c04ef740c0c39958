package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	vkerrors "github.com/alexisbeaulieu97/vaultkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load returns the validated defaults when path is empty and the parsed
// file otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, ValidateConfig(cfg)
	}
	return ParseConfig(path)
}

// ParseConfig reads the file at path and hands it to Parse.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vkerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes data over Default and validates the result. Unknown keys
// are rejected so a misspelt token or section fails loudly. source names
// the document in errors.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, vkerrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// extractLine pulls the first line number out of a yaml error message.
func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
