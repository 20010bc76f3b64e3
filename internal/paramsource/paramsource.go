// Package paramsource builds a report.ParamProvider from CLI flags and
// optional JSON/YAML/TOML parameter files, mirroring how internal/cmd
// layers configuration from the same three formats.
package paramsource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/quillhid/hidforge/report"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Load builds a report.ParamProvider from repeated "name=value" flag
// assignments and an optional parameter file. File-provided values are
// added first so that flag values, added afterward, win on conflict
// (report.Params is last-match-wins).
func Load(file string, assignments []string) (*report.Params, error) {
	params := report.NewParams()

	if file != "" {
		fileParams, err := loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("loading param file %s: %w", file, err)
		}
		for name, value := range fileParams {
			params.Set(name, value)
		}
	}

	for _, a := range assignments {
		name, value, err := parseAssignment(a)
		if err != nil {
			return nil, err
		}
		params.Set(name, value)
	}

	return params, nil
}

func parseAssignment(s string) (string, int64, error) {
	name, valueStr, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid --param %q: expected name=value", s)
	}
	value, err := strconv.ParseInt(valueStr, 0, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --param %q: %w", s, err)
	}
	return name, value, nil
}

func loadFile(path string) (map[string]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := map[string]int64{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}
