package structs

import (
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Unmarshal decodes a beacon API payload. Files ending in .yaml or .yml are converted to JSON first.
func Unmarshal(name string, data []byte, v interface{}) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		j, err := yaml.YAMLToJSON(data)
		if err != nil {
			return errors.Wrap(err, "could not convert yaml to json")
		}
		data = j
	}
	return json.Unmarshal(data, v)
}

// Marshal encodes v as beacon API JSON.
func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
