package params

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadChainConfigFile loads a chain config yaml file, converts hex values into a yaml
// format the parser understands, and applies the result as the active beacon config.
func LoadChainConfigFile(chainConfigFileName string) error {
	yamlFile, err := os.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "failed to read chain config file")
	}
	conf, err := UnmarshalConfig(yamlFile)
	if err != nil {
		return err
	}
	log.Debugf("Config file values: %+v", conf)
	OverrideBeaconConfig(conf)
	return nil
}

// UnmarshalConfig parses chain config yaml bytes on top of the matching preset.
// Unknown keys are logged and ignored.
func UnmarshalConfig(yamlFile []byte) (*BeaconChainConfig, error) {
	// Default to using mainnet.
	conf := MainnetConfig()
	// To track if config name is defined inside config file.
	hasConfigName := false
	lines := strings.Split(string(yamlFile), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if strings.HasPrefix(line, "PRESET_BASE: 'minimal'") ||
			strings.HasPrefix(line, `PRESET_BASE: "minimal"`) ||
			strings.HasPrefix(line, "PRESET_BASE: minimal") ||
			strings.HasPrefix(line, "# Minimal preset") {
			conf = MinimalSpecConfig()
		}
		// Convert 0x hex inputs to byte sequences.
		if !strings.HasPrefix(line, "#") && strings.Contains(line, "0x") {
			replaced, err := ReplaceHexStringWithYAMLFormat(line)
			if err != nil {
				return nil, err
			}
			lines[i] = replaced
		}
	}
	yamlFile = []byte(strings.Join(lines, "\n"))
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			return nil, errors.Wrap(err, "failed to parse chain config yaml file")
		}
		log.WithError(err).Warn("There were some issues parsing the config from a yaml file")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	return conf, nil
}

// ReplaceHexStringWithYAMLFormat replaces a `KEY: 0x...` line with a yaml flow sequence of bytes.
func ReplaceHexStringWithYAMLFormat(line string) (string, error) {
	parts := strings.SplitN(line, "0x", 2)
	value := strings.TrimSpace(parts[1])
	// Drop trailing comments and quotes.
	if idx := strings.Index(value, "#"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	value = strings.Trim(value, `'"`)
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode hex string in line %q", line)
	}
	prefix := strings.TrimRight(parts[0], `'" `)
	elems := make([]string, len(decoded))
	for i, b := range decoded {
		elems[i] = fmt.Sprintf("%d", b)
	}
	return fmt.Sprintf("%s [%s]", prefix, strings.Join(elems, ", ")), nil
}
