package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// OriginEmbedded is reported by Load when no config file was found.
const OriginEmbedded = "embedded"

const fileName = "realorai.yaml"

var validate = newValidator()

// newValidator reports fields by their yaml keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	return v
}

// Load loads the quiz configuration and reports where it came from.
// Search order: customPath -> ~/.realorai/config.yaml -> ./configs/realorai.yaml -> embedded default
// Files are applied on top of DefaultConfig, so they only need the keys they change.
// A customPath that can't be read or parsed is an error; the other locations
// are skipped when missing, and skipped with a warning on logger when broken.
// A nil logger discards warnings.
func Load(customPath string, logger *log.Logger) (Config, string, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("unreadable config skipped", "path", path, "error", err)
			}
			continue
		}
		cfg, err := parse(data)
		if err != nil {
			logger.Warn("invalid config skipped", "path", path, "error", err)
			continue
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), OriginEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, OriginEmbedded, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields of cfg.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid %s: %v (%s)", fe.Namespace(), fe.Value(), fe.ActualTag())
	}
	return err
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".realorai", "config.yaml")
}
