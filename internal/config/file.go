package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ytget/recipe-browser/internal/model"
)

// File is the configuration read by the command-line client.
type File struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"request_timeout_seconds"`
	Language       string `toml:"language"`
	SortOrder      string `toml:"sort_order"`
	Debug          bool   `toml:"debug"`
}

// DefaultFile returns the configuration used when no file exists.
func DefaultFile() File {
	return File{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Language:       DefaultLanguage,
		SortOrder:      string(DefaultSortOrder),
	}
}

// DefaultFilePath returns the per-user config file location.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "recipe-browser", "config.toml"), nil
}

// LoadFile reads path (or the default location when path is empty) over the
// defaults. A missing file is not an error; exists reports whether one was read.
func LoadFile(path string) (cfg *File, resolved string, exists bool, err error) {
	loaded := DefaultFile()

	resolved = path
	if resolved == "" {
		resolved, err = DefaultFilePath()
		if err != nil {
			return nil, "", false, err
		}
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, "", false, fmt.Errorf("read config: %w", err)
	default:
		exists = true
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	loaded.normalize()
	if err := loaded.Validate(); err != nil {
		return nil, "", false, err
	}
	return &loaded, resolved, exists, nil
}

func (f *File) normalize() {
	f.BaseURL = strings.TrimSpace(f.BaseURL)
	if f.BaseURL == "" {
		f.BaseURL = DefaultBaseURL
	}
	if f.TimeoutSeconds == 0 {
		f.TimeoutSeconds = DefaultTimeoutSeconds
	}
	f.Language = strings.ToLower(strings.TrimSpace(f.Language))
	if f.Language == "" {
		f.Language = DefaultLanguage
	}
	f.SortOrder = strings.ToLower(strings.TrimSpace(f.SortOrder))
	if f.SortOrder == "" {
		f.SortOrder = string(DefaultSortOrder)
	}
}

// Validate reports the first invalid value.
func (f *File) Validate() error {
	if f.TimeoutSeconds < MinTimeoutSeconds || f.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("request_timeout_seconds must be between %d and %d, got %d",
			MinTimeoutSeconds, MaxTimeoutSeconds, f.TimeoutSeconds)
	}
	if !model.SortOrder(f.SortOrder).IsValid() {
		return fmt.Errorf("sort_order must be %q or %q, got %q",
			model.SortCodepoint, model.SortLocale, f.SortOrder)
	}
	return nil
}

// Timeout returns the per-request timeout.
func (f *File) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// Order returns the configured sort order.
func (f *File) Order() model.SortOrder {
	return model.SortOrder(f.SortOrder)
}

// Encode renders the configuration as TOML.
func (f *File) Encode() ([]byte, error) {
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
