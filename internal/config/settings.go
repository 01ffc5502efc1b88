package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/recipe-browser/internal/mealdb"
	"github.com/ytget/recipe-browser/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyBaseURL        = "api_base_url"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyLanguage       = "app_language"
	KeySortOrder      = "sort_order"
)

// Default values
const (
	DefaultBaseURL        = mealdb.DefaultBaseURL
	DefaultTimeoutSeconds = 10
	DefaultLanguage       = "system"
	DefaultSortOrder      = model.SortCodepoint

	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseURL returns the configured TheMealDB base URL
func (s *Settings) GetBaseURL() string {
	url := strings.TrimSpace(s.app.Preferences().String(KeyBaseURL))
	if url == "" {
		s.SetBaseURL(DefaultBaseURL)
		return DefaultBaseURL
	}
	return url
}

// SetBaseURL sets the TheMealDB base URL; blank restores the default
func (s *Settings) SetBaseURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultBaseURL
	}
	s.app.Preferences().SetString(KeyBaseURL, url)
}

// GetRequestTimeoutSeconds returns the per-request timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultTimeoutSeconds)
		return DefaultTimeoutSeconds
	}
	return value
}

// SetRequestTimeoutSeconds sets the per-request timeout, clamped to 1..120
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, ClampTimeout(seconds))
}

// GetRequestTimeout returns the per-request timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSortOrder returns the configured recipe sort order
func (s *Settings) GetSortOrder() model.SortOrder {
	order := model.SortOrder(s.app.Preferences().String(KeySortOrder))
	if !order.IsValid() {
		s.SetSortOrder(DefaultSortOrder)
		return DefaultSortOrder
	}
	return order
}

// SetSortOrder sets the recipe sort order; unknown values fall back to the default
func (s *Settings) SetSortOrder(order model.SortOrder) {
	if !order.IsValid() {
		order = DefaultSortOrder
	}
	s.app.Preferences().SetString(KeySortOrder, string(order))
}

// GetSortOrderOptions returns available sort orders
func (s *Settings) GetSortOrderOptions() []model.SortOrder {
	return []model.SortOrder{model.SortCodepoint, model.SortLocale}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
	}
}

// ClampTimeout bounds a timeout in seconds to the supported range
func ClampTimeout(seconds int) int {
	if seconds < MinTimeoutSeconds {
		return MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		return MaxTimeoutSeconds
	}
	return seconds
}
