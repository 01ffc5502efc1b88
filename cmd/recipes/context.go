package main

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/config"
	"github.com/ytget/recipe-browser/internal/logging"
	"github.com/ytget/recipe-browser/internal/mealdb"
	"github.com/ytget/recipe-browser/internal/model"
)

// flagValues holds the persistent flags; zero values mean "not set"
type flagValues struct {
	configPath string
	baseURL    string
	timeout    time.Duration
	sortOrder  string
	json       bool
	debug      bool
}

type commandContext struct {
	flags *flagValues

	configOnce sync.Once
	config     *config.File
	configErr  error

	logger *zap.Logger
}

func newCommandContext(flags *flagValues) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the config file once and applies flag overrides
func (c *commandContext) ensureConfig() (*config.File, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.LoadFile(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if c.flags.baseURL != "" {
			cfg.BaseURL = c.flags.baseURL
		}
		if c.flags.timeout > 0 {
			cfg.TimeoutSeconds = config.ClampTimeout(int(c.flags.timeout.Round(time.Second) / time.Second))
		}
		if c.flags.sortOrder != "" {
			cfg.SortOrder = strings.ToLower(c.flags.sortOrder)
		}
		if c.flags.debug {
			cfg.Debug = true
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the stderr logger on first use
func (c *commandContext) ensureLogger() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	debug := c.flags.debug
	if c.config != nil {
		debug = c.config.Debug
	}
	if !debug {
		// Warnings are noise for interactive use unless asked for
		c.logger = zap.NewNop()
		return c.logger
	}
	logger, _, err := logging.New(true)
	if err != nil {
		c.logger = zap.NewNop()
		return c.logger
	}
	c.logger = logger
	return c.logger
}

func (c *commandContext) newClient() (*mealdb.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return mealdb.New(cfg.BaseURL,
		mealdb.WithTimeout(cfg.Timeout()),
		mealdb.WithLogger(c.ensureLogger().Named("mealdb")),
	)
}

func (c *commandContext) sortOrder() model.SortOrder {
	if c.config == nil {
		return config.DefaultSortOrder
	}
	return c.config.Order()
}

func (c *commandContext) language() string {
	if c.config == nil {
		return config.DefaultLanguage
	}
	return c.config.Language
}

func (c *commandContext) sync() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}
