package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Config represents user settings stored on disk.
type Config struct {
	DefaultAction  string `json:"default_action"`
	FeedbackWindow string `json:"feedback_window"`
	PageSize       int    `json:"page_size"`
	LastFile       string `json:"last_file,omitempty"`
	Debug          bool   `json:"debug,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DefaultAction:  "copy",
		FeedbackWindow: "2s",
		PageSize:       3,
	}
}

// FeedbackDuration parses FeedbackWindow, falling back to two seconds.
func (c Config) FeedbackDuration() time.Duration {
	d, err := time.ParseDuration(c.FeedbackWindow)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Keys lists the settings addressable by `config get` and `config set`.
func Keys() []string {
	return []string{"default_action", "feedback_window", "page_size", "last_file", "debug"}
}

// Get returns the string form of a setting.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "default_action":
		return c.DefaultAction, nil
	case "feedback_window":
		return c.FeedbackWindow, nil
	case "page_size":
		return strconv.Itoa(c.PageSize), nil
	case "last_file":
		return c.LastFile, nil
	case "debug":
		return strconv.FormatBool(c.Debug), nil
	}
	return "", errors.Newf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
}

// Set validates and stores a setting.
func (c *Config) Set(key, value string) error {
	switch key {
	case "default_action":
		v := strings.ToLower(strings.TrimSpace(value))
		if v != "copy" && v != "link" {
			return errors.Newf("default_action must be copy or link, got %q", value)
		}
		c.DefaultAction = v
	case "feedback_window":
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "feedback_window")
		}
		if d <= 0 {
			return errors.Newf("feedback_window must be positive, got %s", d)
		}
		c.FeedbackWindow = value
	case "page_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "page_size")
		}
		if n < 1 {
			return errors.Newf("page_size must be at least 1, got %d", n)
		}
		c.PageSize = n
	case "last_file":
		c.LastFile = value
	case "debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "debug")
		}
		c.Debug = b
	default:
		return errors.Newf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// applyEnv overlays TENIS_* environment variables onto c. Invalid values
// are reported but leave the stored setting in place.
func (c *Config) applyEnv() error {
	overrides := map[string]string{
		"TENIS_DEFAULT_ACTION":  "default_action",
		"TENIS_FEEDBACK_WINDOW": "feedback_window",
		"TENIS_PAGE_SIZE":       "page_size",
		"TENIS_DEBUG":           "debug",
	}
	var errs error
	for env, key := range overrides {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := c.Set(key, value); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "%s", env))
		}
	}
	return errs
}
