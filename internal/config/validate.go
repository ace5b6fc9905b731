package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if c.MaxHashtags <= 0 {
		return fmt.Errorf("max_hashtags must be a positive integer, got %d", c.MaxHashtags)
	}
	if c.Extension == "" || c.Extension == "." {
		return errors.New("extension is required")
	}
	if strings.ContainsAny(c.ReservedCategory, `/\`) {
		return fmt.Errorf("reserved_category %q must be a bare file name", c.ReservedCategory)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	return nil
}
