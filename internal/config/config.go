// SPDX-License-Identifier: Apache-2.0

// Package config resolves run configuration that is not passed on the
// command line, currently just the copyright author.
package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// DefaultAuthor is used when no config file is given or the file does
// not set an author.
const DefaultAuthor = "Contributors to the Eclipse Foundation"

// authorKey is the JSON key holding the author override.
const authorKey = "author"

// Author reads the author from a JSON config file. An empty path means
// "no config" and yields DefaultAuthor; a present but unreadable or
// malformed file is a configuration error and fails the run before any
// input file is touched.
func Author(path string) (string, error) {
	if path == "" {
		return DefaultAuthor, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("read config file %s: %w", path, err)
	}
	if !v.IsSet(authorKey) {
		slog.Debug("config has no author, using default", "path", path)
		return DefaultAuthor, nil
	}
	return v.GetString(authorKey), nil
}
