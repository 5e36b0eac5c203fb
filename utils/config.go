// Copyright 2024 Fantom Foundation
// This file is part of Statlab, interactive statistics lessons.
//
// Statlab is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Statlab is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Statlab. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/Fantom-foundation/Statlab/input"
	"github.com/Fantom-foundation/Statlab/logger"
	"github.com/c2h5oh/datasize"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
)

// Config summarizes the settings of a statlab run.
type Config struct {
	Port        string            // port of the web server
	Seed        uint64            // seed of the session samples; 0 uses the clock
	MaxSessions int               // number of sessions kept alive
	MaxInput    datasize.ByteSize // longest accepted text input
	Lang        language.Tag      // language used to format numbers
	LogLevel    string            // level of the logger
	SampleSize  int               // points of the scatter lessons
}

// fileConfig is the layout of a TOML configuration file. Absent keys keep
// their defaults.
type fileConfig struct {
	Port        string `toml:"port"`
	Seed        uint64 `toml:"seed"`
	MaxSessions int    `toml:"max-sessions"`
	MaxInput    string `toml:"max-input"`
	Lang        string `toml:"lang"`
	Log         string `toml:"log"`
	SampleSize  int    `toml:"sample-size"`
}

// NewConfig creates the configuration of a command. Defaults are taken
// from the flag definitions, overridden by the configuration file and
// finally by every flag set explicitly on the command line.
func NewConfig(ctx *cli.Context) (*Config, error) {
	var (
		fc  fileConfig
		err error
	)
	if path := ctx.Path(ConfigFileFlag.Name); path != "" {
		if _, err = toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("cannot read config file %v: %w", path, err)
		}
	}

	cfg := &Config{
		Port:        pick(ctx, PortFlag.Name, fc.Port, PortFlag.Value, ctx.String),
		Seed:        pick(ctx, RandomSeedFlag.Name, fc.Seed, RandomSeedFlag.Value, ctx.Uint64),
		MaxSessions: pick(ctx, MaxSessionsFlag.Name, fc.MaxSessions, MaxSessionsFlag.Value, ctx.Int),
		LogLevel:    pick(ctx, logger.LogLevelFlag.Name, fc.Log, logger.LogLevelFlag.Value, ctx.String),
		SampleSize:  pick(ctx, SampleSizeFlag.Name, fc.SampleSize, SampleSizeFlag.Value, ctx.Int),
	}

	maxInput := pick(ctx, MaxInputFlag.Name, fc.MaxInput, MaxInputFlag.Value, ctx.String)
	if err = cfg.MaxInput.UnmarshalText([]byte(maxInput)); err != nil {
		return nil, fmt.Errorf("invalid max-input %q: %w", maxInput, err)
	}

	lang := pick(ctx, LangFlag.Name, fc.Lang, LangFlag.Value, ctx.String)
	if cfg.Lang, err = language.Parse(lang); err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// pick returns the explicitly set flag value, else the file value, else the
// default.
func pick[T comparable](ctx *cli.Context, name string, file, def T, get func(string) T) T {
	var zero T
	switch {
	case ctx.IsSet(name):
		return get(name)
	case file != zero:
		return file
	default:
		return def
	}
}

func (cfg *Config) validate() error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", cfg.Port)
	}
	if cfg.MaxSessions < 1 {
		return fmt.Errorf("max-sessions must be positive, got %d", cfg.MaxSessions)
	}
	if cfg.SampleSize < 2 {
		return fmt.Errorf("sample-size must be at least 2, got %d", cfg.SampleSize)
	}
	if cfg.MaxInput == 0 {
		cfg.MaxInput = input.DefaultMaxInput
	}
	return nil
}
