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
	"github.com/urfave/cli/v2"
)

// Command line options shared by the statlab commands.
var (
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "serve the lessons on `PORT`",
		Value:       "8080",
		DefaultText: "8080",
	}
	RandomSeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the random samples; 0 derives it from the clock",
	}
	MaxSessionsFlag = cli.IntFlag{
		Name:  "max-sessions",
		Usage: "number of sessions kept before the least recently used one ends",
		Value: 1024,
	}
	MaxInputFlag = cli.StringFlag{
		Name:  "max-input",
		Usage: "maximum size of a typed list, e.g. 64KB",
		Value: "64KB",
	}
	LangFlag = cli.StringFlag{
		Name:  "lang",
		Usage: "language used to format numbers (en, pt-BR, ...)",
		Value: "en",
	}
	ConfigFileFlag = cli.PathFlag{
		Name:  "config",
		Usage: "TOML file with default settings; explicit flags take precedence",
	}
	SampleSizeFlag = cli.IntFlag{
		Name:    "sample-size",
		Aliases: []string{"n"},
		Usage:   "number of generated points",
		Value:   150,
	}
	RhoFlag = cli.Float64Flag{
		Name:  "rho",
		Usage: "target correlation in [-1, 1]",
	}
	CurvatureFlag = cli.Float64Flag{
		Name:  "curvature",
		Usage: "curvature of the U-shape in [0.1, 2]",
		Value: 1,
	}
	SlopeFlag = cli.Float64Flag{
		Name:  "slope",
		Usage: "slope of Group B in the Simpson's paradox scenario, in [-2, 2]",
		Value: -1,
	}
	DataFlag = cli.StringFlag{
		Name:  "data",
		Usage: "comma separated values of the custom distribution",
	}
	CompareFlag = cli.BoolFlag{
		Name:  "compare",
		Usage: "compare the distribution with a normal sample of the same mean and spread",
	}
)
