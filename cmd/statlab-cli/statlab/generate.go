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

package statlab

import (
	"fmt"
	"time"

	"github.com/Fantom-foundation/Statlab/generator"
	"github.com/Fantom-foundation/Statlab/input"
	"github.com/Fantom-foundation/Statlab/report"
	"github.com/Fantom-foundation/Statlab/scenario"
	"github.com/Fantom-foundation/Statlab/session"
	"github.com/Fantom-foundation/Statlab/utils"
	"github.com/urfave/cli/v2"
)

// GenerateCommand data structure for the generate app
var GenerateCommand = cli.Command{
	Action:    generateAction,
	Name:      "generate",
	Usage:     "draws one sample of a correlation scenario and prints its summary",
	ArgsUsage: "<linear|nonlinear|simpson>",
	Flags: []cli.Flag{
		&utils.RhoFlag,
		&utils.CurvatureFlag,
		&utils.SlopeFlag,
		&utils.SampleSizeFlag,
		&utils.RandomSeedFlag,
		&utils.LangFlag,
		&utils.ConfigFileFlag,
	},
	Description: `
The generate command requires one argument:
<scenario>

<scenario> is one of "linear" (--rho), "nonlinear" (--curvature) or
"simpson" (--slope). The same --seed always prints the same sample.`,
}

// newSession creates the tools of a one-shot command: a store seeded from
// the configuration (or the clock) and the lessons.
func newSession(cfg *utils.Config) (*session.Store, *scenario.Lessons) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return session.NewStore(seed, nil), scenario.New(cfg.Lang, input.NewParser(cfg.MaxInput))
}

// generateAction implements the generate command.
func generateAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("generate command requires exactly 1 argument")
	}
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	store, lessons := newSession(cfg)
	out := report.New(ctx.App.Writer, cfg.Lang)

	switch name := ctx.Args().Get(0); name {
	case "linear":
		p := generator.LinearParams{Rho: ctx.Float64(utils.RhoFlag.Name), N: cfg.SampleSize}
		out.Scatter(lessons.Linear(store, p, false))
	case "nonlinear":
		p := generator.CurvedParams{Curvature: ctx.Float64(utils.CurvatureFlag.Name), N: cfg.SampleSize}
		out.Scatter(lessons.Nonlinear(store, p, false))
	case "simpson":
		p := generator.SimpsonParams{SlopeDiff: ctx.Float64(utils.SlopeFlag.Name), N: cfg.SampleSize}
		out.Simpson(lessons.Simpson(store, p, false))
	default:
		return fmt.Errorf("unknown scenario %q; use linear, nonlinear or simpson", name)
	}
	return nil
}
