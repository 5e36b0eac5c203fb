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

	"github.com/Fantom-foundation/Statlab/generator"
	"github.com/Fantom-foundation/Statlab/report"
	"github.com/Fantom-foundation/Statlab/scenario"
	"github.com/Fantom-foundation/Statlab/utils"
	"github.com/urfave/cli/v2"
)

// ShapeCommand data structure for the shape app
var ShapeCommand = cli.Command{
	Action:    shapeAction,
	Name:      "shape",
	Usage:     "prints skewness and kurtosis of a distribution family or a custom list",
	ArgsUsage: "<family>",
	Flags: []cli.Flag{
		&utils.SampleSizeFlag,
		&utils.DataFlag,
		&utils.CompareFlag,
		&utils.RandomSeedFlag,
		&utils.MaxInputFlag,
		&utils.LangFlag,
		&utils.ConfigFileFlag,
	},
	Description: `
The shape command requires one argument:
<family>

<family> is one of normal, positive-skew, negative-skew, leptokurtic,
platykurtic or custom. The custom family reads its values from --data.`,
}

// shapeAction implements the shape command.
func shapeAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("shape command requires exactly 1 argument")
	}
	family, err := generator.ParseFamily(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}

	n := generator.DefaultShapeSamples
	if ctx.IsSet(utils.SampleSizeFlag.Name) {
		n = cfg.SampleSize
	}
	data := ctx.String(utils.DataFlag.Name)
	if family == generator.Custom && data == "" {
		data = scenario.DefaultCustom
	}

	store, lessons := newSession(cfg)
	v := lessons.DistributionShape(store, generator.ShapeParams{Family: family, N: n}, data, ctx.Bool(utils.CompareFlag.Name), false)
	if v.Err != nil {
		return fmt.Errorf("cannot read custom values: %w", v.Err)
	}
	report.New(ctx.App.Writer, cfg.Lang).Shape(v)
	return nil
}
