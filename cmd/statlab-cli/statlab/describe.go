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
	"strings"

	"github.com/Fantom-foundation/Statlab/input"
	"github.com/Fantom-foundation/Statlab/report"
	"github.com/Fantom-foundation/Statlab/utils"
	"github.com/urfave/cli/v2"
)

// DescribeCommand data structure for the describe app
var DescribeCommand = cli.Command{
	Action:    describeAction,
	Name:      "describe",
	Usage:     "prints mean, median, mode, variance, standard deviation, skewness and kurtosis of a list",
	ArgsUsage: "<values>",
	Flags: []cli.Flag{
		&utils.MaxInputFlag,
		&utils.LangFlag,
		&utils.ConfigFileFlag,
	},
	Description: `
The describe command requires at least one argument:
<values>

<values> is a comma separated list of numbers, e.g. 10,20,30,10. Several
arguments are joined as one list.`,
}

// describeAction implements the describe command.
func describeAction(ctx *cli.Context) error {
	if ctx.Args().Len() < 1 {
		return fmt.Errorf("missing list of values")
	}
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	values, err := input.NewParser(cfg.MaxInput).FloatList(strings.Join(ctx.Args().Slice(), ","))
	if err != nil {
		return fmt.Errorf("cannot describe values: %w", err)
	}
	report.New(ctx.App.Writer, cfg.Lang).Describe(values)
	return nil
}
