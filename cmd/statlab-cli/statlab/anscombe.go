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
	"github.com/Fantom-foundation/Statlab/report"
	"github.com/Fantom-foundation/Statlab/scenario"
	"github.com/Fantom-foundation/Statlab/utils"
	"github.com/urfave/cli/v2"
)

// AnscombeCommand data structure for the anscombe app
var AnscombeCommand = cli.Command{
	Action: anscombeAction,
	Name:   "anscombe",
	Usage:  "prints the nearly identical summary statistics of Anscombe's quartet",
	Flags: []cli.Flag{
		&utils.LangFlag,
		&utils.ConfigFileFlag,
	},
}

// anscombeAction implements the anscombe command.
func anscombeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	report.New(ctx.App.Writer, cfg.Lang).Quartet(scenario.Quartet())
	return nil
}
