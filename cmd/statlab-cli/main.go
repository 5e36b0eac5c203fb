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

package main

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/Statlab/cmd/statlab-cli/statlab"
	"github.com/urfave/cli/v2"
)

// initStatlabApp initializes a statlab app. This function is called by the
// main function and unit tests.
func initStatlabApp() *cli.App {
	return &cli.App{
		Name:      "Statlab Interactive Statistics",
		HelpName:  "statlab",
		Usage:     "learn correlation, distribution shape and descriptive statistics by looking at the data",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&statlab.ServeCommand,
			&statlab.DescribeCommand,
			&statlab.AnscombeCommand,
			&statlab.GenerateCommand,
			&statlab.ShapeCommand,
		},
	}
}

// main implements "statlab" cli application.
func main() {
	app := initStatlabApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
