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
	"time"

	"github.com/Fantom-foundation/Statlab/logger"
	"github.com/Fantom-foundation/Statlab/utils"
	"github.com/Fantom-foundation/Statlab/visualizer"
	"github.com/urfave/cli/v2"
)

// ServeCommand data structure for the serve app
var ServeCommand = cli.Command{
	Action: serveAction,
	Name:   "serve",
	Usage:  "serves the interactive lessons on a local web server",
	Flags: []cli.Flag{
		&utils.PortFlag,
		&utils.RandomSeedFlag,
		&utils.MaxSessionsFlag,
		&utils.MaxInputFlag,
		&utils.LangFlag,
		&utils.ConfigFileFlag,
		&utils.SampleSizeFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The serve command starts a web server with one page per lesson. Every
browser gets its own session; a generated sample stays on screen until
the lesson's "Generate New Data" button is pressed.`,
}

// serveAction implements the serve command.
func serveAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Statlab")

	srv, err := visualizer.NewServer(cfg, log)
	if err != nil {
		return err
	}
	log.Infof("Sessions: %d, max input: %v, language: %v", cfg.MaxSessions, cfg.MaxInput.HR(), cfg.Lang)
	log.Notice("Cancel serve with ^C")

	start := time.Now()
	err = srv.FireUpWeb(cfg.Port)
	h, m, s := logger.ParseTime(time.Since(start))
	log.Noticef("Server stopped after %vh %vm %vs", h, m, s)
	return err
}
