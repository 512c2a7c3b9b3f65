// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var commands = cli.Commands{
	cli.Command{
		Name:    "info",
		Aliases: []string{"i"},
		Usage:   "Print the georeference metadata of a GIMI file as GeoJSON",
		Flags:   inputFlags,
		Action:  infoAction,
	},
	cli.Command{
		Name:    "vrt",
		Usage:   "Rewrite a reference virtual-raster descriptor with a GIMI file's georeferencing",
		Flags: append([]cli.Flag{
			cli.StringFlag{Name: "reference", Usage: "Path to the reference virtual-raster descriptor"},
		}, inputFlags...),
		Action: vrtAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the gimirrai CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "gimirrai"
	app.Usage = "Extract georeference metadata from GIMI files"
	app.Commands = commands
	return
}
