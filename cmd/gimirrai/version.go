package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const cliVersion = "1.0.0"

func versionAction(c *cli.Context) error {
	fmt.Println(cliVersion)
	return nil
}
