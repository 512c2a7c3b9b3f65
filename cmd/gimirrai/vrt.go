package main

import (
	"errors"
	"io/ioutil"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/ricardogsilva/gimirrai/util"
	"github.com/ricardogsilva/gimirrai/vrt"
)

func vrtAction(c *cli.Context) error {
	context := &util.BasicLogContext{}
	referencePath := c.String("reference")
	if referencePath == "" {
		return errors.New("missing --reference descriptor path")
	}
	metadata, err := extractFile(c, context)
	if err != nil {
		return err
	}
	reference, err := ioutil.ReadFile(referencePath)
	if err != nil {
		return err
	}
	document, err := vrt.Generate(&metadata.Images[0], reference)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(document)
	return err
}
