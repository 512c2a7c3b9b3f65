package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/ricardogsilva/gimirrai/gimi"
	"github.com/ricardogsilva/gimirrai/klv"
	"github.com/ricardogsilva/gimirrai/model"
	"github.com/ricardogsilva/gimirrai/util"
)

var inputFlags = []cli.Flag{
	cli.BoolFlag{Name: "raw", Usage: "Treat the input as a raw KLV payload dump instead of a GIMI container"},
	cli.IntFlag{Name: "width", Usage: "Pixel width of the frame (raw payloads only)"},
	cli.IntFlag{Name: "height", Usage: "Pixel height of the frame (raw payloads only)"},
}

func newDecoder(context util.LogContext) *klv.Decoder {
	decoder := klv.NewDecoder(context)
	if bound := util.GetKLVMaxIterations(); bound > 0 {
		decoder.MaxIterations = bound
	}
	if unsigned, _ := util.UseUnsignedAngles(); unsigned {
		decoder.Angles = klv.UnsignedAngles
	}
	return decoder
}

func extractFile(c *cli.Context, context util.LogContext) (*model.FileMetadata, error) {
	path := c.Args().First()
	if path == "" {
		return nil, errors.New("missing input file argument")
	}
	options := gimi.ExtractOptions{Path: path, Decoder: newDecoder(context)}
	if c.Bool("raw") {
		payload, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		source := gimi.SingleFrameSource{Payload: payload, Width: c.Int("width"), Height: c.Int("height")}
		return gimi.Extract(source, options, context)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return gimi.Extract(gimi.NewHeifSource(file), options, context)
}

func infoAction(c *cli.Context) error {
	context := &util.BasicLogContext{}
	metadata, err := extractFile(c, context)
	if err != nil {
		return err
	}
	collection, err := metadata.GeoJSONFeatureCollection()
	if err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
