package main

import (
	"github.com/alecthomas/kong"
)

type openCmd struct {
	Envelope string `arg:"" help:"The envelope to decrypt."`
}

func (cmd *openCmd) Run(ctx *kong.Context, root *cli) error {
	s, err := root.sealer()
	if err != nil {
		return err
	}

	pt, err := s.Open(cmd.Envelope)
	if err != nil {
		return err
	}

	_, err = ctx.Stdout.Write(pt)
	return err
}
