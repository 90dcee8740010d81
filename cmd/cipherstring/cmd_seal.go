package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
)

type sealCmd struct {
	Plaintext string `arg:"" default:"-" help:"The path to the plaintext file, or - for stdin."`
}

func (cmd *sealCmd) Run(ctx *kong.Context, root *cli) error {
	s, err := root.sealer()
	if err != nil {
		return err
	}

	src, err := openInput(cmd.Plaintext)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	pt, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	env, err := s.Seal(pt)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.Stdout, env)
	return err
}
