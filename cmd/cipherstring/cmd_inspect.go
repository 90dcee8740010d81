package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/zoobzio/cipherstring"
)

type inspectCmd struct {
	Value string `arg:"" help:"The envelope to inspect."`
}

func (cmd *inspectCmd) Run(ctx *kong.Context) error {
	env, err := cipherstring.Parse(cmd.Value)
	if err != nil {
		return err
	}

	w := ctx.Stdout
	_, _ = fmt.Fprintf(w, "scheme:   %s (%s)\n", env.Scheme, env.Scheme.Tag())
	_, _ = fmt.Fprintf(w, "header:   %s\n", headerForm(cmd.Value, env))
	_, _ = fmt.Fprintf(w, "segments: %d\n", len(env.Segments))
	for i, seg := range env.Segments {
		raw, err := cipherstring.DecodeSegment(seg)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "  %d: %d bytes\n", i, len(raw))
	}
	return nil
}

// headerForm reports how the scheme was declared.
func headerForm(value string, env cipherstring.Envelope) string {
	if !env.Headered {
		return "none (legacy)"
	}
	header, _, _ := cipherstring.SplitOnce(value, '.')
	if header == env.Scheme.String() {
		return "symbolic"
	}
	return "numeric"
}
