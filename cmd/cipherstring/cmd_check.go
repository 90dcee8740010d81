package main

import (
	"bufio"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/zoobzio/cipherstring"
)

type checkCmd struct {
	Values []string `arg:"" optional:"" help:"Values to check. Reads one per line from stdin when omitted."`

	Quiet bool `short:"q" help:"Print only invalid values."`
}

func (cmd *checkCmd) Run(ctx *kong.Context) error {
	values := cmd.Values
	if len(values) == 0 {
		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for sc.Scan() {
			values = append(values, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	invalid := 0
	for i, v := range values {
		res := cipherstring.Validate(v)
		if !res.OK() {
			invalid++
		} else if cmd.Quiet {
			continue
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%d\t%s\t%s\n", i, cipherstring.Mask(v), res)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d values invalid", invalid, len(values))
	}
	return nil
}
