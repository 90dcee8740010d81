package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/zoobzio/cipherstring/seal"
)

type keygenCmd struct {
	Master bool `help:"Generate a 32-byte master key instead of a 64-byte enc+mac key."`
}

func (cmd *keygenCmd) Run(ctx *kong.Context) error {
	size := seal.SymmetricKeySize
	if cmd.Master {
		size = seal.MasterKeySize
	}

	key := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return err
	}

	_, err := fmt.Fprintln(ctx.Stdout, base64.StdEncoding.EncodeToString(key))
	return err
}
