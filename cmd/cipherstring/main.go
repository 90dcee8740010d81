package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/zoobzio/cipherstring/seal"
	"golang.org/x/term"
)

type cli struct {
	Key        string `help:"Base64 symmetric key (32-byte master or 64-byte enc+mac)." env:"CIPHERSTRING_KEY"`
	Email      string `help:"Account email, used as the KDF salt when no key is given." env:"CIPHERSTRING_EMAIL"`
	KDF        string `help:"Key derivation function for passphrases." enum:"pbkdf2,argon2id" default:"pbkdf2" env:"CIPHERSTRING_KDF"`
	Iterations int    `help:"KDF iterations (0 uses the default)." env:"CIPHERSTRING_KDF_ITERATIONS"`

	Check   checkCmd   `cmd:"" help:"Check values are well-formed envelopes."`
	Inspect inspectCmd `cmd:"" help:"Describe the structure of an envelope."`
	Keygen  keygenCmd  `cmd:"" help:"Generate a random symmetric key."`
	Seal    sealCmd    `cmd:"" help:"Encrypt a file into an envelope."`
	Open    openCmd    `cmd:"" help:"Decrypt an envelope."`
}

// Overridden in tests.
var (
	stdin        io.Reader = os.Stdin
	readPassword           = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
)

func main() {
	if err := loadDotenv(".env"); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var c cli
	ctx := kong.Parse(&c,
		kong.Name("cipherstring"),
		kong.Description("Validate, inspect, seal and open encrypted-string envelopes."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&c)
	ctx.FatalIfErrorf(err)
}

// loadDotenv loads path into the environment when it exists. Variables
// already set take precedence.
func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// sealer builds the symmetric sealer selected by the global key flags.
func (c *cli) sealer() (seal.Sealer, error) {
	if c.Key != "" {
		raw, err := base64.StdEncoding.DecodeString(c.Key)
		if err != nil {
			return nil, fmt.Errorf("decoding --key: %w", err)
		}
		return seal.AesCbcHmac(raw)
	}

	if c.Email == "" {
		return nil, errors.New("either --key or --email is required")
	}

	pwd, err := askPassphrase("Enter passphrase: ")
	if err != nil {
		return nil, err
	}

	salt := []byte(strings.ToLower(strings.TrimSpace(c.Email)))
	master, err := seal.DeriveMasterKey(pwd, salt, c.kdf())
	if err != nil {
		return nil, err
	}
	return seal.AesCbcHmac(master)
}

func (c *cli) kdf() seal.KDF {
	switch c.KDF {
	case "argon2id":
		k := seal.DefaultArgon2id()
		if c.Iterations > 0 {
			k.Iterations = uint32(c.Iterations) //nolint:gosec // bounded by user input
		}
		return k
	default:
		k := seal.DefaultPBKDF2()
		if c.Iterations > 0 {
			k.Iterations = c.Iterations
		}
		return k
	}
}

func askPassphrase(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return readPassword()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}
