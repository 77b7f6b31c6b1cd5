package client

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/treeforest/bitcoinutils/base58"
	"github.com/treeforest/bitcoinutils/base58check"
	"github.com/treeforest/bitcoinutils/config"
)

func run(t *testing.T, conf *config.Config, args ...string) (string, error) {
	var out bytes.Buffer
	err := New(conf, &out).Run(args)
	return strings.TrimSpace(out.String()), err
}

func TestCommandEncodeDecode(t *testing.T) {
	conf := config.DefaultConfig()

	out, err := run(t, conf, "encode", "-data", "00010966776006953d5567439e5e39f86a0d273beed61967f6", "-hex")
	require.NoError(t, err)
	require.Equal(t, "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM", out)

	out, err = run(t, conf, "decode", "-data", "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM")
	require.NoError(t, err)
	require.Equal(t, "00010966776006953d5567439e5e39f86a0d273beed61967f6", out)

	out, err = run(t, conf, "encodecheck", "-data", "00010966776006953d5567439e5e39f86a0d273bee", "-hex")
	require.NoError(t, err)
	require.Equal(t, "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM", out)

	out, err = run(t, conf, "decodecheck", "-data", "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM")
	require.NoError(t, err)
	require.Equal(t, "00010966776006953d5567439e5e39f86a0d273bee", out)
}

func TestCommandTextOutput(t *testing.T) {
	conf := config.DefaultConfig()
	conf.HexOutput = false

	encoded, err := run(t, conf, "encode", "-data", "hello")
	require.NoError(t, err)
	require.Equal(t, string(base58.Encode([]byte("hello"))), encoded)

	out, err := run(t, conf, "decode", "-data", encoded)
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestCommandErrors(t *testing.T) {
	conf := config.DefaultConfig()

	_, err := run(t, conf, "encode", "-data", "ƒç")
	require.True(t, errors.Is(err, base58.ErrEncoding))

	_, err = run(t, conf, "decodecheck", "-data", "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvN")
	require.True(t, errors.Is(err, base58check.ErrChecksumMismatch))

	_, err = run(t, conf, "decode", "-data", "0")
	require.True(t, errors.Is(err, base58.ErrInvalidCharacter))

	out, err := run(t, conf)
	require.Equal(t, ErrUsage, err)
	require.Contains(t, out, "Usage:")

	_, err = run(t, conf, "unknown")
	require.Equal(t, ErrUsage, err)

	_, err = run(t, conf, "encode", "-nope")
	require.Equal(t, ErrUsage, err)
}

func TestCommandAlphabet(t *testing.T) {
	out, err := run(t, config.DefaultConfig(), "alphabet")
	require.NoError(t, err)
	require.Equal(t, base58.BitcoinAlphabetString, out)

	conf := config.DefaultConfig()
	conf.Alphabet = "abc"
	_, err = run(t, conf, "alphabet")
	require.True(t, errors.Is(err, base58.ErrInvalidAlphabet))
}
