package config

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/treeforest/bitcoinutils/base58"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	require.NoError(t, conf.Validate())

	a, err := conf.LoadAlphabet()
	require.NoError(t, err)
	require.Equal(t, base58.BitcoinAlphabet, a)

	data, err := conf.Marshal()
	require.NoError(t, err)
	t.Log(string(data))

	other := new(Config)
	require.NoError(t, other.Unmarshal(data))
	require.Equal(t, conf, other)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "http_server_port: 9090\ndebug: true\nshutdown_timeout: 2s\n")

	conf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, conf.HttpServerPort)
	require.Equal(t, true, conf.Debug)
	require.Equal(t, 2*time.Second, conf.ShutdownTimeout)
	require.Equal(t, base58.BitcoinAlphabetString, conf.Alphabet)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "http_server_port: 0\n"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "alphabet: abc\n"))
	require.True(t, errors.Is(err, base58.ErrInvalidAlphabet))

	_, err = Load(writeConfig(t, "http_server_port: [\n"))
	require.Error(t, err)
}
