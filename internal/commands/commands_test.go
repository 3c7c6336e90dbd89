package commands_test

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gogen/pkg/validator"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/bksq/internal/commands"
	"github.com/idelchi/bksq/internal/config"
)

const hexKey = "000102030405060708090a0b"

// execute runs a fresh root command with args and returns what it printed.
// The root command binds flags to the global viper instance, so tests here do not run in parallel.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cfg config.Config

	root := commands.NewRootCommand(&cfg, "test")

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestKeygen(t *testing.T) {
	out, err := execute(t, "keygen")
	require.NoError(t, err)

	raw, err := hex.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	require.Len(t, raw, 12)
}

func TestEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msg")
	plaintext := []byte("attack at dawn!!12345678")
	require.NoError(t, os.WriteFile(path, plaintext, 0o600))

	_, err := execute(t, "encrypt", "-q", "-k", hexKey, path)
	require.NoError(t, err)

	sealed, err := os.ReadFile(path + ".bksq")
	require.NoError(t, err)
	require.Len(t, sealed, len(plaintext)+24)

	_, err = execute(t, "decrypt", "-q", "-k", hexKey, "--decrypt-ext", ".plain", path+".bksq")
	require.NoError(t, err)

	got, err := os.ReadFile(path + ".plain")
	require.NoError(t, err)
	require.Equal(t, plaintext, got)

	_, err = execute(t, "decrypt", "-q", "-k", "ffffffffffffffffffffffff", "--decrypt-ext", ".bad", path+".bksq")
	require.Error(t, err)

	_, err = os.Stat(path + ".bad")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeros")
	require.NoError(t, os.WriteFile(path, make([]byte, 24), 0o600))

	out, err := execute(t, "hash", path)
	require.NoError(t, err)
	require.Equal(t, "c6797a948b04a580727d69c8  "+path+"\n", out)
}

func TestMACNeedsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeros")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o600))

	_, err := execute(t, "mac", path)
	require.ErrorIs(t, err, config.ErrNoKey)

	out, err := execute(t, "mac", "-k", "000000000000000000000000", path)
	require.NoError(t, err)
	require.Equal(t, "5df03034b13e8a9253bdd268  "+path+"\n", out)
}

func TestRejectsInvalidFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o600))

	_, err := execute(t, "encrypt", "-k", "abc", path)
	require.Error(t, err)

	_, err = execute(t, "encrypt", "-k", hexKey, "-j", "0", path)
	require.Error(t, err)

	_, err = execute(t, "encrypt", "-k", hexKey, "-f", path, path)
	require.ErrorIs(t, err, validator.ErrValidation)
	require.Contains(t, err.Error(), "--key is mutually exclusive")
}

func TestKeyFromEnvironment(t *testing.T) {
	t.Setenv("BKSQ_KEY", "000000000000000000000000")

	path := filepath.Join(t.TempDir(), "zeros")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o600))

	out, err := execute(t, "mac", path)
	require.NoError(t, err)
	require.Equal(t, "5df03034b13e8a9253bdd268  "+path+"\n", out)
}

func TestShowExits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o600))

	_, err := execute(t, "encrypt", "--show", "-k", hexKey, path)
	require.ErrorIs(t, err, cobraext.ErrExitGracefully)

	_, err = os.Stat(path + ".bksq")
	require.ErrorIs(t, err, os.ErrNotExist)
}
