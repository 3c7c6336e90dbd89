package encryption_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/bksq/internal/encryption"
	"github.com/idelchi/bksq/pkg/bksq"
	"github.com/idelchi/bksq/pkg/ctr"
	"github.com/idelchi/bksq/pkg/etm"
)

func randomKey(t *testing.T) bksq.Key {
	t.Helper()

	var key bksq.Key

	_, err := rand.Read(key[:])
	require.NoError(t, err)

	return key
}

func TestSealOpen(t *testing.T) {
	t.Parallel()

	key := randomKey(t)

	for _, executable := range []bool{false, true} {
		plaintext := bytes.Repeat([]byte("0123456789ab"), 50)

		envelope, err := encryption.Seal(key, plaintext, executable, 2)
		require.NoError(t, err)
		require.Len(t, envelope, len(plaintext)+encryption.EnvelopeOverhead)
		require.Equal(t, []byte("BKSQ"), envelope[:4])

		snapshot := bytes.Clone(envelope)

		got, exec, err := encryption.Open(key, envelope, 2)
		require.NoError(t, err)
		require.Equal(t, plaintext, got)
		require.Equal(t, executable, exec)
		require.Equal(t, snapshot, envelope, "Open must not modify its input")
	}
}

func TestSealLayoutMatchesToolkit(t *testing.T) {
	t.Parallel()

	key := randomKey(t)
	plaintext := bytes.Repeat([]byte{0x5a}, 36)

	envelope, err := encryption.Seal(key, plaintext, false, 1)
	require.NoError(t, err)

	nonce := envelope[6:12]
	body := bytes.Clone(plaintext)

	tag, err := etm.Seal(ctr.Context{Data: body, Key: key, Nonce: bytes.Clone(nonce)})
	require.NoError(t, err)

	require.Equal(t, body, envelope[12:48])
	require.Equal(t, tag[:], envelope[48:])
}

func TestSealRejects(t *testing.T) {
	t.Parallel()

	key := randomKey(t)

	_, err := encryption.Seal(key, nil, false, 1)
	require.ErrorIs(t, err, encryption.ErrEmptyData)

	_, err = encryption.Seal(key, []byte("thirteen byte"), false, 1)
	require.ErrorIs(t, err, bksq.ErrInvalidDataLength)
}

func TestOpenRejects(t *testing.T) {
	t.Parallel()

	key := randomKey(t)

	envelope, err := encryption.Seal(key, make([]byte, 24), false, 1)
	require.NoError(t, err)

	corrupt := func(i int, mask byte) []byte {
		c := bytes.Clone(envelope)
		c[i] ^= mask

		return c
	}

	cases := []struct {
		name     string
		envelope []byte
		key      bksq.Key
		want     error
	}{
		{"short", envelope[:10], key, encryption.ErrProcessing},
		{"magic", corrupt(0, 0xff), key, encryption.ErrProcessing},
		{"version", corrupt(4, 0x02), key, encryption.ErrProcessing},
		{"unknown flag", corrupt(5, 0x80), key, encryption.ErrProcessing},
		{"nonce", corrupt(7, 0x01), key, bksq.ErrAuthentication},
		{"ciphertext", corrupt(20, 0x01), key, bksq.ErrAuthentication},
		{"tag", corrupt(len(envelope)-1, 0x01), key, bksq.ErrAuthentication},
		{"unaligned body", append(bytes.Clone(envelope), 0), key, bksq.ErrInvalidDataLength},
		{"wrong key", envelope, randomKey(t), bksq.ErrAuthentication},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := encryption.Open(tc.key, tc.envelope, 1)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
