package gf //nolint:testpackage // testing unexported reference algorithms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulMatchesReference(t *testing.T) {
	t.Parallel()

	for a := range 256 {
		for b := range 256 {
			require.Equal(t, mulSlow(byte(a), byte(b)), Mul(byte(a), byte(b)), "Mul(%#x, %#x)", a, b)
		}
	}
}

func TestMulProperties(t *testing.T) {
	t.Parallel()

	for a := range 256 {
		require.Equal(t, byte(0), Mul(byte(a), 0), "a * 0")
		require.Equal(t, byte(a), Mul(byte(a), 1), "a * 1")

		for b := range 256 {
			require.Equal(t, Mul(byte(a), byte(b)), Mul(byte(b), byte(a)), "commutativity")
		}
	}
}

func TestMulKnownAnswers(t *testing.T) {
	t.Parallel()

	// FIPS-197 section 4.2.
	require.Equal(t, byte(0xc1), Mul(0x57, 0x83))
	require.Equal(t, byte(0xfe), Mul(0x57, 0x13))
	require.Equal(t, byte(0xae), Mul(0x57, 0x02))
	require.Equal(t, byte(0x47), Mul(0x57, 0x04))
}

func TestInverse(t *testing.T) {
	t.Parallel()

	require.Equal(t, byte(0), Inverse(0))

	for v := 1; v < 256; v++ {
		require.Equal(t, byte(1), Mul(byte(v), Inverse(byte(v))), "v=%#x", v)
	}

	require.Equal(t, byte(0xca), Inverse(0x53))
}

func TestPow2(t *testing.T) {
	t.Parallel()

	want := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36, 0x6c}

	for i, w := range want {
		require.Equal(t, w, Pow2(i), "2^%d", i)
	}
}

func BenchmarkMul(b *testing.B) {
	var acc byte

	for b.Loop() {
		acc ^= Mul(0x57, acc+0x83)
	}

	_ = acc
}
