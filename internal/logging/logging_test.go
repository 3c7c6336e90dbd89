package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idelchi/bksq/internal/logging"
)

func TestLevels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		quiet, verbose bool
		info, debug    bool
	}{
		{"default", false, false, true, false},
		{"quiet", true, false, false, false},
		{"verbose", false, true, true, true},
		{"quiet wins", true, true, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			log := logging.New(&buf, tc.quiet, tc.verbose)

			log.Info().Str("input", "a.txt").Msg("processed")
			require.Equal(t, tc.info, bytes.Contains(buf.Bytes(), []byte("processed")))
			require.Equal(t, tc.info, bytes.Contains(buf.Bytes(), []byte("input=a.txt")))

			buf.Reset()
			log.Debug().Msg("details")
			require.Equal(t, tc.debug, bytes.Contains(buf.Bytes(), []byte("details")))

			buf.Reset()
			log.Warn().Msg("careful")
			require.Contains(t, buf.String(), "careful")
		})
	}
}
