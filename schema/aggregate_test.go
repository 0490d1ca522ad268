// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolved_Map(t *testing.T) {
	t.Run("will nest dotted field names", func(t *testing.T) {
		host := LastOr("server.host", "localhost")
		port := LastOr("server.port", 8080)
		debug := Any("debug")
		s := MustNew("nested", host, port, debug)

		r := port.Seed(s.Empty(), 9090).Finalize()
		require.Equal(t, map[string]any{
			"server": map[string]any{
				"host": "localhost",
				"port": 9090,
			},
			"debug": false,
		}, r.Map())
	})
}

func TestResolved_Unmarshal(t *testing.T) {
	t.Run("will decode into a tagged struct", func(t *testing.T) {
		host := LastOr("server.host", "localhost")
		timeout := LastOr("server.timeout", time.Second)
		output := Last[string]("output_file")
		verbose := Sum[uint32]("verbose")
		files := Set[string]("files")
		s := MustNew("unmarshal", host, timeout, output, verbose, files)

		fr := output.Seed(s.Empty(), ptr("/tmp/out"))
		fr = verbose.Seed(fr, 2)
		fr = files.Seed(fr, []string{"b", "a"})

		var cfg struct {
			Server struct {
				Host    string        `config:"host"`
				Timeout time.Duration `config:"timeout"`
			} `config:"server"`
			OutputFile string   `config:"output_file"`
			Verbose    uint32   `config:"verbose"`
			Files      []string `config:"files"`
		}
		err := fr.Finalize().Unmarshal(&cfg)
		require.NoError(t, err)
		require.Equal(t, "localhost", cfg.Server.Host)
		require.Equal(t, time.Second, cfg.Server.Timeout)
		require.Equal(t, "/tmp/out", cfg.OutputFile)
		require.Equal(t, uint32(2), cfg.Verbose)
		require.Equal(t, []string{"a", "b"}, cfg.Files)
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a nil result is provided", func(t *testing.T) {
			debug := Any("debug")
			s := MustNew("nil", debug)

			var v any
			err := s.Empty().Finalize().Unmarshal(v)
			require.Error(t, err)
		})
	})
}
