package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/nesinstrgen/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Generator
	}{
		{
			name: "default flags",
			args: []string{"prog", "table.csv"},
			want: options.Generator{Format: "rust"},
		},
		{
			name: "go format",
			args: []string{"prog", "-f", "go", "table.csv"},
			want: options.Generator{Format: "go"},
		},
		{
			name: "format name is case insensitive",
			args: []string{"prog", "-f", "Rust", "table.csv"},
			want: options.Generator{Format: "rust"},
		},
		{
			name: "strict flag",
			args: []string{"prog", "-strict", "table.csv"},
			want: options.Generator{Format: "rust", Strict: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Format, got.Format)
			assert.Equal(t, tt.want.Strict, got.Strict)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	t.Run("missing table file shows usage", func(t *testing.T) {
		oldArgs := os.Args
		t.Cleanup(func() { os.Args = oldArgs })

		os.Args = []string{"prog"}

		_, _, err := ParseFlags()
		assert.Error(t, err)

		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))
	})

	t.Run("unsupported format", func(t *testing.T) {
		oldArgs := os.Args
		t.Cleanup(func() { os.Args = oldArgs })

		os.Args = []string{"prog", "-f", "zig", "table.csv"}

		_, _, err := ParseFlags()
		assert.Error(t, err)
	})

	t.Run("flag after table file", func(t *testing.T) {
		err := validateArgs([]string{"table.csv", "-q"})
		assert.Error(t, err)
	})
}

func TestNormalizeOptions(t *testing.T) {
	opts := options.Program{Format: "RUST"}
	assert.NoError(t, normalizeOptions(&opts))
	assert.Equal(t, "rust", opts.Format)

	opts = options.Program{Format: "cobol"}
	assert.Error(t, normalizeOptions(&opts))
}
