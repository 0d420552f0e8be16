package rust

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/nesinstrgen/internal/loader"
	"github.com/retroenv/nesinstrgen/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestWrite(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		table, err := loader.New().LoadFromReader(strings.NewReader(
			"name,operation,addressingMode,cycles\n" +
				"LDA,load_accumulator,immediate,2\n"))
		assert.NoError(t, err)

		var buf bytes.Buffer
		assert.NoError(t, New(table, options.NewGenerator("rust"), &buf).Write())

		assert.Equal(t,
			`Instruction::new("LDA".to_string(),Some(Cpu::load_accumulator),Some(Cpu::immediate),2),`+"\n",
			buf.String())
	})

	t.Run("rows keep table order", func(t *testing.T) {
		table, err := loader.New().LoadFromReader(strings.NewReader(
			"name,operation,addressingMode,cycles\n" +
				"BRK,BRK,IMM,7\n" +
				"ORA,ORA,IZX,6\n" +
				"NOP,NOP,IMP,2\n"))
		assert.NoError(t, err)

		var buf bytes.Buffer
		assert.NoError(t, New(table, options.NewGenerator("rust"), &buf).Write())

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		assert.Equal(t, 3, len(lines))
		assert.Equal(t, `Instruction::new("BRK".to_string(),Some(Cpu::BRK),Some(Cpu::IMM),7),`, lines[0])
		assert.Equal(t, `Instruction::new("ORA".to_string(),Some(Cpu::ORA),Some(Cpu::IZX),6),`, lines[1])
		assert.Equal(t, `Instruction::new("NOP".to_string(),Some(Cpu::NOP),Some(Cpu::IMP),2),`, lines[2])
	})

	t.Run("header only table produces no output", func(t *testing.T) {
		table, err := loader.New().LoadFromReader(strings.NewReader(
			"name,operation,addressingMode,cycles\n"))
		assert.NoError(t, err)

		var buf bytes.Buffer
		assert.NoError(t, New(table, options.NewGenerator("rust"), &buf).Write())
		assert.Equal(t, "", buf.String())
	})

	t.Run("missing column yields marker", func(t *testing.T) {
		table, err := loader.New().LoadFromReader(strings.NewReader(
			"name,operation,addressingMode\n" +
				"LDA,LDA,IMM\n"))
		assert.NoError(t, err)

		var buf bytes.Buffer
		assert.NoError(t, New(table, options.NewGenerator("rust"), &buf).Write())

		assert.Equal(t,
			`Instruction::new("LDA".to_string(),Some(Cpu::LDA),Some(Cpu::IMM),None),`+"\n",
			buf.String())
	})

	t.Run("missing column fails in strict mode", func(t *testing.T) {
		table, err := loader.New().LoadFromReader(strings.NewReader(
			"name,operation,addressingMode\n" +
				"LDA,LDA,IMM\n"))
		assert.NoError(t, err)

		opts := options.NewGenerator("rust")
		opts.Strict = true

		var buf bytes.Buffer
		assert.Error(t, New(table, opts, &buf).Write())
		assert.Equal(t, "", buf.String())
	})

	t.Run("quote in name is not escaped", func(t *testing.T) {
		table, err := loader.New().LoadFromReader(strings.NewReader(
			"name,operation,addressingMode,cycles\n" +
				"\"LDA\"\"X\",lda,immediate,2\n"))
		assert.NoError(t, err)

		var buf bytes.Buffer
		assert.NoError(t, New(table, options.NewGenerator("rust"), &buf).Write())

		// the quote lands in the generated line verbatim, producing invalid
		// Rust, matching the legacy generator
		assert.Equal(t,
			`Instruction::new("LDA"X".to_string(),Some(Cpu::lda),Some(Cpu::immediate),2),`+"\n",
			buf.String())
	})

	t.Run("values are interpolated verbatim", func(t *testing.T) {
		table, err := loader.New().LoadFromReader(strings.NewReader(
			"name,operation,addressingMode,cycles\n" +
				"*NOP,nop_unofficial,zeropage_x,4\n"))
		assert.NoError(t, err)

		var buf bytes.Buffer
		assert.NoError(t, New(table, options.NewGenerator("rust"), &buf).Write())

		assert.True(t, strings.Contains(buf.String(), `"*NOP"`))
	})
}
