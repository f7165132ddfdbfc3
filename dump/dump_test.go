package dump_test

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pouriyajamshidi/tailor/dump"
)

var (
	_ dump.Dumper = (*dump.ColorDumper)(nil)
	_ dump.Dumper = (*dump.PlainDumper)(nil)
	_ dump.Dumper = (*dump.YAMLDumper)(nil)
)

type limits struct {
	MaxConns int
	Burst    int
}

type endpoint struct {
	Host    string
	Port    int
	Timeout time.Duration
	Tags    []string
	Limits  limits
	note    string
}

func TestPlainDumper(t *testing.T) {
	var buf bytes.Buffer

	err := dump.NewPlainDumper(&buf).Dump(endpoint{
		Host:    "localhost",
		Port:    9000,
		Timeout: 5 * time.Second,
		Tags:    []string{"edge"},
		Limits:  limits{MaxConns: 10},
		note:    "hidden",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "dump_test.endpoint")
	assert.Contains(t, out, `Host: "localhost"`)
	assert.Contains(t, out, "Port: 9000")
	assert.Contains(t, out, "Timeout: 5s")
	assert.Contains(t, out, "MaxConns: 10")
	assert.NotContains(t, out, "Burst", "zero fields are hidden by default")
	assert.NotContains(t, out, "hidden", "unexported fields must not render")
}

func TestPlainDumperZeroFields(t *testing.T) {
	value := endpoint{Host: "localhost"}

	t.Run("hidden by default", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, dump.NewPlainDumper(&buf).Dump(value))
		assert.NotContains(t, buf.String(), "Port")
	})

	t.Run("shown with WithZeros", func(t *testing.T) {
		var buf bytes.Buffer

		d := dump.NewPlainDumper(&buf, dump.WithZeros[*dump.PlainDumper]())
		require.NoError(t, d.Dump(value))
		assert.Contains(t, buf.String(), "Port: 0")
	})
}

func TestPlainDumperShowTypes(t *testing.T) {
	var buf bytes.Buffer

	d := dump.NewPlainDumper(&buf, dump.WithTypes[*dump.PlainDumper]())
	require.NoError(t, d.Dump(endpoint{Host: "localhost"}))

	assert.Contains(t, buf.String(), `Host (string): "localhost"`)
}

func TestPlainDumperMaxDepth(t *testing.T) {
	var buf bytes.Buffer

	d := dump.NewPlainDumper(&buf, dump.WithMaxDepth[*dump.PlainDumper](1))
	require.NoError(t, d.Dump(endpoint{
		Host:   "localhost",
		Limits: limits{MaxConns: 10},
	}))

	out := buf.String()
	assert.Contains(t, out, "Limits: ...")
	assert.NotContains(t, out, "MaxConns")
}

func TestPlainDumperNonStruct(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, dump.NewPlainDumper(&buf).Dump(42))
	assert.Equal(t, "int: 42\n", buf.String())
}

func TestColorDumperFallsBackOffTerminal(t *testing.T) {
	var buf bytes.Buffer

	d := dump.NewColorDumper(&buf, dump.WithTypes[*dump.ColorDumper]())
	require.NoError(t, d.Dump(endpoint{Host: "localhost"}))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "non-terminal output must not carry escape codes")
	assert.Contains(t, out, `Host (string): "localhost"`)
}

func TestYAMLDumper(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, dump.NewYAMLDumper(&buf).Dump(endpoint{
		Host: "localhost",
		Port: 9000,
	}))

	out := buf.String()
	assert.Contains(t, out, "host: localhost")
	assert.Contains(t, out, "port: 9000")
}

func TestString(t *testing.T) {
	out := dump.String(endpoint{Host: "localhost"})

	assert.Contains(t, out, `Host: "localhost"`)
}

func TestStringNil(t *testing.T) {
	assert.Equal(t, "<nil>\n", dump.String(nil))
}

func ExamplePlainDumper() {
	d := dump.NewPlainDumper(os.Stdout)

	_ = d.Dump(endpoint{
		Host: "localhost",
		Port: 9000,
	})

	// Output:
	// dump_test.endpoint
	//   Host: "localhost"
	//   Port: 9000
}
