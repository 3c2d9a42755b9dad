package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func run(stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := qt.New(t)

	capture, err := run("", "encode", "LEFT", "on-off", "0x0001")
	c.Assert(err, qt.IsNil)
	c.Assert(strings.HasPrefix(capture, "# mode: timestamps\n9000\n"), qt.IsTrue)

	out, err := run(capture, "decode", "--plain")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Equals, strings.Join([]string{
		"LEFT     4335  0x10ef  0001000011101111",
		"ON-OFF  55335  0xd827  1101100000100111",
		"?           1  0x0001  0000000000000001",
		"",
	}, "\n"))
}

func TestEncodeIntervalsToFile(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "up.txt")

	_, err := run("", "encode", "UP", "--intervals", "-o", path)
	c.Assert(err, qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(strings.HasPrefix(string(data), "# mode: intervals\n9000\n2250\n"), qt.IsTrue)

	out, err := run("", "decode", "--plain", path)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "UP")
}

type failingCloser struct {
	bytes.Buffer
}

func (*failingCloser) Close() error { return errors.New("disk full") }

func TestEncodeReportsCloseError(t *testing.T) {
	c := qt.New(t)

	var f failingCloser
	c.Patch(&createFile, func(string) (io.WriteCloser, error) { return &f, nil })

	_, err := run("", "encode", "UP", "-o", "up.txt")
	c.Assert(err, qt.ErrorMatches, `irtool: close capture: disk full`)
	c.Assert(strings.HasPrefix(f.String(), "# mode: timestamps\n"), qt.IsTrue)
}

func TestEncodeRejectsBadInput(t *testing.T) {
	c := qt.New(t)

	_, err := run("", "encode", "VOLUME")
	c.Assert(err, qt.ErrorMatches, `irdetect: unknown command "VOLUME"`)

	_, err = run("", "encode", "UP", "--zero", "1500")
	c.Assert(err, qt.ErrorMatches, `capture: timing outside decoder thresholds: zero gap 1500µs`)
}

func TestDecodeReportsSyntaxError(t *testing.T) {
	c := qt.New(t)

	_, err := run("9000\nabc\n", "decode")
	c.Assert(err, qt.ErrorMatches, `capture: syntax error: line 2: .*`)
}

func TestLabelsLists(t *testing.T) {
	c := qt.New(t)

	out, err := run("", "labels", "--plain")
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Count(out, "\n"), qt.Equals, 9)
	c.Assert(strings.HasPrefix(out, "DOWN"), qt.IsTrue)
}

func TestMonitorNeedsSource(t *testing.T) {
	c := qt.New(t)

	_, err := run("", "monitor")
	c.Assert(err, qt.ErrorMatches, `irtool: monitor needs --demo or a capture file`)

	_, err = run("", "monitor", "--demo", "x.txt")
	c.Assert(err, qt.ErrorMatches, `irtool: --demo and a capture file are mutually exclusive`)
}
