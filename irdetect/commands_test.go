package irdetect

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCommandToString(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		cmd  Command
		name string
		ok   bool
	}{
		{55335, "ON-OFF", true},
		{4335, "LEFT", true},
		{Header, "LEFT", true},
		{Up, "UP", true},
		{Down, "DOWN", true},
		{Center, "CENTER", true},
		{Right, "RIGHT", true},
		{A, "A", true},
		{B, "B", true},
		{C, "C", true},
		{1, "", false},
		{0, "", false},
		{0xffff, "", false},
	}
	for _, tt := range tests {
		name, ok := CommandToString(tt.cmd)
		c.Assert(ok, qt.Equals, tt.ok, qt.Commentf("cmd=%d", tt.cmd))
		c.Assert(name, qt.Equals, tt.name)
	}
	c.Assert(DefaultLabels, qt.HasLen, 9)
}

func TestLabels_Injectable(t *testing.T) {
	c := qt.New(t)
	labels := Labels{7: "SEVEN"}

	name, ok := labels.Lookup(7)
	c.Assert(ok, qt.IsTrue)
	c.Assert(name, qt.Equals, "SEVEN")

	_, ok = labels.Lookup(Left)
	c.Assert(ok, qt.IsFalse)
}

func TestLabels_Parse(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		in   string
		want Command
	}{
		{"left", Left},
		{"ON-OFF", OnOff},
		{" b ", B},
		{"4335", 4335},
		{"0x00ff", Down},
		{"0b1010000001011111", Up},
	}
	for _, tt := range tests {
		c.Run(tt.in, func(c *qt.C) {
			got, err := DefaultLabels.Parse(tt.in)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, tt.want)
		})
	}

	_, err := DefaultLabels.Parse("volume")
	c.Assert(err, qt.ErrorMatches, `irdetect: unknown command "volume"`)
	_, err = DefaultLabels.Parse("70000")
	c.Assert(err, qt.IsNotNil)
}

func TestLabels_CommandsSorted(t *testing.T) {
	c := qt.New(t)
	c.Assert(DefaultLabels.Commands(), qt.DeepEquals,
		[]Command{Down, Left, Center, C, B, Right, Up, OnOff, A})
}

func TestCommand_String(t *testing.T) {
	c := qt.New(t)
	c.Assert(Center.String(), qt.Equals, "CENTER")
	c.Assert(Command(1).String(), qt.Equals, "0x0001")
}
