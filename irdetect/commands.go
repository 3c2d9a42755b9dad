package irdetect

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Command is one decoded 16-bit word, assembled most significant bit first.
type Command uint16

// Known codes of the SparkFun remote.
//
//	HEADER    0001000011101111 4335
//	ON-OFF    1101100000100111 55335
//	A         1111100000000111 63495
//	B         0111100010000111 30855
//	C         0101100010100111 22695
//	UP        1010000001011111 41055
//	LEFT      0001000011101111 4335
//	CENTER    0010000011011111 8415
//	RIGHT     1000000001111111 32895
//	DOWN      0000000011111111 255
const (
	Header Command = 4335
	OnOff  Command = 55335
	Up     Command = 41055
	Down   Command = 255
	Center Command = 8415
	Left   Command = 4335
	Right  Command = 32895
	A      Command = 63495
	B      Command = 30855
	C      Command = 22695
)

// Labels maps command words to button names. A Labels value is read-only
// once published; lookups of unknown words report absence, not an error.
type Labels map[Command]string

// DefaultLabels names the nine buttons of the SparkFun remote. Header shares
// its value with Left and therefore resolves to "LEFT".
var DefaultLabels = Labels{
	OnOff:  "ON-OFF",
	Up:     "UP",
	Down:   "DOWN",
	Center: "CENTER",
	Left:   "LEFT",
	Right:  "RIGHT",
	A:      "A",
	B:      "B",
	C:      "C",
}

// Lookup returns the name for cmd and whether it is known.
func (l Labels) Lookup(cmd Command) (string, bool) {
	name, ok := l[cmd]
	return name, ok
}

// Parse resolves a button name (case-insensitive) or a numeric value.
// Numbers may be decimal, 0x-prefixed hex or 0b-prefixed binary.
func (l Labels) Parse(s string) (Command, error) {
	s = strings.TrimSpace(s)
	for cmd, name := range l {
		if strings.EqualFold(name, s) {
			return cmd, nil
		}
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("irdetect: unknown command %q", s)
	}
	return Command(v), nil
}

// Commands returns the known words in ascending order.
func (l Labels) Commands() []Command {
	out := make([]Command, 0, len(l))
	for cmd := range l {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CommandToString translates cmd using DefaultLabels.
func CommandToString(cmd Command) (string, bool) {
	return DefaultLabels.Lookup(cmd)
}

// String returns the button name, or the hex value for unknown words.
func (c Command) String() string {
	if name, ok := DefaultLabels.Lookup(c); ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(c))
}
