package irdetect

// Gap thresholds between consecutive falling edges, in microseconds.
const (
	ZeroMaxMicros = 1200 // elapsed < ZeroMaxMicros is a zero bit
	OneMaxMicros  = 2400 // elapsed < OneMaxMicros is a one bit, otherwise a frame reset
	WordBits      = 16
)

// Symbol is the classification of one inter-edge gap.
type Symbol uint8

const (
	SymbolZero Symbol = iota
	SymbolOne
	SymbolFrameReset
)

// Classify maps an elapsed time between falling edges onto a symbol. Every
// value maps to exactly one symbol; there is no invalid timing.
func Classify(elapsed uint32) Symbol {
	switch {
	case elapsed < ZeroMaxMicros:
		return SymbolZero
	case elapsed < OneMaxMicros:
		return SymbolOne
	default:
		return SymbolFrameReset
	}
}

func (s Symbol) String() string {
	switch s {
	case SymbolZero:
		return "ZERO"
	case SymbolOne:
		return "ONE"
	case SymbolFrameReset:
		return "FRAME_RESET"
	}
	return "INVALID"
}
