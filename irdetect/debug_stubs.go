//go:build !irdebug

package irdetect

type Stats struct{}

func (d *Detector) dbgSymbol(Symbol)    {}
func (d *Detector) dbgEmit(bool, uint8) {}
func (d *Detector) dbgNotify(bool)      {}
func (d *Detector) dbgReadWait()        {}
func (d *Detector) dbgSpuriousWake()    {}
func (d *Detector) dbgTimeout()         {}
func (d *Detector) DebugReset()         {}
func (d *Detector) DebugStats() Stats   { return Stats{} }
