package random

import "go.uber.org/zap"

// Picker wraps a Source and logger to provide logged index selection.
// Picks are logged at debug level with the range size only; the chosen
// index stays private until the round is resolved.
type Picker struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedPicker creates a Picker that draws from src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedPicker(src Source, logger *zap.Logger) *Picker {
	return &Picker{src: src, logger: logger}
}

// Pick returns an index in [0, n).
//
// Precondition: n > 0.
// Postcondition: 0 <= result < n.
func (p *Picker) Pick(n int) int {
	idx := p.src.Intn(n)
	p.logger.Debug("index picked", zap.Int("range", n))
	return idx
}
