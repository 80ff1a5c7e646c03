package engine

import "github.com/panelworks/tankquote/pkg/domain/entities"

// Diagnostics records the defensive events of one calculation so tests
// and operators can observe them: formula results clamped to zero,
// catalog misses, option strings that failed closed to a default, and
// modules that were isolated after a defect.
type Diagnostics struct {
	ClampedQuantities int
	UnresolvedParts   []entities.PartNumber
	ModuleFailures    []string
}

// clamp floors a computed quantity at zero, counting every clamp so the
// defensive policy stays observable rather than silently masking a
// formula edge case.
func (d *Diagnostics) clamp(n int) int {
	if n < 0 {
		d.ClampedQuantities++
		return 0
	}
	return n
}
