package ui

// Bar glyphs. FullBlock renders one whole bar unit; HalfBlock (rune 9612,
// LEFT HALF BLOCK) marks a bar whose length rounds down to zero but whose
// value is nonzero.
const (
	FullBlock = '█' // █
	HalfBlock = '▌' // ▌
)

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Operation completed successfully
	SymbolFail    = "✗" // Operation failed
)
