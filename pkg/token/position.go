package token

// Position represents a location in the input.
type Position struct {
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column number, counted in runes
	Offset int `json:"offset"` // 0-based byte offset
}

// Span represents a range in the input.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Advance returns the position reached after reading text from p.
func Advance(p Position, text string) Position {
	for _, r := range text {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Offset += len(text)
	return p
}
