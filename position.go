// Position support for go-tomldom

package toml

import (
	"fmt"
)

// Position within a TOML document.
type Position struct {
	Line int // line within the document, 1-indexed
	Col  int // column within the line, 1-indexed
}

// String representation of the position.
// Displays 1-indexed line and column numbers.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Line, p.Col)
}

// Invalid returns whether or not the position is valid (i.e. with negative or
// null values).
func (p Position) Invalid() bool {
	return p.Line <= 0 || p.Col <= 0
}

// Mapper turns a byte offset into source into a line/column Position. It is
// the concrete form of spec.md §6's "text-to-line/column Mapper" external
// collaborator: the DOM itself never resolves positions, it only ever
// carries byte ranges.
type Mapper interface {
	Position(offset uint32) Position
}

// LineMapper is a Mapper built once from a document's full source text,
// grounded on the teacher's positionAtEnd/formatLineNumber helpers in
// errors.go. It precomputes line-start offsets so Position is O(log n).
type LineMapper struct {
	src        string
	lineStarts []uint32
}

// NewLineMapper builds a LineMapper over src.
func NewLineMapper(src string) *LineMapper {
	lm := &LineMapper{src: src, lineStarts: []uint32{0}}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lm.lineStarts = append(lm.lineStarts, uint32(i+1))
		}
	}
	return lm
}

// Position resolves a byte offset to a 1-indexed line/column. Offsets past
// the end of the source clamp to the document's last position, matching the
// teacher's positionAtEnd fallback for unterminated constructs.
func (lm *LineMapper) Position(offset uint32) Position {
	if offset > uint32(len(lm.src)) {
		offset = uint32(len(lm.src))
	}

	lo, hi := 0, len(lm.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lm.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	lineStart := lm.lineStarts[lo]
	return Position{Line: lo + 1, Col: int(offset-lineStart) + 1}
}

// PositionedError pairs a DOM Error with the Position its primary range
// resolves to, ready for display to a user or an editor's diagnostics list.
type PositionedError struct {
	Err Error
	Pos Position
}

func (pe PositionedError) Error() string {
	return fmt.Sprintf("%s: %s", pe.Pos.String(), pe.Err.Error())
}

// errorPrimaryOffset returns the byte offset an Error should be resolved
// against: the start of its first key, its spanned range's start for
// Spanned errors, or 0 for Generic errors.
func errorPrimaryOffset(e Error) uint32 {
	switch e.kind {
	case ErrSpanned:
		return e.spannedRange.Start
	case ErrGeneric:
		return 0
	default:
		start, _ := e.first.TextRange()
		return start
	}
}

// Resolve turns a DOM Error into a PositionedError via mapper, giving
// callers (like cmd/tomldom check) a line:col to print instead of a bare
// byte offset.
func Resolve(mapper Mapper, e Error) PositionedError {
	return PositionedError{Err: e, Pos: mapper.Position(errorPrimaryOffset(e))}
}
