// Package mask compiles a positional mask string into a template of
// literal bytes and alphabet-fed slots.
package mask

import (
	"strings"

	"github.com/XenorInspire/worgenx/internal/werrors"
)

// Cell is one position in a compiled template: either a literal byte or
// a slot to be filled from the alphabet.
type Cell struct {
	Literal byte
	Slot    bool
}

// Template is a compiled mask: an ordered sequence of cells plus the
// indices (into Cells) of the slot positions, cached for fast odometer
// advancement.
type Template struct {
	Cells       []Cell
	SlotIndices []int
}

// SlotCount returns the number of alphabet-fed positions in the template.
func (t Template) SlotCount() int {
	return len(t.SlotIndices)
}

// Compile parses a raw mask string into a Template.
//
// Escaping rules:
//   - `\?` produces a literal '?' cell.
//   - `\\` produces a literal '\' cell.
//   - a bare '?' produces a slot cell.
//   - any other byte, including a lone trailing '\', passes through
//     as a literal.
//
// Compile returns werrors.ErrInvalidMask if raw is empty or if the
// resulting template has zero slots.
func Compile(raw string) (Template, error) {
	if raw == "" {
		return Template{}, werrors.ErrInvalidMask
	}

	var tpl Template

	for i := 0; i < len(raw); i++ {
		b := raw[i]

		switch {
		case b == '\\' && i+1 < len(raw) && (raw[i+1] == '?' || raw[i+1] == '\\'):
			tpl.Cells = append(tpl.Cells, Cell{Literal: raw[i+1]})
			i++
		case b == '?':
			tpl.Cells = append(tpl.Cells, Cell{Slot: true})
			tpl.SlotIndices = append(tpl.SlotIndices, len(tpl.Cells)-1)
		default:
			tpl.Cells = append(tpl.Cells, Cell{Literal: b})
		}
	}

	if len(tpl.SlotIndices) == 0 {
		return Template{}, werrors.ErrInvalidMask
	}

	return tpl, nil
}

// Render writes the literal/slot skeleton back out as a string, with
// slots shown as '?', for diagnostics and help text.
func (t Template) Render() string {
	var sb strings.Builder

	for _, c := range t.Cells {
		if c.Slot {
			sb.WriteByte('?')
			continue
		}

		switch c.Literal {
		case '?', '\\':
			sb.WriteByte('\\')
		}

		sb.WriteByte(c.Literal)
	}

	return sb.String()
}
