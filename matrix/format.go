// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/ndmath/number"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "("
	_fmtRowClose = ")"
	_fmtTopOpen  = "⎛"
	_fmtTopClose = "⎞"
	_fmtMidOpen  = "⎜"
	_fmtMidClose = "⎟"
	_fmtBotOpen  = "⎝"
	_fmtBotClose = "⎠"
)

// String renders m with DefaultPrecision; see Text.
func (m Matrix[T, R, C]) String() string { return m.Text() }

// Text renders m for a terminal.
//
// Behavior highlights:
//   - A single row prints in parentheses: "( 1  2  3 )".
//   - Several rows use bracket pieces ⎛⎞ / ⎜⎟ / ⎝⎠, one line per row.
//   - Every cell is right-aligned to the widest cell and followed by a space.
//   - Float kinds print with WithPrecision decimals (6 by default);
//     integer kinds print exactly.
func (m Matrix[T, R, C]) Text(opts ...Option) string {
	cfg := gatherOptions(opts...)
	r, c := m.Shape()
	vals := m.values()

	cells := make([]string, len(vals))
	width := 0
	for i, v := range vals {
		cells[i] = formatCell(v, cfg.precision)
		width = max(width, utf8.RuneCountInString(cells[i]))
	}

	var b strings.Builder
	for i := 0; i < r; i++ {
		open, closing := bracket(i, r)
		b.WriteString(open)
		for j := 0; j < c; j++ {
			cell := cells[i*c+j]
			b.WriteString(strings.Repeat(" ", width+1-utf8.RuneCountInString(cell)))
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteString(closing)
		if i != r-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// bracket picks the opening and closing pieces for row i of r.
func bracket(i, r int) (string, string) {
	switch {
	case r == 1:
		return _fmtRowOpen, _fmtRowClose
	case i == 0:
		return _fmtTopOpen, _fmtTopClose
	case i == r-1:
		return _fmtBotOpen, _fmtBotClose
	default:
		return _fmtMidOpen, _fmtMidClose
	}
}

func formatCell[T number.Real](v T, precision int) string {
	if number.IsInteger[T]() {
		if v < 0 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatUint(uint64(v), 10)
	}

	return strconv.FormatFloat(float64(v), 'f', precision, floatBits[T]())
}

// floatBits returns 32 for float32-backed kinds and 64 otherwise.
func floatBits[T number.Real]() int {
	step := math.Ldexp(1, -30)
	if T(1)+T(step) == T(1) {
		return 32
	}

	return 64
}
