package phparray

import (
	"math"
	"strconv"
	"strings"
)

const (
	tokenArrow        = "=>"
	tokenOpenBracket  = "["
	tokenCloseBracket = "]"
	tokenNull         = "null"
	tokenTrue         = "true"
	tokenFalse        = "false"
	tokenNaN          = "NAN"
	tokenInf          = "INF"
	tokenComma        = ","
)

// Render converts a Value to PHP array literal text using DefaultOptions
// overridden by opts.
func Render(v *Value, opts ...Option) string {
	return RenderWithOptions(v, NewOptions(opts...))
}

// RenderWithOptions converts a Value with fully specified options.
func RenderWithOptions(v *Value, opts Options) string {
	r := &renderer{opts: opts}
	r.render(v, 0, true)
	return r.sb.String()
}

type renderer struct {
	sb   strings.Builder
	opts Options
}

// render writes v at the given nesting level. The separator is written
// unless omitComma is set; the root is always rendered with omitComma.
func (r *renderer) render(v *Value, level int, omitComma bool) {
	switch v.Kind() {
	case KindNull:
		r.sb.WriteString(tokenNull)

	case KindBool:
		if v.boolVal {
			r.sb.WriteString(tokenTrue)
		} else {
			r.sb.WriteString(tokenFalse)
		}

	case KindNumber:
		if v.isInt {
			r.sb.WriteString(strconv.FormatInt(v.intVal, 10))
		} else {
			r.sb.WriteString(formatNumber(v.numVal))
		}

	case KindText:
		r.sb.WriteString(r.opts.Quote)
		r.sb.WriteString(escapeText(v.textVal, r.opts.Quote))
		r.sb.WriteString(r.opts.Quote)

	case KindSequence:
		r.renderSequence(v.seqVal, level)

	case KindMapping:
		r.renderMapping(v.mapVal, level)
	}

	if !omitComma {
		r.sb.WriteString(tokenComma)
	}
}

func (r *renderer) renderSequence(elems []*Value, level int) {
	r.sb.WriteString(tokenOpenBracket)
	for i, elem := range elems {
		r.newline(level + 1)
		r.render(elem, level+1, r.isLast(i, len(elems)))
	}
	r.newline(level)
	r.sb.WriteString(tokenCloseBracket)
}

func (r *renderer) renderMapping(entries []Entry, level int) {
	r.sb.WriteString(tokenOpenBracket)
	for i, entry := range entries {
		r.newline(level + 1)
		// Keys are not escaped.
		r.sb.WriteString(r.opts.Quote)
		r.sb.WriteString(entry.Key)
		r.sb.WriteString(r.opts.Quote)
		r.sb.WriteString(" " + tokenArrow + " ")
		r.render(entry.Value, level+1, r.isLast(i, len(entries)))
	}
	r.newline(level)
	r.sb.WriteString(tokenCloseBracket)
}

// isLast reports whether element i of n has its separator suppressed.
func (r *renderer) isLast(i, n int) bool {
	return !r.opts.TrailingComma && i == n-1
}

func (r *renderer) newline(level int) {
	r.sb.WriteString("\n")
	for i := 0; i < level; i++ {
		r.sb.WriteString(r.opts.Indent)
	}
}

// escapeText escapes newlines and tabs, then the quote. The quote pass must
// run last.
func escapeText(s, quote string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return strings.ReplaceAll(s, quote, `\`+quote)
}

// formatNumber returns the shortest decimal text that round-trips f, using
// plain notation for 1e-6 <= |f| < 1e21 and exponent notation otherwise.
// Both infinities render as INF.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return tokenNaN
	case math.IsInf(f, 0):
		return tokenInf
	case f == 0:
		// Also covers negative zero.
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}
