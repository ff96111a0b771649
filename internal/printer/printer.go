// Package printer renders runtime values back to text, in the readable
// mode the reader can parse back or the plain mode used for display.
package printer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/golisp/internal/runtime"
)

// Print renders v to text. When readable is true, strings are quoted
// and escaped so the result can be read back by the reader; when false,
// strings are emitted raw. Lists, vectors, maps, and atoms pass the same
// flag down to their elements; every other variant renders the same way
// in both modes.
func Print(v runtime.Value, readable bool) string {
	var sb strings.Builder
	write(&sb, v, readable)
	return sb.String()
}

func write(sb *strings.Builder, v runtime.Value, readable bool) {
	switch t := v.(type) {
	case *runtime.Nil:
		sb.WriteString("nil")
	case *runtime.Bool:
		sb.WriteString(strconv.FormatBool(t.Val))
	case *runtime.Int:
		sb.WriteString(strconv.FormatInt(t.Val, 10))
	case *runtime.Sym:
		sb.WriteString(t.Name)
	case *runtime.Kw:
		sb.WriteByte(':')
		sb.WriteString(t.Name)
	case *runtime.Str:
		writeStr(sb, t.Val, readable)
	case *runtime.List:
		sb.WriteByte('(')
		writeSeq(sb, t.Items, readable)
		sb.WriteByte(')')
	case *runtime.Vec:
		sb.WriteByte('[')
		writeSeq(sb, t.Items, readable)
		sb.WriteByte(']')
	case *runtime.Map:
		sb.WriteByte('{')
		first := true
		t.Range(func(k, val runtime.Value) bool {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			write(sb, k, readable)
			sb.WriteByte(' ')
			write(sb, val, readable)
			return true
		})
		sb.WriteByte('}')
	case *runtime.Atom:
		sb.WriteString("(atom ")
		write(sb, t.Deref(), readable)
		sb.WriteByte(')')
	case *runtime.Fn:
		sb.WriteString("#<function>")
	default:
		sb.WriteString("nil")
	}
}

func writeSeq(sb *strings.Builder, items []runtime.Value, readable bool) {
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, it, readable)
	}
}

func writeStr(sb *strings.Builder, s string, readable bool) {
	if !readable {
		sb.WriteString(s)
		return
	}
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}
