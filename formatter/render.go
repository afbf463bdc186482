package formatter

import (
	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/numconv"
)

// NullString is rendered by %s when the argument is a null string
const NullString = "(null)"

// dumpBytes is the number of bytes %ph and %pH show
const dumpBytes = 4

// argCursor hands out arguments strictly in format order
type argCursor struct {
	args []core.Arg
	pos  int
}

func (c *argCursor) next() (core.Arg, bool) {
	if c.pos >= len(c.args) {
		return core.Arg{}, false
	}
	a := c.args[c.pos]
	c.pos++
	return a, true
}

// Render formats format and args into dst and returns the number of
// characters placed. At most len(dst)-1 characters are written, followed
// by a 0 sentinel; content that does not fit is dropped.
//
// Supported conversions:
//
//	%d %i       signed 32-bit decimal
//	%u          unsigned 32-bit decimal
//	%ld %lu     32-bit decimal (long is 32 bits wide here)
//	%lld %llu   64-bit decimal
//	%x %X       32-bit hexadecimal, lower or upper case
//	%s          string, NullString for a null argument
//	%c          single character
//	%p          0x-prefixed lowercase address
//	%ph %pH     [aa bb cc dd] dump of the first 4 bytes behind the pointer
//	%%          literal percent
//
// Anything else after a % is copied through unchanged, as is a conversion
// whose argument is missing. Arguments are consumed in order; a specifier
// that disagrees with an argument's tag reinterprets its integer payload.
func Render(dst []byte, format string, args ...core.Arg) int {
	w := Writer{buf: dst}
	render(&w, format, args)
	return w.Finish()
}

// Sprint renders into a fresh buffer of the given capacity and returns the
// result as a string.
func Sprint(capacity int, format string, args ...core.Arg) string {
	if capacity <= 0 {
		return ""
	}
	buf := make([]byte, capacity)
	n := Render(buf, format, args...)
	return string(buf[:n])
}

func render(w *Writer, format string, args []core.Arg) {
	cur := argCursor{args: args}
	var num [72]byte

	i := 0
	for i < len(format) && !w.Full() {
		if format[i] != '%' {
			w.AppendByte(format[i])
			i++
			continue
		}

		start := i
		i++
		if i >= len(format) {
			w.AppendByte('%')
			return
		}
		spec := format[i]
		i++

		switch spec {
		case 'd', 'i':
			a, ok := cur.next()
			if !ok {
				w.AppendString(format[start:i])
				continue
			}
			w.Append(numconv.AppendInt32(num[:0], int32(a.Int64), numconv.Decimal))
		case 'u':
			a, ok := cur.next()
			if !ok {
				w.AppendString(format[start:i])
				continue
			}
			w.Append(numconv.AppendUint32(num[:0], uint32(a.Int64), numconv.Decimal))
		case 'l':
			i = renderLong(w, format, start, i, &cur, num[:0])
		case 'x', 'X':
			a, ok := cur.next()
			if !ok {
				w.AppendString(format[start:i])
				continue
			}
			alphabet := numconv.HexLower
			if spec == 'X' {
				alphabet = numconv.HexUpper
			}
			w.Append(numconv.AppendUint32(num[:0], uint32(a.Int64), alphabet))
		case 's':
			a, ok := cur.next()
			if !ok {
				w.AppendString(format[start:i])
				continue
			}
			if a.IsString() {
				w.AppendString(a.Str)
			} else {
				w.AppendString(NullString)
			}
		case 'c':
			a, ok := cur.next()
			if !ok {
				w.AppendString(format[start:i])
				continue
			}
			w.AppendByte(byte(a.Int64))
		case 'p':
			a, ok := cur.next()
			if !ok {
				w.AppendString(format[start:i])
				continue
			}
			i = renderPointer(w, format, i, a, num[:0])
		case '%':
			w.AppendByte('%')
		default:
			w.AppendByte('%')
			w.AppendByte(spec)
		}
	}
}

// renderLong handles the %l and %ll prefixes. i points just past the 'l';
// the returned index points past everything consumed.
func renderLong(w *Writer, format string, start, i int, cur *argCursor, num []byte) int {
	if i < len(format) && (format[i] == 'd' || format[i] == 'u') {
		spec := format[i]
		i++
		a, ok := cur.next()
		switch {
		case !ok:
			w.AppendString(format[start:i])
		case spec == 'd':
			w.Append(numconv.AppendInt32(num, int32(a.Int64), numconv.Decimal))
		default:
			w.Append(numconv.AppendUint32(num, uint32(a.Int64), numconv.Decimal))
		}
		return i
	}

	if i < len(format) && format[i] == 'l' {
		i++
		if i < len(format) && (format[i] == 'd' || format[i] == 'u') {
			spec := format[i]
			i++
			a, ok := cur.next()
			switch {
			case !ok:
				w.AppendString(format[start:i])
			case spec == 'd':
				w.Append(numconv.AppendInt64(num, a.Int64, numconv.Decimal))
			default:
				w.Append(numconv.AppendUint64(num, a.Uint64(), numconv.Decimal))
			}
			return i
		}
	}

	// unrecognised: pass the prefix and one following character through
	if i < len(format) {
		i++
	}
	w.AppendString(format[start:i])
	return i
}

// renderPointer handles %p and its dump forms. i points just past the 'p'.
func renderPointer(w *Writer, format string, i int, a core.Arg, num []byte) int {
	if i < len(format) && (format[i] == 'h' || format[i] == 'H') && a.Uint64() != 0 && len(a.Mem) > 0 {
		alphabet := numconv.HexLower
		if format[i] == 'H' {
			alphabet = numconv.HexUpper
		}
		i++

		w.AppendByte('[')
		for k := 0; k < dumpBytes && k < len(a.Mem); k++ {
			if k > 0 {
				w.AppendByte(' ')
			}
			if a.Mem[k] < 0x10 {
				w.AppendByte(alphabet[0])
			}
			w.Append(numconv.AppendUint32(num, uint32(a.Mem[k]), alphabet))
		}
		w.AppendByte(']')
		return i
	}

	w.AppendString("0x")
	w.Append(numconv.AppendUint64(num, a.Uint64(), numconv.HexLower))
	return i
}
