package logger

import (
	"fmt"
	"unsafe"

	"github.com/philipp01105/kdiag/core"
)

// Argument helper functions for Printk

// Int creates a 64-bit signed argument; %d reads its low 32 bits
func Int(v int) core.Arg {
	return core.Arg{Type: core.Int64Type, Int64: int64(v)}
}

// Int32 creates a 32-bit signed argument
func Int32(v int32) core.Arg {
	return core.Arg{Type: core.Int32Type, Int64: int64(v)}
}

// Uint creates a 64-bit unsigned argument
func Uint(v uint) core.Arg {
	return core.Arg{Type: core.Uint64Type, Int64: int64(v)}
}

// Uint32 creates a 32-bit unsigned argument
func Uint32(v uint32) core.Arg {
	return core.Arg{Type: core.Uint32Type, Int64: int64(v)}
}

// Hex is Uint32, for readability at %x call sites
func Hex(v uint32) core.Arg {
	return Uint32(v)
}

// Int64 creates a 64-bit signed argument for %lld
func Int64(v int64) core.Arg {
	return core.Arg{Type: core.Int64Type, Int64: v}
}

// Uint64 creates a 64-bit unsigned argument for %llu
func Uint64(v uint64) core.Arg {
	return core.Arg{Type: core.Uint64Type, Int64: int64(v)}
}

// Str creates a string argument
func Str(s string) core.Arg {
	return core.Arg{Type: core.StringType, Str: s}
}

// StrPtr creates a string argument that renders as the null placeholder
// when p is nil
func StrPtr(p *string) core.Arg {
	if p == nil {
		return core.Arg{Type: core.NullStringType}
	}
	return Str(*p)
}

// Char creates a single character argument for %c
func Char(c byte) core.Arg {
	return core.Arg{Type: core.CharType, Int64: int64(c)}
}

// Ptr creates a pointer argument for %p
func Ptr(addr uintptr) core.Arg {
	return core.Arg{Type: core.PointerType, Int64: int64(addr)}
}

// Mem creates a pointer argument for b that also carries the bytes it
// points to, so %ph and %pH can dump them
func Mem(b []byte) core.Arg {
	var addr uintptr
	if len(b) > 0 {
		addr = uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	}
	return core.Arg{Type: core.PointerType, Int64: int64(addr), Mem: b}
}

// ArgOf converts an ordinary Go value into an argument
func ArgOf(v any) core.Arg {
	switch x := v.(type) {
	case nil:
		return core.Arg{Type: core.NullStringType}
	case core.Arg:
		return x
	case string:
		return Str(x)
	case *string:
		return StrPtr(x)
	case []byte:
		return Mem(x)
	case int:
		return Int(x)
	case int8:
		return Int32(int32(x))
	case int16:
		return Int32(int32(x))
	case int32:
		return Int32(x)
	case int64:
		return Int64(x)
	case uint:
		return Uint(x)
	case uint8:
		return Uint32(uint32(x))
	case uint16:
		return Uint32(uint32(x))
	case uint32:
		return Uint32(x)
	case uint64:
		return Uint64(x)
	case uintptr:
		return Ptr(x)
	case unsafe.Pointer:
		return Ptr(uintptr(x))
	case bool:
		if x {
			return Int32(1)
		}
		return Int32(0)
	case error:
		return Str(x.Error())
	case fmt.Stringer:
		return Str(x.String())
	default:
		return Str(fmt.Sprint(x))
	}
}
