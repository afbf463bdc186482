package core

// ArgType tags the kind of value an Arg carries
type ArgType uint8

const (
	Int32Type ArgType = iota
	Uint32Type
	Int64Type
	Uint64Type
	StringType
	NullStringType
	CharType
	PointerType
)

// String returns the name of the argument type
func (t ArgType) String() string {
	switch t {
	case Int32Type:
		return "int32"
	case Uint32Type:
		return "uint32"
	case Int64Type:
		return "int64"
	case Uint64Type:
		return "uint64"
	case StringType:
		return "string"
	case NullStringType:
		return "null"
	case CharType:
		return "char"
	case PointerType:
		return "pointer"
	default:
		return "unknown"
	}
}

// Arg is one positional argument to the format engine. All integer kinds
// share the Int64 payload (unsigned values are stored by bit pattern), so a
// specifier that disagrees with the tag reinterprets the payload instead of
// failing. Mem holds the bytes behind a pointer when the caller supplied
// them, which is what the %ph and %pH dump forms read.
type Arg struct {
	Type  ArgType
	Int64 int64
	Str   string
	Mem   []byte
}

// Uint64 returns the integer payload reinterpreted as unsigned
func (a Arg) Uint64() uint64 {
	return uint64(a.Int64)
}

// IsString reports whether the argument can be rendered by %s
func (a Arg) IsString() bool {
	return a.Type == StringType
}
