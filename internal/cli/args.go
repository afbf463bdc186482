package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/logger"
)

// parseArg turns a command line token into a format argument.
//
//	d:-42 i:7        32-bit signed
//	u:7 x:255        32-bit unsigned
//	ll:-9 lld:-9     64-bit signed
//	llu:9            64-bit unsigned
//	s:text           string
//	c:z              character (first byte)
//	p:0xb8000        pointer
//	m:deadbeef       pointer to the given bytes, for %ph
//	null             null string
//
// An untagged token is a 64-bit integer if it parses as one, a string
// otherwise.
func parseArg(token string) (core.Arg, error) {
	if token == "null" {
		return core.Arg{Type: core.NullStringType}, nil
	}

	tag, value, ok := strings.Cut(token, ":")
	if !ok {
		if n, err := strconv.ParseInt(token, 0, 64); err == nil {
			return logger.Int64(n), nil
		}
		return logger.Str(token), nil
	}

	switch tag {
	case "d", "i":
		n, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return core.Arg{}, argError(token, err)
		}
		return logger.Int32(int32(n)), nil
	case "u", "x":
		n, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return core.Arg{}, argError(token, err)
		}
		return logger.Uint32(uint32(n)), nil
	case "ll", "lld":
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return core.Arg{}, argError(token, err)
		}
		return logger.Int64(n), nil
	case "llu":
		n, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return core.Arg{}, argError(token, err)
		}
		return logger.Uint64(n), nil
	case "s":
		return logger.Str(value), nil
	case "c":
		if value == "" {
			return core.Arg{}, argError(token, fmt.Errorf("empty character"))
		}
		return logger.Char(value[0]), nil
	case "p":
		n, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return core.Arg{}, argError(token, err)
		}
		return logger.Ptr(uintptr(n)), nil
	case "m":
		b, err := hex.DecodeString(value)
		if err != nil {
			return core.Arg{}, argError(token, err)
		}
		return logger.Mem(b), nil
	default:
		// not a known tag, so the colon is part of a plain string
		return logger.Str(token), nil
	}
}

func parseArgs(tokens []string) ([]core.Arg, error) {
	args := make([]core.Arg, 0, len(tokens))
	for _, t := range tokens {
		a, err := parseArg(t)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

func argError(token string, err error) error {
	return fmt.Errorf("argument %q: %w", token, err)
}

// kernPrefix converts a leading syslog style "<N>" into the printk
// severity prefix
func kernPrefix(line string) string {
	if len(line) >= 3 && line[0] == '<' && line[2] == '>' && line[1] >= '0' && line[1] <= '7' {
		return logger.KernSOH + line[1:2] + line[3:]
	}
	return line
}
