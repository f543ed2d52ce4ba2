package main

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain Chain) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- UInt/String Helpers ----------

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// parseU32 parses a decimal field and aborts with "invalid <name>" otherwise.
func parseU32(s, name string, chain Chain) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		chain.Abort("invalid " + name)
	}
	return uint32(v)
}

// parseU8 is parseU32 for single-byte values such as selectors; anything
// above 255 is rejected rather than truncated.
func parseU8(s, name string, chain Chain) uint8 {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		chain.Abort("invalid " + name)
	}
	return uint8(v)
}

func parseU64(s, name string, chain Chain) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		chain.Abort("invalid " + name)
	}
	return v
}

// ---------- Parsing Helpers ----------

func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func appendU64(dst []byte, v uint64) []byte {
	return strconv.AppendUint(dst, v, 10)
}

// ---------- Require ----------

func require(cond bool, msg string, chain Chain) {
	if !cond {
		chain.Abort(msg)
	}
}

func abortOnError(err error, chain Chain) {
	if err != nil {
		chain.Abort(err.Error())
	}
}
