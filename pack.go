package pack

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by lookups when a key cannot be found.
var ErrNotFound = errors.New("pack: not found")

// Decoding and lookup failures. Detailed errors wrap one of these, test
// with errors.Is.
var (
	ErrOutOfBounds     = errors.New("pack: out of bounds")
	ErrMalformed       = errors.New("pack: malformed container")
	ErrTypeMismatch    = errors.New("pack: type mismatch")
	ErrInvalidArgument = errors.New("pack: invalid argument")
)

// IsCorrupt reports whether err means the buffer is not a valid container.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrMalformed) || errors.Is(err, ErrOutOfBounds)
}

// Minimum encoded sizes, used to cap declared counts against the buffer.
const (
	minRecordSize = 12 // name length + type tag + value count
	minValueSize  = 4
)

// --------------------------------------------------------------------

// Type is the value type tag of a record.
type Type uint32

// Supported value types.
const (
	Int Type = iota
	Data
	String
	WString
	Int64
	unknownType
)

var typeNames = [...]string{"int", "data", "string", "wstring", "int64"}

func (t Type) isValid() bool { return t < unknownType }

// IsText returns true for String and WString.
func (t Type) IsText() bool { return t == String || t == WString }

func (t Type) String() string {
	if t.isValid() {
		return typeNames[t]
	}
	return "unknown(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// ParseType parses a type name as printed by Type.String.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}
	return unknownType, errors.Wrapf(ErrInvalidArgument, "unknown value type %q", s)
}
