package pack

import (
	"encoding/hex"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Value is a single decoded element of a record. Data and text payloads are
// views into the container buffer and must not be modified or used after
// the buffer is released.
type Value struct {
	typ  Type
	num  uint64
	data []byte
}

// Type returns the value type.
func (v Value) Type() Type { return v.typ }

// Len returns the size of the payload in bytes. Text values do not count
// their terminator.
func (v Value) Len() int {
	switch v.typ {
	case Int:
		return 4
	case Int64:
		return 8
	}
	return len(v.data)
}

// Cast returns the typed payload if the value is of type t: uint32 for Int,
// uint64 for Int64, []byte for Data and string for String and WString.
// It returns an ErrTypeMismatch error otherwise.
func (v Value) Cast(t Type) (interface{}, error) {
	if v.typ != t {
		return nil, errors.Wrapf(ErrTypeMismatch, "cannot cast %s value to %s", v.typ, t)
	}
	return v.Interface(), nil
}

// Int returns the payload of an Int value.
func (v Value) Int() (uint32, error) {
	if v.typ != Int {
		return 0, v.mismatch(Int)
	}
	return uint32(v.num), nil
}

// Int64 returns the payload of an Int64 value.
func (v Value) Int64() (uint64, error) {
	if v.typ != Int64 {
		return 0, v.mismatch(Int64)
	}
	return v.num, nil
}

// Data returns the payload of a Data value.
func (v Value) Data() ([]byte, error) {
	if v.typ != Data {
		return nil, v.mismatch(Data)
	}
	return v.data, nil
}

// Text returns the payload of a String value.
func (v Value) Text() (string, error) {
	if v.typ != String {
		return "", v.mismatch(String)
	}
	return string(v.data), nil
}

// WText returns the payload of a WString value.
func (v Value) WText() (string, error) {
	if v.typ != WString {
		return "", v.mismatch(WString)
	}
	return string(v.data), nil
}

// Raw returns the raw payload of Data, String and WString values without
// copying. It returns nil for integer values.
func (v Value) Raw() []byte { return v.data }

// Interface returns the payload as an untyped value.
func (v Value) Interface() interface{} {
	switch v.typ {
	case Int:
		return uint32(v.num)
	case Int64:
		return v.num
	case Data:
		return v.data
	case String, WString:
		return string(v.data)
	}
	return nil
}

func (v Value) String() string {
	switch v.typ {
	case Int, Int64:
		return strconv.FormatUint(v.num, 10)
	case Data:
		return hex.EncodeToString(v.data)
	}
	return string(v.data)
}

func (v Value) mismatch(t Type) error {
	return errors.Wrapf(ErrTypeMismatch, "cannot read %s value as %s", v.typ, t)
}
