// Package packtest builds containers for tests.
package packtest

import (
	"encoding/binary"
)

// Builder assembles a container record by record.
type Builder struct {
	buf []byte
	n   uint32
	tmp []byte
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{tmp: make([]byte, 8)}
}

// Int appends an Int record.
func (b *Builder) Int(name string, vals ...uint32) *Builder {
	b.Header(name, 0, uint32(len(vals)))
	for _, v := range vals {
		b.u32(v)
	}
	return b
}

// Data appends a Data record.
func (b *Builder) Data(name string, vals ...[]byte) *Builder {
	b.Header(name, 1, uint32(len(vals)))
	for _, v := range vals {
		b.u32(uint32(len(v)))
		b.buf = append(b.buf, v...)
	}
	return b
}

// String appends a String record. Values are stored NUL terminated.
func (b *Builder) String(name string, vals ...string) *Builder {
	return b.text(name, 2, vals)
}

// WString appends a WString record. Values are stored NUL terminated.
func (b *Builder) WString(name string, vals ...string) *Builder {
	return b.text(name, 3, vals)
}

// Int64 appends an Int64 record.
func (b *Builder) Int64(name string, vals ...uint64) *Builder {
	b.Header(name, 4, uint32(len(vals)))
	for _, v := range vals {
		binary.BigEndian.PutUint64(b.tmp, v)
		b.buf = append(b.buf, b.tmp[:8]...)
	}
	return b
}

// Header appends a bare record header with an arbitrary type tag. Values
// must be appended with Raw or Uint32.
func (b *Builder) Header(name string, tag, count uint32) *Builder {
	b.n++
	b.u32(uint32(len(name) + 1))
	b.buf = append(b.buf, name...)
	b.u32(tag)
	b.u32(count)
	return b
}

// Uint32 appends a big-endian integer.
func (b *Builder) Uint32(v uint32) *Builder {
	b.u32(v)
	return b
}

// Raw appends arbitrary bytes.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

// Bytes returns the container, prefixed with the number of records added.
func (b *Builder) Bytes() []byte {
	return b.BytesWithCount(b.n)
}

// BytesWithCount returns the container, prefixed with an arbitrary record
// count.
func (b *Builder) BytesWithCount(n uint32) []byte {
	out := make([]byte, 4, 4+len(b.buf))
	binary.BigEndian.PutUint32(out, n)
	return append(out, b.buf...)
}

func (b *Builder) text(name string, tag uint32, vals []string) *Builder {
	b.Header(name, tag, uint32(len(vals)))
	for _, v := range vals {
		b.u32(uint32(len(v) + 1))
		b.buf = append(b.buf, v...)
		b.buf = append(b.buf, 0)
	}
	return b
}

func (b *Builder) u32(v uint32) {
	binary.BigEndian.PutUint32(b.tmp, v)
	b.buf = append(b.buf, b.tmp[:4]...)
}
