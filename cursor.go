package pack

import (
	"github.com/bsm/pack/internal/byteswap"
	"github.com/cockroachdb/errors"
)

// cursor is a forward-only position within an immutable buffer. Every step
// through a container is taken with advance, which either moves the full
// distance or fails without moving.
type cursor struct {
	buf []byte
	off int
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int { return len(c.buf) - c.off }

// advance consumes n bytes and returns the offset at which they start.
func (c *cursor) advance(n uint64) (int, error) {
	if n > uint64(c.remaining()) {
		return c.off, errors.Wrapf(ErrOutOfBounds, "read of %d bytes at offset %d exceeds buffer of %d bytes", n, c.off, len(c.buf))
	}
	pos := c.off
	c.off += int(n)
	return pos, nil
}

// next consumes n bytes and returns them as a capped view into the buffer.
func (c *cursor) next(n uint64) ([]byte, error) {
	pos, err := c.advance(n)
	if err != nil {
		return nil, err
	}
	end := pos + int(n)
	return c.buf[pos:end:end], nil
}

func (c *cursor) uint32() (uint32, error) {
	p, err := c.next(4)
	if err != nil {
		return 0, err
	}
	return byteswap.BigEndian32(p), nil
}

func (c *cursor) uint64() (uint64, error) {
	p, err := c.next(8)
	if err != nil {
		return 0, err
	}
	return byteswap.BigEndian64(p), nil
}

// header decodes a record header. On failure the cursor is left where it was.
func (c *cursor) header() (Record, error) {
	start := c.off
	rec, err := c.readHeader()
	if err != nil {
		c.off = start
	}
	return rec, err
}

func (c *cursor) readHeader() (Record, error) {
	start := c.off

	nlen, err := c.uint32()
	if err != nil {
		return Record{}, err
	}
	if nlen == 0 {
		return Record{}, errors.Wrapf(ErrMalformed, "zero name length at offset %d", start)
	}

	name, err := c.next(uint64(nlen) - 1)
	if err != nil {
		return Record{}, err
	}

	tag, err := c.uint32()
	if err != nil {
		return Record{}, err
	}
	typ := Type(tag)
	if !typ.isValid() {
		return Record{}, errors.Wrapf(ErrMalformed, "record %q has unknown type tag %d", name, tag)
	}

	cnt, err := c.uint32()
	if err != nil {
		return Record{}, err
	}
	if uint64(cnt)*minValueSize > uint64(c.remaining()) {
		return Record{}, errors.Wrapf(ErrMalformed, "record %q declares %d values but only %d bytes remain", name, cnt, c.remaining())
	}

	return Record{
		buf:   c.buf,
		name:  name,
		typ:   typ,
		count: cnt,
		off:   c.off,
	}, nil
}

// value decodes a single value of type t. It returns the offset of the
// payload, or -1 for an empty text value. On failure the cursor is left
// where it was.
func (c *cursor) value(t Type) (Value, int, error) {
	start := c.off
	v, pos, err := c.readValue(t)
	if err != nil {
		c.off = start
	}
	return v, pos, err
}

func (c *cursor) readValue(t Type) (Value, int, error) {
	switch t {
	case Int:
		pos := c.off
		u, err := c.uint32()
		return Value{typ: t, num: uint64(u)}, pos, err
	case Int64:
		pos := c.off
		u, err := c.uint64()
		return Value{typ: t, num: u}, pos, err
	case Data:
		n, err := c.uint32()
		if err != nil {
			return Value{}, c.off, err
		}
		pos := c.off
		p, err := c.next(uint64(n))
		return Value{typ: t, data: p}, pos, err
	case String, WString:
		n, err := c.uint32()
		if err != nil {
			return Value{}, c.off, err
		}
		if n == 0 {
			return Value{typ: t}, -1, nil
		}
		pos := c.off
		p, err := c.next(uint64(n))
		if err != nil {
			return Value{}, pos, err
		}
		return Value{typ: t, data: p[: n-1 : n-1]}, pos, nil
	}
	return Value{}, c.off, errors.Wrapf(ErrMalformed, "unknown type tag %d", uint32(t))
}

// skip consumes n values of type t.
func (c *cursor) skip(t Type, n uint32) error {
	start := c.off
	for i := uint32(0); i < n; i++ {
		if _, _, err := c.readValue(t); err != nil {
			c.off = start
			return err
		}
	}
	return nil
}
