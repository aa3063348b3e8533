package pack

import (
	"github.com/cockroachdb/errors"
)

// Reader instances walk and query a container held in memory. The buffer is
// borrowed, not copied, and must not be modified while the reader is in use.
// Readers hold no mutable state and are safe for concurrent use.
type Reader struct {
	buf []byte
	n   uint32
}

// NewReader validates the container header and returns a reader.
func NewReader(buf []byte) (*Reader, error) {
	c := cursor{buf: buf}
	n, err := c.uint32()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "buffer of %d bytes is too short for a record count", len(buf))
	}
	if uint64(n)*minRecordSize > uint64(c.remaining()) {
		return nil, errors.Wrapf(ErrMalformed, "container declares %d records but only %d bytes remain", n, c.remaining())
	}
	return &Reader{buf: buf, n: n}, nil
}

// NumRecords returns the number of declared records.
func (r *Reader) NumRecords() int { return int(r.n) }

// Size returns the size of the underlying buffer.
func (r *Reader) Size() int { return len(r.buf) }

// Records returns an iterator over all records in container order. Each
// call starts a new walk from the first record.
func (r *Reader) Records() *Iterator {
	return &Iterator{c: cursor{buf: r.buf, off: 4}, left: r.n}
}

// Seek walks record headers until it finds one named name, without decoding
// any values. It returns ErrNotFound if no such record exists.
func (r *Reader) Seek(name string) (Record, error) {
	if name == "" {
		return Record{}, errors.Wrap(ErrInvalidArgument, "empty key name")
	}

	iter := r.Records()
	for iter.Next() {
		if rec := iter.Record(); string(rec.name) == name {
			return rec, nil
		}
	}
	if err := iter.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, ErrNotFound
}

// --------------------------------------------------------------------

// Record is a named, typed, repeated field. Records are views into the
// container buffer.
type Record struct {
	buf   []byte
	name  []byte
	typ   Type
	count uint32
	off   int
}

// Name returns the record name.
func (r Record) Name() string { return string(r.name) }

// NameBytes returns the record name without copying. The returned slice must
// not be modified.
func (r Record) NameBytes() []byte { return r.name }

// Type returns the type shared by all values of the record.
func (r Record) Type() Type { return r.typ }

// Len returns the declared number of values.
func (r Record) Len() int { return int(r.count) }

// Offset returns the position of the first value within the buffer.
func (r Record) Offset() int { return r.off }

// Values returns an iterator over the record values.
func (r Record) Values() *ValueIterator {
	return &ValueIterator{c: cursor{buf: r.buf, off: r.off}, typ: r.typ, left: r.count}
}

// decode decodes up to limit values.
func (r Record) decode(limit uint32) ([]Value, error) {
	if limit > r.count {
		limit = r.count
	}

	vals := make([]Value, 0, limit)
	iter := r.Values()
	for uint32(len(vals)) < limit && iter.Next() {
		vals = append(vals, iter.Value())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return vals, nil
}

// --------------------------------------------------------------------

// Iterator walks the records of a container.
type Iterator struct {
	c    cursor
	left uint32 // records not yet read
	rec  Record
	cur  bool // rec holds a record whose values are not yet skipped
	err  error
}

// Record returns the current record.
func (i *Iterator) Record() Record { return i.rec }

// Next advances to the next record and returns true if successful.
func (i *Iterator) Next() bool {
	if i.err != nil {
		return false
	}

	// skip past the values of the current record
	if i.cur {
		i.cur = false
		if i.err = i.c.skip(i.rec.typ, i.rec.count); i.err != nil {
			return false
		}
	}

	if i.left == 0 {
		return false
	}
	i.left--

	if i.rec, i.err = i.c.header(); i.err != nil {
		return false
	}
	i.cur = true
	return true
}

// Err exposes iterator errors, if any.
func (i *Iterator) Err() error { return i.err }

// --------------------------------------------------------------------

// ValueIterator walks the values of a single record.
type ValueIterator struct {
	c    cursor
	typ  Type
	left uint32
	val  Value
	pos  int
	err  error
}

// Value returns the current value.
func (i *ValueIterator) Value() Value { return i.val }

// Offset returns the buffer position of the current payload, or -1 for an
// empty text value.
func (i *ValueIterator) Offset() int { return i.pos }

// Next decodes the next value and returns true if successful.
func (i *ValueIterator) Next() bool {
	if i.err != nil || i.left == 0 {
		return false
	}
	i.left--

	i.val, i.pos, i.err = i.c.value(i.typ)
	return i.err == nil
}

// Err exposes iterator errors, if any.
func (i *ValueIterator) Err() error { return i.err }
