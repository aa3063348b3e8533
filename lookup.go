package pack

import "github.com/cockroachdb/errors"

// Key identifies a record by name and type.
type Key struct {
	Name string
	Type Type
	// Len is the number of values, summed over coalesced records.
	Len int
}

// Keys returns the name and type of every record in container order.
// Adjacent records sharing both name and type are reported once.
func (r *Reader) Keys() ([]Key, error) {
	keys := make([]Key, 0, r.n)

	iter := r.Records()
	for iter.Next() {
		rec := iter.Record()
		if n := len(keys); n != 0 && keys[n-1].Type == rec.typ && keys[n-1].Name == string(rec.name) {
			keys[n-1].Len += rec.Len()
			continue
		}
		keys = append(keys, Key{Name: rec.Name(), Type: rec.typ, Len: rec.Len()})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// Exists returns true if a record named name exists.
func (r *Reader) Exists(name string) (bool, error) {
	_, err := r.Seek(name)
	return found(err)
}

// ExistsAs returns true if the first record named name exists and is of
// type t.
func (r *Reader) ExistsAs(name string, t Type) (bool, error) {
	rec, err := r.Seek(name)
	if ok, err := found(err); !ok {
		return false, err
	}
	return rec.typ == t, nil
}

// TypeOf returns the type of the first record named name.
// It may return an ErrNotFound error.
func (r *Reader) TypeOf(name string) (Type, error) {
	rec, err := r.Seek(name)
	if err != nil {
		return unknownType, err
	}
	return rec.typ, nil
}

// Len returns the declared value count of the first record named name.
// It may return an ErrNotFound error.
func (r *Reader) Len(name string) (int, error) {
	rec, err := r.Seek(name)
	if err != nil {
		return 0, err
	}
	return rec.Len(), nil
}

// GetAll decodes all values of the first record named name. It returns
// ErrNotFound if there is no such record and ErrTypeMismatch if the record is
// not of type t. A record without values yields an empty, non-nil slice.
func (r *Reader) GetAll(name string, t Type) ([]Value, error) {
	rec, err := r.seekAs(name, t)
	if err != nil {
		return nil, err
	}
	return rec.decode(rec.count)
}

// GetFirst decodes the first value of the first record named name. It
// returns ErrNotFound if there is no such record or if it has no values.
func (r *Reader) GetFirst(name string, t Type) (Value, error) {
	rec, err := r.seekAs(name, t)
	if err != nil {
		return Value{}, err
	}

	vals, err := rec.decode(1)
	if err != nil {
		return Value{}, err
	}
	if len(vals) == 0 {
		return Value{}, ErrNotFound
	}
	return vals[0], nil
}

// Ints is a shortcut for GetAll(name, Int) returning the integer payloads.
func (r *Reader) Ints(name string) ([]uint32, error) {
	return collect(r, name, Int, func(v Value) uint32 { return uint32(v.num) })
}

// Int64s is a shortcut for GetAll(name, Int64) returning the integer payloads.
func (r *Reader) Int64s(name string) ([]uint64, error) {
	return collect(r, name, Int64, func(v Value) uint64 { return v.num })
}

// Blobs is a shortcut for GetAll(name, Data) returning the byte payloads.
// Payloads are not copied.
func (r *Reader) Blobs(name string) ([][]byte, error) {
	return collect(r, name, Data, func(v Value) []byte { return v.data })
}

// Strings is a shortcut for GetAll(name, t) returning text payloads.
// t must be String or WString.
func (r *Reader) Strings(name string, t Type) ([]string, error) {
	if !t.IsText() {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s is not a text type", t)
	}
	return collect(r, name, t, func(v Value) string { return string(v.data) })
}

func (r *Reader) seekAs(name string, t Type) (Record, error) {
	if !t.isValid() {
		return Record{}, errors.Wrapf(ErrInvalidArgument, "unknown value type %s", t)
	}

	rec, err := r.Seek(name)
	if err != nil {
		return Record{}, err
	}
	if rec.typ != t {
		return Record{}, errors.Wrapf(ErrTypeMismatch, "key %q is of type %s, not %s", name, rec.typ, t)
	}
	return rec, nil
}

func collect[T any](r *Reader, name string, t Type, fn func(Value) T) ([]T, error) {
	vals, err := r.GetAll(name, t)
	if err != nil {
		return nil, err
	}

	res := make([]T, 0, len(vals))
	for _, v := range vals {
		res = append(res, fn(v))
	}
	return res, nil
}

// found maps ErrNotFound to a plain negative result.
func found(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}
