package dat

import (
	"bytes"
	"os"

	"github.com/bsm/pack"
	"github.com/cockroachdb/errors"
)

// File is a decoded .dat file.
type File struct {
	// Identifier is the second header line.
	Identifier string
	// Data is the recovered container.
	Data []byte

	reader *pack.Reader
}

// Reader returns a reader over the recovered container.
func (f *File) Reader() *pack.Reader { return f.reader }

// Open reads and decodes a .dat file.
func Open(name string) (*File, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes a .dat file held in memory.
func Parse(raw []byte) (*File, error) {
	if len(raw) < dataOffset {
		return nil, errors.Wrapf(ErrInvalidFile, "file of %d bytes is shorter than its header", len(raw))
	}

	header := raw[:keyOffset]
	magic, header, ok := bytes.Cut(header, crlf)
	if !ok || string(magic) != Magic {
		return nil, errors.Wrap(ErrInvalidFile, "bad magic line")
	}
	ident, _, ok := bytes.Cut(header, crlf)
	if !ok {
		return nil, errors.Wrap(ErrInvalidFile, "unterminated identifier line")
	}

	plain, err := Crypt(raw[keyOffset:dataOffset], raw[dataOffset:])
	if err != nil {
		return nil, err
	}

	envelope, err := pack.NewReader(plain)
	if err != nil {
		return nil, errors.Wrap(err, "dat: envelope")
	}
	data, err := Extract(envelope)
	if err != nil {
		return nil, err
	}

	rd, err := pack.NewReader(data)
	if err != nil {
		return nil, errors.Wrap(err, "dat: payload")
	}
	return &File{Identifier: string(ident), Data: data, reader: rd}, nil
}

var crlf = []byte("\r\n")
