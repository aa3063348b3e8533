package dat

import (
	"bytes"
	"io"
	"os"

	"github.com/bsm/pack"
	"github.com/cockroachdb/errors"
	"github.com/golang/snappy"
)

// snappy framing format stream identifier
var snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")

// WriteDump writes a recovered container to w, optionally as a snappy
// framed stream.
func WriteDump(w io.Writer, data []byte, compress bool) error {
	if !compress {
		_, err := w.Write(data)
		return err
	}

	sw := snappy.NewBufferedWriter(w)
	if _, err := sw.Write(data); err != nil {
		_ = sw.Close()
		return err
	}
	return sw.Close()
}

// ReadDump returns the container stored in a dump written by WriteDump.
func ReadDump(raw []byte) ([]byte, error) {
	if !bytes.HasPrefix(raw, snappyMagic) {
		return raw, nil
	}

	data, err := io.ReadAll(snappy.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return nil, errors.Wrap(err, "dat: snappy dump")
	}
	return data, nil
}

// Load reads a .dat file, a dump or a bare container from name. Only .dat
// files carry an identifier.
func Load(name string) (*File, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(raw, []byte(Magic)) {
		return Parse(raw)
	}

	data, err := ReadDump(raw)
	if err != nil {
		return nil, err
	}
	rd, err := pack.NewReader(data)
	if err != nil {
		return nil, err
	}
	return &File{Data: data, reader: rd}, nil
}
