package dat

import (
	"bytes"
	"io"

	"github.com/bsm/pack"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zlib"
)

// Extract returns a copy of the container stored in the "data" record of
// an envelope, inflating it if the "compressed" flag is set. A missing flag
// means the data is stored verbatim.
func Extract(r *pack.Reader) ([]byte, error) {
	var compressed uint32
	switch v, err := r.GetFirst("compressed", pack.Int); {
	case err == nil:
		compressed, _ = v.Int()
	case !errors.Is(err, pack.ErrNotFound):
		return nil, errors.Wrap(err, "dat: compressed flag")
	}

	v, err := r.GetFirst("data", pack.Data)
	if err != nil {
		return nil, errors.Wrap(err, "dat: data")
	}
	src := v.Raw()

	switch compressed {
	case 0:
		dst := make([]byte, len(src))
		copy(dst, src)
		return dst, nil
	case 1:
		size, err := r.GetFirst("data_size", pack.Int)
		if err != nil {
			return nil, errors.Wrap(err, "dat: data_size")
		}
		n, _ := size.Int()
		if uint64(n) > uint64(len(src))*maxInflateRatio {
			return nil, errors.Wrapf(ErrInflate, "declared size of %d bytes exceeds the limit for %d compressed bytes", n, len(src))
		}
		return inflate(src, int(n))
	}
	return nil, errors.Wrapf(pack.ErrMalformed, "dat: unsupported compressed flag %d", compressed)
}

// deflate cannot compress better than this
const maxInflateRatio = 1032

// inflate decompresses a zlib stream that must yield exactly size bytes.
func inflate(src []byte, size int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrapf(ErrInflate, "%v", err)
	}
	defer zr.Close()

	dst := make([]byte, size)
	if _, err := io.ReadFull(zr, dst); err != nil {
		return nil, errors.Wrapf(ErrInflate, "want %d bytes: %v", size, err)
	}

	// reading past the declared size also verifies the checksum
	var one [1]byte
	switch n, err := io.ReadFull(zr, one[:]); {
	case n != 0:
		return nil, errors.Wrapf(ErrInflate, "stream exceeds %d bytes", size)
	case err != io.EOF:
		return nil, errors.Wrapf(ErrInflate, "%v", err)
	}
	return dst, nil
}
