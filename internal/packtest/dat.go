package packtest

import (
	"bytes"

	"github.com/bsm/pack/dat"
	"github.com/klauspost/compress/zlib"
)

// Envelope wraps a container the way .dat files store it, with or without
// zlib compression.
func Envelope(inner []byte, compress bool) []byte {
	if !compress {
		return NewBuilder().
			Int("compressed", 0).
			Data("data", inner).
			Bytes()
	}

	return NewBuilder().
		Int("compressed", 1).
		Int("data_size", uint32(len(inner))).
		Data("data", Deflate(inner)).
		Bytes()
}

// Deflate zlib-compresses p.
func Deflate(p []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(p); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// DatFile encrypts an envelope and prefixes it with a .dat file header.
func DatFile(identifier string, key, envelope []byte) []byte {
	header := make([]byte, 0xF0)
	copy(header, dat.Magic+"\r\n"+identifier+"\r\n")

	ciphertext, err := dat.Crypt(key, envelope)
	if err != nil {
		panic(err)
	}

	out := append(header, key[:dat.KeySize]...)
	return append(out, ciphertext...)
}

// Key returns a deterministic key region.
func Key() []byte {
	key := make([]byte, dat.KeySize)
	for i := range key {
		key[i] = byte(i*7 + 1)
	}
	return key
}
