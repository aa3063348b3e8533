// Package dat recovers Pack containers from VPNGate .dat files.
//
// A .dat file starts with a text header, followed by a key region and an
// RC4-encrypted container. The decrypted container holds a single, possibly
// zlib-compressed, "data" record which is itself a container.
//
//	File layout:
//	+--------------------------------+-------------------+-------------------+---------------------+
//	| "[VPNGate Data File]" + CRLF   | identifier + CRLF | key (20 bytes at  | ciphertext (0x104   |
//	|                                | (padded to 0xF0)  | offset 0xF0)      | to end of file)     |
//	+--------------------------------+-------------------+-------------------+---------------------+
//
//	Envelope records:
//	+------------+-------+--------------------------------------------+
//	| name       | type  | meaning                                    |
//	+------------+-------+--------------------------------------------+
//	| compressed | int   | 1 if data is zlib-compressed, 0 otherwise  |
//	| data_size  | int   | decompressed size, if compressed           |
//	| data       | data  | the inner container                        |
//	+------------+-------+--------------------------------------------+
package dat

import "github.com/cockroachdb/errors"

// Magic is the first line of a .dat file.
const Magic = "[VPNGate Data File]"

// KeySize is the size of the key region.
const KeySize = 0x14

const (
	keyOffset  = 0xF0
	dataOffset = keyOffset + KeySize
)

var (
	// ErrInvalidFile is returned when the file header is not recognised.
	ErrInvalidFile = errors.New("dat: invalid file")
	// ErrInvalidKey is returned when the key region is too short.
	ErrInvalidKey = errors.New("dat: invalid key")
	// ErrInflate is returned when the payload cannot be decompressed to its
	// declared size.
	ErrInflate = errors.New("dat: inflate failed")
)
