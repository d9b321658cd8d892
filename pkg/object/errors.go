package object

import "errors"

// Error classes surfaced by the store and codec. Callers match with
// errors.Is; everything else bubbling out of the store is an ordinary
// I/O failure from the OS.
var (
	// ErrNotFound means the requested hash has no object in the store.
	ErrNotFound = errors.New("object not found")

	// ErrCorrupt means stored bytes failed decompression or frame
	// decoding. The codec never attempts recovery.
	ErrCorrupt = errors.New("object corrupt")

	// ErrInvalidHash means a hash string is not 40 lowercase hex chars.
	ErrInvalidHash = errors.New("invalid object hash")
)
