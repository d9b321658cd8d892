package object

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is a content-addressed loose-object store with a 2-character
// fan-out directory layout: objects/ab/cdef0123... Each file holds the
// zlib-compressed frame "type len\0payload".
type Store struct {
	root   string
	strict bool
}

// NewStore creates a Store rooted at the given directory (normally the
// .git directory). The objects/ subdirectory is created lazily on first
// write.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// NewStrictStore creates a Store that re-verifies the digest of every
// object it reads against the requested hash, guarding against on-disk
// corruption that still decompresses and decodes cleanly.
func NewStrictStore(root string) *Store {
	return &Store{root: root, strict: true}
}

// objectPath returns the filesystem path for a given hash.
func (s *Store) objectPath(h Hash) string {
	return filepath.Join(s.root, "objects", string(h[:2]), string(h[2:]))
}

// Has reports whether the store contains an object with the given hash.
// Path existence only, no decode.
func (s *Store) Has(h Hash) bool {
	_, err := os.Stat(s.objectPath(h))
	return err == nil
}

// Write stores a frame with the given type and payload and returns its
// content hash. Writing content that is already present is a no-op that
// returns the existing hash. Writes are atomic: the compressed frame is
// written to a temp file and renamed into place, so a concurrent reader
// sees either nothing or a complete object, never a partial one.
func (s *Store) Write(objType ObjectType, payload []byte) (Hash, error) {
	frame := EncodeFrame(objType, payload)
	h := HashObject(objType, payload)

	// Fast path: already exists, content addressing makes this a no-op.
	if s.Has(h) {
		return h, nil
	}

	compressed, err := compressZlib(frame)
	if err != nil {
		return "", fmt.Errorf("object write: %w", err)
	}

	dir := filepath.Join(s.root, "objects", string(h[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("object write mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("object write tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(compressed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("object write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write close: %w", err)
	}

	if err := os.Rename(tmpName, s.objectPath(h)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("object write rename: %w", err)
	}

	return h, nil
}

// WriteObject encodes and stores any object variant.
func (s *Store) WriteObject(o Object) (Hash, error) {
	switch v := o.(type) {
	case *Blob:
		return s.Write(TypeBlob, MarshalBlob(v))
	case *Tree:
		return s.Write(TypeTree, MarshalTree(v))
	case *Commit:
		return s.Write(TypeCommit, MarshalCommit(v))
	}
	return "", fmt.Errorf("object write: unknown variant %T", o)
}

// Read retrieves an object by hash, returning its type and payload.
// A missing object is ErrNotFound; decompression or framing failures
// are ErrCorrupt; anything else is an underlying I/O error.
func (s *Store) Read(h Hash) (ObjectType, []byte, error) {
	compressed, err := os.ReadFile(s.objectPath(h))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("object %s: %w", h, ErrNotFound)
		}
		return "", nil, fmt.Errorf("object read %s: %w", h, err)
	}

	frame, err := decompressZlib(compressed)
	if err != nil {
		return "", nil, fmt.Errorf("object read %s: %w", h, err)
	}
	objType, payload, err := DecodeFrame(frame)
	if err != nil {
		return "", nil, fmt.Errorf("object read %s: %w", h, err)
	}

	if s.strict {
		if got := HashObject(objType, payload); got != h {
			return "", nil, fmt.Errorf("object read %s: %w: digest mismatch (computed %s)", h, ErrCorrupt, got)
		}
	}

	return objType, payload, nil
}

// ReadObject retrieves and decodes an object by hash.
func (s *Store) ReadObject(h Hash) (Object, error) {
	objType, payload, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	switch objType {
	case TypeBlob:
		return UnmarshalBlob(payload)
	case TypeTree:
		return UnmarshalTree(payload)
	case TypeCommit:
		return UnmarshalCommit(payload)
	}
	return nil, fmt.Errorf("object read %s: %w: unknown type %q", h, ErrCorrupt, objType)
}

// ---------------------------------------------------------------------------
// Typed convenience methods
// ---------------------------------------------------------------------------

// WriteBlob serializes and stores a Blob.
func (s *Store) WriteBlob(b *Blob) (Hash, error) {
	return s.Write(TypeBlob, MarshalBlob(b))
}

// ReadBlob reads and deserializes a Blob.
func (s *Store) ReadBlob(h Hash) (*Blob, error) {
	objType, payload, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	if objType != TypeBlob {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", h, objType, TypeBlob)
	}
	return UnmarshalBlob(payload)
}

// WriteTree serializes and stores a Tree.
func (s *Store) WriteTree(tr *Tree) (Hash, error) {
	return s.Write(TypeTree, MarshalTree(tr))
}

// ReadTree reads and deserializes a Tree.
func (s *Store) ReadTree(h Hash) (*Tree, error) {
	objType, payload, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	if objType != TypeTree {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", h, objType, TypeTree)
	}
	return UnmarshalTree(payload)
}

// WriteCommit serializes and stores a Commit.
func (s *Store) WriteCommit(c *Commit) (Hash, error) {
	return s.Write(TypeCommit, MarshalCommit(c))
}

// ReadCommit reads and deserializes a Commit.
func (s *Store) ReadCommit(h Hash) (*Commit, error) {
	objType, payload, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	if objType != TypeCommit {
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", h, objType, TypeCommit)
	}
	return UnmarshalCommit(payload)
}
