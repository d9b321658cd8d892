package object

import (
	"encoding/hex"
	"fmt"
)

// Hash is a 40-character hex-encoded SHA-1 digest.
type Hash string

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

const (
	// Tree mode constants matching Git's canonical mode strings.
	TreeModeDir        = "40000"
	TreeModeFile       = "100644"
	TreeModeExecutable = "100755"
	TreeModeSymlink    = "120000"
)

const (
	hashHexLen = 40
	hashRawLen = 20
)

// ParseHash validates an externally supplied hash string: exactly 40
// lowercase hex characters.
func ParseHash(s string) (Hash, error) {
	if len(s) != hashHexLen {
		return "", fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidHash, hashHexLen, len(s))
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("%w: non-hex character %q", ErrInvalidHash, c)
		}
	}
	return Hash(s), nil
}

// Raw returns the 20-byte digest encoded by the hash.
func (h Hash) Raw() ([]byte, error) {
	raw, err := hex.DecodeString(string(h))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if len(raw) != hashRawLen {
		return nil, fmt.Errorf("%w: expected %d raw bytes, got %d", ErrInvalidHash, hashRawLen, len(raw))
	}
	return raw, nil
}

// hashFromRaw converts a 20-byte digest to its hex Hash form.
func hashFromRaw(raw []byte) Hash {
	return Hash(hex.EncodeToString(raw))
}

// Object is the closed set of storable variants: *Blob, *Tree, *Commit.
// Decode dispatches exhaustively on the frame's type tag.
type Object interface {
	Type() ObjectType
}

// Blob holds raw file data, uninterpreted.
type Blob struct {
	Data []byte
}

func (*Blob) Type() ObjectType { return TypeBlob }

// TreeEntry is one entry in a tree object.
type TreeEntry struct {
	Mode string // one of the TreeMode* constants
	Name string // no path separators
	Hash Hash   // blob or subtree hash depending on Mode
}

// IsDir reports whether the entry points at a subtree.
func (e TreeEntry) IsDir() bool { return e.Mode == TreeModeDir }

// Tree holds directory entries in canonical order.
type Tree struct {
	Entries []TreeEntry
}

func (*Tree) Type() ObjectType { return TypeTree }

// Identity is a commit author or committer stamp.
type Identity struct {
	Name     string
	Email    string
	Unix     int64  // seconds since epoch
	Timezone string // e.g. "+0000", "-0700"
}

// String renders the identity as it appears in a commit header:
// "Name <email> 1700000000 +0000".
func (id Identity) String() string {
	return fmt.Sprintf("%s <%s> %d %s", id.Name, id.Email, id.Unix, id.Timezone)
}

// Commit points at a tree with zero or more parents and metadata.
// Author and committer are carried separately in the encoding even when
// a builder sets them identical.
type Commit struct {
	Tree      Hash
	Parents   []Hash
	Author    Identity
	Committer Identity
	Signature string // optional, single-line gpgsig header
	Message   string
}

func (*Commit) Type() ObjectType { return TypeCommit }
