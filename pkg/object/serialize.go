package object

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ---------------------------------------------------------------------------
// Blob
// ---------------------------------------------------------------------------

// MarshalBlob serializes a Blob to raw bytes (identity).
func MarshalBlob(b *Blob) []byte {
	out := make([]byte, len(b.Data))
	copy(out, b.Data)
	return out
}

// UnmarshalBlob deserializes raw bytes into a Blob.
func UnmarshalBlob(data []byte) (*Blob, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return &Blob{Data: out}, nil
}

// ---------------------------------------------------------------------------
// Tree
// ---------------------------------------------------------------------------

// treeSortKey orders entries by raw byte comparison of their names,
// except that a directory compares as though its name had a trailing
// '/' appended. Required for hash determinism: "b.txt" sorts before a
// directory "b" because "b.txt" < "b/".
func treeSortKey(e TreeEntry) string {
	if e.IsDir() {
		return e.Name + "/"
	}
	return e.Name
}

// MarshalTree serializes a Tree in the binary format
//
//	"<mode> <name>\0" + 20 raw digest bytes
//
// per entry, entries in canonical sort order. Entry hashes must be
// valid 40-char hex; a malformed hash panics since it can only come
// from a bug in the caller, never from external input.
func MarshalTree(tr *Tree) []byte {
	sorted := make([]TreeEntry, len(tr.Entries))
	copy(sorted, tr.Entries)
	sort.Slice(sorted, func(i, j int) bool {
		return treeSortKey(sorted[i]) < treeSortKey(sorted[j])
	})

	var buf bytes.Buffer
	for _, e := range sorted {
		raw, err := e.Hash.Raw()
		if err != nil {
			panic(fmt.Sprintf("object: tree entry %q has bad hash %q: %v", e.Name, e.Hash, err))
		}
		fmt.Fprintf(&buf, "%s %s\x00", e.Mode, e.Name)
		buf.Write(raw)
	}
	return buf.Bytes()
}

// UnmarshalTree parses a Tree from its binary form. An empty payload is
// a valid, empty tree.
func UnmarshalTree(data []byte) (*Tree, error) {
	tr := &Tree{}
	pos := 0
	for pos < len(data) {
		spaceIdx := bytes.IndexByte(data[pos:], ' ')
		if spaceIdx < 0 {
			return nil, fmt.Errorf("%w: tree entry missing space after mode", ErrCorrupt)
		}
		mode := string(data[pos : pos+spaceIdx])
		if err := validateTreeMode(mode); err != nil {
			return nil, err
		}
		pos += spaceIdx + 1

		nulIdx := bytes.IndexByte(data[pos:], 0)
		if nulIdx < 0 {
			return nil, fmt.Errorf("%w: tree entry missing NUL after name", ErrCorrupt)
		}
		name := string(data[pos : pos+nulIdx])
		pos += nulIdx + 1

		if pos+hashRawLen > len(data) {
			return nil, fmt.Errorf("%w: tree entry %q has short hash (%d bytes)", ErrCorrupt, name, len(data)-pos)
		}
		h := hashFromRaw(data[pos : pos+hashRawLen])
		pos += hashRawLen

		tr.Entries = append(tr.Entries, TreeEntry{Mode: mode, Name: name, Hash: h})
	}
	return tr, nil
}

func validateTreeMode(mode string) error {
	switch mode {
	case TreeModeDir, TreeModeFile, TreeModeExecutable, TreeModeSymlink:
		return nil
	}
	return fmt.Errorf("%w: unknown tree entry mode %q", ErrCorrupt, mode)
}

// ---------------------------------------------------------------------------
// Commit
// ---------------------------------------------------------------------------

// MarshalCommit serializes a Commit:
//
//	tree H
//	parent H     (zero or more, omitted when there are none)
//	author N <E> T Z
//	committer N <E> T Z
//	gpgsig S     (optional)
//
//	message
//
// The message is carried verbatim.
func MarshalCommit(c *Commit) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", string(c.Tree))
	for _, p := range c.Parents {
		fmt.Fprintf(&buf, "parent %s\n", string(p))
	}
	fmt.Fprintf(&buf, "author %s\n", c.Author)
	fmt.Fprintf(&buf, "committer %s\n", c.Committer)
	if c.Signature != "" {
		fmt.Fprintf(&buf, "gpgsig %s\n", c.Signature)
	}
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// UnmarshalCommit parses a Commit from its serialized form.
func UnmarshalCommit(data []byte) (*Commit, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("%w: commit missing header/message separator", ErrCorrupt)
	}
	header := string(data[:idx])
	message := string(data[idx+2:])

	c := &Commit{Message: message}
	for _, line := range strings.Split(header, "\n") {
		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w: malformed commit header line %q", ErrCorrupt, line)
		}
		switch key {
		case "tree":
			h, err := ParseHash(val)
			if err != nil {
				return nil, fmt.Errorf("%w: commit tree hash: %v", ErrCorrupt, err)
			}
			c.Tree = h
		case "parent":
			h, err := ParseHash(val)
			if err != nil {
				return nil, fmt.Errorf("%w: commit parent hash: %v", ErrCorrupt, err)
			}
			c.Parents = append(c.Parents, h)
		case "author":
			id, err := parseIdentity(val)
			if err != nil {
				return nil, err
			}
			c.Author = id
		case "committer":
			id, err := parseIdentity(val)
			if err != nil {
				return nil, err
			}
			c.Committer = id
		case "gpgsig":
			c.Signature = val
		default:
			return nil, fmt.Errorf("%w: unknown commit header key %q", ErrCorrupt, key)
		}
	}
	return c, nil
}

// parseIdentity parses "Name <email> 1700000000 +0000". Names may
// contain spaces, so the split anchors on the angle brackets.
func parseIdentity(s string) (Identity, error) {
	open := strings.Index(s, " <")
	if open < 0 {
		return Identity{}, fmt.Errorf("%w: identity %q missing email", ErrCorrupt, s)
	}
	name := s[:open]
	rest := s[open+2:]

	closeIdx := strings.Index(rest, "> ")
	if closeIdx < 0 {
		return Identity{}, fmt.Errorf("%w: identity %q missing email terminator", ErrCorrupt, s)
	}
	email := rest[:closeIdx]
	rest = rest[closeIdx+2:]

	tsField, tz, ok := strings.Cut(rest, " ")
	if !ok {
		return Identity{}, fmt.Errorf("%w: identity %q missing timezone", ErrCorrupt, s)
	}
	ts, err := strconv.ParseInt(tsField, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: identity %q bad timestamp: %v", ErrCorrupt, s, err)
	}
	return Identity{Name: name, Email: email, Unix: ts, Timezone: tz}, nil
}
