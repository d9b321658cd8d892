package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// EncodeFrame wraps a payload in the canonical envelope
// "type len\0payload". The frame is what gets hashed and compressed.
func EncodeFrame(objType ObjectType, payload []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", objType, len(payload))
	frame := make([]byte, 0, len(header)+len(payload))
	frame = append(frame, header...)
	frame = append(frame, payload...)
	return frame
}

// DecodeFrame splits a frame into its type tag and payload, validating
// the declared length against the actual payload size.
func DecodeFrame(frame []byte) (ObjectType, []byte, error) {
	nulIdx := bytes.IndexByte(frame, 0)
	if nulIdx < 0 {
		return "", nil, fmt.Errorf("%w: frame has no NUL separator", ErrCorrupt)
	}
	header := string(frame[:nulIdx])
	payload := frame[nulIdx+1:]

	tag, lenField, ok := strings.Cut(header, " ")
	if !ok {
		return "", nil, fmt.Errorf("%w: malformed frame header %q", ErrCorrupt, header)
	}
	objType := ObjectType(tag)
	switch objType {
	case TypeBlob, TypeTree, TypeCommit:
	default:
		return "", nil, fmt.Errorf("%w: unknown type tag %q", ErrCorrupt, tag)
	}
	length, err := strconv.Atoi(lenField)
	if err != nil {
		return "", nil, fmt.Errorf("%w: non-numeric length %q", ErrCorrupt, lenField)
	}
	if len(payload) != length {
		return "", nil, fmt.Errorf("%w: length mismatch (header=%d, actual=%d)", ErrCorrupt, length, len(payload))
	}
	return objType, payload, nil
}

// Encode serializes an object to its full frame.
func Encode(o Object) []byte {
	var payload []byte
	switch v := o.(type) {
	case *Blob:
		payload = MarshalBlob(v)
	case *Tree:
		payload = MarshalTree(v)
	case *Commit:
		payload = MarshalCommit(v)
	default:
		panic(fmt.Sprintf("object: encode of unknown variant %T", o))
	}
	return EncodeFrame(o.Type(), payload)
}

// Decode parses a frame back into the object variant named by its tag.
func Decode(frame []byte) (Object, error) {
	objType, payload, err := DecodeFrame(frame)
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
	// DecodeFrame already rejected unknown tags.
	return nil, fmt.Errorf("%w: unknown type tag %q", ErrCorrupt, objType)
}
