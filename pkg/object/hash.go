package object

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// HashBytes computes the raw SHA-1 hash of data and returns it as a
// lowercase hex-encoded Hash. SHA-1 is a format requirement: ids must
// match the reference loose-object format byte for byte. It is used as
// a content fingerprint only, never for security.
func HashBytes(data []byte) Hash {
	sum := sha1.Sum(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// HashObject computes the SHA-1 of the frame "type len\0payload",
// which is the object's content address.
func HashObject(objType ObjectType, payload []byte) Hash {
	header := fmt.Sprintf("%s %d\x00", objType, len(payload))
	h := sha1.New()
	h.Write([]byte(header))
	h.Write(payload)
	return Hash(hex.EncodeToString(h.Sum(nil)))
}
