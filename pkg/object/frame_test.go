package object

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	payload := []byte("payload with \x00 nul and \xff binary")
	frame := EncodeFrame(TypeBlob, payload)

	objType, got, err := DecodeFrame(frame)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if objType != TypeBlob {
		t.Errorf("Type: got %q, want %q", objType, TypeBlob)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Payload: got %q, want %q", got, payload)
	}
}

func TestFrameHeaderLayout(t *testing.T) {
	frame := EncodeFrame(TypeCommit, []byte("abc"))
	want := "commit 3\x00abc"
	if string(frame) != want {
		t.Errorf("Frame: got %q, want %q", frame, want)
	}
}

func TestDecodeFrameCorrupt(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"no nul", []byte("blob 3abc")},
		{"no space", []byte("blob3\x00abc")},
		{"unknown tag", []byte("tag 3\x00abc")},
		{"non-numeric length", []byte("blob three\x00abc")},
		{"length too small", []byte("blob 2\x00abc")},
		{"length too large", []byte("blob 4\x00abc")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := DecodeFrame(tc.data); !errors.Is(err, ErrCorrupt) {
				t.Errorf("got %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestEncodeDecodeObjectRoundTrip(t *testing.T) {
	who := Identity{Name: "A", Email: "a@b.c", Unix: 42, Timezone: "+0000"}
	objects := []Object{
		&Blob{Data: []byte("blob body")},
		&Tree{Entries: []TreeEntry{{Mode: TreeModeFile, Name: "f", Hash: HashBytes([]byte("f"))}}},
		&Commit{Tree: HashBytes([]byte("t")), Author: who, Committer: who, Message: "m\n"},
	}

	for _, o := range objects {
		got, err := Decode(Encode(o))
		if err != nil {
			t.Fatalf("Decode(%s): %v", o.Type(), err)
		}
		if got.Type() != o.Type() {
			t.Errorf("round-trip type: got %q, want %q", got.Type(), o.Type())
		}
		if !bytes.Equal(Encode(got), Encode(o)) {
			t.Errorf("round-trip of %s not byte-identical", o.Type())
		}
	}
}
