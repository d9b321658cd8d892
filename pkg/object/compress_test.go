package object

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompressRoundTrip(t *testing.T) {
	large := bytes.Repeat([]byte("0123456789abcdef"), 64*1024)
	cases := [][]byte{
		nil,
		{},
		[]byte("short"),
		[]byte{0x00, 0xff, 0x00, 0xff},
		large,
	}
	for _, in := range cases {
		compressed, err := compressZlib(in)
		if err != nil {
			t.Fatalf("compress %d bytes: %v", len(in), err)
		}
		out, err := decompressZlib(compressed)
		if err != nil {
			t.Fatalf("decompress %d bytes: %v", len(compressed), err)
		}
		if !bytes.Equal(out, in) {
			t.Errorf("round-trip of %d bytes not identical", len(in))
		}
	}
}

func TestDecompressMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage header", []byte("not zlib at all")},
		{"truncated stream", truncatedStream(t)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decompressZlib(tc.data); !errors.Is(err, ErrCorrupt) {
				t.Errorf("got %v, want ErrCorrupt", err)
			}
		})
	}
}

func truncatedStream(t *testing.T) []byte {
	t.Helper()
	full, err := compressZlib(bytes.Repeat([]byte("data"), 256))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	return full[:len(full)/2]
}
