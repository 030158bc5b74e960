package crypto

import (
	"bytes"
	"crypto/sha256"
	"strings"
	"testing"
)

func TestBase64URLEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "empty", input: []byte{}, expected: ""},
		{name: "single byte", input: []byte{0x00}, expected: "AA"},
		{name: "two bytes", input: []byte{0x00, 0x01}, expected: "AAE"},
		{name: "three bytes", input: []byte{0x00, 0x01, 0x02}, expected: "AAEC"},
		{name: "URL-safe characters needed", input: []byte{0xfb, 0xff}, expected: "-_8"},
		{name: "hello", input: []byte("hello"), expected: "aGVsbG8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Base64URLEncode(tt.input)
			if result != tt.expected {
				t.Errorf("Base64URLEncode() = %v, want %v", result, tt.expected)
			}
			if strings.HasSuffix(result, "=") {
				t.Errorf("Base64URLEncode() result has padding: %v", result)
			}
		})
	}
}

func TestBase64URLDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{name: "empty", input: "", expected: []byte{}},
		{name: "two bytes no padding", input: "AAE", expected: []byte{0x00, 0x01}},
		{name: "with padding", input: "AAE=", expected: []byte{0x00, 0x01}},
		{name: "URL-safe characters", input: "-_8", expected: []byte{0xfb, 0xff}},
		{name: "standard alphabet rejected", input: "+/8", wantErr: true},
		{name: "invalid characters", input: "!!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Base64URLDecode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Base64URLDecode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("Base64URLDecode() = %x, want %x", result, tt.expected)
			}
		})
	}
}

func TestMultihash(t *testing.T) {
	input := []byte(`{"alg":"ES256K","kty":"EC","crv":"secp256k1","x":"abc"}`)

	mh, err := Multihash(input)
	if err != nil {
		t.Fatalf("Multihash() error = %v", err)
	}
	if len(mh) != 34 {
		t.Fatalf("Multihash() length = %d, want 34", len(mh))
	}

	if mh[0] != 0x12 {
		t.Errorf("Multihash() code = %#x, want 0x12", mh[0])
	}
	if mh[1] != 0x20 {
		t.Errorf("Multihash() digest length = %#x, want 0x20", mh[1])
	}

	digest := sha256.Sum256(input)
	if !bytes.Equal(mh[2:], digest[:]) {
		t.Errorf("Multihash() digest = %x, want %x", mh[2:], digest)
	}
	if !IsSHA256Multihash(mh) {
		t.Error("IsSHA256Multihash() = false for Multihash() output")
	}
}

func TestMultihashToBase64URL(t *testing.T) {
	for _, input := range [][]byte{{}, []byte("hello"), make([]byte, 1000)} {
		encoded, err := MultihashToBase64URL(input)
		if err != nil {
			t.Fatalf("MultihashToBase64URL() error = %v", err)
		}

		if !strings.HasPrefix(encoded, "Ei") {
			t.Errorf("MultihashToBase64URL() = %v, want Ei prefix", encoded)
		}
		if len(encoded) != 46 {
			t.Errorf("MultihashToBase64URL() length = %d, want 46", len(encoded))
		}

		again, _ := MultihashToBase64URL(input)
		if again != encoded {
			t.Errorf("MultihashToBase64URL() not deterministic: %v != %v", again, encoded)
		}

		decoded, err := Base64URLDecode(encoded)
		if err != nil {
			t.Fatalf("Base64URLDecode() error = %v", err)
		}
		if !IsSHA256Multihash(decoded) {
			t.Errorf("IsSHA256Multihash() = false for %v", encoded)
		}
	}
}

func TestIsSHA256Multihash(t *testing.T) {
	digest := sha256.Sum256([]byte("raw digest"))

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "nil", input: nil},
		{name: "raw digest", input: digest[:]},
		{name: "truncated", input: []byte{0x12, 0x20, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsSHA256Multihash(tt.input) {
				t.Errorf("IsSHA256Multihash(%x) = true, want false", tt.input)
			}
		})
	}
}
