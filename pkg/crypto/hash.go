package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/multiformats/go-multihash"
)

// Base64URLEncode encodes bytes to base64url without padding
func Base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Base64URLDecode decodes a base64url string, with or without padding
func Base64URLDecode(encoded string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
}

// Multihash wraps the SHA-256 digest of data in a multihash
// (0x12 0x20 <digest>).
func Multihash(data []byte) ([]byte, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to compute multihash: %w", err)
	}
	return mh, nil
}

// MultihashToBase64URL returns the base64url encoded SHA-256 multihash of data.
// Encoded values always start with "Ei".
func MultihashToBase64URL(data []byte) (string, error) {
	mh, err := Multihash(data)
	if err != nil {
		return "", err
	}
	return Base64URLEncode(mh), nil
}

// IsSHA256Multihash reports whether b is a well formed SHA-256 multihash.
func IsSHA256Multihash(b []byte) bool {
	decoded, err := multihash.Decode(b)
	if err != nil {
		return false
	}
	return decoded.Code == multihash.SHA2_256 && decoded.Length == sha256.Size
}
