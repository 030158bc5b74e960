package did

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nbd-wtf/go-nostr/nip19"

	"github.com/yourusername/did-nostr/pkg/keys"
)

// Method is the DID method name
const Method = "nostr"

// DIDPrefix is the prefix for all did:nostr DIDs
const DIDPrefix = "did:" + Method + ":"

// ErrInvalidDID is returned for identifiers that are not did:nostr DIDs
var ErrInvalidDID = errors.New("invalid DID")

// BuildIdentifier returns the did:nostr identifier of a private key.
// A non-empty existingNpub is used verbatim instead of encoding the key,
// so an already published Nostr identity keeps its identifier.
func BuildIdentifier(privateKeyHex, existingNpub string) (string, error) {
	if existingNpub != "" {
		return FormatDID(existingNpub), nil
	}

	pubHex, err := keys.PublicKeyHex(privateKeyHex)
	if err != nil {
		return "", err
	}

	npub, err := nip19.EncodePublicKey(pubHex)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode npub: %v", keys.ErrEncoding, err)
	}

	return FormatDID(npub), nil
}

// FormatDID formats a method-specific identifier as a full DID URI
func FormatDID(id string) string {
	return DIDPrefix + id
}

// ParseDID extracts the method-specific identifier from a DID URI
func ParseDID(did string) (string, error) {
	if !strings.HasPrefix(did, DIDPrefix) || len(did) == len(DIDPrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidDID, did)
	}
	return did[len(DIDPrefix):], nil
}

// PublicKeyFromDID decodes the npub of a DID back to the hex public key
func PublicKeyFromDID(did string) (string, error) {
	id, err := ParseDID(did)
	if err != nil {
		return "", err
	}

	prefix, value, err := nip19.Decode(id)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDID, err)
	}
	if prefix != "npub" {
		return "", fmt.Errorf("%w: expected npub, got %s", ErrInvalidDID, prefix)
	}

	pubHex, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: unexpected npub payload %T", ErrInvalidDID, value)
	}

	return pubHex, nil
}
