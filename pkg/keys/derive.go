package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

// HD derivation paths under the Nostr coin type (1237, NIP-06).
const (
	// SigningKeyPath derives the key behind the DID identifier and its
	// verification method.
	SigningKeyPath = "m/44'/1237'/0'/0/0'"
	// UpdateKeyPath derives the key reserved for update operations.
	UpdateKeyPath = "m/44'/1237'/1'/0/0'"
)

// ErrDerivation is returned when a derivation path yields no usable private key.
var ErrDerivation = errors.New("could not derive private key")

// DerivationError describes a failed derivation of a single path
type DerivationError struct {
	Path string
	Err  error
}

func (e *DerivationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s at path %q", ErrDerivation, e.Path)
	}
	return fmt.Sprintf("%s at path %q: %v", ErrDerivation, e.Path, e.Err)
}

// Is makes errors.Is(err, ErrDerivation) hold for every DerivationError
func (e *DerivationError) Is(target error) bool {
	return target == ErrDerivation
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// SeedFromMnemonic derives the 64-byte BIP-39 seed. An empty passphrase
// means no passphrase.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to derive seed: %w", err)
	}
	return seed, nil
}

// DeriveKey derives the secp256k1 private key at path from the mnemonic
// and returns it as 64 lowercase hex characters.
func DeriveKey(mnemonic, path, passphrase string) (string, error) {
	seed, err := SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return "", err
	}
	return DeriveKeyFromSeed(seed, path)
}

// DeriveKeyFromSeed walks path from the master node of seed.
func DeriveKeyFromSeed(seed []byte, path string) (string, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return "", &DerivationError{Path: path, Err: err}
	}

	node, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return "", &DerivationError{Path: path, Err: err}
	}

	for _, index := range indices {
		node, err = node.Derive(index)
		if err != nil {
			return "", &DerivationError{Path: path, Err: err}
		}
	}

	if !node.IsPrivate() {
		return "", &DerivationError{Path: path}
	}

	privKey, err := node.ECPrivKey()
	if err != nil {
		return "", &DerivationError{Path: path, Err: err}
	}

	return hex.EncodeToString(privKey.Serialize()), nil
}

// ParsePath parses a BIP-32 path such as m/44'/1237'/0'/0/0' into child
// indices. Hardened segments are marked with ' or h.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(strings.TrimSpace(path), "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, fmt.Errorf("path must start with m: %q", path)
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		hardened := false
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
			hardened = true
			segment = segment[:len(segment)-1]
		}

		value, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid path segment %q: %w", segment, err)
		}
		if value >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("path index out of range: %d", value)
		}

		index := uint32(value)
		if hardened {
			index += hdkeychain.HardenedKeyStart
		}
		indices = append(indices, index)
	}

	return indices, nil
}
