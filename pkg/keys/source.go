package keys

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/tyler-smith/go-bip39"
)

// KeySource supplies fresh private keys. The derivation pipeline never
// uses one; callers that need randomness (simulating an existing Nostr
// account, generating mnemonics) take it as a dependency.
type KeySource interface {
	// NewPrivateKey returns a new secp256k1 private key as hex
	NewPrivateKey() (string, error)
	// NewMnemonic returns a new BIP-39 mnemonic with the given entropy size
	NewMnemonic(bits int) (string, error)
}

// RandomKeySource draws keys from crypto/rand
type RandomKeySource struct{}

// NewPrivateKey generates a random secp256k1 private key
func (RandomKeySource) NewPrivateKey() (string, error) {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate private key: %w", err)
	}
	return hex.EncodeToString(privKey.Serialize()), nil
}

// NewMnemonic generates a mnemonic; bits must be a multiple of 32 in [128, 256]
func (RandomKeySource) NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

// MnemonicBits maps a word count to the entropy size in bits
func MnemonicBits(words int) (int, error) {
	switch words {
	case 12, 15, 18, 21, 24:
		return words / 3 * 32, nil
	default:
		return 0, fmt.Errorf("unsupported mnemonic length: %d words", words)
	}
}
