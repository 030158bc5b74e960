package did

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yourusername/did-nostr/pkg/crypto"
	"github.com/yourusername/did-nostr/pkg/keys"
)

// Placeholder commitment values carried over from the first did:nostr
// drafts. They do not commit to any key.
const (
	PlaceholderUpdateCommitment   = "EiCBC1lW5vswlMzp80SaGmS-wUBgV445-JId5p0_zCZpsg"
	PlaceholderRecoveryCommitment = "EiDgdspVioQZnpTFyEZRKy1uceha1LcPZlQ3uy6lEDw2Qw"
)

// Committer computes the update commitment published in DID metadata
type Committer interface {
	Commit(updateKey *keys.JWK) (string, error)
}

// PlaceholderCommitter ignores the key and returns the fixed draft value.
// It exists only for output parity with early did:nostr documents.
type PlaceholderCommitter struct{}

// Commit returns PlaceholderUpdateCommitment
func (PlaceholderCommitter) Commit(*keys.JWK) (string, error) {
	return PlaceholderUpdateCommitment, nil
}

// HashCommitter commits to the public update key with a two step
// multihash: the reveal value is the hash of the key, the commitment is
// the hash of the reveal value.
type HashCommitter struct{}

// Commit returns the commitment of the public part of updateKey
func (HashCommitter) Commit(updateKey *keys.JWK) (string, error) {
	commitment, _, err := GenerateCommitmentFromJWK(updateKey)
	return commitment, err
}

// GenerateCommitmentFromJWK generates a commitment from a JWK
// Returns (commitment, revealValue, error)
func GenerateCommitmentFromJWK(jwk *keys.JWK) (string, string, error) {
	if jwk == nil {
		return "", "", fmt.Errorf("no key to commit to")
	}

	// The private scalar never enters the hash
	jwkBytes, err := json.Marshal(jwk.PublicJWK())
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal JWK: %w", err)
	}

	reveal, err := crypto.Multihash(jwkBytes)
	if err != nil {
		return "", "", err
	}

	commitment, err := crypto.MultihashToBase64URL(reveal)
	if err != nil {
		return "", "", err
	}

	return commitment, crypto.Base64URLEncode(reveal), nil
}

// VerifyReveal verifies that a reveal value matches an expected commitment
func VerifyReveal(revealValue, expectedCommitment string) bool {
	revealBytes, err := crypto.Base64URLDecode(revealValue)
	if err != nil || !crypto.IsSHA256Multihash(revealBytes) {
		return false
	}

	actual, err := crypto.MultihashToBase64URL(revealBytes)
	if err != nil {
		return false
	}
	return actual == expectedCommitment
}

// VerifyKeyMatchesReveal verifies that a JWK hashes to the expected reveal value
func VerifyKeyMatchesReveal(jwk *keys.JWK, revealValue string) error {
	_, computed, err := GenerateCommitmentFromJWK(jwk)
	if err != nil {
		return err
	}

	expected, err := crypto.Base64URLDecode(revealValue)
	if err != nil {
		return fmt.Errorf("failed to decode reveal value: %w", err)
	}

	computedBytes, _ := crypto.Base64URLDecode(computed)
	if !bytes.Equal(computedBytes, expected) {
		return fmt.Errorf("key hash mismatch: computed %s, expected %s", computed, revealValue)
	}

	return nil
}
