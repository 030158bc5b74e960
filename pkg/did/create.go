package did

import (
	"fmt"
	"time"

	"github.com/yourusername/did-nostr/pkg/keys"
)

// CreateOptions holds the optional inputs of CreateFromSeedWords
type CreateOptions struct {
	// Passphrase is the optional BIP-39 passphrase
	Passphrase string
	// ExistingNpub, when set, becomes the identifier verbatim
	ExistingNpub string
	// SigningPath and UpdatePath select the two HD branches
	SigningPath string
	UpdatePath  string
	// Committer computes the update commitment
	Committer Committer
	// Now stamps the metadata creation time
	Now func() time.Time
}

// CreateOption configures a CreateFromSeedWords call
type CreateOption func(*CreateOptions)

// WithPassphrase sets the BIP-39 passphrase
func WithPassphrase(passphrase string) CreateOption {
	return func(o *CreateOptions) {
		o.Passphrase = passphrase
	}
}

// WithExistingNpub keeps an existing Nostr identity as the identifier
func WithExistingNpub(npub string) CreateOption {
	return func(o *CreateOptions) {
		o.ExistingNpub = npub
	}
}

// WithKeyPaths overrides the signing and update derivation paths
func WithKeyPaths(signingPath, updatePath string) CreateOption {
	return func(o *CreateOptions) {
		o.SigningPath = signingPath
		o.UpdatePath = updatePath
	}
}

// WithCommitter sets the update commitment scheme. A nil committer keeps
// the default.
func WithCommitter(c Committer) CreateOption {
	return func(o *CreateOptions) {
		if c != nil {
			o.Committer = c
		}
	}
}

// WithClock sets the source of the creation timestamp. A nil clock keeps
// time.Now.
func WithClock(now func() time.Time) CreateOption {
	return func(o *CreateOptions) {
		if now != nil {
			o.Now = now
		}
	}
}

func defaultCreateOptions() *CreateOptions {
	return &CreateOptions{
		SigningPath: keys.SigningKeyPath,
		UpdatePath:  keys.UpdateKeyPath,
		Committer:   HashCommitter{},
		Now:         time.Now,
	}
}

// CreateResult contains the result of creating a DID
type CreateResult struct {
	Document *Document `json:"didDocument"`
	Metadata *Metadata `json:"didDocumentMetadata"`
}

// CreateFromSeedWords derives a did:nostr document and its metadata from
// a BIP-39 mnemonic. The signing key backs the identifier and the
// verification method; the update key only feeds the update commitment.
// Either both records are returned or an error.
func CreateFromSeedWords(mnemonic string, relays []string, opts ...CreateOption) (*CreateResult, error) {
	o := defaultCreateOptions()
	for _, opt := range opts {
		opt(o)
	}

	seed, err := keys.SeedFromMnemonic(mnemonic, o.Passphrase)
	if err != nil {
		return nil, err
	}

	signingKey, err := keys.DeriveKeyFromSeed(seed, o.SigningPath)
	if err != nil {
		return nil, fmt.Errorf("failed to derive signing key: %w", err)
	}

	updateKey, err := keys.DeriveKeyFromSeed(seed, o.UpdatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to derive update key: %w", err)
	}

	did, err := BuildIdentifier(signingKey, o.ExistingNpub)
	if err != nil {
		return nil, fmt.Errorf("failed to build identifier: %w", err)
	}

	signingJWK, err := keys.EncodeJWKPair(signingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode signing key: %w", err)
	}

	updateJWK, err := keys.EncodeJWKPair(updateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update key: %w", err)
	}

	updateCommitment, err := o.Committer.Commit(updateJWK.Public)
	if err != nil {
		return nil, fmt.Errorf("failed to compute update commitment: %w", err)
	}

	return &CreateResult{
		Document: AssembleDocument(did, signingJWK.Public, relays),
		Metadata: AssembleMetadata(did, updateCommitment, o.Now()),
	}, nil
}
