package did

import (
	"context"
	"encoding/json"
)

// ResolutionContext is the JSON-LD context of a resolution result
const ResolutionContext = "https://w3id.org/did-resolution/v1"

// Resolver resolves a DID to its document and metadata
type Resolver interface {
	Resolve(ctx context.Context, did string) (*ResolutionResult, error)
}

// ResolutionResult is the DID resolution envelope
type ResolutionResult struct {
	Context          string    `json:"@context"`
	Document         *Document `json:"didDocument"`
	DocumentMetadata *Metadata `json:"didDocumentMetadata"`
}

// MarshalJSON renders a missing document as {} rather than null
func (r ResolutionResult) MarshalJSON() ([]byte, error) {
	type envelope struct {
		Context          string      `json:"@context"`
		Document         interface{} `json:"didDocument"`
		DocumentMetadata *Metadata   `json:"didDocumentMetadata"`
	}

	out := envelope{Context: r.Context, Document: struct{}{}, DocumentMetadata: r.DocumentMetadata}
	if r.Document != nil {
		out.Document = r.Document
	}
	return json.Marshal(out)
}

// Fixed values returned by StubResolver
const (
	stubCreated = "2023-02-09T06:35:22Z"
	stubUpdated = "2023-02-10T13:40:06Z"
)

// StubResolver answers every well formed did:nostr DID with an empty
// document and canned metadata. Nothing is looked up.
type StubResolver struct{}

var _ Resolver = StubResolver{}

// Resolve returns the canned resolution result for did
func (StubResolver) Resolve(ctx context.Context, did string) (*ResolutionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := ParseDID(did); err != nil {
		return nil, err
	}

	// TODO: look documents up in a published store once one exists.
	return &ResolutionResult{
		Context: ResolutionContext,
		DocumentMetadata: &Metadata{
			CanonicalID: did,
			Created:     stubCreated,
			Updated:     stubUpdated,
			Method: MethodMetadata{
				Published:          true,
				UpdateCommitment:   PlaceholderUpdateCommitment,
				RecoveryCommitment: PlaceholderRecoveryCommitment,
			},
		},
	}, nil
}
