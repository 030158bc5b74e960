package did

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubResolver(t *testing.T) {
	var resolver Resolver = StubResolver{}
	did := "did:nostr:npub1test"

	result, err := resolver.Resolve(context.Background(), did)
	require.NoError(t, err)

	assert.Equal(t, ResolutionContext, result.Context)
	assert.Nil(t, result.Document)

	meta := result.DocumentMetadata
	require.NotNil(t, meta)
	assert.Equal(t, did, meta.CanonicalID)
	assert.Equal(t, "2023-02-09T06:35:22Z", meta.Created)
	assert.Equal(t, "2023-02-10T13:40:06Z", meta.Updated)
	assert.True(t, meta.Method.Published)
	assert.Equal(t, PlaceholderUpdateCommitment, meta.Method.UpdateCommitment)
	assert.Equal(t, PlaceholderRecoveryCommitment, meta.Method.RecoveryCommitment)
}

func TestStubResolverJSONShape(t *testing.T) {
	result, err := StubResolver{}.Resolve(context.Background(), "did:nostr:npub1test")
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "https://w3id.org/did-resolution/v1", raw["@context"])
	assert.Equal(t, map[string]interface{}{}, raw["didDocument"])
	assert.Contains(t, raw, "didDocumentMetadata")
}

func TestResolutionResultWithDocument(t *testing.T) {
	created, err := CreateFromSeedWords(testMnemonic, []string{"wss://r1"})
	require.NoError(t, err)

	data, err := json.Marshal(&ResolutionResult{
		Context:          ResolutionContext,
		Document:         created.Document,
		DocumentMetadata: created.Metadata,
	})
	require.NoError(t, err)

	var decoded struct {
		Document Document `json:"didDocument"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, created.Document.ID, decoded.Document.ID)
	assert.Equal(t, []string{"wss://r1"}, decoded.Document.Relays())
}

func TestStubResolverErrors(t *testing.T) {
	_, err := StubResolver{}.Resolve(context.Background(), "did:web:example.com")
	assert.ErrorIs(t, err, ErrInvalidDID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = StubResolver{}.Resolve(ctx, "did:nostr:npub1test")
	assert.ErrorIs(t, err, context.Canceled)
}
