package did

import "github.com/yourusername/did-nostr/pkg/keys"

// Document constants
const (
	ContextDIDv1           = "https://www.w3.org/ns/did/v1"
	VerificationMethodType = "JsonWebKey2020"
	ServiceTypeNostrRelay  = "NostrRelay"
	RelayServiceID         = "relay"
	primaryKeyFragment     = "#npub-0"
)

// Document represents a DID document
type Document struct {
	ID                 string               `json:"id"`
	Context            []interface{}        `json:"@context"`
	VerificationMethod []VerificationMethod `json:"verificationMethod"`
	Authentication     []string             `json:"authentication"`
	KeyAgreement       []string             `json:"keyAgreement"`
	Service            []Service            `json:"service,omitempty"`
}

// VerificationMethod binds a key to the DID
type VerificationMethod struct {
	ID           string    `json:"id"`
	Controller   string    `json:"controller"`
	Type         string    `json:"type"`
	PublicKeyJwk *keys.JWK `json:"publicKeyJwk"`
}

// Service represents a service endpoint in a DID document
type Service struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	ServiceEndpoint ServiceEndpoint `json:"serviceEndpoint"`
}

// ServiceEndpoint lists the relay nodes of a NostrRelay service
type ServiceEndpoint struct {
	Nodes []string `json:"nodes"`
}

// VerificationMethodID returns the id of the DID's primary key
func VerificationMethodID(did string) string {
	return did + primaryKeyFragment
}

// AssembleDocument builds the DID document for did. The public key backs
// both authentication and key agreement. The relay service is only added
// when relays is non-empty.
func AssembleDocument(did string, publicJWK *keys.JWK, relays []string) *Document {
	keyID := VerificationMethodID(did)

	doc := &Document{
		ID: did,
		Context: []interface{}{
			ContextDIDv1,
			map[string]string{"@base": did},
		},
		VerificationMethod: []VerificationMethod{{
			ID:           keyID,
			Controller:   did,
			Type:         VerificationMethodType,
			PublicKeyJwk: publicJWK.PublicJWK(),
		}},
		Authentication: []string{keyID},
		KeyAgreement:   []string{keyID},
	}

	if len(relays) > 0 {
		doc.Service = []Service{RelayService(relays)}
	}

	return doc
}

// RelayService builds the NostrRelay service entry for relays
func RelayService(relays []string) Service {
	nodes := make([]string, len(relays))
	copy(nodes, relays)

	return Service{
		ID:   RelayServiceID,
		Type: ServiceTypeNostrRelay,
		ServiceEndpoint: ServiceEndpoint{
			Nodes: nodes,
		},
	}
}

// Relays returns the relay nodes listed in the document, if any
func (d *Document) Relays() []string {
	for _, svc := range d.Service {
		if svc.Type == ServiceTypeNostrRelay {
			return svc.ServiceEndpoint.Nodes
		}
	}
	return nil
}
