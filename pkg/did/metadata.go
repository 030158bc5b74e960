package did

import "time"

// TimestampFormat is ISO-8601 in UTC with whole seconds and a literal Z
const TimestampFormat = "2006-01-02T15:04:05Z"

// Metadata represents DID document metadata
type Metadata struct {
	CanonicalID string         `json:"canonicalId"`
	Created     string         `json:"created"`
	Updated     string         `json:"updated,omitempty"`
	Method      MethodMetadata `json:"method"`
}

// MethodMetadata carries the method-specific publication state
type MethodMetadata struct {
	Published          bool   `json:"published"`
	UpdateCommitment   string `json:"updateCommitment"`
	RecoveryCommitment string `json:"recoveryCommitment,omitempty"`
}

// FormatTimestamp formats t as a metadata timestamp
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// AssembleMetadata builds the metadata of a freshly created, unpublished
// DID. No recovery commitment is set on creation.
func AssembleMetadata(did, updateCommitment string, created time.Time) *Metadata {
	return &Metadata{
		CanonicalID: did,
		Created:     FormatTimestamp(created),
		Method: MethodMetadata{
			Published:        false,
			UpdateCommitment: updateCommitment,
		},
	}
}
