package keys

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/yourusername/did-nostr/pkg/crypto"
)

// JWK parameters for secp256k1 keys
const (
	AlgES256K    = "ES256K"
	KtyEC        = "EC"
	CrvSecp256k1 = "secp256k1"
)

// ErrEncoding is returned when key bytes cannot be turned into a key.
var ErrEncoding = errors.New("invalid key encoding")

// JWK represents a JSON Web Key
type JWK struct {
	Alg string `json:"alg"`
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	D   string `json:"d,omitempty"` // Private key (omit for public)
}

// JWKPair holds the public and private JWK of one key
type JWKPair struct {
	Public  *JWK
	Private *JWK
}

// ParsePrivateKeyHex decodes a hex encoded 32-byte secp256k1 scalar.
func ParsePrivateKeyHex(privateKeyHex string) (*btcec.PrivateKey, error) {
	raw, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if len(raw) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrEncoding, btcec.PrivKeyBytesLen, len(raw))
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: private key out of range", ErrEncoding)
	}

	privKey, _ := btcec.PrivKeyFromBytes(raw)
	return privKey, nil
}

// PublicKeyBytes returns the 32-byte x-only public key of the private key.
// This is the raw Nostr public key.
func PublicKeyBytes(privateKeyHex string) ([]byte, error) {
	privKey, err := ParsePrivateKeyHex(privateKeyHex)
	if err != nil {
		return nil, err
	}
	return schnorr.SerializePubKey(privKey.PubKey()), nil
}

// PublicKeyHex returns the x-only public key as lowercase hex.
func PublicKeyHex(privateKeyHex string) (string, error) {
	pub, err := PublicKeyBytes(privateKeyHex)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pub), nil
}

// EncodeJWKPair builds the ES256K public and private JWK of a private key
func EncodeJWKPair(privateKeyHex string) (*JWKPair, error) {
	privKey, err := ParsePrivateKeyHex(privateKeyHex)
	if err != nil {
		return nil, err
	}

	public := &JWK{
		Alg: AlgES256K,
		Kty: KtyEC,
		Crv: CrvSecp256k1,
		X:   crypto.Base64URLEncode(schnorr.SerializePubKey(privKey.PubKey())),
	}

	private := *public
	private.D = crypto.Base64URLEncode(privKey.Serialize())

	return &JWKPair{Public: public, Private: &private}, nil
}

// PublicJWK returns a copy of the JWK without private material
func (j *JWK) PublicJWK() *JWK {
	return &JWK{
		Alg: j.Alg,
		Kty: j.Kty,
		Crv: j.Crv,
		X:   j.X,
	}
}

// IsPrivate reports whether the JWK carries the private scalar
func (j *JWK) IsPrivate() bool {
	return j.D != ""
}

// PublicKeyBytes decodes the x-only public key carried in x
func (j *JWK) PublicKeyBytes() ([]byte, error) {
	if j.Kty != KtyEC || j.Crv != CrvSecp256k1 {
		return nil, fmt.Errorf("%w: unsupported key type %s/%s", ErrEncoding, j.Kty, j.Crv)
	}

	x, err := crypto.Base64URLDecode(j.X)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode x: %v", ErrEncoding, err)
	}

	if _, err := schnorr.ParsePubKey(x); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	return x, nil
}
