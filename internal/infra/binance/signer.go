package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

// Signer handles Binance signed-endpoint authentication.
// Keys are stored as []byte to allow memory wiping on shutdown.
type Signer struct {
	apiKey    []byte
	secretKey []byte
}

// NewSigner creates a new signer from the raw credentials.
func NewSigner(apiKey, secretKey string) *Signer {
	return &Signer{
		apiKey:    []byte(apiKey),
		secretKey: []byte(secretKey),
	}
}

// Wipe clears the keys from memory.
func (s *Signer) Wipe() {
	if s == nil {
		return
	}
	wipeSlice(s.apiKey)
	wipeSlice(s.secretKey)
}

func wipeSlice(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// APIKey returns the key for the X-MBX-APIKEY header.
func (s *Signer) APIKey() string {
	return string(s.apiKey)
}

// SignQuery encodes the params and appends the HMAC-SHA256 signature over
// the encoded string, exactly as Binance expects it on the wire. The
// returned query is what must be sent; signing any other serialization of
// the same params would fail server-side verification.
func (s *Signer) SignQuery(params url.Values) string {
	query := params.Encode()
	return query + "&signature=" + s.sign(query)
}

func (s *Signer) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secretKey)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
