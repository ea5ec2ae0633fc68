package binance

import (
	"net/url"
	"strings"
	"testing"
)

func TestSigner_Sign(t *testing.T) {
	// Official Binance API docs signature example.
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	payload := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	expected := "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"

	signer := NewSigner("dummy_key", secret)

	if got := signer.sign(payload); got != expected {
		t.Errorf("sign() = %s, want %s", got, expected)
	}
}

func TestSigner_SignQuery(t *testing.T) {
	signer := NewSigner("key", "secret")

	params := url.Values{}
	params.Set("symbol", "BTCUSDT")
	params.Set("side", "BUY")

	query := signer.SignQuery(params)

	if !strings.Contains(query, "signature=") {
		t.Errorf("query missing signature: %s", query)
	}
	// The signature must cover exactly the encoded query that is sent.
	encoded := params.Encode()
	if !strings.HasPrefix(query, encoded+"&signature=") {
		t.Errorf("query %q does not extend encoded params %q", query, encoded)
	}
	if got := strings.TrimPrefix(query, encoded+"&signature="); got != signer.sign(encoded) {
		t.Errorf("signature mismatch: %s", got)
	}
}

func TestSigner_Wipe(t *testing.T) {
	signer := NewSigner("key", "secret")
	signer.Wipe()

	for _, b := range signer.secretKey {
		if b != 0 {
			t.Fatal("secret key not wiped")
		}
	}
	for _, b := range signer.apiKey {
		if b != 0 {
			t.Fatal("api key not wiped")
		}
	}
}
