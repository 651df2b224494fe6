package domain

import (
	"bytes"
	"encoding/json"
)

// WalletInfo is the raw, client-supplied wallet payload. TonConnect
// clients send varying shapes, so it is carried verbatim until a player
// identifier is needed.
type WalletInfo json.RawMessage

// MarshalJSON preserves the raw payload.
func (w WalletInfo) MarshalJSON() ([]byte, error) {
	if len(w) == 0 {
		return []byte("null"), nil
	}
	return w, nil
}

// UnmarshalJSON stores the payload verbatim.
func (w *WalletInfo) UnmarshalJSON(data []byte) error {
	*w = append((*w)[:0], data...)
	return nil
}

// IdentitySource tags which wallet shape produced a player identifier.
type IdentitySource string

const (
	// IdentityAccountAddress means a nested account object carried the address.
	IdentityAccountAddress IdentitySource = "account_address"
	// IdentityAddress means a top-level address field was used.
	IdentityAddress IdentitySource = "address"
	// IdentityPublicKey means a top-level publicKey field was used.
	IdentityPublicKey IdentitySource = "public_key"
	// IdentityRaw means no known field matched and the whole payload was rendered.
	IdentityRaw IdentitySource = "raw"
)

// PlayerIdentity is the derived score-store key for a submitted wallet.
type PlayerIdentity struct {
	Source IdentitySource
	ID     string
}

// DeriveIdentity extracts a player identifier from a wallet payload.
// The probe order is fixed: account.address, then address, then
// publicKey, then a rendering of the whole value. Extraction is
// best-effort; nothing here defends against spoofed payloads.
func DeriveIdentity(wallet WalletInfo) PlayerIdentity {
	var shape struct {
		Account struct {
			Address string `json:"address"`
		} `json:"account"`
		Address   string `json:"address"`
		PublicKey string `json:"publicKey"`
	}
	if err := json.Unmarshal([]byte(wallet), &shape); err == nil {
		switch {
		case shape.Account.Address != "":
			return PlayerIdentity{Source: IdentityAccountAddress, ID: shape.Account.Address}
		case shape.Address != "":
			return PlayerIdentity{Source: IdentityAddress, ID: shape.Address}
		case shape.PublicKey != "":
			return PlayerIdentity{Source: IdentityPublicKey, ID: shape.PublicKey}
		}
	}
	return PlayerIdentity{Source: IdentityRaw, ID: renderRaw(wallet)}
}

// renderRaw produces the fallback identifier. Plain JSON strings are
// unwrapped so their quotes do not end up in the key; anything else is
// rendered as compact JSON. An absent wallet renders as "null".
func renderRaw(wallet WalletInfo) string {
	if len(wallet) == 0 {
		return "null"
	}
	var s string
	if err := json.Unmarshal([]byte(wallet), &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(wallet)); err != nil {
		return string(wallet)
	}
	return buf.String()
}
