package domain

import "testing"

func TestDeriveIdentity(t *testing.T) {
	cases := []struct {
		name   string
		wallet string
		source IdentitySource
		id     string
	}{
		{
			name:   "nested account address",
			wallet: `{"account":{"address":"UQabc","chain":"-239"},"address":"ignored"}`,
			source: IdentityAccountAddress,
			id:     "UQabc",
		},
		{
			name:   "top-level address",
			wallet: `{"address":"0:def","publicKey":"ignored"}`,
			source: IdentityAddress,
			id:     "0:def",
		},
		{
			name:   "public key fallback",
			wallet: `{"publicKey":"aabbcc"}`,
			source: IdentityPublicKey,
			id:     "aabbcc",
		},
		{
			name:   "plain string unwrapped",
			wallet: `"raw-wallet-string"`,
			source: IdentityRaw,
			id:     "raw-wallet-string",
		},
		{
			name:   "unrecognized object rendered compact",
			wallet: "{\"foo\": 1,\n \"bar\": [true]}",
			source: IdentityRaw,
			id:     `{"foo":1,"bar":[true]}`,
		},
		{
			name:   "number rendered as-is",
			wallet: `42`,
			source: IdentityRaw,
			id:     "42",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveIdentity(WalletInfo(tc.wallet))
			if got.Source != tc.source {
				t.Fatalf("source: got %q, want %q", got.Source, tc.source)
			}
			if got.ID != tc.id {
				t.Fatalf("id: got %q, want %q", got.ID, tc.id)
			}
		})
	}
}

func TestDeriveIdentityAbsentWallet(t *testing.T) {
	got := DeriveIdentity(nil)
	if got.Source != IdentityRaw || got.ID != "null" {
		t.Fatalf("expected raw/null for absent wallet, got %+v", got)
	}
}

func TestDeriveIdentityEmptyFieldsFallThrough(t *testing.T) {
	got := DeriveIdentity(WalletInfo(`{"account":{"address":""},"address":"","publicKey":""}`))
	if got.Source != IdentityRaw {
		t.Fatalf("expected raw fallback for empty fields, got %+v", got)
	}
}
