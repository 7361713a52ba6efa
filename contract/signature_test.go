package contract

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/stretchr/testify/require"
)

func TestSignatureViable(t *testing.T) {
	for _, tc := range []struct {
		size   int
		viable bool
	}{
		{size: 0, viable: false},
		{size: 63, viable: false},
		{size: 64, viable: true},
		{size: 70, viable: true},
		{size: 73, viable: true},
		{size: 74, viable: false},
	} {
		sig := NewSignature(bytes.Repeat([]byte{0x30}, tc.size))
		require.Equal(t, tc.viable, sig.Viable(), "size %d", tc.size)
	}
}

func TestSignatureParse(t *testing.T) {
	raw := bytes.Repeat([]byte{0xab}, 70)
	sig := ParseSignature(base64.StdEncoding.EncodeToString(raw))

	require.Equal(t, raw, sig.Bytes())
	require.Equal(t, base64.StdEncoding.EncodeToString(raw), sig.String())

	require.Empty(t, ParseSignature("").Bytes())
	require.Empty(t, ParseSignature("not/valid/base64!!!").Bytes())
	require.Equal(t, "", ParseSignature("").String())
}

func TestPublicKeyParse(t *testing.T) {
	priv, err := keys.NewPrivateKey()
	require.NoError(t, err)

	pk := ParsePublicKey(NewPublicKey(priv.PublicKey()).String())
	require.True(t, pk.Viable())
	require.True(t, pk.Key().Equal(priv.PublicKey()))

	require.False(t, ParsePublicKey("").Viable())
	require.False(t, ParsePublicKey("zz").Viable())
	require.Nil(t, PublicKey{}.Key())
	require.Equal(t, "", PublicKey{}.String())
}
