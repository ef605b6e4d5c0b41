package near

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCryptoHash(t *testing.T) {
	h, err := ParseCryptoHash("4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("01", 32), h.String())
	assert.Equal(t, "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi", h.Base58())

	_, err = ParseCryptoHash("abc")
	assert.Error(t, err)
}

func TestParseUint128(t *testing.T) {
	tests := []struct {
		in          string
		expected    Uint128
		expectedErr bool
	}{
		{"0", Uint128{}, false},
		{"7", NewUint128(7), false},
		{"18446744073709551616", Uint128{Hi: 1}, false},
		{"340282366920938463463374607431768211455", Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}, false},
		{"340282366920938463463374607431768211456", Uint128{}, true},
		{"-1", Uint128{}, true},
		{"1e3", Uint128{}, true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			actual, err := ParseUint128(test.in)
			if test.expectedErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
			assert.Equal(t, test.in, actual.String())
		})
	}
}

func TestUint128_Bytes(t *testing.T) {
	v := Uint128FromBig(new(big.Int).Lsh(big.NewInt(1), 64))
	b := v.Bytes()
	assert.Equal(t, "00000000000000010000000000000000", hex.EncodeToString(b[:]))
	assert.Equal(t, v, Uint128FromBytes(b))
	assert.True(t, Uint128{}.IsZero())
}

func TestParsePublicKey(t *testing.T) {
	key, err := ParsePublicKey("ed25519:cGfHiC6Kgg3FpFZvgwGcswsCRtp4aBP2fzuXRQPizuN")
	require.NoError(t, err)
	assert.Equal(t, CurveED25519, key.Curve())
	assert.Equal(t, strings.Repeat("09", 32), hex.EncodeToString(key.Bytes()))
	assert.Equal(t, "ed25519:cGfHiC6Kgg3FpFZvgwGcswsCRtp4aBP2fzuXRQPizuN", key.String())

	unprefixed, err := ParsePublicKey("cGfHiC6Kgg3FpFZvgwGcswsCRtp4aBP2fzuXRQPizuN")
	require.NoError(t, err)
	assert.Equal(t, key, unprefixed)

	_, err = ParsePublicKey("ed448:cGfHiC6Kgg3FpFZvgwGcswsCRtp4aBP2fzuXRQPizuN")
	assert.Error(t, err)

	_, err = ParsePublicKey("secp256k1:cGfHiC6Kgg3FpFZvgwGcswsCRtp4aBP2fzuXRQPizuN")
	assert.Error(t, err, "secp256k1 keys are 64 bytes")
}

func TestNewPublicKey_SECP256K1(t *testing.T) {
	generator, err := hex.DecodeString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	require.NoError(t, err)

	key, err := NewPublicKey(CurveSECP256K1, generator)
	require.NoError(t, err)
	assert.Equal(t, CurveSECP256K1, key.Curve())
	assert.IsType(t, SECP256K1PublicKey{}, key)

	notOnCurve := make([]byte, 64)
	notOnCurve[63] = 1
	_, err = NewPublicKey(CurveSECP256K1, notOnCurve)
	assert.Error(t, err)
}

func TestParseSignature(t *testing.T) {
	sig, err := ParseSignature("ed25519:99eUso3aSbE9tqGSTXzo3TLfKb9RkMTURrHKQ1K7Zh3BbeqPevr5E1iCbpTjqHuTFLtfxTTD5ekfVuZFzQyEQf8")
	require.NoError(t, err)
	assert.IsType(t, ED25519Signature{}, sig)
	assert.Equal(t, strings.Repeat("07", 64), hex.EncodeToString(sig.Bytes()))

	sig, err = ParseSignature("secp256k1:i7BnBnyiG5wMHtUJqzVxgXHtb46eh7cpndst5uS5pkxsKE8p8cLFjnJFoVZ2CtGjQD3wDt9VNB9puxQ1UKunvLST")
	require.NoError(t, err)
	assert.IsType(t, SECP256K1Signature{}, sig)
	assert.Len(t, sig.Bytes(), 65)

	_, err = ParseSignature("ed25519:i7BnBnyiG5wMHtUJqzVxgXHtb46eh7cpndst5uS5pkxsKE8p8cLFjnJFoVZ2CtGjQD3wDt9VNB9puxQ1UKunvLST")
	assert.Error(t, err)
}
