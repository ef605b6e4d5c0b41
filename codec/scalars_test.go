package codec

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeUint128_RoundTrip(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		v := near.Uint128{
			Hi: rapid.Uint64().Draw(tt, "hi"),
			Lo: rapid.Uint64().Draw(tt, "lo"),
		}

		encoded := EncodeUint128(v)
		if len(encoded) != 16 {
			tt.Fatalf("expected 16 bytes, got %d", len(encoded))
		}

		if new(big.Int).SetBytes(encoded).Cmp(v.Big()) != 0 {
			tt.Fatalf("encoding %x does not match %s", encoded, v)
		}

		decoded, err := DecodeUint128(encoded)
		if err != nil {
			tt.Fatalf("decode: %s", err)
		}
		if decoded != v {
			tt.Fatalf("round trip mismatch: %s != %s", decoded, v)
		}
	})
}

func TestEncodeUint128(t *testing.T) {
	tests := []struct {
		in       near.Uint128
		expected string
	}{
		{near.Uint128{}, "00000000000000000000000000000000"},
		{near.NewUint128(7), "00000000000000000000000000000007"},
		{near.Uint128{Hi: 1}, "00000000000000010000000000000000"},
		{near.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}, "ffffffffffffffffffffffffffffffff"},
	}

	for _, test := range tests {
		t.Run(test.in.String(), func(t *testing.T) {
			assert.Equal(t, test.expected, hex.EncodeToString(EncodeUint128(test.in)))
		})
	}
}

func TestDecodeUint128_InvalidLength(t *testing.T) {
	for _, in := range [][]byte{nil, make([]byte, 15), make([]byte, 17), make([]byte, 32)} {
		_, err := DecodeUint128(in)
		assert.True(t, errors.Is(err, ErrInvalidUint128), "length %d", len(in))
	}

	_, err := BigIntFromProto(nil)
	assert.True(t, errors.Is(err, ErrInvalidUint128))
}

func TestPublicKeyToProto(t *testing.T) {
	var secp near.SECP256K1PublicKey
	secp[0] = 0x02

	tests := []struct {
		name          string
		in            near.PublicKey
		expectedCurve pbnear.CurveKind
		expectedLen   int
	}{
		{"ed25519", near.TestPublicKey(0x01), pbnear.CurveKind_ED25519, 32},
		{"secp256k1", secp, pbnear.CurveKind_SECP256K1, 64},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := PublicKeyToProto(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.expectedCurve, actual.Type)
			assert.Len(t, actual.Bytes, test.expectedLen)
			assert.Equal(t, test.in.Bytes(), actual.Bytes)
		})
	}

	_, err := PublicKeyToProto(nil)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestSignatureToProto(t *testing.T) {
	var secp near.SECP256K1Signature
	secp[64] = 1

	actual, err := SignatureToProto(near.TestSignature(0x07))
	require.NoError(t, err)
	assert.Equal(t, pbnear.CurveKind_ED25519, actual.Type)
	assert.Len(t, actual.Bytes, 64)

	actual, err = SignatureToProto(secp)
	require.NoError(t, err)
	assert.Equal(t, pbnear.CurveKind_SECP256K1, actual.Type)
	assert.Len(t, actual.Bytes, 65)
	assert.Equal(t, byte(1), actual.Bytes[64])

	_, err = SignatureToProto(nil)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestSignatureFromProto(t *testing.T) {
	sig, err := SignatureFromProto(&pbnear.Signature{Type: pbnear.CurveKind_ED25519, Bytes: make([]byte, 64)})
	require.NoError(t, err)
	assert.Equal(t, near.ED25519Signature{}, sig)

	_, err = SignatureFromProto(&pbnear.Signature{Type: pbnear.CurveKind_ED25519, Bytes: make([]byte, 65)})
	assert.Error(t, err)

	_, err = SignatureFromProto(&pbnear.Signature{Type: pbnear.CurveKind(9), Bytes: make([]byte, 64)})
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestCurveToProto(t *testing.T) {
	curve, err := CurveToProto(near.CurveSECP256K1)
	require.NoError(t, err)
	assert.Equal(t, pbnear.CurveKind_SECP256K1, curve)

	_, err = CurveToProto(near.CurveKind(3))
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestHashToProto(t *testing.T) {
	h := near.TestHash(0xab)
	actual := HashToProto(h)
	assert.Equal(t, h[:], actual.Bytes)

	h[0] = 0
	assert.Equal(t, byte(0xab), actual.Bytes[0], "wire hash must not alias the domain value")

	assert.Nil(t, HashesToProto(nil))
	assert.Len(t, HashesToProto([]near.CryptoHash{{}, {}}), 2)
}
