package codec

import (
	"errors"
	"fmt"

	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
)

var (
	// ErrUnknownVariant is returned when a domain value has no wire
	// counterpart. It is never recovered from: a new node variant requires a
	// new wire variant.
	ErrUnknownVariant = errors.New("unknown variant")

	ErrInvalidUint128       = errors.New("invalid uint128 encoding")
	ErrNestedDelegateAction = errors.New("delegate action cannot contain a delegate action")
)

func unknownVariant(kind string, v interface{}) error {
	return fmt.Errorf("%s: %w %T", kind, ErrUnknownVariant, v)
}

func HashToProto(h near.CryptoHash) *pbnear.CryptoHash {
	return &pbnear.CryptoHash{Bytes: h[:]}
}

func HashesToProto(in []near.CryptoHash) []*pbnear.CryptoHash {
	if len(in) == 0 {
		return nil
	}

	out := make([]*pbnear.CryptoHash, len(in))
	for i, h := range in {
		out[i] = HashToProto(h)
	}
	return out
}

// EncodeUint128 always returns 16 bytes, big-endian with leading zeroes.
func EncodeUint128(v near.Uint128) []byte {
	b := v.Bytes()
	return b[:]
}

func DecodeUint128(in []byte) (near.Uint128, error) {
	if len(in) != 16 {
		return near.Uint128{}, fmt.Errorf("%w: expected 16 bytes, got %d", ErrInvalidUint128, len(in))
	}

	var buf [16]byte
	copy(buf[:], in)
	return near.Uint128FromBytes(buf), nil
}

func BigIntToProto(v near.Uint128) *pbnear.BigInt {
	return &pbnear.BigInt{Bytes: EncodeUint128(v)}
}

func BigIntFromProto(in *pbnear.BigInt) (near.Uint128, error) {
	return DecodeUint128(in.GetBytes())
}

func CurveToProto(curve near.CurveKind) (pbnear.CurveKind, error) {
	switch curve {
	case near.CurveED25519:
		return pbnear.CurveKind_ED25519, nil
	case near.CurveSECP256K1:
		return pbnear.CurveKind_SECP256K1, nil
	}
	return 0, fmt.Errorf("curve: %w %s", ErrUnknownVariant, curve)
}

func PublicKeyToProto(in near.PublicKey) (*pbnear.PublicKey, error) {
	switch k := in.(type) {
	case near.ED25519PublicKey:
		return &pbnear.PublicKey{Type: pbnear.CurveKind_ED25519, Bytes: k[:]}, nil
	case near.SECP256K1PublicKey:
		return &pbnear.PublicKey{Type: pbnear.CurveKind_SECP256K1, Bytes: k[:]}, nil
	}
	return nil, unknownVariant("public key", in)
}

func SignatureToProto(in near.Signature) (*pbnear.Signature, error) {
	switch s := in.(type) {
	case near.ED25519Signature:
		return &pbnear.Signature{Type: pbnear.CurveKind_ED25519, Bytes: s[:]}, nil
	case near.SECP256K1Signature:
		return &pbnear.Signature{Type: pbnear.CurveKind_SECP256K1, Bytes: s[:]}, nil
	}
	return nil, unknownVariant("signature", in)
}

// PublicKeyFromProto checks the byte length against the curve tag.
func PublicKeyFromProto(in *pbnear.PublicKey) (near.PublicKey, error) {
	curve, err := curveFromProto(in.GetType())
	if err != nil {
		return nil, err
	}
	return near.NewPublicKey(curve, in.GetBytes())
}

func SignatureFromProto(in *pbnear.Signature) (near.Signature, error) {
	curve, err := curveFromProto(in.GetType())
	if err != nil {
		return nil, err
	}
	return near.NewSignature(curve, in.GetBytes())
}

func curveFromProto(in pbnear.CurveKind) (near.CurveKind, error) {
	switch in {
	case pbnear.CurveKind_ED25519:
		return near.CurveED25519, nil
	case pbnear.CurveKind_SECP256K1:
		return near.CurveSECP256K1, nil
	}
	return 0, fmt.Errorf("curve: %w %d", ErrUnknownVariant, int32(in))
}
