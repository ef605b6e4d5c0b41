package near

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

type CurveKind uint8

const (
	CurveED25519 CurveKind = iota
	CurveSECP256K1
)

func (c CurveKind) String() string {
	switch c {
	case CurveED25519:
		return "ed25519"
	case CurveSECP256K1:
		return "secp256k1"
	}
	return fmt.Sprintf("CurveKind(%d)", uint8(c))
}

func parseCurveKind(in string) (CurveKind, error) {
	switch in {
	case "ed25519":
		return CurveED25519, nil
	case "secp256k1":
		return CurveSECP256K1, nil
	}
	return 0, fmt.Errorf("unknown curve %q", in)
}

const (
	ED25519PublicKeyLength   = ed25519.PublicKeySize
	SECP256K1PublicKeyLength = 64
	ED25519SignatureLength   = ed25519.SignatureSize
	SECP256K1SignatureLength = 65
)

// PublicKey is one of ED25519PublicKey or SECP256K1PublicKey.
type PublicKey interface {
	Curve() CurveKind
	Bytes() []byte
	String() string

	isPublicKey()
}

type ED25519PublicKey [ED25519PublicKeyLength]byte

// SECP256K1PublicKey is the uncompressed point without its 0x04 prefix.
type SECP256K1PublicKey [SECP256K1PublicKeyLength]byte

func (ED25519PublicKey) Curve() CurveKind   { return CurveED25519 }
func (SECP256K1PublicKey) Curve() CurveKind { return CurveSECP256K1 }

func (k ED25519PublicKey) Bytes() []byte   { return k[:] }
func (k SECP256K1PublicKey) Bytes() []byte { return k[:] }

func (k ED25519PublicKey) String() string   { return keyString(k) }
func (k SECP256K1PublicKey) String() string { return keyString(k) }

func (ED25519PublicKey) isPublicKey()   {}
func (SECP256K1PublicKey) isPublicKey() {}

// Signature is one of ED25519Signature or SECP256K1Signature.
type Signature interface {
	Curve() CurveKind
	Bytes() []byte
	String() string

	isSignature()
}

type ED25519Signature [ED25519SignatureLength]byte

// SECP256K1Signature is r || s || v, the trailing byte being the recovery id.
type SECP256K1Signature [SECP256K1SignatureLength]byte

func (ED25519Signature) Curve() CurveKind   { return CurveED25519 }
func (SECP256K1Signature) Curve() CurveKind { return CurveSECP256K1 }

func (s ED25519Signature) Bytes() []byte   { return s[:] }
func (s SECP256K1Signature) Bytes() []byte { return s[:] }

func (s ED25519Signature) String() string   { return keyString(s) }
func (s SECP256K1Signature) String() string { return keyString(s) }

func (ED25519Signature) isSignature()   {}
func (SECP256K1Signature) isSignature() {}

func keyString(k interface {
	Curve() CurveKind
	Bytes() []byte
}) string {
	return k.Curve().String() + ":" + base58.Encode(k.Bytes())
}

func NewPublicKey(curve CurveKind, data []byte) (PublicKey, error) {
	switch curve {
	case CurveED25519:
		var out ED25519PublicKey
		if len(data) != len(out) {
			return nil, fmt.Errorf("invalid ed25519 public key length %d, expected %d", len(data), len(out))
		}
		copy(out[:], data)
		return out, nil

	case CurveSECP256K1:
		var out SECP256K1PublicKey
		if len(data) != len(out) {
			return nil, fmt.Errorf("invalid secp256k1 public key length %d, expected %d", len(data), len(out))
		}
		if _, err := secp256k1.ParsePubKey(append([]byte{0x04}, data...)); err != nil {
			return nil, fmt.Errorf("invalid secp256k1 public key: %w", err)
		}
		copy(out[:], data)
		return out, nil
	}

	return nil, fmt.Errorf("unknown curve %s", curve)
}

func NewSignature(curve CurveKind, data []byte) (Signature, error) {
	switch curve {
	case CurveED25519:
		var out ED25519Signature
		if len(data) != len(out) {
			return nil, fmt.Errorf("invalid ed25519 signature length %d, expected %d", len(data), len(out))
		}
		copy(out[:], data)
		return out, nil

	case CurveSECP256K1:
		var out SECP256K1Signature
		if len(data) != len(out) {
			return nil, fmt.Errorf("invalid secp256k1 signature length %d, expected %d", len(data), len(out))
		}
		copy(out[:], data)
		return out, nil
	}

	return nil, fmt.Errorf("unknown curve %s", curve)
}

// ParsePublicKey reads the `<curve>:<base58>` form, a missing curve prefix
// meaning ed25519.
func ParsePublicKey(in string) (PublicKey, error) {
	curve, data, err := splitKeyString(in)
	if err != nil {
		return nil, err
	}
	return NewPublicKey(curve, data)
}

func ParseSignature(in string) (Signature, error) {
	curve, data, err := splitKeyString(in)
	if err != nil {
		return nil, err
	}
	return NewSignature(curve, data)
}

func splitKeyString(in string) (CurveKind, []byte, error) {
	curve := CurveED25519
	encoded := in
	if i := strings.IndexByte(in, ':'); i >= 0 {
		var err error
		if curve, err = parseCurveKind(in[:i]); err != nil {
			return 0, nil, err
		}
		encoded = in[i+1:]
	}

	data := base58.Decode(encoded)
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("invalid base58 payload in %q", in)
	}
	return curve, data, nil
}
