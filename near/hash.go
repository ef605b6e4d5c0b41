package near

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// CryptoHash is a sha256 digest as used throughout the chain for block, chunk,
// transaction and receipt identifiers.
type CryptoHash [32]byte

func (h CryptoHash) String() string {
	return hex.EncodeToString(h[:])
}

// Base58 is the textual form used by the node's RPC and indexer JSON.
func (h CryptoHash) Base58() string {
	return base58.Encode(h[:])
}

func ParseCryptoHash(in string) (out CryptoHash, err error) {
	data := base58.Decode(in)
	if len(data) != len(out) {
		return out, fmt.Errorf("invalid hash %q: expected %d bytes, got %d", in, len(out), len(data))
	}

	copy(out[:], data)
	return out, nil
}

func MustParseCryptoHash(in string) CryptoHash {
	h, err := ParseCryptoHash(in)
	if err != nil {
		panic(err)
	}
	return h
}

// Uint128 is the balance type of the chain (yoctoNEAR amounts, gas prices,
// stakes). It is kept as two 64-bit limbs so it never goes through a variable
// length representation.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

func NewUint128(v uint64) Uint128 {
	return Uint128{Lo: v}
}

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// ParseUint128 reads the base 10 representation the node uses for every u128
// in its JSON views.
func ParseUint128(in string) (Uint128, error) {
	v, ok := new(big.Int).SetString(in, 10)
	if !ok {
		return Uint128{}, fmt.Errorf("invalid u128 %q", in)
	}

	if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return Uint128{}, fmt.Errorf("u128 %q out of range", in)
	}

	return Uint128FromBig(v), nil
}

func Uint128FromBig(v *big.Int) Uint128 {
	var buf [16]byte
	v.FillBytes(buf[:])
	return Uint128FromBytes(buf)
}

func Uint128FromBytes(in [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(in[0:8]),
		Lo: binary.BigEndian.Uint64(in[8:16]),
	}
}

// Bytes is the 16 bytes big-endian encoding of the value, leading zeroes included.
func (u Uint128) Bytes() (out [16]byte) {
	binary.BigEndian.PutUint64(out[0:8], u.Hi)
	binary.BigEndian.PutUint64(out[8:16], u.Lo)
	return
}

func (u Uint128) Big() *big.Int {
	b := u.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func (u Uint128) String() string {
	return u.Big().String()
}

func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}
