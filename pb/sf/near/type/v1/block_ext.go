package pbnear

import (
	"encoding/hex"
	"fmt"
	"time"
)

func (b *Block) ID() string {
	return b.GetHeader().GetHash().AsString()
}

func (b *Block) Num() uint64 {
	return b.GetHeader().GetHeight()
}

func (b *Block) PreviousID() string {
	return b.GetHeader().GetPrevHash().AsString()
}

func (b *Block) PreviousNum() uint64 {
	if h := b.GetHeader(); h != nil {
		return h.PrevHeight
	}
	return 0
}

// LIBID is the hash of the last final block as reported by the producing node.
func (b *Block) LIBID() string {
	return b.GetHeader().GetLastFinalBlock().AsString()
}

func (b *Block) Time() time.Time {
	if h := b.GetHeader(); h != nil {
		return time.Unix(0, int64(h.TimestampNanosec)).UTC()
	}
	return time.Unix(0, 0).UTC()
}

// AsRef renders the block as `#<height> (<hash>)` for logs.
func (b *Block) AsRef() string {
	return fmt.Sprintf("#%d (%s)", b.Num(), b.ID())
}

func (h *CryptoHash) AsString() string {
	return hex.EncodeToString(h.GetBytes())
}
