package near

import (
	"encoding/binary"
	"testing"
)

func TestHash(fill byte) (out CryptoHash) {
	for i := range out {
		out[i] = fill
	}
	return
}

// TestBlockHash is a hash unique to the height, with the height big-endian
// in its last 8 bytes.
func TestBlockHash(height uint64) (out CryptoHash) {
	out[0] = 0xb1
	binary.BigEndian.PutUint64(out[24:], height)
	return
}

func TestPublicKey(fill byte) ED25519PublicKey {
	var out ED25519PublicKey
	for i := range out {
		out[i] = fill
	}
	return out
}

func TestSignature(fill byte) ED25519Signature {
	var out ED25519Signature
	for i := range out {
		out[i] = fill
	}
	return out
}

// TestTransferBlock builds the block at height with one shard whose chunk
// holds a single successful transfer of amount yoctoNEAR from alice.near to
// bob.near.
func TestTransferBlock(t testing.TB, height uint64, amount uint64) *Block {
	t.Helper()

	parent := height - 1
	ordinal := height + 1000
	timestamp := uint64(1600000000000000000) + height*1000000000

	chunkHeader := &ChunkHeader{
		ChunkHash:      TestHash(0xc1),
		PrevBlockHash:  TestBlockHash(parent),
		HeightCreated:  height,
		HeightIncluded: height,
		GasUsed:        424555062500,
		GasLimit:       1000000000000000,
		BalanceBurnt:   NewUint128(4245550625000000000),
		Signature:      TestSignature(0x51),
	}

	receiptID := TestHash(0xe1)
	transfer := TransferAction{Deposit: NewUint128(amount)}

	return &Block{
		Author: "validator.near",
		Header: &BlockHeader{
			Height:           height,
			PrevHeight:       &parent,
			EpochID:          TestHash(0xe0),
			NextEpochID:      TestHash(0xe2),
			Hash:             TestBlockHash(height),
			PrevHash:         TestBlockHash(parent),
			ChunksIncluded:   1,
			Timestamp:        timestamp,
			TimestampNanosec: timestamp,
			ChunkMask:        []bool{true},
			GasPrice:         NewUint128(100000000),
			BlockOrdinal:     &ordinal,
			TotalSupply:      Uint128{Hi: 56, Lo: 1},
			LastFinalBlock:   TestBlockHash(parent - 1),
			LastDSFinalBlock: TestBlockHash(parent),
			Approvals:        []Signature{TestSignature(0xa1), nil},
			Signature:        TestSignature(0x50),

			LatestProtocolVersion: 58,
		},
		Chunks: []*ChunkHeader{chunkHeader},
		Shards: []*Shard{
			{
				ShardID: 0,
				Chunk: &Chunk{
					Author: "validator.near",
					Header: chunkHeader,
					Transactions: []*TransactionWithOutcome{
						{
							Transaction: &SignedTransaction{
								SignerID:   "alice.near",
								PublicKey:  TestPublicKey(0x01),
								Nonce:      1,
								ReceiverID: "bob.near",
								Actions:    []Action{transfer},
								Signature:  TestSignature(0x52),
								Hash:       TestHash(0xd1),
							},
							Outcome: &ExecutionOutcomeWithOptionalReceipt{
								ExecutionOutcome: &ExecutionOutcomeWithID{
									Proof:     MerklePath{{Hash: TestHash(0xf1), Direction: DirectionRight}},
									BlockHash: TestBlockHash(height),
									ID:        TestHash(0xd1),
									Outcome: &ExecutionOutcome{
										ReceiptIDs:  []CryptoHash{receiptID},
										GasBurnt:    223182562500,
										TokensBurnt: NewUint128(2231825625000000000),
										ExecutorID:  "alice.near",
										Status:      ExecutionStatusSuccessReceiptID{ReceiptID: receiptID},
										Metadata:    ExecutionMetadata{Version: 1},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
