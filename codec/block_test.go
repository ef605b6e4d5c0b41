package codec

import (
	"errors"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestBlockToProto_TransferBlock(t *testing.T) {
	in := near.TestTransferBlock(t, 100, 7)

	block, err := BlockToProto(in)
	require.NoError(t, err)

	assert.Equal(t, uint64(100), block.Num())
	assert.Equal(t, uint64(99), block.PreviousNum())
	assert.Equal(t, in.Header.Hash.String(), block.ID())
	assert.Equal(t, in.Header.PrevHash.String(), block.PreviousID())
	assert.Equal(t, in.Header.LastFinalBlock.String(), block.LIBID())
	assert.Equal(t, uint64(1100), block.Header.BlockOrdinal)
	assert.Equal(t, uint64(0), block.Header.LastFinalBlockHeight)
	assert.Equal(t, uint64(0), block.Header.LastDsFinalBlockHeight)
	assert.Nil(t, block.Header.EpochSyncDataHash)

	require.Len(t, block.Shards, 1)
	require.NotNil(t, block.Shards[0].Chunk)
	require.Len(t, block.Shards[0].Chunk.Transactions, 1)

	trx := block.Shards[0].Chunk.Transactions[0]
	assert.Equal(t, "alice.near", trx.Transaction.SignerId)
	assert.Equal(t, "bob.near", trx.Transaction.ReceiverId)

	require.Len(t, trx.Transaction.Actions, 1)
	transfer, ok := trx.Transaction.Actions[0].Action.(*pbnear.Action_Transfer)
	require.True(t, ok)
	assert.Equal(t, EncodeUint128(near.NewUint128(7)), transfer.Transfer.Deposit.Bytes)

	status, ok := trx.Outcome.ExecutionOutcome.Outcome.Status.(*pbnear.ExecutionOutcome_SuccessReceiptId)
	require.True(t, ok)
	receiptID := near.TestHash(0xe1)
	assert.Equal(t, receiptID[:], status.SuccessReceiptId.Id.Bytes)
	assert.Equal(t, pbnear.ExecutionMetadata_ExecutionMetadataV1, trx.Outcome.ExecutionOutcome.Outcome.Metadata)
}

func TestBlockToProto_RoundTrip(t *testing.T) {
	for _, height := range []uint64{2, 100, 78_000_000} {
		block, err := BlockToProto(near.TestTransferBlock(t, height, height*3))
		require.NoError(t, err)

		payload, err := proto.Marshal(block)
		require.NoError(t, err)

		decoded := &pbnear.Block{}
		require.NoError(t, proto.Unmarshal(payload, decoded))
		assert.True(t, proto.Equal(block, decoded), "block #%d does not survive a wire round trip", height)
	}
}

func TestBlockHeaderToProto_ApprovalElision(t *testing.T) {
	a := near.TestSignature(0xaa)
	b := near.TestSignature(0xbb)

	header := near.TestTransferBlock(t, 10, 1).Header
	header.Approvals = []near.Signature{nil, a, nil, b}

	actual, err := BlockHeaderToProto(header)
	require.NoError(t, err)

	require.Len(t, actual.Approvals, 2)
	assert.Equal(t, a[:], actual.Approvals[0].Bytes)
	assert.Equal(t, b[:], actual.Approvals[1].Bytes)

	header.Approvals = []near.Signature{nil, nil}
	actual, err = BlockHeaderToProto(header)
	require.NoError(t, err)
	assert.Empty(t, actual.Approvals)
}

func TestBlockHeaderToProto_OptionalFields(t *testing.T) {
	header := near.TestTransferBlock(t, 10, 1).Header
	header.PrevHeight = nil
	header.BlockOrdinal = nil
	syncHash := near.TestHash(0x5a)
	header.EpochSyncDataHash = &syncHash

	actual, err := BlockHeaderToProto(header)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), actual.PrevHeight)
	assert.Equal(t, uint64(0), actual.BlockOrdinal)
	assert.Equal(t, syncHash[:], actual.EpochSyncDataHash)
}

func TestBlockHeaderToProto_WireFields(t *testing.T) {
	header := near.TestTransferBlock(t, 300, 1).Header
	header.Approvals = []near.Signature{near.TestSignature(0x01), nil, near.TestSignature(0x02)}

	actual, err := BlockHeaderToProto(header)
	require.NoError(t, err)

	payload, err := proto.Marshal(actual)
	require.NoError(t, err)

	fields := map[protowire.Number]int{}
	var height uint64
	var gasPrice []byte

	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		require.True(t, n > 0, "invalid tag")
		payload = payload[n:]
		fields[num]++

		switch {
		case num == 1 && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(payload)
			require.True(t, m > 0)
			height = v
			payload = payload[m:]

		case num == 19 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(payload)
			require.True(t, m > 0)
			gasPrice = v
			payload = payload[m:]

		default:
			m := protowire.ConsumeFieldValue(num, typ, payload)
			require.True(t, m >= 0, "invalid field %d", num)
			payload = payload[m:]
		}
	}

	assert.Equal(t, uint64(300), height)
	assert.Equal(t, 2, fields[30], "only present approvals reach the wire")
	assert.Equal(t, 1, fields[31])
	assert.Equal(t, 0, fields[23], "last final block height is never set")
	assert.Equal(t, 0, fields[25], "last ds final block height is never set")

	// BigInt{bytes: 16 bytes} as the embedded gas_price message
	num, typ, n := protowire.ConsumeTag(gasPrice)
	require.True(t, n > 0)
	assert.Equal(t, protowire.Number(1), num)
	assert.Equal(t, protowire.BytesType, typ)
	value, m := protowire.ConsumeBytes(gasPrice[n:])
	require.True(t, m > 0)
	assert.Len(t, value, 16)
}

func TestBlockToProto_Errors(t *testing.T) {
	_, err := BlockToProto(&near.Block{})
	assert.Error(t, err)

	in := near.TestTransferBlock(t, 10, 1)
	in.Shards[0].Chunk.Transactions[0].Outcome.ExecutionOutcome.Outcome.Metadata.Version = 4
	_, err = BlockToProto(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	assert.Contains(t, err.Error(), "block #10")

	in = near.TestTransferBlock(t, 10, 1)
	in.Shards[0].Chunk.Transactions[0].Outcome.ExecutionOutcome.Outcome.Status = nil
	_, err = BlockToProto(in)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestExecutionMetadataToProto(t *testing.T) {
	for _, version := range []uint32{1, 2, 3} {
		actual, err := ExecutionMetadataToProto(near.ExecutionMetadata{Version: version})
		require.NoError(t, err)
		assert.Equal(t, pbnear.ExecutionMetadata_ExecutionMetadataV1, actual)
	}

	for _, version := range []uint32{0, 4} {
		_, err := ExecutionMetadataToProto(near.ExecutionMetadata{Version: version})
		assert.True(t, errors.Is(err, ErrUnknownVariant), "version %d", version)
	}
}

func TestReceiptToProto(t *testing.T) {
	actual, err := ReceiptToProto(&near.Receipt{
		PredecessorID: "system",
		ReceiverID:    "bob.near",
		ReceiptID:     near.TestHash(0x10),
		Receipt:       near.DataReceipt{DataID: near.TestHash(0x11)},
	})
	require.NoError(t, err)

	data, ok := actual.Receipt.(*pbnear.Receipt_Data)
	require.True(t, ok)
	assert.NotNil(t, data.Data.Data)
	assert.Empty(t, data.Data.Data)

	actual, err = ReceiptToProto(&near.Receipt{
		ReceiptID: near.TestHash(0x12),
		Receipt: near.ActionReceipt{
			SignerID:            "alice.near",
			SignerPublicKey:     near.TestPublicKey(0x01),
			GasPrice:            near.NewUint128(100),
			OutputDataReceivers: []*near.DataReceiver{{DataID: near.TestHash(0x13), ReceiverID: "carol.near"}},
			InputDataIDs:        []near.CryptoHash{near.TestHash(0x14)},
			Actions:             []near.Action{near.CreateAccountAction{}},
		},
	})
	require.NoError(t, err)

	action, ok := actual.Receipt.(*pbnear.Receipt_Action)
	require.True(t, ok)
	assert.Equal(t, "alice.near", action.Action.SignerId)
	require.Len(t, action.Action.OutputDataReceivers, 1)
	assert.Equal(t, "carol.near", action.Action.OutputDataReceivers[0].ReceiverId)
	assert.Len(t, action.Action.InputDataIds, 1)
	assert.Len(t, action.Action.Actions, 1)

	_, err = ReceiptToProto(&near.Receipt{})
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestMerklePathToProto(t *testing.T) {
	actual, err := MerklePathToProto(near.MerklePath{
		{Hash: near.TestHash(0x01), Direction: near.DirectionLeft},
		{Hash: near.TestHash(0x02), Direction: near.DirectionRight},
	})
	require.NoError(t, err)
	require.Len(t, actual.Path, 2)
	assert.Equal(t, pbnear.Direction_left, actual.Path[0].Direction)
	assert.Equal(t, pbnear.Direction_right, actual.Path[1].Direction)

	actual, err = MerklePathToProto(nil)
	require.NoError(t, err)
	assert.NotNil(t, actual)
	assert.Empty(t, actual.Path)
}
