package codec

import (
	"fmt"

	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
	"go.uber.org/zap"
)

// BlockToProto projects a whole StreamerMessage onto the wire block. The
// domain block is only read, the returned message shares no memory with it
// except for byte slices.
func BlockToProto(in *near.Block) (*pbnear.Block, error) {
	if in.Header == nil {
		return nil, fmt.Errorf("block: missing header")
	}

	header, err := BlockHeaderToProto(in.Header)
	if err != nil {
		return nil, fmt.Errorf("block #%d: header: %w", in.Header.Height, err)
	}

	out := &pbnear.Block{
		Author: in.Author,
		Header: header,
	}

	if len(in.Chunks) > 0 {
		out.ChunkHeaders = make([]*pbnear.ChunkHeader, len(in.Chunks))
		for i, chunk := range in.Chunks {
			if out.ChunkHeaders[i], err = ChunkHeaderToProto(chunk); err != nil {
				return nil, fmt.Errorf("block #%d: chunk header %d: %w", in.Header.Height, i, err)
			}
		}
	}

	if len(in.Shards) > 0 {
		out.Shards = make([]*pbnear.IndexerShard, len(in.Shards))
		for i, shard := range in.Shards {
			if out.Shards[i], err = ShardToProto(shard); err != nil {
				return nil, fmt.Errorf("block #%d: shard %d: %w", in.Header.Height, shard.ShardID, err)
			}
		}
	}

	if len(in.StateChanges) > 0 {
		out.StateChanges = make([]*pbnear.StateChangeWithCause, len(in.StateChanges))
		for i, change := range in.StateChanges {
			if out.StateChanges[i], err = StateChangeToProto(change); err != nil {
				return nil, fmt.Errorf("block #%d: state change %d: %w", in.Header.Height, i, err)
			}
		}
	}

	return out, nil
}

// BlockHeaderToProto elides absent approvals: the wire list only holds the
// signatures of producers that approved, in producer order.
//
// LastFinalBlockHeight and LastDsFinalBlockHeight are not known to the
// streamer message and are always 0.
func BlockHeaderToProto(in *near.BlockHeader) (*pbnear.BlockHeader, error) {
	validatorProposals, err := ValidatorStakesToProto(in.ValidatorProposals)
	if err != nil {
		return nil, fmt.Errorf("validator proposals: %w", err)
	}

	signature, err := SignatureToProto(in.Signature)
	if err != nil {
		return nil, err
	}

	out := &pbnear.BlockHeader{
		Height:                in.Height,
		EpochId:               HashToProto(in.EpochID),
		NextEpochId:           HashToProto(in.NextEpochID),
		Hash:                  HashToProto(in.Hash),
		PrevHash:              HashToProto(in.PrevHash),
		PrevStateRoot:         HashToProto(in.PrevStateRoot),
		ChunkReceiptsRoot:     HashToProto(in.ChunkReceiptsRoot),
		ChunkHeadersRoot:      HashToProto(in.ChunkHeadersRoot),
		ChunkTxRoot:           HashToProto(in.ChunkTxRoot),
		OutcomeRoot:           HashToProto(in.OutcomeRoot),
		ChunksIncluded:        in.ChunksIncluded,
		ChallengesRoot:        HashToProto(in.ChallengesRoot),
		Timestamp:             in.Timestamp,
		TimestampNanosec:      in.TimestampNanosec,
		RandomValue:           HashToProto(in.RandomValue),
		ValidatorProposals:    validatorProposals,
		ChunkMask:             in.ChunkMask,
		GasPrice:              BigIntToProto(in.GasPrice),
		TotalSupply:           BigIntToProto(in.TotalSupply),
		LastFinalBlock:        HashToProto(in.LastFinalBlock),
		LastDsFinalBlock:      HashToProto(in.LastDSFinalBlock),
		NextBpHash:            HashToProto(in.NextBPHash),
		BlockMerkleRoot:       HashToProto(in.BlockMerkleRoot),
		Signature:             signature,
		LatestProtocolVersion: in.LatestProtocolVersion,
	}

	if in.PrevHeight != nil {
		out.PrevHeight = *in.PrevHeight
	}

	if in.BlockOrdinal != nil {
		out.BlockOrdinal = *in.BlockOrdinal
	}

	if in.EpochSyncDataHash != nil {
		out.EpochSyncDataHash = in.EpochSyncDataHash[:]
	}

	if len(in.ChallengesResult) > 0 {
		out.ChallengesResult = make([]*pbnear.SlashedValidator, len(in.ChallengesResult))
		for i, slashed := range in.ChallengesResult {
			out.ChallengesResult[i] = &pbnear.SlashedValidator{
				AccountId:    slashed.AccountID,
				IsDoubleSign: slashed.IsDoubleSign,
			}
		}
	}

	for i, approval := range in.Approvals {
		if approval == nil {
			continue
		}

		sig, err := SignatureToProto(approval)
		if err != nil {
			return nil, fmt.Errorf("approval %d: %w", i, err)
		}
		out.Approvals = append(out.Approvals, sig)
	}

	if elided := len(in.Approvals) - len(out.Approvals); elided > 0 {
		zlog.Debug("elided absent approvals", zap.Uint64("height", in.Height), zap.Int("elided", elided), zap.Int("kept", len(out.Approvals)))
	}

	return out, nil
}

func ValidatorStakesToProto(in []*near.ValidatorStake) ([]*pbnear.ValidatorStake, error) {
	if len(in) == 0 {
		return nil, nil
	}

	out := make([]*pbnear.ValidatorStake, len(in))
	for i, stake := range in {
		publicKey, err := PublicKeyToProto(stake.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("validator stake %d: %w", i, err)
		}

		out[i] = &pbnear.ValidatorStake{
			AccountId: stake.AccountID,
			PublicKey: publicKey,
			Stake:     BigIntToProto(stake.Stake),
		}
	}
	return out, nil
}

// ChunkHeaderToProto keeps chunk level hashes as raw bytes, not CryptoHash
// messages, as the wire chunk header always did.
func ChunkHeaderToProto(in *near.ChunkHeader) (*pbnear.ChunkHeader, error) {
	if in == nil {
		return nil, fmt.Errorf("missing chunk header")
	}

	validatorProposals, err := ValidatorStakesToProto(in.ValidatorProposals)
	if err != nil {
		return nil, fmt.Errorf("validator proposals: %w", err)
	}

	signature, err := SignatureToProto(in.Signature)
	if err != nil {
		return nil, err
	}

	return &pbnear.ChunkHeader{
		ChunkHash:            bytesOf(in.ChunkHash),
		PrevBlockHash:        bytesOf(in.PrevBlockHash),
		OutcomeRoot:          bytesOf(in.OutcomeRoot),
		PrevStateRoot:        bytesOf(in.PrevStateRoot),
		EncodedMerkleRoot:    bytesOf(in.EncodedMerkleRoot),
		EncodedLength:        in.EncodedLength,
		HeightCreated:        in.HeightCreated,
		HeightIncluded:       in.HeightIncluded,
		ShardId:              in.ShardID,
		GasUsed:              in.GasUsed,
		GasLimit:             in.GasLimit,
		ValidatorReward:      BigIntToProto(in.ValidatorReward),
		BalanceBurnt:         BigIntToProto(in.BalanceBurnt),
		OutgoingReceiptsRoot: bytesOf(in.OutgoingReceiptsRoot),
		TxRoot:               bytesOf(in.TxRoot),
		ValidatorProposals:   validatorProposals,
		Signature:            signature,
	}, nil
}

func bytesOf(h near.CryptoHash) []byte {
	return h[:]
}

func ShardToProto(in *near.Shard) (*pbnear.IndexerShard, error) {
	out := &pbnear.IndexerShard{ShardId: in.ShardID}

	if in.Chunk != nil {
		chunk, err := ChunkToProto(in.Chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk: %w", err)
		}
		out.Chunk = chunk
	}

	if len(in.ReceiptExecutionOutcomes) > 0 {
		out.ReceiptExecutionOutcomes = make([]*pbnear.IndexerExecutionOutcomeWithReceipt, len(in.ReceiptExecutionOutcomes))
		for i, outcome := range in.ReceiptExecutionOutcomes {
			executionOutcome, err := ExecutionOutcomeWithIDToProto(outcome.ExecutionOutcome)
			if err != nil {
				return nil, fmt.Errorf("receipt execution outcome %d: %w", i, err)
			}

			receipt, err := ReceiptToProto(outcome.Receipt)
			if err != nil {
				return nil, fmt.Errorf("receipt execution outcome %d: receipt: %w", i, err)
			}

			out.ReceiptExecutionOutcomes[i] = &pbnear.IndexerExecutionOutcomeWithReceipt{
				ExecutionOutcome: executionOutcome,
				Receipt:          receipt,
			}
		}
	}

	return out, nil
}

func ChunkToProto(in *near.Chunk) (*pbnear.IndexerChunk, error) {
	header, err := ChunkHeaderToProto(in.Header)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	out := &pbnear.IndexerChunk{
		Author: in.Author,
		Header: header,
	}

	if len(in.Transactions) > 0 {
		out.Transactions = make([]*pbnear.IndexerTransactionWithOutcome, len(in.Transactions))
		for i, trx := range in.Transactions {
			if out.Transactions[i], err = TransactionWithOutcomeToProto(trx); err != nil {
				return nil, fmt.Errorf("transaction %d: %w", i, err)
			}
		}
	}

	if len(in.Receipts) > 0 {
		out.Receipts = make([]*pbnear.Receipt, len(in.Receipts))
		for i, receipt := range in.Receipts {
			if out.Receipts[i], err = ReceiptToProto(receipt); err != nil {
				return nil, fmt.Errorf("receipt %d: %w", i, err)
			}
		}
	}

	return out, nil
}

func TransactionWithOutcomeToProto(in *near.TransactionWithOutcome) (*pbnear.IndexerTransactionWithOutcome, error) {
	trx, err := TransactionToProto(in.Transaction)
	if err != nil {
		return nil, err
	}

	if in.Outcome == nil {
		return nil, fmt.Errorf("missing outcome")
	}

	executionOutcome, err := ExecutionOutcomeWithIDToProto(in.Outcome.ExecutionOutcome)
	if err != nil {
		return nil, fmt.Errorf("outcome: %w", err)
	}

	out := &pbnear.IndexerTransactionWithOutcome{
		Transaction: trx,
		Outcome: &pbnear.IndexerExecutionOutcomeWithOptionalReceipt{
			ExecutionOutcome: executionOutcome,
		},
	}

	if in.Outcome.Receipt != nil {
		if out.Outcome.Receipt, err = ReceiptToProto(in.Outcome.Receipt); err != nil {
			return nil, fmt.Errorf("outcome: receipt: %w", err)
		}
	}

	return out, nil
}

func TransactionToProto(in *near.SignedTransaction) (*pbnear.SignedTransaction, error) {
	if in == nil {
		return nil, fmt.Errorf("missing transaction")
	}

	publicKey, err := PublicKeyToProto(in.PublicKey)
	if err != nil {
		return nil, err
	}

	actions, err := ActionsToProto(in.Actions)
	if err != nil {
		return nil, err
	}

	signature, err := SignatureToProto(in.Signature)
	if err != nil {
		return nil, err
	}

	return &pbnear.SignedTransaction{
		SignerId:   in.SignerID,
		PublicKey:  publicKey,
		Nonce:      in.Nonce,
		ReceiverId: in.ReceiverID,
		Actions:    actions,
		Signature:  signature,
		Hash:       HashToProto(in.Hash),
	}, nil
}
