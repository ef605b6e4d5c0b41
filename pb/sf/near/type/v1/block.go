package pbnear

import (
	"github.com/golang/protobuf/proto"
)

type CurveKind int32

const (
	CurveKind_ED25519   CurveKind = 0
	CurveKind_SECP256K1 CurveKind = 1
)

var CurveKind_name = map[int32]string{
	0: "ED25519",
	1: "SECP256K1",
}

var CurveKind_value = map[string]int32{
	"ED25519":   0,
	"SECP256K1": 1,
}

func (x CurveKind) String() string {
	return proto.EnumName(CurveKind_name, int32(x))
}

type Block struct {
	Author       string                  `protobuf:"bytes,1,opt,name=author,proto3" json:"author,omitempty"`
	Header       *BlockHeader            `protobuf:"bytes,2,opt,name=header,proto3" json:"header,omitempty"`
	ChunkHeaders []*ChunkHeader          `protobuf:"bytes,3,rep,name=chunk_headers,json=chunkHeaders,proto3" json:"chunk_headers,omitempty"`
	Shards       []*IndexerShard         `protobuf:"bytes,4,rep,name=shards,proto3" json:"shards,omitempty"`
	StateChanges []*StateChangeWithCause `protobuf:"bytes,5,rep,name=state_changes,json=stateChanges,proto3" json:"state_changes,omitempty"`
}

func (m *Block) Reset()         { *m = Block{} }
func (m *Block) String() string { return proto.CompactTextString(m) }
func (*Block) ProtoMessage()    {}

func (m *Block) GetHeader() *BlockHeader {
	if m != nil {
		return m.Header
	}
	return nil
}

func (m *Block) GetShards() []*IndexerShard {
	if m != nil {
		return m.Shards
	}
	return nil
}

type BlockHeader struct {
	Height                 uint64              `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	PrevHeight             uint64              `protobuf:"varint,2,opt,name=prev_height,json=prevHeight,proto3" json:"prev_height,omitempty"`
	EpochId                *CryptoHash         `protobuf:"bytes,3,opt,name=epoch_id,json=epochId,proto3" json:"epoch_id,omitempty"`
	NextEpochId            *CryptoHash         `protobuf:"bytes,4,opt,name=next_epoch_id,json=nextEpochId,proto3" json:"next_epoch_id,omitempty"`
	Hash                   *CryptoHash         `protobuf:"bytes,5,opt,name=hash,proto3" json:"hash,omitempty"`
	PrevHash               *CryptoHash         `protobuf:"bytes,6,opt,name=prev_hash,json=prevHash,proto3" json:"prev_hash,omitempty"`
	PrevStateRoot          *CryptoHash         `protobuf:"bytes,7,opt,name=prev_state_root,json=prevStateRoot,proto3" json:"prev_state_root,omitempty"`
	ChunkReceiptsRoot      *CryptoHash         `protobuf:"bytes,8,opt,name=chunk_receipts_root,json=chunkReceiptsRoot,proto3" json:"chunk_receipts_root,omitempty"`
	ChunkHeadersRoot       *CryptoHash         `protobuf:"bytes,9,opt,name=chunk_headers_root,json=chunkHeadersRoot,proto3" json:"chunk_headers_root,omitempty"`
	ChunkTxRoot            *CryptoHash         `protobuf:"bytes,10,opt,name=chunk_tx_root,json=chunkTxRoot,proto3" json:"chunk_tx_root,omitempty"`
	OutcomeRoot            *CryptoHash         `protobuf:"bytes,11,opt,name=outcome_root,json=outcomeRoot,proto3" json:"outcome_root,omitempty"`
	ChunksIncluded         uint64              `protobuf:"varint,12,opt,name=chunks_included,json=chunksIncluded,proto3" json:"chunks_included,omitempty"`
	ChallengesRoot         *CryptoHash         `protobuf:"bytes,13,opt,name=challenges_root,json=challengesRoot,proto3" json:"challenges_root,omitempty"`
	Timestamp              uint64              `protobuf:"varint,14,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	TimestampNanosec       uint64              `protobuf:"varint,15,opt,name=timestamp_nanosec,json=timestampNanosec,proto3" json:"timestamp_nanosec,omitempty"`
	RandomValue            *CryptoHash         `protobuf:"bytes,16,opt,name=random_value,json=randomValue,proto3" json:"random_value,omitempty"`
	ValidatorProposals     []*ValidatorStake   `protobuf:"bytes,17,rep,name=validator_proposals,json=validatorProposals,proto3" json:"validator_proposals,omitempty"`
	ChunkMask              []bool              `protobuf:"varint,18,rep,packed,name=chunk_mask,json=chunkMask,proto3" json:"chunk_mask,omitempty"`
	GasPrice               *BigInt             `protobuf:"bytes,19,opt,name=gas_price,json=gasPrice,proto3" json:"gas_price,omitempty"`
	BlockOrdinal           uint64              `protobuf:"varint,20,opt,name=block_ordinal,json=blockOrdinal,proto3" json:"block_ordinal,omitempty"`
	TotalSupply            *BigInt             `protobuf:"bytes,21,opt,name=total_supply,json=totalSupply,proto3" json:"total_supply,omitempty"`
	ChallengesResult       []*SlashedValidator `protobuf:"bytes,22,rep,name=challenges_result,json=challengesResult,proto3" json:"challenges_result,omitempty"`
	LastFinalBlockHeight   uint64              `protobuf:"varint,23,opt,name=last_final_block_height,json=lastFinalBlockHeight,proto3" json:"last_final_block_height,omitempty"`
	LastFinalBlock         *CryptoHash         `protobuf:"bytes,24,opt,name=last_final_block,json=lastFinalBlock,proto3" json:"last_final_block,omitempty"`
	LastDsFinalBlockHeight uint64              `protobuf:"varint,25,opt,name=last_ds_final_block_height,json=lastDsFinalBlockHeight,proto3" json:"last_ds_final_block_height,omitempty"`
	LastDsFinalBlock       *CryptoHash         `protobuf:"bytes,26,opt,name=last_ds_final_block,json=lastDsFinalBlock,proto3" json:"last_ds_final_block,omitempty"`
	NextBpHash             *CryptoHash         `protobuf:"bytes,27,opt,name=next_bp_hash,json=nextBpHash,proto3" json:"next_bp_hash,omitempty"`
	BlockMerkleRoot        *CryptoHash         `protobuf:"bytes,28,opt,name=block_merkle_root,json=blockMerkleRoot,proto3" json:"block_merkle_root,omitempty"`
	EpochSyncDataHash      []byte              `protobuf:"bytes,29,opt,name=epoch_sync_data_hash,json=epochSyncDataHash,proto3" json:"epoch_sync_data_hash,omitempty"`
	Approvals              []*Signature        `protobuf:"bytes,30,rep,name=approvals,proto3" json:"approvals,omitempty"`
	Signature              *Signature          `protobuf:"bytes,31,opt,name=signature,proto3" json:"signature,omitempty"`
	LatestProtocolVersion  uint32              `protobuf:"varint,32,opt,name=latest_protocol_version,json=latestProtocolVersion,proto3" json:"latest_protocol_version,omitempty"`
}

func (m *BlockHeader) Reset()         { *m = BlockHeader{} }
func (m *BlockHeader) String() string { return proto.CompactTextString(m) }
func (*BlockHeader) ProtoMessage()    {}

func (m *BlockHeader) GetHeight() uint64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *BlockHeader) GetHash() *CryptoHash {
	if m != nil {
		return m.Hash
	}
	return nil
}

func (m *BlockHeader) GetPrevHash() *CryptoHash {
	if m != nil {
		return m.PrevHash
	}
	return nil
}

func (m *BlockHeader) GetLastFinalBlock() *CryptoHash {
	if m != nil {
		return m.LastFinalBlock
	}
	return nil
}

func (m *BlockHeader) GetApprovals() []*Signature {
	if m != nil {
		return m.Approvals
	}
	return nil
}

type BigInt struct {
	Bytes []byte `protobuf:"bytes,1,opt,name=bytes,proto3" json:"bytes,omitempty"`
}

func (m *BigInt) Reset()         { *m = BigInt{} }
func (m *BigInt) String() string { return proto.CompactTextString(m) }
func (*BigInt) ProtoMessage()    {}

func (m *BigInt) GetBytes() []byte {
	if m != nil {
		return m.Bytes
	}
	return nil
}

type CryptoHash struct {
	Bytes []byte `protobuf:"bytes,1,opt,name=bytes,proto3" json:"bytes,omitempty"`
}

func (m *CryptoHash) Reset()         { *m = CryptoHash{} }
func (m *CryptoHash) String() string { return proto.CompactTextString(m) }
func (*CryptoHash) ProtoMessage()    {}

func (m *CryptoHash) GetBytes() []byte {
	if m != nil {
		return m.Bytes
	}
	return nil
}

type Signature struct {
	Type  CurveKind `protobuf:"varint,1,opt,name=type,proto3,enum=sf.near.type.v1.CurveKind" json:"type,omitempty"`
	Bytes []byte    `protobuf:"bytes,2,opt,name=bytes,proto3" json:"bytes,omitempty"`
}

func (m *Signature) Reset()         { *m = Signature{} }
func (m *Signature) String() string { return proto.CompactTextString(m) }
func (*Signature) ProtoMessage()    {}

func (m *Signature) GetType() CurveKind {
	if m != nil {
		return m.Type
	}
	return CurveKind_ED25519
}

func (m *Signature) GetBytes() []byte {
	if m != nil {
		return m.Bytes
	}
	return nil
}

type PublicKey struct {
	Type  CurveKind `protobuf:"varint,1,opt,name=type,proto3,enum=sf.near.type.v1.CurveKind" json:"type,omitempty"`
	Bytes []byte    `protobuf:"bytes,2,opt,name=bytes,proto3" json:"bytes,omitempty"`
}

func (m *PublicKey) Reset()         { *m = PublicKey{} }
func (m *PublicKey) String() string { return proto.CompactTextString(m) }
func (*PublicKey) ProtoMessage()    {}

func (m *PublicKey) GetType() CurveKind {
	if m != nil {
		return m.Type
	}
	return CurveKind_ED25519
}

func (m *PublicKey) GetBytes() []byte {
	if m != nil {
		return m.Bytes
	}
	return nil
}

type ValidatorStake struct {
	AccountId string     `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	PublicKey *PublicKey `protobuf:"bytes,2,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	Stake     *BigInt    `protobuf:"bytes,3,opt,name=stake,proto3" json:"stake,omitempty"`
}

func (m *ValidatorStake) Reset()         { *m = ValidatorStake{} }
func (m *ValidatorStake) String() string { return proto.CompactTextString(m) }
func (*ValidatorStake) ProtoMessage()    {}

type SlashedValidator struct {
	AccountId    string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	IsDoubleSign bool   `protobuf:"varint,2,opt,name=is_double_sign,json=isDoubleSign,proto3" json:"is_double_sign,omitempty"`
}

func (m *SlashedValidator) Reset()         { *m = SlashedValidator{} }
func (m *SlashedValidator) String() string { return proto.CompactTextString(m) }
func (*SlashedValidator) ProtoMessage()    {}

type ChunkHeader struct {
	ChunkHash            []byte            `protobuf:"bytes,1,opt,name=chunk_hash,json=chunkHash,proto3" json:"chunk_hash,omitempty"`
	PrevBlockHash        []byte            `protobuf:"bytes,2,opt,name=prev_block_hash,json=prevBlockHash,proto3" json:"prev_block_hash,omitempty"`
	OutcomeRoot          []byte            `protobuf:"bytes,3,opt,name=outcome_root,json=outcomeRoot,proto3" json:"outcome_root,omitempty"`
	PrevStateRoot        []byte            `protobuf:"bytes,4,opt,name=prev_state_root,json=prevStateRoot,proto3" json:"prev_state_root,omitempty"`
	EncodedMerkleRoot    []byte            `protobuf:"bytes,5,opt,name=encoded_merkle_root,json=encodedMerkleRoot,proto3" json:"encoded_merkle_root,omitempty"`
	EncodedLength        uint64            `protobuf:"varint,6,opt,name=encoded_length,json=encodedLength,proto3" json:"encoded_length,omitempty"`
	HeightCreated        uint64            `protobuf:"varint,7,opt,name=height_created,json=heightCreated,proto3" json:"height_created,omitempty"`
	HeightIncluded       uint64            `protobuf:"varint,8,opt,name=height_included,json=heightIncluded,proto3" json:"height_included,omitempty"`
	ShardId              uint64            `protobuf:"varint,9,opt,name=shard_id,json=shardId,proto3" json:"shard_id,omitempty"`
	GasUsed              uint64            `protobuf:"varint,10,opt,name=gas_used,json=gasUsed,proto3" json:"gas_used,omitempty"`
	GasLimit             uint64            `protobuf:"varint,11,opt,name=gas_limit,json=gasLimit,proto3" json:"gas_limit,omitempty"`
	ValidatorReward      *BigInt           `protobuf:"bytes,12,opt,name=validator_reward,json=validatorReward,proto3" json:"validator_reward,omitempty"`
	BalanceBurnt         *BigInt           `protobuf:"bytes,13,opt,name=balance_burnt,json=balanceBurnt,proto3" json:"balance_burnt,omitempty"`
	OutgoingReceiptsRoot []byte            `protobuf:"bytes,14,opt,name=outgoing_receipts_root,json=outgoingReceiptsRoot,proto3" json:"outgoing_receipts_root,omitempty"`
	TxRoot               []byte            `protobuf:"bytes,15,opt,name=tx_root,json=txRoot,proto3" json:"tx_root,omitempty"`
	ValidatorProposals   []*ValidatorStake `protobuf:"bytes,16,rep,name=validator_proposals,json=validatorProposals,proto3" json:"validator_proposals,omitempty"`
	Signature            *Signature        `protobuf:"bytes,17,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *ChunkHeader) Reset()         { *m = ChunkHeader{} }
func (m *ChunkHeader) String() string { return proto.CompactTextString(m) }
func (*ChunkHeader) ProtoMessage()    {}
