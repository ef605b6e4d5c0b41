package near

// Block is one StreamerMessage as produced by the node's indexer framework:
// the block view plus, per shard, its chunk and the outcomes of the receipts
// executed in it.
type Block struct {
	Author string
	Header *BlockHeader
	Chunks []*ChunkHeader
	Shards []*Shard

	// StateChanges are block wide, in the order the node reported them.
	StateChanges []*StateChangeWithCause
}

type BlockHeader struct {
	Height     uint64
	PrevHeight *uint64

	EpochID           CryptoHash
	NextEpochID       CryptoHash
	Hash              CryptoHash
	PrevHash          CryptoHash
	PrevStateRoot     CryptoHash
	ChunkReceiptsRoot CryptoHash
	ChunkHeadersRoot  CryptoHash
	ChunkTxRoot       CryptoHash
	OutcomeRoot       CryptoHash
	ChunksIncluded    uint64
	ChallengesRoot    CryptoHash

	// Timestamp is the same instant as TimestampNanosec, both in nanoseconds.
	Timestamp        uint64
	TimestampNanosec uint64

	RandomValue        CryptoHash
	ValidatorProposals []*ValidatorStake
	ChunkMask          []bool
	GasPrice           Uint128
	BlockOrdinal       *uint64
	TotalSupply        Uint128
	ChallengesResult   []*SlashedValidator

	LastFinalBlock    CryptoHash
	LastDSFinalBlock  CryptoHash
	NextBPHash        CryptoHash
	BlockMerkleRoot   CryptoHash
	EpochSyncDataHash *CryptoHash

	// Approvals has one entry per block producer of the epoch, nil when the
	// producer did not approve.
	Approvals []Signature
	Signature Signature

	LatestProtocolVersion uint32
}

type ValidatorStake struct {
	AccountID string
	PublicKey PublicKey
	Stake     Uint128
}

type SlashedValidator struct {
	AccountID    string
	IsDoubleSign bool
}

type ChunkHeader struct {
	ChunkHash            CryptoHash
	PrevBlockHash        CryptoHash
	OutcomeRoot          CryptoHash
	PrevStateRoot        CryptoHash
	EncodedMerkleRoot    CryptoHash
	EncodedLength        uint64
	HeightCreated        uint64
	HeightIncluded       uint64
	ShardID              uint64
	GasUsed              uint64
	GasLimit             uint64
	ValidatorReward      Uint128
	BalanceBurnt         Uint128
	OutgoingReceiptsRoot CryptoHash
	TxRoot               CryptoHash
	ValidatorProposals   []*ValidatorStake
	Signature            Signature
}

type Shard struct {
	ShardID uint64

	// Chunk is nil when the shard produced no chunk at this height.
	Chunk                    *Chunk
	ReceiptExecutionOutcomes []*ExecutionOutcomeWithReceipt
}

type Chunk struct {
	Author       string
	Header       *ChunkHeader
	Transactions []*TransactionWithOutcome
	Receipts     []*Receipt
}

type TransactionWithOutcome struct {
	Transaction *SignedTransaction
	Outcome     *ExecutionOutcomeWithOptionalReceipt
}

type SignedTransaction struct {
	SignerID   string
	PublicKey  PublicKey
	Nonce      uint64
	ReceiverID string
	Actions    []Action
	Signature  Signature
	Hash       CryptoHash
}
