package near

type Receipt struct {
	PredecessorID string
	ReceiverID    string
	ReceiptID     CryptoHash

	// Receipt is either an ActionReceipt or a DataReceipt.
	Receipt ReceiptEnum
}

type ReceiptEnum interface {
	isReceiptEnum()
}

type ActionReceipt struct {
	SignerID            string
	SignerPublicKey     PublicKey
	GasPrice            Uint128
	OutputDataReceivers []*DataReceiver
	InputDataIDs        []CryptoHash
	Actions             []Action
}

// DataReceipt carries the result of a promise. Data is nil when the promise
// produced no value.
type DataReceipt struct {
	DataID CryptoHash
	Data   []byte
}

func (ActionReceipt) isReceiptEnum() {}
func (DataReceipt) isReceiptEnum()   {}

type DataReceiver struct {
	DataID     CryptoHash
	ReceiverID string
}

type ExecutionOutcomeWithReceipt struct {
	ExecutionOutcome *ExecutionOutcomeWithID
	Receipt          *Receipt
}

type ExecutionOutcomeWithOptionalReceipt struct {
	ExecutionOutcome *ExecutionOutcomeWithID
	Receipt          *Receipt
}

type ExecutionOutcomeWithID struct {
	Proof     MerklePath
	BlockHash CryptoHash
	ID        CryptoHash
	Outcome   *ExecutionOutcome
}

type ExecutionOutcome struct {
	Logs        []string
	ReceiptIDs  []CryptoHash
	GasBurnt    uint64
	TokensBurnt Uint128
	ExecutorID  string
	Status      ExecutionStatus
	Metadata    ExecutionMetadata
}

// ExecutionMetadata versions 1 through 3 exist on chain, they differ only by
// the shape of the gas profile.
type ExecutionMetadata struct {
	Version    uint32
	GasProfile []*CostGasUsed
}

type CostGasUsed struct {
	CostCategory string
	Cost         string
	GasUsed      uint64
}

type MerklePath []*MerklePathItem

type MerklePathItem struct {
	Hash      CryptoHash
	Direction Direction
}

type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	}
	return "Direction(?)"
}

// ExecutionStatus is one of ExecutionStatusUnknown, ExecutionStatusFailure,
// ExecutionStatusSuccessValue or ExecutionStatusSuccessReceiptID.
type ExecutionStatus interface {
	isExecutionStatus()
}

type ExecutionStatusUnknown struct{}

type ExecutionStatusFailure struct {
	Error TxExecutionError
}

type ExecutionStatusSuccessValue struct {
	Value []byte
}

type ExecutionStatusSuccessReceiptID struct {
	ReceiptID CryptoHash
}

func (ExecutionStatusUnknown) isExecutionStatus()          {}
func (ExecutionStatusFailure) isExecutionStatus()          {}
func (ExecutionStatusSuccessValue) isExecutionStatus()     {}
func (ExecutionStatusSuccessReceiptID) isExecutionStatus() {}
