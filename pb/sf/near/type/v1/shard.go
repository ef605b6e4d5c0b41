package pbnear

import (
	"github.com/golang/protobuf/proto"
)

type IndexerShard struct {
	ShardId                  uint64                                `protobuf:"varint,1,opt,name=shard_id,json=shardId,proto3" json:"shard_id,omitempty"`
	Chunk                    *IndexerChunk                         `protobuf:"bytes,2,opt,name=chunk,proto3" json:"chunk,omitempty"`
	ReceiptExecutionOutcomes []*IndexerExecutionOutcomeWithReceipt `protobuf:"bytes,3,rep,name=receipt_execution_outcomes,json=receiptExecutionOutcomes,proto3" json:"receipt_execution_outcomes,omitempty"`
}

func (m *IndexerShard) Reset()         { *m = IndexerShard{} }
func (m *IndexerShard) String() string { return proto.CompactTextString(m) }
func (*IndexerShard) ProtoMessage()    {}

func (m *IndexerShard) GetChunk() *IndexerChunk {
	if m != nil {
		return m.Chunk
	}
	return nil
}

type IndexerExecutionOutcomeWithReceipt struct {
	ExecutionOutcome *ExecutionOutcomeWithId `protobuf:"bytes,1,opt,name=execution_outcome,json=executionOutcome,proto3" json:"execution_outcome,omitempty"`
	Receipt          *Receipt                `protobuf:"bytes,2,opt,name=receipt,proto3" json:"receipt,omitempty"`
}

func (m *IndexerExecutionOutcomeWithReceipt) Reset()         { *m = IndexerExecutionOutcomeWithReceipt{} }
func (m *IndexerExecutionOutcomeWithReceipt) String() string { return proto.CompactTextString(m) }
func (*IndexerExecutionOutcomeWithReceipt) ProtoMessage()    {}

type IndexerChunk struct {
	Author       string                           `protobuf:"bytes,1,opt,name=author,proto3" json:"author,omitempty"`
	Header       *ChunkHeader                     `protobuf:"bytes,2,opt,name=header,proto3" json:"header,omitempty"`
	Transactions []*IndexerTransactionWithOutcome `protobuf:"bytes,3,rep,name=transactions,proto3" json:"transactions,omitempty"`
	Receipts     []*Receipt                       `protobuf:"bytes,4,rep,name=receipts,proto3" json:"receipts,omitempty"`
}

func (m *IndexerChunk) Reset()         { *m = IndexerChunk{} }
func (m *IndexerChunk) String() string { return proto.CompactTextString(m) }
func (*IndexerChunk) ProtoMessage()    {}

func (m *IndexerChunk) GetTransactions() []*IndexerTransactionWithOutcome {
	if m != nil {
		return m.Transactions
	}
	return nil
}

type IndexerTransactionWithOutcome struct {
	Transaction *SignedTransaction                          `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
	Outcome     *IndexerExecutionOutcomeWithOptionalReceipt `protobuf:"bytes,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
}

func (m *IndexerTransactionWithOutcome) Reset()         { *m = IndexerTransactionWithOutcome{} }
func (m *IndexerTransactionWithOutcome) String() string { return proto.CompactTextString(m) }
func (*IndexerTransactionWithOutcome) ProtoMessage()    {}

func (m *IndexerTransactionWithOutcome) GetTransaction() *SignedTransaction {
	if m != nil {
		return m.Transaction
	}
	return nil
}

type SignedTransaction struct {
	SignerId   string      `protobuf:"bytes,1,opt,name=signer_id,json=signerId,proto3" json:"signer_id,omitempty"`
	PublicKey  *PublicKey  `protobuf:"bytes,2,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	Nonce      uint64      `protobuf:"varint,3,opt,name=nonce,proto3" json:"nonce,omitempty"`
	ReceiverId string      `protobuf:"bytes,4,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
	Actions    []*Action   `protobuf:"bytes,5,rep,name=actions,proto3" json:"actions,omitempty"`
	Signature  *Signature  `protobuf:"bytes,6,opt,name=signature,proto3" json:"signature,omitempty"`
	Hash       *CryptoHash `protobuf:"bytes,7,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *SignedTransaction) Reset()         { *m = SignedTransaction{} }
func (m *SignedTransaction) String() string { return proto.CompactTextString(m) }
func (*SignedTransaction) ProtoMessage()    {}

func (m *SignedTransaction) GetActions() []*Action {
	if m != nil {
		return m.Actions
	}
	return nil
}

type IndexerExecutionOutcomeWithOptionalReceipt struct {
	ExecutionOutcome *ExecutionOutcomeWithId `protobuf:"bytes,1,opt,name=execution_outcome,json=executionOutcome,proto3" json:"execution_outcome,omitempty"`
	Receipt          *Receipt                `protobuf:"bytes,2,opt,name=receipt,proto3" json:"receipt,omitempty"`
}

func (m *IndexerExecutionOutcomeWithOptionalReceipt) Reset() {
	*m = IndexerExecutionOutcomeWithOptionalReceipt{}
}
func (m *IndexerExecutionOutcomeWithOptionalReceipt) String() string {
	return proto.CompactTextString(m)
}
func (*IndexerExecutionOutcomeWithOptionalReceipt) ProtoMessage() {}

func (m *IndexerExecutionOutcomeWithOptionalReceipt) GetExecutionOutcome() *ExecutionOutcomeWithId {
	if m != nil {
		return m.ExecutionOutcome
	}
	return nil
}

type Receipt struct {
	PredecessorId string      `protobuf:"bytes,1,opt,name=predecessor_id,json=predecessorId,proto3" json:"predecessor_id,omitempty"`
	ReceiverId    string      `protobuf:"bytes,2,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
	ReceiptId     *CryptoHash `protobuf:"bytes,3,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	// Types that are valid to be assigned to Receipt:
	//	*Receipt_Action
	//	*Receipt_Data
	Receipt isReceipt_Receipt `protobuf_oneof:"receipt"`
}

func (m *Receipt) Reset()         { *m = Receipt{} }
func (m *Receipt) String() string { return proto.CompactTextString(m) }
func (*Receipt) ProtoMessage()    {}

type isReceipt_Receipt interface {
	isReceipt_Receipt()
}

type Receipt_Action struct {
	Action *ReceiptAction `protobuf:"bytes,10,opt,name=action,proto3,oneof"`
}

type Receipt_Data struct {
	Data *ReceiptData `protobuf:"bytes,11,opt,name=data,proto3,oneof"`
}

func (*Receipt_Action) isReceipt_Receipt() {}
func (*Receipt_Data) isReceipt_Receipt()   {}

func (m *Receipt) GetReceipt() isReceipt_Receipt {
	if m != nil {
		return m.Receipt
	}
	return nil
}

func (m *Receipt) GetAction() *ReceiptAction {
	if x, ok := m.GetReceipt().(*Receipt_Action); ok {
		return x.Action
	}
	return nil
}

func (m *Receipt) GetData() *ReceiptData {
	if x, ok := m.GetReceipt().(*Receipt_Data); ok {
		return x.Data
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*Receipt) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Receipt_Action)(nil),
		(*Receipt_Data)(nil),
	}
}

type ReceiptData struct {
	DataId *CryptoHash `protobuf:"bytes,1,opt,name=data_id,json=dataId,proto3" json:"data_id,omitempty"`
	Data   []byte      `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ReceiptData) Reset()         { *m = ReceiptData{} }
func (m *ReceiptData) String() string { return proto.CompactTextString(m) }
func (*ReceiptData) ProtoMessage()    {}

type ReceiptAction struct {
	SignerId            string          `protobuf:"bytes,1,opt,name=signer_id,json=signerId,proto3" json:"signer_id,omitempty"`
	SignerPublicKey     *PublicKey      `protobuf:"bytes,2,opt,name=signer_public_key,json=signerPublicKey,proto3" json:"signer_public_key,omitempty"`
	GasPrice            *BigInt         `protobuf:"bytes,3,opt,name=gas_price,json=gasPrice,proto3" json:"gas_price,omitempty"`
	OutputDataReceivers []*DataReceiver `protobuf:"bytes,4,rep,name=output_data_receivers,json=outputDataReceivers,proto3" json:"output_data_receivers,omitempty"`
	InputDataIds        []*CryptoHash   `protobuf:"bytes,5,rep,name=input_data_ids,json=inputDataIds,proto3" json:"input_data_ids,omitempty"`
	Actions             []*Action       `protobuf:"bytes,6,rep,name=actions,proto3" json:"actions,omitempty"`
}

func (m *ReceiptAction) Reset()         { *m = ReceiptAction{} }
func (m *ReceiptAction) String() string { return proto.CompactTextString(m) }
func (*ReceiptAction) ProtoMessage()    {}

type DataReceiver struct {
	DataId     *CryptoHash `protobuf:"bytes,1,opt,name=data_id,json=dataId,proto3" json:"data_id,omitempty"`
	ReceiverId string      `protobuf:"bytes,2,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
}

func (m *DataReceiver) Reset()         { *m = DataReceiver{} }
func (m *DataReceiver) String() string { return proto.CompactTextString(m) }
func (*DataReceiver) ProtoMessage()    {}
