package pbnear

import (
	"github.com/golang/protobuf/proto"
)

type ExecutionMetadata int32

const (
	ExecutionMetadata_ExecutionMetadataV1 ExecutionMetadata = 0
)

var ExecutionMetadata_name = map[int32]string{
	0: "ExecutionMetadataV1",
}

var ExecutionMetadata_value = map[string]int32{
	"ExecutionMetadataV1": 0,
}

func (x ExecutionMetadata) String() string {
	return proto.EnumName(ExecutionMetadata_name, int32(x))
}

type Direction int32

const (
	Direction_left  Direction = 0
	Direction_right Direction = 1
)

var Direction_name = map[int32]string{
	0: "left",
	1: "right",
}

var Direction_value = map[string]int32{
	"left":  0,
	"right": 1,
}

func (x Direction) String() string {
	return proto.EnumName(Direction_name, int32(x))
}

type ExecutionOutcomeWithId struct {
	Proof     *MerklePath       `protobuf:"bytes,1,opt,name=proof,proto3" json:"proof,omitempty"`
	BlockHash *CryptoHash       `protobuf:"bytes,2,opt,name=block_hash,json=blockHash,proto3" json:"block_hash,omitempty"`
	Id        *CryptoHash       `protobuf:"bytes,3,opt,name=id,proto3" json:"id,omitempty"`
	Outcome   *ExecutionOutcome `protobuf:"bytes,4,opt,name=outcome,proto3" json:"outcome,omitempty"`
}

func (m *ExecutionOutcomeWithId) Reset()         { *m = ExecutionOutcomeWithId{} }
func (m *ExecutionOutcomeWithId) String() string { return proto.CompactTextString(m) }
func (*ExecutionOutcomeWithId) ProtoMessage()    {}

func (m *ExecutionOutcomeWithId) GetOutcome() *ExecutionOutcome {
	if m != nil {
		return m.Outcome
	}
	return nil
}

type ExecutionOutcome struct {
	Logs        []string      `protobuf:"bytes,1,rep,name=logs,proto3" json:"logs,omitempty"`
	ReceiptIds  []*CryptoHash `protobuf:"bytes,2,rep,name=receipt_ids,json=receiptIds,proto3" json:"receipt_ids,omitempty"`
	GasBurnt    uint64        `protobuf:"varint,3,opt,name=gas_burnt,json=gasBurnt,proto3" json:"gas_burnt,omitempty"`
	TokensBurnt *BigInt       `protobuf:"bytes,4,opt,name=tokens_burnt,json=tokensBurnt,proto3" json:"tokens_burnt,omitempty"`
	ExecutorId  string        `protobuf:"bytes,5,opt,name=executor_id,json=executorId,proto3" json:"executor_id,omitempty"`
	// Types that are valid to be assigned to Status:
	//	*ExecutionOutcome_Unknown
	//	*ExecutionOutcome_Failure
	//	*ExecutionOutcome_SuccessValue
	//	*ExecutionOutcome_SuccessReceiptId
	Status   isExecutionOutcome_Status `protobuf_oneof:"status"`
	Metadata ExecutionMetadata         `protobuf:"varint,6,opt,name=metadata,proto3,enum=sf.near.type.v1.ExecutionMetadata" json:"metadata,omitempty"`
}

func (m *ExecutionOutcome) Reset()         { *m = ExecutionOutcome{} }
func (m *ExecutionOutcome) String() string { return proto.CompactTextString(m) }
func (*ExecutionOutcome) ProtoMessage()    {}

type isExecutionOutcome_Status interface {
	isExecutionOutcome_Status()
}

type ExecutionOutcome_Unknown struct {
	Unknown *UnknownExecutionStatus `protobuf:"bytes,20,opt,name=unknown,proto3,oneof"`
}

type ExecutionOutcome_Failure struct {
	Failure *FailureExecutionStatus `protobuf:"bytes,21,opt,name=failure,proto3,oneof"`
}

type ExecutionOutcome_SuccessValue struct {
	SuccessValue *SuccessValueExecutionStatus `protobuf:"bytes,22,opt,name=success_value,json=successValue,proto3,oneof"`
}

type ExecutionOutcome_SuccessReceiptId struct {
	SuccessReceiptId *SuccessReceiptIdExecutionStatus `protobuf:"bytes,23,opt,name=success_receipt_id,json=successReceiptId,proto3,oneof"`
}

func (*ExecutionOutcome_Unknown) isExecutionOutcome_Status()          {}
func (*ExecutionOutcome_Failure) isExecutionOutcome_Status()          {}
func (*ExecutionOutcome_SuccessValue) isExecutionOutcome_Status()     {}
func (*ExecutionOutcome_SuccessReceiptId) isExecutionOutcome_Status() {}

func (m *ExecutionOutcome) GetStatus() isExecutionOutcome_Status {
	if m != nil {
		return m.Status
	}
	return nil
}

func (m *ExecutionOutcome) GetFailure() *FailureExecutionStatus {
	if x, ok := m.GetStatus().(*ExecutionOutcome_Failure); ok {
		return x.Failure
	}
	return nil
}

func (m *ExecutionOutcome) GetSuccessValue() *SuccessValueExecutionStatus {
	if x, ok := m.GetStatus().(*ExecutionOutcome_SuccessValue); ok {
		return x.SuccessValue
	}
	return nil
}

func (m *ExecutionOutcome) GetSuccessReceiptId() *SuccessReceiptIdExecutionStatus {
	if x, ok := m.GetStatus().(*ExecutionOutcome_SuccessReceiptId); ok {
		return x.SuccessReceiptId
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*ExecutionOutcome) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*ExecutionOutcome_Unknown)(nil),
		(*ExecutionOutcome_Failure)(nil),
		(*ExecutionOutcome_SuccessValue)(nil),
		(*ExecutionOutcome_SuccessReceiptId)(nil),
	}
}

type SuccessValueExecutionStatus struct {
	Value []byte `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *SuccessValueExecutionStatus) Reset()         { *m = SuccessValueExecutionStatus{} }
func (m *SuccessValueExecutionStatus) String() string { return proto.CompactTextString(m) }
func (*SuccessValueExecutionStatus) ProtoMessage()    {}

type SuccessReceiptIdExecutionStatus struct {
	Id *CryptoHash `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *SuccessReceiptIdExecutionStatus) Reset()         { *m = SuccessReceiptIdExecutionStatus{} }
func (m *SuccessReceiptIdExecutionStatus) String() string { return proto.CompactTextString(m) }
func (*SuccessReceiptIdExecutionStatus) ProtoMessage()    {}

type UnknownExecutionStatus struct {
}

func (m *UnknownExecutionStatus) Reset()         { *m = UnknownExecutionStatus{} }
func (m *UnknownExecutionStatus) String() string { return proto.CompactTextString(m) }
func (*UnknownExecutionStatus) ProtoMessage()    {}

type FailureExecutionStatus struct {
	// Types that are valid to be assigned to Failure:
	//	*FailureExecutionStatus_ActionError
	//	*FailureExecutionStatus_InvalidTxError
	Failure isFailureExecutionStatus_Failure `protobuf_oneof:"failure"`
}

func (m *FailureExecutionStatus) Reset()         { *m = FailureExecutionStatus{} }
func (m *FailureExecutionStatus) String() string { return proto.CompactTextString(m) }
func (*FailureExecutionStatus) ProtoMessage()    {}

type isFailureExecutionStatus_Failure interface {
	isFailureExecutionStatus_Failure()
}

type FailureExecutionStatus_ActionError struct {
	ActionError *ActionError `protobuf:"bytes,1,opt,name=action_error,json=actionError,proto3,oneof"`
}

type FailureExecutionStatus_InvalidTxError struct {
	InvalidTxError InvalidTxError `protobuf:"varint,2,opt,name=invalid_tx_error,json=invalidTxError,proto3,enum=sf.near.type.v1.InvalidTxError,oneof"`
}

func (*FailureExecutionStatus_ActionError) isFailureExecutionStatus_Failure()    {}
func (*FailureExecutionStatus_InvalidTxError) isFailureExecutionStatus_Failure() {}

func (m *FailureExecutionStatus) GetFailure() isFailureExecutionStatus_Failure {
	if m != nil {
		return m.Failure
	}
	return nil
}

func (m *FailureExecutionStatus) GetActionError() *ActionError {
	if x, ok := m.GetFailure().(*FailureExecutionStatus_ActionError); ok {
		return x.ActionError
	}
	return nil
}

func (m *FailureExecutionStatus) GetInvalidTxError() InvalidTxError {
	if x, ok := m.GetFailure().(*FailureExecutionStatus_InvalidTxError); ok {
		return x.InvalidTxError
	}
	return InvalidTxError_InvalidAccessKeyError
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*FailureExecutionStatus) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*FailureExecutionStatus_ActionError)(nil),
		(*FailureExecutionStatus_InvalidTxError)(nil),
	}
}

type MerklePath struct {
	Path []*MerklePathItem `protobuf:"bytes,1,rep,name=path,proto3" json:"path,omitempty"`
}

func (m *MerklePath) Reset()         { *m = MerklePath{} }
func (m *MerklePath) String() string { return proto.CompactTextString(m) }
func (*MerklePath) ProtoMessage()    {}

type MerklePathItem struct {
	Hash      *CryptoHash `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
	Direction Direction   `protobuf:"varint,2,opt,name=direction,proto3,enum=sf.near.type.v1.Direction" json:"direction,omitempty"`
}

func (m *MerklePathItem) Reset()         { *m = MerklePathItem{} }
func (m *MerklePathItem) String() string { return proto.CompactTextString(m) }
func (*MerklePathItem) ProtoMessage()    {}
