package pbnear

import (
	"github.com/golang/protobuf/proto"
)

type StateChangeWithCause struct {
	Value *StateChangeValue `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Cause *StateChangeCause `protobuf:"bytes,2,opt,name=cause,proto3" json:"cause,omitempty"`
}

func (m *StateChangeWithCause) Reset()         { *m = StateChangeWithCause{} }
func (m *StateChangeWithCause) String() string { return proto.CompactTextString(m) }
func (*StateChangeWithCause) ProtoMessage()    {}

type StateChangeCause struct {
	// Types that are valid to be assigned to Cause:
	//	*StateChangeCause_NotWritableToDisk
	//	*StateChangeCause_InitialState
	//	*StateChangeCause_TransactionProcessing
	//	*StateChangeCause_ActionReceiptProcessingStarted
	//	*StateChangeCause_ActionReceiptGasReward
	//	*StateChangeCause_ReceiptProcessing
	//	*StateChangeCause_PostponedReceipt
	//	*StateChangeCause_UpdatedDelayedReceipts
	//	*StateChangeCause_ValidatorAccountsUpdate
	//	*StateChangeCause_Migration
	Cause isStateChangeCause_Cause `protobuf_oneof:"cause"`
}

func (m *StateChangeCause) Reset()         { *m = StateChangeCause{} }
func (m *StateChangeCause) String() string { return proto.CompactTextString(m) }
func (*StateChangeCause) ProtoMessage()    {}

type isStateChangeCause_Cause interface {
	isStateChangeCause_Cause()
}

type StateChangeCause_NotWritableToDisk struct {
	NotWritableToDisk *CauseNotWritableToDisk `protobuf:"bytes,1,opt,name=not_writable_to_disk,json=notWritableToDisk,proto3,oneof"`
}

type StateChangeCause_InitialState struct {
	InitialState *CauseInitialState `protobuf:"bytes,2,opt,name=initial_state,json=initialState,proto3,oneof"`
}

type StateChangeCause_TransactionProcessing struct {
	TransactionProcessing *CauseTransactionProcessing `protobuf:"bytes,3,opt,name=transaction_processing,json=transactionProcessing,proto3,oneof"`
}

type StateChangeCause_ActionReceiptProcessingStarted struct {
	ActionReceiptProcessingStarted *CauseActionReceiptProcessingStarted `protobuf:"bytes,4,opt,name=action_receipt_processing_started,json=actionReceiptProcessingStarted,proto3,oneof"`
}

type StateChangeCause_ActionReceiptGasReward struct {
	ActionReceiptGasReward *CauseActionReceiptGasReward `protobuf:"bytes,5,opt,name=action_receipt_gas_reward,json=actionReceiptGasReward,proto3,oneof"`
}

type StateChangeCause_ReceiptProcessing struct {
	ReceiptProcessing *CauseReceiptProcessing `protobuf:"bytes,6,opt,name=receipt_processing,json=receiptProcessing,proto3,oneof"`
}

type StateChangeCause_PostponedReceipt struct {
	PostponedReceipt *CausePostponedReceipt `protobuf:"bytes,7,opt,name=postponed_receipt,json=postponedReceipt,proto3,oneof"`
}

type StateChangeCause_UpdatedDelayedReceipts struct {
	UpdatedDelayedReceipts *CauseUpdatedDelayedReceipts `protobuf:"bytes,8,opt,name=updated_delayed_receipts,json=updatedDelayedReceipts,proto3,oneof"`
}

type StateChangeCause_ValidatorAccountsUpdate struct {
	ValidatorAccountsUpdate *CauseValidatorAccountsUpdate `protobuf:"bytes,9,opt,name=validator_accounts_update,json=validatorAccountsUpdate,proto3,oneof"`
}

type StateChangeCause_Migration struct {
	Migration *CauseMigration `protobuf:"bytes,10,opt,name=migration,proto3,oneof"`
}

func (*StateChangeCause_NotWritableToDisk) isStateChangeCause_Cause()              {}
func (*StateChangeCause_InitialState) isStateChangeCause_Cause()                   {}
func (*StateChangeCause_TransactionProcessing) isStateChangeCause_Cause()          {}
func (*StateChangeCause_ActionReceiptProcessingStarted) isStateChangeCause_Cause() {}
func (*StateChangeCause_ActionReceiptGasReward) isStateChangeCause_Cause()         {}
func (*StateChangeCause_ReceiptProcessing) isStateChangeCause_Cause()              {}
func (*StateChangeCause_PostponedReceipt) isStateChangeCause_Cause()               {}
func (*StateChangeCause_UpdatedDelayedReceipts) isStateChangeCause_Cause()         {}
func (*StateChangeCause_ValidatorAccountsUpdate) isStateChangeCause_Cause()        {}
func (*StateChangeCause_Migration) isStateChangeCause_Cause()                      {}

func (m *StateChangeCause) GetCause() isStateChangeCause_Cause {
	if m != nil {
		return m.Cause
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*StateChangeCause) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*StateChangeCause_NotWritableToDisk)(nil),
		(*StateChangeCause_InitialState)(nil),
		(*StateChangeCause_TransactionProcessing)(nil),
		(*StateChangeCause_ActionReceiptProcessingStarted)(nil),
		(*StateChangeCause_ActionReceiptGasReward)(nil),
		(*StateChangeCause_ReceiptProcessing)(nil),
		(*StateChangeCause_PostponedReceipt)(nil),
		(*StateChangeCause_UpdatedDelayedReceipts)(nil),
		(*StateChangeCause_ValidatorAccountsUpdate)(nil),
		(*StateChangeCause_Migration)(nil),
	}
}

type CauseNotWritableToDisk struct {
}

func (m *CauseNotWritableToDisk) Reset()         { *m = CauseNotWritableToDisk{} }
func (m *CauseNotWritableToDisk) String() string { return proto.CompactTextString(m) }
func (*CauseNotWritableToDisk) ProtoMessage()    {}

type CauseInitialState struct {
}

func (m *CauseInitialState) Reset()         { *m = CauseInitialState{} }
func (m *CauseInitialState) String() string { return proto.CompactTextString(m) }
func (*CauseInitialState) ProtoMessage()    {}

type CauseTransactionProcessing struct {
	TxHash *CryptoHash `protobuf:"bytes,1,opt,name=tx_hash,json=txHash,proto3" json:"tx_hash,omitempty"`
}

func (m *CauseTransactionProcessing) Reset()         { *m = CauseTransactionProcessing{} }
func (m *CauseTransactionProcessing) String() string { return proto.CompactTextString(m) }
func (*CauseTransactionProcessing) ProtoMessage()    {}

type CauseActionReceiptProcessingStarted struct {
	ReceiptHash *CryptoHash `protobuf:"bytes,1,opt,name=receipt_hash,json=receiptHash,proto3" json:"receipt_hash,omitempty"`
}

func (m *CauseActionReceiptProcessingStarted) Reset()         { *m = CauseActionReceiptProcessingStarted{} }
func (m *CauseActionReceiptProcessingStarted) String() string { return proto.CompactTextString(m) }
func (*CauseActionReceiptProcessingStarted) ProtoMessage()    {}

type CauseActionReceiptGasReward struct {
	TxHash *CryptoHash `protobuf:"bytes,1,opt,name=tx_hash,json=txHash,proto3" json:"tx_hash,omitempty"`
}

func (m *CauseActionReceiptGasReward) Reset()         { *m = CauseActionReceiptGasReward{} }
func (m *CauseActionReceiptGasReward) String() string { return proto.CompactTextString(m) }
func (*CauseActionReceiptGasReward) ProtoMessage()    {}

type CauseReceiptProcessing struct {
	TxHash *CryptoHash `protobuf:"bytes,1,opt,name=tx_hash,json=txHash,proto3" json:"tx_hash,omitempty"`
}

func (m *CauseReceiptProcessing) Reset()         { *m = CauseReceiptProcessing{} }
func (m *CauseReceiptProcessing) String() string { return proto.CompactTextString(m) }
func (*CauseReceiptProcessing) ProtoMessage()    {}

type CausePostponedReceipt struct {
	TxHash *CryptoHash `protobuf:"bytes,1,opt,name=tx_hash,json=txHash,proto3" json:"tx_hash,omitempty"`
}

func (m *CausePostponedReceipt) Reset()         { *m = CausePostponedReceipt{} }
func (m *CausePostponedReceipt) String() string { return proto.CompactTextString(m) }
func (*CausePostponedReceipt) ProtoMessage()    {}

type CauseUpdatedDelayedReceipts struct {
}

func (m *CauseUpdatedDelayedReceipts) Reset()         { *m = CauseUpdatedDelayedReceipts{} }
func (m *CauseUpdatedDelayedReceipts) String() string { return proto.CompactTextString(m) }
func (*CauseUpdatedDelayedReceipts) ProtoMessage()    {}

type CauseValidatorAccountsUpdate struct {
}

func (m *CauseValidatorAccountsUpdate) Reset()         { *m = CauseValidatorAccountsUpdate{} }
func (m *CauseValidatorAccountsUpdate) String() string { return proto.CompactTextString(m) }
func (*CauseValidatorAccountsUpdate) ProtoMessage()    {}

type CauseMigration struct {
}

func (m *CauseMigration) Reset()         { *m = CauseMigration{} }
func (m *CauseMigration) String() string { return proto.CompactTextString(m) }
func (*CauseMigration) ProtoMessage()    {}

type StateChangeValue struct {
	// Types that are valid to be assigned to Value:
	//	*StateChangeValue_AccountUpdate
	//	*StateChangeValue_AccountDeletion
	//	*StateChangeValue_AccessKeyUpdate
	//	*StateChangeValue_AccessKeyDeletion
	//	*StateChangeValue_DataUpdate
	//	*StateChangeValue_DataDeletion
	//	*StateChangeValue_ContractCodeUpdate
	//	*StateChangeValue_ContractDeletion
	Value isStateChangeValue_Value `protobuf_oneof:"value"`
}

func (m *StateChangeValue) Reset()         { *m = StateChangeValue{} }
func (m *StateChangeValue) String() string { return proto.CompactTextString(m) }
func (*StateChangeValue) ProtoMessage()    {}

type isStateChangeValue_Value interface {
	isStateChangeValue_Value()
}

type StateChangeValue_AccountUpdate struct {
	AccountUpdate *AccountUpdateValue `protobuf:"bytes,1,opt,name=account_update,json=accountUpdate,proto3,oneof"`
}

type StateChangeValue_AccountDeletion struct {
	AccountDeletion *AccountDeletionValue `protobuf:"bytes,2,opt,name=account_deletion,json=accountDeletion,proto3,oneof"`
}

type StateChangeValue_AccessKeyUpdate struct {
	AccessKeyUpdate *AccessKeyUpdateValue `protobuf:"bytes,3,opt,name=access_key_update,json=accessKeyUpdate,proto3,oneof"`
}

type StateChangeValue_AccessKeyDeletion struct {
	AccessKeyDeletion *AccessKeyDeletionValue `protobuf:"bytes,4,opt,name=access_key_deletion,json=accessKeyDeletion,proto3,oneof"`
}

type StateChangeValue_DataUpdate struct {
	DataUpdate *DataUpdateValue `protobuf:"bytes,5,opt,name=data_update,json=dataUpdate,proto3,oneof"`
}

type StateChangeValue_DataDeletion struct {
	DataDeletion *DataDeletionValue `protobuf:"bytes,6,opt,name=data_deletion,json=dataDeletion,proto3,oneof"`
}

type StateChangeValue_ContractCodeUpdate struct {
	ContractCodeUpdate *ContractCodeUpdateValue `protobuf:"bytes,7,opt,name=contract_code_update,json=contractCodeUpdate,proto3,oneof"`
}

type StateChangeValue_ContractDeletion struct {
	ContractDeletion *ContractCodeDeletionValue `protobuf:"bytes,8,opt,name=contract_deletion,json=contractDeletion,proto3,oneof"`
}

func (*StateChangeValue_AccountUpdate) isStateChangeValue_Value()      {}
func (*StateChangeValue_AccountDeletion) isStateChangeValue_Value()    {}
func (*StateChangeValue_AccessKeyUpdate) isStateChangeValue_Value()    {}
func (*StateChangeValue_AccessKeyDeletion) isStateChangeValue_Value()  {}
func (*StateChangeValue_DataUpdate) isStateChangeValue_Value()         {}
func (*StateChangeValue_DataDeletion) isStateChangeValue_Value()       {}
func (*StateChangeValue_ContractCodeUpdate) isStateChangeValue_Value() {}
func (*StateChangeValue_ContractDeletion) isStateChangeValue_Value()   {}

func (m *StateChangeValue) GetValue() isStateChangeValue_Value {
	if m != nil {
		return m.Value
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*StateChangeValue) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*StateChangeValue_AccountUpdate)(nil),
		(*StateChangeValue_AccountDeletion)(nil),
		(*StateChangeValue_AccessKeyUpdate)(nil),
		(*StateChangeValue_AccessKeyDeletion)(nil),
		(*StateChangeValue_DataUpdate)(nil),
		(*StateChangeValue_DataDeletion)(nil),
		(*StateChangeValue_ContractCodeUpdate)(nil),
		(*StateChangeValue_ContractDeletion)(nil),
	}
}

type AccountUpdateValue struct {
	AccountId string   `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Account   *Account `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
}

func (m *AccountUpdateValue) Reset()         { *m = AccountUpdateValue{} }
func (m *AccountUpdateValue) String() string { return proto.CompactTextString(m) }
func (*AccountUpdateValue) ProtoMessage()    {}

type AccountDeletionValue struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *AccountDeletionValue) Reset()         { *m = AccountDeletionValue{} }
func (m *AccountDeletionValue) String() string { return proto.CompactTextString(m) }
func (*AccountDeletionValue) ProtoMessage()    {}

type AccessKeyUpdateValue struct {
	AccountId string     `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	PublicKey *PublicKey `protobuf:"bytes,2,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	AccessKey *AccessKey `protobuf:"bytes,3,opt,name=access_key,json=accessKey,proto3" json:"access_key,omitempty"`
}

func (m *AccessKeyUpdateValue) Reset()         { *m = AccessKeyUpdateValue{} }
func (m *AccessKeyUpdateValue) String() string { return proto.CompactTextString(m) }
func (*AccessKeyUpdateValue) ProtoMessage()    {}

type AccessKeyDeletionValue struct {
	AccountId string     `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	PublicKey *PublicKey `protobuf:"bytes,2,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
}

func (m *AccessKeyDeletionValue) Reset()         { *m = AccessKeyDeletionValue{} }
func (m *AccessKeyDeletionValue) String() string { return proto.CompactTextString(m) }
func (*AccessKeyDeletionValue) ProtoMessage()    {}

type DataUpdateValue struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Key       []byte `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Value     []byte `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *DataUpdateValue) Reset()         { *m = DataUpdateValue{} }
func (m *DataUpdateValue) String() string { return proto.CompactTextString(m) }
func (*DataUpdateValue) ProtoMessage()    {}

type DataDeletionValue struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Key       []byte `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *DataDeletionValue) Reset()         { *m = DataDeletionValue{} }
func (m *DataDeletionValue) String() string { return proto.CompactTextString(m) }
func (*DataDeletionValue) ProtoMessage()    {}

type ContractCodeUpdateValue struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Code      []byte `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
}

func (m *ContractCodeUpdateValue) Reset()         { *m = ContractCodeUpdateValue{} }
func (m *ContractCodeUpdateValue) String() string { return proto.CompactTextString(m) }
func (*ContractCodeUpdateValue) ProtoMessage()    {}

type ContractCodeDeletionValue struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *ContractCodeDeletionValue) Reset()         { *m = ContractCodeDeletionValue{} }
func (m *ContractCodeDeletionValue) String() string { return proto.CompactTextString(m) }
func (*ContractCodeDeletionValue) ProtoMessage()    {}

type Account struct {
	Amount       *BigInt     `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Locked       *BigInt     `protobuf:"bytes,2,opt,name=locked,proto3" json:"locked,omitempty"`
	CodeHash     *CryptoHash `protobuf:"bytes,3,opt,name=code_hash,json=codeHash,proto3" json:"code_hash,omitempty"`
	StorageUsage uint64      `protobuf:"varint,4,opt,name=storage_usage,json=storageUsage,proto3" json:"storage_usage,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}
