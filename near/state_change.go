package near

type StateChangeWithCause struct {
	Cause StateChangeCause
	Value StateChangeValue
}

type StateChangeCause interface {
	isStateChangeCause()
}

type CauseNotWritableToDisk struct{}
type CauseInitialState struct{}
type CauseTransactionProcessing struct{ TxHash CryptoHash }
type CauseActionReceiptProcessingStarted struct{ ReceiptHash CryptoHash }
type CauseActionReceiptGasReward struct{ ReceiptHash CryptoHash }
type CauseReceiptProcessing struct{ ReceiptHash CryptoHash }
type CausePostponedReceipt struct{ ReceiptHash CryptoHash }
type CauseUpdatedDelayedReceipts struct{}
type CauseValidatorAccountsUpdate struct{}
type CauseMigration struct{}

func (CauseNotWritableToDisk) isStateChangeCause()              {}
func (CauseInitialState) isStateChangeCause()                   {}
func (CauseTransactionProcessing) isStateChangeCause()          {}
func (CauseActionReceiptProcessingStarted) isStateChangeCause() {}
func (CauseActionReceiptGasReward) isStateChangeCause()         {}
func (CauseReceiptProcessing) isStateChangeCause()              {}
func (CausePostponedReceipt) isStateChangeCause()               {}
func (CauseUpdatedDelayedReceipts) isStateChangeCause()         {}
func (CauseValidatorAccountsUpdate) isStateChangeCause()        {}
func (CauseMigration) isStateChangeCause()                      {}

type StateChangeValue interface {
	isStateChangeValue()
}

type AccountUpdate struct {
	AccountID string
	Account   Account
}

type AccountDeletion struct {
	AccountID string
}

type AccessKeyUpdate struct {
	AccountID string
	PublicKey PublicKey
	AccessKey AccessKey
}

type AccessKeyDeletion struct {
	AccountID string
	PublicKey PublicKey
}

type DataUpdate struct {
	AccountID string
	Key       []byte
	Value     []byte
}

type DataDeletion struct {
	AccountID string
	Key       []byte
}

type ContractCodeUpdate struct {
	AccountID string
	Code      []byte
}

type ContractCodeDeletion struct {
	AccountID string
}

func (AccountUpdate) isStateChangeValue()        {}
func (AccountDeletion) isStateChangeValue()      {}
func (AccessKeyUpdate) isStateChangeValue()      {}
func (AccessKeyDeletion) isStateChangeValue()    {}
func (DataUpdate) isStateChangeValue()           {}
func (DataDeletion) isStateChangeValue()         {}
func (ContractCodeUpdate) isStateChangeValue()   {}
func (ContractCodeDeletion) isStateChangeValue() {}

type Account struct {
	Amount       Uint128
	Locked       Uint128
	CodeHash     CryptoHash
	StorageUsage uint64
}
