package near

// TxExecutionError is the failure reported by an execution outcome, either an
// ActionError or one of the InvalidTxError variants.
type TxExecutionError interface {
	isTxExecutionError()
}

type ActionError struct {
	// Index of the failing action in its transaction or receipt, nil when the
	// failure is not attributable to a single action.
	Index *uint64
	Kind  ActionErrorKind
}

func (ActionError) isTxExecutionError() {}

// InvalidTxError variants, each is also a TxExecutionError.
type InvalidTxError interface {
	TxExecutionError
	isInvalidTxError()
}

type TxInvalidAccessKey struct{ Error InvalidAccessKeyError }
type TxInvalidSignerID struct{ SignerID string }
type TxSignerDoesNotExist struct{ SignerID string }
type TxInvalidNonce struct{ TxNonce, AkNonce uint64 }
type TxNonceTooLarge struct{ TxNonce, UpperBound uint64 }
type TxInvalidReceiverID struct{ ReceiverID string }
type TxInvalidSignature struct{}
type TxNotEnoughBalance struct {
	SignerID string
	Balance  Uint128
	Cost     Uint128
}
type TxLackBalanceForState struct {
	SignerID string
	Amount   Uint128
}
type TxCostOverflow struct{}
type TxInvalidChain struct{}
type TxExpired struct{}
type TxActionsValidation struct{ Error ActionsValidationError }
type TxSizeExceeded struct{ Size, Limit uint64 }

func (TxInvalidAccessKey) isTxExecutionError()    {}
func (TxInvalidSignerID) isTxExecutionError()     {}
func (TxSignerDoesNotExist) isTxExecutionError()  {}
func (TxInvalidNonce) isTxExecutionError()        {}
func (TxNonceTooLarge) isTxExecutionError()       {}
func (TxInvalidReceiverID) isTxExecutionError()   {}
func (TxInvalidSignature) isTxExecutionError()    {}
func (TxNotEnoughBalance) isTxExecutionError()    {}
func (TxLackBalanceForState) isTxExecutionError() {}
func (TxCostOverflow) isTxExecutionError()        {}
func (TxInvalidChain) isTxExecutionError()        {}
func (TxExpired) isTxExecutionError()             {}
func (TxActionsValidation) isTxExecutionError()   {}
func (TxSizeExceeded) isTxExecutionError()        {}

func (TxInvalidAccessKey) isInvalidTxError()    {}
func (TxInvalidSignerID) isInvalidTxError()     {}
func (TxSignerDoesNotExist) isInvalidTxError()  {}
func (TxInvalidNonce) isInvalidTxError()        {}
func (TxNonceTooLarge) isInvalidTxError()       {}
func (TxInvalidReceiverID) isInvalidTxError()   {}
func (TxInvalidSignature) isInvalidTxError()    {}
func (TxNotEnoughBalance) isInvalidTxError()    {}
func (TxLackBalanceForState) isInvalidTxError() {}
func (TxCostOverflow) isInvalidTxError()        {}
func (TxInvalidChain) isInvalidTxError()        {}
func (TxExpired) isInvalidTxError()             {}
func (TxActionsValidation) isInvalidTxError()   {}
func (TxSizeExceeded) isInvalidTxError()        {}

type InvalidAccessKeyError interface {
	isInvalidAccessKeyError()
}

type AccessKeyNotFound struct {
	AccountID string
	PublicKey PublicKey
}
type AccessKeyReceiverMismatch struct{ TxReceiver, AkReceiver string }
type AccessKeyMethodNameMismatch struct{ MethodName string }
type AccessKeyRequiresFullAccess struct{}
type AccessKeyNotEnoughAllowance struct {
	AccountID string
	PublicKey PublicKey
	Allowance Uint128
	Cost      Uint128
}
type AccessKeyDepositWithFunctionCall struct{}

func (AccessKeyNotFound) isInvalidAccessKeyError()                {}
func (AccessKeyReceiverMismatch) isInvalidAccessKeyError()        {}
func (AccessKeyMethodNameMismatch) isInvalidAccessKeyError()      {}
func (AccessKeyRequiresFullAccess) isInvalidAccessKeyError()      {}
func (AccessKeyNotEnoughAllowance) isInvalidAccessKeyError()      {}
func (AccessKeyDepositWithFunctionCall) isInvalidAccessKeyError() {}

// ActionsValidationError only keeps the name of the node's variant, its
// details never reach the wire.
type ActionsValidationError struct {
	Kind string
}

type ActionErrorKind interface {
	isActionErrorKind()
}

type AccountAlreadyExists struct{ AccountID string }
type AccountDoesNotExist struct{ AccountID string }
type CreateAccountOnlyByRegistrar struct {
	AccountID          string
	RegistrarAccountID string
	PredecessorID      string
}
type CreateAccountNotAllowed struct{ AccountID, PredecessorID string }
type ActorNoPermission struct{ AccountID, ActorID string }
type DeleteKeyDoesNotExist struct {
	AccountID string
	PublicKey PublicKey
}
type AddKeyAlreadyExists struct {
	AccountID string
	PublicKey PublicKey
}
type DeleteAccountStaking struct{ AccountID string }
type LackBalanceForState struct {
	AccountID string
	Amount    Uint128
}
type TriesToUnstake struct{ AccountID string }
type TriesToStake struct {
	AccountID string
	Stake     Uint128
	Locked    Uint128
	Balance   Uint128
}
type InsufficientStake struct {
	AccountID    string
	Stake        Uint128
	MinimumStake Uint128
}
type FunctionCallErrorKind struct{ Error FunctionCallError }
type NewReceiptValidationErrorKind struct{ Error ReceiptValidationError }
type OnlyImplicitAccountCreationAllowed struct{ AccountID string }
type DeleteAccountWithLargeState struct{ AccountID string }
type DelegateActionInvalidSignature struct{}
type DelegateActionSenderDoesNotMatchTxReceiver struct{ SenderID, ReceiverID string }
type DelegateActionExpired struct{}
type DelegateActionAccessKeyError struct{ Error InvalidAccessKeyError }
type DelegateActionInvalidNonce struct{ DelegateNonce, AkNonce uint64 }
type DelegateActionNonceTooLarge struct{ DelegateNonce, UpperBound uint64 }

func (AccountAlreadyExists) isActionErrorKind()                       {}
func (AccountDoesNotExist) isActionErrorKind()                        {}
func (CreateAccountOnlyByRegistrar) isActionErrorKind()               {}
func (CreateAccountNotAllowed) isActionErrorKind()                    {}
func (ActorNoPermission) isActionErrorKind()                          {}
func (DeleteKeyDoesNotExist) isActionErrorKind()                      {}
func (AddKeyAlreadyExists) isActionErrorKind()                        {}
func (DeleteAccountStaking) isActionErrorKind()                       {}
func (LackBalanceForState) isActionErrorKind()                        {}
func (TriesToUnstake) isActionErrorKind()                             {}
func (TriesToStake) isActionErrorKind()                               {}
func (InsufficientStake) isActionErrorKind()                          {}
func (FunctionCallErrorKind) isActionErrorKind()                      {}
func (NewReceiptValidationErrorKind) isActionErrorKind()              {}
func (OnlyImplicitAccountCreationAllowed) isActionErrorKind()         {}
func (DeleteAccountWithLargeState) isActionErrorKind()                {}
func (DelegateActionInvalidSignature) isActionErrorKind()             {}
func (DelegateActionSenderDoesNotMatchTxReceiver) isActionErrorKind() {}
func (DelegateActionExpired) isActionErrorKind()                      {}
func (DelegateActionAccessKeyError) isActionErrorKind()               {}
func (DelegateActionInvalidNonce) isActionErrorKind()                 {}
func (DelegateActionNonceTooLarge) isActionErrorKind()                {}

// FunctionCallError variants. Variants wrapping a nested node enum keep the
// nested variant name in Reason.
type FunctionCallError interface {
	isFunctionCallError()
}

type CompilationError struct{ Reason string }
type LinkError struct{ Msg string }
type MethodResolveError struct{ Reason string }
type WasmTrap struct{ Reason string }
type WasmUnknownError struct{}
type HostError struct{ Reason string }
type EVMError struct{}
type ExecutionError struct{ Msg string }

func (CompilationError) isFunctionCallError()   {}
func (LinkError) isFunctionCallError()          {}
func (MethodResolveError) isFunctionCallError() {}
func (WasmTrap) isFunctionCallError()           {}
func (WasmUnknownError) isFunctionCallError()   {}
func (HostError) isFunctionCallError()          {}
func (EVMError) isFunctionCallError()           {}
func (ExecutionError) isFunctionCallError()     {}

type ReceiptValidationError interface {
	isReceiptValidationError()
}

type ReceiptInvalidPredecessorID struct{ AccountID string }
type ReceiptInvalidReceiverID struct{ AccountID string }
type ReceiptInvalidSignerID struct{ AccountID string }
type ReceiptInvalidDataReceiverID struct{ AccountID string }
type ReceiptReturnedValueLengthExceeded struct{ Length, Limit uint64 }
type ReceiptNumberInputDataDependenciesExceeded struct{ NumberOfInputDataDependencies, Limit uint64 }
type ReceiptActionsValidation struct{ Error ActionsValidationError }

func (ReceiptInvalidPredecessorID) isReceiptValidationError()                {}
func (ReceiptInvalidReceiverID) isReceiptValidationError()                   {}
func (ReceiptInvalidSignerID) isReceiptValidationError()                     {}
func (ReceiptInvalidDataReceiverID) isReceiptValidationError()               {}
func (ReceiptReturnedValueLengthExceeded) isReceiptValidationError()         {}
func (ReceiptNumberInputDataDependenciesExceeded) isReceiptValidationError() {}
func (ReceiptActionsValidation) isReceiptValidationError()                   {}
