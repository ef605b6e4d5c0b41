package pbnear

import (
	"github.com/golang/protobuf/proto"
)

type InvalidTxError int32

const (
	InvalidTxError_InvalidAccessKeyError   InvalidTxError = 0
	InvalidTxError_InvalidSignerId         InvalidTxError = 1
	InvalidTxError_SignerDoesNotExist      InvalidTxError = 2
	InvalidTxError_InvalidNonce            InvalidTxError = 3
	InvalidTxError_NonceTooLarge           InvalidTxError = 4
	InvalidTxError_InvalidReceiverId       InvalidTxError = 5
	InvalidTxError_InvalidSignature        InvalidTxError = 6
	InvalidTxError_NotEnoughBalance        InvalidTxError = 7
	InvalidTxError_LackBalanceForState     InvalidTxError = 8
	InvalidTxError_CostOverflow            InvalidTxError = 9
	InvalidTxError_InvalidChain            InvalidTxError = 10
	InvalidTxError_Expired                 InvalidTxError = 11
	InvalidTxError_ActionsValidation       InvalidTxError = 12
	InvalidTxError_TransactionSizeExceeded InvalidTxError = 13
)

var InvalidTxError_name = map[int32]string{
	0:  "InvalidAccessKeyError",
	1:  "InvalidSignerId",
	2:  "SignerDoesNotExist",
	3:  "InvalidNonce",
	4:  "NonceTooLarge",
	5:  "InvalidReceiverId",
	6:  "InvalidSignature",
	7:  "NotEnoughBalance",
	8:  "LackBalanceForState",
	9:  "CostOverflow",
	10: "InvalidChain",
	11: "Expired",
	12: "ActionsValidation",
	13: "TransactionSizeExceeded",
}

var InvalidTxError_value = map[string]int32{
	"InvalidAccessKeyError":   0,
	"InvalidSignerId":         1,
	"SignerDoesNotExist":      2,
	"InvalidNonce":            3,
	"NonceTooLarge":           4,
	"InvalidReceiverId":       5,
	"InvalidSignature":        6,
	"NotEnoughBalance":        7,
	"LackBalanceForState":     8,
	"CostOverflow":            9,
	"InvalidChain":            10,
	"Expired":                 11,
	"ActionsValidation":       12,
	"TransactionSizeExceeded": 13,
}

func (x InvalidTxError) String() string {
	return proto.EnumName(InvalidTxError_name, int32(x))
}

type FunctionCallErrorSer int32

const (
	FunctionCallErrorSer_CompilationError   FunctionCallErrorSer = 0
	FunctionCallErrorSer_LinkError          FunctionCallErrorSer = 1
	FunctionCallErrorSer_MethodResolveError FunctionCallErrorSer = 2
	FunctionCallErrorSer_WasmTrap           FunctionCallErrorSer = 3
	FunctionCallErrorSer_WasmUnknownError   FunctionCallErrorSer = 4
	FunctionCallErrorSer_HostError          FunctionCallErrorSer = 5
	FunctionCallErrorSer__EVMError          FunctionCallErrorSer = 6
	FunctionCallErrorSer_ExecutionError     FunctionCallErrorSer = 7
)

var FunctionCallErrorSer_name = map[int32]string{
	0: "CompilationError",
	1: "LinkError",
	2: "MethodResolveError",
	3: "WasmTrap",
	4: "WasmUnknownError",
	5: "HostError",
	6: "_EVMError",
	7: "ExecutionError",
}

var FunctionCallErrorSer_value = map[string]int32{
	"CompilationError":   0,
	"LinkError":          1,
	"MethodResolveError": 2,
	"WasmTrap":           3,
	"WasmUnknownError":   4,
	"HostError":          5,
	"_EVMError":          6,
	"ExecutionError":     7,
}

func (x FunctionCallErrorSer) String() string {
	return proto.EnumName(FunctionCallErrorSer_name, int32(x))
}

type ReceiptValidationError int32

const (
	ReceiptValidationError_InvalidPredecessorId                ReceiptValidationError = 0
	ReceiptValidationError_InvalidReceiverAccountId            ReceiptValidationError = 1
	ReceiptValidationError_InvalidSignerAccountId              ReceiptValidationError = 2
	ReceiptValidationError_InvalidDataReceiverId               ReceiptValidationError = 3
	ReceiptValidationError_ReturnedValueLengthExceeded         ReceiptValidationError = 4
	ReceiptValidationError_NumberInputDataDependenciesExceeded ReceiptValidationError = 5
	ReceiptValidationError_ActionsValidationError              ReceiptValidationError = 6
)

var ReceiptValidationError_name = map[int32]string{
	0: "InvalidPredecessorId",
	1: "InvalidReceiverAccountId",
	2: "InvalidSignerAccountId",
	3: "InvalidDataReceiverId",
	4: "ReturnedValueLengthExceeded",
	5: "NumberInputDataDependenciesExceeded",
	6: "ActionsValidationError",
}

var ReceiptValidationError_value = map[string]int32{
	"InvalidPredecessorId":                0,
	"InvalidReceiverAccountId":            1,
	"InvalidSignerAccountId":              2,
	"InvalidDataReceiverId":               3,
	"ReturnedValueLengthExceeded":         4,
	"NumberInputDataDependenciesExceeded": 5,
	"ActionsValidationError":              6,
}

func (x ReceiptValidationError) String() string {
	return proto.EnumName(ReceiptValidationError_name, int32(x))
}

type ActionError struct {
	Index uint64 `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	// Types that are valid to be assigned to Kind:
	//	*ActionError_AccountAlreadyExist
	//	*ActionError_AccountDoesNotExist
	//	*ActionError_CreateAccountOnlyByRegistrar
	//	*ActionError_CreateAccountNotAllowed
	//	*ActionError_ActorNoPermission
	//	*ActionError_DeleteKeyDoesNotExist
	//	*ActionError_AddKeyAlreadyExists
	//	*ActionError_DeleteAccountStaking
	//	*ActionError_LackBalanceForState
	//	*ActionError_TriesToUnstake
	//	*ActionError_TriesToStake
	//	*ActionError_InsufficientStake
	//	*ActionError_FunctionCall
	//	*ActionError_NewReceiptValidation
	//	*ActionError_OnlyImplicitAccountCreationAllowed
	//	*ActionError_DeleteAccountWithLargeState
	//	*ActionError_DelegateActionInvalidSignature
	//	*ActionError_DelegateActionSenderDoesNotMatchTxReceiver
	//	*ActionError_DelegateActionExpired
	//	*ActionError_DelegateActionAccessKeyError
	//	*ActionError_DelegateActionInvalidNonce
	//	*ActionError_DelegateActionNonceTooLarge
	Kind isActionError_Kind `protobuf_oneof:"kind"`
}

func (m *ActionError) Reset()         { *m = ActionError{} }
func (m *ActionError) String() string { return proto.CompactTextString(m) }
func (*ActionError) ProtoMessage()    {}

type isActionError_Kind interface {
	isActionError_Kind()
}

type ActionError_AccountAlreadyExist struct {
	AccountAlreadyExist *AccountAlreadyExistsErrorKind `protobuf:"bytes,21,opt,name=account_already_exist,json=accountAlreadyExist,proto3,oneof"`
}

type ActionError_AccountDoesNotExist struct {
	AccountDoesNotExist *AccountDoesNotExistErrorKind `protobuf:"bytes,22,opt,name=account_does_not_exist,json=accountDoesNotExist,proto3,oneof"`
}

type ActionError_CreateAccountOnlyByRegistrar struct {
	CreateAccountOnlyByRegistrar *CreateAccountOnlyByRegistrarErrorKind `protobuf:"bytes,23,opt,name=create_account_only_by_registrar,json=createAccountOnlyByRegistrar,proto3,oneof"`
}

type ActionError_CreateAccountNotAllowed struct {
	CreateAccountNotAllowed *CreateAccountNotAllowedErrorKind `protobuf:"bytes,24,opt,name=create_account_not_allowed,json=createAccountNotAllowed,proto3,oneof"`
}

type ActionError_ActorNoPermission struct {
	ActorNoPermission *ActorNoPermissionErrorKind `protobuf:"bytes,25,opt,name=actor_no_permission,json=actorNoPermission,proto3,oneof"`
}

type ActionError_DeleteKeyDoesNotExist struct {
	DeleteKeyDoesNotExist *DeleteKeyDoesNotExistErrorKind `protobuf:"bytes,26,opt,name=delete_key_does_not_exist,json=deleteKeyDoesNotExist,proto3,oneof"`
}

type ActionError_AddKeyAlreadyExists struct {
	AddKeyAlreadyExists *AddKeyAlreadyExistsErrorKind `protobuf:"bytes,27,opt,name=add_key_already_exists,json=addKeyAlreadyExists,proto3,oneof"`
}

type ActionError_DeleteAccountStaking struct {
	DeleteAccountStaking *DeleteAccountStakingErrorKind `protobuf:"bytes,28,opt,name=delete_account_staking,json=deleteAccountStaking,proto3,oneof"`
}

type ActionError_LackBalanceForState struct {
	LackBalanceForState *LackBalanceForStateErrorKind `protobuf:"bytes,29,opt,name=lack_balance_for_state,json=lackBalanceForState,proto3,oneof"`
}

type ActionError_TriesToUnstake struct {
	TriesToUnstake *TriesToUnstakeErrorKind `protobuf:"bytes,30,opt,name=tries_to_unstake,json=triesToUnstake,proto3,oneof"`
}

type ActionError_TriesToStake struct {
	TriesToStake *TriesToStakeErrorKind `protobuf:"bytes,31,opt,name=tries_to_stake,json=triesToStake,proto3,oneof"`
}

type ActionError_InsufficientStake struct {
	InsufficientStake *InsufficientStakeErrorKind `protobuf:"bytes,32,opt,name=insufficient_stake,json=insufficientStake,proto3,oneof"`
}

type ActionError_FunctionCall struct {
	FunctionCall *FunctionCallErrorKind `protobuf:"bytes,33,opt,name=function_call,json=functionCall,proto3,oneof"`
}

type ActionError_NewReceiptValidation struct {
	NewReceiptValidation *NewReceiptValidationErrorKind `protobuf:"bytes,34,opt,name=new_receipt_validation,json=newReceiptValidation,proto3,oneof"`
}

type ActionError_OnlyImplicitAccountCreationAllowed struct {
	OnlyImplicitAccountCreationAllowed *OnlyImplicitAccountCreationAllowedErrorKind `protobuf:"bytes,35,opt,name=only_implicit_account_creation_allowed,json=onlyImplicitAccountCreationAllowed,proto3,oneof"`
}

type ActionError_DeleteAccountWithLargeState struct {
	DeleteAccountWithLargeState *DeleteAccountWithLargeStateErrorKind `protobuf:"bytes,36,opt,name=delete_account_with_large_state,json=deleteAccountWithLargeState,proto3,oneof"`
}

type ActionError_DelegateActionInvalidSignature struct {
	DelegateActionInvalidSignature *DelegateActionInvalidSignatureKind `protobuf:"bytes,37,opt,name=delegate_action_invalid_signature,json=delegateActionInvalidSignature,proto3,oneof"`
}

type ActionError_DelegateActionSenderDoesNotMatchTxReceiver struct {
	DelegateActionSenderDoesNotMatchTxReceiver *DelegateActionSenderDoesNotMatchTxReceiverKind `protobuf:"bytes,38,opt,name=delegate_action_sender_does_not_match_tx_receiver,json=delegateActionSenderDoesNotMatchTxReceiver,proto3,oneof"`
}

type ActionError_DelegateActionExpired struct {
	DelegateActionExpired *DelegateActionExpiredKind `protobuf:"bytes,39,opt,name=delegate_action_expired,json=delegateActionExpired,proto3,oneof"`
}

type ActionError_DelegateActionAccessKeyError struct {
	DelegateActionAccessKeyError *DelegateActionAccessKeyErrorKind `protobuf:"bytes,40,opt,name=delegate_action_access_key_error,json=delegateActionAccessKeyError,proto3,oneof"`
}

type ActionError_DelegateActionInvalidNonce struct {
	DelegateActionInvalidNonce *DelegateActionInvalidNonceKind `protobuf:"bytes,41,opt,name=delegate_action_invalid_nonce,json=delegateActionInvalidNonce,proto3,oneof"`
}

type ActionError_DelegateActionNonceTooLarge struct {
	DelegateActionNonceTooLarge *DelegateActionNonceTooLargeKind `protobuf:"bytes,42,opt,name=delegate_action_nonce_too_large,json=delegateActionNonceTooLarge,proto3,oneof"`
}

func (*ActionError_AccountAlreadyExist) isActionError_Kind()                        {}
func (*ActionError_AccountDoesNotExist) isActionError_Kind()                        {}
func (*ActionError_CreateAccountOnlyByRegistrar) isActionError_Kind()               {}
func (*ActionError_CreateAccountNotAllowed) isActionError_Kind()                    {}
func (*ActionError_ActorNoPermission) isActionError_Kind()                          {}
func (*ActionError_DeleteKeyDoesNotExist) isActionError_Kind()                      {}
func (*ActionError_AddKeyAlreadyExists) isActionError_Kind()                        {}
func (*ActionError_DeleteAccountStaking) isActionError_Kind()                       {}
func (*ActionError_LackBalanceForState) isActionError_Kind()                        {}
func (*ActionError_TriesToUnstake) isActionError_Kind()                             {}
func (*ActionError_TriesToStake) isActionError_Kind()                               {}
func (*ActionError_InsufficientStake) isActionError_Kind()                          {}
func (*ActionError_FunctionCall) isActionError_Kind()                               {}
func (*ActionError_NewReceiptValidation) isActionError_Kind()                       {}
func (*ActionError_OnlyImplicitAccountCreationAllowed) isActionError_Kind()         {}
func (*ActionError_DeleteAccountWithLargeState) isActionError_Kind()                {}
func (*ActionError_DelegateActionInvalidSignature) isActionError_Kind()             {}
func (*ActionError_DelegateActionSenderDoesNotMatchTxReceiver) isActionError_Kind() {}
func (*ActionError_DelegateActionExpired) isActionError_Kind()                      {}
func (*ActionError_DelegateActionAccessKeyError) isActionError_Kind()               {}
func (*ActionError_DelegateActionInvalidNonce) isActionError_Kind()                 {}
func (*ActionError_DelegateActionNonceTooLarge) isActionError_Kind()                {}

func (m *ActionError) GetKind() isActionError_Kind {
	if m != nil {
		return m.Kind
	}
	return nil
}

func (m *ActionError) GetAccountAlreadyExist() *AccountAlreadyExistsErrorKind {
	if x, ok := m.GetKind().(*ActionError_AccountAlreadyExist); ok {
		return x.AccountAlreadyExist
	}
	return nil
}

func (m *ActionError) GetAccountDoesNotExist() *AccountDoesNotExistErrorKind {
	if x, ok := m.GetKind().(*ActionError_AccountDoesNotExist); ok {
		return x.AccountDoesNotExist
	}
	return nil
}

func (m *ActionError) GetCreateAccountOnlyByRegistrar() *CreateAccountOnlyByRegistrarErrorKind {
	if x, ok := m.GetKind().(*ActionError_CreateAccountOnlyByRegistrar); ok {
		return x.CreateAccountOnlyByRegistrar
	}
	return nil
}

func (m *ActionError) GetCreateAccountNotAllowed() *CreateAccountNotAllowedErrorKind {
	if x, ok := m.GetKind().(*ActionError_CreateAccountNotAllowed); ok {
		return x.CreateAccountNotAllowed
	}
	return nil
}

func (m *ActionError) GetActorNoPermission() *ActorNoPermissionErrorKind {
	if x, ok := m.GetKind().(*ActionError_ActorNoPermission); ok {
		return x.ActorNoPermission
	}
	return nil
}

func (m *ActionError) GetDeleteKeyDoesNotExist() *DeleteKeyDoesNotExistErrorKind {
	if x, ok := m.GetKind().(*ActionError_DeleteKeyDoesNotExist); ok {
		return x.DeleteKeyDoesNotExist
	}
	return nil
}

func (m *ActionError) GetAddKeyAlreadyExists() *AddKeyAlreadyExistsErrorKind {
	if x, ok := m.GetKind().(*ActionError_AddKeyAlreadyExists); ok {
		return x.AddKeyAlreadyExists
	}
	return nil
}

func (m *ActionError) GetDeleteAccountStaking() *DeleteAccountStakingErrorKind {
	if x, ok := m.GetKind().(*ActionError_DeleteAccountStaking); ok {
		return x.DeleteAccountStaking
	}
	return nil
}

func (m *ActionError) GetLackBalanceForState() *LackBalanceForStateErrorKind {
	if x, ok := m.GetKind().(*ActionError_LackBalanceForState); ok {
		return x.LackBalanceForState
	}
	return nil
}

func (m *ActionError) GetTriesToUnstake() *TriesToUnstakeErrorKind {
	if x, ok := m.GetKind().(*ActionError_TriesToUnstake); ok {
		return x.TriesToUnstake
	}
	return nil
}

func (m *ActionError) GetTriesToStake() *TriesToStakeErrorKind {
	if x, ok := m.GetKind().(*ActionError_TriesToStake); ok {
		return x.TriesToStake
	}
	return nil
}

func (m *ActionError) GetInsufficientStake() *InsufficientStakeErrorKind {
	if x, ok := m.GetKind().(*ActionError_InsufficientStake); ok {
		return x.InsufficientStake
	}
	return nil
}

func (m *ActionError) GetFunctionCall() *FunctionCallErrorKind {
	if x, ok := m.GetKind().(*ActionError_FunctionCall); ok {
		return x.FunctionCall
	}
	return nil
}

func (m *ActionError) GetNewReceiptValidation() *NewReceiptValidationErrorKind {
	if x, ok := m.GetKind().(*ActionError_NewReceiptValidation); ok {
		return x.NewReceiptValidation
	}
	return nil
}

func (m *ActionError) GetOnlyImplicitAccountCreationAllowed() *OnlyImplicitAccountCreationAllowedErrorKind {
	if x, ok := m.GetKind().(*ActionError_OnlyImplicitAccountCreationAllowed); ok {
		return x.OnlyImplicitAccountCreationAllowed
	}
	return nil
}

func (m *ActionError) GetDeleteAccountWithLargeState() *DeleteAccountWithLargeStateErrorKind {
	if x, ok := m.GetKind().(*ActionError_DeleteAccountWithLargeState); ok {
		return x.DeleteAccountWithLargeState
	}
	return nil
}

func (m *ActionError) GetDelegateActionInvalidSignature() *DelegateActionInvalidSignatureKind {
	if x, ok := m.GetKind().(*ActionError_DelegateActionInvalidSignature); ok {
		return x.DelegateActionInvalidSignature
	}
	return nil
}

func (m *ActionError) GetDelegateActionSenderDoesNotMatchTxReceiver() *DelegateActionSenderDoesNotMatchTxReceiverKind {
	if x, ok := m.GetKind().(*ActionError_DelegateActionSenderDoesNotMatchTxReceiver); ok {
		return x.DelegateActionSenderDoesNotMatchTxReceiver
	}
	return nil
}

func (m *ActionError) GetDelegateActionExpired() *DelegateActionExpiredKind {
	if x, ok := m.GetKind().(*ActionError_DelegateActionExpired); ok {
		return x.DelegateActionExpired
	}
	return nil
}

func (m *ActionError) GetDelegateActionAccessKeyError() *DelegateActionAccessKeyErrorKind {
	if x, ok := m.GetKind().(*ActionError_DelegateActionAccessKeyError); ok {
		return x.DelegateActionAccessKeyError
	}
	return nil
}

func (m *ActionError) GetDelegateActionInvalidNonce() *DelegateActionInvalidNonceKind {
	if x, ok := m.GetKind().(*ActionError_DelegateActionInvalidNonce); ok {
		return x.DelegateActionInvalidNonce
	}
	return nil
}

func (m *ActionError) GetDelegateActionNonceTooLarge() *DelegateActionNonceTooLargeKind {
	if x, ok := m.GetKind().(*ActionError_DelegateActionNonceTooLarge); ok {
		return x.DelegateActionNonceTooLarge
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*ActionError) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*ActionError_AccountAlreadyExist)(nil),
		(*ActionError_AccountDoesNotExist)(nil),
		(*ActionError_CreateAccountOnlyByRegistrar)(nil),
		(*ActionError_CreateAccountNotAllowed)(nil),
		(*ActionError_ActorNoPermission)(nil),
		(*ActionError_DeleteKeyDoesNotExist)(nil),
		(*ActionError_AddKeyAlreadyExists)(nil),
		(*ActionError_DeleteAccountStaking)(nil),
		(*ActionError_LackBalanceForState)(nil),
		(*ActionError_TriesToUnstake)(nil),
		(*ActionError_TriesToStake)(nil),
		(*ActionError_InsufficientStake)(nil),
		(*ActionError_FunctionCall)(nil),
		(*ActionError_NewReceiptValidation)(nil),
		(*ActionError_OnlyImplicitAccountCreationAllowed)(nil),
		(*ActionError_DeleteAccountWithLargeState)(nil),
		(*ActionError_DelegateActionInvalidSignature)(nil),
		(*ActionError_DelegateActionSenderDoesNotMatchTxReceiver)(nil),
		(*ActionError_DelegateActionExpired)(nil),
		(*ActionError_DelegateActionAccessKeyError)(nil),
		(*ActionError_DelegateActionInvalidNonce)(nil),
		(*ActionError_DelegateActionNonceTooLarge)(nil),
	}
}

type AccountAlreadyExistsErrorKind struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *AccountAlreadyExistsErrorKind) Reset()         { *m = AccountAlreadyExistsErrorKind{} }
func (m *AccountAlreadyExistsErrorKind) String() string { return proto.CompactTextString(m) }
func (*AccountAlreadyExistsErrorKind) ProtoMessage()    {}

type AccountDoesNotExistErrorKind struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *AccountDoesNotExistErrorKind) Reset()         { *m = AccountDoesNotExistErrorKind{} }
func (m *AccountDoesNotExistErrorKind) String() string { return proto.CompactTextString(m) }
func (*AccountDoesNotExistErrorKind) ProtoMessage()    {}

type CreateAccountOnlyByRegistrarErrorKind struct {
	AccountId          string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	RegistrarAccountId string `protobuf:"bytes,2,opt,name=registrar_account_id,json=registrarAccountId,proto3" json:"registrar_account_id,omitempty"`
	PredecessorId      string `protobuf:"bytes,3,opt,name=predecessor_id,json=predecessorId,proto3" json:"predecessor_id,omitempty"`
}

func (m *CreateAccountOnlyByRegistrarErrorKind) Reset()         { *m = CreateAccountOnlyByRegistrarErrorKind{} }
func (m *CreateAccountOnlyByRegistrarErrorKind) String() string { return proto.CompactTextString(m) }
func (*CreateAccountOnlyByRegistrarErrorKind) ProtoMessage()    {}

type CreateAccountNotAllowedErrorKind struct {
	AccountId     string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	PredecessorId string `protobuf:"bytes,2,opt,name=predecessor_id,json=predecessorId,proto3" json:"predecessor_id,omitempty"`
}

func (m *CreateAccountNotAllowedErrorKind) Reset()         { *m = CreateAccountNotAllowedErrorKind{} }
func (m *CreateAccountNotAllowedErrorKind) String() string { return proto.CompactTextString(m) }
func (*CreateAccountNotAllowedErrorKind) ProtoMessage()    {}

type ActorNoPermissionErrorKind struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	ActorId   string `protobuf:"bytes,2,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
}

func (m *ActorNoPermissionErrorKind) Reset()         { *m = ActorNoPermissionErrorKind{} }
func (m *ActorNoPermissionErrorKind) String() string { return proto.CompactTextString(m) }
func (*ActorNoPermissionErrorKind) ProtoMessage()    {}

type DeleteKeyDoesNotExistErrorKind struct {
	AccountId string     `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	PublicKey *PublicKey `protobuf:"bytes,2,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
}

func (m *DeleteKeyDoesNotExistErrorKind) Reset()         { *m = DeleteKeyDoesNotExistErrorKind{} }
func (m *DeleteKeyDoesNotExistErrorKind) String() string { return proto.CompactTextString(m) }
func (*DeleteKeyDoesNotExistErrorKind) ProtoMessage()    {}

type AddKeyAlreadyExistsErrorKind struct {
	AccountId string     `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	PublicKey *PublicKey `protobuf:"bytes,2,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
}

func (m *AddKeyAlreadyExistsErrorKind) Reset()         { *m = AddKeyAlreadyExistsErrorKind{} }
func (m *AddKeyAlreadyExistsErrorKind) String() string { return proto.CompactTextString(m) }
func (*AddKeyAlreadyExistsErrorKind) ProtoMessage()    {}

type DeleteAccountStakingErrorKind struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *DeleteAccountStakingErrorKind) Reset()         { *m = DeleteAccountStakingErrorKind{} }
func (m *DeleteAccountStakingErrorKind) String() string { return proto.CompactTextString(m) }
func (*DeleteAccountStakingErrorKind) ProtoMessage()    {}

type LackBalanceForStateErrorKind struct {
	AccountId string  `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Balance   *BigInt `protobuf:"bytes,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *LackBalanceForStateErrorKind) Reset()         { *m = LackBalanceForStateErrorKind{} }
func (m *LackBalanceForStateErrorKind) String() string { return proto.CompactTextString(m) }
func (*LackBalanceForStateErrorKind) ProtoMessage()    {}

type TriesToUnstakeErrorKind struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *TriesToUnstakeErrorKind) Reset()         { *m = TriesToUnstakeErrorKind{} }
func (m *TriesToUnstakeErrorKind) String() string { return proto.CompactTextString(m) }
func (*TriesToUnstakeErrorKind) ProtoMessage()    {}

type TriesToStakeErrorKind struct {
	AccountId string  `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Stake     *BigInt `protobuf:"bytes,2,opt,name=stake,proto3" json:"stake,omitempty"`
	Locked    *BigInt `protobuf:"bytes,3,opt,name=locked,proto3" json:"locked,omitempty"`
	Balance   *BigInt `protobuf:"bytes,4,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *TriesToStakeErrorKind) Reset()         { *m = TriesToStakeErrorKind{} }
func (m *TriesToStakeErrorKind) String() string { return proto.CompactTextString(m) }
func (*TriesToStakeErrorKind) ProtoMessage()    {}

type InsufficientStakeErrorKind struct {
	AccountId    string  `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Stake        *BigInt `protobuf:"bytes,2,opt,name=stake,proto3" json:"stake,omitempty"`
	MinimumStake *BigInt `protobuf:"bytes,3,opt,name=minimum_stake,json=minimumStake,proto3" json:"minimum_stake,omitempty"`
}

func (m *InsufficientStakeErrorKind) Reset()         { *m = InsufficientStakeErrorKind{} }
func (m *InsufficientStakeErrorKind) String() string { return proto.CompactTextString(m) }
func (*InsufficientStakeErrorKind) ProtoMessage()    {}

type FunctionCallErrorKind struct {
	Error FunctionCallErrorSer `protobuf:"varint,1,opt,name=error,proto3,enum=sf.near.type.v1.FunctionCallErrorSer" json:"error,omitempty"`
}

func (m *FunctionCallErrorKind) Reset()         { *m = FunctionCallErrorKind{} }
func (m *FunctionCallErrorKind) String() string { return proto.CompactTextString(m) }
func (*FunctionCallErrorKind) ProtoMessage()    {}

type NewReceiptValidationErrorKind struct {
	Error ReceiptValidationError `protobuf:"varint,1,opt,name=error,proto3,enum=sf.near.type.v1.ReceiptValidationError" json:"error,omitempty"`
}

func (m *NewReceiptValidationErrorKind) Reset()         { *m = NewReceiptValidationErrorKind{} }
func (m *NewReceiptValidationErrorKind) String() string { return proto.CompactTextString(m) }
func (*NewReceiptValidationErrorKind) ProtoMessage()    {}

type OnlyImplicitAccountCreationAllowedErrorKind struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *OnlyImplicitAccountCreationAllowedErrorKind) Reset()         { *m = OnlyImplicitAccountCreationAllowedErrorKind{} }
func (m *OnlyImplicitAccountCreationAllowedErrorKind) String() string { return proto.CompactTextString(m) }
func (*OnlyImplicitAccountCreationAllowedErrorKind) ProtoMessage()    {}

type DeleteAccountWithLargeStateErrorKind struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *DeleteAccountWithLargeStateErrorKind) Reset()         { *m = DeleteAccountWithLargeStateErrorKind{} }
func (m *DeleteAccountWithLargeStateErrorKind) String() string { return proto.CompactTextString(m) }
func (*DeleteAccountWithLargeStateErrorKind) ProtoMessage()    {}

type DelegateActionInvalidSignatureKind struct {
}

func (m *DelegateActionInvalidSignatureKind) Reset()         { *m = DelegateActionInvalidSignatureKind{} }
func (m *DelegateActionInvalidSignatureKind) String() string { return proto.CompactTextString(m) }
func (*DelegateActionInvalidSignatureKind) ProtoMessage()    {}

type DelegateActionSenderDoesNotMatchTxReceiverKind struct {
	SenderId   string `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	ReceiverId string `protobuf:"bytes,2,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
}

func (m *DelegateActionSenderDoesNotMatchTxReceiverKind) Reset()         { *m = DelegateActionSenderDoesNotMatchTxReceiverKind{} }
func (m *DelegateActionSenderDoesNotMatchTxReceiverKind) String() string { return proto.CompactTextString(m) }
func (*DelegateActionSenderDoesNotMatchTxReceiverKind) ProtoMessage()    {}

type DelegateActionExpiredKind struct {
}

func (m *DelegateActionExpiredKind) Reset()         { *m = DelegateActionExpiredKind{} }
func (m *DelegateActionExpiredKind) String() string { return proto.CompactTextString(m) }
func (*DelegateActionExpiredKind) ProtoMessage()    {}

type DelegateActionAccessKeyErrorKind struct {
	Error InvalidTxError `protobuf:"varint,1,opt,name=error,proto3,enum=sf.near.type.v1.InvalidTxError" json:"error,omitempty"`
}

func (m *DelegateActionAccessKeyErrorKind) Reset()         { *m = DelegateActionAccessKeyErrorKind{} }
func (m *DelegateActionAccessKeyErrorKind) String() string { return proto.CompactTextString(m) }
func (*DelegateActionAccessKeyErrorKind) ProtoMessage()    {}

type DelegateActionInvalidNonceKind struct {
	DelegateNonce uint64 `protobuf:"varint,1,opt,name=delegate_nonce,json=delegateNonce,proto3" json:"delegate_nonce,omitempty"`
	AkNonce       uint64 `protobuf:"varint,2,opt,name=ak_nonce,json=akNonce,proto3" json:"ak_nonce,omitempty"`
}

func (m *DelegateActionInvalidNonceKind) Reset()         { *m = DelegateActionInvalidNonceKind{} }
func (m *DelegateActionInvalidNonceKind) String() string { return proto.CompactTextString(m) }
func (*DelegateActionInvalidNonceKind) ProtoMessage()    {}

type DelegateActionNonceTooLargeKind struct {
	DelegateNonce uint64 `protobuf:"varint,1,opt,name=delegate_nonce,json=delegateNonce,proto3" json:"delegate_nonce,omitempty"`
	UpperBound    uint64 `protobuf:"varint,2,opt,name=upper_bound,json=upperBound,proto3" json:"upper_bound,omitempty"`
}

func (m *DelegateActionNonceTooLargeKind) Reset()         { *m = DelegateActionNonceTooLargeKind{} }
func (m *DelegateActionNonceTooLargeKind) String() string { return proto.CompactTextString(m) }
func (*DelegateActionNonceTooLargeKind) ProtoMessage()    {}
