package codec

import (
	"fmt"

	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
)

func TxExecutionErrorToProto(in near.TxExecutionError) (*pbnear.FailureExecutionStatus, error) {
	switch e := in.(type) {
	case near.ActionError:
		actionError, err := ActionErrorToProto(e)
		if err != nil {
			return nil, err
		}
		return &pbnear.FailureExecutionStatus{Failure: &pbnear.FailureExecutionStatus_ActionError{ActionError: actionError}}, nil

	case near.InvalidTxError:
		code, err := InvalidTxErrorToProto(e)
		if err != nil {
			return nil, err
		}
		return &pbnear.FailureExecutionStatus{Failure: &pbnear.FailureExecutionStatus_InvalidTxError{InvalidTxError: code}}, nil
	}

	return nil, unknownVariant("tx execution error", in)
}

// InvalidTxErrorToProto keeps the variant only, payloads are dropped.
func InvalidTxErrorToProto(in near.InvalidTxError) (pbnear.InvalidTxError, error) {
	switch in.(type) {
	case near.TxInvalidAccessKey:
		return pbnear.InvalidTxError_InvalidAccessKeyError, nil
	case near.TxInvalidSignerID:
		return pbnear.InvalidTxError_InvalidSignerId, nil
	case near.TxSignerDoesNotExist:
		return pbnear.InvalidTxError_SignerDoesNotExist, nil
	case near.TxInvalidNonce:
		return pbnear.InvalidTxError_InvalidNonce, nil
	case near.TxNonceTooLarge:
		return pbnear.InvalidTxError_NonceTooLarge, nil
	case near.TxInvalidReceiverID:
		return pbnear.InvalidTxError_InvalidReceiverId, nil
	case near.TxInvalidSignature:
		return pbnear.InvalidTxError_InvalidSignature, nil
	case near.TxNotEnoughBalance:
		return pbnear.InvalidTxError_NotEnoughBalance, nil
	case near.TxLackBalanceForState:
		return pbnear.InvalidTxError_LackBalanceForState, nil
	case near.TxCostOverflow:
		return pbnear.InvalidTxError_CostOverflow, nil
	case near.TxInvalidChain:
		return pbnear.InvalidTxError_InvalidChain, nil
	case near.TxExpired:
		return pbnear.InvalidTxError_Expired, nil
	case near.TxActionsValidation:
		return pbnear.InvalidTxError_ActionsValidation, nil
	case near.TxSizeExceeded:
		return pbnear.InvalidTxError_TransactionSizeExceeded, nil
	}

	return 0, unknownVariant("invalid tx error", in)
}

// FunctionCallErrorToProto collapses the node's nested function call error
// tree to its top level variant, messages and nested reasons are dropped.
func FunctionCallErrorToProto(in near.FunctionCallError) (pbnear.FunctionCallErrorSer, error) {
	switch in.(type) {
	case near.CompilationError:
		return pbnear.FunctionCallErrorSer_CompilationError, nil
	case near.LinkError:
		return pbnear.FunctionCallErrorSer_LinkError, nil
	case near.MethodResolveError:
		return pbnear.FunctionCallErrorSer_MethodResolveError, nil
	case near.WasmTrap:
		return pbnear.FunctionCallErrorSer_WasmTrap, nil
	case near.WasmUnknownError:
		return pbnear.FunctionCallErrorSer_WasmUnknownError, nil
	case near.HostError:
		return pbnear.FunctionCallErrorSer_HostError, nil
	case near.EVMError:
		return pbnear.FunctionCallErrorSer__EVMError, nil
	case near.ExecutionError:
		return pbnear.FunctionCallErrorSer_ExecutionError, nil
	}

	return 0, unknownVariant("function call error", in)
}

// ReceiptValidationErrorToProto keeps the variant only, same as function call
// errors.
func ReceiptValidationErrorToProto(in near.ReceiptValidationError) (pbnear.ReceiptValidationError, error) {
	switch in.(type) {
	case near.ReceiptInvalidPredecessorID:
		return pbnear.ReceiptValidationError_InvalidPredecessorId, nil
	case near.ReceiptInvalidReceiverID:
		return pbnear.ReceiptValidationError_InvalidReceiverAccountId, nil
	case near.ReceiptInvalidSignerID:
		return pbnear.ReceiptValidationError_InvalidSignerAccountId, nil
	case near.ReceiptInvalidDataReceiverID:
		return pbnear.ReceiptValidationError_InvalidDataReceiverId, nil
	case near.ReceiptReturnedValueLengthExceeded:
		return pbnear.ReceiptValidationError_ReturnedValueLengthExceeded, nil
	case near.ReceiptNumberInputDataDependenciesExceeded:
		return pbnear.ReceiptValidationError_NumberInputDataDependenciesExceeded, nil
	case near.ReceiptActionsValidation:
		return pbnear.ReceiptValidationError_ActionsValidationError, nil
	}

	return 0, unknownVariant("receipt validation error", in)
}

// ActionErrorToProto maps an absent index to 0, the wire field is not optional.
func ActionErrorToProto(in near.ActionError) (*pbnear.ActionError, error) {
	out, err := ActionErrorKindToProto(in.Kind)
	if err != nil {
		return nil, fmt.Errorf("action error: %w", err)
	}

	if in.Index != nil {
		out.Index = *in.Index
	}
	return out, nil
}

// ActionErrorKindToProto returns an ActionError with only its kind set.
func ActionErrorKindToProto(in near.ActionErrorKind) (*pbnear.ActionError, error) {
	out := &pbnear.ActionError{}

	switch k := in.(type) {
	case near.AccountAlreadyExists:
		out.Kind = &pbnear.ActionError_AccountAlreadyExist{AccountAlreadyExist: &pbnear.AccountAlreadyExistsErrorKind{
			AccountId: k.AccountID,
		}}

	case near.AccountDoesNotExist:
		out.Kind = &pbnear.ActionError_AccountDoesNotExist{AccountDoesNotExist: &pbnear.AccountDoesNotExistErrorKind{
			AccountId: k.AccountID,
		}}

	case near.CreateAccountOnlyByRegistrar:
		out.Kind = &pbnear.ActionError_CreateAccountOnlyByRegistrar{CreateAccountOnlyByRegistrar: &pbnear.CreateAccountOnlyByRegistrarErrorKind{
			AccountId:          k.AccountID,
			RegistrarAccountId: k.RegistrarAccountID,
			PredecessorId:      k.PredecessorID,
		}}

	case near.CreateAccountNotAllowed:
		out.Kind = &pbnear.ActionError_CreateAccountNotAllowed{CreateAccountNotAllowed: &pbnear.CreateAccountNotAllowedErrorKind{
			AccountId:     k.AccountID,
			PredecessorId: k.PredecessorID,
		}}

	case near.ActorNoPermission:
		out.Kind = &pbnear.ActionError_ActorNoPermission{ActorNoPermission: &pbnear.ActorNoPermissionErrorKind{
			AccountId: k.AccountID,
			ActorId:   k.ActorID,
		}}

	case near.DeleteKeyDoesNotExist:
		publicKey, err := PublicKeyToProto(k.PublicKey)
		if err != nil {
			return nil, err
		}
		out.Kind = &pbnear.ActionError_DeleteKeyDoesNotExist{DeleteKeyDoesNotExist: &pbnear.DeleteKeyDoesNotExistErrorKind{
			AccountId: k.AccountID,
			PublicKey: publicKey,
		}}

	case near.AddKeyAlreadyExists:
		publicKey, err := PublicKeyToProto(k.PublicKey)
		if err != nil {
			return nil, err
		}
		out.Kind = &pbnear.ActionError_AddKeyAlreadyExists{AddKeyAlreadyExists: &pbnear.AddKeyAlreadyExistsErrorKind{
			AccountId: k.AccountID,
			PublicKey: publicKey,
		}}

	case near.DeleteAccountStaking:
		out.Kind = &pbnear.ActionError_DeleteAccountStaking{DeleteAccountStaking: &pbnear.DeleteAccountStakingErrorKind{
			AccountId: k.AccountID,
		}}

	case near.LackBalanceForState:
		out.Kind = &pbnear.ActionError_LackBalanceForState{LackBalanceForState: &pbnear.LackBalanceForStateErrorKind{
			AccountId: k.AccountID,
			Balance:   BigIntToProto(k.Amount),
		}}

	case near.TriesToUnstake:
		out.Kind = &pbnear.ActionError_TriesToUnstake{TriesToUnstake: &pbnear.TriesToUnstakeErrorKind{
			AccountId: k.AccountID,
		}}

	case near.TriesToStake:
		out.Kind = &pbnear.ActionError_TriesToStake{TriesToStake: &pbnear.TriesToStakeErrorKind{
			AccountId: k.AccountID,
			Stake:     BigIntToProto(k.Stake),
			Locked:    BigIntToProto(k.Locked),
			Balance:   BigIntToProto(k.Balance),
		}}

	case near.InsufficientStake:
		out.Kind = &pbnear.ActionError_InsufficientStake{InsufficientStake: &pbnear.InsufficientStakeErrorKind{
			AccountId:    k.AccountID,
			Stake:        BigIntToProto(k.Stake),
			MinimumStake: BigIntToProto(k.MinimumStake),
		}}

	case near.FunctionCallErrorKind:
		code, err := FunctionCallErrorToProto(k.Error)
		if err != nil {
			return nil, err
		}
		out.Kind = &pbnear.ActionError_FunctionCall{FunctionCall: &pbnear.FunctionCallErrorKind{Error: code}}

	case near.NewReceiptValidationErrorKind:
		code, err := ReceiptValidationErrorToProto(k.Error)
		if err != nil {
			return nil, err
		}
		out.Kind = &pbnear.ActionError_NewReceiptValidation{NewReceiptValidation: &pbnear.NewReceiptValidationErrorKind{Error: code}}

	case near.OnlyImplicitAccountCreationAllowed:
		out.Kind = &pbnear.ActionError_OnlyImplicitAccountCreationAllowed{OnlyImplicitAccountCreationAllowed: &pbnear.OnlyImplicitAccountCreationAllowedErrorKind{
			AccountId: k.AccountID,
		}}

	case near.DeleteAccountWithLargeState:
		out.Kind = &pbnear.ActionError_DeleteAccountWithLargeState{DeleteAccountWithLargeState: &pbnear.DeleteAccountWithLargeStateErrorKind{
			AccountId: k.AccountID,
		}}

	case near.DelegateActionInvalidSignature:
		out.Kind = &pbnear.ActionError_DelegateActionInvalidSignature{DelegateActionInvalidSignature: &pbnear.DelegateActionInvalidSignatureKind{}}

	case near.DelegateActionSenderDoesNotMatchTxReceiver:
		out.Kind = &pbnear.ActionError_DelegateActionSenderDoesNotMatchTxReceiver{DelegateActionSenderDoesNotMatchTxReceiver: &pbnear.DelegateActionSenderDoesNotMatchTxReceiverKind{
			SenderId:   k.SenderID,
			ReceiverId: k.ReceiverID,
		}}

	case near.DelegateActionExpired:
		out.Kind = &pbnear.ActionError_DelegateActionExpired{DelegateActionExpired: &pbnear.DelegateActionExpiredKind{}}

	case near.DelegateActionAccessKeyError:
		if k.Error == nil {
			return nil, unknownVariant("delegate action access key error", k.Error)
		}
		// The wire only knows the transaction level code for access key errors.
		out.Kind = &pbnear.ActionError_DelegateActionAccessKeyError{DelegateActionAccessKeyError: &pbnear.DelegateActionAccessKeyErrorKind{
			Error: pbnear.InvalidTxError_InvalidAccessKeyError,
		}}

	case near.DelegateActionInvalidNonce:
		out.Kind = &pbnear.ActionError_DelegateActionInvalidNonce{DelegateActionInvalidNonce: &pbnear.DelegateActionInvalidNonceKind{
			DelegateNonce: k.DelegateNonce,
			AkNonce:       k.AkNonce,
		}}

	case near.DelegateActionNonceTooLarge:
		out.Kind = &pbnear.ActionError_DelegateActionNonceTooLarge{DelegateActionNonceTooLarge: &pbnear.DelegateActionNonceTooLargeKind{
			DelegateNonce: k.DelegateNonce,
			UpperBound:    k.UpperBound,
		}}

	default:
		return nil, unknownVariant("action error kind", in)
	}

	return out, nil
}
