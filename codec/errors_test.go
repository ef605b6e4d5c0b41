package codec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allInvalidTxErrors = []near.InvalidTxError{
	near.TxInvalidAccessKey{Error: near.AccessKeyRequiresFullAccess{}},
	near.TxInvalidSignerID{SignerID: "a"},
	near.TxSignerDoesNotExist{SignerID: "a"},
	near.TxInvalidNonce{TxNonce: 1, AkNonce: 2},
	near.TxNonceTooLarge{TxNonce: 1, UpperBound: 2},
	near.TxInvalidReceiverID{ReceiverID: "b"},
	near.TxInvalidSignature{},
	near.TxNotEnoughBalance{SignerID: "a", Balance: near.NewUint128(1), Cost: near.NewUint128(2)},
	near.TxLackBalanceForState{SignerID: "a", Amount: near.NewUint128(1)},
	near.TxCostOverflow{},
	near.TxInvalidChain{},
	near.TxExpired{},
	near.TxActionsValidation{Error: near.ActionsValidationError{Kind: "DeleteActionMustBeFinal"}},
	near.TxSizeExceeded{Size: 10, Limit: 5},
}

var allFunctionCallErrors = []near.FunctionCallError{
	near.CompilationError{Reason: "CodeDoesNotExist"},
	near.LinkError{Msg: "link"},
	near.MethodResolveError{Reason: "MethodNotFound"},
	near.WasmTrap{Reason: "Unreachable"},
	near.WasmUnknownError{},
	near.HostError{Reason: "GasExceeded"},
	near.EVMError{},
	near.ExecutionError{Msg: "panicked"},
}

var allReceiptValidationErrors = []near.ReceiptValidationError{
	near.ReceiptInvalidPredecessorID{AccountID: "a"},
	near.ReceiptInvalidReceiverID{AccountID: "a"},
	near.ReceiptInvalidSignerID{AccountID: "a"},
	near.ReceiptInvalidDataReceiverID{AccountID: "a"},
	near.ReceiptReturnedValueLengthExceeded{Length: 2, Limit: 1},
	near.ReceiptNumberInputDataDependenciesExceeded{NumberOfInputDataDependencies: 2, Limit: 1},
	near.ReceiptActionsValidation{Error: near.ActionsValidationError{Kind: "TotalPrepaidGasExceeded"}},
}

func allActionErrorKinds() []near.ActionErrorKind {
	key := near.TestPublicKey(0x01)
	return []near.ActionErrorKind{
		near.AccountAlreadyExists{AccountID: "a"},
		near.AccountDoesNotExist{AccountID: "a"},
		near.CreateAccountOnlyByRegistrar{AccountID: "a", RegistrarAccountID: "registrar", PredecessorID: "p"},
		near.CreateAccountNotAllowed{AccountID: "a", PredecessorID: "p"},
		near.ActorNoPermission{AccountID: "a", ActorID: "actor"},
		near.DeleteKeyDoesNotExist{AccountID: "a", PublicKey: key},
		near.AddKeyAlreadyExists{AccountID: "a", PublicKey: key},
		near.DeleteAccountStaking{AccountID: "a"},
		near.LackBalanceForState{AccountID: "a", Amount: near.NewUint128(5)},
		near.TriesToUnstake{AccountID: "a"},
		near.TriesToStake{AccountID: "a", Stake: near.NewUint128(1), Locked: near.NewUint128(2), Balance: near.NewUint128(3)},
		near.InsufficientStake{AccountID: "a", Stake: near.NewUint128(1), MinimumStake: near.NewUint128(2)},
		near.FunctionCallErrorKind{Error: near.ExecutionError{Msg: "boom"}},
		near.NewReceiptValidationErrorKind{Error: near.ReceiptInvalidSignerID{AccountID: "a"}},
		near.OnlyImplicitAccountCreationAllowed{AccountID: "a"},
		near.DeleteAccountWithLargeState{AccountID: "a"},
		near.DelegateActionInvalidSignature{},
		near.DelegateActionSenderDoesNotMatchTxReceiver{SenderID: "s", ReceiverID: "r"},
		near.DelegateActionExpired{},
		near.DelegateActionAccessKeyError{Error: near.AccessKeyNotFound{AccountID: "a", PublicKey: key}},
		near.DelegateActionInvalidNonce{DelegateNonce: 4, AkNonce: 5},
		near.DelegateActionNonceTooLarge{DelegateNonce: 4, UpperBound: 3},
	}
}

func TestInvalidTxErrorToProto_Exhaustive(t *testing.T) {
	seen := map[pbnear.InvalidTxError]bool{}
	for _, in := range allInvalidTxErrors {
		code, err := InvalidTxErrorToProto(in)
		require.NoError(t, err, "%T", in)
		assert.False(t, seen[code], "%T maps to already used code %s", in, code)
		seen[code] = true
	}

	assert.Len(t, seen, len(pbnear.InvalidTxError_name), "every wire code must be reachable")
}

func TestFunctionCallErrorToProto_Exhaustive(t *testing.T) {
	seen := map[pbnear.FunctionCallErrorSer]bool{}
	for _, in := range allFunctionCallErrors {
		code, err := FunctionCallErrorToProto(in)
		require.NoError(t, err, "%T", in)
		assert.False(t, seen[code], "%T maps to already used code %s", in, code)
		seen[code] = true
	}

	assert.Len(t, seen, len(pbnear.FunctionCallErrorSer_name))
}

func TestReceiptValidationErrorToProto_Exhaustive(t *testing.T) {
	seen := map[pbnear.ReceiptValidationError]bool{}
	for _, in := range allReceiptValidationErrors {
		code, err := ReceiptValidationErrorToProto(in)
		require.NoError(t, err, "%T", in)
		assert.False(t, seen[code], "%T maps to already used code %s", in, code)
		seen[code] = true
	}

	assert.Len(t, seen, len(pbnear.ReceiptValidationError_name))
}

func TestActionErrorKindToProto_Exhaustive(t *testing.T) {
	kinds := allActionErrorKinds()
	seen := map[string]bool{}

	for _, in := range kinds {
		t.Run(fmt.Sprintf("%T", in), func(t *testing.T) {
			actual, err := ActionErrorKindToProto(in)
			require.NoError(t, err)
			require.NotNil(t, actual.Kind)

			wrapper := fmt.Sprintf("%T", actual.Kind)
			assert.False(t, seen[wrapper], "%T maps to already used alternative %s", in, wrapper)
			seen[wrapper] = true
		})
	}

	assert.Len(t, seen, len((*pbnear.ActionError)(nil).XXX_OneofWrappers()))
}

func TestActionErrorToProto(t *testing.T) {
	index := uint64(3)
	actual, err := ActionErrorToProto(near.ActionError{
		Index: &index,
		Kind:  near.TriesToStake{AccountID: "alice.near", Stake: near.NewUint128(10), Locked: near.NewUint128(1), Balance: near.NewUint128(2)},
	})
	require.NoError(t, err)

	assert.True(t, proto.Equal(&pbnear.ActionError{
		Index: 3,
		Kind: &pbnear.ActionError_TriesToStake{TriesToStake: &pbnear.TriesToStakeErrorKind{
			AccountId: "alice.near",
			Stake:     BigIntToProto(near.NewUint128(10)),
			Locked:    BigIntToProto(near.NewUint128(1)),
			Balance:   BigIntToProto(near.NewUint128(2)),
		}},
	}, actual))

	actual, err = ActionErrorToProto(near.ActionError{Kind: near.DelegateActionInvalidNonce{DelegateNonce: 7, AkNonce: 9}})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), actual.Index)
	assert.Equal(t, uint64(7), actual.GetDelegateActionInvalidNonce().DelegateNonce)
	assert.Equal(t, uint64(9), actual.GetDelegateActionInvalidNonce().AkNonce)
}

func TestActionErrorKindToProto_Collapsed(t *testing.T) {
	actual, err := ActionErrorKindToProto(near.FunctionCallErrorKind{Error: near.HostError{Reason: "GuestPanic"}})
	require.NoError(t, err)
	assert.Equal(t, pbnear.FunctionCallErrorSer_HostError, actual.GetFunctionCall().Error)

	actual, err = ActionErrorKindToProto(near.DelegateActionAccessKeyError{Error: near.AccessKeyDepositWithFunctionCall{}})
	require.NoError(t, err)
	assert.Equal(t, pbnear.InvalidTxError_InvalidAccessKeyError, actual.GetDelegateActionAccessKeyError().Error)
}

func TestTxExecutionErrorToProto(t *testing.T) {
	failure, err := TxExecutionErrorToProto(near.TxExpired{})
	require.NoError(t, err)
	assert.Equal(t, pbnear.InvalidTxError_Expired, failure.GetInvalidTxError())
	assert.Nil(t, failure.GetActionError())

	failure, err = TxExecutionErrorToProto(near.ActionError{Kind: near.DelegateActionExpired{}})
	require.NoError(t, err)
	require.NotNil(t, failure.GetActionError())
	assert.NotNil(t, failure.GetActionError().GetDelegateActionExpired())
}

func TestErrorMappers_FailOnMissingVariant(t *testing.T) {
	_, err := TxExecutionErrorToProto(nil)
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = ActionErrorToProto(near.ActionError{})
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = ActionErrorKindToProto(near.FunctionCallErrorKind{})
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = ActionErrorKindToProto(near.NewReceiptValidationErrorKind{})
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = ActionErrorKindToProto(near.DelegateActionAccessKeyError{})
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = InvalidTxErrorToProto(nil)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}
