package codec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStateChangeCauses() []near.StateChangeCause {
	txHash := near.TestHash(0x01)
	receiptHash := near.TestHash(0x02)

	return []near.StateChangeCause{
		near.CauseNotWritableToDisk{},
		near.CauseInitialState{},
		near.CauseTransactionProcessing{TxHash: txHash},
		near.CauseActionReceiptProcessingStarted{ReceiptHash: receiptHash},
		near.CauseActionReceiptGasReward{ReceiptHash: receiptHash},
		near.CauseReceiptProcessing{ReceiptHash: receiptHash},
		near.CausePostponedReceipt{ReceiptHash: receiptHash},
		near.CauseUpdatedDelayedReceipts{},
		near.CauseValidatorAccountsUpdate{},
		near.CauseMigration{},
	}
}

func allStateChangeValues() []near.StateChangeValue {
	key := near.TestPublicKey(0x04)

	return []near.StateChangeValue{
		near.AccountUpdate{AccountID: "alice.near", Account: near.Account{Amount: near.NewUint128(993), StorageUsage: 182}},
		near.AccountDeletion{AccountID: "alice.near"},
		near.AccessKeyUpdate{AccountID: "alice.near", PublicKey: key, AccessKey: near.AccessKey{Permission: near.FullAccessPermission{}}},
		near.AccessKeyDeletion{AccountID: "alice.near", PublicKey: key},
		near.DataUpdate{AccountID: "app.near", Key: []byte("k"), Value: []byte("v")},
		near.DataDeletion{AccountID: "app.near", Key: []byte("k")},
		near.ContractCodeUpdate{AccountID: "app.near", Code: []byte{0x00, 0x61}},
		near.ContractCodeDeletion{AccountID: "app.near"},
	}
}

func TestStateChangeCauseToProto(t *testing.T) {
	receiptHash := near.TestHash(0x02)

	seen := map[string]bool{}
	for _, in := range allStateChangeCauses() {
		actual, err := StateChangeCauseToProto(in)
		require.NoError(t, err, "%T", in)
		seen[fmt.Sprintf("%T", actual.Cause)] = true
	}
	assert.Len(t, seen, len((*pbnear.StateChangeCause)(nil).XXX_OneofWrappers()))

	actual, err := StateChangeCauseToProto(near.CauseReceiptProcessing{ReceiptHash: receiptHash})
	require.NoError(t, err)
	receiptProcessing, ok := actual.Cause.(*pbnear.StateChangeCause_ReceiptProcessing)
	require.True(t, ok)
	assert.Equal(t, receiptHash[:], receiptProcessing.ReceiptProcessing.TxHash.Bytes, "receipt hash travels in tx_hash")

	actual, err = StateChangeCauseToProto(near.CauseActionReceiptProcessingStarted{ReceiptHash: receiptHash})
	require.NoError(t, err)
	started, ok := actual.Cause.(*pbnear.StateChangeCause_ActionReceiptProcessingStarted)
	require.True(t, ok)
	assert.Equal(t, receiptHash[:], started.ActionReceiptProcessingStarted.ReceiptHash.Bytes)

	_, err = StateChangeCauseToProto(nil)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestStateChangeValueToProto(t *testing.T) {
	key := near.TestPublicKey(0x04)
	values := allStateChangeValues()

	seen := map[string]bool{}
	for _, in := range values {
		actual, err := StateChangeValueToProto(in)
		require.NoError(t, err, "%T", in)
		seen[fmt.Sprintf("%T", actual.Value)] = true
	}
	assert.Len(t, seen, len((*pbnear.StateChangeValue)(nil).XXX_OneofWrappers()))

	actual, err := StateChangeValueToProto(values[0])
	require.NoError(t, err)
	update, ok := actual.Value.(*pbnear.StateChangeValue_AccountUpdate)
	require.True(t, ok)
	assert.Equal(t, uint64(182), update.AccountUpdate.Account.StorageUsage)
	assert.Len(t, update.AccountUpdate.Account.Amount.Bytes, 16)

	_, err = StateChangeValueToProto(near.AccessKeyUpdate{AccountID: "alice.near", PublicKey: key})
	assert.True(t, errors.Is(err, ErrUnknownVariant), "access key without permission")

	_, err = StateChangeToProto(&near.StateChangeWithCause{Cause: near.CauseMigration{}})
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}
