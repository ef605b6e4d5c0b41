package codec

import (
	"fmt"

	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
)

func StateChangeToProto(in *near.StateChangeWithCause) (*pbnear.StateChangeWithCause, error) {
	cause, err := StateChangeCauseToProto(in.Cause)
	if err != nil {
		return nil, err
	}

	value, err := StateChangeValueToProto(in.Value)
	if err != nil {
		return nil, err
	}

	return &pbnear.StateChangeWithCause{Value: value, Cause: cause}, nil
}

// StateChangeCauseToProto stores receipt hashes of receipt driven causes in
// the wire tx_hash field, except for ActionReceiptProcessingStarted which has
// a dedicated receipt_hash.
func StateChangeCauseToProto(in near.StateChangeCause) (*pbnear.StateChangeCause, error) {
	out := &pbnear.StateChangeCause{}

	switch c := in.(type) {
	case near.CauseNotWritableToDisk:
		out.Cause = &pbnear.StateChangeCause_NotWritableToDisk{NotWritableToDisk: &pbnear.CauseNotWritableToDisk{}}
	case near.CauseInitialState:
		out.Cause = &pbnear.StateChangeCause_InitialState{InitialState: &pbnear.CauseInitialState{}}
	case near.CauseTransactionProcessing:
		out.Cause = &pbnear.StateChangeCause_TransactionProcessing{TransactionProcessing: &pbnear.CauseTransactionProcessing{
			TxHash: HashToProto(c.TxHash),
		}}
	case near.CauseActionReceiptProcessingStarted:
		out.Cause = &pbnear.StateChangeCause_ActionReceiptProcessingStarted{ActionReceiptProcessingStarted: &pbnear.CauseActionReceiptProcessingStarted{
			ReceiptHash: HashToProto(c.ReceiptHash),
		}}
	case near.CauseActionReceiptGasReward:
		out.Cause = &pbnear.StateChangeCause_ActionReceiptGasReward{ActionReceiptGasReward: &pbnear.CauseActionReceiptGasReward{
			TxHash: HashToProto(c.ReceiptHash),
		}}
	case near.CauseReceiptProcessing:
		out.Cause = &pbnear.StateChangeCause_ReceiptProcessing{ReceiptProcessing: &pbnear.CauseReceiptProcessing{
			TxHash: HashToProto(c.ReceiptHash),
		}}
	case near.CausePostponedReceipt:
		out.Cause = &pbnear.StateChangeCause_PostponedReceipt{PostponedReceipt: &pbnear.CausePostponedReceipt{
			TxHash: HashToProto(c.ReceiptHash),
		}}
	case near.CauseUpdatedDelayedReceipts:
		out.Cause = &pbnear.StateChangeCause_UpdatedDelayedReceipts{UpdatedDelayedReceipts: &pbnear.CauseUpdatedDelayedReceipts{}}
	case near.CauseValidatorAccountsUpdate:
		out.Cause = &pbnear.StateChangeCause_ValidatorAccountsUpdate{ValidatorAccountsUpdate: &pbnear.CauseValidatorAccountsUpdate{}}
	case near.CauseMigration:
		out.Cause = &pbnear.StateChangeCause_Migration{Migration: &pbnear.CauseMigration{}}
	default:
		return nil, unknownVariant("state change cause", in)
	}

	return out, nil
}

func StateChangeValueToProto(in near.StateChangeValue) (*pbnear.StateChangeValue, error) {
	out := &pbnear.StateChangeValue{}

	switch v := in.(type) {
	case near.AccountUpdate:
		out.Value = &pbnear.StateChangeValue_AccountUpdate{AccountUpdate: &pbnear.AccountUpdateValue{
			AccountId: v.AccountID,
			Account: &pbnear.Account{
				Amount:       BigIntToProto(v.Account.Amount),
				Locked:       BigIntToProto(v.Account.Locked),
				CodeHash:     HashToProto(v.Account.CodeHash),
				StorageUsage: v.Account.StorageUsage,
			},
		}}

	case near.AccountDeletion:
		out.Value = &pbnear.StateChangeValue_AccountDeletion{AccountDeletion: &pbnear.AccountDeletionValue{
			AccountId: v.AccountID,
		}}

	case near.AccessKeyUpdate:
		publicKey, err := PublicKeyToProto(v.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("access key update: %w", err)
		}
		accessKey, err := AccessKeyToProto(v.AccessKey)
		if err != nil {
			return nil, fmt.Errorf("access key update: %w", err)
		}
		out.Value = &pbnear.StateChangeValue_AccessKeyUpdate{AccessKeyUpdate: &pbnear.AccessKeyUpdateValue{
			AccountId: v.AccountID,
			PublicKey: publicKey,
			AccessKey: accessKey,
		}}

	case near.AccessKeyDeletion:
		publicKey, err := PublicKeyToProto(v.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("access key deletion: %w", err)
		}
		out.Value = &pbnear.StateChangeValue_AccessKeyDeletion{AccessKeyDeletion: &pbnear.AccessKeyDeletionValue{
			AccountId: v.AccountID,
			PublicKey: publicKey,
		}}

	case near.DataUpdate:
		out.Value = &pbnear.StateChangeValue_DataUpdate{DataUpdate: &pbnear.DataUpdateValue{
			AccountId: v.AccountID,
			Key:       v.Key,
			Value:     v.Value,
		}}

	case near.DataDeletion:
		out.Value = &pbnear.StateChangeValue_DataDeletion{DataDeletion: &pbnear.DataDeletionValue{
			AccountId: v.AccountID,
			Key:       v.Key,
		}}

	case near.ContractCodeUpdate:
		out.Value = &pbnear.StateChangeValue_ContractCodeUpdate{ContractCodeUpdate: &pbnear.ContractCodeUpdateValue{
			AccountId: v.AccountID,
			Code:      v.Code,
		}}

	case near.ContractCodeDeletion:
		out.Value = &pbnear.StateChangeValue_ContractDeletion{ContractDeletion: &pbnear.ContractCodeDeletionValue{
			AccountId: v.AccountID,
		}}

	default:
		return nil, unknownVariant("state change value", in)
	}

	return out, nil
}
