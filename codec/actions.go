package codec

import (
	"fmt"

	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
)

func ActionsToProto(in []near.Action) ([]*pbnear.Action, error) {
	return actionsToProto(in, false)
}

func actionsToProto(in []near.Action, delegated bool) ([]*pbnear.Action, error) {
	if len(in) == 0 {
		return nil, nil
	}

	out := make([]*pbnear.Action, len(in))
	for i, action := range in {
		var err error
		if out[i], err = actionToProto(action, delegated); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
	}
	return out, nil
}

// ActionToProto sets exactly one alternative of the wire action.
func ActionToProto(in near.Action) (*pbnear.Action, error) {
	return actionToProto(in, false)
}

func actionToProto(in near.Action, delegated bool) (*pbnear.Action, error) {
	switch a := in.(type) {
	case near.CreateAccountAction:
		return &pbnear.Action{Action: &pbnear.Action_CreateAccount{CreateAccount: &pbnear.CreateAccountAction{}}}, nil

	case near.DeployContractAction:
		return &pbnear.Action{Action: &pbnear.Action_DeployContract{DeployContract: &pbnear.DeployContractAction{
			Code: a.Code,
		}}}, nil

	case near.FunctionCallAction:
		return &pbnear.Action{Action: &pbnear.Action_FunctionCall{FunctionCall: &pbnear.FunctionCallAction{
			MethodName: a.MethodName,
			Args:       a.Args,
			Gas:        a.Gas,
			Deposit:    BigIntToProto(a.Deposit),
		}}}, nil

	case near.TransferAction:
		return &pbnear.Action{Action: &pbnear.Action_Transfer{Transfer: &pbnear.TransferAction{
			Deposit: BigIntToProto(a.Deposit),
		}}}, nil

	case near.StakeAction:
		publicKey, err := PublicKeyToProto(a.PublicKey)
		if err != nil {
			return nil, err
		}
		return &pbnear.Action{Action: &pbnear.Action_Stake{Stake: &pbnear.StakeAction{
			Stake:     BigIntToProto(a.Stake),
			PublicKey: publicKey,
		}}}, nil

	case near.AddKeyAction:
		publicKey, err := PublicKeyToProto(a.PublicKey)
		if err != nil {
			return nil, err
		}
		accessKey, err := AccessKeyToProto(a.AccessKey)
		if err != nil {
			return nil, err
		}
		return &pbnear.Action{Action: &pbnear.Action_AddKey{AddKey: &pbnear.AddKeyAction{
			PublicKey: publicKey,
			AccessKey: accessKey,
		}}}, nil

	case near.DeleteKeyAction:
		publicKey, err := PublicKeyToProto(a.PublicKey)
		if err != nil {
			return nil, err
		}
		return &pbnear.Action{Action: &pbnear.Action_DeleteKey{DeleteKey: &pbnear.DeleteKeyAction{
			PublicKey: publicKey,
		}}}, nil

	case near.DeleteAccountAction:
		return &pbnear.Action{Action: &pbnear.Action_DeleteAccount{DeleteAccount: &pbnear.DeleteAccountAction{
			BeneficiaryId: a.BeneficiaryID,
		}}}, nil

	case near.DelegateAction:
		if delegated {
			return nil, ErrNestedDelegateAction
		}
		return delegateActionToProto(a)
	}

	return nil, unknownVariant("action", in)
}

func delegateActionToProto(in near.DelegateAction) (*pbnear.Action, error) {
	actions, err := actionsToProto(in.Actions, true)
	if err != nil {
		return nil, fmt.Errorf("delegate: %w", err)
	}

	publicKey, err := PublicKeyToProto(in.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("delegate: %w", err)
	}

	signature, err := SignatureToProto(in.Signature)
	if err != nil {
		return nil, fmt.Errorf("delegate: %w", err)
	}

	return &pbnear.Action{Action: &pbnear.Action_Delegate{Delegate: &pbnear.SignedDelegateAction{
		Signature: signature,
		DelegateAction: &pbnear.DelegateAction{
			SenderId:       in.SenderID,
			ReceiverId:     in.ReceiverID,
			Actions:        actions,
			Nonce:          in.Nonce,
			MaxBlockHeight: in.MaxBlockHeight,
			PublicKey:      publicKey,
		},
	}}}, nil
}

// AccessKeyToProto leaves Allowance unset for an unlimited function call
// allowance.
func AccessKeyToProto(in near.AccessKey) (*pbnear.AccessKey, error) {
	out := &pbnear.AccessKey{
		Nonce:      in.Nonce,
		Permission: &pbnear.AccessKeyPermission{},
	}

	switch p := in.Permission.(type) {
	case near.FunctionCallPermission:
		permission := &pbnear.FunctionCallPermission{
			ReceiverId:  p.ReceiverID,
			MethodNames: p.MethodNames,
		}
		if p.Allowance != nil {
			permission.Allowance = BigIntToProto(*p.Allowance)
		}
		out.Permission.Permission = &pbnear.AccessKeyPermission_FunctionCall{FunctionCall: permission}

	case near.FullAccessPermission:
		out.Permission.Permission = &pbnear.AccessKeyPermission_FullAccess{FullAccess: &pbnear.FullAccessPermission{}}

	default:
		return nil, unknownVariant("access key permission", in.Permission)
	}

	return out, nil
}
