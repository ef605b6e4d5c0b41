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

func TestActionToProto_OneAlternativePerVariant(t *testing.T) {
	key := near.TestPublicKey(0x03)
	allowance := near.NewUint128(250)

	tests := []struct {
		in       near.Action
		expected *pbnear.Action
	}{
		{
			near.CreateAccountAction{},
			&pbnear.Action{Action: &pbnear.Action_CreateAccount{CreateAccount: &pbnear.CreateAccountAction{}}},
		},
		{
			near.DeployContractAction{Code: []byte{0x00, 0x61, 0x73, 0x6d}},
			&pbnear.Action{Action: &pbnear.Action_DeployContract{DeployContract: &pbnear.DeployContractAction{Code: []byte{0x00, 0x61, 0x73, 0x6d}}}},
		},
		{
			near.FunctionCallAction{MethodName: "ping", Args: []byte(`{"a":1}`), Gas: 30000000000000, Deposit: near.NewUint128(1)},
			&pbnear.Action{Action: &pbnear.Action_FunctionCall{FunctionCall: &pbnear.FunctionCallAction{
				MethodName: "ping",
				Args:       []byte(`{"a":1}`),
				Gas:        30000000000000,
				Deposit:    BigIntToProto(near.NewUint128(1)),
			}}},
		},
		{
			near.TransferAction{Deposit: near.NewUint128(7)},
			&pbnear.Action{Action: &pbnear.Action_Transfer{Transfer: &pbnear.TransferAction{Deposit: BigIntToProto(near.NewUint128(7))}}},
		},
		{
			near.StakeAction{Stake: near.Uint128{Hi: 2}, PublicKey: key},
			&pbnear.Action{Action: &pbnear.Action_Stake{Stake: &pbnear.StakeAction{
				Stake:     BigIntToProto(near.Uint128{Hi: 2}),
				PublicKey: &pbnear.PublicKey{Type: pbnear.CurveKind_ED25519, Bytes: key[:]},
			}}},
		},
		{
			near.AddKeyAction{PublicKey: key, AccessKey: near.AccessKey{Nonce: 4, Permission: near.FunctionCallPermission{
				Allowance:   &allowance,
				ReceiverID:  "app.near",
				MethodNames: []string{"ping", "pong"},
			}}},
			&pbnear.Action{Action: &pbnear.Action_AddKey{AddKey: &pbnear.AddKeyAction{
				PublicKey: &pbnear.PublicKey{Type: pbnear.CurveKind_ED25519, Bytes: key[:]},
				AccessKey: &pbnear.AccessKey{Nonce: 4, Permission: &pbnear.AccessKeyPermission{
					Permission: &pbnear.AccessKeyPermission_FunctionCall{FunctionCall: &pbnear.FunctionCallPermission{
						Allowance:   BigIntToProto(allowance),
						ReceiverId:  "app.near",
						MethodNames: []string{"ping", "pong"},
					}},
				}},
			}}},
		},
		{
			near.DeleteKeyAction{PublicKey: key},
			&pbnear.Action{Action: &pbnear.Action_DeleteKey{DeleteKey: &pbnear.DeleteKeyAction{
				PublicKey: &pbnear.PublicKey{Type: pbnear.CurveKind_ED25519, Bytes: key[:]},
			}}},
		},
		{
			near.DeleteAccountAction{BeneficiaryID: "heir.near"},
			&pbnear.Action{Action: &pbnear.Action_DeleteAccount{DeleteAccount: &pbnear.DeleteAccountAction{BeneficiaryId: "heir.near"}}},
		},
		{
			near.DelegateAction{
				SenderID:       "alice.near",
				ReceiverID:     "app.near",
				Actions:        []near.Action{near.TransferAction{Deposit: near.NewUint128(3)}},
				Nonce:          12,
				MaxBlockHeight: 1000,
				PublicKey:      key,
				Signature:      near.TestSignature(0x09),
			},
			&pbnear.Action{Action: &pbnear.Action_Delegate{Delegate: &pbnear.SignedDelegateAction{
				Signature: &pbnear.Signature{Type: pbnear.CurveKind_ED25519, Bytes: bytesOfSignature(near.TestSignature(0x09))},
				DelegateAction: &pbnear.DelegateAction{
					SenderId:   "alice.near",
					ReceiverId: "app.near",
					Actions: []*pbnear.Action{
						{Action: &pbnear.Action_Transfer{Transfer: &pbnear.TransferAction{Deposit: BigIntToProto(near.NewUint128(3))}}},
					},
					Nonce:          12,
					MaxBlockHeight: 1000,
					PublicKey:      &pbnear.PublicKey{Type: pbnear.CurveKind_ED25519, Bytes: key[:]},
				},
			}}},
		},
	}

	seen := map[string]bool{}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%T", test.in), func(t *testing.T) {
			actual, err := ActionToProto(test.in)
			require.NoError(t, err)
			assert.True(t, proto.Equal(test.expected, actual), "expected %s, got %s", test.expected, actual)

			seen[fmt.Sprintf("%T", actual.Action)] = true
		})
	}

	assert.Len(t, seen, len((*pbnear.Action)(nil).XXX_OneofWrappers()), "every action alternative must be reachable")
}

func TestActionToProto_NestedDelegate(t *testing.T) {
	inner := near.DelegateAction{
		SenderID:  "bob.near",
		PublicKey: near.TestPublicKey(0x01),
		Signature: near.TestSignature(0x02),
	}

	_, err := ActionToProto(near.DelegateAction{
		SenderID:  "alice.near",
		Actions:   []near.Action{near.CreateAccountAction{}, inner},
		PublicKey: near.TestPublicKey(0x01),
		Signature: near.TestSignature(0x02),
	})
	assert.True(t, errors.Is(err, ErrNestedDelegateAction))

	_, err = ActionsToProto([]near.Action{inner})
	assert.NoError(t, err, "a top level delegate is valid")
}

func TestActionsToProto(t *testing.T) {
	actual, err := ActionsToProto(nil)
	require.NoError(t, err)
	assert.Nil(t, actual)

	_, err = ActionsToProto([]near.Action{near.CreateAccountAction{}, nil})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	assert.Contains(t, err.Error(), "action 1")
}

func TestAccessKeyToProto(t *testing.T) {
	actual, err := AccessKeyToProto(near.AccessKey{Nonce: 9, Permission: near.FullAccessPermission{}})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), actual.Nonce)
	_, isFull := actual.Permission.Permission.(*pbnear.AccessKeyPermission_FullAccess)
	assert.True(t, isFull)

	actual, err = AccessKeyToProto(near.AccessKey{Permission: near.FunctionCallPermission{ReceiverID: "app.near"}})
	require.NoError(t, err)
	functionCall, ok := actual.Permission.Permission.(*pbnear.AccessKeyPermission_FunctionCall)
	require.True(t, ok)
	assert.Nil(t, functionCall.FunctionCall.Allowance, "unlimited allowance stays unset")
	assert.Equal(t, "app.near", functionCall.FunctionCall.ReceiverId)

	_, err = AccessKeyToProto(near.AccessKey{})
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func bytesOfSignature(sig near.ED25519Signature) []byte {
	return sig[:]
}
