package near

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestDecodeStreamerMessage(t *testing.T) {
	data, err := os.ReadFile("testdata/streamer_message.json")
	require.NoError(t, err)

	block, err := DecodeStreamerMessage(data)
	require.NoError(t, err)

	assert.Equal(t, "validator.near", block.Author)

	header := block.Header
	assert.Equal(t, uint64(100), header.Height)
	require.NotNil(t, header.PrevHeight)
	assert.Equal(t, uint64(99), *header.PrevHeight)
	assert.Equal(t, MustParseCryptoHash("4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"), header.Hash)
	assert.Equal(t, uint64(1595370903490523743), header.Timestamp)
	assert.Equal(t, uint64(1595370903490523743), header.TimestampNanosec)
	assert.Equal(t, NewUint128(103000000), header.GasPrice)
	assert.Equal(t, "1034000000000000000000000000000000", header.TotalSupply.String())
	require.NotNil(t, header.BlockOrdinal)
	assert.Equal(t, uint64(42), *header.BlockOrdinal)
	assert.Nil(t, header.EpochSyncDataHash)
	assert.Equal(t, []bool{true}, header.ChunkMask)
	assert.Equal(t, uint32(58), header.LatestProtocolVersion)

	require.Len(t, header.Approvals, 2)
	assert.Nil(t, header.Approvals[0])
	assert.IsType(t, ED25519Signature{}, header.Approvals[1])

	require.Len(t, header.ValidatorProposals, 1)
	assert.Equal(t, "validator.near", header.ValidatorProposals[0].AccountID)

	require.Len(t, block.Chunks, 1)
	assert.Equal(t, uint64(1000000000000000), block.Chunks[0].GasLimit)

	require.Len(t, block.Shards, 1)
	shard := block.Shards[0]
	require.NotNil(t, shard.Chunk)
	require.Len(t, shard.Chunk.Transactions, 1)

	trx := shard.Chunk.Transactions[0]
	assert.Equal(t, "alice.near", trx.Transaction.SignerID)
	assert.Equal(t, []Action{TransferAction{Deposit: NewUint128(7)}}, trx.Transaction.Actions)
	assert.Nil(t, trx.Outcome.Receipt)
	assert.Equal(t, ExecutionStatusSuccessReceiptID{
		ReceiptID: MustParseCryptoHash("CVDFLCAjXhVWiPXH9nTCTpCgVzmDVoiPzNJYuccr1dqB"),
	}, trx.Outcome.ExecutionOutcome.Outcome.Status)
	assert.Equal(t, uint32(1), trx.Outcome.ExecutionOutcome.Outcome.Metadata.Version)
	require.Len(t, trx.Outcome.ExecutionOutcome.Proof, 2)
	assert.Equal(t, DirectionRight, trx.Outcome.ExecutionOutcome.Proof[0].Direction)

	require.Len(t, shard.ReceiptExecutionOutcomes, 2)
	assert.Equal(t, ExecutionStatusSuccessValue{Value: []byte{}}, shard.ReceiptExecutionOutcomes[0].ExecutionOutcome.Outcome.Status)

	failed := shard.ReceiptExecutionOutcomes[1]
	index := uint64(1)
	assert.Equal(t, ExecutionStatusFailure{Error: ActionError{
		Index: &index,
		Kind:  FunctionCallErrorKind{Error: ExecutionError{Msg: "Smart contract panicked: boom"}},
	}}, failed.ExecutionOutcome.Outcome.Status)

	actionReceipt, ok := failed.Receipt.Receipt.(ActionReceipt)
	require.True(t, ok)
	require.Len(t, actionReceipt.Actions, 3)
	assert.Equal(t, CreateAccountAction{}, actionReceipt.Actions[0])
	assert.Equal(t, FunctionCallAction{MethodName: "ping", Args: []byte(`{"a":1}`), Gas: 30000000000000}, actionReceipt.Actions[1])

	addKey := actionReceipt.Actions[2].(AddKeyAction)
	assert.Equal(t, FunctionCallPermission{ReceiverID: "contract.near", MethodNames: []string{"ping"}}, addKey.AccessKey.Permission)
	require.Len(t, actionReceipt.OutputDataReceivers, 1)
	assert.Equal(t, "alice.near", actionReceipt.OutputDataReceivers[0].ReceiverID)

	require.Len(t, block.StateChanges, 2)
	assert.Equal(t, CauseTransactionProcessing{TxHash: MustParseCryptoHash("8qbHbw2BbbTHBW1sbeqakYXVKRQM8Ne7pLK7m6CVfeR")}, block.StateChanges[0].Cause)
	assert.Equal(t, AccountUpdate{AccountID: "alice.near", Account: Account{Amount: NewUint128(993), StorageUsage: 182}}, block.StateChanges[0].Value)
	assert.Equal(t, DataUpdate{AccountID: "contract.near", Key: []byte("\x00asm"), Value: []byte(`{"a":1}`)}, block.StateChanges[1].Value)
}

func TestDecodeStreamerMessage_Errors(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		expectedErr string
	}{
		{"malformed", `{"block":`, "malformed JSON"},
		{"missing block", `{"shards":[]}`, `field "block": missing`},
		{"missing header", `{"block":{"author":"a"}}`, `field "header": missing`},
		{"missing header field", `{"block":{"author":"a","header":{"height":1}}}`, `field "epoch_id": missing`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeStreamerMessage([]byte(test.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.expectedErr)
		})
	}
}

func TestDecodeStreamerMessage_InvalidNumbers(t *testing.T) {
	data, err := os.ReadFile("testdata/streamer_message.json")
	require.NoError(t, err)

	tests := []struct {
		name        string
		from        string
		to          string
		expectedErr string
	}{
		{"negative height", `"height": 100,`, `"height": -1,`, `field "height": invalid unsigned 64-bit integer "-1"`},
		{"fractional height", `"height": 100,`, `"height": 1.5,`, `field "height": invalid unsigned 64-bit integer "1.5"`},
		{"height overflow", `"height": 100,`, `"height": 18446744073709551616,`, `field "height": invalid unsigned 64-bit integer`},
		{"protocol version overflow", `"latest_protocol_version": 58`, `"latest_protocol_version": 4294967297`, `field "latest_protocol_version": value 4294967297 overflows 32 bits`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := strings.Replace(string(data), test.from, test.to, 1)
			require.NotEqual(t, string(data), in)

			_, err := DecodeStreamerMessage([]byte(in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.expectedErr)
		})
	}
}

func TestDecodeU64(t *testing.T) {
	tests := []struct {
		in          string
		expected    uint64
		expectedErr bool
	}{
		{`0`, 0, false},
		{`42`, 42, false},
		{`"42"`, 42, false},
		{`18446744073709551615`, 18446744073709551615, false},
		{`18446744073709551616`, 0, true},
		{`-1`, 0, true},
		{`"-7"`, 0, true},
		{`1.5`, 0, true},
		{`"abc"`, 0, true},
		{`true`, 0, true},
		{`null`, 0, true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			d := &jsonDecoder{}
			actual := d.u64(gjson.Parse(test.in), "nonce")
			if test.expectedErr {
				require.Error(t, d.err)
				assert.Contains(t, d.err.Error(), `field "nonce"`)
				return
			}

			require.NoError(t, d.err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestDecodeExecutionMetadata_VersionOverflow(t *testing.T) {
	d := &jsonDecoder{}
	d.executionMetadata(gjson.Parse(`{"version":4294967297,"gas_profile":null}`))
	require.Error(t, d.err)
	assert.Equal(t, `field "version": value 4294967297 overflows 32 bits`, d.err.Error())

	d = &jsonDecoder{}
	metadata := d.executionMetadata(gjson.Parse(`{"version":3,"gas_profile":null}`))
	require.NoError(t, d.err)
	assert.Equal(t, uint32(3), metadata.Version)
}

func TestDecodeAction_UnknownVariant(t *testing.T) {
	d := &jsonDecoder{}
	d.actions(gjson.Parse(`[{"Transfer":{"deposit":"1"}},{"Teleport":{}}]`))
	require.Error(t, d.err)
	assert.Equal(t, `field "action": unknown variant "Teleport"`, d.err.Error())
}

func TestDecodeAction_Delegate(t *testing.T) {
	d := &jsonDecoder{}
	actions := d.actions(gjson.Parse(`[{"Delegate":{
		"delegate_action":{
			"sender_id":"alice.near","receiver_id":"bob.near",
			"actions":[{"Transfer":{"deposit":"5"}}],
			"nonce":3,"max_block_height":1000,
			"public_key":"ed25519:cGfHiC6Kgg3FpFZvgwGcswsCRtp4aBP2fzuXRQPizuN"
		},
		"signature":"ed25519:99eUso3aSbE9tqGSTXzo3TLfKb9RkMTURrHKQ1K7Zh3BbeqPevr5E1iCbpTjqHuTFLtfxTTD5ekfVuZFzQyEQf8"
	}}]`))
	require.NoError(t, d.err)
	require.Len(t, actions, 1)

	delegate := actions[0].(DelegateAction)
	assert.Equal(t, "alice.near", delegate.SenderID)
	assert.Equal(t, []Action{TransferAction{Deposit: NewUint128(5)}}, delegate.Actions)
	assert.Equal(t, uint64(1000), delegate.MaxBlockHeight)
	assert.NotNil(t, delegate.Signature)
}

func TestDecodeTxExecutionError(t *testing.T) {
	tests := []struct {
		in       string
		expected TxExecutionError
	}{
		{`{"InvalidTxError":"InvalidSignature"}`, TxInvalidSignature{}},
		{`{"InvalidTxError":{"InvalidNonce":{"tx_nonce":5,"ak_nonce":6}}}`, TxInvalidNonce{TxNonce: 5, AkNonce: 6}},
		{`{"InvalidTxError":{"InvalidAccessKeyError":"RequiresFullAccess"}}`, TxInvalidAccessKey{Error: AccessKeyRequiresFullAccess{}}},
		{`{"InvalidTxError":{"ActionsValidation":"DeleteActionMustBeFinal"}}`, TxActionsValidation{Error: ActionsValidationError{Kind: "DeleteActionMustBeFinal"}}},
		{`{"ActionError":{"index":null,"kind":"DelegateActionExpired"}}`, ActionError{Kind: DelegateActionExpired{}}},
		{`{"ActionError":{"index":0,"kind":{"FunctionCallError":{"MethodResolveError":"MethodNotFound"}}}}`, ActionError{Index: new(uint64), Kind: FunctionCallErrorKind{Error: MethodResolveError{Reason: "MethodNotFound"}}}},
		{`{"ActionError":{"index":0,"kind":{"NewReceiptValidationError":{"InvalidReceiverId":{"account_id":"x"}}}}}`, ActionError{Index: new(uint64), Kind: NewReceiptValidationErrorKind{Error: ReceiptInvalidReceiverID{AccountID: "x"}}}},
		{`{"ActionError":{"index":0,"kind":{"DelegateActionAccessKeyError":"DepositWithFunctionCall"}}}`, ActionError{Index: new(uint64), Kind: DelegateActionAccessKeyError{Error: AccessKeyDepositWithFunctionCall{}}}},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			d := &jsonDecoder{}
			actual := d.txExecutionError(gjson.Parse(test.in))
			require.NoError(t, d.err)
			assert.Equal(t, test.expected, actual)
		})
	}
}
