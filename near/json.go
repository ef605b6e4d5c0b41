package near

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// DecodeStreamerMessage reads one StreamerMessage as serialized by the node's
// indexer framework. Every enum the node emits must be known, an unknown tag
// is an error.
func DecodeStreamerMessage(data []byte) (*Block, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid streamer message: malformed JSON")
	}

	d := &jsonDecoder{}
	block := d.streamerMessage(gjson.ParseBytes(data))
	if d.err != nil {
		return nil, fmt.Errorf("invalid streamer message: %w", d.err)
	}
	return block, nil
}

// jsonDecoder keeps the first error encountered, every method becomes a no-op
// returning zero values once it is set.
type jsonDecoder struct {
	err error
}

func (d *jsonDecoder) failf(format string, args ...interface{}) {
	if d.err == nil {
		d.err = fmt.Errorf(format, args...)
	}
}

func (d *jsonDecoder) required(r gjson.Result, field string) bool {
	if d.err != nil {
		return false
	}
	if !r.Exists() || r.Type == gjson.Null {
		d.failf("field %q: missing", field)
		return false
	}
	return true
}

func (d *jsonDecoder) str(r gjson.Result, field string) string {
	if !d.required(r, field) {
		return ""
	}
	if r.Type != gjson.String {
		d.failf("field %q: expected string, got %s", field, r.Type)
		return ""
	}
	return r.Str
}

func (d *jsonDecoder) u64(r gjson.Result, field string) uint64 {
	if !d.required(r, field) {
		return 0
	}

	// Parsed from the literal, Result.Uint() would wrap negatives and truncate fractions.
	var in string
	switch r.Type {
	case gjson.Number:
		in = r.Raw
	case gjson.String:
		in = r.Str
	default:
		d.failf("field %q: expected number, got %s", field, r.Type)
		return 0
	}

	v, err := strconv.ParseUint(in, 10, 64)
	if err != nil {
		d.failf("field %q: invalid unsigned 64-bit integer %q", field, in)
		return 0
	}
	return v
}

func (d *jsonDecoder) u32(r gjson.Result, field string) uint32 {
	v := d.u64(r, field)
	if v > math.MaxUint32 {
		d.failf("field %q: value %d overflows 32 bits", field, v)
		return 0
	}
	return uint32(v)
}

func (d *jsonDecoder) optU64(r gjson.Result, field string) *uint64 {
	if r.Type == gjson.Null || !r.Exists() {
		return nil
	}
	v := d.u64(r, field)
	return &v
}

func (d *jsonDecoder) boolean(r gjson.Result, field string) bool {
	if !d.required(r, field) {
		return false
	}
	if r.Type != gjson.True && r.Type != gjson.False {
		d.failf("field %q: expected boolean, got %s", field, r.Type)
	}
	return r.Bool()
}

func (d *jsonDecoder) u128(r gjson.Result, field string) Uint128 {
	if !d.required(r, field) {
		return Uint128{}
	}
	v, err := ParseUint128(r.String())
	if err != nil {
		d.failf("field %q: %w", field, err)
	}
	return v
}

func (d *jsonDecoder) optU128(r gjson.Result, field string) *Uint128 {
	if r.Type == gjson.Null || !r.Exists() {
		return nil
	}
	v := d.u128(r, field)
	return &v
}

func (d *jsonDecoder) hash(r gjson.Result, field string) CryptoHash {
	in := d.str(r, field)
	if d.err != nil {
		return CryptoHash{}
	}
	h, err := ParseCryptoHash(in)
	if err != nil {
		d.failf("field %q: %w", field, err)
	}
	return h
}

func (d *jsonDecoder) optHash(r gjson.Result, field string) *CryptoHash {
	if r.Type == gjson.Null || !r.Exists() {
		return nil
	}
	h := d.hash(r, field)
	return &h
}

func (d *jsonDecoder) hashes(r gjson.Result, field string) (out []CryptoHash) {
	for _, item := range d.array(r, field) {
		out = append(out, d.hash(item, field))
	}
	return
}

func (d *jsonDecoder) base64(r gjson.Result, field string) []byte {
	if r.Type == gjson.Null || !r.Exists() {
		return nil
	}
	in := d.str(r, field)
	if d.err != nil {
		return nil
	}
	out, err := base64.StdEncoding.DecodeString(in)
	if err != nil {
		d.failf("field %q: invalid base64: %w", field, err)
	}
	return out
}

func (d *jsonDecoder) publicKey(r gjson.Result, field string) PublicKey {
	in := d.str(r, field)
	if d.err != nil {
		return nil
	}
	key, err := ParsePublicKey(in)
	if err != nil {
		d.failf("field %q: %w", field, err)
	}
	return key
}

func (d *jsonDecoder) signature(r gjson.Result, field string) Signature {
	in := d.str(r, field)
	if d.err != nil {
		return nil
	}
	sig, err := ParseSignature(in)
	if err != nil {
		d.failf("field %q: %w", field, err)
	}
	return sig
}

// array accepts null as an empty list.
func (d *jsonDecoder) array(r gjson.Result, field string) []gjson.Result {
	if d.err != nil || r.Type == gjson.Null || !r.Exists() {
		return nil
	}
	if !r.IsArray() {
		d.failf("field %q: expected array, got %s", field, r.Type)
		return nil
	}
	return r.Array()
}

// variant splits an externally tagged enum, either `"Tag"` or `{"Tag": content}`.
func (d *jsonDecoder) variant(r gjson.Result, field string) (tag string, content gjson.Result) {
	if !d.required(r, field) {
		return "", gjson.Result{}
	}

	if r.Type == gjson.String {
		return r.Str, gjson.Result{}
	}

	if r.IsObject() {
		count := 0
		r.ForEach(func(key, value gjson.Result) bool {
			tag, content = key.Str, value
			count++
			return true
		})
		if count == 1 {
			return tag, content
		}
	}

	d.failf("field %q: expected a single variant enum, got %s", field, r.Raw)
	return "", gjson.Result{}
}

func (d *jsonDecoder) unknownVariant(field, tag string) {
	d.failf("field %q: unknown variant %q", field, tag)
}

func (d *jsonDecoder) streamerMessage(r gjson.Result) *Block {
	b := r.Get("block")
	if !d.required(b, "block") {
		return nil
	}

	out := &Block{
		Author: d.str(b.Get("author"), "author"),
		Header: d.blockHeader(b.Get("header")),
	}

	for _, chunk := range d.array(b.Get("chunks"), "chunks") {
		out.Chunks = append(out.Chunks, d.chunkHeader(chunk))
	}

	for _, shard := range d.array(r.Get("shards"), "shards") {
		out.Shards = append(out.Shards, d.shard(shard))
		for _, change := range d.array(shard.Get("state_changes"), "state_changes") {
			out.StateChanges = append(out.StateChanges, d.stateChange(change))
		}
	}

	// Messages predating per shard state changes carry them at the top level.
	for _, change := range d.array(r.Get("state_changes"), "state_changes") {
		out.StateChanges = append(out.StateChanges, d.stateChange(change))
	}

	return out
}

func (d *jsonDecoder) blockHeader(r gjson.Result) *BlockHeader {
	if !d.required(r, "header") {
		return nil
	}

	h := &BlockHeader{
		Height:                d.u64(r.Get("height"), "height"),
		PrevHeight:            d.optU64(r.Get("prev_height"), "prev_height"),
		EpochID:               d.hash(r.Get("epoch_id"), "epoch_id"),
		NextEpochID:           d.hash(r.Get("next_epoch_id"), "next_epoch_id"),
		Hash:                  d.hash(r.Get("hash"), "hash"),
		PrevHash:              d.hash(r.Get("prev_hash"), "prev_hash"),
		PrevStateRoot:         d.hash(r.Get("prev_state_root"), "prev_state_root"),
		ChunkReceiptsRoot:     d.hash(r.Get("chunk_receipts_root"), "chunk_receipts_root"),
		ChunkHeadersRoot:      d.hash(r.Get("chunk_headers_root"), "chunk_headers_root"),
		ChunkTxRoot:           d.hash(r.Get("chunk_tx_root"), "chunk_tx_root"),
		OutcomeRoot:           d.hash(r.Get("outcome_root"), "outcome_root"),
		ChunksIncluded:        d.u64(r.Get("chunks_included"), "chunks_included"),
		ChallengesRoot:        d.hash(r.Get("challenges_root"), "challenges_root"),
		Timestamp:             d.u64(r.Get("timestamp"), "timestamp"),
		TimestampNanosec:      d.u64(r.Get("timestamp_nanosec"), "timestamp_nanosec"),
		RandomValue:           d.hash(r.Get("random_value"), "random_value"),
		ValidatorProposals:    d.validatorStakes(r.Get("validator_proposals")),
		GasPrice:              d.u128(r.Get("gas_price"), "gas_price"),
		BlockOrdinal:          d.optU64(r.Get("block_ordinal"), "block_ordinal"),
		TotalSupply:           d.u128(r.Get("total_supply"), "total_supply"),
		LastFinalBlock:        d.hash(r.Get("last_final_block"), "last_final_block"),
		LastDSFinalBlock:      d.hash(r.Get("last_ds_final_block"), "last_ds_final_block"),
		NextBPHash:            d.hash(r.Get("next_bp_hash"), "next_bp_hash"),
		BlockMerkleRoot:       d.hash(r.Get("block_merkle_root"), "block_merkle_root"),
		EpochSyncDataHash:     d.optHash(r.Get("epoch_sync_data_hash"), "epoch_sync_data_hash"),
		Signature:             d.signature(r.Get("signature"), "signature"),
		LatestProtocolVersion: d.u32(r.Get("latest_protocol_version"), "latest_protocol_version"),
	}

	for _, mask := range d.array(r.Get("chunk_mask"), "chunk_mask") {
		h.ChunkMask = append(h.ChunkMask, d.boolean(mask, "chunk_mask"))
	}

	for _, slashed := range d.array(r.Get("challenges_result"), "challenges_result") {
		h.ChallengesResult = append(h.ChallengesResult, &SlashedValidator{
			AccountID:    d.str(slashed.Get("account_id"), "account_id"),
			IsDoubleSign: d.boolean(slashed.Get("is_double_sign"), "is_double_sign"),
		})
	}

	for _, approval := range d.array(r.Get("approvals"), "approvals") {
		if approval.Type == gjson.Null {
			h.Approvals = append(h.Approvals, nil)
			continue
		}
		h.Approvals = append(h.Approvals, d.signature(approval, "approvals"))
	}

	return h
}

func (d *jsonDecoder) validatorStakes(r gjson.Result) (out []*ValidatorStake) {
	for _, stake := range d.array(r, "validator_proposals") {
		if version := stake.Get("validator_stake_struct_version"); version.Exists() && version.Str != "V1" {
			d.unknownVariant("validator_stake_struct_version", version.Str)
			return nil
		}

		out = append(out, &ValidatorStake{
			AccountID: d.str(stake.Get("account_id"), "account_id"),
			PublicKey: d.publicKey(stake.Get("public_key"), "public_key"),
			Stake:     d.u128(stake.Get("stake"), "stake"),
		})
	}
	return
}

func (d *jsonDecoder) chunkHeader(r gjson.Result) *ChunkHeader {
	if !d.required(r, "header") {
		return nil
	}

	return &ChunkHeader{
		ChunkHash:            d.hash(r.Get("chunk_hash"), "chunk_hash"),
		PrevBlockHash:        d.hash(r.Get("prev_block_hash"), "prev_block_hash"),
		OutcomeRoot:          d.hash(r.Get("outcome_root"), "outcome_root"),
		PrevStateRoot:        d.hash(r.Get("prev_state_root"), "prev_state_root"),
		EncodedMerkleRoot:    d.hash(r.Get("encoded_merkle_root"), "encoded_merkle_root"),
		EncodedLength:        d.u64(r.Get("encoded_length"), "encoded_length"),
		HeightCreated:        d.u64(r.Get("height_created"), "height_created"),
		HeightIncluded:       d.u64(r.Get("height_included"), "height_included"),
		ShardID:              d.u64(r.Get("shard_id"), "shard_id"),
		GasUsed:              d.u64(r.Get("gas_used"), "gas_used"),
		GasLimit:             d.u64(r.Get("gas_limit"), "gas_limit"),
		ValidatorReward:      d.u128(r.Get("validator_reward"), "validator_reward"),
		BalanceBurnt:         d.u128(r.Get("balance_burnt"), "balance_burnt"),
		OutgoingReceiptsRoot: d.hash(r.Get("outgoing_receipts_root"), "outgoing_receipts_root"),
		TxRoot:               d.hash(r.Get("tx_root"), "tx_root"),
		ValidatorProposals:   d.validatorStakes(r.Get("validator_proposals")),
		Signature:            d.signature(r.Get("signature"), "signature"),
	}
}

func (d *jsonDecoder) shard(r gjson.Result) *Shard {
	out := &Shard{
		ShardID: d.u64(r.Get("shard_id"), "shard_id"),
	}

	if chunk := r.Get("chunk"); chunk.Exists() && chunk.Type != gjson.Null {
		out.Chunk = &Chunk{
			Author: d.str(chunk.Get("author"), "author"),
			Header: d.chunkHeader(chunk.Get("header")),
		}

		for _, trx := range d.array(chunk.Get("transactions"), "transactions") {
			out.Chunk.Transactions = append(out.Chunk.Transactions, &TransactionWithOutcome{
				Transaction: d.transaction(trx.Get("transaction")),
				Outcome: &ExecutionOutcomeWithOptionalReceipt{
					ExecutionOutcome: d.outcomeWithID(trx.Get("outcome.execution_outcome")),
					Receipt:          d.optReceipt(trx.Get("outcome.receipt")),
				},
			})
		}

		for _, receipt := range d.array(chunk.Get("receipts"), "receipts") {
			out.Chunk.Receipts = append(out.Chunk.Receipts, d.receipt(receipt))
		}
	}

	for _, outcome := range d.array(r.Get("receipt_execution_outcomes"), "receipt_execution_outcomes") {
		out.ReceiptExecutionOutcomes = append(out.ReceiptExecutionOutcomes, &ExecutionOutcomeWithReceipt{
			ExecutionOutcome: d.outcomeWithID(outcome.Get("execution_outcome")),
			Receipt:          d.receipt(outcome.Get("receipt")),
		})
	}

	return out
}

func (d *jsonDecoder) transaction(r gjson.Result) *SignedTransaction {
	if !d.required(r, "transaction") {
		return nil
	}

	return &SignedTransaction{
		SignerID:   d.str(r.Get("signer_id"), "signer_id"),
		PublicKey:  d.publicKey(r.Get("public_key"), "public_key"),
		Nonce:      d.u64(r.Get("nonce"), "nonce"),
		ReceiverID: d.str(r.Get("receiver_id"), "receiver_id"),
		Actions:    d.actions(r.Get("actions")),
		Signature:  d.signature(r.Get("signature"), "signature"),
		Hash:       d.hash(r.Get("hash"), "hash"),
	}
}

func (d *jsonDecoder) optReceipt(r gjson.Result) *Receipt {
	if r.Type == gjson.Null || !r.Exists() {
		return nil
	}
	return d.receipt(r)
}

func (d *jsonDecoder) receipt(r gjson.Result) *Receipt {
	if !d.required(r, "receipt") {
		return nil
	}

	out := &Receipt{
		PredecessorID: d.str(r.Get("predecessor_id"), "predecessor_id"),
		ReceiverID:    d.str(r.Get("receiver_id"), "receiver_id"),
		ReceiptID:     d.hash(r.Get("receipt_id"), "receipt_id"),
	}

	tag, content := d.variant(r.Get("receipt"), "receipt")
	switch tag {
	case "Action":
		action := ActionReceipt{
			SignerID:        d.str(content.Get("signer_id"), "signer_id"),
			SignerPublicKey: d.publicKey(content.Get("signer_public_key"), "signer_public_key"),
			GasPrice:        d.u128(content.Get("gas_price"), "gas_price"),
			InputDataIDs:    d.hashes(content.Get("input_data_ids"), "input_data_ids"),
			Actions:         d.actions(content.Get("actions")),
		}
		for _, receiver := range d.array(content.Get("output_data_receivers"), "output_data_receivers") {
			action.OutputDataReceivers = append(action.OutputDataReceivers, &DataReceiver{
				DataID:     d.hash(receiver.Get("data_id"), "data_id"),
				ReceiverID: d.str(receiver.Get("receiver_id"), "receiver_id"),
			})
		}
		out.Receipt = action

	case "Data":
		out.Receipt = DataReceipt{
			DataID: d.hash(content.Get("data_id"), "data_id"),
			Data:   d.base64(content.Get("data"), "data"),
		}

	default:
		d.unknownVariant("receipt", tag)
	}

	return out
}

func (d *jsonDecoder) outcomeWithID(r gjson.Result) *ExecutionOutcomeWithID {
	if !d.required(r, "execution_outcome") {
		return nil
	}

	out := &ExecutionOutcomeWithID{
		BlockHash: d.hash(r.Get("block_hash"), "block_hash"),
		ID:        d.hash(r.Get("id"), "id"),
	}

	for _, item := range d.array(r.Get("proof"), "proof") {
		pathItem := &MerklePathItem{Hash: d.hash(item.Get("hash"), "hash")}
		switch direction := d.str(item.Get("direction"), "direction"); direction {
		case "Left":
			pathItem.Direction = DirectionLeft
		case "Right":
			pathItem.Direction = DirectionRight
		default:
			d.unknownVariant("direction", direction)
		}
		out.Proof = append(out.Proof, pathItem)
	}

	o := r.Get("outcome")
	if !d.required(o, "outcome") {
		return out
	}

	out.Outcome = &ExecutionOutcome{
		ReceiptIDs:  d.hashes(o.Get("receipt_ids"), "receipt_ids"),
		GasBurnt:    d.u64(o.Get("gas_burnt"), "gas_burnt"),
		TokensBurnt: d.u128(o.Get("tokens_burnt"), "tokens_burnt"),
		ExecutorID:  d.str(o.Get("executor_id"), "executor_id"),
		Status:      d.executionStatus(o.Get("status")),
		Metadata:    d.executionMetadata(o.Get("metadata")),
	}
	for _, log := range d.array(o.Get("logs"), "logs") {
		out.Outcome.Logs = append(out.Outcome.Logs, d.str(log, "logs"))
	}

	return out
}

func (d *jsonDecoder) executionMetadata(r gjson.Result) (out ExecutionMetadata) {
	if !d.required(r, "metadata") {
		return
	}

	out.Version = d.u32(r.Get("version"), "version")
	for _, cost := range d.array(r.Get("gas_profile"), "gas_profile") {
		out.GasProfile = append(out.GasProfile, &CostGasUsed{
			CostCategory: d.str(cost.Get("cost_category"), "cost_category"),
			Cost:         d.str(cost.Get("cost"), "cost"),
			GasUsed:      d.u64(cost.Get("gas_used"), "gas_used"),
		})
	}
	return
}

func (d *jsonDecoder) executionStatus(r gjson.Result) ExecutionStatus {
	tag, content := d.variant(r, "status")
	switch tag {
	case "Unknown":
		return ExecutionStatusUnknown{}
	case "Failure":
		return ExecutionStatusFailure{Error: d.txExecutionError(content)}
	case "SuccessValue":
		return ExecutionStatusSuccessValue{Value: d.base64(content, "SuccessValue")}
	case "SuccessReceiptId":
		return ExecutionStatusSuccessReceiptID{ReceiptID: d.hash(content, "SuccessReceiptId")}
	}

	d.unknownVariant("status", tag)
	return nil
}

func (d *jsonDecoder) actions(r gjson.Result) (out []Action) {
	for _, action := range d.array(r, "actions") {
		out = append(out, d.action(action))
	}
	return
}

func (d *jsonDecoder) action(r gjson.Result) Action {
	tag, content := d.variant(r, "action")
	switch tag {
	case "CreateAccount":
		return CreateAccountAction{}
	case "DeployContract":
		return DeployContractAction{Code: d.base64(content.Get("code"), "code")}
	case "FunctionCall":
		return FunctionCallAction{
			MethodName: d.str(content.Get("method_name"), "method_name"),
			Args:       d.base64(content.Get("args"), "args"),
			Gas:        d.u64(content.Get("gas"), "gas"),
			Deposit:    d.u128(content.Get("deposit"), "deposit"),
		}
	case "Transfer":
		return TransferAction{Deposit: d.u128(content.Get("deposit"), "deposit")}
	case "Stake":
		return StakeAction{
			Stake:     d.u128(content.Get("stake"), "stake"),
			PublicKey: d.publicKey(content.Get("public_key"), "public_key"),
		}
	case "AddKey":
		return AddKeyAction{
			PublicKey: d.publicKey(content.Get("public_key"), "public_key"),
			AccessKey: d.accessKey(content.Get("access_key")),
		}
	case "DeleteKey":
		return DeleteKeyAction{PublicKey: d.publicKey(content.Get("public_key"), "public_key")}
	case "DeleteAccount":
		return DeleteAccountAction{BeneficiaryID: d.str(content.Get("beneficiary_id"), "beneficiary_id")}
	case "Delegate":
		delegate := content.Get("delegate_action")
		if !d.required(delegate, "delegate_action") {
			return nil
		}
		return DelegateAction{
			SenderID:       d.str(delegate.Get("sender_id"), "sender_id"),
			ReceiverID:     d.str(delegate.Get("receiver_id"), "receiver_id"),
			Actions:        d.actions(delegate.Get("actions")),
			Nonce:          d.u64(delegate.Get("nonce"), "nonce"),
			MaxBlockHeight: d.u64(delegate.Get("max_block_height"), "max_block_height"),
			PublicKey:      d.publicKey(delegate.Get("public_key"), "public_key"),
			Signature:      d.signature(content.Get("signature"), "signature"),
		}
	}

	d.unknownVariant("action", tag)
	return nil
}

func (d *jsonDecoder) accessKey(r gjson.Result) (out AccessKey) {
	if !d.required(r, "access_key") {
		return
	}

	out.Nonce = d.u64(r.Get("nonce"), "nonce")

	tag, content := d.variant(r.Get("permission"), "permission")
	switch tag {
	case "FullAccess":
		out.Permission = FullAccessPermission{}
	case "FunctionCall":
		permission := FunctionCallPermission{
			Allowance:  d.optU128(content.Get("allowance"), "allowance"),
			ReceiverID: d.str(content.Get("receiver_id"), "receiver_id"),
		}
		for _, name := range d.array(content.Get("method_names"), "method_names") {
			permission.MethodNames = append(permission.MethodNames, d.str(name, "method_names"))
		}
		out.Permission = permission
	default:
		d.unknownVariant("permission", tag)
	}
	return
}

func (d *jsonDecoder) stateChange(r gjson.Result) *StateChangeWithCause {
	out := &StateChangeWithCause{}

	cause := r.Get("cause")
	switch kind := d.str(cause.Get("type"), "cause.type"); kind {
	case "not_writable_to_disk":
		out.Cause = CauseNotWritableToDisk{}
	case "initial_state":
		out.Cause = CauseInitialState{}
	case "transaction_processing":
		out.Cause = CauseTransactionProcessing{TxHash: d.hash(cause.Get("tx_hash"), "tx_hash")}
	case "action_receipt_processing_started":
		out.Cause = CauseActionReceiptProcessingStarted{ReceiptHash: d.hash(cause.Get("receipt_hash"), "receipt_hash")}
	case "action_receipt_gas_reward":
		out.Cause = CauseActionReceiptGasReward{ReceiptHash: d.hash(cause.Get("receipt_hash"), "receipt_hash")}
	case "receipt_processing":
		out.Cause = CauseReceiptProcessing{ReceiptHash: d.hash(cause.Get("receipt_hash"), "receipt_hash")}
	case "postponed_receipt":
		out.Cause = CausePostponedReceipt{ReceiptHash: d.hash(cause.Get("receipt_hash"), "receipt_hash")}
	case "updated_delayed_receipts":
		out.Cause = CauseUpdatedDelayedReceipts{}
	case "validator_accounts_update":
		out.Cause = CauseValidatorAccountsUpdate{}
	case "migration":
		out.Cause = CauseMigration{}
	default:
		d.unknownVariant("cause.type", kind)
	}

	change := r.Get("change")
	accountID := func() string { return d.str(change.Get("account_id"), "account_id") }

	switch kind := d.str(r.Get("type"), "type"); kind {
	case "account_update":
		out.Value = AccountUpdate{
			AccountID: accountID(),
			Account: Account{
				Amount:       d.u128(change.Get("amount"), "amount"),
				Locked:       d.u128(change.Get("locked"), "locked"),
				CodeHash:     d.hash(change.Get("code_hash"), "code_hash"),
				StorageUsage: d.u64(change.Get("storage_usage"), "storage_usage"),
			},
		}
	case "account_deletion":
		out.Value = AccountDeletion{AccountID: accountID()}
	case "access_key_update":
		out.Value = AccessKeyUpdate{
			AccountID: accountID(),
			PublicKey: d.publicKey(change.Get("public_key"), "public_key"),
			AccessKey: d.accessKey(change.Get("access_key")),
		}
	case "access_key_deletion":
		out.Value = AccessKeyDeletion{
			AccountID: accountID(),
			PublicKey: d.publicKey(change.Get("public_key"), "public_key"),
		}
	case "data_update":
		out.Value = DataUpdate{
			AccountID: accountID(),
			Key:       d.base64(change.Get("key_base64"), "key_base64"),
			Value:     d.base64(change.Get("value_base64"), "value_base64"),
		}
	case "data_deletion":
		out.Value = DataDeletion{
			AccountID: accountID(),
			Key:       d.base64(change.Get("key_base64"), "key_base64"),
		}
	case "contract_code_update":
		out.Value = ContractCodeUpdate{
			AccountID: accountID(),
			Code:      d.base64(change.Get("code_base64"), "code_base64"),
		}
	case "contract_code_deletion":
		out.Value = ContractCodeDeletion{AccountID: accountID()}
	default:
		d.unknownVariant("type", kind)
	}

	return out
}
