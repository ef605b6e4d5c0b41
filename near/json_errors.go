package near

import (
	"github.com/tidwall/gjson"
)

func (d *jsonDecoder) txExecutionError(r gjson.Result) TxExecutionError {
	tag, content := d.variant(r, "Failure")
	switch tag {
	case "ActionError":
		return ActionError{
			Index: d.optU64(content.Get("index"), "index"),
			Kind:  d.actionErrorKind(content.Get("kind")),
		}
	case "InvalidTxError":
		return d.invalidTxError(content)
	}

	d.unknownVariant("Failure", tag)
	return nil
}

func (d *jsonDecoder) invalidTxError(r gjson.Result) InvalidTxError {
	tag, c := d.variant(r, "InvalidTxError")
	switch tag {
	case "InvalidAccessKeyError":
		return TxInvalidAccessKey{Error: d.invalidAccessKeyError(c)}
	case "InvalidSignerId":
		return TxInvalidSignerID{SignerID: d.str(c.Get("signer_id"), "signer_id")}
	case "SignerDoesNotExist":
		return TxSignerDoesNotExist{SignerID: d.str(c.Get("signer_id"), "signer_id")}
	case "InvalidNonce":
		return TxInvalidNonce{
			TxNonce: d.u64(c.Get("tx_nonce"), "tx_nonce"),
			AkNonce: d.u64(c.Get("ak_nonce"), "ak_nonce"),
		}
	case "NonceTooLarge":
		return TxNonceTooLarge{
			TxNonce:    d.u64(c.Get("tx_nonce"), "tx_nonce"),
			UpperBound: d.u64(c.Get("upper_bound"), "upper_bound"),
		}
	case "InvalidReceiverId":
		return TxInvalidReceiverID{ReceiverID: d.str(c.Get("receiver_id"), "receiver_id")}
	case "InvalidSignature":
		return TxInvalidSignature{}
	case "NotEnoughBalance":
		return TxNotEnoughBalance{
			SignerID: d.str(c.Get("signer_id"), "signer_id"),
			Balance:  d.u128(c.Get("balance"), "balance"),
			Cost:     d.u128(c.Get("cost"), "cost"),
		}
	case "LackBalanceForState":
		return TxLackBalanceForState{
			SignerID: d.str(c.Get("signer_id"), "signer_id"),
			Amount:   d.u128(c.Get("amount"), "amount"),
		}
	case "CostOverflow":
		return TxCostOverflow{}
	case "InvalidChain":
		return TxInvalidChain{}
	case "Expired":
		return TxExpired{}
	case "ActionsValidation":
		return TxActionsValidation{Error: d.actionsValidationError(c)}
	case "TransactionSizeExceeded":
		return TxSizeExceeded{
			Size:  d.u64(c.Get("size"), "size"),
			Limit: d.u64(c.Get("limit"), "limit"),
		}
	}

	d.unknownVariant("InvalidTxError", tag)
	return nil
}

func (d *jsonDecoder) invalidAccessKeyError(r gjson.Result) InvalidAccessKeyError {
	tag, c := d.variant(r, "InvalidAccessKeyError")
	switch tag {
	case "AccessKeyNotFound":
		return AccessKeyNotFound{
			AccountID: d.str(c.Get("account_id"), "account_id"),
			PublicKey: d.publicKey(c.Get("public_key"), "public_key"),
		}
	case "ReceiverMismatch":
		return AccessKeyReceiverMismatch{
			TxReceiver: d.str(c.Get("tx_receiver"), "tx_receiver"),
			AkReceiver: d.str(c.Get("ak_receiver"), "ak_receiver"),
		}
	case "MethodNameMismatch":
		return AccessKeyMethodNameMismatch{MethodName: d.str(c.Get("method_name"), "method_name")}
	case "RequiresFullAccess":
		return AccessKeyRequiresFullAccess{}
	case "NotEnoughAllowance":
		return AccessKeyNotEnoughAllowance{
			AccountID: d.str(c.Get("account_id"), "account_id"),
			PublicKey: d.publicKey(c.Get("public_key"), "public_key"),
			Allowance: d.u128(c.Get("allowance"), "allowance"),
			Cost:      d.u128(c.Get("cost"), "cost"),
		}
	case "DepositWithFunctionCall":
		return AccessKeyDepositWithFunctionCall{}
	}

	d.unknownVariant("InvalidAccessKeyError", tag)
	return nil
}

// actionsValidationError keeps the variant name only, its payload differs
// between every variant and is dropped on projection anyway.
func (d *jsonDecoder) actionsValidationError(r gjson.Result) ActionsValidationError {
	tag, _ := d.variant(r, "ActionsValidation")
	return ActionsValidationError{Kind: tag}
}

func (d *jsonDecoder) actionErrorKind(r gjson.Result) ActionErrorKind {
	tag, c := d.variant(r, "kind")
	accountID := func() string { return d.str(c.Get("account_id"), "account_id") }

	switch tag {
	case "AccountAlreadyExists":
		return AccountAlreadyExists{AccountID: accountID()}
	case "AccountDoesNotExist":
		return AccountDoesNotExist{AccountID: accountID()}
	case "CreateAccountOnlyByRegistrar":
		return CreateAccountOnlyByRegistrar{
			AccountID:          accountID(),
			RegistrarAccountID: d.str(c.Get("registrar_account_id"), "registrar_account_id"),
			PredecessorID:      d.str(c.Get("predecessor_id"), "predecessor_id"),
		}
	case "CreateAccountNotAllowed":
		return CreateAccountNotAllowed{
			AccountID:     accountID(),
			PredecessorID: d.str(c.Get("predecessor_id"), "predecessor_id"),
		}
	case "ActorNoPermission":
		return ActorNoPermission{
			AccountID: accountID(),
			ActorID:   d.str(c.Get("actor_id"), "actor_id"),
		}
	case "DeleteKeyDoesNotExist":
		return DeleteKeyDoesNotExist{
			AccountID: accountID(),
			PublicKey: d.publicKey(c.Get("public_key"), "public_key"),
		}
	case "AddKeyAlreadyExists":
		return AddKeyAlreadyExists{
			AccountID: accountID(),
			PublicKey: d.publicKey(c.Get("public_key"), "public_key"),
		}
	case "DeleteAccountStaking":
		return DeleteAccountStaking{AccountID: accountID()}
	case "LackBalanceForState":
		return LackBalanceForState{
			AccountID: accountID(),
			Amount:    d.u128(c.Get("amount"), "amount"),
		}
	case "TriesToUnstake":
		return TriesToUnstake{AccountID: accountID()}
	case "TriesToStake":
		return TriesToStake{
			AccountID: accountID(),
			Stake:     d.u128(c.Get("stake"), "stake"),
			Locked:    d.u128(c.Get("locked"), "locked"),
			Balance:   d.u128(c.Get("balance"), "balance"),
		}
	case "InsufficientStake":
		return InsufficientStake{
			AccountID:    accountID(),
			Stake:        d.u128(c.Get("stake"), "stake"),
			MinimumStake: d.u128(c.Get("minimum_stake"), "minimum_stake"),
		}
	case "FunctionCallError":
		return FunctionCallErrorKind{Error: d.functionCallError(c)}
	case "NewReceiptValidationError":
		return NewReceiptValidationErrorKind{Error: d.receiptValidationError(c)}
	case "OnlyImplicitAccountCreationAllowed":
		return OnlyImplicitAccountCreationAllowed{AccountID: accountID()}
	case "DeleteAccountWithLargeState":
		return DeleteAccountWithLargeState{AccountID: accountID()}
	case "DelegateActionInvalidSignature":
		return DelegateActionInvalidSignature{}
	case "DelegateActionSenderDoesNotMatchTxReceiver":
		return DelegateActionSenderDoesNotMatchTxReceiver{
			SenderID:   d.str(c.Get("sender_id"), "sender_id"),
			ReceiverID: d.str(c.Get("receiver_id"), "receiver_id"),
		}
	case "DelegateActionExpired":
		return DelegateActionExpired{}
	case "DelegateActionAccessKeyError":
		return DelegateActionAccessKeyError{Error: d.invalidAccessKeyError(c)}
	case "DelegateActionInvalidNonce":
		return DelegateActionInvalidNonce{
			DelegateNonce: d.u64(c.Get("delegate_nonce"), "delegate_nonce"),
			AkNonce:       d.u64(c.Get("ak_nonce"), "ak_nonce"),
		}
	case "DelegateActionNonceTooLarge":
		return DelegateActionNonceTooLarge{
			DelegateNonce: d.u64(c.Get("delegate_nonce"), "delegate_nonce"),
			UpperBound:    d.u64(c.Get("upper_bound"), "upper_bound"),
		}
	}

	d.unknownVariant("kind", tag)
	return nil
}

func (d *jsonDecoder) functionCallError(r gjson.Result) FunctionCallError {
	tag, c := d.variant(r, "FunctionCallError")
	switch tag {
	case "CompilationError":
		reason, _ := d.variant(c, "CompilationError")
		return CompilationError{Reason: reason}
	case "LinkError":
		return LinkError{Msg: d.str(c.Get("msg"), "msg")}
	case "MethodResolveError":
		reason, _ := d.variant(c, "MethodResolveError")
		return MethodResolveError{Reason: reason}
	case "WasmTrap":
		reason, _ := d.variant(c, "WasmTrap")
		return WasmTrap{Reason: reason}
	case "WasmUnknownError":
		return WasmUnknownError{}
	case "HostError":
		reason, _ := d.variant(c, "HostError")
		return HostError{Reason: reason}
	case "_EVMError":
		return EVMError{}
	case "ExecutionError":
		return ExecutionError{Msg: d.str(c, "ExecutionError")}
	}

	d.unknownVariant("FunctionCallError", tag)
	return nil
}

func (d *jsonDecoder) receiptValidationError(r gjson.Result) ReceiptValidationError {
	tag, c := d.variant(r, "NewReceiptValidationError")
	switch tag {
	case "InvalidPredecessorId":
		return ReceiptInvalidPredecessorID{AccountID: d.str(c.Get("account_id"), "account_id")}
	case "InvalidReceiverId":
		return ReceiptInvalidReceiverID{AccountID: d.str(c.Get("account_id"), "account_id")}
	case "InvalidSignerId":
		return ReceiptInvalidSignerID{AccountID: d.str(c.Get("account_id"), "account_id")}
	case "InvalidDataReceiverId":
		return ReceiptInvalidDataReceiverID{AccountID: d.str(c.Get("account_id"), "account_id")}
	case "ReturnedValueLengthExceeded":
		return ReceiptReturnedValueLengthExceeded{
			Length: d.u64(c.Get("length"), "length"),
			Limit:  d.u64(c.Get("limit"), "limit"),
		}
	case "NumberInputDataDependenciesExceeded":
		return ReceiptNumberInputDataDependenciesExceeded{
			NumberOfInputDataDependencies: d.u64(c.Get("number_of_input_data_dependencies"), "number_of_input_data_dependencies"),
			Limit:                         d.u64(c.Get("limit"), "limit"),
		}
	case "ActionsValidation":
		return ReceiptActionsValidation{Error: d.actionsValidationError(c)}
	}

	d.unknownVariant("NewReceiptValidationError", tag)
	return nil
}
