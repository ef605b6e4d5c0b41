package near

// Action is one of the nine operations a transaction or an action receipt can
// carry. Implementations are value types.
type Action interface {
	isAction()
}

type CreateAccountAction struct{}

type DeployContractAction struct {
	Code []byte
}

type FunctionCallAction struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    Uint128
}

type TransferAction struct {
	Deposit Uint128
}

type StakeAction struct {
	Stake     Uint128
	PublicKey PublicKey
}

type AddKeyAction struct {
	PublicKey PublicKey
	AccessKey AccessKey
}

type DeleteKeyAction struct {
	PublicKey PublicKey
}

type DeleteAccountAction struct {
	BeneficiaryID string
}

// DelegateAction is a meta transaction: actions signed by SenderID and relayed
// by someone else. Its inner actions can never be DelegateAction themselves.
type DelegateAction struct {
	SenderID       string
	ReceiverID     string
	Actions        []Action
	Nonce          uint64
	MaxBlockHeight uint64
	PublicKey      PublicKey
	Signature      Signature
}

func (CreateAccountAction) isAction()  {}
func (DeployContractAction) isAction() {}
func (FunctionCallAction) isAction()   {}
func (TransferAction) isAction()       {}
func (StakeAction) isAction()          {}
func (AddKeyAction) isAction()         {}
func (DeleteKeyAction) isAction()      {}
func (DeleteAccountAction) isAction()  {}
func (DelegateAction) isAction()       {}

type AccessKey struct {
	Nonce      uint64
	Permission AccessKeyPermission
}

// AccessKeyPermission is either FunctionCallPermission or FullAccessPermission.
type AccessKeyPermission interface {
	isAccessKeyPermission()
}

type FunctionCallPermission struct {
	// Allowance is nil for an unlimited allowance.
	Allowance   *Uint128
	ReceiverID  string
	MethodNames []string
}

type FullAccessPermission struct{}

func (FunctionCallPermission) isAccessKeyPermission() {}
func (FullAccessPermission) isAccessKeyPermission()   {}
