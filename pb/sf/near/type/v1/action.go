package pbnear

import (
	"github.com/golang/protobuf/proto"
)

type Action struct {
	// Types that are valid to be assigned to Action:
	//	*Action_CreateAccount
	//	*Action_DeployContract
	//	*Action_FunctionCall
	//	*Action_Transfer
	//	*Action_Stake
	//	*Action_AddKey
	//	*Action_DeleteKey
	//	*Action_DeleteAccount
	//	*Action_Delegate
	Action isAction_Action `protobuf_oneof:"action"`
}

func (m *Action) Reset()         { *m = Action{} }
func (m *Action) String() string { return proto.CompactTextString(m) }
func (*Action) ProtoMessage()    {}

type isAction_Action interface {
	isAction_Action()
}

type Action_CreateAccount struct {
	CreateAccount *CreateAccountAction `protobuf:"bytes,1,opt,name=create_account,json=createAccount,proto3,oneof"`
}

type Action_DeployContract struct {
	DeployContract *DeployContractAction `protobuf:"bytes,2,opt,name=deploy_contract,json=deployContract,proto3,oneof"`
}

type Action_FunctionCall struct {
	FunctionCall *FunctionCallAction `protobuf:"bytes,3,opt,name=function_call,json=functionCall,proto3,oneof"`
}

type Action_Transfer struct {
	Transfer *TransferAction `protobuf:"bytes,4,opt,name=transfer,proto3,oneof"`
}

type Action_Stake struct {
	Stake *StakeAction `protobuf:"bytes,5,opt,name=stake,proto3,oneof"`
}

type Action_AddKey struct {
	AddKey *AddKeyAction `protobuf:"bytes,6,opt,name=add_key,json=addKey,proto3,oneof"`
}

type Action_DeleteKey struct {
	DeleteKey *DeleteKeyAction `protobuf:"bytes,7,opt,name=delete_key,json=deleteKey,proto3,oneof"`
}

type Action_DeleteAccount struct {
	DeleteAccount *DeleteAccountAction `protobuf:"bytes,8,opt,name=delete_account,json=deleteAccount,proto3,oneof"`
}

type Action_Delegate struct {
	Delegate *SignedDelegateAction `protobuf:"bytes,9,opt,name=delegate,proto3,oneof"`
}

func (*Action_CreateAccount) isAction_Action()  {}
func (*Action_DeployContract) isAction_Action() {}
func (*Action_FunctionCall) isAction_Action()   {}
func (*Action_Transfer) isAction_Action()       {}
func (*Action_Stake) isAction_Action()          {}
func (*Action_AddKey) isAction_Action()         {}
func (*Action_DeleteKey) isAction_Action()      {}
func (*Action_DeleteAccount) isAction_Action()  {}
func (*Action_Delegate) isAction_Action()       {}

func (m *Action) GetAction() isAction_Action {
	if m != nil {
		return m.Action
	}
	return nil
}

func (m *Action) GetCreateAccount() *CreateAccountAction {
	if x, ok := m.GetAction().(*Action_CreateAccount); ok {
		return x.CreateAccount
	}
	return nil
}

func (m *Action) GetDeployContract() *DeployContractAction {
	if x, ok := m.GetAction().(*Action_DeployContract); ok {
		return x.DeployContract
	}
	return nil
}

func (m *Action) GetFunctionCall() *FunctionCallAction {
	if x, ok := m.GetAction().(*Action_FunctionCall); ok {
		return x.FunctionCall
	}
	return nil
}

func (m *Action) GetTransfer() *TransferAction {
	if x, ok := m.GetAction().(*Action_Transfer); ok {
		return x.Transfer
	}
	return nil
}

func (m *Action) GetStake() *StakeAction {
	if x, ok := m.GetAction().(*Action_Stake); ok {
		return x.Stake
	}
	return nil
}

func (m *Action) GetAddKey() *AddKeyAction {
	if x, ok := m.GetAction().(*Action_AddKey); ok {
		return x.AddKey
	}
	return nil
}

func (m *Action) GetDeleteKey() *DeleteKeyAction {
	if x, ok := m.GetAction().(*Action_DeleteKey); ok {
		return x.DeleteKey
	}
	return nil
}

func (m *Action) GetDeleteAccount() *DeleteAccountAction {
	if x, ok := m.GetAction().(*Action_DeleteAccount); ok {
		return x.DeleteAccount
	}
	return nil
}

func (m *Action) GetDelegate() *SignedDelegateAction {
	if x, ok := m.GetAction().(*Action_Delegate); ok {
		return x.Delegate
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*Action) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Action_CreateAccount)(nil),
		(*Action_DeployContract)(nil),
		(*Action_FunctionCall)(nil),
		(*Action_Transfer)(nil),
		(*Action_Stake)(nil),
		(*Action_AddKey)(nil),
		(*Action_DeleteKey)(nil),
		(*Action_DeleteAccount)(nil),
		(*Action_Delegate)(nil),
	}
}

type CreateAccountAction struct {
}

func (m *CreateAccountAction) Reset()         { *m = CreateAccountAction{} }
func (m *CreateAccountAction) String() string { return proto.CompactTextString(m) }
func (*CreateAccountAction) ProtoMessage()    {}

type DeployContractAction struct {
	Code []byte `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
}

func (m *DeployContractAction) Reset()         { *m = DeployContractAction{} }
func (m *DeployContractAction) String() string { return proto.CompactTextString(m) }
func (*DeployContractAction) ProtoMessage()    {}

type FunctionCallAction struct {
	MethodName string  `protobuf:"bytes,1,opt,name=method_name,json=methodName,proto3" json:"method_name,omitempty"`
	Args       []byte  `protobuf:"bytes,2,opt,name=args,proto3" json:"args,omitempty"`
	Gas        uint64  `protobuf:"varint,3,opt,name=gas,proto3" json:"gas,omitempty"`
	Deposit    *BigInt `protobuf:"bytes,4,opt,name=deposit,proto3" json:"deposit,omitempty"`
}

func (m *FunctionCallAction) Reset()         { *m = FunctionCallAction{} }
func (m *FunctionCallAction) String() string { return proto.CompactTextString(m) }
func (*FunctionCallAction) ProtoMessage()    {}

type TransferAction struct {
	Deposit *BigInt `protobuf:"bytes,1,opt,name=deposit,proto3" json:"deposit,omitempty"`
}

func (m *TransferAction) Reset()         { *m = TransferAction{} }
func (m *TransferAction) String() string { return proto.CompactTextString(m) }
func (*TransferAction) ProtoMessage()    {}

func (m *TransferAction) GetDeposit() *BigInt {
	if m != nil {
		return m.Deposit
	}
	return nil
}

type StakeAction struct {
	Stake     *BigInt    `protobuf:"bytes,1,opt,name=stake,proto3" json:"stake,omitempty"`
	PublicKey *PublicKey `protobuf:"bytes,2,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
}

func (m *StakeAction) Reset()         { *m = StakeAction{} }
func (m *StakeAction) String() string { return proto.CompactTextString(m) }
func (*StakeAction) ProtoMessage()    {}

type AddKeyAction struct {
	PublicKey *PublicKey `protobuf:"bytes,1,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	AccessKey *AccessKey `protobuf:"bytes,2,opt,name=access_key,json=accessKey,proto3" json:"access_key,omitempty"`
}

func (m *AddKeyAction) Reset()         { *m = AddKeyAction{} }
func (m *AddKeyAction) String() string { return proto.CompactTextString(m) }
func (*AddKeyAction) ProtoMessage()    {}

type DeleteKeyAction struct {
	PublicKey *PublicKey `protobuf:"bytes,1,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
}

func (m *DeleteKeyAction) Reset()         { *m = DeleteKeyAction{} }
func (m *DeleteKeyAction) String() string { return proto.CompactTextString(m) }
func (*DeleteKeyAction) ProtoMessage()    {}

type DeleteAccountAction struct {
	BeneficiaryId string `protobuf:"bytes,1,opt,name=beneficiary_id,json=beneficiaryId,proto3" json:"beneficiary_id,omitempty"`
}

func (m *DeleteAccountAction) Reset()         { *m = DeleteAccountAction{} }
func (m *DeleteAccountAction) String() string { return proto.CompactTextString(m) }
func (*DeleteAccountAction) ProtoMessage()    {}

type SignedDelegateAction struct {
	Signature      *Signature      `protobuf:"bytes,1,opt,name=signature,proto3" json:"signature,omitempty"`
	DelegateAction *DelegateAction `protobuf:"bytes,2,opt,name=delegate_action,json=delegateAction,proto3" json:"delegate_action,omitempty"`
}

func (m *SignedDelegateAction) Reset()         { *m = SignedDelegateAction{} }
func (m *SignedDelegateAction) String() string { return proto.CompactTextString(m) }
func (*SignedDelegateAction) ProtoMessage()    {}

func (m *SignedDelegateAction) GetDelegateAction() *DelegateAction {
	if m != nil {
		return m.DelegateAction
	}
	return nil
}

type DelegateAction struct {
	SenderId       string     `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	ReceiverId     string     `protobuf:"bytes,2,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
	Actions        []*Action  `protobuf:"bytes,3,rep,name=actions,proto3" json:"actions,omitempty"`
	Nonce          uint64     `protobuf:"varint,4,opt,name=nonce,proto3" json:"nonce,omitempty"`
	MaxBlockHeight uint64     `protobuf:"varint,5,opt,name=max_block_height,json=maxBlockHeight,proto3" json:"max_block_height,omitempty"`
	PublicKey      *PublicKey `protobuf:"bytes,6,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
}

func (m *DelegateAction) Reset()         { *m = DelegateAction{} }
func (m *DelegateAction) String() string { return proto.CompactTextString(m) }
func (*DelegateAction) ProtoMessage()    {}

type AccessKey struct {
	Nonce      uint64               `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Permission *AccessKeyPermission `protobuf:"bytes,2,opt,name=permission,proto3" json:"permission,omitempty"`
}

func (m *AccessKey) Reset()         { *m = AccessKey{} }
func (m *AccessKey) String() string { return proto.CompactTextString(m) }
func (*AccessKey) ProtoMessage()    {}

type AccessKeyPermission struct {
	// Types that are valid to be assigned to Permission:
	//	*AccessKeyPermission_FunctionCall
	//	*AccessKeyPermission_FullAccess
	Permission isAccessKeyPermission_Permission `protobuf_oneof:"permission"`
}

func (m *AccessKeyPermission) Reset()         { *m = AccessKeyPermission{} }
func (m *AccessKeyPermission) String() string { return proto.CompactTextString(m) }
func (*AccessKeyPermission) ProtoMessage()    {}

type isAccessKeyPermission_Permission interface {
	isAccessKeyPermission_Permission()
}

type AccessKeyPermission_FunctionCall struct {
	FunctionCall *FunctionCallPermission `protobuf:"bytes,1,opt,name=function_call,json=functionCall,proto3,oneof"`
}

type AccessKeyPermission_FullAccess struct {
	FullAccess *FullAccessPermission `protobuf:"bytes,2,opt,name=full_access,json=fullAccess,proto3,oneof"`
}

func (*AccessKeyPermission_FunctionCall) isAccessKeyPermission_Permission() {}
func (*AccessKeyPermission_FullAccess) isAccessKeyPermission_Permission()   {}

func (m *AccessKeyPermission) GetPermission() isAccessKeyPermission_Permission {
	if m != nil {
		return m.Permission
	}
	return nil
}

func (m *AccessKeyPermission) GetFunctionCall() *FunctionCallPermission {
	if x, ok := m.GetPermission().(*AccessKeyPermission_FunctionCall); ok {
		return x.FunctionCall
	}
	return nil
}

func (m *AccessKeyPermission) GetFullAccess() *FullAccessPermission {
	if x, ok := m.GetPermission().(*AccessKeyPermission_FullAccess); ok {
		return x.FullAccess
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*AccessKeyPermission) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*AccessKeyPermission_FunctionCall)(nil),
		(*AccessKeyPermission_FullAccess)(nil),
	}
}

type FunctionCallPermission struct {
	Allowance   *BigInt  `protobuf:"bytes,1,opt,name=allowance,proto3" json:"allowance,omitempty"`
	ReceiverId  string   `protobuf:"bytes,2,opt,name=receiver_id,json=receiverId,proto3" json:"receiver_id,omitempty"`
	MethodNames []string `protobuf:"bytes,3,rep,name=method_names,json=methodNames,proto3" json:"method_names,omitempty"`
}

func (m *FunctionCallPermission) Reset()         { *m = FunctionCallPermission{} }
func (m *FunctionCallPermission) String() string { return proto.CompactTextString(m) }
func (*FunctionCallPermission) ProtoMessage()    {}

type FullAccessPermission struct {
}

func (m *FullAccessPermission) Reset()         { *m = FullAccessPermission{} }
func (m *FullAccessPermission) String() string { return proto.CompactTextString(m) }
func (*FullAccessPermission) ProtoMessage()    {}
