package codec

import (
	"fmt"

	"github.com/streamingfast/near-firehose-indexer/near"
	pbnear "github.com/streamingfast/near-firehose-indexer/pb/sf/near/type/v1"
)

func ReceiptToProto(in *near.Receipt) (*pbnear.Receipt, error) {
	if in == nil {
		return nil, fmt.Errorf("missing receipt")
	}

	out := &pbnear.Receipt{
		PredecessorId: in.PredecessorID,
		ReceiverId:    in.ReceiverID,
		ReceiptId:     HashToProto(in.ReceiptID),
	}

	switch r := in.Receipt.(type) {
	case near.ActionReceipt:
		action, err := ActionReceiptToProto(r)
		if err != nil {
			return nil, fmt.Errorf("receipt %s: %w", in.ReceiptID, err)
		}
		out.Receipt = &pbnear.Receipt_Action{Action: action}

	case near.DataReceipt:
		data := r.Data
		if data == nil {
			data = []byte{}
		}
		out.Receipt = &pbnear.Receipt_Data{Data: &pbnear.ReceiptData{
			DataId: HashToProto(r.DataID),
			Data:   data,
		}}

	default:
		return nil, unknownVariant("receipt", in.Receipt)
	}

	return out, nil
}

func ActionReceiptToProto(in near.ActionReceipt) (*pbnear.ReceiptAction, error) {
	signerPublicKey, err := PublicKeyToProto(in.SignerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}

	actions, err := ActionsToProto(in.Actions)
	if err != nil {
		return nil, err
	}

	out := &pbnear.ReceiptAction{
		SignerId:        in.SignerID,
		SignerPublicKey: signerPublicKey,
		GasPrice:        BigIntToProto(in.GasPrice),
		InputDataIds:    HashesToProto(in.InputDataIDs),
		Actions:         actions,
	}

	if len(in.OutputDataReceivers) > 0 {
		out.OutputDataReceivers = make([]*pbnear.DataReceiver, len(in.OutputDataReceivers))
		for i, receiver := range in.OutputDataReceivers {
			out.OutputDataReceivers[i] = &pbnear.DataReceiver{
				DataId:     HashToProto(receiver.DataID),
				ReceiverId: receiver.ReceiverID,
			}
		}
	}

	return out, nil
}

func ExecutionOutcomeWithIDToProto(in *near.ExecutionOutcomeWithID) (*pbnear.ExecutionOutcomeWithId, error) {
	if in == nil {
		return nil, fmt.Errorf("missing execution outcome")
	}

	proof, err := MerklePathToProto(in.Proof)
	if err != nil {
		return nil, err
	}

	outcome, err := ExecutionOutcomeToProto(in.Outcome)
	if err != nil {
		return nil, fmt.Errorf("execution outcome %s: %w", in.ID, err)
	}

	return &pbnear.ExecutionOutcomeWithId{
		Proof:     proof,
		BlockHash: HashToProto(in.BlockHash),
		Id:        HashToProto(in.ID),
		Outcome:   outcome,
	}, nil
}

func MerklePathToProto(in near.MerklePath) (*pbnear.MerklePath, error) {
	out := &pbnear.MerklePath{}
	if len(in) == 0 {
		return out, nil
	}

	out.Path = make([]*pbnear.MerklePathItem, len(in))
	for i, item := range in {
		var direction pbnear.Direction
		switch item.Direction {
		case near.DirectionLeft:
			direction = pbnear.Direction_left
		case near.DirectionRight:
			direction = pbnear.Direction_right
		default:
			return nil, fmt.Errorf("proof item %d: direction: %w %d", i, ErrUnknownVariant, item.Direction)
		}

		out.Path[i] = &pbnear.MerklePathItem{
			Hash:      HashToProto(item.Hash),
			Direction: direction,
		}
	}
	return out, nil
}

// ExecutionOutcomeToProto drops the metadata gas profile, only its version
// survives and every known version maps to the single wire value.
func ExecutionOutcomeToProto(in *near.ExecutionOutcome) (*pbnear.ExecutionOutcome, error) {
	if in == nil {
		return nil, fmt.Errorf("missing outcome")
	}

	metadata, err := ExecutionMetadataToProto(in.Metadata)
	if err != nil {
		return nil, err
	}

	out := &pbnear.ExecutionOutcome{
		Logs:        in.Logs,
		ReceiptIds:  HashesToProto(in.ReceiptIDs),
		GasBurnt:    in.GasBurnt,
		TokensBurnt: BigIntToProto(in.TokensBurnt),
		ExecutorId:  in.ExecutorID,
		Metadata:    metadata,
	}

	if err := ExecutionStatusToProto(in.Status, out); err != nil {
		return nil, err
	}

	return out, nil
}

func ExecutionMetadataToProto(in near.ExecutionMetadata) (pbnear.ExecutionMetadata, error) {
	switch in.Version {
	case 1, 2, 3:
		return pbnear.ExecutionMetadata_ExecutionMetadataV1, nil
	}
	return 0, fmt.Errorf("execution metadata: %w version %d", ErrUnknownVariant, in.Version)
}

// ExecutionStatusToProto sets the status alternative of out.
func ExecutionStatusToProto(in near.ExecutionStatus, out *pbnear.ExecutionOutcome) error {
	switch s := in.(type) {
	case near.ExecutionStatusUnknown:
		out.Status = &pbnear.ExecutionOutcome_Unknown{Unknown: &pbnear.UnknownExecutionStatus{}}

	case near.ExecutionStatusFailure:
		failure, err := TxExecutionErrorToProto(s.Error)
		if err != nil {
			return fmt.Errorf("failure: %w", err)
		}
		out.Status = &pbnear.ExecutionOutcome_Failure{Failure: failure}

	case near.ExecutionStatusSuccessValue:
		out.Status = &pbnear.ExecutionOutcome_SuccessValue{SuccessValue: &pbnear.SuccessValueExecutionStatus{Value: s.Value}}

	case near.ExecutionStatusSuccessReceiptID:
		out.Status = &pbnear.ExecutionOutcome_SuccessReceiptId{SuccessReceiptId: &pbnear.SuccessReceiptIdExecutionStatus{Id: HashToProto(s.ReceiptID)}}

	default:
		return unknownVariant("execution status", in)
	}

	return nil
}
