package structs

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prysmaticlabs/blockrewards/api/server"
	"github.com/prysmaticlabs/blockrewards/consensus-types/containers"
	"github.com/prysmaticlabs/blockrewards/consensus-types/primitives"
	"github.com/prysmaticlabs/go-bitfield"
)

func (b *SignedBeaconBlock) ToConsensus() (*containers.SignedBeaconBlock, error) {
	if b == nil {
		return nil, errNilValue
	}
	sig, err := decodeHexWithLength(b.Signature, signatureLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "Signature")
	}
	block, err := b.Message.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Message")
	}
	return &containers.SignedBeaconBlock{
		Block:     block,
		Signature: sig,
	}, nil
}

func (b *BeaconBlock) ToConsensus() (*containers.BeaconBlock, error) {
	if b == nil {
		return nil, errNilValue
	}
	if b.Body == nil {
		return nil, server.NewDecodeError(errNilValue, "Body")
	}
	slot, err := parseUint(b.Slot)
	if err != nil {
		return nil, server.NewDecodeError(err, "Slot")
	}
	proposerIndex, err := parseUint(b.ProposerIndex)
	if err != nil {
		return nil, server.NewDecodeError(err, "ProposerIndex")
	}
	parentRoot, err := decodeHexWithLength(b.ParentRoot, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "ParentRoot")
	}
	stateRoot, err := decodeHexWithLength(b.StateRoot, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "StateRoot")
	}
	body, err := b.Body.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Body")
	}
	return &containers.BeaconBlock{
		Slot:          primitives.Slot(slot),
		ProposerIndex: primitives.ValidatorIndex(proposerIndex),
		ParentRoot:    parentRoot,
		StateRoot:     stateRoot,
		Body:          body,
	}, nil
}

func (b *BeaconBlockBody) ToConsensus() (*containers.BeaconBlockBody, error) {
	if b == nil {
		return nil, errNilValue
	}
	randaoReveal, err := decodeHexWithLength(b.RandaoReveal, signatureLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "RandaoReveal")
	}
	graffiti, err := decodeHexWithLength(b.Graffiti, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "Graffiti")
	}
	proposerSlashings := make([]*containers.ProposerSlashing, len(b.ProposerSlashings))
	for i, s := range b.ProposerSlashings {
		proposerSlashings[i], err = s.ToConsensus()
		if err != nil {
			return nil, server.NewDecodeError(err, fmt.Sprintf("ProposerSlashings[%d]", i))
		}
	}
	attesterSlashings := make([]*containers.AttesterSlashing, len(b.AttesterSlashings))
	for i, s := range b.AttesterSlashings {
		attesterSlashings[i], err = s.ToConsensus()
		if err != nil {
			return nil, server.NewDecodeError(err, fmt.Sprintf("AttesterSlashings[%d]", i))
		}
	}
	atts := make([]*containers.Attestation, len(b.Attestations))
	for i, a := range b.Attestations {
		atts[i], err = a.ToConsensus()
		if err != nil {
			return nil, server.NewDecodeError(err, fmt.Sprintf("Attestations[%d]", i))
		}
	}
	var syncAggregate *containers.SyncAggregate
	if b.SyncAggregate != nil {
		syncAggregate, err = b.SyncAggregate.ToConsensus()
		if err != nil {
			return nil, server.NewDecodeError(err, "SyncAggregate")
		}
	}
	return &containers.BeaconBlockBody{
		RandaoReveal:      randaoReveal,
		Graffiti:          graffiti,
		ProposerSlashings: proposerSlashings,
		AttesterSlashings: attesterSlashings,
		Attestations:      atts,
		SyncAggregate:     syncAggregate,
	}, nil
}

func (s *SignedBeaconBlockHeader) ToConsensus() (*containers.SignedBeaconBlockHeader, error) {
	if s == nil {
		return nil, errNilValue
	}
	sig, err := decodeHexWithLength(s.Signature, signatureLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "Signature")
	}
	header, err := s.Message.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Message")
	}
	return &containers.SignedBeaconBlockHeader{
		Header:    header,
		Signature: sig,
	}, nil
}

func (h *BeaconBlockHeader) ToConsensus() (*containers.BeaconBlockHeader, error) {
	if h == nil {
		return nil, errNilValue
	}
	slot, err := parseUint(h.Slot)
	if err != nil {
		return nil, server.NewDecodeError(err, "Slot")
	}
	proposerIndex, err := parseUint(h.ProposerIndex)
	if err != nil {
		return nil, server.NewDecodeError(err, "ProposerIndex")
	}
	parentRoot, err := decodeHexWithLength(h.ParentRoot, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "ParentRoot")
	}
	stateRoot, err := decodeHexWithLength(h.StateRoot, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "StateRoot")
	}
	bodyRoot, err := decodeHexWithLength(h.BodyRoot, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "BodyRoot")
	}
	return &containers.BeaconBlockHeader{
		Slot:          primitives.Slot(slot),
		ProposerIndex: primitives.ValidatorIndex(proposerIndex),
		ParentRoot:    parentRoot,
		StateRoot:     stateRoot,
		BodyRoot:      bodyRoot,
	}, nil
}

func (s *ProposerSlashing) ToConsensus() (*containers.ProposerSlashing, error) {
	if s == nil {
		return nil, errNilValue
	}
	h1, err := s.SignedHeader1.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "SignedHeader1")
	}
	h2, err := s.SignedHeader2.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "SignedHeader2")
	}
	return &containers.ProposerSlashing{
		Header_1: h1,
		Header_2: h2,
	}, nil
}

func (s *AttesterSlashing) ToConsensus() (*containers.AttesterSlashing, error) {
	if s == nil {
		return nil, errNilValue
	}
	att1, err := s.Attestation1.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Attestation1")
	}
	att2, err := s.Attestation2.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Attestation2")
	}
	return &containers.AttesterSlashing{Attestation_1: att1, Attestation_2: att2}, nil
}

func (a *IndexedAttestation) ToConsensus() (*containers.IndexedAttestation, error) {
	if a == nil {
		return nil, errNilValue
	}
	indices := make([]uint64, len(a.AttestingIndices))
	var err error
	for i, ix := range a.AttestingIndices {
		indices[i], err = parseUint(ix)
		if err != nil {
			return nil, server.NewDecodeError(err, fmt.Sprintf("AttestingIndices[%d]", i))
		}
	}
	sig, err := decodeHexWithLength(a.Signature, signatureLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "Signature")
	}
	data, err := a.Data.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Data")
	}
	return &containers.IndexedAttestation{
		AttestingIndices: indices,
		Data:             data,
		Signature:        sig,
	}, nil
}

func (a *Attestation) ToConsensus() (*containers.Attestation, error) {
	if a == nil {
		return nil, errNilValue
	}
	aggBits, err := hexutil.Decode(a.AggregationBits)
	if err != nil {
		return nil, server.NewDecodeError(err, "AggregationBits")
	}
	if len(aggBits) == 0 || aggBits[len(aggBits)-1] == 0 {
		return nil, server.NewDecodeError(errMissingLengthBit, "AggregationBits")
	}
	data, err := a.Data.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Data")
	}
	sig, err := decodeHexWithLength(a.Signature, signatureLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "Signature")
	}
	return &containers.Attestation{
		AggregationBits: bitfield.Bitlist(aggBits),
		Data:            data,
		Signature:       sig,
	}, nil
}

func (a *AttestationData) ToConsensus() (*containers.AttestationData, error) {
	if a == nil {
		return nil, errNilValue
	}
	slot, err := parseUint(a.Slot)
	if err != nil {
		return nil, server.NewDecodeError(err, "Slot")
	}
	committeeIndex, err := parseUint(a.CommitteeIndex)
	if err != nil {
		return nil, server.NewDecodeError(err, "CommitteeIndex")
	}
	bbRoot, err := decodeHexWithLength(a.BeaconBlockRoot, rootLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "BeaconBlockRoot")
	}
	source, err := a.Source.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Source")
	}
	target, err := a.Target.ToConsensus()
	if err != nil {
		return nil, server.NewDecodeError(err, "Target")
	}
	return &containers.AttestationData{
		Slot:            primitives.Slot(slot),
		CommitteeIndex:  primitives.CommitteeIndex(committeeIndex),
		BeaconBlockRoot: bbRoot,
		Source:          source,
		Target:          target,
	}, nil
}

func (s *SyncAggregate) ToConsensus() (*containers.SyncAggregate, error) {
	if s == nil {
		return nil, errNilValue
	}
	bits, err := hexutil.Decode(s.SyncCommitteeBits)
	if err != nil {
		return nil, server.NewDecodeError(err, "SyncCommitteeBits")
	}
	var bf bitfield.Bitfield
	switch len(bits) {
	case 64:
		bf = bitfield.Bitvector512(bits)
	case 4:
		bf = bitfield.Bitvector32(bits)
	default:
		return nil, server.NewDecodeError(fmt.Errorf("unexpected length %d", len(bits)), "SyncCommitteeBits")
	}
	sig, err := decodeHexWithLength(s.SyncCommitteeSignature, signatureLength)
	if err != nil {
		return nil, server.NewDecodeError(err, "SyncCommitteeSignature")
	}
	return &containers.SyncAggregate{
		SyncCommitteeBits:      bf,
		SyncCommitteeSignature: sig,
	}, nil
}

func SignedBeaconBlockFromConsensus(b *containers.SignedBeaconBlock) *SignedBeaconBlock {
	if b == nil {
		return nil
	}
	return &SignedBeaconBlock{
		Message:   BeaconBlockFromConsensus(b.Block),
		Signature: hexutil.Encode(b.Signature),
	}
}

func BeaconBlockFromConsensus(b *containers.BeaconBlock) *BeaconBlock {
	if b == nil {
		return nil
	}
	return &BeaconBlock{
		Slot:          formatUint(uint64(b.Slot)),
		ProposerIndex: formatUint(uint64(b.ProposerIndex)),
		ParentRoot:    hexutil.Encode(b.ParentRoot),
		StateRoot:     hexutil.Encode(b.StateRoot),
		Body:          BeaconBlockBodyFromConsensus(b.Body),
	}
}

func BeaconBlockBodyFromConsensus(b *containers.BeaconBlockBody) *BeaconBlockBody {
	if b == nil {
		return nil
	}
	proposerSlashings := make([]*ProposerSlashing, len(b.ProposerSlashings))
	for i, s := range b.ProposerSlashings {
		proposerSlashings[i] = &ProposerSlashing{
			SignedHeader1: SignedBeaconBlockHeaderFromConsensus(s.Header_1),
			SignedHeader2: SignedBeaconBlockHeaderFromConsensus(s.Header_2),
		}
	}
	attesterSlashings := make([]*AttesterSlashing, len(b.AttesterSlashings))
	for i, s := range b.AttesterSlashings {
		attesterSlashings[i] = &AttesterSlashing{
			Attestation1: IndexedAttestationFromConsensus(s.Attestation_1),
			Attestation2: IndexedAttestationFromConsensus(s.Attestation_2),
		}
	}
	atts := make([]*Attestation, len(b.Attestations))
	for i, a := range b.Attestations {
		atts[i] = AttestationFromConsensus(a)
	}
	var syncAggregate *SyncAggregate
	if b.SyncAggregate != nil {
		syncAggregate = &SyncAggregate{
			SyncCommitteeBits:      hexutil.Encode(b.SyncAggregate.SyncCommitteeBits.Bytes()),
			SyncCommitteeSignature: hexutil.Encode(b.SyncAggregate.SyncCommitteeSignature),
		}
	}
	return &BeaconBlockBody{
		RandaoReveal:      hexutil.Encode(b.RandaoReveal),
		Graffiti:          hexutil.Encode(b.Graffiti),
		ProposerSlashings: proposerSlashings,
		AttesterSlashings: attesterSlashings,
		Attestations:      atts,
		SyncAggregate:     syncAggregate,
	}
}

func SignedBeaconBlockHeaderFromConsensus(h *containers.SignedBeaconBlockHeader) *SignedBeaconBlockHeader {
	if h == nil {
		return nil
	}
	var header *BeaconBlockHeader
	if h.Header != nil {
		header = &BeaconBlockHeader{
			Slot:          formatUint(uint64(h.Header.Slot)),
			ProposerIndex: formatUint(uint64(h.Header.ProposerIndex)),
			ParentRoot:    hexutil.Encode(h.Header.ParentRoot),
			StateRoot:     hexutil.Encode(h.Header.StateRoot),
			BodyRoot:      hexutil.Encode(h.Header.BodyRoot),
		}
	}
	return &SignedBeaconBlockHeader{
		Message:   header,
		Signature: hexutil.Encode(h.Signature),
	}
}

func IndexedAttestationFromConsensus(a *containers.IndexedAttestation) *IndexedAttestation {
	if a == nil {
		return nil
	}
	indices := make([]string, len(a.AttestingIndices))
	for i, ix := range a.AttestingIndices {
		indices[i] = formatUint(ix)
	}
	return &IndexedAttestation{
		AttestingIndices: indices,
		Data:             AttestationDataFromConsensus(a.Data),
		Signature:        hexutil.Encode(a.Signature),
	}
}

func AttestationFromConsensus(a *containers.Attestation) *Attestation {
	if a == nil {
		return nil
	}
	return &Attestation{
		AggregationBits: hexutil.Encode(a.AggregationBits),
		Data:            AttestationDataFromConsensus(a.Data),
		Signature:       hexutil.Encode(a.Signature),
	}
}

func AttestationDataFromConsensus(a *containers.AttestationData) *AttestationData {
	if a == nil {
		return nil
	}
	return &AttestationData{
		Slot:            formatUint(uint64(a.Slot)),
		CommitteeIndex:  formatUint(uint64(a.CommitteeIndex)),
		BeaconBlockRoot: hexutil.Encode(a.BeaconBlockRoot),
		Source:          CheckpointFromConsensus(a.Source),
		Target:          CheckpointFromConsensus(a.Target),
	}
}
