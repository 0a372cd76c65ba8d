package main

import "daoforge/sdk"

////////////////////////////////////////////////////////////////////////////////
// Proposal state persistence
////////////////////////////////////////////////////////////////////////////////

// saveProposal writes the encoded record back.
func saveProposal(p *Proposal) {
	sdk.StateSetObject(proposalKey(p.ID), string(EncodeProposal(p)))
}

// loadProposal returns nil when the handle was never issued.
func loadProposal(id uint64) *Proposal {
	ptr := sdk.StateGetObject(proposalKey(id))
	if ptr == nil {
		return nil
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt proposal record " + UInt64ToString(id))
	}
	return p
}

// mustLoadProposal reverts with not_found so entrypoints dont repeat the check.
func mustLoadProposal(id uint64) *Proposal {
	p := loadProposal(id)
	if p == nil {
		sdk.Revert("proposal "+UInt64ToString(id)+" not found", symNotFound)
	}
	return p
}

// saveAction stores one batch entry next to the proposal.
func saveAction(proposalID uint64, idx uint32, a *Action) {
	sdk.StateSetObject(proposalActionKey(proposalID, idx), string(EncodeAction(a)))
}

// loadActions rehydrates the full batch in order.
func loadActions(p *Proposal) []Action {
	actions := make([]Action, 0, p.ActionCount)
	for i := uint32(0); i < p.ActionCount; i++ {
		ptr := sdk.StateGetObject(proposalActionKey(p.ID, i))
		if ptr == nil {
			sdk.Abort("missing action " + UInt64ToString(uint64(i)) + " of proposal " + UInt64ToString(p.ID))
		}
		a, err := DecodeAction([]byte(*ptr))
		if err != nil {
			sdk.Abort("corrupt action record")
		}
		actions = append(actions, *a)
	}
	return actions
}

// registerProposal links the proposal into its organization's index.
func registerProposal(daoID uint64, proposalID uint64) {
	AddIDToIndex(idxDaoProposals+UInt64ToString(daoID), proposalID)
}

// listProposalIDs walks the organization's proposal index chunks.
func listProposalIDs(daoID uint64) []uint64 {
	return GetIDsFromIndex(idxDaoProposals + UInt64ToString(daoID))
}

////////////////////////////////////////////////////////////////////////////////
// Vote receipts
////////////////////////////////////////////////////////////////////////////////

// saveVoteReceipt pins the ballot so a second vote can be rejected.
func saveVoteReceipt(proposalID uint64, voter sdk.Address, v *VoteReceipt) {
	sdk.StateSetObject(voteReceiptKey(proposalID, voter), string(EncodeVoteReceipt(v)))
}

// loadVoteReceipt returns nil when the voter has not cast yet.
func loadVoteReceipt(proposalID uint64, voter sdk.Address) *VoteReceipt {
	ptr := sdk.StateGetObject(voteReceiptKey(proposalID, voter))
	if ptr == nil {
		return nil
	}
	v, err := DecodeVoteReceipt([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt vote receipt")
	}
	return v
}
