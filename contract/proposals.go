package main

import "daoforge/sdk"

////////////////////////////////////////////////////////////////////////////////
// Proposal lifecycle: create, vote, execute
////////////////////////////////////////////////////////////////////////////////

// canPropose enforces the organization's proposal gate for sender.
func canPropose(dao *Dao, sender sdk.Address, now int64) {
	if dao.Policy.TokenGated {
		if dao.TokenID == 0 {
			sdk.Revert("organization has no governance token", symUnauthorized)
		}
		held := votingPowerAt(dao.TokenID, sender, now)
		if held < dao.Policy.MinimumHolding {
			sdk.Revert("below minimum holding to propose", symUnauthorized)
		}
		return
	}
	if !isMember(dao.ID, sender) {
		sdk.Revert("only members may propose", symUnauthorized)
	}
}

// snapshotTotalFor freezes the electorate size at creation time. Token
// weighted proposals use the fixed supply, member counted ones the roster.
func snapshotTotalFor(dao *Dao, mode VotingMode) Amount {
	if mode == ModeTokenWeighted {
		token := mustLoadToken(dao.TokenID)
		return token.TotalSupply
	}
	return Amount(dao.MemberCount)
}

// proposalsCreate opens a new vote. The voting window and the electorate
// snapshot are fixed here and never move again.
func proposalsCreate(payload *string) *string {
	args := &CreateProposalArgs{}
	decodePayload(payload, args)
	dao := mustLoadDao(args.DaoID)

	validateTitle(args.Title)
	if len(args.Description) > MaxDescriptionLength {
		sdk.Revert("description too long", symInvalidPayload)
	}
	mode := VotingMode(args.Mode)
	if mode != ModeMemberCount && mode != ModeTokenWeighted {
		sdk.Revert("unknown voting mode", symInvalidPayload)
	}
	if mode == ModeTokenWeighted && dao.TokenID == 0 {
		sdk.Revert("organization has no governance token", symInvalidPayload)
	}
	if args.Duration <= 0 {
		sdk.Revert("duration must be positive", symBadDuration)
	}
	if len(args.Actions) > MaxActionsPerProposal {
		sdk.Revert("too many actions", symInvalidPayload)
	}

	sender := getSenderAddress()
	now := getCurrentTimestamp()
	canPropose(dao, sender, now)

	start := args.StartTime
	if start == 0 {
		start = now
	}
	if start < now {
		sdk.Revert("start time already passed", symBadDuration)
	}

	id := nextID(ProposalsCount)
	p := &Proposal{
		ID:            id,
		DaoID:         dao.ID,
		Creator:       sender,
		Title:         args.Title,
		Description:   args.Description,
		Mode:          mode,
		StartTime:     start,
		EndTime:       start + args.Duration,
		SnapshotTotal: snapshotTotalFor(dao, mode),
		ActionID:      args.ActionID,
		ActionCount:   uint32(len(args.Actions)),
		Tx:            getCurrentTxID(),
	}
	for i, a := range args.Actions {
		target := sdk.Address(a.Target)
		if _, ok := parseDaoHandle(target); !ok && target.Domain() != sdk.AddressDomainContract {
			validateAddress(target, "action target")
		}
		saveAction(id, uint32(i), &Action{
			Target:  target,
			Value:   Amount(a.Value),
			Payload: a.Payload,
		})
	}

	saveProposal(p)
	registerProposal(dao.ID, id)
	emitProposalCreatedEvent(id, dao.ID, sender.String())
	return encodeResult(&ProposalCreatedResult{ProposalID: id})
}

// voteWeightFor computes the sender's ballot weight for one proposal.
// Token weighted ballots read the checkpointed units at the proposal's start,
// so transfers or delegation after creation cannot shift the outcome.
func voteWeightFor(p *Proposal, dao *Dao, voter sdk.Address) Amount {
	if p.Mode == ModeTokenWeighted {
		return votingPowerAt(dao.TokenID, voter, p.StartTime)
	}
	if !isMember(dao.ID, voter) {
		sdk.Revert("only members may vote", symUnauthorized)
	}
	return 1
}

// recomputeApproval flips Approved once yes leads no and clears the bar.
// Approval is sticky, a later no ballot never takes it back.
func recomputeApproval(p *Proposal, dao *Dao) {
	if p.Approved {
		return
	}
	if p.YesWeight > p.NoWeight && p.YesWeight >= dao.MinimumRequirement {
		p.Approved = true
		emitProposalApprovedEvent(p.ID)
	}
}

// proposalsVote casts one ballot. Every voter gets exactly one receipt.
func proposalsVote(payload *string) *string {
	args := &VoteArgs{}
	decodePayload(payload, args)
	p := mustLoadProposal(args.ProposalID)
	dao := mustLoadDao(p.DaoID)

	choice := VoteChoice(args.Choice)
	if choice != VoteYes && choice != VoteNo && choice != VoteAbstain {
		sdk.Revert("unknown vote choice", symInvalidPayload)
	}

	// once approval triggered early the window stays open past endTime,
	// late ballots land in the record but cannot flip the sticky outcome
	now := getCurrentTimestamp()
	if now < p.StartTime || (now >= p.EndTime && !p.Approved) {
		sdk.Revert("voting window closed", symVotingClosed)
	}

	voter := getSenderAddress()
	if loadVoteReceipt(p.ID, voter) != nil {
		sdk.Revert("ballot already cast", symAlreadyVoted)
	}

	weight := voteWeightFor(p, dao, voter)
	switch choice {
	case VoteYes:
		p.YesWeight += weight
	case VoteNo:
		p.NoWeight += weight
	case VoteAbstain:
		p.AbstainWeight += weight
	}
	p.VoterCount++
	recomputeApproval(p, dao)
	saveProposal(p)

	saveVoteReceipt(p.ID, voter, &VoteReceipt{
		Choice:    choice,
		Weight:    weight,
		Timestamp: now,
	})
	emitVoteCast(p.ID, voter.String(), choice, weight)
	return strptr("voted")
}

// earlyExecutionReached answers whether the outstanding weight could still
// flip the result. When even a unanimous no from everyone left over cannot
// beat yes, waiting for the window to close is pointless.
func earlyExecutionReached(p *Proposal) bool {
	outstanding := p.SnapshotTotal - p.YesWeight - p.NoWeight - p.AbstainWeight
	if outstanding < 0 {
		outstanding = 0
	}
	return p.YesWeight > p.NoWeight+outstanding
}

// proposalsExecute runs the action batch of an approved proposal. The executed
// flag is persisted before dispatch, so a reentrant execute call inside the
// batch hits already_executed. Any action failure reverts the whole call
// including that flag, leaving the proposal retryable.
func proposalsExecute(payload *string) *string {
	args := &ExecuteArgs{}
	decodePayload(payload, args)
	p := mustLoadProposal(args.ProposalID)

	if !p.Approved {
		sdk.Revert("proposal is not approved", symNotApproved)
	}
	if p.Executed {
		sdk.Revert("proposal already executed", symAlreadyExecuted)
	}

	p.Executed = true
	saveProposal(p)

	grant := &execGrant{daoID: p.DaoID, proposalID: p.ID}
	results := runActions(grant, loadActions(p))

	emitProposalExecutedEvent(p.ID, len(results))
	return encodeResult(&ExecuteResult{Results: results})
}

// proposalsGet projects one proposal including the derived early execution bit.
func proposalsGet(payload *string) *string {
	args := &ProposalQueryArgs{}
	decodePayload(payload, args)
	p := mustLoadProposal(args.ProposalID)

	return encodeResult(&ProposalView{
		ProposalID:     p.ID,
		DaoID:          p.DaoID,
		Creator:        p.Creator.String(),
		Title:          p.Title,
		Description:    p.Description,
		Mode:           uint8(p.Mode),
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		SnapshotTotal:  int64(p.SnapshotTotal),
		YesWeight:      int64(p.YesWeight),
		NoWeight:       int64(p.NoWeight),
		AbstainWeight:  int64(p.AbstainWeight),
		VoterCount:     p.VoterCount,
		Approved:       p.Approved,
		Executed:       p.Executed,
		EarlyExecution: earlyExecutionReached(p),
	})
}

// proposalsForDao lists proposal ids of one organization.
func proposalsForDao(payload *string) *string {
	args := &DaoQueryArgs{}
	decodePayload(payload, args)
	mustLoadDao(args.DaoID)
	return encodeResult(&IDListResult{IDs: listProposalIDs(args.DaoID)})
}

// proposalsEarlyExecution answers just the early execution question.
func proposalsEarlyExecution(payload *string) *string {
	args := &ProposalQueryArgs{}
	decodePayload(payload, args)
	p := mustLoadProposal(args.ProposalID)
	return encodeResult(&BoolResult{Value: earlyExecutionReached(p)})
}
