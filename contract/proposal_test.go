package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daoforge/sdk"
)

func TestMemberProposalLifecycle(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress, member2Address, member3Address)
	pid := openProposal(t, memberAddress, daoID, 0, 3600, "")

	p := getProposal(t, pid)
	assert.Equal(t, int64(3), p.SnapshotTotal)
	assert.False(t, p.Approved)
	assert.False(t, p.Executed)

	castVote(t, memberAddress, pid, VoteYes)
	castVote(t, member2Address, pid, VoteNo)
	p = getProposal(t, pid)
	assert.Equal(t, int64(1), p.YesWeight)
	assert.Equal(t, int64(1), p.NoWeight)
	assert.False(t, p.Approved, "a tie is not approval")

	castVote(t, member3Address, pid, VoteYes)
	p = getProposal(t, pid)
	assert.True(t, p.Approved)
	assert.Equal(t, uint64(3), p.VoterCount)
}

func TestOutsiderCannotProposeOrVote(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	mustRevert(t, outsiderAddr, proposalsCreate,
		fmt.Sprintf(`{"daoId":%d,"title":"t","mode":0,"duration":60,"actions":[]}`, daoID), symUnauthorized)

	pid := openProposal(t, memberAddress, daoID, 0, 3600, "")
	mustRevert(t, outsiderAddr, proposalsVote, fmt.Sprintf(`{"proposalId":%d,"choice":1}`, pid), symUnauthorized)
}

func TestDoubleVoteRejected(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	pid := openProposal(t, memberAddress, daoID, 0, 3600, "")

	castVote(t, memberAddress, pid, VoteYes)
	mustRevert(t, memberAddress, proposalsVote, fmt.Sprintf(`{"proposalId":%d,"choice":2}`, pid), symAlreadyVoted)

	p := getProposal(t, pid)
	assert.Equal(t, int64(1), p.YesWeight)
	assert.Equal(t, int64(0), p.NoWeight)
}

func TestVotingWindow(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress, member2Address)
	pid := openProposal(t, memberAddress, daoID, 0, 3600, "")

	// after the window closes every ballot bounces
	sdk.MockSetTimestamp(1735689600 + 3600)
	mustRevert(t, memberAddress, proposalsVote, fmt.Sprintf(`{"proposalId":%d,"choice":1}`, pid), symVotingClosed)

	// a proposal scheduled in the future rejects early ballots too
	sdk.MockSetTimestamp(1735689600)
	res := mustCall(t, memberAddress, proposalsCreate,
		fmt.Sprintf(`{"daoId":%d,"title":"later","mode":0,"startTime":%d,"duration":60,"actions":[]}`, daoID, 1735689600+7200))
	out := &ProposalCreatedResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	mustRevert(t, member2Address, proposalsVote, fmt.Sprintf(`{"proposalId":%d,"choice":1}`, out.ProposalID), symVotingClosed)
}

func TestLateBallotOnApprovedProposal(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress, member2Address)
	pid := openProposal(t, memberAddress, daoID, 0, 3600, "")
	castVote(t, memberAddress, pid, VoteYes)
	assert.True(t, getProposal(t, pid).Approved)

	// approval landed inside the window, so a straggler ballot after the
	// end still counts into the record without flipping the outcome
	sdk.MockSetTimestamp(1735689600 + 7200)
	castVote(t, member2Address, pid, VoteNo)

	p := getProposal(t, pid)
	assert.Equal(t, int64(1), p.YesWeight)
	assert.Equal(t, int64(1), p.NoWeight)
	assert.True(t, p.Approved)
}

func TestBadDuration(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	mustRevert(t, memberAddress, proposalsCreate,
		fmt.Sprintf(`{"daoId":%d,"title":"t","mode":0,"duration":0,"actions":[]}`, daoID), symBadDuration)
	mustRevert(t, memberAddress, proposalsCreate,
		fmt.Sprintf(`{"daoId":%d,"title":"t","mode":0,"duration":-60,"actions":[]}`, daoID), symBadDuration)
}

func TestExecuteRequiresApproval(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress, member2Address, member3Address)
	pid := openProposal(t, memberAddress, daoID, 0, 3600, "")

	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid), symNotApproved)

	castVote(t, memberAddress, pid, VoteYes)
	mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))

	p := getProposal(t, pid)
	assert.True(t, p.Executed)
	assert.True(t, p.Approved, "an executed proposal is always approved")

	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid), symAlreadyExecuted)
}

func TestApprovalNeedsMinimumRequirement(t *testing.T) {
	setupContract(t)
	daoID, _ := createTokenDao(t, memberAddress, 600, map[string]int64{
		memberAddress:  500,
		member2Address: 200,
		member3Address: 300,
	})
	pid := openProposal(t, memberAddress, daoID, 1, 3600, "")

	castVote(t, memberAddress, pid, VoteYes)
	p := getProposal(t, pid)
	assert.False(t, p.Approved, "500 yes is below the 600 bar")

	castVote(t, member2Address, pid, VoteYes)
	p = getProposal(t, pid)
	assert.True(t, p.Approved)
}

func TestSnapshotImmuneToLaterTransfers(t *testing.T) {
	setupContract(t)
	daoID, tokenID := createTokenDao(t, memberAddress, 1, map[string]int64{
		memberAddress:  500,
		member2Address: 200,
		member3Address: 300,
	})

	sdk.MockSetTimestamp(1735689700)
	pid := openProposal(t, memberAddress, daoID, 1, 3600, "")

	// moving the whole stack after creation changes nothing for this vote
	sdk.MockSetTimestamp(1735689800)
	mustCall(t, memberAddress, tokenTransfer, fmt.Sprintf(`{"tokenId":%d,"to":%q,"amount":500}`, tokenID, member2Address))

	castVote(t, memberAddress, pid, VoteYes)
	castVote(t, member2Address, pid, VoteNo)

	p := getProposal(t, pid)
	assert.Equal(t, int64(500), p.YesWeight, "seller votes with snapshot weight")
	assert.Equal(t, int64(200), p.NoWeight, "buyer does not get the bought units")
	assert.True(t, p.Approved)
}

func TestSnapshotTracksDelegationPerProposal(t *testing.T) {
	setupContract(t)
	daoID, tokenID := createTokenDao(t, memberAddress, 1, map[string]int64{
		memberAddress:  500,
		member2Address: 200,
	})

	// delegate before the first proposal: member holds 700 at its snapshot
	sdk.MockSetTimestamp(1735689700)
	mustCall(t, member2Address, tokenDelegate, fmt.Sprintf(`{"tokenId":%d,"to":%q}`, tokenID, memberAddress))
	sdk.MockSetTimestamp(1735689800)
	first := openProposal(t, memberAddress, daoID, 1, 3600, "")

	// revoke, then open a second proposal with the units back home
	sdk.MockSetTimestamp(1735689900)
	mustCall(t, member2Address, tokenDelegate, fmt.Sprintf(`{"tokenId":%d,"to":%q}`, tokenID, member2Address))
	sdk.MockSetTimestamp(1735690000)
	second := openProposal(t, memberAddress, daoID, 1, 3600, "")

	castVote(t, memberAddress, first, VoteYes)
	castVote(t, memberAddress, second, VoteYes)
	castVote(t, member2Address, second, VoteNo)

	assert.Equal(t, int64(700), getProposal(t, first).YesWeight)
	p2 := getProposal(t, second)
	assert.Equal(t, int64(500), p2.YesWeight)
	assert.Equal(t, int64(200), p2.NoWeight)
}

func TestZeroWeightBallotIsAccepted(t *testing.T) {
	setupContract(t)
	daoID, _ := createTokenDao(t, memberAddress, 1, map[string]int64{memberAddress: 500})
	pid := openProposal(t, memberAddress, daoID, 1, 3600, "")

	// outsider holds nothing at the snapshot, the ballot lands with weight 0
	castVote(t, outsiderAddr, pid, VoteYes)
	p := getProposal(t, pid)
	assert.Equal(t, int64(0), p.YesWeight)
	assert.Equal(t, uint64(1), p.VoterCount)
	assert.False(t, p.Approved)
}

func TestEarlyExecution(t *testing.T) {
	setupContract(t)
	daoID, _ := createTokenDao(t, memberAddress, 1, map[string]int64{
		memberAddress:  500,
		member2Address: 200,
		member3Address: 300,
	})
	pid := openProposal(t, memberAddress, daoID, 1, 3600, "")

	// 500 yes, 500 outstanding: a unanimous no could still tie it
	castVote(t, memberAddress, pid, VoteYes)
	assert.False(t, getProposal(t, pid).EarlyExecution)

	// 700 yes vs 300 outstanding: no comeback possible
	castVote(t, member2Address, pid, VoteYes)
	p := getProposal(t, pid)
	assert.True(t, p.EarlyExecution)

	res := mustCall(t, memberAddress, proposalsEarlyExecution, fmt.Sprintf(`{"proposalId":%d}`, pid))
	out := &BoolResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.True(t, out.Value)
}

func TestAbstainCountsAgainstOutstanding(t *testing.T) {
	setupContract(t)
	daoID, _ := createTokenDao(t, memberAddress, 1, map[string]int64{
		memberAddress:  500,
		member2Address: 200,
		member3Address: 300,
	})
	pid := openProposal(t, memberAddress, daoID, 1, 3600, "")

	castVote(t, memberAddress, pid, VoteYes)
	castVote(t, member3Address, pid, VoteAbstain)

	// 500 yes, 300 abstained, only 200 outstanding no votes left
	p := getProposal(t, pid)
	assert.Equal(t, int64(300), p.AbstainWeight)
	assert.True(t, p.EarlyExecution)
}

func TestTokenGatedProposalPolicy(t *testing.T) {
	setupContract(t)
	seedJSON := fmt.Sprintf(`[{"address":%q,"deposit":500},{"address":%q,"deposit":10}]`, memberAddress, member2Address)
	payload := fmt.Sprintf(
		`{"name":"Gated","mode":1,"tokenName":"G","tokenSymbol":"G","minimumRequirement":1,"members":%s,"tokenGated":true,"minimumHolding":100}`,
		seedJSON,
	)
	res := mustCall(t, memberAddress, daoCreate, payload)
	out := &DaoCreatedResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))

	// below the holding bar, even a member cannot open proposals
	mustRevert(t, member2Address, proposalsCreate,
		fmt.Sprintf(`{"daoId":%d,"title":"t","mode":1,"duration":60,"actions":[]}`, out.DaoID), symUnauthorized)
	openProposal(t, memberAddress, out.DaoID, 1, 3600, "")
}

func TestProposalsForDao(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	first := openProposal(t, memberAddress, daoID, 0, 3600, "")
	second := openProposal(t, memberAddress, daoID, 0, 3600, "")

	res := mustCall(t, memberAddress, proposalsForDao, fmt.Sprintf(`{"daoId":%d}`, daoID))
	out := &IDListResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.Equal(t, []uint64{first, second}, out.IDs)
}

func TestTooManyActions(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	actions := "["
	for i := 0; i <= MaxActionsPerProposal; i++ {
		if i > 0 {
			actions += ","
		}
		actions += fmt.Sprintf(`{"target":"dao:%d","value":0,"payload":"{}"}`, daoID)
	}
	actions += "]"
	mustRevert(t, memberAddress, proposalsCreate,
		fmt.Sprintf(`{"daoId":%d,"title":"t","mode":0,"duration":60,"actions":%s}`, daoID, actions), symInvalidPayload)
}
