package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"daoforge/sdk"
)

// every roster/settings/treasury mutation is proposal gated, direct calls
// always bounce with unauthorized no matter who signs.
func TestPrivilegedEntrypointsRejectDirectCalls(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	payload := fmt.Sprintf(`{"daoId":%d}`, daoID)

	for _, fn := range []entrypoint{
		daoUpdateSettings,
		daoAddMembers,
		daoRemoveMembers,
		daoUpdatePolicy,
		daoWithdrawFunds,
		daoWithdrawTokens,
	} {
		mustRevert(t, memberAddress, fn, payload, symUnauthorized)
		mustRevert(t, ownerAddress, fn, payload, symUnauthorized)
	}
}

func TestAddMembersViaProposal(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	target := string(daoHandleAddress(daoID))

	pid := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(actionJSON(target, 0, "add_members",
			fmt.Sprintf(`{"members":[{"address":%q,"deposit":0},{"address":%q,"deposit":50}]}`, member2Address, member3Address))))
	castVote(t, memberAddress, pid, VoteYes)
	mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))

	assert.Equal(t, uint64(3), getDao(t, daoID).MemberCount)

	// adding an existing seat fails the whole batch
	dup := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(actionJSON(target, 0, "add_members",
			fmt.Sprintf(`{"members":[{"address":%q,"deposit":0}]}`, member2Address))))
	castVote(t, memberAddress, dup, VoteYes)
	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, dup), symBatchFailed)
	assert.Equal(t, uint64(3), getDao(t, daoID).MemberCount)
}

func TestRemoveMembersViaProposal(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress, member2Address, member3Address)
	target := string(daoHandleAddress(daoID))

	// unknown addresses in the list are skipped, not fatal
	pid := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(actionJSON(target, 0, "remove_members",
			fmt.Sprintf(`{"addresses":[%q,%q]}`, member3Address, outsiderAddr))))
	castVote(t, memberAddress, pid, VoteYes)
	castVote(t, member2Address, pid, VoteYes)
	mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))

	dao := getDao(t, daoID)
	assert.Equal(t, uint64(2), dao.MemberCount)
	res := mustCall(t, memberAddress, daoIsMember, fmt.Sprintf(`{"daoId":%d,"address":%q}`, daoID, member3Address))
	out := &BoolResult{}
	assert.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.False(t, out.Value)
}

func TestUpdatePolicyViaProposal(t *testing.T) {
	setupContract(t)
	daoID, _ := createTokenDao(t, memberAddress, 1, map[string]int64{
		memberAddress:  500,
		member2Address: 10,
	})
	target := string(daoHandleAddress(daoID))

	pid := openProposal(t, memberAddress, daoID, 1, 3600,
		batch(actionJSON(target, 0, "update_proposal_policy", `{"tokenGated":true,"minimumHolding":100}`)))
	castVote(t, memberAddress, pid, VoteYes)
	mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))

	dao := getDao(t, daoID)
	assert.True(t, dao.TokenGated)
	assert.Equal(t, int64(100), dao.MinimumHolding)

	// the new gate bites immediately
	mustRevert(t, member2Address, proposalsCreate,
		fmt.Sprintf(`{"daoId":%d,"title":"t","mode":1,"duration":60,"actions":[]}`, daoID), symUnauthorized)
}

func TestWithdrawTokensViaProposal(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	target := string(daoHandleAddress(daoID))

	sdk.MockDeposit(memberAddress, 2000, sdk.AssetHive)
	allowTransfer(2000, sdk.AssetHive)
	mustCall(t, memberAddress, daoDepositTokens, fmt.Sprintf(`{"daoId":%d,"amount":2000,"asset":"hive"}`, daoID))
	clearIntents()

	pid := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(actionJSON(target, 0, "withdraw_tokens",
			fmt.Sprintf(`{"asset":"hive","from":%q,"to":%q,"amount":1500}`, memberAddress, member2Address))))
	castVote(t, memberAddress, pid, VoteYes)
	mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))

	assert.Equal(t, int64(1500), sdk.MockBalanceOf(member2Address, sdk.AssetHive))
	assert.Equal(t, int64(500), sdk.MockContractBalance(sdk.AssetHive))
	// the depositor's aggregate comes down with the withdrawal
	assert.Equal(t, int64(500), assetBalanceOf(t, daoID, memberAddress, "hive"))

	// the recorded position is down to 500, a second 1500 withdrawal cannot pass
	over := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(actionJSON(target, 0, "withdraw_tokens",
			fmt.Sprintf(`{"asset":"hive","from":%q,"to":%q,"amount":1500}`, memberAddress, member2Address))))
	castVote(t, memberAddress, over, VoteYes)
	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, over), symBatchFailed)
	assert.Equal(t, int64(500), sdk.MockContractBalance(sdk.AssetHive))
}

// native deposits live in their own ledger, an asset pool withdrawal must
// never reach them.
func TestWithdrawTokensCannotDrainNativeTreasury(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	target := string(daoHandleAddress(daoID))

	sdk.MockDeposit(memberAddress, 1000, sdk.AssetHbd)
	allowTransfer(1000, sdk.AssetHbd)
	mustCall(t, memberAddress, daoDepositFunds, fmt.Sprintf(`{"daoId":%d,"amount":1000}`, daoID))
	clearIntents()

	pid := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(actionJSON(target, 0, "withdraw_tokens",
			fmt.Sprintf(`{"asset":"hbd","from":%q,"to":%q,"amount":1000}`, memberAddress, outsiderAddr))))
	castVote(t, memberAddress, pid, VoteYes)
	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid), symBatchFailed)

	// the native record stays backed by the contract's actual funds
	assert.Equal(t, int64(1000), treasuryOf(t, daoID, memberAddress))
	assert.Equal(t, int64(1000), sdk.MockContractBalance(sdk.AssetHbd))
	assert.Equal(t, int64(0), sdk.MockBalanceOf(outsiderAddr, sdk.AssetHbd))
	assert.Equal(t, int64(0), assetBalanceOf(t, daoID, memberAddress, "hbd"))
}

// a policy update cannot gate proposals on a token the organization never had.
func TestTokenGateNeedsGovernanceToken(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	target := string(daoHandleAddress(daoID))

	pid := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(actionJSON(target, 0, "update_proposal_policy", `{"tokenGated":true,"minimumHolding":100}`)))
	castVote(t, memberAddress, pid, VoteYes)
	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid), symBatchFailed)

	// the gate stayed off and governance keeps working
	assert.False(t, getDao(t, daoID).TokenGated)
	openProposal(t, memberAddress, daoID, 0, 3600, "")
}
