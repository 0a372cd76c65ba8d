package main

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daoforge/sdk"
)

// actionJSON builds one batch entry with the {method, params} envelope
// wrapped into the opaque payload string.
func actionJSON(target string, value int64, method string, params string) string {
	inner := fmt.Sprintf(`{"method":%q,"params":%s}`, method, params)
	return fmt.Sprintf(`{"target":%q,"value":%d,"payload":%s}`, target, value, strconv.Quote(inner))
}

func batch(actions ...string) string {
	return "[" + strings.Join(actions, ",") + "]"
}

func TestExecuteRenameEndToEnd(t *testing.T) {
	setupContract(t)
	daoID, _ := createTokenDao(t, memberAddress, 1, map[string]int64{
		memberAddress:  500,
		member2Address: 200,
		member3Address: 300,
	})
	target := string(daoHandleAddress(daoID))
	pid := openProposal(t, memberAddress, daoID, 1, 3600,
		batch(actionJSON(target, 0, "update_settings", `{"name":"Renamed Org","data":"{\"tag\":\"v2\"}"}`)))

	castVote(t, memberAddress, pid, VoteYes)
	castVote(t, member2Address, pid, VoteNo)
	castVote(t, member3Address, pid, VoteYes)

	res := mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))
	out := &ExecuteResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.Equal(t, []string{"ok:update_settings"}, out.Results)

	dao := getDao(t, daoID)
	assert.Equal(t, "Renamed Org", dao.Name)
	assert.True(t, getProposal(t, pid).Executed)
}

func TestBatchIsAtomic(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	target := string(daoHandleAddress(daoID))

	// middle action withdraws from an empty treasury and sinks the batch
	pid := openProposal(t, memberAddress, daoID, 0, 3600, batch(
		actionJSON(target, 0, "update_settings", `{"name":"Halfway","data":""}`),
		actionJSON(target, 0, "withdraw_funds", fmt.Sprintf(`{"from":%q,"to":%q,"amount":1000}`, memberAddress, outsiderAddr)),
		actionJSON(target, 0, "add_members", fmt.Sprintf(`{"members":[{"address":%q,"deposit":0}]}`, member2Address)),
	))
	castVote(t, memberAddress, pid, VoteYes)

	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid), symBatchFailed)

	// nothing of the batch stuck, including the executed flag
	p := getProposal(t, pid)
	assert.False(t, p.Executed)
	assert.True(t, p.Approved)
	dao := getDao(t, daoID)
	assert.Equal(t, "Test Org", dao.Name)
	assert.Equal(t, uint64(1), dao.MemberCount)

	// fund the treasury, then the same proposal executes cleanly
	sdk.MockDeposit(memberAddress, 5000, sdk.AssetHbd)
	allowTransfer(5000, sdk.AssetHbd)
	mustCall(t, memberAddress, daoDepositFunds, fmt.Sprintf(`{"daoId":%d,"amount":5000}`, daoID))
	clearIntents()

	mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))
	dao = getDao(t, daoID)
	assert.Equal(t, "Halfway", dao.Name)
	assert.Equal(t, uint64(2), dao.MemberCount)
	assert.Equal(t, int64(4000), treasuryOf(t, daoID, memberAddress))
	assert.Equal(t, int64(1000), sdk.MockBalanceOf(outsiderAddr, sdk.AssetHbd))
	assert.True(t, getProposal(t, pid).Executed)
}

func TestGrantDoesNotCrossOrganizations(t *testing.T) {
	setupContract(t)
	daoA := createMemberDao(t, memberAddress)
	daoB := createMemberDao(t, member2Address)

	// a proposal of A tries to rename B
	pid := openProposal(t, memberAddress, daoA, 0, 3600,
		batch(actionJSON(fmt.Sprintf("dao:%d", daoB), 0, "update_settings", `{"name":"Hijacked","data":""}`)))
	castVote(t, memberAddress, pid, VoteYes)

	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid), symBatchFailed)
	assert.Equal(t, "Test Org", getDao(t, daoB).Name)
}

func TestExternalActionDispatch(t *testing.T) {
	setupContract(t)
	sdk.MockRegisterContract("contract:echo", func(method string, payload string, value int64) (string, error) {
		return "echo:" + method, nil
	})

	daoID := createMemberDao(t, memberAddress)
	pid := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(`{"target":"contract:echo","value":0,"payload":"{}"}`))
	castVote(t, memberAddress, pid, VoteYes)

	res := mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))
	out := &ExecuteResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.Equal(t, []string{"echo:execute"}, out.Results)
}

func TestExternalActionFailureSinksBatch(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)

	// no such contract registered
	pid := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(`{"target":"contract:missing","value":0,"payload":"{}"}`))
	castVote(t, memberAddress, pid, VoteYes)

	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid), symBatchFailed)
	assert.False(t, getProposal(t, pid).Executed)
}

func TestUnknownMethodSinksBatch(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	pid := openProposal(t, memberAddress, daoID, 0, 3600,
		batch(actionJSON(fmt.Sprintf("dao:%d", daoID), 0, "self_destruct", `{}`)))
	castVote(t, memberAddress, pid, VoteYes)
	mustRevert(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid), symBatchFailed)
}

func TestEmptyBatchExecutes(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	pid := openProposal(t, memberAddress, daoID, 0, 3600, "")
	castVote(t, memberAddress, pid, VoteYes)

	res := mustCall(t, memberAddress, proposalsExecute, fmt.Sprintf(`{"proposalId":%d}`, pid))
	out := &ExecuteResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.Empty(t, out.Results)
	assert.True(t, getProposal(t, pid).Executed)
}
