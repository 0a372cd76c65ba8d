package main

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daoforge/sdk"
)

const (
	ownerAddress   = "hive:tibfox"
	memberAddress  = "hive:someone"
	member2Address = "hive:member2"
	member3Address = "hive:someoneelse"
	outsiderAddr   = "hive:outsider"
)

type entrypoint func(payload *string) *string

// callAs runs one entrypoint as its own transaction for the given sender.
// A revert rolls the host state back exactly like on chain and is returned
// for inspection instead of failing the test.
func callAs(sender string, fn entrypoint, payload string) (result string, rev *sdk.RevertError) {
	sdk.MockSetSender(sender)
	sdk.MockBeginTx()
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*sdk.RevertError)
			if !ok {
				panic(r)
			}
			sdk.MockRollbackTx()
			rev = re
		}
	}()
	res := fn(&payload)
	if res != nil {
		result = *res
	}
	return result, nil
}

// mustCall asserts the call succeeds and hands back the raw result string.
func mustCall(t *testing.T, sender string, fn entrypoint, payload string) string {
	t.Helper()
	res, rev := callAs(sender, fn, payload)
	require.Nil(t, rev, "unexpected revert")
	return res
}

// mustRevert asserts the call reverts with the given symbol.
func mustRevert(t *testing.T, sender string, fn entrypoint, payload string, symbol string) *sdk.RevertError {
	t.Helper()
	_, rev := callAs(sender, fn, payload)
	require.NotNil(t, rev, "expected revert %s, call succeeded", symbol)
	assert.Equal(t, symbol, rev.Symbol, "revert message: %s", rev.Msg)
	return rev
}

// setupContract resets the mock host and runs contract_init as the owner.
func setupContract(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	mustCall(t, ownerAddress, contractInit, "{}")
}

// allowTransfer arms a transfer.allow intent for the next call.
func allowTransfer(limit int64, asset sdk.Asset) {
	sdk.MockSetIntents([]sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": strconv.FormatInt(limit, 10),
			"token": asset.String(),
		},
	}})
}

// clearIntents drops any armed intent so later calls run plain.
func clearIntents() {
	sdk.MockSetIntents(nil)
}

// createMemberDao spins up a member counted organization with the given seats.
func createMemberDao(t *testing.T, creator string, members ...string) uint64 {
	t.Helper()
	payload := fmt.Sprintf(
		`{"name":"Test Org","data":"{}","mode":0,"minimumRequirement":1,"members":[%s]}`,
		memberList(members, 0),
	)
	res := mustCall(t, creator, daoCreate, payload)
	out := &DaoCreatedResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	return out.DaoID
}

// createTokenDao spins up a token weighted organization minting a fresh token
// seeded with the given balances.
func createTokenDao(t *testing.T, creator string, minReq int64, seeds map[string]int64) (daoID uint64, tokenID uint64) {
	t.Helper()
	seedJSON := ""
	for addr, bal := range seeds {
		if seedJSON != "" {
			seedJSON += ","
		}
		seedJSON += fmt.Sprintf(`{"address":%q,"deposit":%d}`, addr, bal)
	}
	payload := fmt.Sprintf(
		`{"name":"Token Org","data":"{}","mode":1,"tokenName":"Org Units","tokenSymbol":"ORG","minimumRequirement":%d,"members":[%s]}`,
		minReq, seedJSON,
	)
	res := mustCall(t, creator, daoCreate, payload)
	out := &DaoCreatedResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	return out.DaoID, out.TokenID
}

func memberList(members []string, deposit int64) string {
	out := ""
	for _, m := range members {
		if out != "" {
			out += ","
		}
		out += fmt.Sprintf(`{"address":%q,"deposit":%d}`, m, deposit)
	}
	return out
}

// openProposal creates a proposal starting now with the given duration.
func openProposal(t *testing.T, sender string, daoID uint64, mode uint8, duration int64, actions string) uint64 {
	t.Helper()
	if actions == "" {
		actions = "[]"
	}
	payload := fmt.Sprintf(
		`{"daoId":%d,"title":"A proposal","description":"do the thing","mode":%d,"duration":%d,"actions":%s}`,
		daoID, mode, duration, actions,
	)
	res := mustCall(t, sender, proposalsCreate, payload)
	out := &ProposalCreatedResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	return out.ProposalID
}

// castVote is the happy path ballot helper.
func castVote(t *testing.T, sender string, proposalID uint64, choice VoteChoice) {
	t.Helper()
	mustCall(t, sender, proposalsVote, fmt.Sprintf(`{"proposalId":%d,"choice":%d}`, proposalID, choice))
}

// getProposal decodes the proposals_get projection.
func getProposal(t *testing.T, proposalID uint64) *ProposalView {
	t.Helper()
	res := mustCall(t, memberAddress, proposalsGet, fmt.Sprintf(`{"proposalId":%d}`, proposalID))
	out := &ProposalView{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	return out
}

// getDao decodes the dao_get projection.
func getDao(t *testing.T, daoID uint64) *DaoView {
	t.Helper()
	res := mustCall(t, memberAddress, daoGet, fmt.Sprintf(`{"daoId":%d}`, daoID))
	out := &DaoView{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	return out
}

// treasuryOf reads one depositor's native treasury position.
func treasuryOf(t *testing.T, daoID uint64, addr string) int64 {
	t.Helper()
	res := mustCall(t, memberAddress, daoTreasuryBalance, fmt.Sprintf(`{"daoId":%d,"address":%q}`, daoID, addr))
	out := &AmountResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	return out.Amount
}

// assetBalanceOf reads one depositor's aggregate position for a single asset.
func assetBalanceOf(t *testing.T, daoID uint64, addr string, asset string) int64 {
	t.Helper()
	res := mustCall(t, memberAddress, daoTokenBalance, fmt.Sprintf(`{"daoId":%d,"address":%q,"asset":%q}`, daoID, addr, asset))
	out := &AmountResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	return out.Amount
}

// votesOf reads live or historic voting units of one holder.
func votesOf(t *testing.T, tokenID uint64, addr string, at int64) int64 {
	t.Helper()
	res := mustCall(t, memberAddress, tokenGetVotes, fmt.Sprintf(`{"tokenId":%d,"account":%q,"at":%d}`, tokenID, addr, at))
	out := &AmountResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	return out.Amount
}
