package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daoforge/sdk"
)

func setupToken(t *testing.T) (daoID uint64, tokenID uint64) {
	t.Helper()
	setupContract(t)
	return createTokenDao(t, memberAddress, 1, map[string]int64{
		memberAddress:  500,
		member2Address: 200,
		member3Address: 300,
	})
}

func TestTokenTransferMovesBalanceAndUnits(t *testing.T) {
	_, tokenID := setupToken(t)

	sdk.MockSetTimestamp(1735689700)
	mustCall(t, memberAddress, tokenTransfer, fmt.Sprintf(`{"tokenId":%d,"to":%q,"amount":150}`, tokenID, member2Address))

	res := mustCall(t, memberAddress, tokenBalance, fmt.Sprintf(`{"tokenId":%d,"account":%q}`, tokenID, memberAddress))
	out := &AmountResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.Equal(t, int64(350), out.Amount)

	assert.Equal(t, int64(350), votesOf(t, tokenID, memberAddress, 0))
	assert.Equal(t, int64(350), votesOf(t, tokenID, member2Address, 0))
	// history before the transfer is untouched
	assert.Equal(t, int64(500), votesOf(t, tokenID, memberAddress, 1735689600))
	assert.Equal(t, int64(200), votesOf(t, tokenID, member2Address, 1735689600))
}

func TestTokenTransferInsufficientBalance(t *testing.T) {
	_, tokenID := setupToken(t)
	mustRevert(t, member2Address, tokenTransfer, fmt.Sprintf(`{"tokenId":%d,"to":%q,"amount":9999}`, tokenID, memberAddress), symInsufficientFunds)
	// rollback left the units where they were
	assert.Equal(t, int64(200), votesOf(t, tokenID, member2Address, 0))
}

func TestTokenTransferValidation(t *testing.T) {
	_, tokenID := setupToken(t)
	mustRevert(t, memberAddress, tokenTransfer, fmt.Sprintf(`{"tokenId":%d,"to":%q,"amount":0}`, tokenID, member2Address), symInvalidPayload)
	mustRevert(t, memberAddress, tokenTransfer, fmt.Sprintf(`{"tokenId":%d,"to":"","amount":10}`, tokenID), symInvalidPayload)
	mustRevert(t, memberAddress, tokenTransfer, fmt.Sprintf(`{"tokenId":99,"to":%q,"amount":10}`, member2Address), symNotFound)
}

func TestDelegateAndRevoke(t *testing.T) {
	_, tokenID := setupToken(t)

	sdk.MockSetTimestamp(1735689700)
	mustCall(t, member2Address, tokenDelegate, fmt.Sprintf(`{"tokenId":%d,"to":%q}`, tokenID, memberAddress))
	assert.Equal(t, int64(700), votesOf(t, tokenID, memberAddress, 0))
	assert.Equal(t, int64(0), votesOf(t, tokenID, member2Address, 0))

	// delegating to yourself revokes
	sdk.MockSetTimestamp(1735689800)
	mustCall(t, member2Address, tokenDelegate, fmt.Sprintf(`{"tokenId":%d,"to":%q}`, tokenID, member2Address))
	assert.Equal(t, int64(500), votesOf(t, tokenID, memberAddress, 0))
	assert.Equal(t, int64(200), votesOf(t, tokenID, member2Address, 0))

	// the intermediate state stays queryable
	assert.Equal(t, int64(700), votesOf(t, tokenID, memberAddress, 1735689750))
}

func TestTransferWhileDelegatedMovesDelegateUnits(t *testing.T) {
	_, tokenID := setupToken(t)

	sdk.MockSetTimestamp(1735689700)
	mustCall(t, member2Address, tokenDelegate, fmt.Sprintf(`{"tokenId":%d,"to":%q}`, tokenID, memberAddress))

	// member2's balance is delegated, so a transfer out drains the delegate
	sdk.MockSetTimestamp(1735689800)
	mustCall(t, member2Address, tokenTransfer, fmt.Sprintf(`{"tokenId":%d,"to":%q,"amount":50}`, tokenID, member3Address))

	assert.Equal(t, int64(650), votesOf(t, tokenID, memberAddress, 0))
	assert.Equal(t, int64(350), votesOf(t, tokenID, member3Address, 0))
}

func TestGetVotesDefaultsToNow(t *testing.T) {
	_, tokenID := setupToken(t)
	res := mustCall(t, memberAddress, tokenGetVotes, fmt.Sprintf(`{"tokenId":%d,"account":%q}`, tokenID, memberAddress))
	out := &AmountResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.Equal(t, int64(500), out.Amount)
}

func TestVotesBeforeFirstCheckpointAreZero(t *testing.T) {
	_, tokenID := setupToken(t)
	assert.Equal(t, int64(0), votesOf(t, tokenID, memberAddress, 100))
	assert.Equal(t, int64(0), votesOf(t, tokenID, outsiderAddr, 0))
}
