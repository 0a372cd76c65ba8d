package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daoforge/sdk"
)

func TestDepositFunds(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	sdk.MockDeposit(memberAddress, 10000, sdk.AssetHbd)

	allowTransfer(5000, sdk.AssetHbd)
	mustCall(t, memberAddress, daoDepositFunds, fmt.Sprintf(`{"daoId":%d,"amount":5000}`, daoID))
	clearIntents()

	assert.Equal(t, int64(5000), treasuryOf(t, daoID, memberAddress))
	assert.Equal(t, int64(5000), sdk.MockContractBalance(sdk.AssetHbd))
	assert.Equal(t, int64(5000), sdk.MockBalanceOf(memberAddress, sdk.AssetHbd))
}

func TestDepositFundsWithoutIntent(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	sdk.MockDeposit(memberAddress, 10000, sdk.AssetHbd)

	clearIntents()
	mustRevert(t, memberAddress, daoDepositFunds, fmt.Sprintf(`{"daoId":%d,"amount":5000}`, daoID), symUnauthorized)
	assert.Equal(t, int64(0), treasuryOf(t, daoID, memberAddress))
}

func TestDepositFundsIntentLimitTooLow(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	sdk.MockDeposit(memberAddress, 10000, sdk.AssetHbd)

	allowTransfer(100, sdk.AssetHbd)
	mustRevert(t, memberAddress, daoDepositFunds, fmt.Sprintf(`{"daoId":%d,"amount":5000}`, daoID), symInsufficientFunds)
	clearIntents()
}

func TestDepositFundsValidation(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)

	allowTransfer(5000, sdk.AssetHbd)
	mustRevert(t, memberAddress, daoDepositFunds, fmt.Sprintf(`{"daoId":%d,"amount":0}`, daoID), symInvalidPayload)
	mustRevert(t, memberAddress, daoDepositFunds, fmt.Sprintf(`{"daoId":%d,"amount":-20}`, daoID), symInvalidPayload)
	mustRevert(t, memberAddress, daoDepositFunds, `{"daoId":77,"amount":100}`, symNotFound)
	clearIntents()
}

func TestDepositTokensKeepsHistory(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	sdk.MockDeposit(memberAddress, 10000, sdk.AssetHive)

	allowTransfer(1000, sdk.AssetHive)
	mustCall(t, memberAddress, daoDepositTokens, fmt.Sprintf(`{"daoId":%d,"amount":1000,"asset":"hive"}`, daoID))
	sdk.MockSetTimestamp(1735689700)
	allowTransfer(250, sdk.AssetHive)
	mustCall(t, memberAddress, daoDepositTokens, fmt.Sprintf(`{"daoId":%d,"amount":250,"asset":"hive"}`, daoID))
	clearIntents()

	res := mustCall(t, memberAddress, daoTokenBalance, fmt.Sprintf(`{"daoId":%d,"address":%q,"asset":"hive"}`, daoID, memberAddress))
	bal := &AmountResult{}
	require.NoError(t, bal.UnmarshalJSON([]byte(res)))
	assert.Equal(t, int64(1250), bal.Amount)

	res = mustCall(t, memberAddress, daoTokenDeposited, fmt.Sprintf(`{"daoId":%d,"address":%q,"asset":"hive","index":1}`, daoID, memberAddress))
	entry := &DepositEntryResult{}
	require.NoError(t, entry.UnmarshalJSON([]byte(res)))
	assert.Equal(t, int64(250), entry.Amount)
	assert.Equal(t, int64(1735689700), entry.Timestamp)

	mustRevert(t, memberAddress, daoTokenDeposited, fmt.Sprintf(`{"daoId":%d,"address":%q,"asset":"hive","index":5}`, daoID, memberAddress), symNotFound)
}

func TestDepositTokensRejectsUnknownAsset(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	mustRevert(t, memberAddress, daoDepositTokens, fmt.Sprintf(`{"daoId":%d,"amount":100,"asset":"doge"}`, daoID), symInvalidPayload)
}

func TestDepositTokensIntentAssetMismatch(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress)
	sdk.MockDeposit(memberAddress, 10000, sdk.AssetHbd)

	allowTransfer(1000, sdk.AssetHbd)
	mustRevert(t, memberAddress, daoDepositTokens, fmt.Sprintf(`{"daoId":%d,"amount":100,"asset":"hive"}`, daoID), symInvalidPayload)
	clearIntents()
}
