package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOnlyOnce(t *testing.T) {
	setupContract(t)
	mustRevert(t, ownerAddress, contractInit, "{}", symAlreadyInitialized)
}

func TestCreateMemberDao(t *testing.T) {
	setupContract(t)
	daoID := createMemberDao(t, memberAddress, member2Address, member3Address)

	dao := getDao(t, daoID)
	assert.Equal(t, "Test Org", dao.Name)
	assert.Equal(t, uint8(0), dao.Mode)
	assert.Equal(t, uint64(0), dao.TokenID)
	// creator gets a seat even without listing themselves
	assert.Equal(t, uint64(3), dao.MemberCount)
	assert.Equal(t, memberAddress, dao.Creator)
	assert.Equal(t, int64(1), dao.MinimumRequirement)

	res := mustCall(t, memberAddress, daoIsMember, fmt.Sprintf(`{"daoId":%d,"address":%q}`, daoID, member2Address))
	out := &BoolResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.True(t, out.Value)

	res = mustCall(t, memberAddress, daoIsMember, fmt.Sprintf(`{"daoId":%d,"address":%q}`, daoID, outsiderAddr))
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.False(t, out.Value)
}

func TestCreateDaoRegistersInList(t *testing.T) {
	setupContract(t)
	first := createMemberDao(t, memberAddress)
	second := createMemberDao(t, member2Address)

	res := mustCall(t, memberAddress, daoList, "{}")
	out := &IDListResult{}
	require.NoError(t, out.UnmarshalJSON([]byte(res)))
	assert.Equal(t, []uint64{first, second}, out.IDs)
}

func TestCreateTokenDaoMintsToken(t *testing.T) {
	setupContract(t)
	daoID, tokenID := createTokenDao(t, memberAddress, 1, map[string]int64{
		memberAddress:  500,
		member2Address: 200,
		member3Address: 300,
	})
	require.NotZero(t, tokenID)

	dao := getDao(t, daoID)
	assert.Equal(t, uint8(1), dao.Mode)
	assert.Equal(t, tokenID, dao.TokenID)

	// seeds are self delegated, units live right away
	assert.Equal(t, int64(500), votesOf(t, tokenID, memberAddress, 0))
	assert.Equal(t, int64(200), votesOf(t, tokenID, member2Address, 0))
	assert.Equal(t, int64(300), votesOf(t, tokenID, member3Address, 0))
}

func TestCreateDaoValidation(t *testing.T) {
	setupContract(t)
	mustRevert(t, memberAddress, daoCreate, `{"name":"","mode":0}`, symInvalidPayload)
	mustRevert(t, memberAddress, daoCreate, `{"name":"x","mode":7}`, symInvalidPayload)
	mustRevert(t, memberAddress, daoCreate, `{"name":"x","mode":0,"minimumRequirement":-5}`, symInvalidPayload)
	// a token gate without a governance token would lock out every proposer
	mustRevert(t, memberAddress, daoCreate, `{"name":"x","mode":0,"tokenGated":true,"minimumHolding":1}`, symInvalidPayload)
	mustRevert(t, memberAddress, daoCreate, "", symInvalidPayload)
}

func TestCreateTokenDaoWithUnknownTokenFails(t *testing.T) {
	setupContract(t)
	mustRevert(t, memberAddress, daoCreate, `{"name":"x","mode":1,"tokenId":99}`, symNotFound)
}

func TestGetUnknownDao(t *testing.T) {
	setupContract(t)
	mustRevert(t, memberAddress, daoGet, `{"daoId":42}`, symNotFound)
}
