package main

import (
	"strconv"
	"strings"

	"daoforge/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Governance token state persistence
////////////////////////////////////////////////////////////////////////////////

// saveToken writes the encoded token record back.
func saveToken(t *Token) {
	sdk.StateSetObject(tokenKey(t.ID), string(EncodeToken(t)))
}

// loadToken returns nil when the handle was never issued.
func loadToken(id uint64) *Token {
	ptr := sdk.StateGetObject(tokenKey(id))
	if ptr == nil {
		return nil
	}
	t, err := DecodeToken([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt token record " + UInt64ToString(id))
	}
	return t
}

// mustLoadToken reverts with not_found so entrypoints dont repeat the check.
func mustLoadToken(id uint64) *Token {
	t := loadToken(id)
	if t == nil {
		sdk.Revert("token "+UInt64ToString(id)+" not found", symNotFound)
	}
	return t
}

// saveTokenAccount persists one holder, dropping empty accounts.
func saveTokenAccount(tokenID uint64, addr sdk.Address, a *TokenAccount) {
	if a.Balance == 0 && a.Units == 0 && a.Delegate == sdk.AddressNone && a.CheckpointCount == 0 {
		sdk.StateDeleteObject(tokenAccountKey(tokenID, addr))
		return
	}
	sdk.StateSetObject(tokenAccountKey(tokenID, addr), string(EncodeTokenAccount(a)))
}

// loadTokenAccount always hands back a usable struct, zeroed when unknown.
func loadTokenAccount(tokenID uint64, addr sdk.Address) *TokenAccount {
	ptr := sdk.StateGetObject(tokenAccountKey(tokenID, addr))
	if ptr == nil {
		return &TokenAccount{}
	}
	a, err := DecodeTokenAccount([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt token account")
	}
	return a
}

////////////////////////////////////////////////////////////////////////////////
// Voting unit checkpoints
////////////////////////////////////////////////////////////////////////////////

// saveUnitCheckpoint appends a new unit snapshot for a holder.
// The caller bumps the account's CheckpointCount.
func saveUnitCheckpoint(tokenID uint64, addr sdk.Address, units Amount, timestamp int64, increment uint64) {
	key := tokenCheckpointKey(tokenID, addr, increment)
	value := strconv.FormatInt(int64(units), 10) + "_" + strconv.FormatInt(timestamp, 10)
	sdk.StateSetObject(key, value)
}

// UnitCheckpoint represents a single voting unit snapshot in time.
type UnitCheckpoint struct {
	Units     Amount
	Timestamp int64
}

// loadUnitCheckpoint retrieves a specific snapshot by increment.
func loadUnitCheckpoint(tokenID uint64, addr sdk.Address, increment uint64) *UnitCheckpoint {
	ptr := sdk.StateGetObject(tokenCheckpointKey(tokenID, addr, increment))
	if ptr == nil {
		return nil
	}

	// Parse format: {units}_{timestamp}
	parts := strings.Split(*ptr, "_")
	if len(parts) != 2 {
		return nil
	}
	units, err1 := strconv.ParseInt(parts[0], 10, 64)
	timestamp, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &UnitCheckpoint{
		Units:     Amount(units),
		Timestamp: timestamp,
	}
}

// getUnitsAtTime finds the holder's voting units at a specific timestamp by
// searching backwards through their checkpoint history. Zero when the holder
// had no units yet at that time.
func getUnitsAtTime(tokenID uint64, addr sdk.Address, targetTime int64, checkpointCount uint64) Amount {
	for i := int64(checkpointCount) - 1; i >= 0; i-- {
		cp := loadUnitCheckpoint(tokenID, addr, uint64(i))
		if cp == nil {
			continue
		}
		if cp.Timestamp <= targetTime {
			return cp.Units
		}
	}
	return 0
}
