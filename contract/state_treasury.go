package main

import (
	"strconv"
	"strings"

	"daoforge/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Treasury state persistence
////////////////////////////////////////////////////////////////////////////////

// getAmount reads a decimal Amount stored under key, zero when missing.
func getAmount(key string) Amount {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseInt(*ptr, 10, 64)
	return Amount(n)
}

// setAmount stores the Amount back as a decimal string, deleting zero entries
// keeps the state lean.
func setAmount(key string, v Amount) {
	if v == 0 {
		sdk.StateDeleteObject(key)
		return
	}
	sdk.StateSetObject(key, strconv.FormatInt(int64(v), 10))
}

// getTreasuryBalance is the flat native deposit of one depositor.
func getTreasuryBalance(daoID uint64, addr sdk.Address) Amount {
	return getAmount(treasuryKey(daoID, addr))
}

// addTreasuryBalance credits/debits the flat native record.
func addTreasuryBalance(daoID uint64, addr sdk.Address, delta Amount) {
	setAmount(treasuryKey(daoID, addr), getTreasuryBalance(daoID, addr)+delta)
}

// getAssetBalance aggregates one depositor's asset deposits.
func getAssetBalance(daoID uint64, addr sdk.Address, asset sdk.Asset) Amount {
	return getAmount(assetBalanceKey(daoID, addr, asset))
}

// addAssetBalance moves the depositor aggregate by delta.
func addAssetBalance(daoID uint64, addr sdk.Address, asset sdk.Asset, delta Amount) {
	setAmount(assetBalanceKey(daoID, addr, asset), getAssetBalance(daoID, addr, asset)+delta)
}

// getAssetTotal is the organization wide running balance per asset.
func getAssetTotal(daoID uint64, asset sdk.Asset) Amount {
	return getAmount(assetTotalKey(daoID, asset))
}

// addAssetTotal moves the organization total by delta.
func addAssetTotal(daoID uint64, asset sdk.Asset, delta Amount) {
	setAmount(assetTotalKey(daoID, asset), getAssetTotal(daoID, asset)+delta)
}

// DepositEntry is one row of a depositor's asset history.
type DepositEntry struct {
	Amount    Amount
	Timestamp int64
}

// appendDepositLog stores the entry as {amount}_{timestamp} and bumps the
// per depositor+asset counter.
func appendDepositLog(daoID uint64, addr sdk.Address, asset sdk.Asset, amount Amount, timestamp int64) uint64 {
	countKey := depositCountKey(daoID, addr, asset)
	idx := getCount(countKey)
	value := strconv.FormatInt(int64(amount), 10) + "_" + strconv.FormatInt(timestamp, 10)
	sdk.StateSetObject(depositLogKey(daoID, addr, asset, idx), value)
	setCount(countKey, idx+1)
	return idx
}

// loadDepositEntry retrieves a specific history row by index.
func loadDepositEntry(daoID uint64, addr sdk.Address, asset sdk.Asset, idx uint64) *DepositEntry {
	ptr := sdk.StateGetObject(depositLogKey(daoID, addr, asset, idx))
	if ptr == nil {
		return nil
	}
	parts := strings.Split(*ptr, "_")
	if len(parts) != 2 {
		return nil
	}
	amount, err1 := strconv.ParseInt(parts[0], 10, 64)
	timestamp, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &DepositEntry{
		Amount:    Amount(amount),
		Timestamp: timestamp,
	}
}

// getDepositCount returns how many history rows exist for depositor+asset.
func getDepositCount(daoID uint64, addr sdk.Address, asset sdk.Asset) uint64 {
	return getCount(depositCountKey(daoID, addr, asset))
}
