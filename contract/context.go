package main

import (
	"strconv"

	"daoforge/sdk"
)

// cachedEnv/cachedTransfer are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop any memoized data
// to keep reads consistent.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines and ensures
// subsequent helper calls (intents, sender, timestamps) always see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// getCurrentTimestamp parses block.timestamp (unix seconds as decimal string).
func getCurrentTimestamp() int64 {
	ts, err := strconv.ParseInt(currentEnv().Timestamp, 10, 64)
	if err != nil {
		sdk.Abort("invalid block timestamp")
	}
	return ts
}

// getCurrentTxID identifies the transaction, stored on new records for tracing.
func getCurrentTxID() string {
	return currentEnv().TxId
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// isValidAsset checks if a given token string is one of the supported assets.
func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// getFirstTransferAllow scans the provided intents and returns the first valid
// transfer.allow intent as a TransferAllow object. The cached result is cleared
// automatically whenever currentEnv() detects a new transaction.
func getFirstTransferAllow() *TransferAllow {
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range currentIntents() {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			if !isValidAsset(token) {
				sdk.Abort("invalid intent asset")
			}
			limitStr := intent.Args["limit"]
			limit, err := strconv.ParseInt(limitStr, 10, 64)
			if err != nil {
				sdk.Abort("invalid intent limit")
			}
			ta := &TransferAllow{
				Limit: Amount(limit),
				Token: sdk.Asset(token),
			}
			cachedTransfer = ta
			return ta
		}
	}
	return nil
}

// requireTransferAllow draws amount of asset from the sender, checking the
// intent covers it first. Used by every deposit path.
func requireTransferAllow(amount Amount, asset sdk.Asset) {
	if amount <= 0 {
		sdk.Revert("deposit amount must be positive", symInvalidPayload)
	}
	allow := getFirstTransferAllow()
	if allow == nil {
		sdk.Revert("missing transfer.allow intent", symUnauthorized)
	}
	if allow.Token != asset {
		sdk.Revert("intent asset does not match deposit", symInvalidPayload)
	}
	if allow.Limit < amount {
		sdk.Revert("intent limit below deposit amount", symInsufficientFunds)
	}
	sdk.HiveDraw(int64(amount), asset)
}
