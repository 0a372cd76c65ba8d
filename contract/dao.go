package main

import "daoforge/sdk"

////////////////////////////////////////////////////////////////////////////////
// Treasury deposits and organization reads
////////////////////////////////////////////////////////////////////////////////

// daoDepositFunds draws native hbd from the sender (covered by a transfer.allow
// intent) into the organization treasury. The native ledger is its own pot,
// these funds never back asset pool withdrawals.
func daoDepositFunds(payload *string) *string {
	args := &DepositFundsArgs{}
	decodePayload(payload, args)
	mustLoadDao(args.DaoID)

	amount := Amount(args.Amount)
	requireTransferAllow(amount, sdk.AssetHbd)

	sender := getSenderAddress()
	addTreasuryBalance(args.DaoID, sender, amount)

	emitFundsDeposited(args.DaoID, sender.String(), amount, sdk.AssetHbd.String())
	return strptr("deposited")
}

// daoDepositTokens is the multi asset variant. Every deposit lands in the
// depositor's aggregate plus an append only history row, so frontends can show
// both the current position and how it got there.
func daoDepositTokens(payload *string) *string {
	args := &DepositTokensArgs{}
	decodePayload(payload, args)
	mustLoadDao(args.DaoID)

	if !isValidAsset(args.Asset) {
		sdk.Revert("unsupported asset "+args.Asset, symInvalidPayload)
	}
	asset := sdk.Asset(args.Asset)
	amount := Amount(args.Amount)
	requireTransferAllow(amount, asset)

	sender := getSenderAddress()
	now := getCurrentTimestamp()
	appendDepositLog(args.DaoID, sender, asset, amount, now)
	addAssetBalance(args.DaoID, sender, asset, amount)
	addAssetTotal(args.DaoID, asset, amount)

	emitFundsDeposited(args.DaoID, sender.String(), amount, asset.String())
	return strptr("deposited")
}

// daoGet projects one organization record for callers.
func daoGet(payload *string) *string {
	args := &DaoQueryArgs{}
	decodePayload(payload, args)
	dao := mustLoadDao(args.DaoID)

	return encodeResult(&DaoView{
		DaoID:              dao.ID,
		Name:               dao.Settings.Name,
		Data:               dao.Settings.Data,
		Mode:               uint8(dao.Mode),
		TokenID:            dao.TokenID,
		MinimumRequirement: int64(dao.MinimumRequirement),
		TokenGated:         dao.Policy.TokenGated,
		MinimumHolding:     int64(dao.Policy.MinimumHolding),
		MemberCount:        dao.MemberCount,
		Creator:            dao.Creator.String(),
		CreatedAt:          dao.CreatedAt,
	})
}

// daoList walks the registry index.
func daoList(_ *string) *string {
	return encodeResult(&IDListResult{IDs: listDaoIDs()})
}

// daoIsMember answers the seat probe without loading the full record.
func daoIsMember(payload *string) *string {
	args := &IsMemberArgs{}
	decodePayload(payload, args)
	mustLoadDao(args.DaoID)
	return encodeResult(&BoolResult{Value: isMember(args.DaoID, sdk.Address(args.Address))})
}

// daoTreasuryBalance reports one depositor's flat native position.
func daoTreasuryBalance(payload *string) *string {
	args := &TreasuryBalanceArgs{}
	decodePayload(payload, args)
	mustLoadDao(args.DaoID)
	bal := getTreasuryBalance(args.DaoID, sdk.Address(args.Address))
	return encodeResult(&AmountResult{Amount: int64(bal)})
}

// daoTokenBalance reports one depositor's aggregate for a single asset.
func daoTokenBalance(payload *string) *string {
	args := &DaoTokenBalanceArgs{}
	decodePayload(payload, args)
	mustLoadDao(args.DaoID)
	if !isValidAsset(args.Asset) {
		sdk.Revert("unsupported asset "+args.Asset, symInvalidPayload)
	}
	bal := getAssetBalance(args.DaoID, sdk.Address(args.Address), sdk.Asset(args.Asset))
	return encodeResult(&AmountResult{Amount: int64(bal)})
}

// daoTokenDeposited replays one history row of a depositor+asset pair.
func daoTokenDeposited(payload *string) *string {
	args := &TokenDepositedArgs{}
	decodePayload(payload, args)
	mustLoadDao(args.DaoID)
	if !isValidAsset(args.Asset) {
		sdk.Revert("unsupported asset "+args.Asset, symInvalidPayload)
	}
	entry := loadDepositEntry(args.DaoID, sdk.Address(args.Address), sdk.Asset(args.Asset), args.Index)
	if entry == nil {
		sdk.Revert("no deposit at index "+UInt64ToString(args.Index), symNotFound)
	}
	return encodeResult(&DepositEntryResult{
		Amount:    int64(entry.Amount),
		Timestamp: entry.Timestamp,
	})
}
