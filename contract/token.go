package main

import "daoforge/sdk"

////////////////////////////////////////////////////////////////////////////////
// Governance token: balances, delegation and snapshot weights
//
// Every balance counts as voting units for its own holder until the holder
// delegates. Each unit change appends a checkpoint, so proposal snapshots can
// ask "how many units did X hold at time T" long after the units moved on.
////////////////////////////////////////////////////////////////////////////////

// unitsHolder resolves whose pile an account's balance currently counts into.
func unitsHolder(acct *TokenAccount, self sdk.Address) sdk.Address {
	if acct.Delegate == sdk.AddressNone {
		return self
	}
	return acct.Delegate
}

// adjustUnits shifts a holder's live units by delta and checkpoints the result.
func adjustUnits(tokenID uint64, addr sdk.Address, delta Amount, timestamp int64) {
	if delta == 0 {
		return
	}
	acct := loadTokenAccount(tokenID, addr)
	acct.Units += delta
	if acct.Units < 0 {
		sdk.Abort("voting unit bookkeeping underflow")
	}
	saveUnitCheckpoint(tokenID, addr, acct.Units, timestamp, acct.CheckpointCount)
	acct.CheckpointCount++
	saveTokenAccount(tokenID, addr, acct)
}

// moveUnits transfers voting units between two holders, skipping self moves.
func moveUnits(tokenID uint64, from sdk.Address, to sdk.Address, amount Amount, timestamp int64) {
	if from == to || amount == 0 {
		return
	}
	adjustUnits(tokenID, from, -amount, timestamp)
	adjustUnits(tokenID, to, amount, timestamp)
}

// createToken mints a fixed supply token and seeds holder balances. Seeds are
// self-delegated, so units are live for snapshots immediately.
func createToken(name string, symbol string, owner sdk.Address, seeds []MemberInput, timestamp int64) *Token {
	if name == "" {
		name = FallbackTokenName
	}
	if symbol == "" {
		symbol = FallbackTokenSymbol
	}
	id := nextID(TokensCount)
	total := Amount(0)
	for _, seed := range seeds {
		if seed.Deposit < 0 {
			sdk.Revert("negative token seed", symInvalidPayload)
		}
		if seed.Deposit == 0 {
			continue
		}
		addr := sdk.Address(seed.Address)
		acct := loadTokenAccount(id, addr)
		acct.Balance += Amount(seed.Deposit)
		saveTokenAccount(id, addr, acct)
		adjustUnits(id, addr, Amount(seed.Deposit), timestamp)
		total += Amount(seed.Deposit)
	}
	token := &Token{
		ID:          id,
		Name:        name,
		Symbol:      symbol,
		Owner:       owner,
		TotalSupply: total,
		CreatedAt:   timestamp,
	}
	saveToken(token)
	emitTokenCreatedEvent(id, token.Symbol, total)
	return token
}

// tokenDelegate points the caller's balance at another holder. Delegating to
// the empty address revokes and the units come home.
func tokenDelegate(payload *string) *string {
	args := &DelegateArgs{}
	decodePayload(payload, args)
	mustLoadToken(args.TokenID)

	sender := getSenderAddress()
	to := sdk.Address(args.To)
	if to != sdk.AddressNone {
		validateAddress(to, "delegate")
	}
	if to == sender {
		// delegating to yourself is the same as revoking
		to = sdk.AddressNone
	}

	now := getCurrentTimestamp()
	acct := loadTokenAccount(args.TokenID, sender)
	oldHolder := unitsHolder(acct, sender)
	acct.Delegate = to
	saveTokenAccount(args.TokenID, sender, acct)
	newHolder := unitsHolder(acct, sender)
	moveUnits(args.TokenID, oldHolder, newHolder, acct.Balance, now)

	emitDelegateEvent(args.TokenID, sender.String(), newHolder.String())
	return strptr("delegated")
}

// tokenTransfer moves balance between accounts and keeps both sides' voting
// units (wherever they are delegated) in sync.
func tokenTransfer(payload *string) *string {
	args := &TransferArgs{}
	decodePayload(payload, args)
	mustLoadToken(args.TokenID)

	sender := getSenderAddress()
	to := sdk.Address(args.To)
	validateAddress(to, "recipient")
	amount := Amount(args.Amount)
	if amount <= 0 {
		sdk.Revert("transfer amount must be positive", symInvalidPayload)
	}

	fromAcct := loadTokenAccount(args.TokenID, sender)
	if fromAcct.Balance < amount {
		sdk.Revert("transfer exceeds balance", symInsufficientFunds)
	}
	now := getCurrentTimestamp()

	fromAcct.Balance -= amount
	saveTokenAccount(args.TokenID, sender, fromAcct)
	toAcct := loadTokenAccount(args.TokenID, to)
	toAcct.Balance += amount
	saveTokenAccount(args.TokenID, to, toAcct)

	moveUnits(args.TokenID, unitsHolder(fromAcct, sender), unitsHolder(toAcct, to), amount, now)

	emitTokenTransferEvent(args.TokenID, sender.String(), to.String(), amount)
	return strptr("transferred")
}

// votingPowerAt answers the snapshot question proposals ask.
func votingPowerAt(tokenID uint64, addr sdk.Address, at int64) Amount {
	acct := loadTokenAccount(tokenID, addr)
	return getUnitsAtTime(tokenID, addr, at, acct.CheckpointCount)
}

// tokenGetVotes reports voting units, live or at a historic timestamp.
func tokenGetVotes(payload *string) *string {
	args := &GetVotesArgs{}
	decodePayload(payload, args)
	mustLoadToken(args.TokenID)

	addr := sdk.Address(args.Account)
	at := args.At
	if at == 0 {
		at = getCurrentTimestamp()
	}
	units := votingPowerAt(args.TokenID, addr, at)
	return encodeResult(&AmountResult{Amount: int64(units)})
}

// tokenBalance reports the raw balance of one holder.
func tokenBalance(payload *string) *string {
	args := &TokenBalanceArgs{}
	decodePayload(payload, args)
	mustLoadToken(args.TokenID)

	acct := loadTokenAccount(args.TokenID, sdk.Address(args.Account))
	return encodeResult(&AmountResult{Amount: int64(acct.Balance)})
}
