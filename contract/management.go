package main

import (
	"errors"

	"daoforge/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Privileged organization mutations
//
// Every function here takes an execGrant. The grant only exists while a
// proposal batch is running, so membership rosters, settings, policy and
// treasury outflows can never be changed by a plain sender call. The impls
// return plain errors because the executor wraps any failure into a batch
// revert that undoes the whole call.
////////////////////////////////////////////////////////////////////////////////

var errNoGrant = errors.New("no execution grant")

// requireGrant rejects nil or mismatched grants before anything is touched.
func requireGrant(grant *execGrant, daoID uint64) error {
	if grant == nil {
		return errNoGrant
	}
	if grant.daoID != daoID {
		return errors.New("grant is scoped to another organization")
	}
	return nil
}

// updateSettings swaps the descriptive name/data pair.
func updateSettings(grant *execGrant, daoID uint64, params *UpdateSettingsParams) error {
	if err := requireGrant(grant, daoID); err != nil {
		return err
	}
	if params.Name == "" {
		return errors.New("name must not be empty")
	}
	if len(params.Name) > MaxTitleLength {
		return errors.New("name too long")
	}
	dao := mustLoadDao(daoID)
	dao.Settings.Name = params.Name
	dao.Settings.Data = params.Data
	saveDao(dao)
	emitSettingsUpdated(daoID, params.Name)
	return nil
}

// addMembers grants fresh seats. Hitting an existing seat fails the batch,
// the proposer should have known the roster.
func addMembers(grant *execGrant, daoID uint64, params *AddMembersParams) error {
	if err := requireGrant(grant, daoID); err != nil {
		return err
	}
	if len(params.Members) == 0 {
		return errors.New("empty member list")
	}
	dao := mustLoadDao(daoID)
	now := getCurrentTimestamp()
	for _, m := range params.Members {
		addr := sdk.Address(m.Address)
		if !addr.IsValid() {
			return errors.New("invalid member address: " + m.Address)
		}
		if loadMember(daoID, addr) != nil {
			return errors.New("already a member: " + m.Address)
		}
		saveMember(daoID, &DaoMember{
			Address:  addr,
			Deposit:  Amount(m.Deposit),
			JoinedAt: now,
		})
		dao.MemberCount++
	}
	saveDao(dao)
	emitMembersChanged(daoID, "add", len(params.Members))
	return nil
}

// removeMembers revokes seats. Unknown addresses are skipped silently so a
// roster cleanup proposal stays executable even after someone already left.
func removeMembers(grant *execGrant, daoID uint64, params *RemoveMembersParams) error {
	if err := requireGrant(grant, daoID); err != nil {
		return err
	}
	if len(params.Addresses) == 0 {
		return errors.New("empty address list")
	}
	dao := mustLoadDao(daoID)
	removed := 0
	for _, a := range params.Addresses {
		addr := sdk.Address(a)
		if loadMember(daoID, addr) == nil {
			continue
		}
		deleteMember(daoID, addr)
		dao.MemberCount--
		removed++
	}
	saveDao(dao)
	emitMembersChanged(daoID, "rm", removed)
	return nil
}

// updatePolicy flips the proposal gate.
func updatePolicy(grant *execGrant, daoID uint64, params *UpdatePolicyParams) error {
	if err := requireGrant(grant, daoID); err != nil {
		return err
	}
	if params.MinimumHolding < 0 {
		return errors.New("negative minimum holding")
	}
	dao := mustLoadDao(daoID)
	if params.TokenGated && dao.TokenID == 0 {
		// gating on a token that doesnt exist would lock out every proposer
		return errors.New("no governance token to gate on")
	}
	dao.Policy.TokenGated = params.TokenGated
	dao.Policy.MinimumHolding = Amount(params.MinimumHolding)
	saveDao(dao)
	emitPolicyUpdated(daoID, params.TokenGated, Amount(params.MinimumHolding))
	return nil
}

// withdrawFunds pays native hbd out of one depositor's treasury record.
func withdrawFunds(grant *execGrant, daoID uint64, params *WithdrawFundsParams) error {
	if err := requireGrant(grant, daoID); err != nil {
		return err
	}
	amount := Amount(params.Amount)
	if amount <= 0 {
		return errors.New("withdrawal amount must be positive")
	}
	from := sdk.Address(params.From)
	to := sdk.Address(params.To)
	if !to.IsValid() {
		return errors.New("invalid recipient address: " + params.To)
	}
	if getTreasuryBalance(daoID, from) < amount {
		return errors.New("insufficient treasury balance")
	}
	addTreasuryBalance(daoID, from, -amount)
	sdk.HiveTransfer(to, int64(amount), sdk.AssetHbd)
	emitFundsWithdrawn(daoID, to.String(), amount, sdk.AssetHbd.String())
	return nil
}

// withdrawTokens pays out of one depositor's recorded asset position. The
// deposit history rows stay untouched, only the aggregate comes down.
func withdrawTokens(grant *execGrant, daoID uint64, params *WithdrawTokensParams) error {
	if err := requireGrant(grant, daoID); err != nil {
		return err
	}
	if !isValidAsset(params.Asset) {
		return errors.New("unsupported asset " + params.Asset)
	}
	asset := sdk.Asset(params.Asset)
	amount := Amount(params.Amount)
	if amount <= 0 {
		return errors.New("withdrawal amount must be positive")
	}
	from := sdk.Address(params.From)
	to := sdk.Address(params.To)
	if !to.IsValid() {
		return errors.New("invalid recipient address: " + params.To)
	}
	if getAssetBalance(daoID, from, asset) < amount {
		return errors.New("insufficient asset balance")
	}
	addAssetBalance(daoID, from, asset, -amount)
	addAssetTotal(daoID, asset, -amount)
	sdk.HiveTransfer(to, int64(amount), asset)
	emitFundsWithdrawn(daoID, to.String(), amount, asset.String())
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// Direct entrypoint shims
//
// The management methods are also exported as plain entrypoints. They pass a
// nil grant, so they always revert unauthorized. Keeping them callable makes
// the authorization model explicit on chain instead of just absent.
////////////////////////////////////////////////////////////////////////////////

// revertOnErr converts a management error into the revert direct callers see.
func revertOnErr(err error) *string {
	if err != nil {
		sdk.Revert(err.Error(), symUnauthorized)
	}
	return strptr("ok")
}

func daoUpdateSettings(payload *string) *string {
	args := &DaoQueryArgs{}
	decodePayload(payload, args)
	return revertOnErr(updateSettings(nil, args.DaoID, &UpdateSettingsParams{}))
}

func daoAddMembers(payload *string) *string {
	args := &DaoQueryArgs{}
	decodePayload(payload, args)
	return revertOnErr(addMembers(nil, args.DaoID, &AddMembersParams{}))
}

func daoRemoveMembers(payload *string) *string {
	args := &DaoQueryArgs{}
	decodePayload(payload, args)
	return revertOnErr(removeMembers(nil, args.DaoID, &RemoveMembersParams{}))
}

func daoUpdatePolicy(payload *string) *string {
	args := &DaoQueryArgs{}
	decodePayload(payload, args)
	return revertOnErr(updatePolicy(nil, args.DaoID, &UpdatePolicyParams{}))
}

func daoWithdrawFunds(payload *string) *string {
	args := &DaoQueryArgs{}
	decodePayload(payload, args)
	return revertOnErr(withdrawFunds(nil, args.DaoID, &WithdrawFundsParams{}))
}

func daoWithdrawTokens(payload *string) *string {
	args := &DaoQueryArgs{}
	decodePayload(payload, args)
	return revertOnErr(withdrawTokens(nil, args.DaoID, &WithdrawTokensParams{}))
}
