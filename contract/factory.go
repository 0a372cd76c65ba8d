package main

import "daoforge/sdk"

////////////////////////////////////////////////////////////////////////////////
// Deployment init and organization factory
////////////////////////////////////////////////////////////////////////////////

// contractInit runs once right after deployment and pins the owner.
func contractInit(_ *string) *string {
	if isContractInitialized() {
		sdk.Revert("contract already initialized", symAlreadyInitialized)
	}
	owner := getSenderAddress()
	saveContractConfig(&ContractConfig{Owner: owner})
	emitInitEvent(owner.String())
	return strptr("initialized")
}

// daoCreate spins up a new organization. Token weighted organizations either
// reference an existing governance token or mint a fresh one seeded from the
// member list. Creation is the only moment supply is set.
func daoCreate(payload *string) *string {
	args := &CreateDaoArgs{}
	decodePayload(payload, args)

	validateTitle(args.Name)
	mode := VotingMode(args.Mode)
	if mode != ModeMemberCount && mode != ModeTokenWeighted {
		sdk.Revert("unknown voting mode", symInvalidPayload)
	}
	minReq := Amount(args.MinimumRequirement)
	if minReq < 0 {
		sdk.Revert("negative minimum requirement", symInvalidPayload)
	}
	if minReq == 0 {
		minReq = FallbackMinimumRequirement
	}
	minHolding := Amount(args.MinimumHolding)
	if minHolding < 0 {
		sdk.Revert("negative minimum holding", symInvalidPayload)
	}

	sender := getSenderAddress()
	now := getCurrentTimestamp()

	// creator always holds a seat, listed or not
	seats := make([]MemberInput, 0, len(args.Members)+1)
	seen := false
	for _, m := range args.Members {
		addr := sdk.Address(m.Address)
		validateAddress(addr, "member")
		if addr == sender {
			seen = true
		}
		seats = append(seats, m)
	}
	if !seen {
		seats = append(seats, MemberInput{Address: sender.String(), Deposit: 0})
	}

	tokenID := args.TokenID
	if mode == ModeTokenWeighted && tokenID == 0 {
		token := createToken(args.TokenName, args.TokenSymbol, sender, seats, now)
		tokenID = token.ID
	}
	if mode == ModeTokenWeighted {
		mustLoadToken(tokenID)
	} else {
		tokenID = 0
	}
	if args.TokenGated && tokenID == 0 {
		sdk.Revert("token gate needs a governance token", symInvalidPayload)
	}

	id := nextID(DaosCount)
	dao := &Dao{
		ID: id,
		Settings: DaoSettings{
			Name: args.Name,
			Data: args.Data,
		},
		Mode:               mode,
		TokenID:            tokenID,
		MinimumRequirement: minReq,
		Policy: ProposalPolicy{
			TokenGated:     args.TokenGated,
			MinimumHolding: minHolding,
		},
		Creator:   sender,
		CreatedAt: now,
		Tx:        getCurrentTxID(),
	}

	for _, m := range seats {
		addr := sdk.Address(m.Address)
		if loadMember(id, addr) != nil {
			// duplicate entries in the seed list collapse to one seat
			continue
		}
		saveMember(id, &DaoMember{
			Address:  addr,
			Deposit:  Amount(m.Deposit),
			JoinedAt: now,
		})
		dao.MemberCount++
	}

	saveDao(dao)
	registerDao(id)
	emitDaoCreatedEvent(id, sender.String())

	return encodeResult(&DaoCreatedResult{DaoID: id, TokenID: tokenID})
}
