package main

import "daoforge/sdk"

// Amount is a raw integer token/asset quantity. No float scaling happens
// inside the contract, callers pass base units directly.
type Amount int64

// VotingMode selects how vote weight is derived (member count vs token units).
type VotingMode uint8

// VoteChoice is the ballot option index (1=yes, 2=no, 3=abstain).
type VoteChoice uint8

// ContractConfig holds the deployment wide settings written once at init.
type ContractConfig struct {
	Owner sdk.Address
}

// DaoSettings carries the mutable descriptive bits of an organization.
// Data is an opaque blob the frontend owns, we never look inside.
type DaoSettings struct {
	Name string
	Data string
}

// ProposalPolicy gates who may open proposals for an organization.
type ProposalPolicy struct {
	TokenGated     bool
	MinimumHolding Amount
}

// Dao is the organization record stored under kDaoMeta.
type Dao struct {
	ID                 uint64
	Settings           DaoSettings
	Mode               VotingMode
	TokenID            uint64
	MinimumRequirement Amount
	Policy             ProposalPolicy
	MemberCount        uint64
	Creator            sdk.Address
	CreatedAt          int64
	Tx                 string
}

// DaoMember tracks one seat plus the deposit recorded when it was granted.
type DaoMember struct {
	Address  sdk.Address
	Deposit  Amount
	JoinedAt int64
}

// Token is a governance token record. Supply is fixed after creation,
// balances only move via transfers and delegation bookkeeping.
type Token struct {
	ID          uint64
	Name        string
	Symbol      string
	Owner       sdk.Address
	TotalSupply Amount
	CreatedAt   int64
}

// TokenAccount is the per-holder state of one governance token.
// Delegate empty means the account votes with its own units.
// CheckpointCount is the number of unit snapshots written so far.
type TokenAccount struct {
	Balance         Amount
	Units           Amount
	Delegate        sdk.Address
	CheckpointCount uint64
}

// Action is one entry of a proposal's execution batch. Target is either an
// organization handle address (dao:<id>) or an external contract address.
// Payload is opaque JSON {method, params} decoded by the target.
type Action struct {
	Target  sdk.Address
	Value   Amount
	Payload string
}

// Proposal is the full voting record stored under kProposalMeta.
// Actions live in separate keys so tally updates touch fewer bytes.
type Proposal struct {
	ID            uint64
	DaoID         uint64
	Creator       sdk.Address
	Title         string
	Description   string
	Mode          VotingMode
	StartTime     int64
	EndTime       int64
	SnapshotTotal Amount
	YesWeight     Amount
	NoWeight      Amount
	AbstainWeight Amount
	VoterCount    uint64
	Approved      bool
	Executed      bool
	ActionID      uint64
	ActionCount   uint32
	Tx            string
}

// VoteReceipt pins down one cast ballot so repeats can be rejected.
type VoteReceipt struct {
	Choice    VoteChoice
	Weight    Amount
	Timestamp int64
}

// execGrant is the capability handed to privileged organization mutations.
// It only ever exists inside proposals_execute, direct entrypoint calls pass
// nil and fail the authorization check.
type execGrant struct {
	daoID      uint64
	proposalID uint64
}
