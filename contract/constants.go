package main

import "daoforge/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the supported asset types for treasury deposits and withdrawals.
var validAssets = []string{
	sdk.AssetHbd.String(),
	sdk.AssetHive.String(),
	sdk.AssetHbdSavings.String(),
}

// -----------------------------------------------------------------------------
// Revert Symbols
// -----------------------------------------------------------------------------

const (
	symUnauthorized       = "unauthorized"
	symAlreadyVoted       = "already_voted"
	symVotingClosed       = "voting_closed"
	symNotApproved        = "not_approved"
	symAlreadyExecuted    = "already_executed"
	symInsufficientFunds  = "insufficient_balance"
	symBatchFailed        = "batch_execution_failed"
	symInvalidPayload     = "invalid_payload"
	symNotFound           = "not_found"
	symBadDuration        = "bad_duration"
	symAlreadyInitialized = "already_initialized"
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxTitleLength limits the size of organization names and proposal titles.
	MaxTitleLength = 500
	// MaxDescriptionLength limits the size of proposal descriptions.
	MaxDescriptionLength = 5000
	// MaxActionsPerProposal caps the action batch so execution stays bounded.
	MaxActionsPerProposal = 32
)

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	FallbackTokenName          = "Governance Units"
	FallbackTokenSymbol        = "GOV"
	FallbackMinimumRequirement = 1
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// DaosCount holds an integer counter for organizations (used for generating IDs).
	DaosCount = "count:dao"
	// ProposalsCount holds an integer counter for proposals (used for generating IDs).
	ProposalsCount = "count:props"
	// TokensCount holds an integer counter for governance tokens (used for generating IDs).
	TokensCount = "count:token"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kDaoMeta stores serialized organization records.
	kDaoMeta byte = 0x01
	// kDaoMember houses encoded member structs (organization scoped).
	kDaoMember byte = 0x02
	// kDaoTreasury tracks flat native deposits per depositor.
	kDaoTreasury byte = 0x03
	// kDaoAssetBalance aggregates asset deposits per depositor+asset.
	kDaoAssetBalance byte = 0x04
	// kDaoDepositLog stores individual asset deposit entries: {amount}_{timestamp}
	kDaoDepositLog byte = 0x05
	// kDaoDepositCount counts deposit log entries per depositor+asset.
	kDaoDepositCount byte = 0x06
	// kDaoAssetTotal tracks the organization wide balance per asset.
	kDaoAssetTotal byte = 0x07
	// kProposalMeta contains encoded Proposal records.
	kProposalMeta byte = 0x10
	// kProposalAction stores Action entries indexed by proposal+action index.
	kProposalAction byte = 0x11
	// kVoteReceipt marks one receipt per proposal+voter to block double votes.
	kVoteReceipt byte = 0x20
	// kTokenMeta stores serialized governance token records.
	kTokenMeta byte = 0x30
	// kTokenAccount houses per-account balance and delegation state.
	kTokenAccount byte = 0x31
	// kTokenCheckpoint stores historical voting unit snapshots: {units}_{timestamp}
	kTokenCheckpoint byte = 0x32
)

// -----------------------------------------------------------------------------
// Voting Modes
// -----------------------------------------------------------------------------

const (
	ModeMemberCount   VotingMode = 0
	ModeTokenWeighted VotingMode = 1
)

// -----------------------------------------------------------------------------
// Vote Choices
// -----------------------------------------------------------------------------

const (
	VoteUnspecified VoteChoice = 0
	VoteYes         VoteChoice = 1
	VoteNo          VoteChoice = 2
	VoteAbstain     VoteChoice = 3
)
