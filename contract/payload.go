package main

import (
	tinyjson "github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"

	"daoforge/sdk"
)

// Call payloads and results are JSON, decoded with tinyjson (no reflection, so
// the contract stays tinygo friendly). The codecs live in payload_tinyjson.go.

// decodePayload unwraps an entrypoint payload into args, reverting on garbage.
func decodePayload(payload *string, out tinyjson.Unmarshaler) {
	if payload == nil || *payload == "" {
		sdk.Revert("payload missing", symInvalidPayload)
	}
	l := jlexer.Lexer{Data: []byte(*payload)}
	out.UnmarshalTinyJSON(&l)
	if err := l.Error(); err != nil {
		sdk.Revert("malformed payload: "+err.Error(), symInvalidPayload)
	}
}

// encodeResult renders a result struct back to the caller.
func encodeResult(v tinyjson.Marshaler) *string {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("result encoding failed")
	}
	s := string(b)
	return &s
}

// -----------------------------------------------------------------------------
// Factory payloads
// -----------------------------------------------------------------------------

// MemberInput seeds one seat (and its token units) at organization creation.
//
//tinyjson:json
type MemberInput struct {
	Address string `json:"address"`
	Deposit int64  `json:"deposit"`
}

// CreateDaoArgs is the dao_create payload. TokenID references an existing
// governance token; zero means mint a fresh one (unless mode 0, which needs
// no token at all).
//
//tinyjson:json
type CreateDaoArgs struct {
	Name               string        `json:"name"`
	Data               string        `json:"data"`
	Mode               uint8         `json:"mode"`
	TokenID            uint64        `json:"tokenId"`
	TokenName          string        `json:"tokenName"`
	TokenSymbol        string        `json:"tokenSymbol"`
	MinimumRequirement int64         `json:"minimumRequirement"`
	Members            []MemberInput `json:"members"`
	TokenGated         bool          `json:"tokenGated"`
	MinimumHolding     int64         `json:"minimumHolding"`
}

//tinyjson:json
type DaoCreatedResult struct {
	DaoID   uint64 `json:"daoId"`
	TokenID uint64 `json:"tokenId"`
}

// -----------------------------------------------------------------------------
// Proposal payloads
// -----------------------------------------------------------------------------

// ActionInput is one batch entry of a proposal. Payload is opaque JSON
// {method, params} that only the target interprets.
//
//tinyjson:json
type ActionInput struct {
	Target  string `json:"target"`
	Value   int64  `json:"value"`
	Payload string `json:"payload"`
}

//tinyjson:json
type CreateProposalArgs struct {
	DaoID       uint64        `json:"daoId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Mode        uint8         `json:"mode"`
	StartTime   int64         `json:"startTime"`
	Duration    int64         `json:"duration"`
	ActionID    uint64        `json:"actionId"`
	Actions     []ActionInput `json:"actions"`
}

//tinyjson:json
type ProposalCreatedResult struct {
	ProposalID uint64 `json:"proposalId"`
}

//tinyjson:json
type VoteArgs struct {
	ProposalID uint64 `json:"proposalId"`
	Choice     uint8  `json:"choice"`
}

//tinyjson:json
type ExecuteArgs struct {
	ProposalID uint64 `json:"proposalId"`
}

//tinyjson:json
type ExecuteResult struct {
	Results []string `json:"results"`
}

// -----------------------------------------------------------------------------
// Treasury payloads
// -----------------------------------------------------------------------------

//tinyjson:json
type DepositFundsArgs struct {
	DaoID  uint64 `json:"daoId"`
	Amount int64  `json:"amount"`
}

//tinyjson:json
type DepositTokensArgs struct {
	DaoID  uint64 `json:"daoId"`
	Amount int64  `json:"amount"`
	Asset  string `json:"asset"`
}

// -----------------------------------------------------------------------------
// Token payloads
// -----------------------------------------------------------------------------

//tinyjson:json
type DelegateArgs struct {
	TokenID uint64 `json:"tokenId"`
	To      string `json:"to"`
}

//tinyjson:json
type TransferArgs struct {
	TokenID uint64 `json:"tokenId"`
	To      string `json:"to"`
	Amount  int64  `json:"amount"`
}

//tinyjson:json
type GetVotesArgs struct {
	TokenID uint64 `json:"tokenId"`
	Account string `json:"account"`
	At      int64  `json:"at"`
}

//tinyjson:json
type TokenBalanceArgs struct {
	TokenID uint64 `json:"tokenId"`
	Account string `json:"account"`
}

// -----------------------------------------------------------------------------
// Query payloads
// -----------------------------------------------------------------------------

//tinyjson:json
type DaoQueryArgs struct {
	DaoID uint64 `json:"daoId"`
}

//tinyjson:json
type IsMemberArgs struct {
	DaoID   uint64 `json:"daoId"`
	Address string `json:"address"`
}

//tinyjson:json
type TreasuryBalanceArgs struct {
	DaoID   uint64 `json:"daoId"`
	Address string `json:"address"`
}

//tinyjson:json
type DaoTokenBalanceArgs struct {
	DaoID   uint64 `json:"daoId"`
	Address string `json:"address"`
	Asset   string `json:"asset"`
}

//tinyjson:json
type TokenDepositedArgs struct {
	DaoID   uint64 `json:"daoId"`
	Address string `json:"address"`
	Asset   string `json:"asset"`
	Index   uint64 `json:"index"`
}

//tinyjson:json
type ProposalQueryArgs struct {
	ProposalID uint64 `json:"proposalId"`
}

// -----------------------------------------------------------------------------
// Generic results
// -----------------------------------------------------------------------------

//tinyjson:json
type AmountResult struct {
	Amount int64 `json:"amount"`
}

//tinyjson:json
type BoolResult struct {
	Value bool `json:"value"`
}

//tinyjson:json
type DepositEntryResult struct {
	Amount    int64 `json:"amount"`
	Timestamp int64 `json:"timestamp"`
}

//tinyjson:json
type IDListResult struct {
	IDs []uint64 `json:"ids"`
}

// DaoView is the dao_get projection.
//
//tinyjson:json
type DaoView struct {
	DaoID              uint64 `json:"daoId"`
	Name               string `json:"name"`
	Data               string `json:"data"`
	Mode               uint8  `json:"mode"`
	TokenID            uint64 `json:"tokenId"`
	MinimumRequirement int64  `json:"minimumRequirement"`
	TokenGated         bool   `json:"tokenGated"`
	MinimumHolding     int64  `json:"minimumHolding"`
	MemberCount        uint64 `json:"memberCount"`
	Creator            string `json:"creator"`
	CreatedAt          int64  `json:"createdAt"`
}

// ProposalView is the proposals_get projection including the derived
// early execution answer.
//
//tinyjson:json
type ProposalView struct {
	ProposalID     uint64 `json:"proposalId"`
	DaoID          uint64 `json:"daoId"`
	Creator        string `json:"creator"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Mode           uint8  `json:"mode"`
	StartTime      int64  `json:"startTime"`
	EndTime        int64  `json:"endTime"`
	SnapshotTotal  int64  `json:"snapshotTotal"`
	YesWeight      int64  `json:"yesWeight"`
	NoWeight       int64  `json:"noWeight"`
	AbstainWeight  int64  `json:"abstainWeight"`
	VoterCount     uint64 `json:"voterCount"`
	Approved       bool   `json:"approved"`
	Executed       bool   `json:"executed"`
	EarlyExecution bool   `json:"earlyExecution"`
}

// -----------------------------------------------------------------------------
// Action payloads (decoded by the executor's privileged dispatch)
// -----------------------------------------------------------------------------

// ActionPayload is the outer {method, params} envelope of an action.
//
//tinyjson:json
type ActionPayload struct {
	Method string              `json:"method"`
	Params tinyjson.RawMessage `json:"params"`
}

//tinyjson:json
type UpdateSettingsParams struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

//tinyjson:json
type AddMembersParams struct {
	Members []MemberInput `json:"members"`
}

//tinyjson:json
type RemoveMembersParams struct {
	Addresses []string `json:"addresses"`
}

//tinyjson:json
type UpdatePolicyParams struct {
	TokenGated     bool  `json:"tokenGated"`
	MinimumHolding int64 `json:"minimumHolding"`
}

//tinyjson:json
type WithdrawFundsParams struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

//tinyjson:json
type WithdrawTokensParams struct {
	Asset  string `json:"asset"`
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// decodeActionParams unwraps the params blob of one action, surfacing a plain
// error because the executor converts failures into a batch revert.
func decodeActionParams(params tinyjson.RawMessage, out tinyjson.Unmarshaler) error {
	l := jlexer.Lexer{Data: []byte(params)}
	out.UnmarshalTinyJSON(&l)
	return l.Error()
}
