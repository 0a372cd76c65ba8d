//go:build wasm

package main

// The host calls entrypoints by their exported wasm name. The gc toolchain
// only accepts go:wasmexport when targeting wasm, so these shims are build
// tagged and stay out of test builds.

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return contractInit(payload) }

//go:wasmexport dao_create
func DaoCreate(payload *string) *string { return daoCreate(payload) }

//go:wasmexport dao_get
func DaoGet(payload *string) *string { return daoGet(payload) }

//go:wasmexport dao_list
func DaoList(payload *string) *string { return daoList(payload) }

//go:wasmexport dao_is_member
func DaoIsMember(payload *string) *string { return daoIsMember(payload) }

//go:wasmexport dao_deposit_funds
func DaoDepositFunds(payload *string) *string { return daoDepositFunds(payload) }

//go:wasmexport dao_deposit_tokens
func DaoDepositTokens(payload *string) *string { return daoDepositTokens(payload) }

//go:wasmexport dao_treasury_balance
func DaoTreasuryBalance(payload *string) *string { return daoTreasuryBalance(payload) }

//go:wasmexport dao_token_balance
func DaoTokenBalance(payload *string) *string { return daoTokenBalance(payload) }

//go:wasmexport dao_token_deposited
func DaoTokenDeposited(payload *string) *string { return daoTokenDeposited(payload) }

//go:wasmexport dao_update_settings
func DaoUpdateSettings(payload *string) *string { return daoUpdateSettings(payload) }

//go:wasmexport dao_add_members
func DaoAddMembers(payload *string) *string { return daoAddMembers(payload) }

//go:wasmexport dao_remove_members
func DaoRemoveMembers(payload *string) *string { return daoRemoveMembers(payload) }

//go:wasmexport dao_update_proposal_policy
func DaoUpdateProposalPolicy(payload *string) *string { return daoUpdatePolicy(payload) }

//go:wasmexport dao_withdraw_funds
func DaoWithdrawFunds(payload *string) *string { return daoWithdrawFunds(payload) }

//go:wasmexport dao_withdraw_tokens
func DaoWithdrawTokens(payload *string) *string { return daoWithdrawTokens(payload) }

//go:wasmexport proposals_create
func ProposalsCreate(payload *string) *string { return proposalsCreate(payload) }

//go:wasmexport proposals_vote
func ProposalsVote(payload *string) *string { return proposalsVote(payload) }

//go:wasmexport proposals_execute
func ProposalsExecute(payload *string) *string { return proposalsExecute(payload) }

//go:wasmexport proposals_get
func ProposalsGet(payload *string) *string { return proposalsGet(payload) }

//go:wasmexport proposals_for_dao
func ProposalsForDao(payload *string) *string { return proposalsForDao(payload) }

//go:wasmexport proposals_early_execution
func ProposalsEarlyExecution(payload *string) *string { return proposalsEarlyExecution(payload) }

//go:wasmexport token_delegate
func TokenDelegate(payload *string) *string { return tokenDelegate(payload) }

//go:wasmexport token_transfer
func TokenTransfer(payload *string) *string { return tokenTransfer(payload) }

//go:wasmexport token_get_votes
func TokenGetVotes(payload *string) *string { return tokenGetVotes(payload) }

//go:wasmexport token_balance
func TokenBalance(payload *string) *string { return tokenBalance(payload) }
