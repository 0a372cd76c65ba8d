package main

import (
	"fmt"
	"strconv"

	"daoforge/sdk"
)

// emitInitEvent leaves a one time marker with the deployment owner.
func emitInitEvent(owner string) {
	sdk.Log(fmt.Sprintf("init|by:%s", owner))
}

// emitDaoCreatedEvent gives explorers a neat ping without scanning full storage diffs.
func emitDaoCreatedEvent(daoID uint64, createdByAddress string) {
	sdk.Log(fmt.Sprintf(
		"dc|id:%d|by:%s",
		daoID,
		createdByAddress,
	))
}

// emitTokenCreatedEvent announces a fresh governance token plus its supply.
func emitTokenCreatedEvent(tokenID uint64, symbol string, supply Amount) {
	sdk.Log(fmt.Sprintf(
		"tc|id:%d|sym:%s|sup:%d",
		tokenID,
		symbol,
		supply,
	))
}

// emitProposalCreatedEvent keeps observers updated with a short pc line for every new idea.
func emitProposalCreatedEvent(proposalID uint64, daoID uint64, memberAddress string) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|dao:%d|by:%s",
		proposalID,
		daoID,
		memberAddress,
	))
}

// emitVoteCast includes the raw choice plus weight so tallies can be replayed from logs only.
func emitVoteCast(proposalID uint64, voter string, choice VoteChoice, weight Amount) {
	sdk.Log(fmt.Sprintf(
		"v|id:%d|by:%s|c:%d|w:%d",
		proposalID,
		voter,
		choice,
		weight,
	))
}

// emitProposalApprovedEvent signals the yes side crossed the bar.
func emitProposalApprovedEvent(proposalID uint64) {
	sdk.Log(fmt.Sprintf("pa|id:%d", proposalID))
}

// emitProposalExecutedEvent logs how many actions ran so runners can reconcile.
func emitProposalExecutedEvent(proposalID uint64, actionCount int) {
	sdk.Log(fmt.Sprintf(
		"px|id:%d|n:%d",
		proposalID,
		actionCount,
	))
}

// emitFundsDeposited tells indexing bots about treasury inflows in a single terse line.
func emitFundsDeposited(daoID uint64, byAddress string, amount Amount, asset string) {
	sdk.Log(fmt.Sprintf(
		"fd|id:%d|by:%s|am:%d|as:%s",
		daoID,
		byAddress,
		amount,
		asset,
	))
}

// emitFundsWithdrawn mirrors the deposit log for outflows.
func emitFundsWithdrawn(daoID uint64, toAddress string, amount Amount, asset string) {
	sdk.Log(fmt.Sprintf(
		"fw|id:%d|to:%s|am:%d|as:%s",
		daoID,
		toAddress,
		amount,
		asset,
	))
}

// emitMembersChanged notes seat additions/removals with the op tag (add/rm).
func emitMembersChanged(daoID uint64, op string, count int) {
	sdk.Log(fmt.Sprintf(
		"mu|id:%d|op:%s|n:%d",
		daoID,
		op,
		count,
	))
}

// emitSettingsUpdated spells out which organization got renamed/retagged.
func emitSettingsUpdated(daoID uint64, name string) {
	sdk.Log(fmt.Sprintf(
		"su|id:%d|name:%s",
		daoID,
		name,
	))
}

// emitPolicyUpdated tracks proposal gate flips so auditors can follow along.
func emitPolicyUpdated(daoID uint64, tokenGated bool, minimumHolding Amount) {
	sdk.Log(fmt.Sprintf(
		"pu|id:%d|gated:%s|min:%d",
		daoID,
		strconv.FormatBool(tokenGated),
		minimumHolding,
	))
}

// emitDelegateEvent records voting unit moves between holders.
func emitDelegateEvent(tokenID uint64, from string, to string) {
	sdk.Log(fmt.Sprintf(
		"td|id:%d|by:%s|to:%s",
		tokenID,
		from,
		to,
	))
}

// emitTokenTransferEvent mirrors the classic transfer log line.
func emitTokenTransferEvent(tokenID uint64, from string, to string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"tt|id:%d|from:%s|to:%s|am:%d",
		tokenID,
		from,
		to,
		amount,
	))
}
