package main

import (
	"strconv"

	"daoforge/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Action batch executor
//
// Actions targeting a dao:<id> handle dispatch into the privileged management
// methods under the grant minted by proposals_execute. Anything else goes out
// via contract call. One failure reverts the entire transaction, so a batch
// is always all or nothing.
////////////////////////////////////////////////////////////////////////////////

// failBatch is the single place every action failure funnels through.
func failBatch(idx int, reason string) {
	sdk.Revert("action "+UInt64ToString(uint64(idx))+" failed: "+reason, symBatchFailed)
}

// dispatchManaged routes one organization targeted action to its method.
func dispatchManaged(grant *execGrant, daoID uint64, ap *ActionPayload) error {
	switch ap.Method {
	case "update_settings":
		params := &UpdateSettingsParams{}
		if err := decodeActionParams(ap.Params, params); err != nil {
			return err
		}
		return updateSettings(grant, daoID, params)
	case "add_members":
		params := &AddMembersParams{}
		if err := decodeActionParams(ap.Params, params); err != nil {
			return err
		}
		return addMembers(grant, daoID, params)
	case "remove_members":
		params := &RemoveMembersParams{}
		if err := decodeActionParams(ap.Params, params); err != nil {
			return err
		}
		return removeMembers(grant, daoID, params)
	case "update_proposal_policy":
		params := &UpdatePolicyParams{}
		if err := decodeActionParams(ap.Params, params); err != nil {
			return err
		}
		return updatePolicy(grant, daoID, params)
	case "withdraw_funds":
		params := &WithdrawFundsParams{}
		if err := decodeActionParams(ap.Params, params); err != nil {
			return err
		}
		return withdrawFunds(grant, daoID, params)
	case "withdraw_tokens":
		params := &WithdrawTokensParams{}
		if err := decodeActionParams(ap.Params, params); err != nil {
			return err
		}
		return withdrawTokens(grant, daoID, params)
	}
	return errUnknownMethod(ap.Method)
}

type unknownMethodError string

func (e unknownMethodError) Error() string { return "unknown method " + string(e) }

func errUnknownMethod(method string) error { return unknownMethodError(method) }

// runActions walks the batch in order, collecting one result line per action.
func runActions(grant *execGrant, actions []Action) []string {
	results := make([]string, 0, len(actions))
	for i, action := range actions {
		if daoID, ok := parseDaoHandle(action.Target); ok {
			ap := &ActionPayload{}
			if err := decodeActionParams([]byte(action.Payload), ap); err != nil {
				failBatch(i, "malformed payload")
			}
			if err := dispatchManaged(grant, daoID, ap); err != nil {
				failBatch(i, err.Error())
			}
			results = append(results, "ok:"+ap.Method)
			continue
		}

		// external contract call, forwarding the action's value as a
		// transfer.allow intent so the callee can draw it
		var opts *sdk.ContractCallOptions
		if action.Value > 0 {
			opts = &sdk.ContractCallOptions{
				Intents: []sdk.Intent{{
					Type: "transfer.allow",
					Args: map[string]string{
						"limit": strconv.FormatInt(int64(action.Value), 10),
						"token": sdk.AssetHbd.String(),
					},
				}},
			}
		}
		res, err := sdk.ContractCall(action.Target.String(), "execute", action.Payload, opts)
		if err != nil {
			failBatch(i, err.Error())
		}
		if res != nil {
			results = append(results, *res)
		} else {
			results = append(results, "ok")
		}
	}
	return results
}
