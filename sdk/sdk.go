//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("hello dao")
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func getBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("no stake")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller with a short symbol.
// The host undoes every state write of the current call.
// Example payload: sdk.Revert("bad input", "invalid_payload")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	if v, ok := envMap["contract.id"].(string); ok {
		env.ContractId = v
	}
	if v, ok := envMap["tx.id"].(string); ok {
		env.TxId = v
	}
	if v, ok := envMap["block.id"].(string); ok {
		env.BlockId = v
	}
	if v, ok := envMap["block.timestamp"].(string); ok {
		env.Timestamp = v
	}
	requiredAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range raw {
			requiredAuths = append(requiredAuths, Address(auth.(string)))
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if raw, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range raw {
			requiredPostingAuths = append(requiredPostingAuths, Address(auth.(string)))
		}
	}
	sender := ""
	if v, ok := envMap["msg.sender"].(string); ok {
		sender = v
	}
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
	}
	if raw, ok := envMap["intents"]; ok {
		if b, err := json.Marshal(raw); err == nil {
			json.Unmarshal(b, &env.Intents)
		}
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the hive balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHbd)
func HiveTransfer(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}

// ContractCall performs a synchronous call into another contract with optional intents.
// The host traps the transaction if the callee fails, so the error return is
// always nil on chain; it exists so the mock host can surface callee failures.
// Example payload: sdk.ContractCall("contract:demo", "ping", "{}", nil)
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) (*string, error) {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(&options)
		if err != nil {
			Revert("could not serialize options", "sdk_error")
		}
		optStr = string(optByte)
	}
	return contractCall(&contractId, &method, &payload, &optStr), nil
}
