//go:build !wasm

package sdk

import (
	"strconv"
)

// In-memory stand-in for the wasm host so the contract package tests run as
// plain `go test`. State, balances and env are process-global, mirroring the
// single-threaded execution model of the chain. Tests drive one call at a
// time: MockBeginTx snapshots state, a failing call panics with *RevertError
// and the harness restores the snapshot, reproducing the host's
// revert-undoes-everything semantics.

type mockContractHandler func(method string, payload string, value int64) (string, error)

var (
	mockState     = map[string]string{}
	mockBalances  = map[string]int64{}
	mockSender    = "hive:test_sender"
	mockTimestamp = int64(1735689600)
	mockIntents   []Intent
	mockTxCounter = uint64(0)
	mockLogs      []string
	mockContracts = map[string]mockContractHandler{}

	snapState    map[string]string
	snapBalances map[string]int64
)

const mockContractId = "contract:daoforge"

func balanceKey(account string, asset Asset) string {
	return asset.String() + "/" + account
}

// --- host functions ---

// Log records the line so tests can assert on emitted events.
func Log(s string) {
	mockLogs = append(mockLogs, s)
}

func StateSetObject(key string, value string) {
	mockState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(mockState, key)
}

func GetEnv() Env {
	return Env{
		ContractId: mockContractId,
		TxId:       "tx-" + strconv.FormatUint(mockTxCounter, 10),
		BlockId:    "block-mock",
		Timestamp:  strconv.FormatInt(mockTimestamp, 10),
		Sender: Sender{
			Address:              Address(mockSender),
			RequiredAuths:        []Address{Address(mockSender)},
			RequiredPostingAuths: []Address{},
		},
		Caller:  Caller{Address: Address(mockSender)},
		Payer:   mockSender,
		Intents: mockIntents,
	}
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "tx.id":
		val = "tx-" + strconv.FormatUint(mockTxCounter, 10)
	case "block.timestamp":
		val = strconv.FormatInt(mockTimestamp, 10)
	case "contract.id":
		val = mockContractId
	default:
		return nil
	}
	return &val
}

func GetBalance(address Address, asset Asset) int64 {
	return mockBalances[balanceKey(address.String(), asset)]
}

// HiveDraw moves funds from the current sender into the contract account.
func HiveDraw(amount int64, asset Asset) {
	from := balanceKey(mockSender, asset)
	if mockBalances[from] < amount {
		Revert("draw exceeds sender balance", "draw_failed")
	}
	mockBalances[from] -= amount
	mockBalances[balanceKey(mockContractId, asset)] += amount
}

// HiveTransfer moves funds from the contract account to the given address.
func HiveTransfer(to Address, amount int64, asset Asset) {
	from := balanceKey(mockContractId, asset)
	if mockBalances[from] < amount {
		Revert("transfer exceeds contract balance", "transfer_failed")
	}
	mockBalances[from] -= amount
	mockBalances[balanceKey(to.String(), asset)] += amount
}

func Abort(msg string) {
	panic(&RevertError{Msg: msg, Symbol: "abort"})
}

func Revert(msg string, symbol string) {
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

// ContractCall dispatches to a handler registered via MockRegisterContract.
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) (*string, error) {
	handler, ok := mockContracts[contractId]
	if !ok {
		return nil, &RevertError{Msg: "contract not found: " + contractId, Symbol: "call_failed"}
	}
	res, err := handler(method, payload, 0)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// --- test controls ---

// MockReset wipes all host state between tests. The tx counter keeps counting
// up so env caches keyed on tx.id never see a recycled id.
func MockReset() {
	mockState = map[string]string{}
	mockBalances = map[string]int64{}
	mockSender = "hive:test_sender"
	mockTimestamp = 1735689600
	mockIntents = nil
	mockLogs = nil
	mockContracts = map[string]mockContractHandler{}
	snapState = nil
	snapBalances = nil
}

func MockSetSender(addr string) {
	mockSender = addr
}

func MockSetTimestamp(unix int64) {
	mockTimestamp = unix
}

func MockSetIntents(intents []Intent) {
	mockIntents = intents
}

// MockDeposit seeds an account balance, like funding a wallet before a test.
func MockDeposit(account string, amount int64, asset Asset) {
	mockBalances[balanceKey(account, asset)] += amount
}

func MockBalanceOf(account string, asset Asset) int64 {
	return mockBalances[balanceKey(account, asset)]
}

func MockContractBalance(asset Asset) int64 {
	return mockBalances[balanceKey(mockContractId, asset)]
}

// MockRegisterContract installs a callee for ContractCall dispatch.
func MockRegisterContract(id string, handler func(method string, payload string, value int64) (string, error)) {
	mockContracts[id] = handler
}

// MockBeginTx starts a fresh transaction: new tx id, state+balance snapshot.
func MockBeginTx() {
	mockTxCounter++
	snapState = make(map[string]string, len(mockState))
	for k, v := range mockState {
		snapState[k] = v
	}
	snapBalances = make(map[string]int64, len(mockBalances))
	for k, v := range mockBalances {
		snapBalances[k] = v
	}
}

// MockRollbackTx restores the snapshot taken at MockBeginTx.
func MockRollbackTx() {
	if snapState == nil {
		return
	}
	mockState = snapState
	mockBalances = snapBalances
	snapState = nil
	snapBalances = nil
}

// MockLogs returns every line emitted via Log since the last reset.
func MockLogs() []string {
	return mockLogs
}
