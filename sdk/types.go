package sdk

// Intent is a signed permission attached to the transaction, e.g. transfer.allow.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Caller struct {
	Address Address `json:"id"`
}

// Env is the per-call execution environment handed over by the host.
type Env struct {
	ContractId  string
	TxId        string
	Index       int64
	OpIndex     int64
	BlockId     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Caller      Caller
	Payer       string
	Intents     []Intent
}

type ContractCallOptions struct {
	Intents []Intent `json:"intents,omitempty"`
}

// RevertError carries the revert symbol and message of a failed call.
// On chain a revert traps the whole transaction; the mock host panics with
// this type instead so tests can roll back state and inspect the symbol.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string {
	return e.Symbol + ": " + e.Msg
}
