package main

// Governance contract for member run organizations on top of the host kv
// state. Organizations own a treasury, an optional fixed supply governance
// token with delegation checkpoints, and a proposal pipeline whose approved
// batches run atomically under an execution grant.
//
// The exported entrypoints live in exports.go (wasm builds only); every
// entrypoint has an untagged implementation in this package so the test suite
// calls straight into them.

// main is required for the wasm target, execution happens via the exports.
func main() {}
