// Package tradelog implements a local, file-backed ledger for stock trades.
//
// All state lives in a single data directory owned by a Store: a registry of
// stocks (stocks.jsonl) and an append-only ledger of trades (trades.jsonl).
// Both files are JSONL, human-readable and version-controllable. A Store is
// bound to its directory by New (initialize) or Open (load), and exposes
// read-only views on the loaded state: Check validates it, Trades filters
// it, Port folds it into net positions per stock.
//
// The package never logs and never prints. Every operation returns a value
// or an error; presentation belongs to the cmd package.
package tradelog
