// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fees

// TxOrigin identifies where a transaction in a block receipt came from.
type TxOrigin byte

const (
	// OriginStacks is a regular, fee-paying transaction submitted on the
	// Stacks chain.
	OriginStacks TxOrigin = iota

	// OriginBurn is a transaction materialized from a burnchain operation.
	// Burn-origin transactions pay no Stacks fee.
	OriginBurn
)

// PayloadKind is a coarse classification of a transaction's payload. The
// estimator only needs to know how a transaction consumes block resources,
// not what it actually does.
type PayloadKind byte

const (
	// PayloadTokenTransfer is a pure STX transfer. It carries an empty
	// execution cost and only occupies block space.
	PayloadTokenTransfer PayloadKind = iota

	// PayloadContractCall is an invocation of a published contract.
	PayloadContractCall

	// PayloadSmartContract publishes a new contract.
	PayloadSmartContract

	// PayloadPoisonMicroblock reports a microblock stream fork.
	PayloadPoisonMicroblock

	// PayloadCoinbase is the block reward transaction.
	PayloadCoinbase
)

// TxReceipt is the confirmed outcome of a single transaction, as reported
// by block processing. The estimator treats receipts as read-only input.
type TxReceipt struct {
	// Origin classifies the source chain of the transaction.
	Origin TxOrigin

	// Payload is the kind tag of the transaction payload.
	Payload PayloadKind

	// Fee is the total fee paid, in microstacks.
	Fee uint64

	// TxLen is the serialized transaction length in bytes.
	TxLen uint64

	// ExecutionCost is the resource usage the transaction was metered at
	// during execution. Empty for token transfers and coinbases.
	ExecutionCost ExecutionCost
}
