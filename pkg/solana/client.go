package solana

// BlockhashSource provides recent blockhashes for new transactions.
//
// Production implementations are typically backed by an RPC node's
// getLatestBlockhash. Offline signing flows and tests can hand out a
// fixed value.
type BlockhashSource interface {
	GetLatestBlockhash() (Blockhash, error)
}

// Submitter forwards signed transactions to the network.
//
// Transports exchange transactions in their base64 form, which
// Transaction.ToBase64 and TransactionFromBase64 produce and consume.
type Submitter interface {
	SubmitTransaction(Transaction) (Signature, error)
}
