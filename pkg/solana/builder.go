package solana

import (
	"crypto/ed25519"
)

// TransactionBuilder incrementally assembles the pieces of a
// transaction before compiling them.
type TransactionBuilder struct {
	payer        ed25519.PublicKey
	blockhash    Blockhash
	instructions []Instruction
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{}
}

// SetFeePayer sets the account that pays the transaction fee. The fee
// payer is always the first account and the first required signer.
func (b *TransactionBuilder) SetFeePayer(payer ed25519.PublicKey) *TransactionBuilder {
	b.payer = payer
	return b
}

// SetRecentBlockhash sets the blockhash the transaction is valid
// against.
func (b *TransactionBuilder) SetRecentBlockhash(bh Blockhash) *TransactionBuilder {
	b.blockhash = bh
	return b
}

// AddInstruction appends instructions in execution order.
func (b *TransactionBuilder) AddInstruction(instructions ...Instruction) *TransactionBuilder {
	b.instructions = append(b.instructions, instructions...)
	return b
}

// Build compiles the accumulated pieces into an unsigned transaction.
func (b *TransactionBuilder) Build() (Transaction, error) {
	return CompileTransaction(b.payer, b.blockhash, b.instructions...)
}
