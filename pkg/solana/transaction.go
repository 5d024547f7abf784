package solana

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
)

const (
	// MaxTransactionSize taken from: https://github.com/solana-labs/solana/blob/39b3ac6a8d29e14faa1de73d8b46d390ad41797b/sdk/src/packet.rs#L9-L13
	MaxTransactionSize = 1232

	// maxAccountKeys bounds the account table, since compiled
	// instructions reference accounts by a single byte index.
	maxAccountKeys = 256
)

var (
	ErrNoFeePayer                  = errors.New("transaction has no fee payer")
	ErrNoRecentBlockhash           = errors.New("transaction has no recent blockhash")
	ErrNoInstructions              = errors.New("transaction has no instructions")
	ErrTooManyAccountKeys          = errors.New("transaction references too many account keys")
	ErrAccountNotFound             = errors.New("account not found")
	ErrNotEnoughSigners            = errors.New("not enough signers")
	ErrMissingSigner               = errors.New("missing signer")
	ErrSignatureVerificationFailed = errors.New("signature verification failed")
	ErrTransactionTooLarge         = errors.New("transaction too large")
)

type Signature [ed25519.SignatureSize]byte

type Blockhash [sha256.Size]byte

type Header struct {
	NumSignatures     byte
	NumReadonlySigned byte
	NumReadOnly       byte
}

type Message struct {
	Header          Header
	Accounts        []ed25519.PublicKey
	RecentBlockhash Blockhash
	Instructions    []CompiledInstruction
}

type Transaction struct {
	Signatures []Signature
	Message    Message
}

// NewTransaction compiles a set of instructions into a transaction paid
// for by payer.
//
// The returned transaction has no signatures. Slots for them are
// allocated on the first call to PartialSign or Sign, so an unsigned
// transaction marshals with a zero length signature list.
func NewTransaction(payer ed25519.PublicKey, instructions ...Instruction) (Transaction, error) {
	if len(payer) != ed25519.PublicKeySize {
		return Transaction{}, ErrNoFeePayer
	}
	if len(instructions) == 0 {
		return Transaction{}, ErrNoInstructions
	}

	accounts := []AccountMeta{
		{
			PublicKey:  payer,
			IsSigner:   true,
			IsWritable: true,
			isPayer:    true,
		},
	}

	// Extract all of the unique accounts from the instructions.
	for _, i := range instructions {
		accounts = append(accounts, AccountMeta{
			PublicKey: i.Program,
			isProgram: true,
		})
		accounts = append(accounts, i.Accounts...)
	}

	// Sort the account meta's based on:
	//   1. Payer is always the first account / signer.
	//   1. All signers are before non-signers.
	//   2. Writable accounts before read-only accounts.
	//
	// The sort is stable, so within a bucket accounts stay in the
	// order they were first referenced.
	accounts = filterUnique(accounts)
	sort.Stable(SortableAccountMeta(accounts))

	if len(accounts) > maxAccountKeys {
		return Transaction{}, ErrTooManyAccountKeys
	}

	var m Message
	for _, account := range accounts {
		m.Accounts = append(m.Accounts, account.PublicKey)

		if account.IsSigner {
			m.Header.NumSignatures++

			if !account.IsWritable {
				m.Header.NumReadonlySigned++
			}
		} else if !account.IsWritable && !account.isProgram {
			// Accounts appearing only as an invoked program id are not
			// tallied in the header.
			m.Header.NumReadOnly++
		}
	}

	// Generate the compiled instructions, which use indices instead
	// of raw account keys.
	for _, i := range instructions {
		programIndex := indexOf(m.Accounts, i.Program)
		if programIndex < 0 {
			return Transaction{}, errors.Wrapf(ErrAccountNotFound, "program %s", base58.Encode(i.Program))
		}

		c := CompiledInstruction{
			ProgramIndex: byte(programIndex),
			Data:         i.Data,
		}

		for _, a := range i.Accounts {
			accountIndex := indexOf(m.Accounts, a.PublicKey)
			if accountIndex < 0 {
				return Transaction{}, errors.Wrapf(ErrAccountNotFound, "account %s", base58.Encode(a.PublicKey))
			}

			c.Accounts = append(c.Accounts, byte(accountIndex))
		}

		m.Instructions = append(m.Instructions, c)
	}

	for i := range m.Accounts {
		if len(m.Accounts[i]) == 0 {
			m.Accounts[i] = make([]byte, ed25519.PublicKeySize)
		}
	}

	return Transaction{Message: m}, nil
}

// CompileTransaction compiles instructions into a transaction paid for
// by payer and valid against the provided recent blockhash. All inputs
// are required up front, with the zero blockhash treated as missing.
func CompileTransaction(payer ed25519.PublicKey, recent Blockhash, instructions ...Instruction) (Transaction, error) {
	if len(payer) != ed25519.PublicKeySize {
		return Transaction{}, ErrNoFeePayer
	}
	if recent == (Blockhash{}) {
		return Transaction{}, ErrNoRecentBlockhash
	}

	txn, err := NewTransaction(payer, instructions...)
	if err != nil {
		return Transaction{}, err
	}

	txn.Message.RecentBlockhash = recent

	return txn, nil
}

// Signature returns the transaction id, which is the first signature
// over the message. The zero value is returned if the transaction has
// not been signed.
func (t *Transaction) Signature() []byte {
	if len(t.Signatures) == 0 {
		return make([]byte, ed25519.SignatureSize)
	}

	return t.Signatures[0][:]
}

func (t *Transaction) String() string {
	var sb strings.Builder
	sb.WriteString("Signatures:\n")
	for i, s := range t.Signatures {
		sb.WriteString(fmt.Sprintf("  %d: %s\n", i, base58.Encode(s[:])))
	}
	sb.WriteString("Message:\n")
	sb.WriteString("  Header:\n")
	sb.WriteString(fmt.Sprintf("    NumSignatures: %d\n", t.Message.Header.NumSignatures))
	sb.WriteString(fmt.Sprintf("    NumReadOnly: %d\n", t.Message.Header.NumReadOnly))
	sb.WriteString(fmt.Sprintf("    NumReadOnlySigned: %d\n", t.Message.Header.NumReadonlySigned))
	sb.WriteString("  Accounts:\n")
	for i, a := range t.Message.Accounts {
		sb.WriteString(fmt.Sprintf("    %d: %s\n", i, base58.Encode(a)))
	}
	sb.WriteString(fmt.Sprintf("  Blockhash: %s\n", base58.Encode(t.Message.RecentBlockhash[:])))
	sb.WriteString("  Instructions:\n")
	for i := range t.Message.Instructions {
		sb.WriteString(fmt.Sprintf("    %d:\n", i))
		sb.WriteString(fmt.Sprintf("      ProgramIndex: %d\n", t.Message.Instructions[i].ProgramIndex))
		sb.WriteString(fmt.Sprintf("      Accounts: %v\n", t.Message.Instructions[i].Accounts))
		sb.WriteString(fmt.Sprintf("      Data: %v\n", t.Message.Instructions[i].Data))
	}
	return sb.String()
}

// SetBlockhash sets the recent blockhash the transaction is valid
// against. Changing the blockhash clears any previously collected
// signatures, since they signed a different message.
func (t *Transaction) SetBlockhash(bh Blockhash) {
	if bh == t.Message.RecentBlockhash {
		return
	}

	t.Message.RecentBlockhash = bh

	for i := range t.Signatures {
		t.Signatures[i] = Signature{}
	}
}

func filterUnique(accounts []AccountMeta) []AccountMeta {
	filtered := make([]AccountMeta, 0, len(accounts))

	for i := range accounts {
		for j := range filtered {
			// If we've already seen the account before, then we should check to
			// see if we should promote any of the permissions.
			if bytes.Equal(accounts[i].PublicKey, filtered[j].PublicKey) {
				if accounts[i].IsSigner {
					filtered[j].IsSigner = true
				}
				if accounts[i].IsWritable {
					filtered[j].IsWritable = true
				}
				if accounts[i].isPayer {
					filtered[j].isPayer = true
				}
				if !accounts[i].isProgram {
					// The account is used as more than a program id, so
					// it no longer qualifies as program only.
					filtered[j].isProgram = false
				}

				goto next
			}
		}

		filtered = append(filtered, accounts[i])
	next:
	}

	return filtered
}

func indexOf(slice []ed25519.PublicKey, item ed25519.PublicKey) int {
	for i, val := range slice {
		if bytes.Equal(val, item) {
			return i
		}
	}

	return -1
}
