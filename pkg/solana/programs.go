package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
)

// SystemProgram is the address of the system program.
//
// https://explorer.solana.com/address/11111111111111111111111111111111
var SystemProgram ed25519.PublicKey

// TokenProgram is the address of the SPL token program.
//
// https://explorer.solana.com/address/TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA
var TokenProgram ed25519.PublicKey

// Token2022Program is the address of the SPL token-2022 program.
//
// https://explorer.solana.com/address/TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb
var Token2022Program ed25519.PublicKey

// AssociatedTokenProgram is the address of the SPL associated token
// account program.
//
// https://explorer.solana.com/address/ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL
var AssociatedTokenProgram ed25519.PublicKey

// MemoProgram is the address of the V2 memo program.
//
// https://explorer.solana.com/address/MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr
var MemoProgram ed25519.PublicKey

// MemoV1Program is the address of the legacy V1 memo program.
//
// https://explorer.solana.com/address/Memo1UhkJRfHyvLMcVucJwxXeuD728EqVDDwQDxFMNo
var MemoV1Program ed25519.PublicKey

// ComputeBudgetProgram is the address of the compute budget program.
//
// https://explorer.solana.com/address/ComputeBudget111111111111111111111111111111
var ComputeBudgetProgram ed25519.PublicKey

// RentSysVar points to the system variable "Rent"
//
// Source: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/sysvar/rent.rs#L11
var RentSysVar ed25519.PublicKey

// RecentBlockhashesSysVar points to the system variable "Recent Blockhashes"
//
// Source: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/sysvar/recent_blockhashes.rs#L12-L15
var RecentBlockhashesSysVar ed25519.PublicKey

// ClockSysVar points to the system variable "Clock"
//
// Source: https://github.com/solana-labs/solana/blob/f02a78d8fff2dd7297dc6ce6eb5a68a3002f5359/sdk/src/sysvar/clock.rs#L11
var ClockSysVar ed25519.PublicKey

func init() {
	var err error

	SystemProgram, err = base58.Decode("11111111111111111111111111111111")
	if err != nil {
		panic(err)
	}

	TokenProgram, err = base58.Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	if err != nil {
		panic(err)
	}

	Token2022Program, err = base58.Decode("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")
	if err != nil {
		panic(err)
	}

	AssociatedTokenProgram, err = base58.Decode("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	if err != nil {
		panic(err)
	}

	MemoProgram, err = base58.Decode("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
	if err != nil {
		panic(err)
	}

	MemoV1Program, err = base58.Decode("Memo1UhkJRfHyvLMcVucJwxXeuD728EqVDDwQDxFMNo")
	if err != nil {
		panic(err)
	}

	ComputeBudgetProgram, err = base58.Decode("ComputeBudget111111111111111111111111111111")
	if err != nil {
		panic(err)
	}

	RentSysVar, err = base58.Decode("SysvarRent111111111111111111111111111111111")
	if err != nil {
		panic(err)
	}

	RecentBlockhashesSysVar, err = base58.Decode("SysvarRecentB1ockHashes11111111111111111111")
	if err != nil {
		panic(err)
	}

	ClockSysVar, err = base58.Decode("SysvarC1ock11111111111111111111111111111111")
	if err != nil {
		panic(err)
	}
}
