package common

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/solana-sdk/pkg/solana"
)

func TestAccountWithPublicKey(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	var accounts []*Account

	account, err := NewAccountFromPublicKeyBytes(publicKey)
	require.NoError(t, err)
	accounts = append(accounts, account)

	account, err = NewAccountFromPublicKeyString(base58.Encode(publicKey))
	require.NoError(t, err)
	accounts = append(accounts, account)

	for _, account := range accounts {
		assert.EqualValues(t, publicKey, account.PublicKey().ToBytes())
		assert.Nil(t, account.PrivateKey())

		_, err = account.Sign([]byte("message"))
		assert.Error(t, err)

		_, err = account.Signer()
		assert.Error(t, err)
	}
}

func TestAccountWithPrivateKey(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	var accounts []*Account

	account, err := NewAccountFromPrivateKeyBytes(privateKey)
	require.NoError(t, err)
	accounts = append(accounts, account)

	account, err = NewAccountFromPrivateKeyString(base58.Encode(privateKey))
	require.NoError(t, err)
	accounts = append(accounts, account)

	for _, account := range accounts {
		assert.EqualValues(t, publicKey, account.PublicKey().ToBytes())
		assert.EqualValues(t, privateKey, account.PrivateKey().ToBytes())

		message := []byte("message")
		signature, err := account.Sign(message)
		require.NoError(t, err)
		assert.Equal(t, ed25519.Sign(privateKey, message), signature)
	}
}

func TestAccountFromSeed(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}

	account, err := NewAccountFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, "9C6hybhQ6Aycep9jaUnP6uL9ZYvDjUp1aSkFWPUFJtpj", account.PublicKey().ToBase58())

	_, err = NewAccountFromSeed(nil)
	assert.Error(t, err)
}

func TestAccountSigner(t *testing.T) {
	payer := newRandomTestAccount(t)
	counterparty := newRandomTestAccount(t)
	program := newRandomTestAccount(t)

	tx, err := solana.NewTransaction(
		payer.PublicKey().ToBytes(),
		solana.NewInstruction(
			program.PublicKey().ToBytes(),
			[]byte{1, 2, 3},
			solana.NewAccountMeta(counterparty.PublicKey().ToBytes(), true),
		),
	)
	require.NoError(t, err)

	payerSigner, err := payer.Signer()
	require.NoError(t, err)
	counterpartySigner, err := counterparty.Signer()
	require.NoError(t, err)

	require.NoError(t, tx.Sign(payerSigner, counterpartySigner))
	assert.NoError(t, tx.Verify())
}

func TestAccountIsOnCurve(t *testing.T) {
	account := newRandomTestAccount(t)
	assert.True(t, account.IsOnCurve())

	// Program derived addresses are constructed to fall off the curve.
	program := newRandomTestAccount(t)
	derived, err := solana.FindProgramAddress(program.PublicKey().ToBytes(), []byte("state"))
	require.NoError(t, err)

	offCurve, err := NewAccountFromPublicKeyBytes(derived)
	require.NoError(t, err)
	assert.False(t, offCurve.IsOnCurve())
}

func TestInvalidAccount(t *testing.T) {
	stringValue := "invalid-account"
	bytesValue := []byte(stringValue)

	_, err := NewAccountFromPublicKeyBytes(bytesValue)
	assert.Error(t, err)

	_, err = NewAccountFromPublicKeyString(stringValue)
	assert.Error(t, err)

	_, err = NewAccountFromPrivateKeyBytes(bytesValue)
	assert.Error(t, err)

	_, err = NewAccountFromPrivateKeyString(stringValue)
	assert.Error(t, err)
}

func newRandomTestAccount(t *testing.T) *Account {
	account, err := NewRandomAccount()
	require.NoError(t, err)
	return account
}
