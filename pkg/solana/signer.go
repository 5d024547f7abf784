package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
)

// Signer produces signatures for transaction messages on behalf of a
// single account.
//
// Implementations do not need access to the raw private key. A remote
// service, a hardware wallet, or a previously produced signature can
// all stand behind this interface.
type Signer interface {
	// PublicKey returns the account the signatures belong to.
	PublicKey() ed25519.PublicKey

	// Sign signs the provided message.
	Sign(message []byte) (Signature, error)
}

// KeypairSigner signs with an in memory ed25519 private key.
type KeypairSigner struct {
	priv ed25519.PrivateKey
}

func NewKeypairSigner(priv ed25519.PrivateKey) KeypairSigner {
	return KeypairSigner{priv: priv}
}

func (s KeypairSigner) PublicKey() ed25519.PublicKey {
	return s.priv.Public().(ed25519.PublicKey)
}

func (s KeypairSigner) Sign(message []byte) (Signature, error) {
	var sig Signature
	copy(sig[:], ed25519.Sign(s.priv, message))
	return sig, nil
}

// PresignedSigner carries a signature that was produced out of band by
// another party.
//
// The held signature is returned as is for any message. Whether it
// actually matches the message is Verify's job.
type PresignedSigner struct {
	pub ed25519.PublicKey
	sig Signature
}

func NewPresignedSigner(pub ed25519.PublicKey, sig Signature) PresignedSigner {
	return PresignedSigner{pub: pub, sig: sig}
}

func (s PresignedSigner) PublicKey() ed25519.PublicKey {
	return s.pub
}

func (s PresignedSigner) Sign(message []byte) (Signature, error) {
	return s.sig, nil
}

// NullSigner reserves the signature slot for an account without
// filling it, so that another party can sign later.
type NullSigner struct {
	pub ed25519.PublicKey
}

func NewNullSigner(pub ed25519.PublicKey) NullSigner {
	return NullSigner{pub: pub}
}

func (s NullSigner) PublicKey() ed25519.PublicKey {
	return s.pub
}

func (s NullSigner) Sign(message []byte) (Signature, error) {
	return Signature{}, nil
}

// PartialSign signs the transaction with the provided signers, leaving
// the remaining signature slots untouched.
//
// Signers whose accounts are not required signers of the transaction
// are silently ignored.
func (t *Transaction) PartialSign(signers ...Signer) error {
	if len(t.Signatures) == 0 {
		t.Signatures = make([]Signature, t.Message.Header.NumSignatures)
	}

	messageBytes := t.Message.Marshal()

	for _, s := range signers {
		index := indexOf(t.Message.Accounts, s.PublicKey())
		if index < 0 || index >= len(t.Signatures) {
			continue
		}

		sig, err := s.Sign(messageBytes)
		if err != nil {
			return errors.Wrapf(err, "failed to sign with %s", base58.Encode(s.PublicKey()))
		}

		t.Signatures[index] = sig
	}

	return nil
}

// SignWith signs the transaction against the provided blockhash.
//
// If the blockhash differs from the one already set, it replaces it,
// clearing any signatures collected for the old message in the process.
func (t *Transaction) SignWith(bh Blockhash, signers ...Signer) error {
	t.SetBlockhash(bh)
	return t.PartialSign(signers...)
}

// Sign signs the transaction with the provided signers, and verifies
// that the result is fully signed and within the transaction size
// limit.
func (t *Transaction) Sign(signers ...Signer) error {
	if err := t.PartialSign(signers...); err != nil {
		return err
	}

	for i := range t.Signatures {
		if t.Signatures[i] == (Signature{}) {
			return errors.Wrapf(ErrNotEnoughSigners, "no signature for %s", base58.Encode(t.Message.Accounts[i]))
		}
	}

	if len(t.Marshal()) > MaxTransactionSize {
		return ErrTransactionTooLarge
	}

	return nil
}

// IsSigned reports whether every required signature slot holds a
// signature. It does not verify the signatures against the message.
func (t *Transaction) IsSigned() bool {
	if len(t.Signatures) < int(t.Message.Header.NumSignatures) {
		return false
	}

	for i := 0; i < int(t.Message.Header.NumSignatures); i++ {
		if t.Signatures[i] == (Signature{}) {
			return false
		}
	}

	return true
}

// Verify checks that every required signature slot holds a valid
// signature over the message.
func (t *Transaction) Verify() error {
	if len(t.Signatures) < int(t.Message.Header.NumSignatures) {
		return ErrNotEnoughSigners
	}

	messageBytes := t.Message.Marshal()

	for i := 0; i < int(t.Message.Header.NumSignatures); i++ {
		if t.Signatures[i] == (Signature{}) {
			return errors.Wrapf(ErrMissingSigner, "no signature for %s", base58.Encode(t.Message.Accounts[i]))
		}

		if !ed25519.Verify(t.Message.Accounts[i], messageBytes, t.Signatures[i][:]) {
			return errors.Wrapf(ErrSignatureVerificationFailed, "invalid signature by %s", base58.Encode(t.Message.Accounts[i]))
		}
	}

	return nil
}
