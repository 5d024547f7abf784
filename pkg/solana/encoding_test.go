package solana

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_MarshalRoundTrip(t *testing.T) {
	expected := "AaZAGNONKTsNypCfvwHGipcWmAX/J03VfLQEHgMDSuHz0ktydqlLb7I4tZnX0Yw8KMTbma28M+yiZPaRolOJGgwBAAgQCR2hNbdxjAiYwC9CSEo2Vso3yq8OXlgoCbepyseaRXoIFE8MTz2ZtOsdNl55fj/zi0S+ArjIP4zJ3Y+MC4tKyQu7s1JPy6Hur6YbU0nF+1XBJYwii/dKtLsNFU/pTo19J7jOgutpJBZbNIhC5ppqC/OYlbzW1KqamkV3p+cslAoyBJxvWrSMXX+X0Ih0+sEzarslIYSV0T/NuLFcjpX8S7ajCdht+3+POhvGcGFzDyc4kIgjN/SAdypJM1Grs+eEtzXhQGM4VMy0p0J2CiOH+k2kwfya5F7fSaYXWOi3CJUGp9UXGSxWjuCKhF9z0peIzwNcMUWyGrNE2AYuqUAAAAan1RcZLFxRIYzJTD1K8X9Y2u4Im6H9ROPb2YoAAAAABt324ddloZPZy+FGzut5rBy0he1fWzeROoz1hX7/AKlDDB9w5G7eh4xhLJIgxblM0E4dxW+ZTABRcCVBt2LcH8b6evO+2606PWXzaqvJdDGxu+TC0vbg5HymAgNFL11hDcYoaKd+VYB6HNWIyaKadms+4q7NwH3gjP6RB91LMWUAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAMGRm/lIRcy/+ytunLDm+e8jOW7xfcSayxDmzpAAAAAjJclj04kifG7PRApFI4NgwtaE5na/xCEBI572Nvp+FmMVCZzhQC2pwD9u6aAm8haUDNRSZG/a7c1U/ltYtc+KAUNAwIHAAQEAAAADgAJA+gDAAAAAAAADgAFAkjoAQAPBwADCgsNCQgBAQwLAAUBBAwMBgwMAwlcCAoCAAAAmhMJCgIAAAAAAUgAAABlmEW1THFmZqyjBehuSli5bMSJBNiQMkZcr19LINSM4KF/whE1IayV174tmVwC9MMlQSmG3j6aJVhIDGMUITUNXRMTAAAAAAA="
	decoded, err := base64.StdEncoding.DecodeString(expected)
	require.NoError(t, err)

	var txn Transaction
	require.NoError(t, txn.Unmarshal(decoded))
	assert.Equal(t, decoded, txn.Marshal())
	assert.Equal(t, expected, txn.ToBase64())
}

func TestTransaction_UnmarshalInvalid(t *testing.T) {
	keys := generateKeys(t, 2)

	tx, err := NewTransaction(
		public(keys[0]),
		NewInstruction(
			public(keys[1]),
			[]byte{1, 2, 3},
			NewAccountMeta(public(keys[0]), true),
		),
	)
	require.NoError(t, err)
	require.NoError(t, tx.Sign(NewKeypairSigner(keys[0])))

	var decoded Transaction
	assert.Error(t, decoded.Unmarshal(nil))
	assert.Error(t, decoded.Unmarshal([]byte{}))

	// Truncated after the signature count.
	assert.Error(t, decoded.Unmarshal([]byte{1}))

	// Truncated mid message.
	raw := tx.Marshal()
	assert.Error(t, decoded.Unmarshal(raw[:len(raw)-10]))

	// A set high bit on the first message byte marks a versioned
	// message, which this codec does not handle.
	raw = tx.Marshal()
	raw[1+len(tx.Signatures)*len(Signature{})] |= 0x80
	assert.Error(t, decoded.Unmarshal(raw))

	// A header demanding more signers than there are accounts.
	raw = tx.Marshal()
	raw[1+len(tx.Signatures)*len(Signature{})] = 100
	assert.Error(t, decoded.Unmarshal(raw))
}

func TestTransactionFromBase64(t *testing.T) {
	keys := generateKeys(t, 2)

	tx, err := NewTransaction(
		public(keys[0]),
		NewInstruction(public(keys[1]), []byte{1, 2, 3}),
	)
	require.NoError(t, err)

	decoded, err := TransactionFromBase64(tx.ToBase64())
	require.NoError(t, err)
	assert.Equal(t, tx.Marshal(), decoded.Marshal())

	_, err = TransactionFromBase64("not base64!!!")
	assert.Error(t, err)

	_, err = TransactionFromBase64(base64.StdEncoding.EncodeToString([]byte{1}))
	assert.Error(t, err)
}

func TestSignatureFromBase58(t *testing.T) {
	var sig Signature
	for i := range sig {
		sig[i] = byte(i)
	}

	parsed, err := SignatureFromBase58(sig.String())
	require.NoError(t, err)
	assert.Equal(t, sig, parsed)

	_, err = SignatureFromBase58("abc")
	assert.Error(t, err)

	_, err = SignatureFromBase58("0invalid0")
	assert.Error(t, err)
}

func TestBlockhashFromBase58(t *testing.T) {
	var bh Blockhash
	for i := range bh {
		bh[i] = byte(64 - i)
	}

	parsed, err := BlockhashFromBase58(bh.String())
	require.NoError(t, err)
	assert.Equal(t, bh, parsed)

	_, err = BlockhashFromBase58("abc")
	assert.Error(t, err)

	_, err = BlockhashFromBase58("0invalid0")
	assert.Error(t, err)
}
