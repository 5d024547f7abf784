// Package shortvec implements the compact-u16 length encoding used by the
// Solana wire format: 7 bits of magnitude per byte, high bit set on every
// byte except the last.
package shortvec

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

const maxEncodedLen = 3

// EncodeLen encodes length into the writer.
//
// Lengths above math.MaxUint16 are not representable on the wire and
// return an error.
func EncodeLen(w io.Writer, length int) (n int, err error) {
	if length < 0 {
		return 0, errors.Errorf("invalid len %d", length)
	}
	if length > math.MaxUint16 {
		return 0, errors.Errorf("len exceeds %d", math.MaxUint16)
	}

	written := 0
	valBuf := make([]byte, 1)

	for {
		valBuf[0] = byte(length & 0x7f)
		length >>= 7
		if length == 0 {
			n, err := w.Write(valBuf)
			written += n

			return written, err
		}

		valBuf[0] |= 0x80
		n, err := w.Write(valBuf)
		written += n
		if err != nil {
			return written, err
		}
	}
}

// DecodeLen decodes a shortvec encoded length from the reader.
//
// The loop is bounded at three bytes since valid lengths fit in a uint16;
// a continuation bit on the third byte is an encoding error.
func DecodeLen(r io.Reader) (val int, err error) {
	valBuf := make([]byte, 1)

	for offset := 0; ; offset++ {
		if _, err := io.ReadFull(r, valBuf); err != nil {
			return 0, err
		}

		val |= int(valBuf[0]&0x7f) << (offset * 7)

		if valBuf[0]&0x80 == 0 {
			if val > math.MaxUint16 {
				return 0, errors.Errorf("len exceeds %d", math.MaxUint16)
			}
			return val, nil
		}
		if offset == maxEncodedLen-1 {
			return 0, errors.Errorf("len exceeds %d bytes", maxEncodedLen)
		}
	}
}
