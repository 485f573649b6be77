// Package ss58 implements the SS58 text encoding used for 32-byte chain
// account addresses at the API boundary. An encoded address is
// base58(prefix || account || checksum) where the checksum is the first two
// bytes of blake2b-512 over "SS58PRE" || prefix || account.
package ss58

import (
	"crypto/subtle"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/inkwatch/inkwatch/internal/common"
)

// AddressLength is the size of a raw chain account address in bytes.
const AddressLength = 32

// NetworkPrefix is the generic substrate network prefix; addresses encoded
// with it start with "5".
const NetworkPrefix byte = 42

const checksumLength = 2

var checksumPreimage = []byte("SS58PRE")

// Address is a raw 32-byte chain account address.
type Address [AddressLength]byte

// Bytes returns the address as a byte slice, the form repositories bind
// against BYTEA columns.
func (a Address) Bytes() []byte {
	return a[:]
}

// String renders the address in its SS58 form.
func (a Address) String() string {
	return Encode(a)
}

// Encode renders a raw address as SS58 text with the generic network prefix.
func Encode(addr Address) string {
	raw := make([]byte, 0, 1+AddressLength+checksumLength)
	raw = append(raw, NetworkPrefix)
	raw = append(raw, addr[:]...)
	raw = append(raw, checksum(raw)...)
	return base58.Encode(raw)
}

// Decode parses SS58 text into a raw address. Malformed input, an unexpected
// network prefix and a checksum mismatch all yield common.ErrInvalidAddress.
func Decode(s string) (Address, error) {
	var addr Address

	raw, err := base58.Decode(s)
	if err != nil {
		return addr, fmt.Errorf("%w: %v", common.ErrInvalidAddress, err)
	}

	if len(raw) != 1+AddressLength+checksumLength {
		return addr, fmt.Errorf("%w: unexpected length %d", common.ErrInvalidAddress, len(raw))
	}

	if raw[0] != NetworkPrefix {
		return addr, fmt.Errorf("%w: unexpected network prefix %d", common.ErrInvalidAddress, raw[0])
	}

	body := raw[:1+AddressLength]
	if subtle.ConstantTimeCompare(checksum(body), raw[1+AddressLength:]) != 1 {
		return addr, fmt.Errorf("%w: checksum mismatch", common.ErrInvalidAddress)
	}

	copy(addr[:], raw[1:1+AddressLength])
	return addr, nil
}

func checksum(body []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(checksumPreimage)
	h.Write(body)
	return h.Sum(nil)[:checksumLength]
}
