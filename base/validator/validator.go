package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return checksum == address || strings.ToLower(checksum) == address
}

// IsValidHexBytes reports whether s is a 0x-prefixed even-length hex string.
// The empty calldata "0x" is valid.
func IsValidHexBytes(s string) bool {
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	body := s[2:]
	if len(body)%2 != 0 {
		return false
	}
	for _, c := range body {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Struct runs go-playground tag validation against a struct value
func Struct(i interface{}) error {
	return validate.Struct(i)
}
