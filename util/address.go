package util

import (
	"strings"

	"github.com/cloakchain/cloaknode/chaincfg"
	"github.com/cloakchain/cloaknode/errors"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ValidateAddress checks that address looks like a standard address on the
// given network: expected prefix, expected length, base58 payload. It does not
// verify the embedded checksum or keys; that is wallet-side work.
func ValidateAddress(address string, params *chaincfg.Params) *errors.Error {
	if !strings.HasPrefix(address, params.AddressPrefix) {
		return errors.NewInvalidArgumentError("address does not begin with %s", params.AddressPrefix)
	}

	if len(address) != params.AddressLength {
		return errors.NewInvalidArgumentError("address length is %d, expected %d", len(address), params.AddressLength)
	}

	for _, c := range address[len(params.AddressPrefix):] {
		if !strings.ContainsRune(base58Alphabet, c) {
			return errors.NewInvalidArgumentError("address contains non-base58 character %q", c)
		}
	}

	return nil
}
