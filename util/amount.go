package util

import (
	"fmt"

	"github.com/cloakchain/cloaknode/chaincfg"
)

// FormatAmount renders an atomic-unit amount as a human-readable coin amount
// with the network ticker, e.g. 123456 -> "1234.56 CLK".
func FormatAmount(amount uint64, params *chaincfg.Params) string {
	divisor := uint64(1)
	for i := 0; i < params.Decimals; i++ {
		divisor *= 10
	}

	return fmt.Sprintf("%d.%0*d %s", amount/divisor, params.Decimals, amount%divisor, params.Ticker)
}
