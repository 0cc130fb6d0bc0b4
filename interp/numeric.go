package interp

import "math/big"

// parseBigInt parses the decimal text an Int token carries, preferring
// arbitrary precision per spec.md §3's "Value ... int ... arbitrary
// precision preferred".
func parseBigInt(s string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(s, 10)
	return n, ok
}
