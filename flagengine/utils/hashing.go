package utils

import (
	"crypto/md5"
	"math/big"
	"strings"
)

// percentageForKeys returns a number in range [0:100) derived from hashing keys.
// The same keys always map to the same value, which is what makes percentage
// rollouts and group targeting sticky.
func percentageForKeys(keys []string, iterations int) float64 {
	strs := make([]string, len(keys)*iterations)
	for i := 0; i < len(strs); i++ {
		strs[i] = keys[i%len(keys)]
	}
	toHash := strings.Join(strs, ",")
	hash := md5.Sum([]byte(toHash))
	var hashValue big.Int
	hashValue.SetBytes(hash[:])

	value := (float64(hashValue.Mod(&hashValue, big.NewInt(9999)).Int64()) / 9998.0) * 100.0
	if value == 100 {
		return percentageForKeys(keys, iterations+1)
	}

	return value
}

func PercentageForKeys(keys []string, iterations int) float64 {
	return percentageForKeysFunc(keys, iterations)
}

var percentageForKeysFunc = percentageForKeys

// MockSetPercentageForKeys replaces the hash for tests; nil restores it.
func MockSetPercentageForKeys(fn func([]string, int) float64) {
	if fn == nil {
		fn = percentageForKeys
	}
	percentageForKeysFunc = fn
}
