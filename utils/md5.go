package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// Md5 returns the hex md5 digest of s. Online store key prefixes use a
// digest slice to keep redis keys short.
func Md5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
