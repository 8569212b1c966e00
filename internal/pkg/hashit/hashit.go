// Package hashit reproduces the SA-MP gamemode password hash.
//
// The accounts table stores md5(md5(salt) + md5(password)) as lowercase hex.
// Any deviation in order or casing produces a different digest and locks out
// every existing account.
package hashit

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Digest returns the lowercase hex MD5 of value.
func Digest(value string) string {
	sum := md5.Sum([]byte(value))
	return hex.EncodeToString(sum[:])
}

// HashPassword computes the legacy salted double-MD5 digest.
func HashPassword(salt, password string) string {
	combined := strings.ToLower(Digest(salt) + Digest(password))
	return strings.ToLower(Digest(combined))
}

// Matches reports whether password hashes to stored with the given salt.
func Matches(salt, password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(salt, password)), []byte(stored)) == 1
}
