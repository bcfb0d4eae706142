// Package password hashes, compares and grades account passwords.
package password

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinLength = 8
	MaxLength = 128
)

// common holds passwords rejected regardless of length.
var common = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {}, "123456789": {},
	"1234567890": {}, "qwerty123": {}, "qwertyuiop": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "welcome1": {}, "abc12345": {},
	"11111111": {}, "00000000": {}, "letmein1": {}, "trustno1": {}, "passw0rd": {},
	"superman": {}, "whatever": {}, "starwars": {}, "dragon12": {}, "monkey12": {},
}

// Hash returns the bcrypt hash of plain.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether plain matches the stored hash.
func Compare(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IsStrong checks plain against the password policy. username may be empty.
func IsStrong(plain, username string) bool {
	if len(plain) < MinLength || len(plain) > MaxLength {
		return false
	}
	if allDigits(plain) {
		return false
	}
	lower := strings.ToLower(plain)
	if _, ok := common[lower]; ok {
		return false
	}
	if username != "" && strings.Contains(lower, strings.ToLower(username)) {
		return false
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
