package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

const passwordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ValidatePassword checks the complexity policy and returns the failed rules
// keyed by rule name. An empty map means the password is acceptable.
func ValidatePassword(password string) map[string]string {
	failed := map[string]string{}

	if len(password) < 8 {
		failed["length"] = "password must be at least 8 characters long"
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		failed["uppercase"] = "password must contain at least one uppercase letter"
	}
	if !hasLower {
		failed["lowercase"] = "password must contain at least one lowercase letter"
	}
	if !hasDigit {
		failed["digit"] = "password must contain at least one digit"
	}
	if !hasSymbol {
		failed["symbol"] = "password must contain at least one symbol"
	}

	return failed
}
