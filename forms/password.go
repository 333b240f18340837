package forms

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"studio/config"
)

const passwordPunctuation = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// PasswordStrong reports whether pwd is at least 8 characters long and
// contains an upper-case letter, a lower-case letter, a digit and a
// punctuation character.
func PasswordStrong(pwd string) bool {
	if len(pwd) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range pwd {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordPunctuation, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// Init registers the "password" rule with gin's validator engine. The rule
// is a no-op when the PASSWORD_COMPLEXITY toggle is off.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			if !config.PASSWORD_COMPLEXITY {
				return true
			}
			return PasswordStrong(fl.Field().String())
		})
	}
}
