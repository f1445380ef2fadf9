package validator

import (
	"errors"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("alpha_name", validateAlphaName); err != nil {
		panic("failed to register alpha_name validation: " + err.Error())
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateAlphaName accepts names made of letters, spaces and hyphens only.
func validateAlphaName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' {
			return false
		}
	}
	return true
}

// ValidatePassword enforces the strong-password rule: at least 8
// characters with upper case, lower case, a number and a symbol.
func ValidatePassword(password string) error {
	var (
		hasMinLength = len(password) >= 8
		hasUpper     = false
		hasLower     = false
		hasNumber    = false
		hasSpecial   = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	if !hasMinLength || !hasUpper || !hasLower || !hasNumber || !hasSpecial {
		return errors.New("please make sure your password has at least 8 characters with lowercase, " +
			"uppercase letters, symbols, and numbers")
	}

	return nil
}
