package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword applies the one-way salted transform; the plaintext is
// discarded by callers immediately afterwards.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
