package password

import "golang.org/x/crypto/bcrypt"

// cost matches the platform's historical bcrypt work factor; raising it
// invalidates nothing but makes new hashes slower to brute-force.
const cost = 10

// Hash returns a salted bcrypt hash of the password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash. The
// comparison is constant-time inside bcrypt.
func Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
