package security

import "golang.org/x/crypto/bcrypt"

// HashAPIKey hashes a plain text API key with bcrypt. Used by the keygen
// helper; the server itself only ever sees the hash.
func HashAPIKey(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyAPIKey compares a bcrypt hash with a presented key. Any mismatch
// or malformed hash reports false; it never fails loudly on bad input.
func VerifyAPIKey(hash, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(presented)) == nil
}

// Verifier binds the process-wide configured hash so callers carry one
// value instead of the raw hash string.
type Verifier struct {
	hash string
}

func NewVerifier(hash string) *Verifier {
	return &Verifier{hash: hash}
}

func (v *Verifier) VerifyKey(presented string) bool {
	return VerifyAPIKey(v.hash, presented)
}
