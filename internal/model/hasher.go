package model

// CredentialHasher is a slow, salted, one-way credential transform.
type CredentialHasher interface {
	Hash(raw string) (string, error)
	Verify(hash, raw string) error
}
