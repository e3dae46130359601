package port

// PasswordHasher is the single verification entrypoint for stored
// credentials. The algorithm is chosen from the explicit tag stored with the
// credential record, never inferred from the hash value itself.
type PasswordHasher interface {
	// Hash hashes a plaintext password and returns the hash plus the
	// algorithm tag to store alongside it.
	Hash(plain string) (hash string, algo string, err error)

	// Verify checks plain against hash using the tagged algorithm.
	// Returns ErrAuthFailure on mismatch or an unknown algorithm tag.
	Verify(hash, algo, plain string) error
}
