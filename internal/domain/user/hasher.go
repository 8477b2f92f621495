package user

// PasswordHasher abstracts password hashing so the domain never sees
// the concrete algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
