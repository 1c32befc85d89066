package service

// KeyGenerator produces opaque, cryptographically random license keys.
type KeyGenerator interface {
	Generate() (string, error)
}
