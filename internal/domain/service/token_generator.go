package service

// TokenGenerator produces opaque bearer-token strings.
// Tokens carry no structure or embedded metadata; they are pure entropy,
// URL-safe encoded, and unpredictable from prior tokens or account identity.
type TokenGenerator interface {
	Generate() (string, error)
}
