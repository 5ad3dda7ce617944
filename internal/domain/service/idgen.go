package service

// IDGenerator produces entity identifiers. Callers rely only on
// uniqueness and a stable string type; the concrete format is
// "<prefix>_<unix-ms>_<random-suffix>".
type IDGenerator interface {
	// NewID returns a fresh identifier carrying the given prefix.
	NewID(prefix string) string
}
