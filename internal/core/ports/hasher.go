package ports

// Hasher defines the interface for computing file digests.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeFileHash computes the digest of a file's content.
	ComputeFileHash(path string) (uint64, error)
}
