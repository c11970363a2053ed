package ports

// Identifiers derives stable internal names for bundle files.
//
//go:generate mockgen -source=identifiers.go -destination=mocks/mock_identifiers.go -package=mocks
type Identifiers interface {
	// GenerateInternalFileName returns the internal file name for name.
	GenerateInternalFileName(name string) string
}
