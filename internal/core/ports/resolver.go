package ports

// InputResolver defines the interface for resolving bundle member patterns.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// ResolveInputs expands patterns against candidates in pattern order.
	ResolveInputs(patterns []string, candidates []string) ([]string, error)
}
