package networks

type Network interface {
	GetName() string
	GetAlternativeNames() []string

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	// GetDefaultRentalProxies returns the rental marketplace contracts this
	// network trusts by default.
	GetDefaultRentalProxies() []string
}
