package config

var Network string

var (
	Node          string
	NFTContract   string
	RentalProxies []string
)
