package networks

var NEARTestnet Network = NewNEARTestnet()

type nearTestnet struct {
	*GenericNearNetwork
}

func NewNEARTestnet() *nearTestnet {
	return &nearTestnet{
		GenericNearNetwork: NewGenericNearNetwork(GenericNearNetworkConfig{
			Name:             "testnet",
			AlternativeNames: []string{"near-testnet"},
			NodeVariableName: "NEAR_TESTNET_NODE",
			DefaultNodes: map[string]string{
				"near-org": "https://rpc.testnet.near.org",
			},
			DefaultRentalProxies: []string{
				"nft-rental.testnet",
			},
		}),
	}
}
