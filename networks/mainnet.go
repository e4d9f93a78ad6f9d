package networks

var NEARMainnet Network = NewNEARMainnet()

type nearMainnet struct {
	*GenericNearNetwork
}

func NewNEARMainnet() *nearMainnet {
	return &nearMainnet{
		GenericNearNetwork: NewGenericNearNetwork(GenericNearNetworkConfig{
			Name:             "mainnet",
			AlternativeNames: []string{"near", "near-mainnet"},
			NodeVariableName: "NEAR_MAINNET_NODE",
			DefaultNodes: map[string]string{
				"near-org": "https://rpc.mainnet.near.org",
				"fastnear": "https://free.rpc.fastnear.com",
			},
			DefaultRentalProxies: []string{
				"nft-rental.near",
			},
		}),
	}
}
