package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leasewatch/nftenant/config"
	"github.com/leasewatch/nftenant/contracts"
	"github.com/leasewatch/nftenant/networks"
	"github.com/leasewatch/nftenant/rpc"
	"github.com/leasewatch/nftenant/tenancy"
)

const DefaultContractVar = "NFTENANT_DEFAULT_CONTRACT"

// resolver is built once per invocation by CommonQueryPreprocess and shared
// by all query commands.
var resolver *tenancy.Resolver

// CommonQueryPreprocess builds the resolver the query commands share. It
// resolves the network, the node set, the default NFT contract and the
// trusted proxy list from flags, env vars and network defaults, in that
// order of precedence.
func CommonQueryPreprocess(cmd *cobra.Command, args []string) error {
	if _, err := networks.GetNetwork(config.Network); err != nil {
		return fmt.Errorf(
			"unknown network '%s', valid values are: %s",
			config.Network,
			strings.Join(networks.GetSupportedNetworkNames(), ", "),
		)
	}
	networks.SetNetwork(config.Network)
	network := networks.CurrentNetwork()

	var reader *rpc.Reader
	if config.Node != "" {
		reader = rpc.NewReader(map[string]string{"custom-node": config.Node})
	} else {
		reader = rpc.NewReaderForNetwork(network)
	}

	defaultContract := config.NFTContract
	if defaultContract == "" {
		defaultContract = strings.Trim(os.Getenv(DefaultContractVar), " ")
	}

	proxies := config.RentalProxies
	if len(proxies) == 0 {
		proxies = network.GetDefaultRentalProxies()
	}

	resolver = tenancy.NewResolver(contracts.NewSource(reader), defaultContract, proxies)

	fmt.Printf("Network: %s\n", network.GetName())
	return nil
}
