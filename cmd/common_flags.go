package cmd

import (
	"github.com/spf13/cobra"

	"github.com/leasewatch/nftenant/config"
)

func AddCommonFlagsToQueryCmds(c *cobra.Command) {
	c.PersistentFlags().
		StringVarP(&config.NFTContract, "contract", "c", "", "NFT contract account to query. If empty, the NFTENANT_DEFAULT_CONTRACT env var is used and the command fails when neither is set.")
	c.PersistentFlags().
		StringSliceVarP(&config.RentalProxies, "proxy", "x", nil, "Trusted rental proxy account. Can be repeated. If empty, the network's default proxy list is used.")
}
