// Copyright © 2024 Leasewatch
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leasewatch/nftenant/config"
	"github.com/leasewatch/nftenant/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nftenant",
	Short: "Tell you who is currently using an NFT, rental aware",
	Long: fmt.Sprintf(`nftenant is a command line tool to find out who the current legitimate
user of an NFT is. A token's nominal owner on chain may be a rental
marketplace contract holding the token on behalf of a borrower; nftenant
chases that indirection and reports the active borrower instead of the
marketplace.

By default, nftenant supports NEAR mainnet and testnet and uses their
public RPC nodes. You can point it at your own node by setting the
following env vars:
	1. For mainnet: %s
	2. For testnet: %s

Each network also ships with a default list of trusted rental proxy
contracts. Use --proxy to trust a different set for a single invocation,
and %s to set a default NFT contract so you don't have to pass
--contract every time.

Note: nftenant only does read-only queries. It will never sign or send a
transaction.`,
		networks.NEARMainnet.GetNodeVariableName(),
		networks.NEARTestnet.GetNodeVariableName(),
		DefaultContractVar,
	),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().
		StringVarP(&config.Network, "network", "k", "mainnet", "NEAR network. Valid values: \"mainnet\", \"testnet\" or any custom network you added with nftenant network add.")
	rootCmd.PersistentFlags().
		StringVarP(&config.Node, "node", "u", "", "Custom RPC node URL. Overrides the network's default nodes and its node env var.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
