package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leasewatch/nftenant/networks"
)

var (
	NetworkConfig string
	NetworkForce  bool
)

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new network to the supported networks list locally",
	Long: `--config flag is supported to pass a new network config json filepath OR pass a json string. The json should be in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1", "alternative_name_2"],
		"node_variable_name": "NFTENANT_NODE_1",
		"default_nodes": {
			"node_name_1": "node_url_1",
			"node_name_2": "node_url_2"
		},
		"default_rental_proxies": ["rental_proxy_account_1"]
	}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := strings.TrimSpace(NetworkConfig)
		if config == "" {
			return fmt.Errorf("--config is required, pass a json string or a path to a json file")
		}

		var newNetwork networks.Network
		var err error
		if strings.HasPrefix(config, "{") && strings.HasSuffix(config, "}") {
			newNetwork, err = networks.NewNetworkFromJSON([]byte(config))
			if err != nil {
				return fmt.Errorf("the provided json is not valid: %w", err)
			}
		} else {
			// in this case, config is supposed to be a path to a json file
			jsonFile, err := os.Open(config)
			if err != nil {
				return fmt.Errorf("couldn't open the provided json file: %w", err)
			}
			defer jsonFile.Close()

			jsonBytes, err := io.ReadAll(jsonFile)
			if err != nil {
				return fmt.Errorf("couldn't read the provided json file: %w", err)
			}
			newNetwork, err = networks.NewNetworkFromJSON(jsonBytes)
			if err != nil {
				return fmt.Errorf("the provided json is not a valid network config: %w", err)
			}
		}

		allNames := []string{newNetwork.GetName()}
		allNames = append(allNames, newNetwork.GetAlternativeNames()...)
		for _, name := range allNames {
			_, err = networks.GetNetwork(name)
			if err == nil && !NetworkForce {
				return fmt.Errorf("network with name %s already exists, use --force to replace it", name)
			}
		}

		if err := networks.AddNetwork(newNetwork); err != nil {
			return fmt.Errorf("failed to add the new network: %w", err)
		}
		fmt.Printf("Network %s added and saved to ~/.nftenant/networks/.\n", newNetwork.GetName())
		return nil
	},
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		for i, n := range networks.GetSupportedNetworks() {
			fmt.Printf("%d. Name: %s\n", i+1, n.GetName())
			fmt.Printf("    RPC nodes:\n")
			for key, node := range n.GetDefaultNodes() {
				fmt.Printf("    - %s: %s\n", key, node)
			}
			fmt.Printf("    Trusted rental proxies:\n")
			for _, p := range n.GetDefaultRentalProxies() {
				fmt.Printf("    - %s\n", p)
			}
		}

		fmt.Printf("\nIf you want to add more networks to the list, use following command:\n> nftenant network add\n")
		fmt.Printf("\nIf you want to delete a network, just delete the corresponding json file in ~/.nftenant/networks/.\n")
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage all networks that nftenant supports",
	Long:  ``,
}

func init() {
	addNetworkCmd.PersistentFlags().StringVarP(&NetworkConfig, "config", "c", "", "Path to the network config json file, or the json itself")
	addNetworkCmd.PersistentFlags().BoolVarP(&NetworkForce, "force", "f", false, "Force adding the network even if it already exists")

	networkCmd.AddCommand(listNetworkCmd)
	networkCmd.AddCommand(addNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
