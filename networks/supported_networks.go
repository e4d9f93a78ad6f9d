package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

// Insert more Network implementations here to support more networks
var supportedNetworks = []Network{
	NEARMainnet,
	NEARTestnet,
}

var globalSupportedNetworks = newSupportedNetworks()

var ErrNetworkNotFound = fmt.Errorf("network not found")

type networkRegistry struct {
	networks map[string]Network
	ordered  []Network
}

func (n *networkRegistry) getSupportedNetworkNames() []string {
	res := []string{}
	for _, nw := range n.ordered {
		res = append(res, nw.GetName())
		res = append(res, nw.GetAlternativeNames()...)
	}
	return res
}

func (n *networkRegistry) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networkRegistry) addNetwork(nw Network) {
	if _, found := n.networks[nw.GetName()]; !found {
		n.ordered = append(n.ordered, nw)
	}
	n.networks[nw.GetName()] = nw
	for _, an := range nw.GetAlternativeNames() {
		n.networks[an] = nw
	}
}

func newSupportedNetworks() *networkRegistry {
	result := networkRegistry{
		networks: map[string]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		result.networks[n.GetName()] = n
		result.ordered = append(result.ordered, n)
		for _, an := range n.GetAlternativeNames() {
			if _, found := result.networks[an]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", an),
				)
			}
			result.networks[an] = n
		}
	}

	// load custom networks from ~/.nftenant/networks/
	customNetworks, err := loadCustomNetworks()
	if err != nil {
		fmt.Printf("WARNING: Failed to load custom networks: %s. Ignore and continue with built-in networks.\n", err)
		return &result
	}

	for _, n := range customNetworks {
		if _, found := result.networks[n.GetName()]; found {
			fmt.Printf("Network with name '%s' already exists. Using custom network.\n", n.GetName())
		}
		result.addNetwork(n)
	}
	return &result
}

func customNetworksDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, ".nftenant", "networks"), nil
}

func loadCustomNetworks() ([]Network, error) {
	dir, err := customNetworksDir()
	if err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in %s: %w", dir, err)
	}

	networks := []Network{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}

		network, err := NewNetworkFromJSON(content)
		if err != nil {
			fmt.Printf("failed to parse network from file %s: %s. Ignore and continue with other custom networks.\n", file, err)
			continue
		}
		networks = append(networks, network)
	}
	return networks, nil
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetSupportedNetworks() []Network {
	res := make([]Network, len(globalSupportedNetworks.ordered))
	copy(res, globalSupportedNetworks.ordered)
	return res
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}

// AddNetwork registers a network for this process and persists it as a json
// file under ~/.nftenant/networks/ so later runs pick it up too.
func AddNetwork(n Network) error {
	dir, err := customNetworksDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	config := GenericNearNetworkConfig{
		Name:                 n.GetName(),
		AlternativeNames:     n.GetAlternativeNames(),
		NodeVariableName:     n.GetNodeVariableName(),
		DefaultNodes:         n.GetDefaultNodes(),
		DefaultRentalProxies: n.GetDefaultRentalProxies(),
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.json", n.GetName()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	globalSupportedNetworks.addNetwork(n)
	return nil
}
