package networks

import (
	"encoding/json"
	"fmt"
)

type GenericNearNetworkConfig struct {
	Name                 string            `json:"name"`
	AlternativeNames     []string          `json:"alternative_names"`
	NodeVariableName     string            `json:"node_variable_name"`
	DefaultNodes         map[string]string `json:"default_nodes"`
	DefaultRentalProxies []string          `json:"default_rental_proxies"`
}

// GenericNearNetwork is a generic implementation of a NEAR style network
// defined entirely by its config.
type GenericNearNetwork struct {
	config GenericNearNetworkConfig
}

func NewGenericNearNetwork(config GenericNearNetworkConfig) *GenericNearNetwork {
	return &GenericNearNetwork{config: config}
}

func (gn *GenericNearNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNearNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNearNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericNearNetwork) GetDefaultNodes() map[string]string {
	return gn.config.DefaultNodes
}

func (gn *GenericNearNetwork) GetDefaultRentalProxies() []string {
	return gn.config.DefaultRentalProxies
}

func NewNetworkFromJSON(data []byte) (Network, error) {
	var config GenericNearNetworkConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if config.Name == "" {
		return nil, fmt.Errorf("network config requires a name")
	}
	if len(config.DefaultNodes) == 0 {
		return nil, fmt.Errorf("network config requires at least one default node")
	}
	return NewGenericNearNetwork(config), nil
}
