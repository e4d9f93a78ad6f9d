package networks

import (
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the network selected by the last SetNetwork call,
// NEAR mainnet when none was made.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()

	if cachedNetwork == nil {
		cachedNetwork = NEARMainnet
	}
	return cachedNetwork
}

func SetNetwork(networkStr string) {
	mu.Lock()
	defer mu.Unlock()

	var err error
	cachedNetwork, err = GetNetwork(networkStr)
	if err != nil {
		cachedNetwork = NEARMainnet
	}
}
