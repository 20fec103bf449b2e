package etherscan

// Network names an Etherscan deployment.
type Network string

const (
	Mainnet Network = "mainnet"
	Sepolia Network = "sepolia"
	Holesky Network = "holesky"
)

var networkBaseURLs = map[Network]string{
	Mainnet: "https://api.etherscan.io/api",
	Sepolia: "https://api-sepolia.etherscan.io/api",
	Holesky: "https://api-holesky.etherscan.io/api",
}

// BaseURL returns the API base URL for the network. Unknown networks fall
// back to mainnet.
func (n Network) BaseURL() string {
	if u, ok := networkBaseURLs[n]; ok {
		return u
	}
	return networkBaseURLs[Mainnet]
}

// Valid reports whether n names a known deployment.
func (n Network) Valid() bool {
	_, ok := networkBaseURLs[n]
	return ok
}
