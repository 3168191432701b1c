package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-catalog/internal/domain"
)

// TransferEventSignature is the keccak topic of the ERC721 Transfer event
var TransferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// listedTokenTuple returns the ABI components of the registry token record for a shape
func listedTokenTuple(shape domain.RegistryShape) string {
	flag := "sold"
	if shape == domain.RegistryShapeLegacy {
		flag = "currentlyListed"
	}
	return `[
		{"internalType":"uint256","name":"tokenId","type":"uint256"},
		{"internalType":"address payable","name":"owner","type":"address"},
		{"internalType":"address payable","name":"seller","type":"address"},
		{"internalType":"uint256","name":"price","type":"uint256"},
		{"internalType":"bool","name":"` + flag + `","type":"bool"}
	]`
}

// registryABIJSON is the subset of the marketplace contract this service calls
func registryABIJSON(shape domain.RegistryShape) string {
	tuple := listedTokenTuple(shape)
	return `[
	{"inputs":[],"name":"getAllTokens","outputs":[{"components":` + tuple + `,"internalType":"struct NFTMarketplace.ListedToken[]","name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"owner","type":"address"}],"name":"getTokensOfOwner","outputs":[{"components":` + tuple + `,"internalType":"struct NFTMarketplace.ListedToken[]","name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"tokenId","type":"uint256"}],"name":"getListedTokenForId","outputs":[{"components":` + tuple + `,"internalType":"struct NFTMarketplace.ListedToken","name":"","type":"tuple"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getListingPrice","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"string","name":"tokenURI","type":"string"},{"internalType":"uint256","name":"price","type":"uint256"}],"name":"createToken","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"payable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"tokenId","type":"uint256"},{"internalType":"uint256","name":"price","type":"uint256"}],"name":"resellToken","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"tokenId","type":"uint256"}],"name":"executeSale","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[{"internalType":"address","name":"operator","type":"address"},{"internalType":"bool","name":"approved","type":"bool"}],"name":"setApprovalForAll","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"from","type":"address"},{"indexed":true,"internalType":"address","name":"to","type":"address"},{"indexed":true,"internalType":"uint256","name":"tokenId","type":"uint256"}],"name":"Transfer","type":"event"}
]`
}

// RegistryABI parses the marketplace ABI for the given registry shape
func RegistryABI(shape domain.RegistryShape) (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(registryABIJSON(shape)))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return parsed, nil
}
