package uri

import (
	"net/url"
	"strings"
)

// Gateway identifies one of the interchangeable IPFS HTTP gateways
type Gateway string

const (
	GatewayPinata     Gateway = "pinata"
	GatewayIPFS       Gateway = "ipfs"
	GatewayCloudflare Gateway = "cloudflare"
	GatewayDweb       Gateway = "dweb"
)

// IPFSScheme is the content-addressing scheme prefix of a locator
const IPFSScheme = "ipfs://"

var gatewayBaseURLs = map[Gateway]string{
	GatewayPinata:     "https://gateway.pinata.cloud/ipfs/",
	GatewayIPFS:       "https://ipfs.io/ipfs/",
	GatewayCloudflare: "https://cloudflare-ipfs.com/ipfs/",
	GatewayDweb:       "https://dweb.link/ipfs/",
}

// gatewayHosts holds the hostnames of the known gateways, derived once from gatewayBaseURLs
var gatewayHosts = func() []string {
	hosts := make([]string, 0, len(gatewayBaseURLs))
	for _, base := range gatewayBaseURLs {
		u, err := url.Parse(base)
		if err != nil {
			continue
		}
		hosts = append(hosts, u.Hostname())
	}
	return hosts
}()

// ParseGateway returns the gateway with the given id, falling back to pinata for unknown ids
func ParseGateway(id string) Gateway {
	g := Gateway(strings.ToLower(strings.TrimSpace(id)))
	if _, ok := gatewayBaseURLs[g]; ok {
		return g
	}
	return GatewayPinata
}

// BaseURL returns the gateway's URL prefix, ending in /ipfs/
func (g Gateway) BaseURL() string {
	if base, ok := gatewayBaseURLs[g]; ok {
		return base
	}
	return gatewayBaseURLs[GatewayPinata]
}

// Resolve turns a locator into an HTTP(S) fetch URL on the given gateway (pinata by default).
//
// Empty input yields an empty string. The ipfs:// prefix is stripped; a path that already
// points at a known gateway, or any other absolute http(s) URL, is returned unchanged so
// Resolve(Resolve(x)) == Resolve(x). Everything else is appended to the gateway base URL.
//
// Two cases are easy to miss:
//   - Off-IPFS hosts pass through untouched: "https://example.com/1.json" is fetched from
//     example.com, never rewritten to "<gateway>/ipfs/https://example.com/1.json".
//   - "ipfs://" with nothing after it carries no CID and resolves to "", like empty input.
//     Callers that need a fetchable URL must treat "" as unresolvable.
func Resolve(locator string, gateway ...Gateway) string {
	g := GatewayPinata
	if len(gateway) > 0 {
		g = gateway[0]
	}

	locator = strings.TrimSpace(locator)
	if locator == "" {
		return ""
	}

	path := strings.TrimPrefix(locator, IPFSScheme)
	if path == "" {
		return ""
	}

	if containsKnownGatewayHost(path) || isHTTPURL(path) {
		return path
	}

	return g.BaseURL() + strings.TrimPrefix(path, "/")
}

func containsKnownGatewayHost(path string) bool {
	for _, host := range gatewayHosts {
		if strings.Contains(path, host) {
			return true
		}
	}
	return false
}

func isHTTPURL(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Resolver resolves locators against a configured default gateway
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve converts a locator into a gateway fetch URL. It never fails.
	Resolve(locator string) string
}

type resolver struct {
	gateway Gateway
}

// NewResolver creates a resolver bound to the given default gateway
func NewResolver(gateway Gateway) Resolver {
	return &resolver{gateway: gateway}
}

func (r *resolver) Resolve(locator string) string {
	return Resolve(locator, r.gateway)
}
