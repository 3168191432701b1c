package uri

import (
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"

	"github.com/feral-file/ff-catalog/internal/domain"
)

// ValidateCID checks that hash is a well-formed CID (v0 or v1)
func ValidateCID(hash string) error {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return fmt.Errorf("%w: empty content hash", domain.ErrInvalidLocator)
	}
	if _, err := cid.Decode(hash); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidLocator, hash, err)
	}
	return nil
}

// CIDFromLocator extracts the root CID of an ipfs:// locator or a gateway URL.
// The second return value is false when no valid CID is present.
func CIDFromLocator(locator string) (string, bool) {
	locator = strings.TrimSpace(locator)

	var path string
	if p, ok := strings.CutPrefix(locator, IPFSScheme); ok {
		path = strings.TrimPrefix(p, "ipfs/")
	} else if _, p, ok := strings.Cut(locator, "/ipfs/"); ok {
		path = p
	} else {
		path = locator
	}

	root, _, _ := strings.Cut(path, "/")
	root, _, _ = strings.Cut(root, "?")
	if ValidateCID(root) != nil {
		return "", false
	}
	return root, true
}
