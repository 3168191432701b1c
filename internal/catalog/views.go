package catalog

import "github.com/feral-file/ff-catalog/internal/domain"

// Highlights returns the n most recently inserted entries, newest first.
// n <= 0 returns every entry in reverse order.
func Highlights(entries []domain.CatalogEntry, n int) []domain.CatalogEntry {
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}

	out := make([]domain.CatalogEntry, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i])
	}
	return out
}

// ListedOnly keeps the entries currently for sale, preserving order
func ListedOnly(entries []domain.CatalogEntry) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsListed {
			out = append(out, e)
		}
	}
	return out
}
