package normalize

import (
	"strings"

	"github.com/credaudit/credaudit/internal/model"
)

// Options configures normalization.
type Options struct {
	// ExcludeDevLocal drops entries whose origin URL points at a
	// loopback, unspecified, or private-network address. Development
	// and router credentials rarely belong in a hygiene audit.
	ExcludeDevLocal bool
}

// Normalize converts raw records into canonical entries.
//
// Per record: site becomes the name column when non-empty, else the URL.
// Rows with an empty password are dropped, as are rows that are entirely
// empty. Site, username, and URL are whitespace-trimmed; the password is
// kept byte-exact because trimming would alter the secret being audited.
func Normalize(records []model.Record, opts Options) []model.Entry {
	entries := make([]model.Entry, 0, len(records))

	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		rawURL := strings.TrimSpace(r.URL)
		username := strings.TrimSpace(r.Username)

		if r.Password == "" {
			continue
		}
		if opts.ExcludeDevLocal && IsDevLocalURL(rawURL) {
			continue
		}

		site := name
		if site == "" {
			site = rawURL
		}

		entries = append(entries, model.Entry{
			Site:     site,
			Username: username,
			Password: r.Password,
			URL:      rawURL,
		})
	}

	return entries
}
