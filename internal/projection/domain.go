package projection

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// DeriveDomain returns the domain label used for sorting and search.
// If site looks like an absolute URL its host component is used,
// converted to Unicode display form when it is punycode-encoded;
// otherwise site is returned verbatim. The label is a display/sort key
// only, never identity.
func DeriveDomain(site string) string {
	if !strings.Contains(site, "://") {
		return site
	}

	u, err := url.Parse(site)
	if err != nil || u.Hostname() == "" {
		return site
	}

	host := u.Hostname()
	if strings.Contains(host, "xn--") {
		if unicode, err := idna.ToUnicode(host); err == nil {
			return unicode
		}
	}
	return host
}
