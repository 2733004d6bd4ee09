package normalize

import (
	"net/netip"
	"net/url"
	"strings"
)

// IsDevLocalURL reports whether a URL points at a development or local
// network origin: localhost names, loopback (127.0.0.0/8, ::1), the
// unspecified address 0.0.0.0, or private IPv4 ranges (10.0.0.0/8,
// 172.16.0.0/12, 192.168.0.0/16). An empty or unparseable URL is not
// considered local.
func IsDevLocalURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	host := hostOf(rawURL)
	if host == "" {
		return false
	}

	lower := strings.ToLower(host)
	if lower == "localhost" || strings.HasSuffix(lower, ".localhost") {
		return true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	return addr.IsLoopback() || addr.IsUnspecified() || addr.IsPrivate()
}

// hostOf extracts the host component of a URL, tolerating scheme-less
// inputs like "192.168.0.1/admin" that browser exports sometimes hold.
func hostOf(rawURL string) string {
	if strings.Contains(rawURL, "://") {
		if u, err := url.Parse(rawURL); err == nil {
			return u.Hostname()
		}
		return ""
	}

	// No scheme: treat everything before the first slash as the host.
	host := rawURL
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	// Strip a port if present (but leave IPv6 literals alone).
	if !strings.Contains(host, "::") {
		if i := strings.LastIndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
	}
	return strings.Trim(host, "[]")
}
