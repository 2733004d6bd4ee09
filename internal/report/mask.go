package report

import "strings"

// maskedTail replaces everything after the first rune of s.
// An empty string stays fully masked so report columns never reveal
// whether a value was present.
func maskedTail(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return "***"
	}
	return string(r[0]) + "***"
}

// MaskUsername masks a username for shared reports, keeping only the
// first character. Email addresses keep their domain part so the report
// remains useful for spotting provider-wide reuse:
//
//	"alice"             -> "a***"
//	"alice@example.com" -> "a***@example.com"
func MaskUsername(username string) string {
	local, domain, found := strings.Cut(username, "@")
	if !found {
		return maskedTail(username)
	}
	return maskedTail(local) + "@" + domain
}

// MaskSite masks a site or domain, hiding the first label but keeping
// the rest so the reader can still tell the kind of service:
//
//	"github.com"         -> "g***.com"
//	"accounts.google.com" -> "a***.google.com"
//	"My Bank"            -> "M***"
func MaskSite(site string) string {
	first, rest, found := strings.Cut(site, ".")
	if !found {
		return maskedTail(site)
	}
	return maskedTail(first) + "." + rest
}
