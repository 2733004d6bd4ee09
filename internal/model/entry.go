package model

// Record is a single raw row parsed from a credential export file.
// Fields may be empty; the normalizer decides which rows become entries.
// The column mapping (which export column feeds which field) is the
// importer's concern.
type Record struct {
	// Name is the human-readable account name (e.g., "GitHub").
	// Browser exports call this column "name" or "title".
	Name string

	// URL is the origin URL associated with the credential, if any.
	URL string

	// Username is the login identifier.
	Username string

	// Password is the plaintext password exactly as exported.
	Password string
}

// Entry is a normalized credential record.
// Produced once per qualifying row by the normalizer and immutable for
// the lifetime of an analysis pass.
type Entry struct {
	// Site is the human-readable account name, falling back to the
	// origin URL when no name is available.
	Site string `json:"site"`

	// Username is the login identifier.
	Username string `json:"username"`

	// Password is the plaintext password. Never empty after
	// normalization, and never serialized.
	Password string `json:"-"`

	// URL is the origin URL, kept for search and display purposes.
	// May be empty.
	URL string `json:"url,omitempty"`
}

// Key returns the account key identifying this entry.
func (e Entry) Key() AccountKey {
	return AccountKey{Site: e.Site, Username: e.Username}
}

// AccountKey identifies one account by site and username.
//
// Design decision: We use a two-field struct with structural equality
// rather than joining site and username with a separator character.
// A delimiter-concatenated key collides when either field contains the
// separator; a struct key cannot.
type AccountKey struct {
	// Site is the account's site name.
	Site string `json:"site"`

	// Username is the account's login identifier.
	Username string `json:"username"`
}
