// Package normalize turns raw parsed rows into canonical entries.
//
// Normalization is the boundary between file ingestion and the analysis
// core: it picks the site label (name column, URL fallback), drops rows
// without a password, and can exclude credentials for loopback and
// private-network origins so development accounts don't dilute the audit.
// The core is guaranteed never to see an empty password.
package normalize
