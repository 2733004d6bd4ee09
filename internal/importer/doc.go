// Package importer reads credential export files into raw records.
//
// It understands the delimited-text exports produced by browsers and
// password managers (Chrome, Firefox, Bitwarden, and similar): CSV or
// TSV with a header row, possibly UTF-8/UTF-16 BOM-prefixed, with
// varying column names. The delimiter is sniffed from the header line
// and column names are matched against a table of known aliases.
//
// The importer performs no interpretation beyond column mapping; the
// normalize package decides which rows become entries.
package importer
