package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/credaudit/credaudit/internal/model"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column aliases, matched against normalized header cells (lowercased,
// with spaces, underscores, and hyphens removed). The sets cover the
// common browser and password-manager export formats.
var (
	nameAliases     = []string{"name", "title", "site", "account", "item"}
	urlAliases      = []string{"url", "website", "loginuri", "origin", "uri"}
	usernameAliases = []string{"username", "user", "login", "loginusername", "email"}
	passwordAliases = []string{"password", "pass", "loginpassword"}
)

// columnMap holds the resolved column index per field, -1 when absent.
type columnMap struct {
	name     int
	url      int
	username int
	password int
}

// Read parses one delimited export from r into raw records.
//
// The reader tolerates UTF-8 and UTF-16 byte-order marks, sniffs the
// delimiter (comma, semicolon, or tab) from the header line, and maps
// columns via the alias tables. Username and password columns are
// required; a file without them is malformed and the returned error
// names the missing columns. Blank lines are skipped and short rows are
// padded, since hand-edited exports are common.
func Read(r io.Reader) ([]model.Record, error) {
	// BOMOverride strips a UTF-8 BOM and transparently decodes UTF-16
	// exports (some password managers write those on Windows).
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	br := bufio.NewReader(decoded)

	delimiter, err := sniffDelimiter(br)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]model.Record, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if isBlank(row) {
			continue
		}
		records = append(records, model.Record{
			Name:     field(row, cols.name),
			URL:      field(row, cols.url),
			Username: field(row, cols.username),
			Password: field(row, cols.password),
		})
	}

	return records, nil
}

// ReadFile parses one export file by path.
func ReadFile(path string) ([]model.Record, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided export path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// sniffDelimiter inspects the header line and picks the delimiter with
// the most occurrences among comma, semicolon, and tab. Comma wins ties
// since it is the overwhelmingly common export format.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	peek, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return 0, fmt.Errorf("failed to inspect export file: %w", err)
	}
	if len(peek) == 0 {
		return 0, ErrEmptyFile
	}

	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	best := ','
	bestCount := strings.Count(line, ",")
	for _, candidate := range []struct {
		delim rune
		count int
	}{
		{';', strings.Count(line, ";")},
		{'\t', strings.Count(line, "\t")},
	} {
		if candidate.count > bestCount {
			best = candidate.delim
			bestCount = candidate.count
		}
	}
	return best, nil
}

// mapColumns resolves header cells to record fields via the alias tables.
func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{name: -1, url: -1, username: -1, password: -1}

	for i, cell := range header {
		normalized := normalizeHeader(cell)
		switch {
		case cols.name < 0 && matchesAlias(normalized, nameAliases):
			cols.name = i
		case cols.url < 0 && matchesAlias(normalized, urlAliases):
			cols.url = i
		case cols.username < 0 && matchesAlias(normalized, usernameAliases):
			cols.username = i
		case cols.password < 0 && matchesAlias(normalized, passwordAliases):
			cols.password = i
		}
	}

	var missing []string
	if cols.username < 0 {
		missing = append(missing, "username")
	}
	if cols.password < 0 {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return columnMap{}, &MissingColumnsError{Columns: missing}
	}
	return cols, nil
}

// normalizeHeader lowercases a header cell and strips separators so
// "Login URI", "login_uri", and "LoginURI" all match the same alias.
func normalizeHeader(cell string) string {
	cell = strings.ToLower(strings.TrimSpace(cell))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		default:
			return r
		}
	}, cell)
}

// matchesAlias reports whether a normalized header cell is in the alias set.
func matchesAlias(cell string, aliases []string) bool {
	for _, a := range aliases {
		if cell == a {
			return true
		}
	}
	return false
}

// field returns the row value at the mapped index, tolerating short rows
// and unmapped columns.
func field(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

// isBlank reports whether every cell of a row is empty.
func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
