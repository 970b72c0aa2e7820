package pointplot

import (
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Load reads the file at path and parses it into a table with the given
// columns. See Parse for the format. Nothing but a complete table is
// returned: any malformed line fails the whole load.
func Load(path string, columns []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := parse(f, columns)
	if err != nil {
		if re, ok := err.(readError); ok {
			return nil, &NotFoundError{Path: path, Err: re.err}
		}
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	log.WithFields(log.Fields{
		"path":  path,
		"rows":  t.N(),
		"arity": t.Arity(),
	}).Debug("table loaded")
	return t, nil
}

// Parse reads all of r and converts it into a table. The content is
// trimmed of leading and trailing whitespace, split into lines and each
// line split on commas. Every line must have exactly len(columns)
// fields and every field must be a floating point number as accepted by
// strconv.ParseFloat. Empty content gives an empty table.
func Parse(r io.Reader, columns []string) (*Table, error) {
	t, err := parse(r, columns)
	if re, ok := err.(readError); ok {
		return nil, errors.Wrap(re.err, "reading input")
	}
	return t, err
}

// readError marks failures of the underlying reader.
type readError struct{ err error }

func (e readError) Error() string { return e.err.Error() }

func parse(r io.Reader, columns []string) (*Table, error) {
	if err := checkColumns(columns); err != nil {
		return nil, err
	}

	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, readError{err}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	content := strings.TrimSpace(string(buf))
	if content == "" {
		return newTable(cols, []Record{}), nil
	}

	lines := strings.Split(content, "\n")
	rows := make([]Record, 0, len(lines))
	for i, line := range lines {
		rec, err := parseLine(line, i+1, len(cols))
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}

	return newTable(cols, rows), nil
}

// parseLine converts the n'th line into a record of arity fields.
func parseLine(line string, n int, arity int) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) != arity {
		return nil, &ArityError{Line: n, Got: len(fields), Want: arity}
	}

	rec := make(Record, arity)
	for i, field := range fields {
		token := strings.TrimSpace(field)
		if isHex(token) {
			return nil, &ParseError{Line: n, Field: i + 1, Token: token, Err: errHexFloat}
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &ParseError{Line: n, Field: i + 1, Token: token, Err: err}
		}
		rec[i] = v
	}
	return rec, nil
}

var errHexFloat = errors.New("hexadecimal numbers are not allowed")

// isHex reports whether token is a hexadecimal literal, which
// strconv.ParseFloat would accept.
func isHex(token string) bool {
	token = strings.TrimLeft(token, "+-")
	return strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X")
}
