package pointplot

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/csvutil"
)

// Format writes the rows of t to w in the input format of Parse: one row
// per line, fields separated by commas, no header. Numbers are written
// in their shortest representation which parses back to the same value.
func Format(w io.Writer, t *Table) error {
	tbl := &csvutil.Table{
		Writer: csv.NewWriter(w),
	}
	tbl.Writer.Comma = ','

	args := make([]interface{}, t.Arity())
	for i, r := range t.rows {
		for j := range r {
			args[j] = r[j]
		}
		if err := tbl.WriteRow(args...); err != nil {
			return errors.Wrapf(err, "writing row %d", i+1)
		}
	}
	return errors.Wrap(tbl.Close(), "flushing rows")
}

// Save writes t to the file path, see Format.
func Save(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := Format(f, t); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
