package pointplot

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func writeInput(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Cannot write input: %s", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	Convey("When loading a file with three columns", t, func() {
		path := writeInput(t, "1,2,3\n4,5,6")
		table, err := Load(path, []string{"x", "y", "z"})

		So(err, ShouldBeNil)
		Convey("the rows are in file order", func() {
			So(table.N(), ShouldEqual, 2)
			So(table.Rows(), ShouldResemble, []Record{{1, 2, 3}, {4, 5, 6}})
		})
		Convey("the columns are as given", func() {
			So(table.Columns(), ShouldResemble, []string{"x", "y", "z"})
			So(table.Arity(), ShouldEqual, 3)
		})
	})

	Convey("When loading a file with two columns", t, func() {
		path := writeInput(t, "0,0\n1,1\n2,4\n")
		table, err := Load(path, []string{"x", "y"})

		So(err, ShouldBeNil)
		So(table.Rows(), ShouldResemble, []Record{{0, 0}, {1, 1}, {2, 4}})
	})

	Convey("When the file does not exist", t, func() {
		path := filepath.Join(t.TempDir(), "missing.txt")
		table, err := Load(path, []string{"x", "y"})

		So(table, ShouldBeNil)
		var nf *NotFoundError
		So(errors.As(err, &nf), ShouldBeTrue)
		So(nf.Path, ShouldEqual, path)
	})

	Convey("When the path cannot be read", t, func() {
		dir := t.TempDir()
		table, err := Load(dir, []string{"x", "y"})

		So(table, ShouldBeNil)
		var nf *NotFoundError
		So(errors.As(err, &nf), ShouldBeTrue)
		So(nf.Path, ShouldEqual, dir)
		So(nf.Err, ShouldNotBeNil)
	})

	Convey("When a line lacks a field", t, func() {
		path := writeInput(t, "1,2,3\n4,5\n7,8,9")
		table, err := Load(path, []string{"x", "y", "z"})

		So(table, ShouldBeNil)
		var ae *ArityError
		So(errors.As(err, &ae), ShouldBeTrue)
		So(*ae, ShouldResemble, ArityError{Line: 2, Got: 2, Want: 3})
		So(err.Error(), ShouldContainSubstring, path)
	})

	Convey("When a field is not a number", t, func() {
		path := writeInput(t, "1,2\n3,abc")
		table, err := Load(path, []string{"x", "y"})

		So(table, ShouldBeNil)
		var pe *ParseError
		So(errors.As(err, &pe), ShouldBeTrue)
		So(pe.Line, ShouldEqual, 2)
		So(pe.Field, ShouldEqual, 2)
		So(pe.Token, ShouldEqual, "abc")
	})
}

func TestParse(t *testing.T) {
	columns := []string{"x", "y"}

	tests := []struct {
		name  string
		input string
		want  []Record
	}{
		{"empty", "", []Record{}},
		{"only whitespace", " \n\t\n ", []Record{}},
		{"outer whitespace", "\n\n 1,2\n3,4 \n\n", []Record{{1, 2}, {3, 4}}},
		{"crlf", "1,2\r\n3,4\r\n", []Record{{1, 2}, {3, 4}}},
		{"exponent", "1e3,-2.5E-2\n.5,+7", []Record{{1000, -0.025}, {0.5, 7}}},
		{"negative", "-1,-2", []Record{{-1, -2}}},
	}

	for _, tc := range tests {
		table, err := Parse(strings.NewReader(tc.input), columns)
		if err != nil {
			t.Errorf("%s: unexpected error %s", tc.name, err)
			continue
		}
		if got := table.Rows(); len(got) != len(tc.want) {
			t.Errorf("%s: got %d rows, want %d", tc.name, len(got), len(tc.want))
			continue
		}
		for i, want := range tc.want {
			got := table.Row(i)
			for j := range want {
				if got[j] != want[j] {
					t.Errorf("%s: row %d = %v, want %v", tc.name, i, got, want)
					break
				}
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		columns []string
		check   func(error) bool
	}{
		{"1,2,3", []string{"x", "y"}, isArity},
		{"1", []string{"x", "y"}, isArity},
		{"1,2\n\n3,4", []string{"x", "y"}, isArity}, // inner blank line
		{"1,", []string{"x", "y"}, isParse},
		{"1,abc", []string{"x", "y"}, isParse},
		{"1;2", []string{"x", "y"}, isArity},
		{"0x1p3,1", []string{"x", "y"}, isParse},
		{"1,-0X10", []string{"x", "y"}, isParse},
		{"1,2", nil, isColumn},
		{"1,2", []string{"x", "x"}, isColumn},
		{"1,2", []string{"x", ""}, isColumn},
	}

	for i, tc := range tests {
		table, err := Parse(strings.NewReader(tc.input), tc.columns)
		if table != nil {
			t.Errorf("%d %q: got table %s", i, tc.input, table)
		}
		if !tc.check(err) {
			t.Errorf("%d %q: wrong error %v", i, tc.input, err)
		}
	}
}

func TestParseReadFailure(t *testing.T) {
	table, err := Parse(iotest.ErrReader(errors.New("disk on fire")), []string{"x", "y"})
	if table != nil {
		t.Errorf("Got table %s", table)
	}
	if err == nil || !strings.Contains(err.Error(), "reading input: disk on fire") {
		t.Errorf("Got error %v", err)
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		t.Errorf("Reader failure reported as %v", nf)
	}
}

func isArity(err error) bool  { var e *ArityError; return errors.As(err, &e) }
func isParse(err error) bool  { var e *ParseError; return errors.As(err, &e) }
func isColumn(err error) bool { var e *ColumnError; return errors.As(err, &e) }

func TestParseKeepsLineOrder(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString(strings.Repeat("9,", 2))
		sb.WriteString(string(rune('0' + i%10)))
		sb.WriteString("\n")
	}
	table, err := Parse(strings.NewReader(sb.String()), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if table.N() != 500 {
		t.Fatalf("Got %d rows, want 500", table.N())
	}
	for i := 0; i < table.N(); i++ {
		if got := table.Row(i)[2]; got != float64(i%10) {
			t.Errorf("Row %d has c=%v", i, got)
		}
	}
}
