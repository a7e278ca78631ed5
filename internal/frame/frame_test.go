package frame

import (
	"reflect"
	"strings"
	"testing"
)

func TestFromRows_WidthMismatch(t *testing.T) {
	_, err := FromRows([]string{"A", "B"}, [][]string{{"1", "2"}, {"3"}})
	if err == nil {
		t.Fatal("FromRows() expected error for short row")
	}
}

func TestRename(t *testing.T) {
	f, _ := FromRows([]string{"first", "last"}, [][]string{{"jo", "doe"}})

	if err := f.Rename(map[string]string{"first": "FirstName", "last": "LastName"}); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	want := []string{"FirstName", "LastName"}
	if got := f.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}

	if err := f.Rename(map[string]string{"missing": "X"}); err == nil {
		t.Error("Rename() expected error for missing column")
	}
}

func TestDrop(t *testing.T) {
	f, _ := FromRows([]string{"A", "B", "C"}, [][]string{{"1", "2", "3"}})

	if err := f.Drop("B"); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	if got, want := f.Columns(), []string{"A", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
	if got, want := f.Row(0), []string{"1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Row(0) = %v, want %v", got, want)
	}

	if err := f.Drop("B"); err == nil {
		t.Error("Drop() expected error for absent column")
	}
}

func TestDropIfPresent(t *testing.T) {
	f, _ := FromRows([]string{"A", "Sex", "B"}, [][]string{{"1", "M", "2"}})

	f.DropIfPresent("Sex", "email")

	if got, want := f.Columns(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
}

func TestMap(t *testing.T) {
	f, _ := FromRows([]string{"Zip"}, [][]string{{"685"}, {"12345"}})

	if err := f.Map("Zip", func(s string) string { return strings.Repeat("0", 5-len(s)) + s }); err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if got, _ := f.Cell(0, "Zip"); got != "00685" {
		t.Errorf("Cell(0, Zip) = %q, want %q", got, "00685")
	}

	if err := f.Map("Nope", strings.ToUpper); err == nil {
		t.Error("Map() expected error for absent column")
	}
}

func TestSetColumn(t *testing.T) {
	f, _ := FromRows([]string{"A"}, [][]string{{"1"}, {"2"}})

	// Adds when absent
	f.SetColumn("Hunt", "Y")
	if got, _ := f.Cell(1, "Hunt"); got != "Y" {
		t.Errorf("Cell(1, Hunt) = %q, want %q", got, "Y")
	}

	// Overwrites when present
	f.SetColumn("Hunt", "")
	if got, _ := f.Cell(0, "Hunt"); got != "" {
		t.Errorf("Cell(0, Hunt) = %q, want empty", got)
	}
	if got, want := f.Columns(), []string{"A", "Hunt"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
}

func TestReindex(t *testing.T) {
	f, _ := FromRows([]string{"B", "A", "extra"}, [][]string{{"b", "a", "x"}})

	f.Reindex([]string{"A", "B", "C"})

	if got, want := f.Columns(), []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
	if got, want := f.Row(0), []string{"a", "b", ""}; !reflect.DeepEqual(got, want) {
		t.Errorf("Row(0) = %v, want %v", got, want)
	}
}

func TestDropDuplicates(t *testing.T) {
	f, _ := FromRows([]string{"A", "B"}, [][]string{
		{"1", "2"},
		{"3", "4"},
		{"1", "2"},
		{"1", "2"},
	})

	f.DropDuplicates()

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if got, want := f.Row(1), []string{"3", "4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Row(1) = %v, want %v (order preserved)", got, want)
	}
}

func TestDropDuplicates_NoKeyAliasing(t *testing.T) {
	// Two distinct rows whose cells would collide under naive
	// separator-joined keys must both survive.
	f, _ := FromRows([]string{"A", "B"}, [][]string{
		{"a\x1fb", "c"},
		{"a", "b\x1fc"},
	})

	f.DropDuplicates()

	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (distinct rows must not alias)", f.Len())
	}
}

func TestDropDuplicates_Empty(t *testing.T) {
	f := New([]string{"A"})
	f.DropDuplicates()
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
}

func TestConcat(t *testing.T) {
	a, _ := FromRows([]string{"A", "B"}, [][]string{{"1", "2"}})
	b, _ := FromRows([]string{"A", "B"}, [][]string{{"3", "4"}, {"5", "6"}})

	out, err := Concat(a, b)
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}
	if out.Len() != 3 {
		t.Errorf("Len() = %d, want 3", out.Len())
	}
	if got, want := out.Row(2), []string{"5", "6"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Row(2) = %v, want %v", got, want)
	}
}

func TestConcat_MismatchedColumns(t *testing.T) {
	a := New([]string{"A"})
	b := New([]string{"B"})

	if _, err := Concat(a, b); err == nil {
		t.Fatal("Concat() expected error for mismatched columns")
	}
}

func TestConcat_Empty(t *testing.T) {
	a := New([]string{"A"})
	b := New([]string{"A"})

	out, err := Concat(a, b)
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Len() = %d, want 0", out.Len())
	}
}
