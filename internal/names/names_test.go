package names

import (
	"testing"

	"logsim/internal/token"
)

func TestReservedIDsAreStable(t *testing.T) {
	a, b := New(), New()
	for i, k := range token.Reserved {
		id, ok := a.Query(k.Text())
		if !ok {
			t.Fatalf("reserved %q missing", k.Text())
		}
		if int(id) != i {
			t.Errorf("id(%q) = %d, want %d", k.Text(), id, i)
		}
		if id2, _ := b.Query(k.Text()); id2 != id {
			t.Errorf("id(%q) differs across tables: %d vs %d", k.Text(), id, id2)
		}
		if got := a.Classify(id); got != k {
			t.Errorf("Classify(%d) = %v, want %v", id, got, k)
		}
	}
	if a.Len() != len(token.Reserved) {
		t.Errorf("Len = %d, want %d", a.Len(), len(token.Reserved))
	}
}

func TestLookupOrInsertAssignsSequentialIDs(t *testing.T) {
	tbl := New()
	base := token.NameID(len(token.Reserved))

	if id := tbl.LookupOrInsert("SW1"); id != base {
		t.Fatalf("first external id = %d, want %d", id, base)
	}
	if id := tbl.LookupOrInsert("SW2"); id != base+1 {
		t.Fatalf("second external id = %d, want %d", id, base+1)
	}
	if id := tbl.LookupOrInsert("SW1"); id != base {
		t.Fatalf("repeat lookup = %d, want %d", id, base)
	}
	if id := tbl.LookupOrInsert("DEVICES"); id != 0 {
		t.Fatalf("reserved lookup = %d, want 0", id)
	}
}

func TestQueryDoesNotInsert(t *testing.T) {
	tbl := New()
	if _, ok := tbl.Query("A"); ok {
		t.Fatalf("Query must not find an absent name")
	}
	if tbl.Len() != len(token.Reserved) {
		t.Fatalf("Query mutated the table")
	}
}

func TestLookupManyPreservesOrder(t *testing.T) {
	tbl := New()
	ids := tbl.LookupMany([]string{"B", "A", "B", "AND"})
	base := token.NameID(len(token.Reserved))
	want := []token.NameID{base, base + 1, base, 11}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestGetString(t *testing.T) {
	tbl := New()
	id := tbl.LookupOrInsert("clk1")
	if s, ok := tbl.GetString(id); !ok || s != "clk1" {
		t.Errorf("GetString(%d) = %q,%v", id, s, ok)
	}
	if _, ok := tbl.GetString(id + 100); ok {
		t.Errorf("GetString of unassigned id must fail")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("GetString(-1) did not panic")
		}
	}()
	tbl.GetString(-1)
}

func TestClassifyExternal(t *testing.T) {
	cases := []struct {
		s    string
		want token.Kind
	}{
		{"123", token.Number},
		{"007", token.Number},
		{"a123", token.Ident},
		{"_x", token.Ident},
		{"I1", token.Ident},
		{"12a", token.Ident},
		{"２３", token.Number},
		{"x²", token.Ident},
	}
	for _, order := range [][]int{{0, 1, 2, 3, 4, 5, 6, 7}, {7, 6, 5, 4, 3, 2, 1, 0}} {
		tbl := New()
		for _, i := range order {
			tc := cases[i]
			id := tbl.LookupOrInsert(tc.s)
			if got := tbl.Classify(id); got != tc.want {
				t.Errorf("Classify(%q) = %v, want %v", tc.s, got, tc.want)
			}
			if again := tbl.Classify(id); again != tbl.Classify(id) {
				t.Errorf("Classify(%q) not idempotent", tc.s)
			}
		}
	}
}

func TestAllocateErrorCodes(t *testing.T) {
	tbl := New()
	first := tbl.AllocateErrorCodes(3)
	second := tbl.AllocateErrorCodes(2)
	want := []int{0, 1, 2, 3, 4}
	got := append(first, second...)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("codes = %v, want %v", got, want)
		}
	}
	if n := len(tbl.AllocateErrorCodes(0)); n != 0 {
		t.Errorf("AllocateErrorCodes(0) returned %d codes", n)
	}
	// name ids are independent of error codes
	if id := tbl.LookupOrInsert("X"); int(id) != len(token.Reserved) {
		t.Errorf("error codes leaked into name ids: %d", id)
	}
}
