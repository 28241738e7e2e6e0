package stat

import (
	"errors"
	"testing"
)

func Test_NewTable_Defaults_Produce_A_Working_Merge(t *testing.T) {
	t.Parallel()

	table, err := NewTable(TableOptions{Buckets: 8})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	defer table.Clear()

	_ = table.Insert(Record{ID: 5, Count: 1, Cost: 2, Primary: true, Mode: 1})
	_ = table.Insert(Record{ID: 5, Count: 2, Cost: 3, Primary: true, Mode: 4})
	_ = table.Insert(Record{ID: 6, Count: 1})

	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}

	h, ok := table.Lookup(Record{ID: 5})
	if !ok {
		t.Fatal("Lookup(id=5) found nothing")
	}

	got, _ := table.Get(h)
	if got.Count != 3 || got.Cost != 5 || !got.Primary || got.Mode != 4 {
		t.Errorf("merged record = %+v", got)
	}
}

func Test_NewTable_Rejects_Non_Power_Of_Two_Buckets(t *testing.T) {
	t.Parallel()

	_, err := NewTable(TableOptions{Buckets: 100})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

// Custom hash and comparator must stay coupled: a modular hash only
// coalesces keys when the comparator also treats them as equal.
func Test_NewTable_Custom_Hash_And_Comparator_Coupling(t *testing.T) {
	t.Parallel()

	modHash := func(r Record) uint64 { return uint64(r.ID % 5) }
	sumCost := func(dst *Record, src Record) { dst.Cost += src.Cost }

	t.Run("comparator treats 5 and 10 equal", func(t *testing.T) {
		t.Parallel()

		table, err := NewTable(TableOptions{
			Buckets: 8,
			Hash:    modHash,
			Combine: sumCost,
			Equal:   func(a, b Record) bool { return a.ID%5 == b.ID%5 },
		})
		if err != nil {
			t.Fatalf("NewTable: %v", err)
		}
		defer table.Clear()

		_ = table.Insert(Record{ID: 5, Cost: 1})
		_ = table.Insert(Record{ID: 10, Cost: 2})

		if table.Len() != 1 {
			t.Fatalf("Len = %d, want 1 (keys coalesce)", table.Len())
		}

		h, _ := table.Lookup(Record{ID: 5})

		got, _ := table.Get(h)
		if got.Cost != 3 {
			t.Errorf("combined cost = %v, want 3", got.Cost)
		}
	})

	t.Run("default comparator keeps them apart", func(t *testing.T) {
		t.Parallel()

		table, err := NewTable(TableOptions{
			Buckets: 8,
			Hash:    modHash,
			Combine: sumCost,
		})
		if err != nil {
			t.Fatalf("NewTable: %v", err)
		}
		defer table.Clear()

		_ = table.Insert(Record{ID: 5, Cost: 1})
		_ = table.Insert(Record{ID: 10, Cost: 2})

		if table.Len() != 2 {
			t.Errorf("Len = %d, want 2 (same hash, distinct keys)", table.Len())
		}
	})
}
