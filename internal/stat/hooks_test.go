package stat

import (
	"math/rand/v2"
	"testing"
)

// Records equal under the default comparator must hash equal, and the hash
// must ignore every non-key field.
func Test_HashRecord_Agrees_With_EqualRecords(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7))

	for range 1000 {
		id := rng.Int64()

		a := Record{ID: id, Count: int32(rng.IntN(100)), Cost: rng.Float32(), Primary: true, Mode: 1}
		b := Record{ID: id, Count: int32(rng.IntN(100)), Cost: rng.Float32(), Primary: false, Mode: 6}

		if !EqualRecords(a, b) {
			t.Fatalf("records with id %d should compare equal", id)
		}

		if HashRecord(a) != HashRecord(b) {
			t.Fatalf("equal records hash differently: id %d", id)
		}
	}
}

func Test_HashRecord_Is_Deterministic_And_Spreads(t *testing.T) {
	t.Parallel()

	if HashRecord(Record{ID: 90189}) != HashRecord(Record{ID: 90189}) {
		t.Fatal("hash is not deterministic")
	}

	seen := make(map[uint64]int64)

	for id := int64(0); id < 4096; id++ {
		h := HashRecord(Record{ID: id})
		if prev, dup := seen[h]; dup {
			t.Fatalf("ids %d and %d collide on %#x", prev, id, h)
		}

		seen[h] = id
	}
}

func Test_MergeRecords_Folds_Every_Field(t *testing.T) {
	t.Parallel()

	dst := Record{ID: 90089, Count: 1, Cost: 88.90, Primary: true, Mode: 0}
	src := Record{ID: 90089, Count: 13, Cost: 0.011, Primary: false, Mode: 2}

	MergeRecords(&dst, src)

	if dst.ID != 90089 {
		t.Errorf("id changed to %d", dst.ID)
	}

	if dst.Count != 14 {
		t.Errorf("count = %d, want 14", dst.Count)
	}

	if want := float32(88.90) + float32(0.011); dst.Cost != want {
		t.Errorf("cost = %v, want %v", dst.Cost, want)
	}

	if dst.Primary {
		t.Error("primary survived an AND with false")
	}

	if dst.Mode != 2 {
		t.Errorf("mode = %d, want 2", dst.Mode)
	}
}

func Test_MergeRecords_Keeps_Larger_Mode(t *testing.T) {
	t.Parallel()

	dst := Record{Mode: 6}
	MergeRecords(&dst, Record{Mode: 3})

	if dst.Mode != 6 {
		t.Errorf("mode = %d, want 6", dst.Mode)
	}
}
