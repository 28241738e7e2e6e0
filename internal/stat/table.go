package stat

import (
	"fmt"

	"statmerge/pkg/mergetab"
)

// DefaultBuckets is the bucket count used by production tables. Small
// fixtures (tests) commonly use 8.
const DefaultBuckets = 512

// TableOptions configures a record merge table. Nil hooks fall back to the
// package defaults; a zero Buckets falls back to DefaultBuckets.
type TableOptions struct {
	Buckets int
	Hash    func(Record) uint64
	Combine func(dst *Record, src Record)
	Equal   func(a, b Record) bool
}

// NewTable builds a merge table over records with the defaults filled in:
// MurmurHash2 over ID, the field-wise fold of MergeRecords, and equality on
// ID. Overriding Hash or Equal requires keeping them consistent: records
// equal under Equal must hash equal.
func NewTable(opts TableOptions) (*mergetab.Table[Record], error) {
	if opts.Buckets == 0 {
		opts.Buckets = DefaultBuckets
	}

	if opts.Hash == nil {
		opts.Hash = HashRecord
	}

	if opts.Combine == nil {
		opts.Combine = MergeRecords
	}

	if opts.Equal == nil {
		opts.Equal = EqualRecords
	}

	t, err := mergetab.New(mergetab.Options[Record]{
		Buckets: opts.Buckets,
		Hash:    opts.Hash,
		Combine: opts.Combine,
		Equal:   opts.Equal,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	return t, nil
}
