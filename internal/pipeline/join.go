// Package pipeline wires the codec, the merge table, and the table view
// into the load → join → sort → preview → store flow.
package pipeline

import (
	"errors"
	"fmt"

	"statmerge/internal/stat"
	"statmerge/pkg/mergetab"
)

// Join folds two record slices into their deduplicated union. Every element
// of a is inserted in index order, then every element of b; records sharing
// a key collapse through the table's combine hook, so duplicates within one
// side merge too. One empty side is valid and yields the other side folded;
// both sides empty is stat.ErrInvalidArgument.
//
// The table is owned by the call and cleared before return on every path.
func Join(a, b []stat.Record, opts stat.TableOptions) ([]stat.Record, error) {
	if len(a) == 0 && len(b) == 0 {
		return nil, fmt.Errorf("%w: both join inputs are empty", stat.ErrInvalidArgument)
	}

	table, err := stat.NewTable(opts)
	if err != nil {
		return nil, err
	}
	defer table.Clear()

	for _, side := range [][]stat.Record{a, b} {
		for _, rec := range side {
			err = table.Insert(rec)
			if err != nil {
				return nil, fmt.Errorf("%w: join insert: %v", stat.ErrResourceExhausted, err)
			}
		}
	}

	out, err := table.Materialize()
	if err != nil {
		if errors.Is(err, mergetab.ErrEmpty) {
			return nil, fmt.Errorf("%w: join produced no records", stat.ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%w: join materialize: %v", stat.ErrResourceExhausted, err)
	}

	return out, nil
}
