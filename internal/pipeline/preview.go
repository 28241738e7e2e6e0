package pipeline

import (
	"strconv"

	"statmerge/internal/stat"
	"statmerge/internal/tableview"
)

// Field IDs for the standard record preview.
const (
	fieldID = iota
	fieldCount
	fieldCost
	fieldPrimary
	fieldMode
)

// DefaultPreviewLines caps the preview when the caller does not say
// otherwise.
const DefaultPreviewLines = 10

func previewFields() []tableview.Field {
	return []tableview.Field{
		{Header: "#", ID: tableview.RowNumberID, Width: 6},
		{Header: "id", ID: fieldID, Width: 12},
		{Header: "count", ID: fieldCount, Width: 10},
		{Header: "cost", ID: fieldCost, Width: 14},
		{Header: "primary", ID: fieldPrimary, Width: 7},
		{Header: "mode", ID: fieldMode, Width: 4},
	}
}

func formatRecordField(id int, r *stat.Record) string {
	switch id {
	case fieldID:
		return strconv.FormatInt(r.ID, 10)
	case fieldCount:
		return strconv.FormatInt(int64(r.Count), 10)
	case fieldCost:
		return strconv.FormatFloat(float64(r.Cost), 'g', -1, 32)
	case fieldPrimary:
		if r.Primary {
			return "1"
		}

		return "0"
	case fieldMode:
		return strconv.Itoa(int(r.Mode))
	default:
		return ""
	}
}

// NewRecordView builds the standard preview layout over records.
func NewRecordView() (*tableview.View[stat.Record], error) {
	return tableview.New(formatRecordField, previewFields())
}
