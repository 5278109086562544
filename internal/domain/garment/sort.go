package garment

import (
	"sort"
	"time"
)

type SortMode string

const (
	SortOverdue SortMode = "overdue"
	SortDueSoon SortMode = "due_soon"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// DueSoonWindowDays bounds the "due soon" band: due in 1..7 days.
const DueSoonWindowDays = 7

const UnknownClient = "Unknown Client"

// ListRow is the flattened garment view the list endpoints sort and group.
type ListRow struct {
	ID          uint       `json:"id"`
	OrderID     uint       `json:"order_id"`
	OrderNumber string     `json:"order_number"`
	Name        string     `json:"name"`
	Stage       string     `json:"stage"`
	DueDate     *time.Time `json:"due_date"`
	ClientName  string     `json:"client_name"`
	Icon        string     `json:"icon"`
}

// rank buckets a garment by its due-date urgency. Lower ranks first.
//
// overdue mode:  overdue < due today < due soon < far future < no due date.
// due_soon mode: due today < due soon < far future < overdue < no due date.
// The two modes are deliberately asymmetric: due_soon pushes already-missed
// work below everything still actionable, while overdue surfaces it first.
func rank(mode SortMode, days *int) int {
	if days == nil {
		return 5
	}
	d := *days
	if mode == SortDueSoon {
		switch {
		case d < 0:
			return 4
		case d == 0:
			return 0
		case d <= DueSoonWindowDays:
			return 1
		default:
			return 2
		}
	}
	switch {
	case d < 0:
		return 0
	case d == 0:
		return 1
	case d <= DueSoonWindowDays:
		return 2
	default:
		return 3
	}
}

// Comparator returns a less-func over ListRows for sort.SliceStable.
// Rows without a due date sort last in both modes and both directions;
// direction only flips the ordering among dated rows.
func Comparator(mode SortMode, dir SortDirection, today time.Time) func(a, b ListRow) bool {
	less := func(a, b ListRow) bool {
		ra := rank(mode, DaysUntil(a.DueDate, today))
		rb := rank(mode, DaysUntil(b.DueDate, today))
		if ra != rb {
			return ra < rb
		}
		if a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}
		return a.ID < b.ID
	}

	if dir != SortDesc {
		return less
	}

	return func(a, b ListRow) bool {
		aNil := a.DueDate == nil
		bNil := b.DueDate == nil
		if aNil != bNil {
			return bNil
		}
		if aNil && bNil {
			return a.ID < b.ID
		}
		return less(b, a)
	}
}

// Sort orders rows in place by the given mode and direction.
func Sort(rows []ListRow, mode SortMode, dir SortDirection, today time.Time) {
	less := Comparator(mode, dir, today)
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

type ClientGroup struct {
	ClientName string    `json:"client_name"`
	Garments   []ListRow `json:"garments"`
}

// GroupByClientName buckets rows by client name, substituting UnknownClient
// for missing names, and orders the buckets lexicographically by name.
func GroupByClientName(rows []ListRow, dir SortDirection) []ClientGroup {
	buckets := make(map[string][]ListRow)
	for _, r := range rows {
		name := r.ClientName
		if name == "" {
			name = UnknownClient
		}
		buckets[name] = append(buckets[name], r)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if dir == SortDesc {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	groups := make([]ClientGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, ClientGroup{ClientName: k, Garments: buckets[k]})
	}
	return groups
}
