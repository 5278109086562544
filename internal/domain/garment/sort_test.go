package garment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sortToday = time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

func dueIn(days int) *time.Time {
	d := sortToday.AddDate(0, 0, days)
	return &d
}

func rowsFixture() []ListRow {
	return []ListRow{
		{ID: 1, Name: "far", DueDate: dueIn(20)},
		{ID: 2, Name: "none"},
		{ID: 3, Name: "overdue", DueDate: dueIn(-2)},
		{ID: 4, Name: "soon", DueDate: dueIn(3)},
		{ID: 5, Name: "today", DueDate: dueIn(0)},
	}
}

func names(rows []ListRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestSortOverdueAsc(t *testing.T) {
	rows := rowsFixture()
	Sort(rows, SortOverdue, SortAsc, sortToday)
	assert.Equal(t, []string{"overdue", "today", "soon", "far", "none"}, names(rows))
}

func TestSortDueSoonAsc(t *testing.T) {
	rows := rowsFixture()
	Sort(rows, SortDueSoon, SortAsc, sortToday)
	assert.Equal(t, []string{"today", "soon", "far", "overdue", "none"}, names(rows))
}

func TestSortDescKeepsUndatedLast(t *testing.T) {
	rows := rowsFixture()
	Sort(rows, SortOverdue, SortDesc, sortToday)
	assert.Equal(t, []string{"far", "soon", "today", "overdue", "none"}, names(rows))

	rows = rowsFixture()
	Sort(rows, SortDueSoon, SortDesc, sortToday)
	assert.Equal(t, []string{"overdue", "far", "soon", "today", "none"}, names(rows))
}

func TestSortTieBreaksByDueDateThenID(t *testing.T) {
	d1 := sortToday.AddDate(0, 0, 2)
	d2 := sortToday.AddDate(0, 0, 5)
	rows := []ListRow{
		{ID: 9, Name: "b", DueDate: &d2},
		{ID: 7, Name: "a", DueDate: &d1},
		{ID: 3, Name: "c", DueDate: &d2},
	}
	Sort(rows, SortOverdue, SortAsc, sortToday)
	assert.Equal(t, []string{"a", "c", "b"}, names(rows))
}

func TestDueSoonWindowBoundary(t *testing.T) {
	in := DueSoonWindowDays
	out := DueSoonWindowDays + 1
	rows := []ListRow{
		{ID: 1, Name: "outside", DueDate: dueIn(out)},
		{ID: 2, Name: "edge", DueDate: dueIn(in)},
	}
	Sort(rows, SortDueSoon, SortAsc, sortToday)
	assert.Equal(t, []string{"edge", "outside"}, names(rows))
}

func TestGroupByClientName(t *testing.T) {
	rows := []ListRow{
		{ID: 1, ClientName: "Maria Silva"},
		{ID: 2, ClientName: ""},
		{ID: 3, ClientName: "Alex Chen"},
		{ID: 4, ClientName: "Maria Silva"},
	}

	groups := GroupByClientName(rows, SortAsc)
	require.Len(t, groups, 3)
	assert.Equal(t, "Alex Chen", groups[0].ClientName)
	assert.Equal(t, "Maria Silva", groups[1].ClientName)
	assert.Equal(t, UnknownClient, groups[2].ClientName)
	assert.Len(t, groups[1].Garments, 2)

	desc := GroupByClientName(rows, SortDesc)
	assert.Equal(t, UnknownClient, desc[0].ClientName)
	assert.Equal(t, "Alex Chen", desc[2].ClientName)
}
