package report

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/domain/shift"
)

var twoDecimals = regexp.MustCompile(`^\d+\.\d{2}$`)

func TestBuildTable_Layout(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{
		emp("e1", "Mustafa (1)", 150, true),
		emp("e2", "Ayşe Yılmaz", 140, true),
	}
	rows, _ := Summarize([]shift.Shift{workShift("e1", 9), workShift("e2", 7.5)}, roster)
	totals := GrandTotal(rows)

	table := BuildTable(rows, totals, "Eylül 2025", "Test Mağazası")

	// Header block: title, shop, period, blank, column labels.
	require.Len(t, table.Rows, 5+len(rows)+2)
	assert.Equal(t, []string{"Vardiya Çizelgesi Aylık Raporu"}, table.Rows[0])
	assert.Equal(t, []string{"Test Mağazası"}, table.Rows[1])
	assert.Equal(t, []string{"Eylül 2025"}, table.Rows[2])
	assert.Equal(t, []string{""}, table.Rows[3])
	assert.Equal(t,
		[]string{"Çalışan Adı", "Toplam Saat", "Saatlik Ücret (₺)", "Toplam Tutar (₺)"},
		table.Rows[4])

	// Per-employee rows in summary order.
	assert.Equal(t, []string{"Mustafa (1)", "9.00", "150.00", "1350.00"}, table.Rows[5])
	assert.Equal(t, []string{"Ayşe Yılmaz", "7.50", "140.00", "1050.00"}, table.Rows[6])

	// Blank separator, then the grand-total row.
	assert.Equal(t, []string{""}, table.Rows[7])
	assert.Equal(t, "GENEL TOPLAM", table.Rows[8][0])
	assert.Equal(t, "16.50", table.Rows[8][1])
	assert.Equal(t, "2400.00", table.Rows[8][3])
}

func TestBuildTable_AllValuesTwoDecimals(t *testing.T) {
	t.Parallel()

	roster := []employee.Employee{
		emp("e1", "A", 150.5, true),
		emp("e2", "B", 99.99, true),
	}
	rows, _ := Summarize([]shift.Shift{workShift("e1", 7.52), workShift("e2", 0.1)}, roster)
	table := BuildTable(rows, GrandTotal(rows), "Ekim 2025", "Test")

	for _, r := range table.Rows[5 : 5+len(rows)] {
		for _, cell := range r[1:] {
			assert.Regexp(t, twoDecimals, cell)
		}
	}
	total := table.Rows[len(table.Rows)-1]
	for _, cell := range total[1:] {
		assert.Regexp(t, twoDecimals, cell)
	}
}
