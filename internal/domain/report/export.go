package report

import "fmt"

// Table is the generic row/column shape consumed by the spreadsheet
// and print renderers: a header block, one row per employee, a blank
// separator, and a grand-total row. All numbers are preformatted to
// 2 decimals; consumers must render them verbatim and never re-round.
type Table struct {
	Rows [][]string
}

// Column labels match the shop's original report layout.
const (
	exportTitle       = "Vardiya Çizelgesi Aylık Raporu"
	exportColName     = "Çalışan Adı"
	exportColHours    = "Toplam Saat"
	exportColRate     = "Saatlik Ücret (₺)"
	exportColPay      = "Toplam Tutar (₺)"
	exportTotalsLabel = "GENEL TOPLAM"
)

// BuildTable reshapes a monthly summary into the export table. Pure
// formatting: no new computation happens here.
func BuildTable(rows []SummaryRow, totals Totals, monthLabel, shopName string) Table {
	out := make([][]string, 0, len(rows)+7)

	out = append(out,
		[]string{exportTitle},
		[]string{shopName},
		[]string{monthLabel},
		[]string{""},
		[]string{exportColName, exportColHours, exportColRate, exportColPay},
	)

	for _, row := range rows {
		out = append(out, []string{
			row.Employee.FullName,
			fmt.Sprintf("%.2f", row.TotalHours),
			row.Employee.HourlyRate.StringFixed(2),
			row.TotalPay.StringFixed(2),
		})
	}

	out = append(out,
		[]string{""},
		[]string{
			exportTotalsLabel,
			fmt.Sprintf("%.2f", totals.TotalHours),
			totals.AverageHourlyRate.StringFixed(2),
			totals.TotalPay.StringFixed(2),
		},
	)

	return Table{Rows: out}
}
