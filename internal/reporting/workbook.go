package reporting

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	detailSheet  = "Detailed Orders"
	summarySheet = "Distribution Summary"
	dateLayout   = "2006-01-02"
)

var detailHeader = []any{
	"Order Number", "Email", "Product Name", "Customer Item #", "Color", "Size",
	"Shipping Name", "Shipping Address", "Shipping City", "Shipping State",
	"Shipping ZIP", "Shipping Country", "Order Date",
}

var summaryHeader = []any{
	"Product Name", "Customer Item #", "Color", "Size", "Deco", "Quantity",
}

// Filename builds the export attachment name for the given brand and day.
func Filename(brand string, now time.Time) string {
	return fmt.Sprintf("%s-orders-%s.xlsx", brand, now.UTC().Format(dateLayout))
}

// BuildWorkbook renders the two export sheets. The caller owns closing the
// returned file.
func BuildWorkbook(detail []DetailRow, summary []SummaryRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), detailSheet); err != nil {
		return nil, fmt.Errorf("rename detail sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	if err := f.SetSheetRow(detailSheet, "A1", &detailHeader); err != nil {
		return nil, fmt.Errorf("write detail header: %w", err)
	}
	for i, row := range detail {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{
			row.OrderNumber, row.Email, row.ProductName, row.CustomerItemNumber,
			row.Color, row.Size, row.ShippingName, row.ShippingAddress,
			row.ShippingCity, row.ShippingState, row.ShippingZip,
			row.ShippingCountry, row.OrderDate.UTC().Format(dateLayout),
		}
		if err := f.SetSheetRow(detailSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write detail row %d: %w", i+1, err)
		}
	}

	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return nil, fmt.Errorf("write summary header: %w", err)
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{
			row.ProductName, row.CustomerItemNumber, row.Color, row.Size,
			row.Deco, row.Quantity,
		}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	return f, nil
}
