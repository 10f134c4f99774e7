package shopping

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shopperwise/internal/models"
)

// ExportXLSX renders a shopping list as a spreadsheet, one sheet of items
// grouped by store section plus a summary sheet. Returns the encoded file.
func (d *Deriver) ExportXLSX(list *models.ShoppingList) ([]byte, error) {
	if list == nil {
		return nil, fmt.Errorf("%w: nil shopping list", ErrInvalidInput)
	}
	items, err := list.GetItems()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable list items: %v", ErrInvalidInput, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Shopping List"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"Section", "Item", "Quantity", "Unit", "Category", "Estimated Price", "Purchased", "Notes"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, section := range d.OrganizeByStoreSections(items) {
		for _, item := range section.Items {
			purchased := "No"
			if item.Purchased {
				purchased = "Yes"
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			values := []interface{}{
				section.SectionName,
				item.Name,
				item.Quantity,
				item.Unit,
				string(item.Category),
				item.EstimatedPrice,
				purchased,
				item.Notes,
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, err
			}
			row++
		}
	}

	stats := d.CalculateShoppingStats(items)
	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, err
	}
	summaryRows := [][]interface{}{
		{"Total Items", stats.TotalItems},
		{"Estimated Total", stats.TotalEstimated},
		{"Purchased", stats.PurchasedItems},
		{"Remaining", stats.RemainingItems},
		{"Actual Spent", stats.ActualSpent},
	}
	for i, vals := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summary, cell, &vals); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
