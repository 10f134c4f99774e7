package shopping

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shopperwise/internal/models"
)

// Format selects an export encoding.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// CSVHeader is the fixed first row of a CSV export.
const CSVHeader = "Item,Quantity,Unit,Category,Estimated Price,Purchased,Notes"

// Export renders a shopping list in the requested format. The current time
// only enters the JSON export's exportDate field; everything else is a pure
// function of the list. A nil list or unknown format is a caller error.
func (d *Deriver) Export(list *models.ShoppingList, format Format) (string, error) {
	if list == nil {
		return "", fmt.Errorf("%w: nil shopping list", ErrInvalidInput)
	}
	items, err := list.GetItems()
	if err != nil {
		return "", fmt.Errorf("%w: unreadable list items: %v", ErrInvalidInput, err)
	}

	switch Format(strings.ToLower(string(format))) {
	case FormatCSV:
		return d.exportCSV(items), nil
	case FormatJSON:
		return d.exportJSON(list, items)
	case FormatText:
		return d.exportText(list, items), nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", ErrInvalidInput, format)
	}
}

func (d *Deriver) exportCSV(items []models.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for _, item := range items {
		purchased := "No"
		if item.Purchased {
			purchased = "Yes"
		}
		fields := []string{
			item.Name,
			item.Quantity,
			item.Unit,
			string(item.Category),
			fmt.Sprintf("£%.2f", item.EstimatedPrice),
			purchased,
			item.Notes,
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (d *Deriver) exportJSON(list *models.ShoppingList, items []models.ShoppingListItem) (string, error) {
	payload := struct {
		ListName   string                    `json:"listName"`
		Store      string                    `json:"store"`
		Items      []models.ShoppingListItem `json:"items"`
		ExportDate string                    `json:"exportDate"`
		Stats      Stats                     `json:"stats"`
	}{
		ListName:   list.Name,
		Store:      list.TargetStore,
		Items:      items,
		ExportDate: d.now().UTC().Format(time.RFC3339),
		Stats:      d.CalculateShoppingStats(items),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (d *Deriver) exportText(list *models.ShoppingList, items []models.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString(list.Name)
	b.WriteByte('\n')
	if list.TargetStore != "" {
		fmt.Fprintf(&b, "Store: %s\n", list.TargetStore)
	}
	fmt.Fprintf(&b, "Generated: %s\n\n", d.now().Format("02/01/2006"))

	for _, section := range d.OrganizeByStoreSections(items) {
		fmt.Fprintf(&b, "=== %s ===\n", section.SectionName)
		for _, item := range section.Items {
			glyph := "○"
			if item.Purchased {
				glyph = "✓"
			}
			fmt.Fprintf(&b, "%s %s - %s %s", glyph, item.Name, item.Quantity, item.Unit)
			if item.EstimatedPrice > 0 {
				fmt.Fprintf(&b, " (£%.2f)", item.EstimatedPrice)
			}
			if item.Notes != "" {
				fmt.Fprintf(&b, " [%s]", item.Notes)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	stats := d.CalculateShoppingStats(items)
	b.WriteString("=== Summary ===\n")
	fmt.Fprintf(&b, "Total Items: %d\n", stats.TotalItems)
	fmt.Fprintf(&b, "Estimated Total: £%.2f\n", stats.TotalEstimated)
	fmt.Fprintf(&b, "Purchased: %d/%d\n", stats.PurchasedItems, stats.TotalItems)

	return b.String()
}
