// Package report renders an inventory into the textual report formats sent to administrators.
//
// The PDF form is a placeholder summary, not a real document.
package report

import (
	"fmt"
	"strings"

	"library/models"
)

type Type string

const (
	TypePdf  Type = "pdf"
	TypeCsv  Type = "csv"
	TypeHtml Type = "html"
)

const csvHeader = "isbn,qte"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders inventory in the given format.
func (generator *Generator) Generate(reportType Type, inventory *models.Inventory) (string, error) {
	switch reportType {
	case TypePdf:
		return generator.ToPdfSummary(inventory), nil
	case TypeCsv:
		return generator.ToCsv(inventory), nil
	case TypeHtml:
		return generator.ToHtmlTable(inventory), nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownReportType, reportType)
	}
}

func (generator *Generator) ToPdfSummary(inventory *models.Inventory) string {
	return fmt.Sprintf("PDF – %d titres dans l'inventaire", inventory.Len())
}

// ToCsv always ends the header with a newline, so an empty inventory yields "isbn,qte\n".
func (generator *Generator) ToCsv(inventory *models.Inventory) string {
	rows := make([]string, 0, inventory.Len())
	for _, entry := range inventory.Entries() {
		rows = append(rows, fmt.Sprintf("%s,%d", entry.Isbn, entry.Quantity))
	}
	return csvHeader + "\n" + strings.Join(rows, "\n")
}

func (generator *Generator) ToHtmlTable(inventory *models.Inventory) string {
	var table strings.Builder
	table.WriteString("<table>")
	for _, entry := range inventory.Entries() {
		fmt.Fprintf(&table, "<tr><td>%s</td><td>%d</td></tr>", entry.Isbn, entry.Quantity)
	}
	table.WriteString("</table>")
	return table.String()
}

// ToAvailability lists one "isbn: quantity" line per title.
func (generator *Generator) ToAvailability(inventory *models.Inventory) string {
	lines := make([]string, 0, inventory.Len())
	for _, entry := range inventory.Entries() {
		lines = append(lines, fmt.Sprintf("%s: %d", entry.Isbn, entry.Quantity))
	}
	return strings.Join(lines, "\n")
}
