package report

import (
	"bytes"
	"fmt"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/go-pdf/fpdf"
)

// BuildProductsPDF renders the product listing report served by the stub
// backend at GET /api/products/pdf.
func BuildProductsPDF(products domain.Products) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator keeps the Spanish accents legible.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Reporte de Productos"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Código", "Proveedor", "Nombre", "Unidad", "Precio", "Stock", "Estado"}
	widths := []float64{28, 22, 50, 20, 22, 18, 25}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range products {
		cells := []string{
			p.Code,
			fmt.Sprintf("%d", p.ProviderID),
			p.Name,
			p.Unit,
			fmt.Sprintf("%.2f", p.Price),
			fmt.Sprintf("%d", p.Stock),
			string(p.Status),
		}
		for i, c := range cells {
			align := "L"
			if i == 4 || i == 5 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(products) == 0 {
		pdf.CellFormat(0, 8, tr("Sin productos registrados"), "", 1, "C", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render product report: %w", err)
	}
	return buf.Bytes(), nil
}
