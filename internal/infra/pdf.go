package infra

// pdf.go — PDF receipt generation using go-pdf/fpdf.
// Generates an A7-size receipt with:
//   - Business header
//   - Purchase id, status and timestamp
//   - Customer name (placeholder when the contact was deleted)
//   - Item table (product description, quantity, subtotal)
//   - Subtotal / IVA 21% / bold total
//
// The output file is saved to storagePath/recibo_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"gestor/internal/dto"

	"github.com/go-pdf/fpdf"
)

// Placeholders for dangling references — a deleted contact or product must
// still render.
const (
	clienteDesconocido  = "Cliente no encontrado"
	productoDesconocido = "Producto no encontrado"
)

// GenerateReciboPDF generates a PDF receipt for a resolved purchase.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateReciboPDF(detalle *dto.CompraDetalle, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", detalle.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — receipt paper (custom size, "A7" is not in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Gestor", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Compra", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Purchase info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Compra %s", detalle.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, detalle.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")

	cliente := clienteDesconocido
	if detalle.Customer != nil {
		cliente = detalle.Customer.NombreCompleto()
	}
	pdf.CellFormat(contentW, 4, "Cliente: "+cliente, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Estado: "+detalle.Status, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items header ──────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product description
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	// ── Item rows ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	for _, item := range detalle.Detalle {
		nombre := productoDesconocido
		if item.Producto != nil {
			nombre = item.Producto.Descripcion
		}
		// Truncate long names
		if len(nombre) > 22 {
			nombre = nombre[:21] + "…"
		}
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(col1+col2, 5, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "$"+detalle.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1+col2, 5, "IVA (21%):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "$"+detalle.Tax.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+detalle.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
