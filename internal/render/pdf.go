package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/money"
)

// PDFRenderer lays out purchase orders on A4 pages with the core fonts.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(name string, data any) ([]byte, error) {
	if name != PurchaseOrderPrint {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}

	view, ok := data.(*PurchaseOrderView)
	if !ok {
		return nil, fmt.Errorf("%s expects *PurchaseOrderView, got %T", name, data)
	}

	return purchaseOrderPDF(view)
}

// The core fonts cannot draw the naira sign.
func pdfAmount(d decimal.Decimal) string {
	return "NGN " + money.Grouped(d)
}

func purchaseOrderPDF(v *PurchaseOrderView) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Purchase Order "+v.Number, true)
	pdf.SetCreationDate(v.Date)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	if img := registerLogo(pdf, "client-logo", v.Client.Logo); img != "" {
		pdf.ImageOptions(img, 15, 15, 0, 18, false, fpdf.ImageOptions{ImageType: imageType(v.Client.Logo)}, 0, "")
		pdf.SetY(36)
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 9, "PURCHASE ORDER", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 5, tr(v.Number), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW, 5, v.Date.Format("02 Jan 2006"), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	half := contentW / 2
	top := pdf.GetY()

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(half, 5, tr(v.Client.Name), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(half, 4.5, tr(joinLines(v.Client.Address, v.Client.Email, v.Client.Phone)), "", "L", false)
	left := pdf.GetY()

	pdf.SetXY(15+half, top)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(half, 5, tr("Supplier: "+v.Vendor.Name), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(half, 4.5, tr(joinLines(
		v.Vendor.Address,
		strings.TrimSpace(v.Vendor.City+", "+v.Vendor.State+" "+v.Vendor.ZipCode),
		v.Vendor.Phone,
		v.Vendor.Email,
	)), "", "L", false)

	pdf.SetY(max(left, pdf.GetY()) + 6)

	colDesc := contentW * 0.46
	colQty := contentW * 0.12
	colPrice := contentW * 0.21
	colAmount := contentW * 0.21

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colDesc, 7, "Description", "B", 0, "L", true, 0, "")
	pdf.CellFormat(colQty, 7, "Qty", "B", 0, "R", true, 0, "")
	pdf.CellFormat(colPrice, 7, "Unit price", "B", 0, "R", true, 0, "")
	pdf.CellFormat(colAmount, 7, "Amount", "B", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)

	for _, line := range v.Lines {
		pdf.CellFormat(colDesc, 6, tr(line.Description), "", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 6, line.Quantity.String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(colPrice, 6, pdfAmount(line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, 6, pdfAmount(line.Amount), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colDesc+colQty+colPrice, 7, "TOTAL", "", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, 7, pdfAmount(v.Total), "", 1, "R", false, 0, "")

	if v.Terms != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Terms", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 4.5, tr(v.Terms), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing purchase order pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// registerLogo makes img available to the document and returns its name, or
// "" when there is no usable image.
func registerLogo(pdf *fpdf.Fpdf, name string, img *Image) string {
	typ := imageType(img)
	if typ == "" {
		return ""
	}

	info := pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: typ}, bytes.NewReader(img.Data))
	if info == nil || pdf.Err() {
		pdf.ClearError()
		return ""
	}

	return name
}

func imageType(img *Image) string {
	if img == nil || len(img.Data) == 0 {
		return ""
	}

	switch img.ContentType {
	case "image/png":
		return "PNG"
	case "image/jpeg", "image/jpg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}

func joinLines(lines ...string) string {
	var kept []string

	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" && l != "," {
			kept = append(kept, l)
		}
	}

	return strings.Join(kept, "\n")
}
