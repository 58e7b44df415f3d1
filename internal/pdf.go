package internal

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// renderReceipt replays a layout instruction stream onto a fresh A4 page.
func renderReceipt(ins []LayoutInstruction) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	for _, in := range ins {
		switch in.Kind {
		case SetFont:
			pdf.SetFont(in.Family, pdfStyle(in.Style), in.Size)
		case SetColor:
			pdf.SetTextColor(int(in.R), int(in.G), int(in.B))
		case DrawText:
			pdf.Text(in.X, in.Y, in.Text)
		}
	}

	return pdf
}

// WriteReceiptPDF renders the instruction stream to a PDF file at path.
func WriteReceiptPDF(ins []LayoutInstruction, path string) error {
	return renderReceipt(ins).OutputFileAndClose(path)
}

// RenderReceiptPDF renders the instruction stream to an arbitrary writer.
func RenderReceiptPDF(ins []LayoutInstruction, w io.Writer) error {
	return renderReceipt(ins).Output(w)
}

func pdfStyle(style string) string {
	if style == FontBold {
		return "B"
	}
	return ""
}
