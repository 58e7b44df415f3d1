package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlvinMunny27/Payizi-SA-Beta/internal/model"
)

// LayoutInstruction kinds. The formatter only emits these primitives; the
// rendering backend is someone else's problem.
type InstructionKind int

const (
	SetFont InstructionKind = iota
	SetColor
	DrawText
)

const (
	FontNormal = "normal"
	FontBold   = "bold"
)

type LayoutInstruction struct {
	Kind   InstructionKind
	Family string
	Style  string
	Size   float64
	R      uint8
	G      uint8
	B      uint8
	Text   string
	X      float64
	Y      float64
}

const (
	receiptBrand      = "PAYIZI GLOBAL"
	receiptBrandToken = "Payizi"

	bankName      = "First National Bank"
	accountName   = "Payizi Global"
	accountNumber = "63077437200"
	branchCode    = "250655"

	footerThanks  = "Thank you for choosing Payizi Global"
	footerSupport = "For support: info@payizi.com | +27 123 456 789"

	placeholder     = "-"
	placeholderDate = "N/A"

	receiptDateLayout = "2 January 2006, 15:04"
)

func font(style string, size float64) LayoutInstruction {
	return LayoutInstruction{Kind: SetFont, Family: "helvetica", Style: style, Size: size}
}

func color(r, g, b uint8) LayoutInstruction {
	return LayoutInstruction{Kind: SetColor, R: r, G: g, B: b}
}

func text(s string, x, y float64) LayoutInstruction {
	return LayoutInstruction{Kind: DrawText, Text: s, X: x, Y: y}
}

// FormatReceipt maps an order to the receipt's instruction stream. The
// output is deterministic for a given record, so golden comparisons hold.
// The payment-instructions block appears only while the status still
// contains "pending".
func FormatReceipt(o model.OrderRecord) []LayoutInstruction {
	ins := make([]LayoutInstruction, 0, 48)

	ins = append(ins,
		font(FontNormal, 20),
		color(0, 123, 255),
		text(receiptBrand, 20, 30),
		font(FontNormal, 16),
		color(0, 0, 0),
		text("Order Receipt", 20, 45),
	)

	y := 65.0
	line := func(s string) {
		ins = append(ins, text(s, 20, y))
		y += 8
	}
	section := func(title string) {
		ins = append(ins, font(FontBold, 12), text(title, 20, y))
		y += 10
		ins = append(ins, font(FontNormal, 12))
	}

	section("Order Details:")
	line("Order Reference: " + orText(o.OrderRef))
	line("Date: " + dateText(o.CreatedAt))
	line("Status: " + orText(o.Status))
	y += 7

	section("Customer Information:")
	line("Name: " + orText(o.CustomerName))
	line("Email: " + orText(o.CustomerEmail))
	y += 7

	section("Transfer Details:")
	line("USD Amount: $" + o.USDAmount.StringFixed(2))
	line("Exchange Rate: " + o.ExchangeRate.StringFixed(5))
	line("Payizi Fee: R " + o.PayiziFee.StringFixed(2))
	line("Total ZAR: R " + o.ZARTotal.StringFixed(2))
	y += 7

	section("Beneficiary Information:")
	line("Name: " + orText(o.BeneficiaryName))
	line("Location: " + orText(o.Location))
	y += 7

	if strings.Contains(strings.ToLower(o.Status), "pending") {
		section("Payment Instructions:")
		line("Bank: " + bankName)
		line("Account Name: " + accountName)
		line("Account Number: " + accountNumber)
		line("Branch Code: " + branchCode)
		line("Reference: " + orText(o.OrderRef))
	}

	ins = append(ins,
		font(FontNormal, 10),
		color(128, 128, 128),
		text(footerThanks, 20, 280),
		text(footerSupport, 20, 290),
	)

	return ins
}

// ReceiptFileName builds the download name for an order's receipt.
func ReceiptFileName(orderRef string) string {
	return fmt.Sprintf("%s_Receipt_%s.pdf", receiptBrandToken, strings.ToUpper(strings.TrimSpace(orderRef)))
}

// FormatMoney renders a monetary value the way the receipt does.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func orText(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func dateText(t time.Time) string {
	if t.IsZero() {
		return placeholderDate
	}
	return t.Format(receiptDateLayout)
}
