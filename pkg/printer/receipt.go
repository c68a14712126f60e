package printer

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// ESC/POS command constants
const (
	escInit = "\x1B@"
	escCut  = "\x1DV\x00"
	lf      = byte(0x0A)

	alignLeft   = "\x1Ba\x00"
	alignCenter = "\x1Ba\x01"
	boldOn      = "\x1BE\x01"
	boldOff     = "\x1BE\x00"
)

// ReceiptLine is a single sold item on a receipt.
type ReceiptLine struct {
	Name     string
	Quantity int
	Total    string // formatted amount
}

// ReceiptData holds everything the printed receipt shows.
type ReceiptData struct {
	StoreName     string
	ReceiptNo     string
	Cashier       string
	Customer      string
	Lines         []ReceiptLine
	Subtotal      string
	Tax           string
	Total         string
	PaymentMethod string
	AmountPaid    string
	Change        string
	Date          time.Time
}

// ReceiptBuilder renders a sale receipt as an ESC/POS byte stream.
// Width is the print width in characters: 32 for 58mm paper, 48 for 80mm.
type ReceiptBuilder struct {
	width int
}

// NewReceiptBuilder creates a receipt builder for the given paper width.
func NewReceiptBuilder(charWidth int) *ReceiptBuilder {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &ReceiptBuilder{width: charWidth}
}

// Render builds the full ESC/POS receipt, ready to hand to a Printer.
func (b *ReceiptBuilder) Render(r *ReceiptData) []byte {
	var buf bytes.Buffer

	buf.WriteString(escInit)
	buf.WriteString(alignCenter)
	buf.WriteString(boldOn)
	b.line(&buf, r.StoreName)
	buf.WriteString(boldOff)
	b.line(&buf, "SALES RECEIPT")
	buf.WriteString(alignLeft)
	b.separator(&buf)

	b.keyValue(&buf, "Receipt", r.ReceiptNo)
	b.keyValue(&buf, "Date", r.Date.Format("02 Jan 2006 15:04"))
	if r.Cashier != "" {
		b.keyValue(&buf, "Cashier", r.Cashier)
	}
	b.keyValue(&buf, "Customer", r.Customer)
	b.separator(&buf)

	for _, item := range r.Lines {
		b.itemLine(&buf, item.Quantity, item.Name, item.Total)
	}
	b.separator(&buf)

	b.keyValue(&buf, "Subtotal", r.Subtotal)
	b.keyValue(&buf, "Tax", r.Tax)
	buf.WriteString(boldOn)
	b.keyValue(&buf, "TOTAL", r.Total)
	buf.WriteString(boldOff)
	b.keyValue(&buf, "Paid ("+r.PaymentMethod+")", r.AmountPaid)
	b.keyValue(&buf, "Change", r.Change)
	b.separator(&buf)

	buf.WriteString(alignCenter)
	b.line(&buf, "Thank you for shopping!")
	buf.WriteByte(lf)
	buf.WriteByte(lf)
	buf.WriteString(escCut)

	return buf.Bytes()
}

func (b *ReceiptBuilder) line(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	buf.WriteByte(lf)
}

func (b *ReceiptBuilder) separator(buf *bytes.Buffer) {
	buf.WriteString(strings.Repeat("-", b.width))
	buf.WriteByte(lf)
}

// keyValue prints a left-aligned key and right-aligned value on the same line.
func (b *ReceiptBuilder) keyValue(buf *bytes.Buffer, key, value string) {
	spaces := b.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	buf.WriteString(key)
	buf.WriteString(strings.Repeat(" ", spaces))
	buf.WriteString(value)
	buf.WriteByte(lf)
}

// itemLine prints "2x Bread" with a right-aligned line total.
func (b *ReceiptBuilder) itemLine(buf *bytes.Buffer, qty int, name, total string) {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	spaces := b.width - len(prefix) - len(total)
	if spaces < 1 {
		spaces = 1
	}
	buf.WriteString(prefix)
	buf.WriteString(strings.Repeat(" ", spaces))
	buf.WriteString(total)
	buf.WriteByte(lf)
}
