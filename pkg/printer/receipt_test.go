package printer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderReceipt(t *testing.T) {
	builder := NewReceiptBuilder(32)

	out := builder.Render(&ReceiptData{
		StoreName: "Supamart",
		ReceiptNo: "RCP-1A2B3C4D",
		Cashier:   "Ada",
		Customer:  "Walk-in customer",
		Lines: []ReceiptLine{
			{Name: "Bread", Quantity: 2, Total: "2000.00"},
		},
		Subtotal:      "2000.00",
		Tax:           "150.00",
		Total:         "2150.00",
		PaymentMethod: "cash",
		AmountPaid:    "2200.00",
		Change:        "50.00",
		Date:          time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC),
	})

	s := string(out)
	assert.Contains(t, s, "Supamart")
	assert.Contains(t, s, "RCP-1A2B3C4D")
	assert.Contains(t, s, "2x Bread")
	assert.Contains(t, s, "2150.00")
	assert.Contains(t, s, "Paid (cash)")
	assert.Contains(t, s, "50.00")
	assert.Contains(t, s, escInit)
	assert.Contains(t, s, escCut)
}

func TestRenderOmitsEmptyCashier(t *testing.T) {
	builder := NewReceiptBuilder(32)

	out := builder.Render(&ReceiptData{
		StoreName: "Supamart",
		ReceiptNo: "RCP-1A2B3C4D",
		Customer:  "Walk-in customer",
		Date:      time.Now(),
	})

	assert.NotContains(t, string(out), "Cashier")
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	assert.NoError(t, err)
	assert.NoError(t, p.Print([]byte("data")))
	assert.False(t, p.IsConnected())

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "")
	assert.Error(t, err)
}
