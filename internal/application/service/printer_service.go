package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/enum"
	"github.com/supamart/pos-api/pkg/printer"
)

// PrinterService renders completed sales as ESC/POS receipts and sends them
// to the till's printer
type PrinterService struct {
	saleService *SaleService
	device      printer.Printer
	builder     *printer.ReceiptBuilder
	storeName   string
}

// NewPrinterService creates a new printer service
func NewPrinterService(saleService *SaleService, device printer.Printer, builder *printer.ReceiptBuilder, storeName string) *PrinterService {
	return &PrinterService{
		saleService: saleService,
		device:      device,
		builder:     builder,
		storeName:   storeName,
	}
}

// PrintReceipt renders the sale's receipt and sends it to the printer. The
// viewer rules match GetSale: cashiers can only print their own sales.
func (s *PrinterService) PrintReceipt(ctx context.Context, saleID, viewerID uuid.UUID, viewerRole enum.UserRole) error {
	receipt, sale, err := s.saleService.GetReceipt(ctx, saleID, viewerID, viewerRole)
	if err != nil {
		return err
	}

	lines := make([]printer.ReceiptLine, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		lines = append(lines, printer.ReceiptLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    formatAmount(item.Total),
		})
	}

	data := &printer.ReceiptData{
		StoreName:     s.storeName,
		ReceiptNo:     receipt.ReceiptNo,
		Cashier:       sale.Cashier.Name,
		Customer:      receipt.Customer,
		Lines:         lines,
		Subtotal:      fmt.Sprintf("%.2f", receipt.Subtotal),
		Tax:           fmt.Sprintf("%.2f", receipt.Tax),
		Total:         fmt.Sprintf("%.2f", receipt.TotalAmount),
		PaymentMethod: string(receipt.PaymentMethod),
		AmountPaid:    fmt.Sprintf("%.2f", receipt.AmountPaid),
		Change:        fmt.Sprintf("%.2f", receipt.Change),
		Date:          receipt.Date,
	}

	return s.device.Print(s.builder.Render(data))
}

// Status reports whether the configured printer is reachable
func (s *PrinterService) Status() bool {
	return s.device.IsConnected()
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", centsToAmount(cents))
}
