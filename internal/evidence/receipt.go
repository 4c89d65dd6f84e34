package evidence

import (
	"bytes"
	"fmt"

	"progas-backend/internal/catalog"
	"progas-backend/internal/model"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	receiptWidth  = 600
	receiptHeight = 800
)

// RenderReceipt draws a printable receipt image for a committed transaction:
// header, type badge, date, customer, item lines, coordinates and reference.
func RenderReceipt(tx *model.Transaction, cat *catalog.Catalog) ([]byte, error) {
	dc := gg.NewContext(receiptWidth, receiptHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Header band
	dc.SetRGB255(26, 29, 46)
	dc.DrawRectangle(0, 0, receiptWidth, 80)
	dc.Fill()
	dc.SetRGB255(245, 158, 11)
	dc.DrawStringAnchored("PRO GAS MANAGEMENT", receiptWidth/2, 45, 0.5, 0.5)

	// Type badge
	label := "DELIVERY NOTE"
	if tx.Type == model.TxReturn {
		label = "RETURN NOTE"
		dc.SetRGB255(16, 185, 129)
	} else {
		dc.SetRGB255(245, 158, 11)
	}
	dc.DrawRectangle(180, 95, 240, 36)
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(label, receiptWidth/2, 113, 0.5, 0.5)

	y := 170.0
	dc.SetRGB255(136, 136, 136)
	dc.DrawString("Date:", 40, y)
	dc.SetRGB255(51, 51, 51)
	dc.DrawString(tx.CreatedAt.Format("2 Jan 2006 15:04"), 120, y)
	y += 35

	customerName := "-"
	if cust, ok := cat.Customer(tx.CustomerID); ok {
		customerName = cust.Name
	}
	dc.SetRGB255(136, 136, 136)
	dc.DrawString("Customer:", 40, y)
	dc.SetRGB255(51, 51, 51)
	dc.DrawString(customerName, 120, y)
	y += 45

	dc.SetRGB255(238, 238, 238)
	dc.SetLineWidth(1)
	dc.DrawLine(40, y, 560, y)
	dc.Stroke()
	y += 25

	dc.SetRGB255(136, 136, 136)
	dc.DrawString("ITEMS", 40, y)
	y += 25

	for _, item := range tx.Items {
		name := "-"
		if p, ok := cat.Product(item.ProductID); ok {
			name = p.Name
		}
		dc.SetRGB255(51, 51, 51)
		dc.DrawString(name, 60, y)
		dc.SetRGB255(245, 158, 11)
		qty := fmt.Sprintf("x %d", item.Quantity)
		if item.IsDamaged {
			qty += " (damaged)"
		}
		dc.DrawStringAnchored(qty, 560, y, 1, 0)
		y += 32
	}
	y += 15

	if tx.GPSLat != nil && tx.GPSLng != nil {
		dc.SetRGB255(238, 238, 238)
		dc.DrawLine(40, y, 560, y)
		dc.Stroke()
		y += 25
		dc.SetRGB255(136, 136, 136)
		dc.DrawString(fmt.Sprintf("Location: %.4f, %.4f", *tx.GPSLat, *tx.GPSLng), 40, y)
	}

	dc.SetRGB255(204, 204, 204)
	dc.DrawStringAnchored(
		fmt.Sprintf("Ref: %s | Pro Gas Management System", tx.ID.String()[:12]),
		receiptWidth/2, 750, 0.5, 0.5,
	)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding receipt: %w", err)
	}
	return buf.Bytes(), nil
}
