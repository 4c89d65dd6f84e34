package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"progas-backend/internal/catalog"
	"progas-backend/internal/model"
	"progas-backend/pkg/config"

	"github.com/rs/zerolog"
)

// Notifier pushes a delivery summary to the business's LINE group. It is a
// best-effort side channel: every failure mode is logged and swallowed, a
// committed delivery is never rolled back or blocked here.
type Notifier struct {
	cfg     config.LineConfig
	catalog *catalog.Catalog
	client  *http.Client
	log     zerolog.Logger
}

func New(cfg config.LineConfig, cat *catalog.Catalog, log zerolog.Logger) *Notifier {
	return &Notifier{
		cfg:     cfg,
		catalog: cat,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type pushMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []pushMessage `json:"messages"`
}

// NotifyDelivery formats and pushes the message for a successful delivery.
// Attempt-once, no retry.
func (n *Notifier) NotifyDelivery(tx *model.Transaction) {
	if !n.cfg.Configured() {
		n.log.Warn().Msg("line credentials not configured, skipping notification")
		return
	}

	if err := n.push(n.FormatMessage(tx)); err != nil {
		n.log.Error().Err(err).Str("transaction_id", tx.ID.String()).Msg("line notification failed")
		return
	}
	n.log.Info().Str("transaction_id", tx.ID.String()).Msg("line notification sent")
}

// FormatMessage renders the human-readable group message: type label, date,
// customer, itemized list, optional map link, short reference.
func (n *Notifier) FormatMessage(tx *model.Transaction) string {
	typeLabel := "📦 ส่งของ"
	if tx.Type == model.TxReturn {
		typeLabel = "♻️ รับคืน"
	}

	customerName := "-"
	if cust, ok := n.catalog.Customer(tx.CustomerID); ok {
		customerName = cust.NameTh
	}

	lines := make([]string, 0, len(tx.Items))
	for _, item := range tx.Items {
		name, unit := "-", ""
		if p, ok := n.catalog.Product(item.ProductID); ok {
			name, unit = p.NameTh, p.Unit
		}
		lines = append(lines, fmt.Sprintf("  • %s × %d %s", name, item.Quantity, unit))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n━━━━━━━━━━━━━━━\n", typeLabel)
	fmt.Fprintf(&b, "📅 %s\n", tx.CreatedAt.Format("2 Jan 2006 15:04"))
	fmt.Fprintf(&b, "👤 ลูกค้า: %s\n━━━━━━━━━━━━━━━\n", customerName)
	fmt.Fprintf(&b, "รายการ:\n%s\n━━━━━━━━━━━━━━━", strings.Join(lines, "\n"))
	if tx.GPSLat != nil && tx.GPSLng != nil {
		fmt.Fprintf(&b, "\n📍 ตำแหน่ง: https://www.google.com/maps?q=%v,%v", *tx.GPSLat, *tx.GPSLng)
	}
	fmt.Fprintf(&b, "\n\n✅ บันทึกเรียบร้อย #%s", tx.Ref())
	return b.String()
}

func (n *Notifier) push(text string) error {
	body, err := json.Marshal(pushRequest{
		To:       n.cfg.GroupID,
		Messages: []pushMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.cfg.PushURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.cfg.ChannelToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("line api returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
