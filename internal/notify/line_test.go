package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"progas-backend/internal/catalog"
	"progas-backend/internal/model"
	"progas-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveryTx() *model.Transaction {
	lat, lng := 13.7563, 100.5018
	return &model.Transaction{
		ID:         uuid.New(),
		Type:       model.TxDelivery,
		CustomerID: 1,
		Items:      []model.TransactionItem{{ProductID: 3, Quantity: 10}},
		GPSLat:     &lat,
		GPSLng:     &lng,
		CreatedAt:  time.Now(),
	}
}

func TestNotifyDelivery_PushesFormattedMessage(t *testing.T) {
	var gotAuth string
	var gotBody []byte
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := config.LineConfig{ChannelToken: "token-123", GroupID: "group-abc", PushURL: srv.URL}
	n := New(cfg, catalog.Default(), zerolog.Nop())

	tx := deliveryTx()
	n.NotifyDelivery(tx)

	require.Equal(t, 1, requests)
	assert.Equal(t, "Bearer token-123", gotAuth)

	var req pushRequest
	require.NoError(t, json.Unmarshal(gotBody, &req))
	assert.Equal(t, "group-abc", req.To)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "text", req.Messages[0].Type)
	assert.Contains(t, req.Messages[0].Text, "#"+tx.Ref())
	assert.Contains(t, req.Messages[0].Text, "ช่างปู")
	assert.Contains(t, req.Messages[0].Text, "https://www.google.com/maps?q=13.7563,100.5018")
}

func TestNotifyDelivery_SkipsWithoutCredentials(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	n := New(config.LineConfig{PushURL: srv.URL}, catalog.Default(), zerolog.Nop())
	n.NotifyDelivery(deliveryTx())

	assert.Zero(t, requests, "unconfigured sink must not call the API")
}

func TestNotifyDelivery_SwallowsAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := config.LineConfig{ChannelToken: "t", GroupID: "g", PushURL: srv.URL}
	n := New(cfg, catalog.Default(), zerolog.Nop())

	// Must not panic or surface anything; failure is log-only.
	n.NotifyDelivery(deliveryTx())
}

func TestFormatMessage_OmitsMapLinkWithoutGPS(t *testing.T) {
	n := New(config.LineConfig{}, catalog.Default(), zerolog.Nop())

	tx := deliveryTx()
	tx.GPSLat, tx.GPSLng = nil, nil

	msg := n.FormatMessage(tx)
	assert.NotContains(t, msg, "google.com/maps")
	assert.Contains(t, msg, "📦 ส่งของ")
}

func TestFormatMessage_ReturnLabel(t *testing.T) {
	n := New(config.LineConfig{}, catalog.Default(), zerolog.Nop())

	tx := deliveryTx()
	tx.Type = model.TxReturn

	assert.Contains(t, n.FormatMessage(tx), "♻️ รับคืน")
}
