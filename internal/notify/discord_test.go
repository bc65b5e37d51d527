package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/car-deal-finder/internal/metrics"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

func testAlert(score int) AlertPayload {
	return AlertPayload{
		SearchTerm:   "Fiat Panda",
		ListingTitle: "Fiat Panda 1,2 Easy",
		URL:          "https://www.bilbasen.dk/brugt/bil/fiat/panda/123",
		Price:        "54900 kr.",
		ModelYear:    "2014",
		Mileage:      "98000 km",
		Score:        score,
		Condition:    "Very Good",
		Location:     "Aarhus",
	}
}

func TestDiscordNotifier_SendAlert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		alert      AlertPayload
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "score 92 uses green color",
			alert:      testAlert(92),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name:       "score 85 uses yellow color",
			alert:      testAlert(85),
			statusCode: http.StatusNoContent,
			wantColor:  colorYellow,
		},
		{
			name:       "score 76 uses orange color",
			alert:      testAlert(76),
			statusCode: http.StatusNoContent,
			wantColor:  colorOrange,
		},
		{
			name:       "discord returns 429 rate limited",
			alert:      testAlert(85),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			alert:      testAlert(85),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.SendAlert(context.Background(), &tt.alert)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Contains(t, embed.Title, tt.alert.ListingTitle)
			assert.Equal(t, tt.alert.URL, embed.URL)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, fmt.Sprintf("%d/100", tt.alert.Score), fieldMap["Score"])
			assert.Equal(t, tt.alert.Price, fieldMap["Price"])
			assert.Equal(t, tt.alert.Mileage, fieldMap["Mileage"])
			assert.Equal(t, tt.alert.Location, fieldMap["Location"])
		})
	}
}

func TestDiscordNotifier_SendBatchAlert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		count      int
		wantEmbeds int
		wantCalls  int
	}{
		{name: "three alerts", count: 3, wantEmbeds: 3, wantCalls: 1},
		{name: "over the embed limit is summarized", count: 13, wantEmbeds: 11, wantCalls: 1},
		{name: "empty batch sends nothing", count: 0, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				received discordWebhookPayload
				calls    atomic.Int32
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			alerts := make([]AlertPayload, tt.count)
			for i := range alerts {
				alerts[i] = testAlert(80 + i)
			}

			d := NewDiscordNotifier(srv.URL)
			require.NoError(t, d.SendBatchAlert(context.Background(), alerts, "Fiat Panda"))

			assert.Equal(t, tt.wantCalls, int(calls.Load()))
			assert.Len(t, received.Embeds, tt.wantEmbeds)
			if tt.count > maxEmbeds {
				assert.Contains(t, received.Embeds[maxEmbeds].Title, "3 more deals for Fiat Panda")
			}
		})
	}
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	alert := testAlert(85)
	err := d.SendAlert(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	alert := testAlert(85)
	err := d.SendAlert(context.Background(), &alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func getNotificationHistogramSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestSendAlert_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	before := getNotificationHistogramSampleCount()

	d := NewDiscordNotifier(srv.URL)
	alert := testAlert(85)
	require.NoError(t, d.SendAlert(context.Background(), &alert))

	after := getNotificationHistogramSampleCount()
	assert.Greater(t, after, before, "NotificationDuration histogram sample count should increase")
}

func TestNewAlertPayload(t *testing.T) {
	t.Parallel()

	price := 54900.0
	year := 2014
	km := 98000
	total := 87

	t.Run("full listing", func(t *testing.T) {
		t.Parallel()
		p := NewAlertPayload("Fiat Panda", &domain.Listing{
			URL:            "https://www.bilbasen.dk/brugt/bil/fiat/panda/1",
			Title:          "Fiat Panda 1,2 Easy",
			Price:          &price,
			ModelYear:      &year,
			Mileage:        &km,
			ConditionLabel: "Very Good",
			Location:       "Aarhus",
			Score:          &total,
		})
		assert.Equal(t, "Fiat Panda 1,2 Easy", p.ListingTitle)
		assert.Equal(t, "54900 kr.", p.Price)
		assert.Equal(t, "2014", p.ModelYear)
		assert.Equal(t, "98000 km", p.Mileage)
		assert.Equal(t, "Very Good", p.Condition)
		assert.Equal(t, 87, p.Score)
	})

	t.Run("missing attributes render as dashes", func(t *testing.T) {
		t.Parallel()
		p := NewAlertPayload("Fiat Panda", &domain.Listing{URL: "https://example.com/x"})
		assert.Equal(t, "https://example.com/x", p.ListingTitle)
		assert.Equal(t, "-", p.Price)
		assert.Equal(t, "-", p.ModelYear)
		assert.Equal(t, "-", p.Mileage)
		assert.Equal(t, "-", p.Condition)
		assert.Equal(t, 0, p.Score)
	})
}
