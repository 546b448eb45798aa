package channels

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	domainchannels "innsync/internal/domain/channels"
)

// ChannelEndpoint carries the wire settings of one distribution target.
type ChannelEndpoint struct {
	URL      string
	Username string
	Password string
	Token    string
}

// GDSEndpoints routes the GDS providers through their switch URLs with a
// shared key pair.
type GDSEndpoints struct {
	Enabled       bool
	AmadeusURL    string
	SabreURL      string
	TravelportURL string
	APIKey        string
	APISecret     string
}

// Dispatcher delivers built payloads over HTTP. It owns retries, auth
// headers and the per-channel response parsing; an unconfigured channel
// yields a failed SyncResult, never a panic or an outbound request.
type Dispatcher struct {
	Client  *http.Client
	Booking ChannelEndpoint
	Expedia ChannelEndpoint
	Airbnb  ChannelEndpoint
	GDS     GDSEndpoints

	// Attempts and Delay shape the retry loop: attempt n sleeps n*Delay
	// before retrying on a 5xx, 408 or transport error.
	Attempts int
	Delay    time.Duration
	Logger   *slog.Logger
}

func (d *Dispatcher) Deliver(ctx context.Context, p domainchannels.Payload) domainchannels.SyncResult {
	switch {
	case p.Channel == domainchannels.BookingCom:
		return d.deliverBooking(ctx, p)
	case p.Channel == domainchannels.Expedia:
		return d.deliverExpedia(ctx, p)
	case p.Channel == domainchannels.Airbnb:
		return d.deliverAirbnb(ctx, p)
	case p.Channel.GDS():
		return d.deliverGDS(ctx, p)
	}
	return failure(p.Channel, fmt.Sprintf("unknown channel %q", p.Channel))
}

func (d *Dispatcher) deliverBooking(ctx context.Context, p domainchannels.Payload) domainchannels.SyncResult {
	if d.Booking.URL == "" || d.Booking.Username == "" || d.Booking.Password == "" {
		return failure(p.Channel, "configure Booking.com credentials to enable this channel")
	}
	body, status, err := d.post(ctx, d.Booking.URL, p, func(req *http.Request) {
		req.SetBasicAuth(d.Booking.Username, d.Booking.Password)
	})
	if err != nil {
		return failure(p.Channel, err.Error())
	}
	return parseBookingResponse(p.Channel, status, body)
}

func (d *Dispatcher) deliverExpedia(ctx context.Context, p domainchannels.Payload) domainchannels.SyncResult {
	if d.Expedia.URL == "" || d.Expedia.Username == "" || d.Expedia.Password == "" {
		return failure(p.Channel, "configure Expedia credentials to enable this channel")
	}
	body, status, err := d.post(ctx, d.Expedia.URL, p, func(req *http.Request) {
		req.SetBasicAuth(d.Expedia.Username, d.Expedia.Password)
	})
	if err != nil {
		return failure(p.Channel, err.Error())
	}
	return parseExpediaResponse(p.Channel, status, body)
}

func (d *Dispatcher) deliverAirbnb(ctx context.Context, p domainchannels.Payload) domainchannels.SyncResult {
	if d.Airbnb.URL == "" || d.Airbnb.Token == "" {
		return failure(p.Channel, "configure Airbnb API token to enable this channel")
	}
	_, status, err := d.post(ctx, d.Airbnb.URL, p, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+d.Airbnb.Token)
	})
	if err != nil {
		return failure(p.Channel, err.Error())
	}
	if status < 200 || status > 299 {
		return failure(p.Channel, fmt.Sprintf("airbnb rejected the update with status %d", status))
	}
	return success(p.Channel, "calendar updated")
}

func (d *Dispatcher) deliverGDS(ctx context.Context, p domainchannels.Payload) domainchannels.SyncResult {
	if !d.GDS.Enabled {
		return failure(p.Channel, "GDS distribution is disabled")
	}
	url := d.gdsURL(p.Channel)
	if url == "" || d.GDS.APIKey == "" {
		return failure(p.Channel, fmt.Sprintf("configure the %s switch endpoint to enable this channel", p.Channel))
	}
	_, status, err := d.post(ctx, url, p, func(req *http.Request) {
		req.Header.Set("X-API-Key", d.GDS.APIKey)
		req.Header.Set("X-API-Secret", d.GDS.APISecret)
	})
	if err != nil {
		return failure(p.Channel, err.Error())
	}
	if status < 200 || status > 299 {
		return failure(p.Channel, fmt.Sprintf("switch rejected the update with status %d", status))
	}
	return success(p.Channel, "inventory accepted by switch")
}

func (d *Dispatcher) gdsURL(ch domainchannels.Channel) string {
	switch ch {
	case domainchannels.Amadeus:
		return d.GDS.AmadeusURL
	case domainchannels.Sabre:
		return d.GDS.SabreURL
	case domainchannels.Travelport:
		return d.GDS.TravelportURL
	}
	return ""
}

// post sends the payload, retrying transport errors and retryable statuses.
// It returns the final response body and status.
func (d *Dispatcher) post(ctx context.Context, url string, p domainchannels.Payload, authorize func(*http.Request)) ([]byte, int, error) {
	attempts := d.Attempts
	if attempts <= 0 {
		attempts = 3
	}
	delay := d.Delay
	if delay <= 0 {
		delay = 1500 * time.Millisecond
	}
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(p.Body))
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set("Content-Type", p.ContentType)
		if authorize != nil {
			authorize(req)
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			d.warn(p.Channel, attempt, err)
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			d.warn(p.Channel, attempt, readErr)
			continue
		}
		if retryable(resp.StatusCode) && attempt < attempts {
			lastErr = fmt.Errorf("channel returned status %d", resp.StatusCode)
			d.warn(p.Channel, attempt, lastErr)
			continue
		}
		return body, resp.StatusCode, nil
	}
	return nil, 0, fmt.Errorf("delivery failed after %d attempts: %w", attempts, lastErr)
}

func retryable(status int) bool {
	return status >= 500 || status == http.StatusRequestTimeout
}

var bookingErrorPattern = regexp.MustCompile(`(?s)<error>.*?<message>(.*?)</message>`)

// parseBookingResponse reads the B.XML reply: an <ok/> element means the
// whole batch was accepted, anything else carries an error block.
func parseBookingResponse(ch domainchannels.Channel, status int, body []byte) domainchannels.SyncResult {
	text := string(body)
	if strings.Contains(text, "<ok/>") || strings.Contains(text, "<ok />") {
		return success(ch, "availability accepted")
	}
	if m := bookingErrorPattern.FindStringSubmatch(text); len(m) == 2 {
		return failure(ch, strings.TrimSpace(m[1]))
	}
	return failure(ch, fmt.Sprintf("unexpected B.XML response with status %d", status))
}

var expediaErrorPattern = regexp.MustCompile(`(?s)<Error[^>]*>(.*?)</Error>`)

func parseExpediaResponse(ch domainchannels.Channel, status int, body []byte) domainchannels.SyncResult {
	text := string(body)
	if strings.Contains(text, "<Success") {
		return success(ch, "rate and availability update accepted")
	}
	if m := expediaErrorPattern.FindStringSubmatch(text); len(m) == 2 {
		return failure(ch, strings.TrimSpace(m[1]))
	}
	return failure(ch, fmt.Sprintf("unexpected EQC response with status %d", status))
}

func (d *Dispatcher) warn(ch domainchannels.Channel, attempt int, err error) {
	if d.Logger != nil {
		d.Logger.Warn("channel delivery attempt failed", "channel", ch, "attempt", attempt, "error", err)
	}
}

func success(ch domainchannels.Channel, msg string) domainchannels.SyncResult {
	return domainchannels.SyncResult{Channel: ch, Success: true, Message: msg}
}

func failure(ch domainchannels.Channel, msg string) domainchannels.SyncResult {
	return domainchannels.SyncResult{Channel: ch, Success: false, Message: msg}
}
