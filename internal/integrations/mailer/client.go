package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент сервиса рассылки писем
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation отправляет письмо с подтверждением бронирования
func (c *Client) SendConfirmation(ctx context.Context, msg *Confirmation) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("%w: no recipients", ErrInvalidRequest)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to encode message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/emails/booking-confirmation", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%w: %s", ErrInvalidRequest, errResp.Message)
		}
		return ErrInvalidRequest
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendConfirmationWithGracefulDegradation отправляет письмо, не считая недоступность сервиса ошибкой бронирования
// Ошибки валидации письма возвращаются как есть, остальные оборачиваются в ErrServiceDegraded
func (c *Client) SendConfirmationWithGracefulDegradation(ctx context.Context, msg *Confirmation) error {
	c.log.Info("Sending booking confirmation booking_id=%s to %d recipient(s)", msg.BookingID, len(msg.To))

	err := c.SendConfirmation(ctx, msg)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			c.log.Warn("Mailer rejected confirmation for booking_id=%s: %v", msg.BookingID, err)
			return err
		}

		c.log.Error("Mailer unavailable, applying graceful degradation for booking_id=%s: %v", msg.BookingID, err)
		return fmt.Errorf("%w: booking_id=%s, error=%v", ErrServiceDegraded, msg.BookingID, err)
	}

	c.log.Info("Confirmation sent for booking_id=%s", msg.BookingID)
	return nil
}
