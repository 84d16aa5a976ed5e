package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travelerapp/models"

	"github.com/gin-gonic/gin"
)

type fakePaymentService struct {
	details *models.PaymentDetails
	err     error
}

func (f *fakePaymentService) GetPaymentDetails(ctx context.Context, bookingID string) (*models.PaymentDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.details, nil
}

func (f *fakePaymentService) ConfirmPayment(ctx context.Context, bookingID string) (*models.PaymentDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.details, nil
}

// closeNotifyRecorder adds http.CloseNotifier, which gin's Context.Stream
// requires but httptest.ResponseRecorder does not implement.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (c *closeNotifyRecorder) CloseNotify() <-chan bool {
	return c.closed
}

func countdownRouter(svc *fakePaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentHandler(svc)
	r.GET("/api/payments/:id/countdown", h.StreamCountdownHandler)
	return r
}

func TestStreamCountdownExpiredDeadline(t *testing.T) {
	// A deadline already in the past yields exactly one terminal event
	// and then closes the stream.
	svc := &fakePaymentService{details: &models.PaymentDetails{
		BookingID:       "b-1",
		PaymentDeadline: time.Now().Add(-time.Minute),
	}}

	w := newCloseNotifyRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/b-1/countdown", nil)
	countdownRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("content type = %q, want text/event-stream", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, `"expired":true`) {
		t.Errorf("body missing terminal tick: %q", body)
	}
	if !strings.Contains(body, "00 : 00 : 00") {
		t.Errorf("body missing zeroed display: %q", body)
	}
	if strings.Count(body, "event:tick") != 1 {
		t.Errorf("expected exactly one event, body: %q", body)
	}
}

func TestStreamCountdownMissingBooking(t *testing.T) {
	svc := &fakePaymentService{err: errors.New("not found")}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/ghost/countdown", nil)
	countdownRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
