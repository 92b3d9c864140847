package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"toyauction/internal/adapter/http/handlers/mocks"
	"toyauction/internal/domain/entities"
	"toyauction/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuctionUseCase, *mocks.MockIPaymentUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	auctions := mocks.NewMockIAuctionUseCase(ctrl)
	payments := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewAdminHandler(auctions, payments)

	r := gin.New()
	admin := r.Group("/v1/admin", asUser("admin-1", "admin@test"))
	admin.POST("/auctions/:id/force-end", h.ForceEndAuction)
	admin.POST("/auctions/force-end-all", h.ForceEndAllActive)
	admin.GET("/payments/pending", h.ListPendingPayments)
	admin.GET("/payments/paid", h.ListPaidPayments)
	admin.POST("/payments/:id/approve", h.ApprovePayment)
	admin.POST("/payments/:id/reject", h.RejectPayment)
	return r, auctions, payments
}

func TestAdminHandler_ForceEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already ended", func(t *testing.T) {
		r, auctions, _ := newAdminRouter(t)
		auctions.EXPECT().ForceEndAuction(gomock.Any(), "a1").
			Return(entities.Auction{}, usecase.ErrAuctionAlreadyEnded)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/auctions/a1/force-end", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ends auction", func(t *testing.T) {
		r, auctions, _ := newAdminRouter(t)
		auctions.EXPECT().ForceEndAuction(gomock.Any(), "a1").
			Return(entities.Auction{ID: "a1", Status: entities.AuctionStatusEnded, FinalPrice: 300}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/auctions/a1/force-end", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_ForceEndAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/auctions/force-end-all", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing confirmation", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)
		if w := post(r, `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirm false", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)
		if w := post(r, `{"confirm":false}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		r, auctions, _ := newAdminRouter(t)
		auctions.EXPECT().ForceEndAllActive(gomock.Any()).Return(3, nil)

		w := post(r, `{"confirm":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["closed"] != 3.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAdminHandler_PaymentReview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pending queue", func(t *testing.T) {
		r, _, payments := newAdminRouter(t)
		payments.EXPECT().ListPending(gomock.Any()).
			Return([]entities.Payment{{ID: "p1", Status: entities.PaymentStatusUploaded}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/payments/pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("paid report needs valid range", func(t *testing.T) {
		r, _, _ := newAdminRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/payments/paid?start=notatime&end=2026-01-01T00:00:00Z", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("paid report", func(t *testing.T) {
		r, _, payments := newAdminRouter(t)
		start, _ := time.Parse(time.RFC3339, "2026-01-01T00:00:00Z")
		end, _ := time.Parse(time.RFC3339, "2026-02-01T00:00:00Z")
		payments.EXPECT().ListPaidBetween(gomock.Any(), start, end).
			Return([]entities.Payment{{ID: "p1", IsPaid: true}}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/v1/admin/payments/paid?start=2026-01-01T00:00:00Z&end=2026-02-01T00:00:00Z", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve", func(t *testing.T) {
		r, _, payments := newAdminRouter(t)
		payments.EXPECT().Approve(gomock.Any(), "p1").
			Return(entities.Payment{ID: "p1", IsPaid: true, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/payments/p1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject unknown payment", func(t *testing.T) {
		r, _, payments := newAdminRouter(t)
		payments.EXPECT().Reject(gomock.Any(), "p1").
			Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/payments/p1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
