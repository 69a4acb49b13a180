package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mass_oss/internal/adapter/http/handlers/mocks"
	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const estimatePath = "/v1/orgs/:org_id/work-orders/:id/estimate"

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST(estimatePath, h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/orgs/org-1/work-orders/WO-002/estimate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST(estimatePath, h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/orgs/org-1/work-orders/WO-002/estimate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST(estimatePath, h.CreateEstimate)

		uc.EXPECT().CalculateEstimate(gomock.Any(), "org-1", "WO-001", 10.0).Return(entities.WorkOrder{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/orgs/org-1/work-orders/WO-001/estimate", bytes.NewBufferString(`{"services":[{"name":"Oil","price":10}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST(estimatePath, h.CreateEstimate)

		price := 2800.0
		uc.EXPECT().CalculateEstimate(gomock.Any(), "org-1", "WO-002", 2800.0).Return(entities.WorkOrder{
			ID: "WO-002", OrgID: "org-1", Status: entities.StatusAwaitingApproval, Estimate: &price, UpdatedAt: time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orgs/org-1/work-orders/WO-002/estimate", bytes.NewBufferString(`{"price":2800}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["work_order_id"] != "WO-002" || body["status"] != "awaiting-approval" || body["price"] != 2800.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_UpdateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.PATCH(estimatePath, h.UpdateEstimate)

	price := 21.0
	uc.EXPECT().UpdateEstimatePrice(gomock.Any(), "org-1", "WO-004", 21.0).Return(entities.WorkOrder{ID: "WO-004", Status: entities.StatusAwaitingApproval, Estimate: &price}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/orgs/org-1/work-orders/WO-004/estimate", bytes.NewBufferString(`{"services":[{"name":"a","price":15}],"parts_supplies":[{"name":"b","price":3,"quantity":2}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestEstimateHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(path string, f gin.HandlerFunc) *gin.Engine {
		r := gin.New()
		r.PATCH(path, f)
		return r
	}

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r := build(estimatePath+"/approve", h.ApproveEstimate)

		uc.EXPECT().Approve(gomock.Any(), "org-1", "WO-004").Return(entities.WorkOrder{ID: "WO-004", Status: entities.StatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orgs/org-1/work-orders/WO-004/estimate/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r := build(estimatePath+"/reject", h.RejectEstimate)

		uc.EXPECT().Reject(gomock.Any(), "org-1", "WO-001").Return(entities.WorkOrder{}, usecase.ErrEstimateNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orgs/org-1/work-orders/WO-001/estimate/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)
		r := build(estimatePath+"/approve", h.ApproveEstimate)

		uc.EXPECT().Approve(gomock.Any(), "org-1", "WO-404").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orgs/org-1/work-orders/WO-404/estimate/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
