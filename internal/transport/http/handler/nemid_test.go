package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nemid-codegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockNemIDSvc struct{ mock.Mock }

func (m *mockNemIDSvc) Verify(ctx context.Context, req domain.VerificationRequest) (domain.VerificationResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.VerificationResult), args.Error(1)
}

// --- helpers ---

func postAuth(t *testing.T, h *NemIDHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/nemid-auth", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Auth(rr, r)
	return rr
}

// --- Auth tests ---

func TestAuth_InvalidBody(t *testing.T) {
	svc := &mockNemIDSvc{}
	rr := postAuth(t, NewNemIDHandler(svc, false), []byte("not-json"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuth_Rejection_TransportStatusIs200(t *testing.T) {
	svc := &mockNemIDSvc{}
	req := domain.VerificationRequest{NemIDCode: "1234", NemID: "123456789"}
	svc.On("Verify", mock.Anything, req).Return(domain.Rejected(domain.MsgNotFound), nil)

	rr := postAuth(t, NewNemIDHandler(svc, false), []byte(`{"nemIdCode":"1234","nemId":"123456789"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"generatedCode":0,"statusCode":403,"message":"not found"}`, rr.Body.String())
	svc.AssertExpectations(t)
}

func TestAuth_Rejection_MirroredStatus(t *testing.T) {
	svc := &mockNemIDSvc{}
	svc.On("Verify", mock.Anything, mock.Anything).Return(domain.Rejected(domain.MsgInvalidInput), nil)

	rr := postAuth(t, NewNemIDHandler(svc, true), []byte(`{"nemIdCode":"12","nemId":"123456789"}`))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	var resp domain.VerificationResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, domain.MsgInvalidInput, resp.Message)
}

func TestAuth_HappyPath(t *testing.T) {
	for _, mirror := range []bool{false, true} {
		t.Run(fmt.Sprintf("mirror=%v", mirror), func(t *testing.T) {
			svc := &mockNemIDSvc{}
			svc.On("Verify", mock.Anything, mock.Anything).Return(domain.Generated(42017), nil)

			rr := postAuth(t, NewNemIDHandler(svc, mirror), []byte(`{"nemIdCode":"1234","nemId":"123456789"}`))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"generatedCode":42017,"statusCode":200,"message":"generated"}`, rr.Body.String())
		})
	}
}

func TestAuth_StorageUnavailable_Is500(t *testing.T) {
	svc := &mockNemIDSvc{}
	svc.On("Verify", mock.Anything, mock.Anything).
		Return(domain.VerificationResult{}, fmt.Errorf("lookup: %w", domain.ErrStorageUnavailable))

	rr := postAuth(t, NewNemIDHandler(svc, false), []byte(`{"nemIdCode":"1234","nemId":"123456789"}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "internal error", resp.Error)
}

func TestAuth_UnexpectedError_Is500(t *testing.T) {
	svc := &mockNemIDSvc{}
	svc.On("Verify", mock.Anything, mock.Anything).Return(domain.VerificationResult{}, errors.New("boom"))

	rr := postAuth(t, NewNemIDHandler(svc, true), []byte(`{"nemIdCode":"1234","nemId":"123456789"}`))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAuth_BodyOverReaderLimit_Is413(t *testing.T) {
	svc := &mockNemIDSvc{}
	h := NewNemIDHandler(svc, false)
	r := httptest.NewRequest(http.MethodPost, "/nemid-auth", bytes.NewBufferString(`{"nemIdCode":"1234","nemId":"123456789"}`))
	rr := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(rr, r.Body, 8)

	h.Auth(rr, r)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.JSONEq(t, `{"error":"request body too large"}`, rr.Body.String())
	svc.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuth_NumericFields_Is400(t *testing.T) {
	svc := &mockNemIDSvc{}
	rr := postAuth(t, NewNemIDHandler(svc, false), []byte(`{"nemIdCode":1234,"nemId":123456789}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}
