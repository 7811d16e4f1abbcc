package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult *dto.UserResponse
	registerErr    error
	loginResult    *dto.TokenResponse
	loginErr       error
	refreshResult  *dto.TokenResponse
	refreshErr     error
	logoutErr      error
	meResult       *dto.UserResponse
	meErr          error
	changePassErr  error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.UserResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.meResult, m.meErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock AttendanceService ──

type mockAttendanceService struct {
	joinResult      *dto.AttendanceResponse
	joinErr         error
	heartbeatResult *dto.AttendanceResponse
	heartbeatErr    error
	leaveResult     *dto.AttendanceResponse
	leaveErr        error
	markResult      *dto.AttendanceResponse
	markErr         error
	summaryResult   *dto.ClassAttendanceSummary
	summaryErr      error
	myResult        *dto.AttendanceResponse
	myErr           error
	historyResult   []dto.AttendanceResponse
	historyErr      error
}

func (m *mockAttendanceService) Join(_ context.Context, _, _ string) (*dto.AttendanceResponse, error) {
	return m.joinResult, m.joinErr
}
func (m *mockAttendanceService) Heartbeat(_ context.Context, _, _ string) (*dto.AttendanceResponse, error) {
	return m.heartbeatResult, m.heartbeatErr
}
func (m *mockAttendanceService) Leave(_ context.Context, _, _ string) (*dto.AttendanceResponse, error) {
	return m.leaveResult, m.leaveErr
}
func (m *mockAttendanceService) Mark(_ context.Context, _ string, _ *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, error) {
	return m.markResult, m.markErr
}
func (m *mockAttendanceService) ClassSummary(_ context.Context, _ string) (*dto.ClassAttendanceSummary, error) {
	return m.summaryResult, m.summaryErr
}
func (m *mockAttendanceService) MyAttendance(_ context.Context, _, _ string) (*dto.AttendanceResponse, error) {
	return m.myResult, m.myErr
}
func (m *mockAttendanceService) UserHistory(_ context.Context, _ string) ([]dto.AttendanceResponse, error) {
	return m.historyResult, m.historyErr
}

// ── Mock ApprovalService ──

type mockApprovalService struct {
	verifyErr  error
	approveErr error
	statusErr  error
}

func (m *mockApprovalService) Verify(_ context.Context, _ string) error { return m.verifyErr }
func (m *mockApprovalService) Approve(_ context.Context, _, _ string) error {
	return m.approveErr
}
func (m *mockApprovalService) UpdateStatus(_ context.Context, _, _ string) error {
	return m.statusErr
}

// ── Mock FormService ──

type mockFormService struct {
	createResult  *dto.FormResponse
	createErr     error
	getResult     *dto.FormResponse
	getErr        error
	slugResult    *dto.FormResponse
	slugErr       error
	listResult    []dto.FormResponse
	listErr       error
	deleteErr     error
	submitResult  *dto.SubmissionResponse
	submitErr     error
	getSubResult  *dto.SubmissionResponse
	getSubErr     error
	listSubResult []dto.SubmissionResponse
	listSubTotal  int64
	listSubErr    error
}

func (m *mockFormService) Create(_ context.Context, _ *dto.CreateFormRequest) (*dto.FormResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockFormService) GetByID(_ context.Context, _ string) (*dto.FormResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockFormService) GetBySlug(_ context.Context, _ string) (*dto.FormResponse, error) {
	return m.slugResult, m.slugErr
}
func (m *mockFormService) List(_ context.Context) ([]dto.FormResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockFormService) Delete(_ context.Context, _ string) error { return m.deleteErr }
func (m *mockFormService) Submit(_ context.Context, _ string, _ *dto.SubmitFormRequest) (*dto.SubmissionResponse, error) {
	return m.submitResult, m.submitErr
}
func (m *mockFormService) GetSubmission(_ context.Context, _ string) (*dto.SubmissionResponse, error) {
	return m.getSubResult, m.getSubErr
}
func (m *mockFormService) ListSubmissions(_ context.Context, _ string, _ *dto.SubmissionListRequest) ([]dto.SubmissionResponse, int64, error) {
	return m.listSubResult, m.listSubTotal, m.listSubErr
}

// ── Test helpers ──

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func authInjector(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("jti", "test-jti")
		c.Set("token_exp", time.Now().Add(15*time.Minute))
		c.Next()
	}
}

// ── AuthHandler ──

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "test-access",
			RefreshToken: "test-refresh",
			ExpiresIn:    900,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "ada@nexus.dev",
		Password: "S3curePass!",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "ada@nexus.dev",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 20001 {
		t.Errorf("expected error code 20001, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{registerErr: service.ErrEmailExists})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@nexus.dev",
		Password: "S3curePass!",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

// ── AttendanceHandler ──

func TestAttendanceHandler_Join_Success(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{
		joinResult: &dto.AttendanceResponse{ID: "att-1", Status: "PRESENT"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/classes/class-1/join", nil)

	r := gin.New()
	r.POST("/classes/:id/join", authInjector("user-1", "GENERAL_MEMBER"), h.Join)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAttendanceHandler_Join_Unauthenticated(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/classes/class-1/join", nil)

	r := gin.New()
	r.POST("/classes/:id/join", h.Join)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without auth context, got %d", w.Code)
	}
}

func TestAttendanceHandler_Join_ClassNotFound(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{joinErr: service.ErrClassNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/classes/missing/join", nil)

	r := gin.New()
	r.POST("/classes/:id/join", authInjector("user-1", "GENERAL_MEMBER"), h.Join)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 40001 {
		t.Errorf("expected error code 40001, got %d", resp.Code)
	}
}

func TestAttendanceHandler_Heartbeat_NotInClass(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{heartbeatErr: service.ErrNotInClass})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/classes/class-1/heartbeat", nil)

	r := gin.New()
	r.POST("/classes/:id/heartbeat", authInjector("user-1", "GENERAL_MEMBER"), h.Heartbeat)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 40002 {
		t.Errorf("expected error code 40002, got %d", resp.Code)
	}
}

func TestAttendanceHandler_Mark_InvalidStatus(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/classes/class-1/mark-attendance", jsonBody(map[string]string{
		"user_id": "user-1",
		"status":  "SLEEPING",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/classes/:id/mark-attendance", authInjector("lead-1", "TEAM_LEAD"), h.Mark)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("a status outside the vocabulary should fail binding, got %d", w.Code)
	}
}

// ── FormHandler ──

func TestFormHandler_Verify_AlreadyProcessed(t *testing.T) {
	h := NewFormHandler(&mockFormService{}, &mockApprovalService{
		verifyErr: service.ErrSubmissionAlreadyProcessed,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/forms/submissions/sub-1/verify", nil)

	r := gin.New()
	r.POST("/forms/submissions/:id/verify", h.Verify)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 50004 {
		t.Errorf("expected error code 50004, got %d", resp.Code)
	}
}

func TestFormHandler_Verify_Success(t *testing.T) {
	h := NewFormHandler(&mockFormService{}, &mockApprovalService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/forms/submissions/sub-1/verify", nil)

	r := gin.New()
	r.POST("/forms/submissions/:id/verify", h.Verify)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestFormHandler_Approve_MissingFieldID(t *testing.T) {
	h := NewFormHandler(&mockFormService{}, &mockApprovalService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/forms/submissions/sub-1/approve", jsonBody(map[string]string{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/forms/submissions/:id/approve", h.Approve)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without field_id, got %d", w.Code)
	}
}

func TestFormHandler_Submit_FormNotFound(t *testing.T) {
	h := NewFormHandler(&mockFormService{submitErr: service.ErrFormNotFound}, &mockApprovalService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/forms/missing/submissions", jsonBody(map[string]interface{}{
		"data": map[string]string{"email": "ada@nexus.dev"},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/forms/:id/submissions", h.Submit)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
