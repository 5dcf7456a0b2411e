package employees_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"staffing-backend/internal/assignments"
	"staffing-backend/internal/employees"
	"staffing-backend/internal/llm"
	"staffing-backend/internal/rankings"
	"staffing-backend/internal/render"
	"staffing-backend/internal/roster"
	"staffing-backend/internal/shared/config"
	"staffing-backend/internal/shared/server"
)

type stubRenderer struct{}

func (stubRenderer) RenderPages(ctx context.Context, data []byte) ([]render.PageImage, error) {
	return []render.PageImage{{MIMEType: "image/jpeg", Data: []byte{0xFF, 0xD8}}}, nil
}

type stubLLM struct {
	llm.PlaceholderClient
	analyzeResp string
}

func (s stubLLM) AnalyzeResume(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	return json.RawMessage(s.analyzeResp), nil
}

func newTestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := roster.NewMemoryRepo()
	return server.NewRouter(server.RouterDeps{
		Config:             config.Config{Env: "dev"},
		EmployeesHandler:   employees.NewHandler(&employees.Service{Repo: repo, LLM: client, Renderer: stubRenderer{}}),
		RankingsHandler:    rankings.NewHandler(&rankings.Service{Repo: repo, LLM: client}),
		AssignmentsHandler: assignments.NewHandler(&assignments.Service{Repo: repo, LLM: client}),
	})
}

func multipartUpload(t *testing.T, name, fileName, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("name", name); err != nil {
		t.Fatalf("write name field: %v", err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create file part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestAddEmployeeAndList(t *testing.T) {
	router := newTestRouter(stubLLM{analyzeResp: `{"summary":"Builds backends","skills":["Go"],"experienceYears":4}`})

	body, contentType := multipartUpload(t, "Al", "resume.pdf", "application/pdf", []byte("%PDF-fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Session-Id", "test-session")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Version   uint64 `json:"version"`
		Employees []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"employees"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if len(created.Employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(created.Employees))
	}
	if created.Employees[0].Name != "Al" || created.Employees[0].Status != "analyzed" {
		t.Fatalf("unexpected employee: %+v", created.Employees[0])
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	reqGet.Header.Set("X-Session-Id", "test-session")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var listed struct {
		Employees []struct {
			Name string `json:"name"`
		} `json:"employees"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Employees) != 1 || listed.Employees[0].Name != "Al" {
		t.Fatalf("unexpected roster: %+v", listed.Employees)
	}
}

func TestAddEmployeeRejectsNonPDF(t *testing.T) {
	router := newTestRouter(stubLLM{analyzeResp: `{}`})

	body, contentType := multipartUpload(t, "Al", "resume.docx", "application/msword", []byte("doc"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Session-Id", "test-session")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "invalid_upload" {
		t.Fatalf("expected invalid_upload, got %s", errResp.Error.Code)
	}

	// The rejected upload left the roster untouched.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	reqGet.Header.Set("X-Session-Id", "test-session")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	var listed struct {
		Version   uint64            `json:"version"`
		Employees []json.RawMessage `json:"employees"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed.Employees) != 0 || listed.Version != 0 {
		t.Fatalf("expected empty version-0 roster, got %+v", listed)
	}
}

func TestAddEmployeeRequiresName(t *testing.T) {
	router := newTestRouter(stubLLM{analyzeResp: `{}`})

	body, contentType := multipartUpload(t, "", "resume.pdf", "application/pdf", []byte("%PDF-fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestSessionHeaderIsMintedWhenAbsent(t *testing.T) {
	router := newTestRouter(stubLLM{analyzeResp: `{}`})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("X-Session-Id") == "" {
		t.Fatalf("expected minted session id header")
	}
}
