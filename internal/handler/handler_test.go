package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taxengine/internal/middleware"
	"taxengine/internal/repository"
	"taxengine/internal/service"
	"taxengine/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Details    json.RawMessage `json:"details"`
}

type testServer struct {
	router *gin.Engine
	store  *session.Store
}

func newTestServer(t *testing.T, maxUpload int64) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	evaluator, base, err := service.LoadCatalog(context.Background(), repository.NewStaticCatalogRepository())
	require.NoError(t, err)

	store := session.NewStore(base)
	issuer := session.NewIssuer([]byte("test-secret"), time.Hour)
	requireSession := middleware.RequireSession(store, issuer, false)
	rateService := service.NewRateService()

	r := gin.New()
	NewNexusHandler(service.NewNexusService(evaluator), maxUpload).RegisterRoutes(r.Group(""))
	NewRateHandler(rateService, requireSession, maxUpload).RegisterRoutes(r.Group(""))
	NewSessionHandler(rateService, store, issuer, requireSession, false).RegisterRoutes(r.Group(""))

	return &testServer{router: r, store: store}
}

func (s *testServer) do(t *testing.T, req *http.Request, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	if token != "" {
		req.Header.Set(middleware.SessionHeader, token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadRequest(t *testing.T, path, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "upload.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestGetThreshold(t *testing.T) {
	s := newTestServer(t, 0)

	w, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/nexus/rules/NY", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[service.ThresholdResponse](t, env.Data)
	assert.Equal(t, "NY", res.Rule.Jurisdiction)
	assert.Equal(t, 100, res.Rule.TransactionThreshold)

	_, env = s.do(t, httptest.NewRequest(http.MethodGet, "/api/nexus/rules/ny", nil), "")
	res = decode[service.ThresholdResponse](t, env.Data)
	assert.True(t, res.Rule.IsDefault, "lookup is case-sensitive")
}

func TestListRules(t *testing.T) {
	s := newTestServer(t, 0)

	w, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/nexus/rules", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[service.NexusRuleTableResponse](t, env.Data)
	assert.Len(t, res.Rules, 6)
	assert.Equal(t, "DEFAULT", res.Default.Jurisdiction)
}

func TestSampleThenEvaluate(t *testing.T) {
	s := newTestServer(t, 0)

	w, _ := s.do(t, httptest.NewRequest(http.MethodGet, "/api/nexus/sample", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sample_nexus.csv")
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	sample := w.Body.String()

	w, env := s.do(t, uploadRequest(t, "/api/nexus/evaluate", sample), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decode[service.NexusEvaluationResponse](t, env.Data)
	order := make([]string, 0, len(res.Verdicts))
	liable := map[string]bool{}
	for _, v := range res.Verdicts {
		order = append(order, v.StateCode)
		liable[v.StateCode] = v.IsLiable
	}
	assert.Equal(t, []string{"CA", "NY", "TX", "WA", "FL", "AL"}, order)
	assert.Equal(t, map[string]bool{"CA": true, "NY": false, "TX": true, "WA": false, "FL": false, "AL": true}, liable)
}

func TestEvaluate_JSONRecords(t *testing.T) {
	s := newTestServer(t, 0)

	body := `{"records":[{"state_code":"AL","amount":"300000"},{"state_code":"CA","amount":"250000"}]}`
	w, env := s.do(t, jsonRequest(http.MethodPost, "/api/nexus/evaluate", body), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	res := decode[service.NexusEvaluationResponse](t, env.Data)
	require.Len(t, res.Verdicts, 2)
	assert.Equal(t, service.StatusLiable, res.Verdicts[0].Status)
	assert.Equal(t, service.StatusSafe, res.Verdicts[1].Status)
}

func TestEvaluate_Errors(t *testing.T) {
	s := newTestServer(t, 0)

	w, env := s.do(t, uploadRequest(t, "/api/nexus/evaluate", "state,total\nCA,1\n"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "state_code")
	assert.Contains(t, env.Error, "amount")
	details := decode[map[string][]string](t, env.Details)
	assert.Equal(t, []string{"state_code", "amount"}, details["missing_columns"])

	w, env = s.do(t, uploadRequest(t, "/api/nexus/evaluate", "state_code,amount\nCA,many\n"), "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, env.Error, "many")

	w, _ = s.do(t, jsonRequest(http.MethodPost, "/api/nexus/evaluate", `{"records":[{"state_code":"CA","amount":"x"}]}`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, jsonRequest(http.MethodPost, "/api/nexus/evaluate", `not json`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/nexus/evaluate", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	w, _ = s.do(t, req, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_TooLarge(t *testing.T) {
	s := newTestServer(t, 16)

	w, _ := s.do(t, uploadRequest(t, "/api/nexus/evaluate", "state_code,amount\nCA,100000\n"), "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestUpload_BodyCutOffBeyondLimit(t *testing.T) {
	s := newTestServer(t, 16)

	big := "state_code,amount\n" + strings.Repeat("CA,100000\n", 20000)
	w, env := s.do(t, uploadRequest(t, "/api/rates/overrides", big), "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, env.Error, "exceeds 16 bytes")
}

func TestCalculateTax(t *testing.T) {
	s := newTestServer(t, 0)

	w, env := s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", `{"zip_code":"90210","amount":"100.0"}`), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[service.CalculateTaxResponse](t, env.Data)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "Beverly Hills", res.City)
	assert.Equal(t, "9.50", res.TaxCollectible)
	assert.Equal(t, "CA-90210", res.JurisdictionCode)
	assert.NotEmpty(t, w.Header().Get(middleware.SessionHeader))

	w, env = s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", `{"zip_code":"00000","amount":"100"}`), "")
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[service.CalculateTaxResponse](t, env.Data)
	assert.Equal(t, "not_found", res.Status)
	assert.Equal(t, "0.00", res.TaxCollectible)
	assert.Contains(t, res.Message, "90210 (Beverly Hills)")

	w, _ = s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", `{"zip_code":"90210","amount":"abc"}`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", `{"zip_code":"90210","amount":"1e50000000"}`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", `{"amount":"1"}`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOverrides_SessionScoped(t *testing.T) {
	s := newTestServer(t, 0)

	w, env := s.do(t, uploadRequest(t, "/api/rates/overrides", "zip_code,city,state,rate\n90210,Override City,CA,0.05\n"), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := w.Header().Get(middleware.SessionHeader)
	require.NotEmpty(t, token)
	load := decode[service.OverrideLoadResponse](t, env.Data)
	assert.Equal(t, service.OverrideLoadResponse{Loaded: 1, BuiltIn: 56, TotalAvailable: 57}, load)

	calc := `{"zip_code":"90210","amount":"100.0"}`
	_, env = s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", calc), token)
	res := decode[service.CalculateTaxResponse](t, env.Data)
	assert.Equal(t, "Override City", res.City)
	assert.Equal(t, "5.00", res.TaxCollectible)
	assert.Equal(t, "override", res.Source)

	// A different session never sees those overrides
	_, env = s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", calc), "")
	res = decode[service.CalculateTaxResponse](t, env.Data)
	assert.Equal(t, "Beverly Hills", res.City)

	// Failed upload leaves the table untouched
	w, env = s.do(t, uploadRequest(t, "/api/rates/overrides", "zip_code,city,state\n90210,Other,CA\n"), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "rate")

	w, _ = s.do(t, uploadRequest(t, "/api/rates/overrides", "zip_code,city,state,rate\n90210,Other,CA,n/a\n"), token)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	_, env = s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", calc), token)
	res = decode[service.CalculateTaxResponse](t, env.Data)
	assert.Equal(t, "Override City", res.City)

	// Clear drops them
	w, env = s.do(t, httptest.NewRequest(http.MethodDelete, "/api/rates/overrides", nil), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[service.SessionResponse](t, env.Data).OverrideCount)

	_, env = s.do(t, jsonRequest(http.MethodPost, "/api/rates/calculate", calc), token)
	res = decode[service.CalculateTaxResponse](t, env.Data)
	assert.Equal(t, "Beverly Hills", res.City)
}

func TestListRates(t *testing.T) {
	s := newTestServer(t, 0)

	w, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/rates?page=2&limit=50", nil), "")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[struct {
		Rates      []service.ZipRateResponse `json:"rates"`
		Pagination struct {
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"pagination"`
	}](t, env.Data)
	assert.Len(t, res.Rates, 6)
	assert.Equal(t, 56, res.Pagination.Total)
	assert.Equal(t, 2, res.Pagination.TotalPages)
}

func TestSession_GetAndEnd(t *testing.T) {
	s := newTestServer(t, 0)

	w, env := s.do(t, httptest.NewRequest(http.MethodGet, "/api/session", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	token := w.Header().Get(middleware.SessionHeader)
	info := decode[service.SessionResponse](t, env.Data)
	assert.NotEmpty(t, info.SessionID)
	assert.Equal(t, 56, info.BuiltInCount)

	_, env = s.do(t, httptest.NewRequest(http.MethodGet, "/api/session", nil), token)
	assert.Equal(t, info.SessionID, decode[service.SessionResponse](t, env.Data).SessionID)

	w, _ = s.do(t, httptest.NewRequest(http.MethodDelete, "/api/session", nil), token)
	require.Equal(t, http.StatusOK, w.Code)

	_, env = s.do(t, httptest.NewRequest(http.MethodGet, "/api/session", nil), token)
	assert.NotEqual(t, info.SessionID, decode[service.SessionResponse](t, env.Data).SessionID)
}
