package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledger-service/internal/core/ledger"
	"ledger-service/internal/domain"
	"ledger-service/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sped = "|0000|006|0|||01012024|31012024|EMPRESA|11111111000111|RS|\n" +
	"|C100|0|1|A1|\n" +
	"|C170|1|ITEM A|\n" +
	"|9999|4|\n"

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := ledger.NewService(ledger.Options{Store: storage.NewMemoryStore()})
	return NewRouter(NewLedgerHandler(svc))
}

func multipartBody(t *testing.T, field string, files map[string]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func do(router *gin.Engine, method, target string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func upload(t *testing.T, router *gin.Engine) domain.Document {
	t.Helper()
	body, ct := multipartBody(t, "files", map[string]string{"a.txt": sped}, map[string]string{"company_id": "acme"})
	rec := do(router, http.MethodPost, "/api/v1/upload", body, ct)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result domain.UploadResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	require.Len(t, result.Data, 1)
	return *result.Data[0]
}

func TestHealth(t *testing.T) {
	rec := do(newTestRouter(), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"UP"`)
}

func TestUploadAndGetDocument(t *testing.T) {
	router := newTestRouter()
	doc := upload(t, router)
	assert.Equal(t, "acme", doc.CompanyID)
	assert.Equal(t, []string{"0000", "C100", "9999"}, doc.Sheets.Names())

	rec := do(router, http.MethodGet, "/api/v1/documents/"+doc.ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Document
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, doc.ID, got.ID)

	rec = do(router, http.MethodGet, "/api/v1/documents/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodGet, "/api/v1/documents/"+storage.NewDocumentID(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decode(t, rec).Status)
}

func TestUploadValidation(t *testing.T) {
	router := newTestRouter()

	body, ct := multipartBody(t, "files", nil, map[string]string{"company_id": "acme"})
	rec := do(router, http.MethodPost, "/api/v1/upload", body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, ct = multipartBody(t, "files", map[string]string{"a.txt": sped}, nil)
	rec = do(router, http.MethodPost, "/api/v1/upload", body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, ct = multipartBody(t, "files[]", map[string]string{"a.txt": sped},
		map[string]string{"company_id": "acme", "tagProvenance": "talvez"})
	rec = do(router, http.MethodPost, "/api/v1/upload", body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteSheet(t *testing.T) {
	router := newTestRouter()
	doc := upload(t, router)

	payload, err := json.Marshal(gin.H{"sheets": doc.Sheets[:2]})
	require.NoError(t, err)
	rec := do(router, http.MethodPut, "/api/v1/documents/"+doc.ID, bytes.NewBuffer(payload), "application/json")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(router, http.MethodPut, "/api/v1/documents/"+doc.ID, bytes.NewBufferString(`{}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodDelete, "/api/v1/documents/acme/sheet/0", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Sheets domain.SheetCollection `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, []string{"C100"}, out.Sheets.Names())

	rec = do(router, http.MethodDelete, "/api/v1/documents/acme/sheet/9", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(router, http.MethodDelete, "/api/v1/documents/acme/sheet/x", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(router, http.MethodDelete, "/api/v1/documents/nobody/sheet/0", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportEndpoints(t *testing.T) {
	router := newTestRouter()
	doc := upload(t, router)

	payload, err := json.Marshal([]ledger.ExportFile{{FileName: "a.txt", Sheets: doc.Sheets}})
	require.NoError(t, err)
	rec := do(router, http.MethodPost, "/api/v1/export", bytes.NewBuffer(payload), "application/json")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "exported_files.zip")

	payload, err = json.Marshal([]ledger.ExportFile{{FileName: "a.txt", Sheets: doc.Sheets, SelectedBlocks: []string{"Z999"}}})
	require.NoError(t, err)
	rec = do(router, http.MethodPost, "/api/v1/export", bytes.NewBuffer(payload), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	payload, err = json.Marshal(ledger.ExportFile{FileName: "a.txt", Sheets: doc.Sheets})
	require.NoError(t, err)
	rec = do(router, http.MethodPost, "/api/v1/export/csv", bytes.NewBuffer(payload), "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "a.csv")
	assert.Contains(t, rec.Body.String(), `"C100","0","1","A1"`)

	rec = do(router, http.MethodPost, "/api/v1/export/xlsx", bytes.NewBuffer(payload), "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	workbook := rec.Body.String()

	body, ct := multipartBody(t, "workbook", map[string]string{"a.xlsx": workbook}, nil)
	rec = do(router, http.MethodPost, "/api/v1/import/workbook", body, ct)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var imported struct {
		Sheets domain.SheetCollection `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &imported))
	assert.Equal(t, doc.Sheets.Names(), imported.Sheets.Names())

	body, ct = multipartBody(t, "workbook", map[string]string{"a.pdf": "x"}, nil)
	rec = do(router, http.MethodPost, "/api/v1/import/workbook", body, ct)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCodesEndpoint(t *testing.T) {
	rec := do(newTestRouter(), http.MethodGet, "/api/v1/registry/codes", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var codes []string
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &codes))
	assert.Contains(t, codes, "C170")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(domain.ErrDocumentNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFor(&domain.SheetNotFoundError{Name: "X"}))
	assert.Equal(t, http.StatusBadRequest, statusFor(domain.ErrInvalidCell))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
