package ingest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"projetex/internal/app/features/ingest"
	"projetex/internal/app/system/auth"
	"projetex/internal/domain/models"
	"projetex/internal/testutil"
)

func newTestHandler(t *testing.T) (*ingest.Handler, *auth.Identity, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(context.Background(), "Ana", "Souza", "ana@example.com")
	id := &auth.Identity{ID: u.ID.Hex(), Nome: u.Nome, Email: u.Email}
	return ingest.NewHandler(db, zap.NewNop()), id, fx
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadCSV(t *testing.T) {
	h, id, fx := newTestHandler(t)
	ctx := context.Background()
	owner := fx.CreateUser(ctx, "Breno", "Lima", "breno@example.com")
	fx.CreateProject(ctx, "Expansão Sul", owner.ID)

	csv := "Nome do Projeto,Email Responsável,Nome da Tarefa,Data de Fim\n" +
		"Expansão Sul,breno@example.com,Montar cronograma,15/10/2025\n"
	body, ct := multipartBody(t, "tarefas.csv", csv)

	req := httptest.NewRequest("POST", "/ingest/arquivo", body)
	req.Header.Set("Content-Type", ct)
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.UploadFile(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Documento models.IngestedDocument `json:"documento"`
		Criadas   int                     `json:"criadas"`
		Erros     []string                `json:"erros"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Criadas != 1 || len(got.Erros) != 0 {
		t.Errorf("criadas = %d, erros = %v", got.Criadas, got.Erros)
	}
	if got.Documento.TipoFonte != models.SourceFile || got.Documento.Origem != "tarefas.csv" {
		t.Errorf("documento = %+v", got.Documento)
	}
	if len(got.Documento.Registros) != 1 {
		t.Errorf("registros = %d, want 1", len(got.Documento.Registros))
	}
	if got.Documento.BatchID == "" {
		t.Error("batch_id should be set")
	}
}

func TestUploadUnsupportedFormat(t *testing.T) {
	h, id, _ := newTestHandler(t)

	body, ct := multipartBody(t, "notas.txt", "apenas texto")
	req := httptest.NewRequest("POST", "/ingest/arquivo", body)
	req.Header.Set("Content-Type", ct)
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.UploadFile(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415: %s", rec.Code, rec.Body.String())
	}
}

func TestUploadMalformedCSV(t *testing.T) {
	h, id, _ := newTestHandler(t)

	body, ct := multipartBody(t, "quebrado.csv", "Nome\n\"aberto\n")
	req := httptest.NewRequest("POST", "/ingest/arquivo", body)
	req.Header.Set("Content-Type", ct)
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.UploadFile(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestIngestLinkHTML(t *testing.T) {
	h, id, _ := newTestHandler(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main><p>Plano de expansão regional.</p></main></body></html>"))
	}))
	defer srv.Close()

	req := httptest.NewRequest("POST", "/ingest/link", strings.NewReader(`{"url":"`+srv.URL+`"}`))
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.IngestLink(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		Documento models.IngestedDocument `json:"documento"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Documento.TipoFonte != models.SourceLink {
		t.Errorf("tipo_fonte = %q", got.Documento.TipoFonte)
	}
	if !strings.Contains(got.Documento.Conteudo, "Plano de expansão regional.") {
		t.Errorf("conteudo = %q", got.Documento.Conteudo)
	}
}

func TestIngestLinkFetchFailure(t *testing.T) {
	h, id, _ := newTestHandler(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	req := httptest.NewRequest("POST", "/ingest/link", strings.NewReader(`{"url":"`+srv.URL+`"}`))
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.IngestLink(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502: %s", rec.Code, rec.Body.String())
	}
}

func TestIngestLinksPartialFailure(t *testing.T) {
	h, id, _ := newTestHandler(t)

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer bad.Close()

	body := `{"urls":["` + good.URL + `","` + bad.URL + `"]}`
	req := httptest.NewRequest("POST", "/ingest/links", strings.NewReader(body))
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.IngestLinks(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got struct {
		BatchID    string `json:"batch_id"`
		Documentos []any  `json:"documentos"`
		Falhas     []any  `json:"falhas"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Documentos) != 1 || len(got.Falhas) != 1 {
		t.Errorf("documentos = %d, falhas = %d", len(got.Documentos), len(got.Falhas))
	}
}

func TestListDocumentsScopedToOwner(t *testing.T) {
	h, id, _ := newTestHandler(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>doc</body></html>"))
	}))
	defer srv.Close()

	req := httptest.NewRequest("POST", "/ingest/link", strings.NewReader(`{"url":"`+srv.URL+`"}`))
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.IngestLink(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("ingest status = %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/ingest/documentos", nil)
	req = testutil.AuthedRequest(req, id)
	rec = httptest.NewRecorder()
	h.ListDocuments(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var mine []models.IngestedDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &mine); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("owner sees %d documentos, want 1", len(mine))
	}

	req = httptest.NewRequest("GET", "/ingest/documentos", nil)
	req = testutil.AuthedRequest(req, testutil.TestIdentity())
	rec = httptest.NewRecorder()
	h.ListDocuments(rec, req)
	var others []models.IngestedDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &others); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(others) != 0 {
		t.Errorf("other user sees %d documentos, want 0", len(others))
	}
}
