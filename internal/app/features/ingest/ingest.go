// internal/app/features/ingest/ingest.go
package ingest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	documentstore "projetex/internal/app/store/documents"
	"projetex/internal/app/system/auth"
	"projetex/internal/app/system/extract"
	"projetex/internal/app/system/httpjson"
	"projetex/internal/app/system/timeouts"
	"projetex/internal/domain/models"
)

// UploadFile handles POST /ingest/arquivo, a multipart upload under the
// "file" field. Tabular files also run the task importer.
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(extract.MaxUploadSize); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "upload multipart inválido")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "campo 'file' é obrigatório")
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	doc := models.IngestedDocument{
		TipoFonte:     models.SourceFile,
		Origem:        header.Filename,
		BatchID:       uuid.NewString(),
		ResponsavelID: owner,
	}
	var report ImportReport

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		records, err := extract.ParseCSV(file)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		doc.Registros = records
		report = h.Importer.Run(ctx, records)

	case ".xlsx":
		records, err := extract.ParseXLSX(file)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		doc.Registros = records
		report = h.Importer.Run(ctx, records)

	case ".docx":
		text, err := extract.ParseDOCX(file)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		doc.Conteudo = h.sanitizer.Sanitize(text)
		report.Erros = []string{}

	default:
		httpjson.Error(w, http.StatusUnsupportedMediaType,
			"formato não suportado; envie .csv, .xlsx ou .docx")
		return
	}

	stored, err := h.Documents.Insert(ctx, doc)
	if err != nil {
		h.Log.Error("failed to store documento", zap.Error(err), zap.String("origem", doc.Origem))
		httpjson.Error(w, http.StatusInternalServerError, "could not store documento")
		return
	}

	h.Log.Info("arquivo ingerido",
		zap.String("origem", stored.Origem),
		zap.String("batch_id", stored.BatchID),
		zap.Int("registros", len(stored.Registros)),
		zap.Int("criadas", report.Criadas))

	httpjson.Respond(w, http.StatusCreated, ingestResult{
		Documento: stored,
		Criadas:   report.Criadas,
		Erros:     report.Erros,
	})
}

// IngestLink handles POST /ingest/link, fetching one URL.
func (h *Handler) IngestLink(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req linkRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	res, err := h.ingestOne(ctx, owner, req.URL, uuid.NewString())
	if errors.Is(err, extract.ErrFetch) {
		httpjson.Error(w, http.StatusBadGateway, err.Error())
		return
	}
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpjson.Respond(w, http.StatusCreated, res)
}

// IngestLinks handles POST /ingest/links, fetching several URLs under
// one batch id. Individual failures are reported per URL; the batch
// itself succeeds if any link does.
func (h *Handler) IngestLinks(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req linksRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	batch := batchResult{
		BatchID:    uuid.NewString(),
		Documentos: []ingestResult{},
		Falhas:     []linkError{},
	}
	for _, u := range req.URLs {
		res, err := h.ingestOne(ctx, owner, u, batch.BatchID)
		if err != nil {
			batch.Falhas = append(batch.Falhas, linkError{URL: u, Erro: err.Error()})
			continue
		}
		batch.Documentos = append(batch.Documentos, res)
	}

	if len(batch.Documentos) == 0 && len(batch.Falhas) > 0 {
		httpjson.Respond(w, http.StatusBadGateway, batch)
		return
	}
	httpjson.Respond(w, http.StatusCreated, batch)
}

// ListDocuments handles GET /ingest/documentos: the caller's most
// recent ingested documents.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUserID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	docs, err := h.Documents.ListByResponsavel(ctx, owner, 50)
	if err != nil {
		h.Log.Error("failed to list documentos", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list documentos")
		return
	}
	if docs == nil {
		docs = []models.IngestedDocument{}
	}
	httpjson.Respond(w, http.StatusOK, docs)
}

// GetDocument handles GET /ingest/documentos/{id}.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "documento não encontrado")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	doc, err := h.Documents.GetByID(ctx, id)
	if errors.Is(err, documentstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "documento não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to load documento", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load documento")
		return
	}
	httpjson.Respond(w, http.StatusOK, doc)
}

// ingestOne fetches a URL, stores the resulting document, and runs the
// importer when the link was tabular.
func (h *Handler) ingestOne(ctx context.Context, owner primitive.ObjectID, url, batchID string) (ingestResult, error) {
	fetched, err := h.Fetcher.Fetch(ctx, url)
	if err != nil {
		return ingestResult{}, err
	}

	doc := models.IngestedDocument{
		TipoFonte:     models.SourceLink,
		Origem:        url,
		Conteudo:      h.sanitizer.Sanitize(fetched.Text),
		Registros:     fetched.Records,
		BatchID:       batchID,
		ResponsavelID: owner,
	}

	var report ImportReport
	report.Erros = []string{}
	if len(fetched.Records) > 0 {
		report = h.Importer.Run(ctx, fetched.Records)
	}

	stored, err := h.Documents.Insert(ctx, doc)
	if err != nil {
		h.Log.Error("failed to store documento", zap.Error(err), zap.String("origem", url))
		return ingestResult{}, errors.New("could not store documento")
	}

	h.Log.Info("link ingerido",
		zap.String("origem", url),
		zap.String("batch_id", batchID),
		zap.Int("criadas", report.Criadas))

	return ingestResult{Documento: stored, Criadas: report.Criadas, Erros: report.Erros}, nil
}

func currentUserID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthorized(w, "não autenticado")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		httpjson.Unauthorized(w, "não autenticado")
		return primitive.NilObjectID, false
	}
	return id, true
}
