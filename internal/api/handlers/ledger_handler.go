// internal/api/handlers/ledger_handler.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ledger-service/internal/api/responses"
	"ledger-service/internal/core/ledger"
	"ledger-service/internal/core/merge"
	"ledger-service/internal/domain"
	"ledger-service/internal/storage"

	"github.com/gin-gonic/gin"
)

// LedgerHandler lida com as requisições de importação, edição e exportação
// de arquivos SPED.
type LedgerHandler struct {
	service ledger.Service
}

// NewLedgerHandler cria um novo handler de arquivos SPED.
func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		service: service,
	}
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSheetNotFound),
		errors.Is(err, domain.ErrMissingSheets),
		errors.Is(err, domain.ErrMissingCompany),
		errors.Is(err, domain.ErrEmptyRequest),
		errors.Is(err, domain.ErrInvalidSheetIndex),
		errors.Is(err, domain.ErrInvalidCell),
		errors.Is(err, domain.ErrUnsupportedWorkbook),
		errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, message string, err error) {
	responses.Error(c, statusFor(err), message, err.Error())
}

func sourcesFromForm(headers []*multipart.FileHeader) []merge.Source {
	sources := make([]merge.Source, 0, len(headers))
	for _, fh := range headers {
		sources = append(sources, merge.Source{
			Name: fh.Filename,
			Size: fh.Size,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		})
	}
	return sources
}

// HandleUpload processa arquivos SPED e adiciona as planilhas ao documento da empresa.
func (h *LedgerHandler) HandleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Formulário multipart inválido")
		return
	}
	headers := append(form.File["files"], form.File["files[]"]...)
	if len(headers) == 0 {
		responses.Error(c, http.StatusBadRequest, "Nenhum arquivo SPED foi enviado")
		return
	}
	companyID := strings.TrimSpace(c.PostForm("company_id"))
	if companyID == "" {
		responses.Error(c, http.StatusBadRequest, "company_id não informado")
		return
	}
	tag := false
	if raw := strings.TrimSpace(c.PostForm("tagProvenance")); raw != "" {
		if tag, err = strconv.ParseBool(raw); err != nil {
			responses.Error(c, http.StatusBadRequest, "Valor inválido para tagProvenance")
			return
		}
	}

	result, err := h.service.Upload(c.Request.Context(), companyID, sourcesFromForm(headers), tag)
	if err != nil {
		fail(c, "Erro ao processar os arquivos", err)
		return
	}
	responses.Success(c, result, "Arquivos processados")
}

// HandleGetDocument retorna um documento pelo id.
func (h *LedgerHandler) HandleGetDocument(c *gin.Context) {
	id := c.Param("id")
	if !storage.ValidDocumentID(id) {
		responses.Error(c, http.StatusBadRequest, "Formato de id de documento inválido")
		return
	}
	doc, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		fail(c, "Documento não encontrado", err)
		return
	}
	responses.Success(c, doc, "")
}

type updateRequest struct {
	Sheets domain.SheetCollection `json:"sheets"`
}

// HandleUpdateDocument substitui as planilhas de um documento após edição.
func (h *LedgerHandler) HandleUpdateDocument(c *gin.Context) {
	id := c.Param("id")
	if !storage.ValidDocumentID(id) {
		responses.Error(c, http.StatusBadRequest, "Formato de id de documento inválido")
		return
	}
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}
	doc, err := h.service.UpdateDocument(c.Request.Context(), id, req.Sheets)
	if err != nil {
		fail(c, "Erro ao atualizar documento", err)
		return
	}
	responses.Success(c, doc, "Documento atualizado")
}

// HandleDeleteSheet exclui uma planilha do documento da empresa.
func (h *LedgerHandler) HandleDeleteSheet(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Índice da planilha inválido")
		return
	}
	sheets, err := h.service.DeleteSheet(c.Request.Context(), c.Param("company_id"), index)
	if err != nil {
		fail(c, "Erro ao excluir planilha", err)
		return
	}
	responses.Success(c, gin.H{"sheets": sheets}, "Planilha excluída com sucesso")
}

// HandleExport exporta os arquivos editados para texto SPED, empacotados em zip.
func (h *LedgerHandler) HandleExport(c *gin.Context) {
	var files []ledger.ExportFile
	if err := c.ShouldBindJSON(&files); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}
	data, err := h.service.ExportText(files)
	if err != nil {
		fail(c, "Erro ao exportar arquivos", err)
		return
	}
	responses.Attachment(c, "application/zip", "exported_files.zip", data)
}

// HandleExportCSV exporta um arquivo editado para CSV.
func (h *LedgerHandler) HandleExportCSV(c *gin.Context) {
	var file ledger.ExportFile
	if err := c.ShouldBindJSON(&file); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}
	data, err := h.service.ExportCSV(file)
	if err != nil {
		fail(c, "Erro ao exportar CSV", err)
		return
	}
	responses.Attachment(c, "text/csv; charset=utf-8", exportName(file.FileName, ".csv"), data)
}

// HandleExportWorkbook exporta um arquivo editado para planilha Excel.
func (h *LedgerHandler) HandleExportWorkbook(c *gin.Context) {
	var file ledger.ExportFile
	if err := c.ShouldBindJSON(&file); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}
	data, err := h.service.ExportWorkbook(file)
	if err != nil {
		fail(c, "Erro ao exportar planilha", err)
		return
	}
	responses.Attachment(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		exportName(file.FileName, ".xlsx"), data)
}

// HandleImportWorkbook lê uma planilha editada (.xlsx ou .xls) de volta para planilhas.
func (h *LedgerHandler) HandleImportWorkbook(c *gin.Context) {
	fh, err := c.FormFile("workbook")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Planilha (.xls, .xlsx) não encontrada ou inválida")
		return
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".xls" && ext != ".xlsx" {
		responses.Error(c, http.StatusBadRequest, fmt.Sprintf("Extensão de planilha não suportada: %s", ext))
		return
	}
	file, err := fh.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir a planilha")
		return
	}
	defer file.Close()

	sheets, err := h.service.ImportWorkbook(file, fh.Filename)
	if err != nil {
		fail(c, "Erro ao importar planilha", err)
		return
	}
	responses.Success(c, gin.H{"sheets": sheets}, "Planilha importada")
}

// HandleCodes lista os códigos de registro conhecidos, na ordem do leiaute.
func (h *LedgerHandler) HandleCodes(c *gin.Context) {
	responses.Success(c, h.service.Codes(), "")
}

func exportName(name, ext string) string {
	base := strings.TrimSuffix(filepath.Base(strings.TrimSpace(name)), filepath.Ext(name))
	if base == "" || base == "." {
		base = "Exportacao_" + time.Now().Format("20060102_150405")
	}
	return base + ext
}
