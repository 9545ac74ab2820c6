package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFileTooLarge indicates a source file above the configured size limit.
	ErrFileTooLarge = errors.New("arquivo excede o tamanho máximo permitido")
	// ErrEmptyRequest indicates a batch without any file or payload.
	ErrEmptyRequest = errors.New("nenhum arquivo enviado")
	// ErrMissingCompany indicates an upload without a company identifier.
	ErrMissingCompany = errors.New("company_id obrigatório")
	// ErrMissingSheets indicates an update without a "sheets" payload.
	ErrMissingSheets = errors.New("dados de planilhas ausentes")
	// ErrSheetNotFound indicates a selected block that is not in the collection.
	ErrSheetNotFound = errors.New("planilha não encontrada")
	// ErrDocumentNotFound indicates an unknown document or company.
	ErrDocumentNotFound = errors.New("documento não encontrado")
	// ErrInvalidSheetIndex indicates a sheet index outside the collection.
	ErrInvalidSheetIndex = errors.New("índice da planilha inválido")
	// ErrInvalidCell indicates a cell addressed outside the sheet limits.
	ErrInvalidCell = errors.New("posição de célula inválida")
	// ErrUnsupportedWorkbook indicates a workbook neither xlsx nor xls could open.
	ErrUnsupportedWorkbook = errors.New("formato de planilha não suportado")
)

// SheetNotFoundError names the missing sheet and, when one is close enough,
// the sheet the caller probably meant.
type SheetNotFoundError struct {
	Name       string
	Suggestion string
}

func (e *SheetNotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v: %q (você quis dizer %q?)", ErrSheetNotFound, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%v: %q", ErrSheetNotFound, e.Name)
}

func (e *SheetNotFoundError) Unwrap() error {
	return ErrSheetNotFound
}
