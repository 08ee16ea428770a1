package services

import (
	"context"
	"encoding/base64"
	"mime"
	"path/filepath"
	"time"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

// DocumentPayload is the JSON body for document create/update. Content
// travels base64-encoded; on update it is optional and omission preserves the
// stored bytes.
type DocumentPayload struct {
	ID          int     `json:"id"`
	CaseID      int     `json:"id_caso"`
	Description string  `json:"descricao"`
	SentAt      string  `json:"data_envio"`
	FileName    string  `json:"nome_arquivo"`
	FileBase64  *string `json:"arquivo_base64"`
}

func probeDocumentCase(tx *gorm.DB, caseID int) error {
	return probeReference(tx, &models.Case{}, "id_caso", "id_caso",
		"ID do caso (id_caso) não existe.", caseID)
}

// CreateDocument decodes the base64 content, probes the case reference and
// inserts the document.
func CreateDocument(ctx context.Context, dbConn *gorm.DB, p *DocumentPayload) (int, error) {
	if p.FileBase64 == nil {
		return 0, &ValidationError{Message: "Conteúdo Base64 do arquivo é obrigatório."}
	}
	content, err := base64.StdEncoding.DecodeString(*p.FileBase64)
	if err != nil {
		return 0, &ValidationError{Message: "Conteúdo Base64 inválido: " + err.Error()}
	}
	sentAt, err := ParseDate(p.SentAt)
	if err != nil {
		return 0, &ValidationError{Message: "Data de envio inválida. Use o formato AAAA-MM-DD."}
	}

	var id int
	err = dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := probeDocumentCase(tx, p.CaseID); err != nil {
			return err
		}
		record := models.Document{
			CaseID:      p.CaseID,
			Description: SanitizeText(p.Description),
			SentAt:      &sentAt,
			FileName:    p.FileName,
			Content:     content,
		}
		if err := tx.Create(&record).Error; err != nil {
			return wrapWriteError(err)
		}
		id = record.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateDocument replaces the document metadata; the binary column is only
// touched when new base64 content is supplied.
func UpdateDocument(ctx context.Context, dbConn *gorm.DB, p *DocumentPayload) error {
	var content []byte
	if p.FileBase64 != nil {
		decoded, err := base64.StdEncoding.DecodeString(*p.FileBase64)
		if err != nil {
			return &ValidationError{Message: "Conteúdo Base64 inválido para atualização: " + err.Error()}
		}
		content = decoded
	}
	sentAt, err := ParseDate(p.SentAt)
	if err != nil {
		return &ValidationError{Message: "Data de envio inválida. Use o formato AAAA-MM-DD."}
	}

	return dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := probeDocumentCase(tx, p.CaseID); err != nil {
			return err
		}
		updates := map[string]interface{}{
			"id_caso":      p.CaseID,
			"descricao":    SanitizeText(p.Description),
			"data_envio":   sentAt,
			"nome_arquivo": p.FileName,
		}
		if content != nil {
			updates["arquivo"] = content
		}
		res := tx.Model(&models.Document{}).Where("id_documento = ?", p.ID).Updates(updates)
		if res.Error != nil {
			return wrapWriteError(res.Error)
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Message: "Documento não encontrado."}
		}
		return nil
	})
}

// DeleteDocument removes a document by id
func DeleteDocument(ctx context.Context, dbConn *gorm.DB, id int) error {
	res := dbConn.WithContext(ctx).Delete(&models.Document{}, "id_documento = ?", id)
	if res.Error != nil {
		return wrapWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Message: "Documento não encontrado."}
	}
	return nil
}

// DocumentRow is the metadata response shape; the binary content never
// appears on the listing paths.
type DocumentRow struct {
	ID          int     `json:"id_documento"`
	CaseID      int     `json:"id_caso"`
	Description string  `json:"descricao"`
	SentAt      *string `json:"data_envio"`
	FileName    string  `json:"nome_arquivo"`
}

type documentScanRow struct {
	ID          int        `gorm:"column:id_documento"`
	CaseID      int        `gorm:"column:id_caso"`
	Description string     `gorm:"column:descricao"`
	SentAt      *time.Time `gorm:"column:data_envio"`
	FileName    string     `gorm:"column:nome_arquivo"`
}

func mapDocumentRow(row documentScanRow) DocumentRow {
	return DocumentRow{
		ID:          row.ID,
		CaseID:      row.CaseID,
		Description: row.Description,
		SentAt:      FormatDatePtr(row.SentAt),
		FileName:    row.FileName,
	}
}

// GetDocument fetches the metadata of one document
func GetDocument(ctx context.Context, dbConn *gorm.DB, id int) (*DocumentRow, error) {
	var row documentScanRow
	res := dbConn.WithContext(ctx).
		Model(&models.Document{}).
		Select("id_documento, id_caso, descricao, data_envio, nome_arquivo").
		Where("id_documento = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Message: "Documento não encontrado."}
	}
	mapped := mapDocumentRow(row)
	return &mapped, nil
}

// ListDocuments returns all document metadata, most recently sent first
func ListDocuments(ctx context.Context, dbConn *gorm.DB) ([]DocumentRow, error) {
	var rows []documentScanRow
	err := dbConn.WithContext(ctx).
		Model(&models.Document{}).
		Select("id_documento, id_caso, descricao, data_envio, nome_arquivo").
		Order("data_envio DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	list := make([]DocumentRow, 0, len(rows))
	for _, row := range rows {
		list = append(list, mapDocumentRow(row))
	}
	return list, nil
}

// DocumentOption is the filename list shape used by the AI page
type DocumentOption struct {
	ID       int    `json:"id_documento"`
	FileName string `json:"nome_arquivo"`
}

// ListDocumentOptions returns id/filename pairs ordered by filename
func ListDocumentOptions(ctx context.Context, dbConn *gorm.DB) ([]DocumentOption, error) {
	var options []DocumentOption
	err := dbConn.WithContext(ctx).
		Model(&models.Document{}).
		Select("id_documento, nome_arquivo").
		Order("nome_arquivo ASC").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []DocumentOption{}
	}
	return options, nil
}

// DocumentDownload carries the stored bytes plus the headers metadata for the
// attachment response.
type DocumentDownload struct {
	FileName    string
	ContentType string
	Content     []byte
}

// DownloadDocument returns the stored binary payload with a best-effort MIME
// type inferred from the filename extension. Rows without content resolve to
// not-found.
func DownloadDocument(ctx context.Context, dbConn *gorm.DB, id int) (*DocumentDownload, error) {
	var row struct {
		FileName string `gorm:"column:nome_arquivo"`
		Content  []byte `gorm:"column:arquivo"`
	}
	res := dbConn.WithContext(ctx).
		Model(&models.Document{}).
		Select("nome_arquivo, arquivo").
		Where("id_documento = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Message: "Documento não encontrado."}
	}
	if row.Content == nil {
		return nil, &NotFoundError{Message: "Conteúdo do arquivo não encontrado para este documento."}
	}

	return &DocumentDownload{
		FileName:    row.FileName,
		ContentType: guessContentType(row.FileName),
		Content:     row.Content,
	}, nil
}

// GetDocumentContentByName fetches the raw bytes of a document by its stored
// filename; used by the document Q&A proxy.
func GetDocumentContentByName(ctx context.Context, dbConn *gorm.DB, fileName string) ([]byte, error) {
	var row struct {
		Content []byte `gorm:"column:arquivo"`
	}
	res := dbConn.WithContext(ctx).
		Model(&models.Document{}).
		Select("arquivo").
		Where("nome_arquivo = ?", fileName).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Message: "Documento com nome '" + fileName + "' não encontrado."}
	}
	if row.Content == nil {
		return nil, &NotFoundError{Message: "Conteúdo do arquivo não encontrado para o nome fornecido."}
	}
	return row.Content, nil
}

// guessContentType maps a filename extension to a MIME type, falling back to
// a generic binary type when the extension is unknown.
func guessContentType(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
