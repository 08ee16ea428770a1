package services

import (
	"context"
	"time"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

// CasePayload is the JSON body for case create/update. Updates carry the
// target id in id_caso; full-record replace semantics, not a partial patch.
type CasePayload struct {
	ID            int     `json:"id_caso"`
	ClientID      int     `json:"id_cliente"`
	LawyerID      int     `json:"id_advogado"`
	StatusID      int     `json:"id_status"`
	CourtID       *int    `json:"id_vara_judicial"`
	CategoryID    *int    `json:"id_categoria_caso"`
	Description   *string `json:"descricao"`
	ProcessNumber *string `json:"numero_processo"`
	OpenedAt      string  `json:"data_abertura"`
	ClosedAt      *string `json:"data_fechamento"`
}

// validateCaseReferences probes every foreign key before the write. Client,
// lawyer and status are required; court and category only when supplied.
func validateCaseReferences(tx *gorm.DB, p *CasePayload) error {
	if err := probeReference(tx, &models.Client{}, "id_cliente", "id_cliente",
		"Cliente com o ID fornecido não existe.", p.ClientID); err != nil {
		return err
	}
	if err := probeReference(tx, &models.Lawyer{}, "id_advogado", "id_advogado",
		"Advogado com o ID fornecido não existe.", p.LawyerID); err != nil {
		return err
	}
	if err := probeReference(tx, &models.Status{}, "id_status", "id_status",
		"Status com o ID fornecido não existe.", p.StatusID); err != nil {
		return err
	}
	if p.CourtID != nil {
		if err := probeReference(tx, &models.Court{}, "id_vara_judicial", "id_vara_judicial",
			"Vara Judicial com o ID fornecido não existe.", *p.CourtID); err != nil {
			return err
		}
	}
	if p.CategoryID != nil {
		if err := probeReference(tx, &models.CaseCategory{}, "id_categoria_caso", "id_categoria_caso",
			"Categoria de Caso com o ID fornecido não existe.", *p.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

// parseCaseDates enforces the strict opening date and applies the lenient
// optional-closing-date rule (a malformed optional date is dropped, not an
// error).
func parseCaseDates(p *CasePayload) (time.Time, *time.Time, error) {
	openedAt, err := ParseDate(p.OpenedAt)
	if err != nil {
		return time.Time{}, nil, &ValidationError{Message: "Data de abertura inválida. Use o formato AAAA-MM-DD."}
	}
	return openedAt, ParseOptionalDate(p.ClosedAt), nil
}

// CreateCase validates references and inserts the case in one transaction
func CreateCase(ctx context.Context, dbConn *gorm.DB, p *CasePayload) (int, error) {
	openedAt, closedAt, err := parseCaseDates(p)
	if err != nil {
		return 0, err
	}

	var id int
	err = dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateCaseReferences(tx, p); err != nil {
			return err
		}
		record := models.Case{
			ClientID:      p.ClientID,
			LawyerID:      p.LawyerID,
			StatusID:      p.StatusID,
			CourtID:       p.CourtID,
			CategoryID:    p.CategoryID,
			Description:   SanitizeTextPtr(p.Description),
			ProcessNumber: p.ProcessNumber,
			OpenedAt:      openedAt,
			ClosedAt:      closedAt,
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

// UpdateCase replaces every column of an existing case. Zero rows matched
// resolves to not-found, never a silent success.
func UpdateCase(ctx context.Context, dbConn *gorm.DB, p *CasePayload) error {
	openedAt, closedAt, err := parseCaseDates(p)
	if err != nil {
		return err
	}

	return dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateCaseReferences(tx, p); err != nil {
			return err
		}
		res := tx.Model(&models.Case{}).Where("id_caso = ?", p.ID).Updates(map[string]interface{}{
			"id_cliente":        p.ClientID,
			"id_advogado":       p.LawyerID,
			"id_status":         p.StatusID,
			"id_vara_judicial":  p.CourtID,
			"id_categoria_caso": p.CategoryID,
			"descricao":         SanitizeTextPtr(p.Description),
			"numero_processo":   p.ProcessNumber,
			"data_abertura":     openedAt,
			"data_fechamento":   closedAt,
		})
		if res.Error != nil {
			return wrapWriteError(res.Error)
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Message: "Caso jurídico não encontrado."}
		}
		return nil
	})
}

// DeleteCase removes a case by id
func DeleteCase(ctx context.Context, dbConn *gorm.DB, id int) error {
	res := dbConn.WithContext(ctx).Delete(&models.Case{}, "id_caso = ?", id)
	if res.Error != nil {
		return wrapWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Message: "Caso jurídico não encontrado."}
	}
	return nil
}

// CaseRow is the joined response shape shared by the list, the single read
// and the cases page.
type CaseRow struct {
	ID            int     `json:"id_caso"`
	Description   *string `json:"descricao"`
	ProcessNumber *string `json:"numero_processo"`
	OpenedAt      string  `json:"data_abertura"`
	ClosedAt      *string `json:"data_fechamento"`

	ClientID    int     `json:"id_cliente"`
	ClientName  string  `json:"cliente_nome"`
	ClientEmail *string `json:"cliente_email"`

	LawyerID   int    `json:"id_advogado"`
	LawyerName string `json:"advogado_nome"`
	LawyerOAB  string `json:"advogado_oab"`

	StatusID          int    `json:"id_status"`
	StatusDescription string `json:"status_descricao"`

	CourtID   *int    `json:"id_vara_judicial"`
	CourtName *string `json:"nome_vara"`

	CategoryID          *int    `json:"id_categoria_caso"`
	CategoryDescription *string `json:"categoria_descricao"`
}

type caseScanRow struct {
	ID            int        `gorm:"column:id_caso"`
	Description   *string    `gorm:"column:descricao"`
	ProcessNumber *string    `gorm:"column:numero_processo"`
	OpenedAt      time.Time  `gorm:"column:data_abertura"`
	ClosedAt      *time.Time `gorm:"column:data_fechamento"`

	ClientID    int     `gorm:"column:id_cliente"`
	ClientName  string  `gorm:"column:cliente_nome"`
	ClientEmail *string `gorm:"column:cliente_email"`

	LawyerID   int    `gorm:"column:id_advogado"`
	LawyerName string `gorm:"column:advogado_nome"`
	LawyerOAB  string `gorm:"column:advogado_oab"`

	StatusID          int    `gorm:"column:id_status"`
	StatusDescription string `gorm:"column:status_descricao"`

	CourtID   *int    `gorm:"column:id_vara_judicial"`
	CourtName *string `gorm:"column:nome_vara"`

	CategoryID          *int    `gorm:"column:id_categoria_caso"`
	CategoryDescription *string `gorm:"column:categoria_descricao"`
}

func caseJoinQuery(dbConn *gorm.DB) *gorm.DB {
	return dbConn.Table("Caso c").
		Select(`c.id_caso, c.descricao, c.numero_processo, c.data_abertura, c.data_fechamento,
			cl.id_cliente, cl.nome AS cliente_nome, cl.email AS cliente_email,
			adv.id_advogado, adv.nome AS advogado_nome, adv.oab AS advogado_oab,
			s.id_status, s.descricao AS status_descricao,
			vj.id_vara_judicial, vj.nome_vara,
			cc.id_categoria_caso, cc.descricao AS categoria_descricao`).
		Joins("INNER JOIN Cliente cl ON c.id_cliente = cl.id_cliente").
		Joins("INNER JOIN Advogado adv ON c.id_advogado = adv.id_advogado").
		Joins("INNER JOIN Status s ON c.id_status = s.id_status").
		Joins("LEFT JOIN Vara_Judicial vj ON c.id_vara_judicial = vj.id_vara_judicial").
		Joins("LEFT JOIN Categoria_caso cc ON c.id_categoria_caso = cc.id_categoria_caso")
}

func mapCaseRow(row caseScanRow) CaseRow {
	return CaseRow{
		ID:                  row.ID,
		Description:         row.Description,
		ProcessNumber:       row.ProcessNumber,
		OpenedAt:            FormatDate(row.OpenedAt),
		ClosedAt:            FormatDatePtr(row.ClosedAt),
		ClientID:            row.ClientID,
		ClientName:          row.ClientName,
		ClientEmail:         row.ClientEmail,
		LawyerID:            row.LawyerID,
		LawyerName:          row.LawyerName,
		LawyerOAB:           row.LawyerOAB,
		StatusID:            row.StatusID,
		StatusDescription:   row.StatusDescription,
		CourtID:             row.CourtID,
		CourtName:           row.CourtName,
		CategoryID:          row.CategoryID,
		CategoryDescription: row.CategoryDescription,
	}
}

// GetCase fetches one case with all related lookups joined in
func GetCase(ctx context.Context, dbConn *gorm.DB, id int) (*CaseRow, error) {
	var row caseScanRow
	res := caseJoinQuery(dbConn.WithContext(ctx)).
		Where("c.id_caso = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Message: "Caso não encontrado."}
	}
	mapped := mapCaseRow(row)
	return &mapped, nil
}

// ListCases returns every case, most recently opened first
func ListCases(ctx context.Context, dbConn *gorm.DB) ([]CaseRow, error) {
	var rows []caseScanRow
	err := caseJoinQuery(dbConn.WithContext(ctx)).
		Order("c.data_abertura DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	list := make([]CaseRow, 0, len(rows))
	for _, row := range rows {
		list = append(list, mapCaseRow(row))
	}
	return list, nil
}
