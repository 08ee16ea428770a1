package services

import (
	"context"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

// HearingPayload is the JSON body for scheduling a hearing
type HearingPayload struct {
	CaseID      int     `json:"id_caso"`
	ScheduledAt string  `json:"data_audiencia"`
	Time        *string `json:"horario"`
	Description *string `json:"descricao"`
	Address     *string `json:"endereco"`
	Type        *string `json:"tipo_audiencia"`
}

// HearingRow is the hearing response shape
type HearingRow struct {
	ID          int     `json:"id_audiencia"`
	CaseID      int     `json:"id_caso"`
	ScheduledAt string  `json:"data_audiencia"`
	Time        *string `json:"horario"`
	Description *string `json:"descricao"`
	Address     *string `json:"endereco"`
	Type        *string `json:"tipo_audiencia"`
}

// CreateHearing probes the case reference and schedules the hearing
func CreateHearing(ctx context.Context, dbConn *gorm.DB, p *HearingPayload) (int, error) {
	scheduledAt, err := ParseDate(p.ScheduledAt)
	if err != nil {
		return 0, &ValidationError{Message: "Data da audiência inválida. Use o formato AAAA-MM-DD."}
	}

	var id int
	err = dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := probeReference(tx, &models.Case{}, "id_caso", "id_caso",
			"Caso com o ID fornecido não existe.", p.CaseID); err != nil {
			return err
		}
		record := models.Hearing{
			CaseID:      p.CaseID,
			ScheduledAt: scheduledAt,
			Time:        p.Time,
			Description: SanitizeTextPtr(p.Description),
			Address:     SanitizeTextPtr(p.Address),
			Type:        p.Type,
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

// DeleteHearing removes a hearing by id
func DeleteHearing(ctx context.Context, dbConn *gorm.DB, id int) error {
	res := dbConn.WithContext(ctx).Delete(&models.Hearing{}, "id_audiencia = ?", id)
	if res.Error != nil {
		return wrapWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Message: "Audiência não encontrada."}
	}
	return nil
}

// ListHearings returns hearings ordered by schedule, optionally filtered to
// one case.
func ListHearings(ctx context.Context, dbConn *gorm.DB, caseID *int) ([]HearingRow, error) {
	query := dbConn.WithContext(ctx).Model(&models.Hearing{}).Order("data_audiencia ASC")
	if caseID != nil {
		query = query.Where("id_caso = ?", *caseID)
	}

	var records []models.Hearing
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	list := make([]HearingRow, 0, len(records))
	for _, h := range records {
		list = append(list, HearingRow{
			ID:          h.ID,
			CaseID:      h.CaseID,
			ScheduledAt: FormatDate(h.ScheduledAt),
			Time:        h.Time,
			Description: h.Description,
			Address:     h.Address,
			Type:        h.Type,
		})
	}
	return list, nil
}
