package services

import (
	"context"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

// TaskPayload is the JSON body for creating a task
type TaskPayload struct {
	CaseID      int     `json:"id_caso"`
	LawyerID    int     `json:"id_advogado"`
	Description *string `json:"descricao"`
	DueAt       string  `json:"data_tarefa"`
}

// TaskRow is the task response shape
type TaskRow struct {
	ID          int     `json:"id_tarefa"`
	CaseID      int     `json:"id_caso"`
	LawyerID    int     `json:"id_advogado"`
	Description *string `json:"descricao"`
	DueAt       string  `json:"data_tarefa"`
}

// CreateTask probes the case and lawyer references and inserts the task
func CreateTask(ctx context.Context, dbConn *gorm.DB, p *TaskPayload) (int, error) {
	dueAt, err := ParseDate(p.DueAt)
	if err != nil {
		return 0, &ValidationError{Message: "Data da tarefa inválida. Use o formato AAAA-MM-DD."}
	}

	var id int
	err = dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := probeReference(tx, &models.Case{}, "id_caso", "id_caso",
			"Caso com o ID fornecido não existe.", p.CaseID); err != nil {
			return err
		}
		if err := probeReference(tx, &models.Lawyer{}, "id_advogado", "id_advogado",
			"Advogado com o ID fornecido não existe.", p.LawyerID); err != nil {
			return err
		}
		record := models.Task{
			CaseID:      p.CaseID,
			LawyerID:    p.LawyerID,
			Description: SanitizeTextPtr(p.Description),
			DueAt:       dueAt,
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

// DeleteTask removes a task by id
func DeleteTask(ctx context.Context, dbConn *gorm.DB, id int) error {
	res := dbConn.WithContext(ctx).Delete(&models.Task{}, "id_tarefa = ?", id)
	if res.Error != nil {
		return wrapWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Message: "Tarefa não encontrada."}
	}
	return nil
}

// ListTasks returns tasks ordered by due date, optionally filtered to one case
func ListTasks(ctx context.Context, dbConn *gorm.DB, caseID *int) ([]TaskRow, error) {
	query := dbConn.WithContext(ctx).Model(&models.Task{}).Order("data_tarefa ASC")
	if caseID != nil {
		query = query.Where("id_caso = ?", *caseID)
	}

	var records []models.Task
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	list := make([]TaskRow, 0, len(records))
	for _, t := range records {
		list = append(list, TaskRow{
			ID:          t.ID,
			CaseID:      t.CaseID,
			LawyerID:    t.LawyerID,
			Description: t.Description,
			DueAt:       FormatDate(t.DueAt),
		})
	}
	return list, nil
}
