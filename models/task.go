package models

import "time"

// Task represents a task assigned to a lawyer within a case
type Task struct {
	ID          int       `gorm:"column:id_tarefa;primaryKey;autoIncrement" json:"id_tarefa"`
	CaseID      int       `gorm:"column:id_caso;not null" json:"id_caso"`
	LawyerID    int       `gorm:"column:id_advogado;not null" json:"id_advogado"`
	Description *string   `gorm:"column:descricao;type:text" json:"descricao"`
	DueAt       time.Time `gorm:"column:data_tarefa;type:date;not null" json:"data_tarefa"`
}

func (Task) TableName() string {
	return "Tarefa"
}
