package models

import "time"

// Hearing represents a scheduled court hearing for a case
type Hearing struct {
	ID          int       `gorm:"column:id_audiencia;primaryKey;autoIncrement" json:"id_audiencia"`
	CaseID      int       `gorm:"column:id_caso;not null" json:"id_caso"`
	ScheduledAt time.Time `gorm:"column:data_audiencia;not null" json:"data_audiencia"`
	Time        *string   `gorm:"column:horario;size:8" json:"horario"`
	Description *string   `gorm:"column:descricao;type:text" json:"descricao"`
	Address     *string   `gorm:"column:endereco;type:text" json:"endereco"`
	Type        *string   `gorm:"column:tipo_audiencia;size:100" json:"tipo_audiencia"`
}

func (Hearing) TableName() string {
	return "Audiencia"
}
