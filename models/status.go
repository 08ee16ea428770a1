package models

import "time"

// Status is the lookup table for case statuses
type Status struct {
	ID          int        `gorm:"column:id_status;primaryKey;autoIncrement" json:"id_status"`
	Description string     `gorm:"column:descricao;size:255;not null" json:"descricao"`
	ModifiedAt  *time.Time `gorm:"column:data_modificacao;type:date" json:"data_modificacao"`
}

func (Status) TableName() string {
	return "Status"
}
