package models

import "time"

// Case represents a legal case. Client, lawyer and status are required
// references; court and category are optional. The external process number is
// unique when present.
type Case struct {
	ID            int        `gorm:"column:id_caso;primaryKey;autoIncrement" json:"id_caso"`
	ClientID      int        `gorm:"column:id_cliente;not null" json:"id_cliente"`
	LawyerID      int        `gorm:"column:id_advogado;not null" json:"id_advogado"`
	StatusID      int        `gorm:"column:id_status;not null" json:"id_status"`
	CourtID       *int       `gorm:"column:id_vara_judicial" json:"id_vara_judicial"`
	CategoryID    *int       `gorm:"column:id_categoria_caso" json:"id_categoria_caso"`
	Description   *string    `gorm:"column:descricao;type:text" json:"descricao"`
	ProcessNumber *string    `gorm:"column:numero_processo;size:255;uniqueIndex" json:"numero_processo"`
	OpenedAt      time.Time  `gorm:"column:data_abertura;type:date;not null" json:"data_abertura"`
	ClosedAt      *time.Time `gorm:"column:data_fechamento;type:date" json:"data_fechamento"`
}

func (Case) TableName() string {
	return "Caso"
}
