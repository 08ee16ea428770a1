package models

// CaseCategory is the lookup table for case categories
type CaseCategory struct {
	ID          int    `gorm:"column:id_categoria_caso;primaryKey;autoIncrement" json:"id_categoria_caso"`
	Description string `gorm:"column:descricao;size:255;not null" json:"descricao"`
	Active      bool   `gorm:"column:ativo;default:true" json:"ativo"`
}

func (CaseCategory) TableName() string {
	return "Categoria_caso"
}
