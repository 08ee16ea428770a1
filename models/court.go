package models

// Court is the lookup table for judicial courts (varas judiciais)
type Court struct {
	ID    int     `gorm:"column:id_vara_judicial;primaryKey;autoIncrement" json:"id_vara_judicial"`
	Name  string  `gorm:"column:nome_vara;size:255;not null" json:"nome_vara"`
	City  *string `gorm:"column:cidade;size:100" json:"cidade"`
	State *string `gorm:"column:estado;size:50" json:"estado"`
}

func (Court) TableName() string {
	return "Vara_Judicial"
}
