package models

// Lawyer represents a lawyer registered with the office. OAB is the bar
// association number and must be unique.
type Lawyer struct {
	ID        int     `gorm:"column:id_advogado;primaryKey;autoIncrement" json:"id_advogado"`
	Name      string  `gorm:"column:nome;size:255;not null" json:"nome"`
	OAB       string  `gorm:"column:oab;size:20;uniqueIndex;not null" json:"oab"`
	Phone     *string `gorm:"column:telefone;size:20" json:"telefone"`
	Email     *string `gorm:"column:email;size:255" json:"email"`
	Specialty *string `gorm:"column:especialidade;size:255" json:"especialidade"`
}

func (Lawyer) TableName() string {
	return "Advogado"
}
