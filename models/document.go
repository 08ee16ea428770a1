package models

import "time"

// Document represents a document attached to a case. Content is nullable:
// metadata can exist before the file itself is uploaded. The binary column is
// never marshaled into JSON; the download endpoint streams it instead.
type Document struct {
	ID          int        `gorm:"column:id_documento;primaryKey;autoIncrement" json:"id_documento"`
	CaseID      int        `gorm:"column:id_caso;not null" json:"id_caso"`
	Description string     `gorm:"column:descricao;type:text" json:"descricao"`
	SentAt      *time.Time `gorm:"column:data_envio;type:date" json:"data_envio"`
	FileName    string     `gorm:"column:nome_arquivo;size:255" json:"nome_arquivo"`
	Content     []byte     `gorm:"column:arquivo" json:"-"`
}

func (Document) TableName() string {
	return "Documento"
}
