package models

import "time"

// Client type discriminants, as sent by the frontend in tipoCliente
const (
	ClientTypePhysical = "fisica"
	ClientTypeLegal    = "juridica"
)

// Client represents the base client record. Type-specific fields live in
// PhysicalPerson / LegalEntity rows keyed by the same client id; a client has
// at most one of the two.
type Client struct {
	ID           int        `gorm:"column:id_cliente;primaryKey;autoIncrement" json:"id_cliente"`
	Name         string     `gorm:"column:nome;size:255;not null" json:"nome"`
	Email        *string    `gorm:"column:email;size:255" json:"email"`
	Phone        *string    `gorm:"column:telefone;size:20" json:"telefone"`
	Address      *string    `gorm:"column:endereco;type:text" json:"endereco"`
	RegisteredAt *time.Time `gorm:"column:data_cadastro;type:date" json:"data_cadastro"`
}

// TableName keeps the legacy table naming
func (Client) TableName() string {
	return "Cliente"
}

// PhysicalPerson holds the fields specific to individual clients
type PhysicalPerson struct {
	ClientID int    `gorm:"column:id_cliente;primaryKey" json:"id_cliente"`
	CPF      string `gorm:"column:cpf;size:14;uniqueIndex;not null" json:"cpf"`
}

func (PhysicalPerson) TableName() string {
	return "Pessoa_Fisica"
}

// LegalEntity holds the fields specific to company clients
type LegalEntity struct {
	ClientID int    `gorm:"column:id_cliente;primaryKey" json:"id_cliente"`
	CNPJ     string `gorm:"column:cnpj;size:18;uniqueIndex;not null" json:"cnpj"`
}

func (LegalEntity) TableName() string {
	return "Pessoa_Juridica"
}

// ClientKind is the tagged union carried alongside a Client record: either a
// physical person identified by CPF or a legal entity identified by CNPJ.
// The gateway translates between this union and the two subtype tables.
type ClientKind struct {
	Type     string
	Document string
}

// PhysicalKind builds the union value for an individual client
func PhysicalKind(cpf string) ClientKind {
	return ClientKind{Type: ClientTypePhysical, Document: cpf}
}

// LegalKind builds the union value for a company client
func LegalKind(cnpj string) ClientKind {
	return ClientKind{Type: ClientTypeLegal, Document: cnpj}
}

// IsValidClientType checks the tipoCliente discriminant
func IsValidClientType(t string) bool {
	return t == ClientTypePhysical || t == ClientTypeLegal
}
