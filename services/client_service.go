package services

import (
	"context"
	"time"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

// ClientInput carries the decoded create/update fields for a client. CPF and
// CNPJ stay optional here; which one is required depends on the type branch
// taken inside the transaction.
type ClientInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Type         string
	OriginalType string
	CPF          *string
	CNPJ         *string
}

// ParseClientParams translates a decoded query-parameter map into a validated
// ClientInput. Nome, email and tipoCliente are required; telefone and
// endereco default to the sentinel like the legacy frontend expects.
func ParseClientParams(params map[string]string) (*ClientInput, error) {
	name, ok := params["nome"]
	if !ok {
		return nil, &ValidationError{Message: "Nome is required."}
	}
	email, ok := params["email"]
	if !ok {
		return nil, &ValidationError{Message: "Email is required."}
	}
	clientType, ok := params["tipoCliente"]
	if !ok {
		return nil, &ValidationError{Message: "tipoCliente is required (fisica or juridica)."}
	}
	if !models.IsValidClientType(clientType) {
		return nil, &ValidationError{Message: "Invalid tipoCliente provided."}
	}

	in := &ClientInput{
		Name:         SanitizeText(name),
		Email:        SanitizeText(email),
		Phone:        NotIdentified,
		Address:      NotIdentified,
		Type:         clientType,
		OriginalType: params["originalTipoCliente"],
	}
	if phone, ok := params["telefone"]; ok {
		in.Phone = SanitizeText(phone)
	}
	if address, ok := params["endereco"]; ok {
		in.Address = SanitizeText(address)
	}
	if cpf, ok := params["cpf"]; ok {
		in.CPF = &cpf
	}
	if cnpj, ok := params["cnpj"]; ok {
		in.CNPJ = &cnpj
	}
	return in, nil
}

// kindFromInput resolves the tagged union for the requested client type,
// failing when the matching discriminant document is missing.
func kindFromInput(in *ClientInput) (models.ClientKind, error) {
	switch in.Type {
	case models.ClientTypePhysical:
		if in.CPF == nil {
			return models.ClientKind{}, &ValidationError{Message: "CPF is required for Pessoa Física."}
		}
		return models.PhysicalKind(*in.CPF), nil
	case models.ClientTypeLegal:
		if in.CNPJ == nil {
			return models.ClientKind{}, &ValidationError{Message: "CNPJ is required for Pessoa Jurídica."}
		}
		return models.LegalKind(*in.CNPJ), nil
	}
	return models.ClientKind{}, &ValidationError{Message: "Invalid tipoCliente provided."}
}

// insertSubtype writes the subtype row matching the union value
func insertSubtype(tx *gorm.DB, clientID int, kind models.ClientKind) error {
	if kind.Type == models.ClientTypePhysical {
		return wrapWriteError(tx.Create(&models.PhysicalPerson{ClientID: clientID, CPF: kind.Document}).Error)
	}
	return wrapWriteError(tx.Create(&models.LegalEntity{ClientID: clientID, CNPJ: kind.Document}).Error)
}

// CreateClient inserts the base client row and its subtype row in one
// transaction. A missing discriminant rolls the whole insert back.
func CreateClient(ctx context.Context, dbConn *gorm.DB, in *ClientInput) (int, error) {
	var id int
	err := dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		client := models.Client{
			Name:         in.Name,
			Email:        &in.Email,
			Phone:        &in.Phone,
			Address:      &in.Address,
			RegisteredAt: &now,
		}
		if err := tx.Create(&client).Error; err != nil {
			return wrapWriteError(err)
		}
		id = client.ID

		kind, err := kindFromInput(in)
		if err != nil {
			return err
		}
		return insertSubtype(tx, client.ID, kind)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateClient replaces the base client fields and reconciles the subtype
// tables in one transaction. The type-change logic is a three-way branch:
// same type updates the subtype row in place, a type switch deletes the old
// subtype row and inserts the new one, and an initially untyped client gets a
// fresh subtype row. Every branch needs the matching discriminant or the
// transaction rolls back.
func UpdateClient(ctx context.Context, dbConn *gorm.DB, id int, in *ClientInput) error {
	return dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Client{}).Where("id_cliente = ?", id).Updates(map[string]interface{}{
			"nome":     in.Name,
			"email":    in.Email,
			"telefone": in.Phone,
			"endereco": in.Address,
		})
		if res.Error != nil {
			return wrapWriteError(res.Error)
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Message: "Client not found."}
		}

		kind, err := kindFromInput(in)
		if err != nil {
			return err
		}

		switch {
		case in.OriginalType == models.ClientTypePhysical && in.Type == models.ClientTypeLegal:
			if err := tx.Delete(&models.PhysicalPerson{}, "id_cliente = ?", id).Error; err != nil {
				return wrapWriteError(err)
			}
			return insertSubtype(tx, id, kind)

		case in.OriginalType == models.ClientTypeLegal && in.Type == models.ClientTypePhysical:
			if err := tx.Delete(&models.LegalEntity{}, "id_cliente = ?", id).Error; err != nil {
				return wrapWriteError(err)
			}
			return insertSubtype(tx, id, kind)

		case in.OriginalType == in.Type:
			if kind.Type == models.ClientTypePhysical {
				return wrapWriteError(tx.Model(&models.PhysicalPerson{}).
					Where("id_cliente = ?", id).
					Update("cpf", kind.Document).Error)
			}
			return wrapWriteError(tx.Model(&models.LegalEntity{}).
				Where("id_cliente = ?", id).
				Update("cnpj", kind.Document).Error)

		case in.OriginalType == "":
			// Client existed without a subtype row; attach one now
			return insertSubtype(tx, id, kind)
		}

		return &ValidationError{Message: "Invalid originalTipoCliente provided."}
	})
}

// DeleteClient removes the subtype row (when one exists) and the base client
// row atomically. Deleting an unknown id reports not-found, never a silent
// success.
func DeleteClient(ctx context.Context, dbConn *gorm.DB, id int) error {
	return dbConn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row struct {
			CPF  *string `gorm:"column:cpf"`
			CNPJ *string `gorm:"column:cnpj"`
		}
		res := tx.Table("Cliente c").
			Select("pf.cpf, pj.cnpj").
			Joins("LEFT JOIN Pessoa_Fisica pf ON c.id_cliente = pf.id_cliente").
			Joins("LEFT JOIN Pessoa_Juridica pj ON c.id_cliente = pj.id_cliente").
			Where("c.id_cliente = ?", id).
			Scan(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Message: "Client not found."}
		}

		switch {
		case row.CPF != nil:
			if err := tx.Delete(&models.PhysicalPerson{}, "id_cliente = ?", id).Error; err != nil {
				return wrapWriteError(err)
			}
		case row.CNPJ != nil:
			if err := tx.Delete(&models.LegalEntity{}, "id_cliente = ?", id).Error; err != nil {
				return wrapWriteError(err)
			}
		}

		del := tx.Delete(&models.Client{}, "id_cliente = ?", id)
		if del.Error != nil {
			return wrapWriteError(del.Error)
		}
		if del.RowsAffected == 0 {
			return &NotFoundError{Message: "Client not found or already deleted from main table."}
		}
		return nil
	})
}

// ClientDetail is the single-record response shape. Missing optional fields
// render as the sentinel string; cpf/cnpj pass through so the frontend can
// tell the client type apart.
type ClientDetail struct {
	ID           int     `json:"id_cliente"`
	Name         string  `json:"nome"`
	Email        string  `json:"email"`
	Phone        string  `json:"telefone"`
	Address      string  `json:"endereco"`
	RegisteredAt string  `json:"data_cadastro"`
	CPF          *string `json:"cpf"`
	CNPJ         *string `json:"cnpj"`
}

// clientRow is the raw scan target for the subtype join
type clientRow struct {
	ID           int        `gorm:"column:id_cliente"`
	Name         string     `gorm:"column:nome"`
	Email        *string    `gorm:"column:email"`
	Phone        *string    `gorm:"column:telefone"`
	Address      *string    `gorm:"column:endereco"`
	RegisteredAt *time.Time `gorm:"column:data_cadastro"`
	CPF          *string    `gorm:"column:cpf"`
	CNPJ         *string    `gorm:"column:cnpj"`
}

func clientJoinQuery(dbConn *gorm.DB) *gorm.DB {
	return dbConn.Table("Cliente c").
		Select("c.id_cliente, c.nome, c.email, c.telefone, c.endereco, c.data_cadastro, pf.cpf, pj.cnpj").
		Joins("LEFT JOIN Pessoa_Fisica pf ON c.id_cliente = pf.id_cliente").
		Joins("LEFT JOIN Pessoa_Juridica pj ON c.id_cliente = pj.id_cliente")
}

// GetClient fetches one client with its subtype document, applying the
// sentinel substitution for absent optional fields.
func GetClient(ctx context.Context, dbConn *gorm.DB, id int) (*ClientDetail, error) {
	var row clientRow
	res := clientJoinQuery(dbConn.WithContext(ctx)).
		Where("c.id_cliente = ?", id).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Message: "Client not found."}
	}

	registered := NotIdentified
	if row.RegisteredAt != nil {
		registered = FormatDate(*row.RegisteredAt)
	}
	return &ClientDetail{
		ID:           row.ID,
		Name:         row.Name,
		Email:        coalesce(row.Email),
		Phone:        coalesce(row.Phone),
		Address:      coalesce(row.Address),
		RegisteredAt: registered,
		CPF:          row.CPF,
		CNPJ:         row.CNPJ,
	}, nil
}

// ClientOption is the dropdown list shape
type ClientOption struct {
	ID   int    `json:"id_cliente"`
	Name string `json:"nome"`
}

// ListClients returns the id/name list used by dropdowns, ordered by name
func ListClients(ctx context.Context, dbConn *gorm.DB) ([]ClientOption, error) {
	var options []ClientOption
	err := dbConn.WithContext(ctx).
		Model(&models.Client{}).
		Select("id_cliente, nome").
		Order("nome ASC").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []ClientOption{}
	}
	return options, nil
}

// ClientPageRow is the full list shape used by the clients page. Nulls pass
// through unchanged here; only the single-record path substitutes the
// sentinel.
type ClientPageRow struct {
	ID           int     `json:"id_cliente"`
	Name         string  `json:"nome"`
	Email        *string `json:"email"`
	Phone        *string `json:"telefone"`
	Address      *string `json:"endereco"`
	RegisteredAt *string `json:"data_cadastro"`
	CPF          *string `json:"cpf"`
	CNPJ         *string `json:"cnpj"`
}

// ListClientRows returns the full client list with subtype documents for the
// clients page, ordered by name.
func ListClientRows(ctx context.Context, dbConn *gorm.DB) ([]ClientPageRow, error) {
	var rows []clientRow
	err := clientJoinQuery(dbConn.WithContext(ctx)).
		Order("c.nome").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	list := make([]ClientPageRow, 0, len(rows))
	for _, row := range rows {
		list = append(list, ClientPageRow{
			ID:           row.ID,
			Name:         row.Name,
			Email:        row.Email,
			Phone:        row.Phone,
			Address:      row.Address,
			RegisteredAt: FormatDatePtr(row.RegisteredAt),
			CPF:          row.CPF,
			CNPJ:         row.CNPJ,
		})
	}
	return list, nil
}
