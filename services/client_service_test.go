package services

import (
	"context"
	"errors"
	"testing"

	"law_office_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestParseClientParamsRequiredFields(t *testing.T) {
	cases := []struct {
		params  map[string]string
		message string
	}{
		{map[string]string{"email": "a@b.c", "tipoCliente": "fisica"}, "Nome is required."},
		{map[string]string{"nome": "Ana", "tipoCliente": "fisica"}, "Email is required."},
		{map[string]string{"nome": "Ana", "email": "a@b.c"}, "tipoCliente is required (fisica or juridica)."},
		{map[string]string{"nome": "Ana", "email": "a@b.c", "tipoCliente": "outro"}, "Invalid tipoCliente provided."},
	}
	for _, tc := range cases {
		_, err := ParseClientParams(tc.params)
		var validationErr *ValidationError
		if assert.True(t, errors.As(err, &validationErr)) {
			assert.Equal(t, tc.message, validationErr.Message)
		}
	}
}

func TestParseClientParamsDefaultsAndSanitization(t *testing.T) {
	in, err := ParseClientParams(map[string]string{
		"nome":        "<script>alert(1)</script>Ana",
		"email":       "ana@example.com",
		"tipoCliente": "fisica",
		"cpf":         "123.456.789-00",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ana", in.Name)
	assert.Equal(t, NotIdentified, in.Phone)
	assert.Equal(t, NotIdentified, in.Address)
	if assert.NotNil(t, in.CPF) {
		assert.Equal(t, "123.456.789-00", *in.CPF)
	}
}

func TestCreateClientPhysical(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	id, err := CreateClient(ctx, testDB, &ClientInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Phone: "48999990000",
		Type:  models.ClientTypePhysical,
		CPF:   strPtr("123.456.789-00"),
	})
	assert.NoError(t, err)
	assert.NotZero(t, id)

	detail, err := GetClient(ctx, testDB, id)
	assert.NoError(t, err)
	assert.Equal(t, "Ana Souza", detail.Name)
	if assert.NotNil(t, detail.CPF) {
		assert.Equal(t, "123.456.789-00", *detail.CPF)
	}
	assert.Nil(t, detail.CNPJ)
}

func TestCreateClientMissingCPFRollsBack(t *testing.T) {
	testDB := setupTestDB(t)

	_, err := CreateClient(context.Background(), testDB, &ClientInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Type:  models.ClientTypePhysical,
	})
	var validationErr *ValidationError
	if assert.True(t, errors.As(err, &validationErr)) {
		assert.Equal(t, "CPF is required for Pessoa Física.", validationErr.Message)
	}

	// The base insert must not survive the rollback
	var count int64
	assert.NoError(t, testDB.Model(&models.Client{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateClientTypeChange(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	id, err := CreateClient(ctx, testDB, &ClientInput{
		Name:  "Empresa X",
		Email: "contato@x.com",
		Type:  models.ClientTypePhysical,
		CPF:   strPtr("123.456.789-00"),
	})
	assert.NoError(t, err)

	err = UpdateClient(ctx, testDB, id, &ClientInput{
		Name:         "Empresa X Ltda",
		Email:        "contato@x.com",
		Phone:        "4833330000",
		Address:      "Rua B",
		Type:         models.ClientTypeLegal,
		OriginalType: models.ClientTypePhysical,
		CNPJ:         strPtr("12.345.678/0001-00"),
	})
	assert.NoError(t, err)

	detail, err := GetClient(ctx, testDB, id)
	assert.NoError(t, err)
	assert.Equal(t, "Empresa X Ltda", detail.Name)
	assert.Nil(t, detail.CPF)
	if assert.NotNil(t, detail.CNPJ) {
		assert.Equal(t, "12.345.678/0001-00", *detail.CNPJ)
	}
}

func TestUpdateClientTypeChangeWithoutCNPJRollsBack(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	id, err := CreateClient(ctx, testDB, &ClientInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Type:  models.ClientTypePhysical,
		CPF:   strPtr("123.456.789-00"),
	})
	assert.NoError(t, err)

	err = UpdateClient(ctx, testDB, id, &ClientInput{
		Name:         "Novo Nome",
		Email:        "novo@example.com",
		Type:         models.ClientTypeLegal,
		OriginalType: models.ClientTypePhysical,
	})
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))

	// Both the base update and the subtype switch must roll back
	detail, err := GetClient(ctx, testDB, id)
	assert.NoError(t, err)
	assert.Equal(t, "Ana Souza", detail.Name)
	if assert.NotNil(t, detail.CPF) {
		assert.Equal(t, "123.456.789-00", *detail.CPF)
	}
	assert.Nil(t, detail.CNPJ)
}

func TestUpdateClientNotFound(t *testing.T) {
	testDB := setupTestDB(t)

	err := UpdateClient(context.Background(), testDB, 999, &ClientInput{
		Name:  "Ninguém",
		Email: "x@example.com",
		Type:  models.ClientTypePhysical,
		CPF:   strPtr("123.456.789-00"),
	})
	var notFoundErr *NotFoundError
	if assert.True(t, errors.As(err, &notFoundErr)) {
		assert.Equal(t, "Client not found.", notFoundErr.Message)
	}
}

func TestDeleteClientRemovesSubtypeRow(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	id, err := CreateClient(ctx, testDB, &ClientInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Type:  models.ClientTypePhysical,
		CPF:   strPtr("123.456.789-00"),
	})
	assert.NoError(t, err)

	assert.NoError(t, DeleteClient(ctx, testDB, id))

	var clients, physical int64
	assert.NoError(t, testDB.Model(&models.Client{}).Count(&clients).Error)
	assert.NoError(t, testDB.Model(&models.PhysicalPerson{}).Count(&physical).Error)
	assert.Zero(t, clients)
	assert.Zero(t, physical)
}

func TestDeleteClientNotFound(t *testing.T) {
	testDB := setupTestDB(t)

	err := DeleteClient(context.Background(), testDB, 999)
	var notFoundErr *NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestGetClientSentinelSubstitution(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	// Row inserted directly with NULL optional fields
	assert.NoError(t, testDB.Create(&models.Client{ID: 5, Name: "Sem Dados"}).Error)

	detail, err := GetClient(ctx, testDB, 5)
	assert.NoError(t, err)
	assert.Equal(t, NotIdentified, detail.Email)
	assert.Equal(t, NotIdentified, detail.Phone)
	assert.Equal(t, NotIdentified, detail.Address)
	assert.Equal(t, NotIdentified, detail.RegisteredAt)

	// The list path passes nulls through instead
	rows, err := ListClientRows(ctx, testDB)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		assert.Nil(t, rows[0].Email)
		assert.Nil(t, rows[0].RegisteredAt)
	}
}

func TestListClientsOrderedByName(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	seedClient(t, testDB, 1, "Zeca")
	seedClient(t, testDB, 2, "Ana")

	list, err := ListClients(ctx, testDB)
	assert.NoError(t, err)
	if assert.Len(t, list, 2) {
		assert.Equal(t, "Ana", list[0].Name)
		assert.Equal(t, "Zeca", list[1].Name)
	}
}
