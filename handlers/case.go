package handlers

import (
	"net/http"
	"strconv"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetCasesHandler serves the joined case read. An "id" parameter selects a
// single case; otherwise the full list comes back ordered by opening date.
func GetCasesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	params, err := services.DecodeQuery(c.QueryString())
	if err == nil {
		if idStr, ok := params["id"]; ok {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return writeError(c, &services.ValidationError{Message: "ID do caso deve ser um número inteiro."})
			}
			row, err := services.GetCase(ctx, db.DB, id)
			if err != nil {
				return writeError(c, err)
			}
			return c.JSON(http.StatusOK, row)
		}
	}

	list, err := services.ListCases(ctx, db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// CreateCaseHandler creates a case from the JSON payload
func CreateCaseHandler(c echo.Context) error {
	var payload services.CasePayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, &services.ValidationError{Message: "Invalid request body or JSON parsing error: " + err.Error()})
	}

	id, err := services.CreateCase(c.Request().Context(), db.DB, &payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Caso jurídico criado com sucesso",
		"id_caso": id,
	})
}

// UpdateCaseHandler replaces a case from the JSON payload (id in id_caso)
func UpdateCaseHandler(c echo.Context) error {
	var payload services.CasePayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, &services.ValidationError{Message: "Invalid request body or JSON parsing error: " + err.Error()})
	}

	if err := services.UpdateCase(c.Request().Context(), db.DB, &payload); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Caso jurídico atualizado com sucesso."})
}

// DeleteCaseHandler deletes a case selected by the "id" query parameter
func DeleteCaseHandler(c echo.Context) error {
	params, err := services.DecodeQuery(c.QueryString())
	if err != nil {
		return writeError(c, err)
	}
	id, err := requireIntParam(params, "id", "ID do caso é obrigatório.", "ID do caso deve ser um número inteiro.")
	if err != nil {
		return writeError(c, err)
	}

	if err := services.DeleteCase(c.Request().Context(), db.DB, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Caso jurídico excluído com sucesso."})
}
