package handlers

import (
	"net/http"
	"strconv"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetHearingsHandler lists hearings, optionally filtered by id_caso
func GetHearingsHandler(c echo.Context) error {
	caseID, err := optionalCaseFilter(c)
	if err != nil {
		return writeError(c, err)
	}

	list, err := services.ListHearings(c.Request().Context(), db.DB, caseID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// CreateHearingHandler schedules a hearing from the JSON payload
func CreateHearingHandler(c echo.Context) error {
	var payload services.HearingPayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, &services.ValidationError{Message: "Invalid request body or JSON parsing error: " + err.Error()})
	}

	id, err := services.CreateHearing(c.Request().Context(), db.DB, &payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Audiência agendada com sucesso",
		"id_audiencia": id,
	})
}

// DeleteHearingHandler deletes a hearing selected by the "id" query parameter
func DeleteHearingHandler(c echo.Context) error {
	params, err := services.DecodeQuery(c.QueryString())
	if err != nil {
		return writeError(c, err)
	}
	id, err := requireIntParam(params, "id", "ID da audiência é obrigatório.", "ID da audiência deve ser um número inteiro.")
	if err != nil {
		return writeError(c, err)
	}

	if err := services.DeleteHearing(c.Request().Context(), db.DB, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Audiência excluída com sucesso."})
}

// optionalCaseFilter reads an optional id_caso query parameter
func optionalCaseFilter(c echo.Context) (*int, error) {
	raw := c.QueryParam("id_caso")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &services.ValidationError{Message: "ID do caso deve ser um número inteiro."}
	}
	return &id, nil
}
