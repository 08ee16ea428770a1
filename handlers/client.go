package handlers

import (
	"net/http"
	"strconv"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetClientsHandler serves the query-string driven client reads. An "id"
// parameter selects a single client; a missing id, or a query string that
// does not decode, falls back to the dropdown list.
func GetClientsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	params, err := services.DecodeQuery(c.QueryString())
	if err == nil {
		if idStr, ok := params["id"]; ok {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return writeError(c, &services.ValidationError{Message: "ID parameter must be an integer."})
			}
			detail, err := services.GetClient(ctx, db.DB, id)
			if err != nil {
				return writeError(c, err)
			}
			return c.JSON(http.StatusOK, detail)
		}
	}

	list, err := services.ListClients(ctx, db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// CreateClientHandler creates a client from query-string parameters
func CreateClientHandler(c echo.Context) error {
	params, err := services.DecodeQuery(c.QueryString())
	if err != nil {
		return writeError(c, err)
	}
	in, err := services.ParseClientParams(params)
	if err != nil {
		return writeError(c, err)
	}

	id, err := services.CreateClient(c.Request().Context(), db.DB, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Client created successfully",
		"id_cliente": id,
	})
}

// UpdateClientHandler updates a client from query-string parameters
func UpdateClientHandler(c echo.Context) error {
	params, err := services.DecodeQuery(c.QueryString())
	if err != nil {
		return writeError(c, err)
	}
	id, err := requireIntParam(params, "id", "ID parameter is required.", "ID parameter must be an integer.")
	if err != nil {
		return writeError(c, err)
	}
	in, err := services.ParseClientParams(params)
	if err != nil {
		return writeError(c, err)
	}

	if err := services.UpdateClient(c.Request().Context(), db.DB, id, in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Client updated successfully"})
}

// DeleteClientHandler deletes a client selected by the "id" query parameter
func DeleteClientHandler(c echo.Context) error {
	params, err := services.DecodeQuery(c.QueryString())
	if err != nil {
		return writeError(c, err)
	}
	id, err := requireIntParam(params, "id", "ID parameter is required.", "ID parameter must be an integer.")
	if err != nil {
		return writeError(c, err)
	}

	if err := services.DeleteClient(c.Request().Context(), db.DB, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Client deleted successfully."})
}

// requireIntParam pulls a required integer parameter out of a decoded query
// map, with per-call-site error wording.
func requireIntParam(params map[string]string, key, missingMsg, notIntMsg string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, &services.ValidationError{Message: missingMsg}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &services.ValidationError{Message: notIntMsg}
	}
	return id, nil
}
