package handlers

import (
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetTasksHandler lists tasks, optionally filtered by id_caso
func GetTasksHandler(c echo.Context) error {
	caseID, err := optionalCaseFilter(c)
	if err != nil {
		return writeError(c, err)
	}

	list, err := services.ListTasks(c.Request().Context(), db.DB, caseID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// CreateTaskHandler creates a task from the JSON payload
func CreateTaskHandler(c echo.Context) error {
	var payload services.TaskPayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, &services.ValidationError{Message: "Invalid request body or JSON parsing error: " + err.Error()})
	}

	id, err := services.CreateTask(c.Request().Context(), db.DB, &payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Tarefa criada com sucesso",
		"id_tarefa": id,
	})
}

// DeleteTaskHandler deletes a task selected by the "id" query parameter
func DeleteTaskHandler(c echo.Context) error {
	params, err := services.DecodeQuery(c.QueryString())
	if err != nil {
		return writeError(c, err)
	}
	id, err := requireIntParam(params, "id", "ID da tarefa é obrigatório.", "ID da tarefa deve ser um número inteiro.")
	if err != nil {
		return writeError(c, err)
	}

	if err := services.DeleteTask(c.Request().Context(), db.DB, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Tarefa excluída com sucesso."})
}
