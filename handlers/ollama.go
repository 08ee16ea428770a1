package handlers

import (
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// OllamaQuestionPayload is the document Q&A request body
type OllamaQuestionPayload struct {
	FileName string `json:"file_name"`
	Question string `json:"question"`
	Model    string `json:"model"`
}

// AskOllamaHandler answers a question about a stored document: the document
// is fetched by filename, its text extracted, and the question forwarded to
// the configured model.
func AskOllamaHandler(c echo.Context) error {
	var payload OllamaQuestionPayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, &services.ValidationError{Message: "Invalid request body: " + err.Error()})
	}

	answer, err := services.AnswerDocumentQuestion(
		c.Request().Context(), db.DB, services.Ollama, services.Extractor,
		payload.FileName, payload.Question, payload.Model)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":      "Resposta do LLM obtida com sucesso",
		"llm_response": answer,
	})
}
