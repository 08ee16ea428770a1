package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetDocumentsHandler serves document reads. With "id" and "download=true" it
// streams the stored binary as an attachment; with just "id" it returns the
// metadata object; otherwise the metadata list.
func GetDocumentsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	params, err := services.DecodeQuery(c.QueryString())
	if err == nil {
		idStr, hasID := params["id"]
		if hasID && params["download"] == "true" {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return writeError(c, &services.ValidationError{Message: "ID do documento deve ser um número inteiro."})
			}
			download, err := services.DownloadDocument(ctx, db.DB, id)
			if err != nil {
				return writeError(c, err)
			}
			c.Response().Header().Set(echo.HeaderContentDisposition,
				fmt.Sprintf("attachment; filename=%q", download.FileName))
			return c.Blob(http.StatusOK, download.ContentType, download.Content)
		}
		if hasID {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return writeError(c, &services.ValidationError{Message: "ID parameter must be an integer."})
			}
			row, err := services.GetDocument(ctx, db.DB, id)
			if err != nil {
				return writeError(c, err)
			}
			return c.JSON(http.StatusOK, row)
		}
	}

	list, err := services.ListDocuments(ctx, db.DB)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// CreateDocumentHandler stores a new document from the JSON payload
func CreateDocumentHandler(c echo.Context) error {
	var payload services.DocumentPayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, &services.ValidationError{Message: "Invalid request body or JSON parsing error: " + err.Error()})
	}

	id, err := services.CreateDocument(c.Request().Context(), db.DB, &payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Documento adicionado com sucesso",
		"id_documento": id,
	})
}

// UpdateDocumentHandler updates document metadata and, when new base64
// content is supplied, the stored binary.
func UpdateDocumentHandler(c echo.Context) error {
	var payload services.DocumentPayload
	if err := c.Bind(&payload); err != nil {
		return writeError(c, &services.ValidationError{Message: "Invalid request body or JSON parsing error: " + err.Error()})
	}

	if err := services.UpdateDocument(c.Request().Context(), db.DB, &payload); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Documento atualizado com sucesso"})
}

// DeleteDocumentHandler deletes a document selected by the "id" query parameter
func DeleteDocumentHandler(c echo.Context) error {
	params, err := services.DecodeQuery(c.QueryString())
	if err != nil {
		return writeError(c, err)
	}
	id, err := requireIntParam(params, "id", "ID do documento é obrigatório.", "ID do documento deve ser um número inteiro.")
	if err != nil {
		return writeError(c, err)
	}

	if err := services.DeleteDocument(c.Request().Context(), db.DB, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Documento excluído com sucesso."})
}
