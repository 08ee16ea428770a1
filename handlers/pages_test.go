package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"law_office_app_go/services"

	"github.com/stretchr/testify/assert"
)

func TestClientsPageHandler(t *testing.T) {
	testDB := setupTestDB(t)
	seedCaseGraph(t, testDB)

	c, rec := setupEcho(http.MethodGet, "/clientes", nil)
	assert.NoError(t, ClientsPageHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if assert.Len(t, body["clientes"], 1) {
		assert.Equal(t, "Ana", body["clientes"][0]["nome"])
		// Nulls pass through on the page listing
		assert.Nil(t, body["clientes"][0]["email"])
	}
}

func TestReportsPageHandler(t *testing.T) {
	testDB := setupTestDB(t)
	seedCaseGraph(t, testDB)

	c, rec := setupEcho(http.MethodGet, "/relatorios", nil)
	assert.NoError(t, ReportsPageHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "report_data_docs_clientes_casos")
	assert.Contains(t, body, "report_data_casos_advogado_status")
	assert.Contains(t, body, "report_data_audiencias_cliente_advogado")
}

func TestAIPageHandlerDegradesWhenModelsUnavailable(t *testing.T) {
	testDB := setupTestDB(t)
	seedCaseGraph(t, testDB)

	prevClient := services.Ollama
	services.Ollama = services.NewOllamaClient("http://localhost:0/")
	defer func() { services.Ollama = prevClient }()

	c, rec := setupEcho(http.MethodGet, "/ia-integrada", nil)
	assert.NoError(t, AIPageHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body["ollama_models"])
	assert.Contains(t, body, "documents")
}

func TestAIPageHandlerListsModels(t *testing.T) {
	testDB := setupTestDB(t)
	seedCaseGraph(t, testDB)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"models": []map[string]string{{"name": "llama3:8b"}},
		})
	}))
	defer upstream.Close()

	prevClient := services.Ollama
	services.Ollama = services.NewOllamaClient(upstream.URL + "/")
	defer func() { services.Ollama = prevClient }()

	c, rec := setupEcho(http.MethodGet, "/ia-integrada", nil)
	assert.NoError(t, AIPageHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if assert.Len(t, body["ollama_models"], 1) {
		assert.Equal(t, "llama3:8b", body["ollama_models"][0]["nome"])
	}
}

func TestHearingHandlersRoundTrip(t *testing.T) {
	testDB := setupTestDB(t)
	seedCaseGraph(t, testDB)

	payload := `{"id_caso":1,"data_audiencia":"2024-06-01","horario":"14:30:00","tipo_audiencia":"Instrução"}`
	c, rec := setupEcho(http.MethodPost, "/api/audiencias", strings.NewReader(payload))
	assert.NoError(t, CreateHearingHandler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = setupEcho(http.MethodGet, "/api/audiencias?id_caso=1", nil)
	assert.NoError(t, GetHearingsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	if assert.Len(t, list, 1) {
		assert.Equal(t, "2024-06-01", list[0]["data_audiencia"])
	}

	c, rec = setupEcho(http.MethodDelete, "/api/audiencias?id=1", nil)
	assert.NoError(t, DeleteHearingHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTaskHandlersValidation(t *testing.T) {
	testDB := setupTestDB(t)
	seedCaseGraph(t, testDB)

	payload := `{"id_caso":1,"id_advogado":1,"descricao":"Protocolar","data_tarefa":"bad-date"}`
	c, rec := setupEcho(http.MethodPost, "/api/tarefas", strings.NewReader(payload))
	assert.NoError(t, CreateTaskHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Data da tarefa inválida. Use o formato AAAA-MM-DD.", body["error"])
}

func TestLookupHandlers(t *testing.T) {
	testDB := setupTestDB(t)
	seedCaseGraph(t, testDB)

	c, rec := setupEcho(http.MethodGet, "/api/advogados", nil)
	assert.NoError(t, GetLawyersHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var lawyers []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lawyers))
	if assert.Len(t, lawyers, 1) {
		assert.Equal(t, "11111SC", lawyers[0]["oab"])
	}

	c, rec = setupEcho(http.MethodGet, "/api/status", nil)
	assert.NoError(t, GetStatusesHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var statuses []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statuses))
	if assert.Len(t, statuses, 1) {
		assert.Equal(t, "Em Andamento", statuses[0]["nome"])
	}
}
