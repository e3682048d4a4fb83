package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobot-backend/internal/models"
	"studiobot-backend/internal/storage"
)

func TestLeadListWithStatusFilter(t *testing.T) {
	store := storage.NewMemoryStore()
	_, err := store.CreateLead(&models.Lead{WaID: "1", Category: "TERMIN"})
	require.NoError(t, err)
	_, err = store.CreateLead(&models.Lead{WaID: "2", Category: "PHYSIO", Status: models.LeadStatusClosed})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/api/leads", NewLeadHandler(store).HandleList)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/leads?status=open", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Count int            `json:"count"`
		Leads []*models.Lead `json:"leads"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "TERMIN", body.Leads[0].Category)
}
