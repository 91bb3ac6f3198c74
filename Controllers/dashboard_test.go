package Controllers_test

import (
	"io"
	"testing"
	"time"

	"DocuKeeper/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "viewer@example.com", Models.PermissionSet{})
	cookie := login(t, app, "viewer@example.com")

	require.NoError(t, db.Create(&Models.Client{LegalName: "Ativo Ltda", Active: true}).Error)
	require.NoError(t, db.Create(&Models.Client{LegalName: "Inativo Ltda", Active: false}).Error)
	require.NoError(t, db.Create(&Models.Document{
		ClientID: 1, Active: true, ProjectName: "P1",
		BillingType: Models.BillingTotal, Value: 5000,
		StartDate: time.Now().AddDate(0, -6, 0),
		EndDate:   time.Now().AddDate(1, 0, 0),
	}).Error)
	require.NoError(t, db.Create(&Models.Document{
		ClientID: 1, Active: false, ProjectName: "P2",
		BillingType: Models.BillingTotal, Value: 9000,
	}).Error)

	resp := doJSON(t, app, fiber.MethodGet, "/api/dashboard/stats", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		ActiveClients int     `json:"clientesAtivos"`
		ActiveDocs    int     `json:"documentosAtivos"`
		Accrued       float64 `json:"valorAcumulado"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, 1, body.ActiveClients)
	assert.Equal(t, 1, body.ActiveDocs)
	assert.Equal(t, 5000.0, body.Accrued)
}

func TestDashboardExpiring(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "viewer@example.com", Models.PermissionSet{})
	cookie := login(t, app, "viewer@example.com")

	require.NoError(t, db.Create(&Models.Document{
		ClientID: 1, Active: true, ProjectName: "Expiring",
		BillingType: Models.BillingTotal, Value: 100,
		StartDate: time.Now().AddDate(0, -1, 0),
		EndDate:   time.Now().AddDate(0, 0, 10),
	}).Error)
	require.NoError(t, db.Create(&Models.Document{
		ClientID: 1, Active: true, ProjectName: "Far Away",
		BillingType: Models.BillingTotal, Value: 100,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(1, 0, 0),
	}).Error)

	resp := doJSON(t, app, fiber.MethodGet, "/api/dashboard/expiring", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Documents []Models.ExpiringItem `json:"documents"`
	}
	decodeJSON(t, resp, &body)
	require.Len(t, body.Documents, 1)
	assert.Equal(t, "Expiring", body.Documents[0].Name)
	assert.Equal(t, Models.UrgencyCritical, body.Documents[0].Urgency)
	assert.Greater(t, body.Documents[0].Progress, 80.0)
}

func TestReportExport(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	client := Models.Client{LegalName: "Cliente Ltda", Active: true}
	require.NoError(t, db.Create(&client).Error)
	require.NoError(t, db.Create(&Models.Document{
		ClientID: client.ID, Active: true, ProjectName: "P",
		BillingType: Models.BillingTotal, Value: 100,
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 3, 0),
	}).Error)

	resp := doJSON(t, app, fiber.MethodGet, "/api/reports/contracts.xlsx", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheetml")

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
