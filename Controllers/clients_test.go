package Controllers_test

import (
	"fmt"
	"testing"
	"time"

	"DocuKeeper/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateRoundTrip(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	resp := doJSON(t, app, fiber.MethodPost, "/api/clients/", fiber.Map{
		"razaoSocial":    "Empresa Exemplo Ltda",
		"nomeFantasia":   "Exemplo Corp",
		"grupoEconomico": "Grupo Exemplo",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created Models.Client
	decodeJSON(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.Active)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/clients/%d", created.ID), nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fetched Models.Client
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Empresa Exemplo Ltda", fetched.LegalName)
	assert.Equal(t, "Exemplo Corp", fetched.TradeName)
}

func TestClientCreateRequiresLegalName(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	resp := doJSON(t, app, fiber.MethodPost, "/api/clients/", fiber.Map{
		"nomeFantasia": "Sem Razão Social",
	}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestClientUpdateKeepsCreatedAt(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	client := Models.Client{LegalName: "Antes Ltda", Active: true}
	require.NoError(t, db.Create(&client).Error)
	createdAt := client.CreatedAt

	time.Sleep(10 * time.Millisecond)

	active := false
	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/clients/%d", client.ID), fiber.Map{
		"razaoSocial": "Depois Ltda",
		"ativo":       active,
	}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated Models.Client
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "Depois Ltda", updated.LegalName)
	assert.False(t, updated.Active)
	assert.Equal(t, createdAt.Unix(), updated.CreatedAt.Unix())
	assert.True(t, updated.UpdatedAt.After(createdAt))
}

func TestClientGetMissing(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	resp := doJSON(t, app, fiber.MethodGet, "/api/clients/9999", nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Hard deletion is blocked while documents still reference the client;
// the ativo flag is the supported retirement path.
func TestClientDeleteBlockedByChildren(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	client := Models.Client{LegalName: "Com Filhos Ltda", Active: true}
	require.NoError(t, db.Create(&client).Error)
	require.NoError(t, db.Create(&Models.Document{
		ClientID:    client.ID,
		Active:      true,
		ProjectName: "Projeto",
		BillingType: Models.BillingTotal,
		Value:       100,
	}).Error)

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/clients/%d", client.ID), nil, cookie)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	db.Model(&Models.Client{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestClientDeleteWithoutChildren(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	client := Models.Client{LegalName: "Sozinho Ltda", Active: true}
	require.NoError(t, db.Create(&client).Error)

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/clients/%d", client.ID), nil, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/clients/%d", client.ID), nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
