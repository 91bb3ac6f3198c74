package Controllers_test

import (
	"fmt"
	"testing"

	"DocuKeeper/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserDuplicateEmail(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	payload := fiber.Map{
		"name":     "Analista",
		"email":    "analista@example.com",
		"password": "password",
	}

	resp := doJSON(t, app, fiber.MethodPost, "/api/users/", payload, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/users/", payload, cookie)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	seedUser(t, db, "taken@example.com", Models.PermissionSet{Documents: true})
	other := seedUser(t, db, "other@example.com", Models.PermissionSet{Documents: true})

	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/users/%d", other.ID), fiber.Map{
		"email": "taken@example.com",
	}, cookie)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUserEmailReusableAfterDelete(t *testing.T) {
	app, db := setupApp(t)
	seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	gone := seedUser(t, db, "gone@example.com", Models.PermissionSet{Documents: true})

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/users/%d", gone.ID), nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The email must be free again for a new account.
	resp = doJSON(t, app, fiber.MethodPost, "/api/users/", fiber.Map{
		"name":     "Novo Analista",
		"email":    "gone@example.com",
		"password": "password",
	}, cookie)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestDeleteOwnUserRejected(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, "admin@example.com", allPerms())
	cookie := login(t, app, "admin@example.com")

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/users/%d", admin.ID), nil, cookie)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
