package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"DocuKeeper/FiberConfig"
	"DocuKeeper/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp wires the full route table onto a fresh in-memory database, so
// handler tests exercise the same auth and permission path as production.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Models.User{},
		&Models.Client{},
		&Models.Document{},
		&Models.PurchaseOrder{},
		&Models.Invoice{},
	))

	// The auth middleware resolves sessions through the package-level DB.
	Models.DB = db

	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email string, perms Models.PermissionSet) Models.User {
	t.Helper()

	user := Models.User{
		Name:  "Test User",
		Email: email,
		Role:  Models.RoleUser,
	}
	user.SetPermissions(perms)
	require.NoError(t, user.SetPassword("password"))
	require.NoError(t, db.Create(&user).Error)
	return user
}

func allPerms() Models.PermissionSet {
	return Models.PermissionSet{Documents: true, PurchaseOrders: true, Users: true}
}

func login(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()

	resp := doJSON(t, app, fiber.MethodPost, "/api/Login", fiber.Map{
		"email":    email,
		"password": "password",
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "jwt" {
			return cookie
		}
	}
	t.Fatal("login response did not set a jwt cookie")
	return nil
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
