package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"DocuKeeper/Models"
)

// UserController handles the users admin screen
type UserController struct {
	DB *gorm.DB
}

// NewUserController creates a new UserController
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type UserRequest struct {
	Name        string                `json:"name"`
	Email       string                `json:"email" validate:"omitempty,email"`
	Password    string                `json:"password"`
	Role        string                `json:"role" validate:"omitempty,oneof=admin user viewer"`
	Permissions *Models.PermissionSet `json:"permissions"`
}

// FetchUsers lists all users as principals (no password hashes leave the
// store).
func (ctl *UserController) FetchUsers(ctx *fiber.Ctx) error {
	var users []Models.User
	if result := ctl.DB.Find(&users); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}

	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		out = append(out, principal(&users[i]))
	}
	return ctx.JSON(out)
}

// RegisterUser creates a user from the admin screen, permissions included.
func (ctl *UserController) RegisterUser(ctx *fiber.Ctx) error {
	var req UserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Email == "" || req.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": "email and password are required",
		})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": err.Error(),
		})
	}

	var existing Models.User
	err := ctl.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email já cadastrado"})
	}
	if err != gorm.ErrRecordNotFound {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	user := Models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if user.Role == "" {
		user.Role = Models.RoleUser
	}
	if req.Permissions != nil {
		user.SetPermissions(*req.Permissions)
	} else {
		user.PermDocuments = true
	}
	if err := user.SetPassword(req.Password); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	if result := ctl.DB.Create(&user); result.Error != nil {
		// The pre-check can lose a race; the unique index has the last word.
		if isUniqueViolation(result.Error) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email já cadastrado"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(principal(&user))
}

// UpdateUser edits name, role, permissions and optionally the password.
func (ctl *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var user Models.User
	if result := ctl.DB.First(&user, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": err.Error(),
		})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Permissions != nil {
		user.SetPermissions(*req.Permissions)
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
		}
	}

	if result := ctl.DB.Save(&user); result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email já cadastrado"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return ctx.JSON(principal(&user))
}

// DeleteUser removes a user. Deleting your own session's user is
// rejected so an admin cannot lock themselves out mid-session.
func (ctl *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if current, ok := ctx.Locals("user").(Models.User); ok && current.ID == uint(id) {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Cannot delete the logged-in user"})
	}

	var user Models.User
	if result := ctl.DB.First(&user, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	// Hard delete: a soft-deleted row would keep the email under the
	// unique index and block ever registering it again.
	ctl.DB.Unscoped().Delete(&user)

	return ctx.JSON(fiber.Map{"message": "User deleted successfully"})
}
