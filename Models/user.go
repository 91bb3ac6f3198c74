package Models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleViewer = "viewer"
)

// Module is the closed set of permission-gated feature areas. Keeping it a
// typed constant set means a new screen cannot be gated without touching
// this list.
type Module string

const (
	ModuleDocuments      Module = "documents"
	ModulePurchaseOrders Module = "purchaseOrders"
	ModuleUsers          Module = "users"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"not null;uniqueIndex"`
	Password []byte `json:"-"`
	Role     string `json:"role" gorm:"default:user"`

	PermDocuments      bool `json:"-"`
	PermPurchaseOrders bool `json:"-"`
	PermUsers          bool `json:"-"`
}

// PermissionSet is the wire shape the SPA consumes.
type PermissionSet struct {
	Documents      bool `json:"documents"`
	PurchaseOrders bool `json:"purchaseOrders"`
	Users          bool `json:"users"`
}

func (u *User) Permissions() PermissionSet {
	return PermissionSet{
		Documents:      u.PermDocuments,
		PurchaseOrders: u.PermPurchaseOrders,
		Users:          u.PermUsers,
	}
}

func (u *User) SetPermissions(p PermissionSet) {
	u.PermDocuments = p.Documents
	u.PermPurchaseOrders = p.PurchaseOrders
	u.PermUsers = p.Users
}

// HasPermission answers whether the user may reach a module. Unknown
// modules are denied.
func (u *User) HasPermission(m Module) bool {
	if u == nil {
		return false
	}
	switch m {
	case ModuleDocuments:
		return u.PermDocuments
	case ModulePurchaseOrders:
		return u.PermPurchaseOrders
	case ModuleUsers:
		return u.PermUsers
	}
	return false
}

func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword(u.Password, []byte(plain)) == nil
}
