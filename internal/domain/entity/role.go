package entity

// UserRole enumerates the account roles understood by the system.
type UserRole string

const (
	// RoleEndUser is a consumer comparing prices across shops.
	RoleEndUser UserRole = "end_user"
	// RoleShopOwner is a merchant publishing prices for a shop.
	RoleShopOwner UserRole = "shop_owner"
	// RoleAdmin is a back-office administrator.
	RoleAdmin UserRole = "admin"
	// RoleStaff is back-office support staff.
	RoleStaff UserRole = "staff"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleEndUser, RoleShopOwner, RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}
