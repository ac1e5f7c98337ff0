package helpers

// CanAccessResource is the owner-or-admin rule applied to bookings, orders,
// and their line items: admins may act on anything, customers only on rows
// they own.
func CanAccessResource(role string, uid string, ownerId *string) bool {
	if role == "ADMIN" {
		return true
	}
	return ownerId != nil && *ownerId == uid
}
