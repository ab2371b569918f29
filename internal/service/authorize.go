// File: internal/service/authorize.go
package service

import "bootcampdir/internal/model"

// CanModify is the single owner-or-admin capability check used by every
// mutating handler.
func CanModify(ownerID int, claims *CustomClaims) bool {
	if claims == nil {
		return false
	}
	return claims.UserID == ownerID || claims.Role == model.RoleAdmin
}
