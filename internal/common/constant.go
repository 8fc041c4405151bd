// Package common contains shared constants and sentinel errors used across
// fitkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Roles a user record can carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
