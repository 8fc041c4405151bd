// Package rest exposes the user service over HTTP/JSON using gin.
//
// Routes:
//
//	POST /api/auth/register         create an account
//	POST /api/auth/login            exchange credentials for a token
//	GET  /api/users/me              profile with derived BMI
//	PATCH /api/users/me             partial profile update
//	PUT  /api/users/me/password     change password
//	POST /api/users/me/photo        presigned upload URL for a profile photo
//	GET  /health                    liveness
//
// The remaining /api resources answer with a static placeholder message.
package rest
