// Package client is the CLI's transport to the fitkeeper backend.
//
// Client is the contract the services layer depends on; GRPCClient
// implements it over the JSON-coded fitkeeper.AuthService. The access token
// is attached to every call by a unary interceptor once SetToken has been
// called.
//
// gRPC status codes are folded into the sentinel errors in errors.go so
// callers can use errors.Is. The server's message is kept in the wrapped
// error text.
package client
