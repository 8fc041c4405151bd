// Package cli is the interactive fitkeeper client.
//
// App wires the local secure store, the gRPC client and the services, then
// runs a line-based REPL:
//
//	register          create an account (form is validated locally first)
//	login             authenticate; the token is kept in the secure store
//	logout            forget the stored token
//	status            server reachability and, when logged in, the profile
//	photo <path>      upload a profile photo
//	help              list commands
//	exit | quit       leave
package cli
