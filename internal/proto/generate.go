// Package proto holds the gRPC contract shared by the server and the CLI client.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative fitkeeper.proto
