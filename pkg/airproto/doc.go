// Package airproto holds the air.v1 gRPC control surface shared between
// playoutd and the AIR rendering engine.
//
// Regenerate the bindings after editing air.proto:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative air.proto
package airproto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative air.proto
