// Package proto holds the lockify.v1 wire messages and AuthService stubs
// generated from api/proto/lockify/v1/auth.proto.
package proto

//go:generate protoc -I ../../api/proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/lockify --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/lockify lockify/v1/auth.proto
