// Package client talks to the lockify identity server.
//
// The Client interface is the transport-agnostic contract the CLI works
// against. GRPCClient implements it over gRPC with the JSON content-subtype,
// keeps the session token returned by Login and attaches it to every call as
// "authorization: Bearer <token>".
//
// Server status codes are mapped to the sentinel errors in errors.go so
// callers can match them with errors.Is.
package client
