// Package cli provides the interactive lockify command-line client.
//
// It wires configuration, the gRPC client and a REPL. A background watcher
// pings the server and shows online/offline in the prompt. Passwords are
// read from the terminal without echo and wiped after use.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
