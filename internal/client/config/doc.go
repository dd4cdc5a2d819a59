// Package config resolves the lockify client settings.
//
// Defaults are applied first, then an optional JSON file named by -c or
// -config, then the -a (server address) and -i (online check interval in
// seconds, 0 disables the check) flags.
//
// A JSON file looks like:
//
//	{"server_endpoint_addr": "auth.internal:3000", "online_check_interval": "10s"}
package config
