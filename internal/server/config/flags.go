package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/lockify/internal/flagx"
)

var flagNames = []string{"-a", "-s", "-t", "-m", "-f", "-d", "-u", "-p", "-b", "-g", "-e", "-k", "-q", "-l", "-o"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":3000")
//	-s string   token HMAC secret key
//	-t int      token validity, minutes
//	-m string   storage backend: file, postgres, s3
//	-f string   users snapshot file
//	-d string   PostgreSQL DSN
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-k string   S3 object key
//	-q bool     unique emails (use -q or -q=true)
//	-l string   log level (debug, info, warn, error)
//	-o string   log format (json, text)
//
// Flags not in this list are ignored so other components can share the
// command line. Parse errors panic.
func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	validity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&config.StorageType, "m", config.StorageType, "storage backend: file, postgres, s3")
	fs.StringVar(&config.UsersFile, "f", config.UsersFile, "users snapshot file")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3Key, "k", config.S3Key, "S3 object key")
	fs.BoolVar(&config.UniqueEmails, "q", config.UniqueEmails, "reject duplicate emails")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "o", config.LogFormat, "log format: json, text")

	if err := fs.Parse(flagx.FilterArgs(args, flagNames)); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*validity) * time.Minute
}
