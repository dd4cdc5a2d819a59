package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lockify/internal/flagx"
	"github.com/dmitrijs2005/lockify/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "1h" style strings and integer nanoseconds. Absent fields keep the
// current value.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	StorageType                 *string         `json:"storage_type"`
	UsersFile                   *string         `json:"users_file"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	S3RootUser                  *string         `json:"s3_root_user"`
	S3RootPassword              *string         `json:"s3_root_password"`
	S3Bucket                    *string         `json:"s3_bucket"`
	S3Region                    *string         `json:"s3_region"`
	S3BaseEndpoint              *string         `json:"s3_base_endpoint"`
	S3Key                       *string         `json:"s3_key"`
	UniqueEmails                *bool           `json:"unique_emails"`
	LogLevel                    *string         `json:"log_level"`
	LogFormat                   *string         `json:"log_format"`
}

// parseJson overlays the file named by -c/-config onto config. No flag, no
// change. An unreadable or invalid file panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setString(&config.StorageType, c.StorageType)
	setString(&config.UsersFile, c.UsersFile)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.S3Key, c.S3Key)
	if c.UniqueEmails != nil {
		config.UniqueEmails = *c.UniqueEmails
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
