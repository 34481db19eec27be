package storage

// Config holds configuration for the catalogue document source.
type Config struct {
	// Source selects where catalogue documents are read from (local or bucket).
	Source string `mapstructure:"source" default:"local"`
	// Path is the local directory holding catalogue documents.
	Path string `mapstructure:"path" default:"./catalogues"`
	// Endpoint is the URL of the object storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding catalogue documents.
	Bucket string `mapstructure:"bucket" default:"catalogues"`
	// Prefix is an optional key prefix inside the bucket.
	Prefix string `mapstructure:"prefix" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	SourceLocal  = "local"
	SourceBucket = "bucket"
)
