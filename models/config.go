package models

type EnvConfig struct {
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	// Caching toggles the durable media cache. when disabled,
	// every resolution fetches and decrypts from scratch.
	Caching bool

	// MaxFileSize caps the ciphertext size accepted from the
	// media source, in bytes.
	MaxFileSize int64

	DownloadsDirectory string

	HTTPSProxy string
	HTTPProxy  string
	NoProxy    string

	LogLevel string
}
