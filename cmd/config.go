package cmd

// Config carries the runtime settings loaded from the environment.
// JWTSecret signs the access tokens; the service refuses to start without it.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	JWTSecret  string
}
