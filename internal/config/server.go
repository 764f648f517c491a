package config

// ServerConfig holds settings for the local fake backend
type ServerConfig struct {
	Addr          string
	AdminEmail    string
	AdminPassword string
}

// LoadServerConfig loads fake backend configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	addr := getenv("FAKE_API_ADDR")
	if addr == "" {
		addr = ":8080" // Default to port 8080
	}

	email := getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@rentzila.test"
	}
	password := getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin12345"
	}

	return ServerConfig{
		Addr:          addr,
		AdminEmail:    email,
		AdminPassword: password,
	}
}
