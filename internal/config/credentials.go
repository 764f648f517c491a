package config

import "fmt"

// Account is an email/password pair used to sign in
type Account struct {
	Email    string
	Password string
}

// Credentials holds the accounts the scenarios sign in with
type Credentials struct {
	User      Account
	TestUser  Account
	Admin     Account
	UserPhone string
}

// credentialKeys lists every variable LoadCredentials requires, in check order
var credentialKeys = []string{
	"USER_EMAIL",
	"USER_PASSWORD",
	"TEST_USER_EMAIL",
	"TEST_USER_PASSWORD",
	"ADMIN_EMAIL",
	"ADMIN_PASSWORD",
	"USER_PHONE",
}

// LoadCredentials loads account credentials from environment variables
func LoadCredentials(getenv func(string) string) (*Credentials, error) {
	for _, key := range credentialKeys {
		if getenv(key) == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	return &Credentials{
		User:      Account{Email: getenv("USER_EMAIL"), Password: getenv("USER_PASSWORD")},
		TestUser:  Account{Email: getenv("TEST_USER_EMAIL"), Password: getenv("TEST_USER_PASSWORD")},
		Admin:     Account{Email: getenv("ADMIN_EMAIL"), Password: getenv("ADMIN_PASSWORD")},
		UserPhone: getenv("USER_PHONE"),
	}, nil
}

// LoadAdminAccount loads only the admin account, for tools that query the backend
func LoadAdminAccount(getenv func(string) string) (Account, error) {
	account := Account{Email: getenv("ADMIN_EMAIL"), Password: getenv("ADMIN_PASSWORD")}
	if account.Email == "" {
		return Account{}, fmt.Errorf("ADMIN_EMAIL is required")
	}
	if account.Password == "" {
		return Account{}, fmt.Errorf("ADMIN_PASSWORD is required")
	}
	return account, nil
}

// HasCredentials reports whether every credential variable is set
func HasCredentials(getenv func(string) string) bool {
	_, err := LoadCredentials(getenv)
	return err == nil
}
