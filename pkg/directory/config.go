package directory

import "time"

type Config struct {
	BaseURL string        `env:"USERS_API_URL" envDefault:"https://jsonplaceholder.typicode.com"`
	Timeout time.Duration `env:"USERS_API_TIMEOUT" envDefault:"10s"`
}
