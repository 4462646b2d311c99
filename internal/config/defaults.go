package config

import "time"

const (
	dotEnvVariable    = "DOTENV"
	defaultDotEnvPath = ".env"

	// DefaultImageURL is shown for records created without an image.
	DefaultImageURL = "https://res.cloudinary.com/dqjhgnivi/image/upload/v1752803556/nub5c65r4a2x4ktdakdc.jpg"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:  "development",
			Version:      "dev",
			DefaultImage: DefaultImageURL,
		},
		Storage: Storage{
			DB:    DB{DSN: "data/strains.db"},
			Cache: DB{DSN: "smokestack-cache.db"},
		},
		Server: Server{
			HTTPAddress:     ":3000",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigin:      "*",
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 5 * time.Second,
		},
		Workers: Workers{
			HealthInterval: 30 * time.Second,
		},
	}
}
