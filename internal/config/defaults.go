package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-diffsync",
			TokenDuration: 30 * 24 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			Shadows: Shadows{Backend: ShadowBackendMemory},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			BasePath:       "/api/sync",
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SyncInterval: 30 * time.Second,
		},
	}
}
