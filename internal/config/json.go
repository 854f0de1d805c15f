package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Shadows struct {
			Backend string `json:"backend"`
			DSN     string `json:"dsn"`
		} `json:"shadows"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		BasePath       string   `json:"base_path"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var in jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&in); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  in.App.TokenSignKey,
			TokenIssuer:   in.App.TokenIssuer,
			TokenDuration: time.Duration(in.App.TokenDuration),
			HashKey:       in.App.HashKey,
			Version:       in.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: in.Storage.DB.DSN},
			Shadows: Shadows{
				Backend: in.Storage.Shadows.Backend,
				DSN:     in.Storage.Shadows.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    in.Server.HTTPAddress,
			RequestTimeout: time.Duration(in.Server.RequestTimeout),
			BasePath:       in.Server.BasePath,
		},
		Adapter: Adapter{
			HTTPAddress:    in.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(in.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(in.Workers.SyncInterval),
		},
	}, nil
}

// Duration wraps time.Duration so JSON files may carry "1h" or "30s"
// as well as plain nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
