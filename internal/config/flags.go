package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-base-path route prefix of the sync endpoints
//	-d database DSN
//	-shadows shadow store backend: memory, postgres or sqlite
//	-shadows-dsn shadow store DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "720h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request body hash key
//	-server client: server base URL
//	-sync-interval client: sync job period
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var basePath string
	var databaseDSN string
	var shadowBackend, shadowDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var adapterAddress string
	var syncInterval time.Duration

	fs := flag.NewFlagSet("go-diffsync", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&basePath, "base-path", "", "Route prefix of the sync endpoints")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&shadowBackend, "shadows", "", "Shadow store backend (memory, postgres, sqlite)")
	fs.StringVar(&shadowDSN, "shadows-dsn", "", "Shadow store DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request body hash key")
	fs.StringVar(&adapterAddress, "server", "", "Server base URL for the client")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Client sync interval (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Shadows: Shadows{
				Backend: shadowBackend,
				DSN:     shadowDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			BasePath:       basePath,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on every interface.
func (a *NetAddress) Set(s string) error {
	host, rawPort, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(rawPort, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
