package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment following the `env` and
// `envPrefix` tags of [StructuredConfig]. Every variable that fails to parse
// is reported by name, not only the first one.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) && len(aggregate.Errors) > 0 {
		keys := envKeys(reflect.TypeOf(*cfg), "", make(map[string][]string))

		errs := make([]error, 0, len(aggregate.Errors))
		for _, e := range aggregate.Errors {
			errs = append(errs, namedEnvError(e, keys))
		}
		err = errors.Join(errs...)
	}
	return fmt.Errorf("error getting env configs: %w", err)
}

// namedEnvError prefixes a field parse error with the variable that caused
// it. env.ParseError only knows the Go field name, which is shared by
// Server.RequestTimeout and Adapter.RequestTimeout, so only variables that
// are actually set are named.
func namedEnvError(err error, keys map[string][]string) error {
	var parseErr env.ParseError
	if !errors.As(err, &parseErr) {
		return err
	}

	var set []string
	for _, key := range keys[parseErr.Name] {
		if _, ok := os.LookupEnv(key); ok {
			set = append(set, key)
		}
	}
	if len(set) == 0 {
		return err
	}

	return fmt.Errorf("%s: %w", strings.Join(set, ", "), err)
}

// envKeys maps Go field names to the full variable names they are read from.
func envKeys(t reflect.Type, prefix string, keys map[string][]string) map[string][]string {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		if name, _, _ := strings.Cut(f.Tag.Get("env"), ","); name != "" {
			keys[f.Name] = append(keys[f.Name], prefix+name)
			continue
		}

		if f.Type.Kind() == reflect.Struct {
			envKeys(f.Type, prefix+f.Tag.Get("envPrefix"), keys)
		}
	}

	return keys
}
