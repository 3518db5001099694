// Package capability answers "is this external credential or feature available?"
// for the eval runner. Handlers query it by name instead of reading the process
// environment directly, so tests can simulate credential availability.
package capability

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Provider exposes named capability lookup.
type Provider interface {
	// Has reports whether the named capability (environment credential) is set.
	Has(key string) bool

	// Get retrieves the value for the named capability, or empty when unset.
	Get(key string) string

	// APIKeyFor retrieves the credential for a named LLM provider.
	APIKeyFor(provider string) string
}

// keyMappings maps LLM provider names to their credential environment variables.
var keyMappings = map[string]string{
	"anthropic": "ANTHROPIC_API_KEY",
	"claude":    "ANTHROPIC_API_KEY",
	"openai":    "OPENAI_API_KEY",
	"gemini":    "GEMINI_API_KEY",
	"google":    "GEMINI_API_KEY",
	"ollama":    "OLLAMA_HOST",
}

// KeyFor returns the environment variable name holding the credential for a
// named LLM provider, and whether the provider is known.
func KeyFor(provider string) (string, bool) {
	key, ok := keyMappings[strings.ToLower(provider)]
	return key, ok
}

// EnvProvider implements Provider over the process environment, optionally
// augmented by values loaded from a .env file.
type EnvProvider struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewEnvProvider creates a Provider backed by the process environment.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{vars: make(map[string]string)}
}

// LoadDotEnv reads KEY=VALUE pairs from a .env file. Values already present in
// the process environment win over file values. A missing file is not an error;
// a malformed line is.
func (p *EnvProvider) LoadDotEnv(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open env file %s: %w", path, err)
	}
	defer file.Close()

	p.mu.Lock()
	defer p.mu.Unlock()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("malformed line %d in %s", lineNum, path)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		p.vars[key] = value
	}
	return scanner.Err()
}

// Has reports whether the named capability is set in the process environment
// or a loaded .env file. A variable set to the empty string counts as set.
func (p *EnvProvider) Has(key string) bool {
	if _, ok := os.LookupEnv(key); ok {
		return true
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.vars[key]
	return ok
}

// Get retrieves the named capability. Process environment takes precedence
// over .env file values.
func (p *EnvProvider) Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.vars[key]
}

// APIKeyFor retrieves the credential for a named LLM provider, or empty when
// the provider is unknown or its credential is unset.
func (p *EnvProvider) APIKeyFor(provider string) string {
	key, ok := KeyFor(provider)
	if !ok {
		return ""
	}
	return p.Get(key)
}

// Static implements Provider over a fixed map, for tests.
type Static map[string]string

// Has reports whether the named capability is present in the map. As with
// environment variables, an empty value still counts as set.
func (s Static) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Get retrieves the named capability from the map.
func (s Static) Get(key string) string { return s[key] }

// APIKeyFor retrieves the credential for a named LLM provider from the map.
func (s Static) APIKeyFor(provider string) string {
	key, ok := KeyFor(provider)
	if !ok {
		return ""
	}
	return s[key]
}
