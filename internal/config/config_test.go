package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestCleanAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"passes clean key", "AIzaSyTest123", "AIzaSyTest123"},
		{"strips whitespace", "  AIzaSyTest123\n", "AIzaSyTest123"},
		{"strips double quotes", `"AIzaSyTest123"`, "AIzaSyTest123"},
		{"strips single quotes", "'AIzaSyTest123'", "AIzaSyTest123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanAPIKey(tc.raw); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestMustGetAPIKey_Panics(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"missing key", ""},
		{"wrong prefix", "sk-not-a-gemini-key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic for invalid API key")
				}
			}()

			if tc.value == "" {
				os.Unsetenv("TEST_GEMINI_KEY")
			} else {
				os.Setenv("TEST_GEMINI_KEY", tc.value)
				defer os.Unsetenv("TEST_GEMINI_KEY")
			}
			mustGetAPIKey("TEST_GEMINI_KEY")
		})
	}
}

func TestMustGetAPIKey_ReturnsCleanedValue(t *testing.T) {
	os.Setenv("TEST_GEMINI_KEY", `"AIzaSyTest123"`)
	defer os.Unsetenv("TEST_GEMINI_KEY")

	result := mustGetAPIKey("TEST_GEMINI_KEY")
	if result != "AIzaSyTest123" {
		t.Errorf("Expected 'AIzaSyTest123', got %q", result)
	}
}
