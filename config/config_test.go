package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		DBHost:         "localhost",
		DBUser:         "postgres",
		DBName:         "divine_darshan",
		JWTSecret:      "test-secret",
		RazorpayKey:    "rzp_test_key",
		RazorpaySecret: "rzp_test_secret",
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateReportsEveryMissingKey(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	cfg.RazorpayKey = ""
	cfg.RazorpaySecret = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, key := range []string{"JWT_SECRET", "RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name missing key %s", err.Error(), key)
		}
	}
	if strings.Contains(err.Error(), "DB_HOST") {
		t.Errorf("error %q names a key that is present", err.Error())
	}
}

func TestValidateMissingDatabase(t *testing.T) {
	cfg := validConfig()
	cfg.DBHost = ""
	cfg.DBName = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "DB_HOST") || !strings.Contains(err.Error(), "DB_NAME") {
		t.Errorf("error %q should name DB_HOST and DB_NAME", err.Error())
	}
}
