package main

import (
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateSelfSignedCert(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "test_server.crt")
	keyFile := filepath.Join(dir, "test_server.key")

	if err := generateSelfSignedCert(certFile, keyFile); err != nil {
		t.Fatalf("generateSelfSignedCert: %v", err)
	}
	// Validate files exist and are PEM
	cf, err := os.ReadFile(certFile)
	if err != nil {
		t.Fatalf("cert not created: %v", err)
	}
	if p, _ := pem.Decode(cf); p == nil || p.Type != "CERTIFICATE" {
		t.Errorf("invalid cert PEM")
	}
	kf, err := os.ReadFile(keyFile)
	if err != nil {
		t.Fatalf("key not created: %v", err)
	}
	if p, _ := pem.Decode(kf); p == nil || p.Type != "RSA PRIVATE KEY" {
		t.Errorf("invalid key PEM")
	}
}

func TestGenerateSelfSignedCert_BadPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	if err := generateSelfSignedCert(filepath.Join(dir, "a.crt"), filepath.Join(dir, "a.key")); err == nil {
		t.Errorf("expected error writing into a missing directory")
	}
}
