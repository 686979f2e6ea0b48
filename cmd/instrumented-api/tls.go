package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net"
	"net/http"
	"os"
	"time"
)

// generateSelfSignedCert creates a self-signed certificate and key at
// certFile and keyFile. It is used for quick local TLS.
func generateSelfSignedCert(certFile, keyFile string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("generate private key: %w", err)
	}

	hostname, _ := os.Hostname()

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"Instrumented API"},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost", hostname},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
	}

	derCert, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}

	if err := writePEM(certFile, 0644, &pem.Block{Type: "CERTIFICATE", Bytes: derCert}); err != nil {
		return err
	}
	keyBytes := x509.MarshalPKCS1PrivateKey(privateKey)
	if err := writePEM(keyFile, 0600, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: keyBytes}); err != nil {
		return err
	}

	log.Println("Successfully generated self-signed certificate and key.")
	return nil
}

func writePEM(path string, perm os.FileMode, block *pem.Block) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := pem.Encode(f, block); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// startServer starts the provided HTTP server with TLS if enabled in cfg.
// It returns any error from ListenAndServe or ListenAndServeTLS.
func startServer(server *http.Server, cfg Config) error {
	if cfg.EnableTLS {
		if _, err := os.Stat(cfg.CertFile); errors.Is(err, os.ErrNotExist) {
			log.Println("Certificate file not found. Generating a self-signed certificate...")
			if err := generateSelfSignedCert(cfg.CertFile, cfg.KeyFile); err != nil {
				return err
			}
		}
		log.Printf("Starting HTTPS server with cert: %s", cfg.CertFile)
		return server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
	}
	log.Printf("Starting HTTP server (with H2C support)")
	return server.ListenAndServe()
}
