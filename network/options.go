package network

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"time"
)

type senderOption func(Sender) Sender

// WithTimeout bounds every request, retries included.
func WithTimeout(timeout time.Duration) senderOption {
	return func(s Sender) Sender {
		s.timeout = timeout
		return s
	}
}

// WithCertificate presents cert to the server.
func WithCertificate(cert tls.Certificate) senderOption {
	return func(s Sender) Sender {
		s.tlsConfig = cloneTLS(s.tlsConfig)
		s.tlsConfig.Certificates = append(s.tlsConfig.Certificates, cert)
		s.client = &http.Client{Transport: &http.Transport{TLSClientConfig: s.tlsConfig}}
		return s
	}
}

// WithLimitedCAs trusts only the certificates of certPool.
func WithLimitedCAs(certPool *x509.CertPool) senderOption {
	return func(s Sender) Sender {
		s.tlsConfig = cloneTLS(s.tlsConfig)
		s.tlsConfig.RootCAs = certPool
		s.client = &http.Client{Transport: &http.Transport{TLSClientConfig: s.tlsConfig}}
		return s
	}
}

// WithHTTPClient replaces the client, dropping any TLS option set before.
func WithHTTPClient(c *http.Client) senderOption {
	return func(s Sender) Sender {
		s.client = c
		s.tlsConfig = nil
		return s
	}
}

// WithRetryDelay sets the pause between two attempts.
func WithRetryDelay(d time.Duration) senderOption {
	return func(s Sender) Sender {
		s.retryDelay = d
		return s
	}
}

func cloneTLS(c *tls.Config) *tls.Config {
	if c == nil {
		return &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return c.Clone()
}
