package network

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"errors"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/poker-client/domain/action"
	"github.com/luca-patrignani/poker-client/domain/table"
)

func generateSelfSignedCert(t *testing.T) (tls.Certificate, *x509.Certificate) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	require.NoError(t, err)
	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{"Poker Client"},
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().AddDate(1, 0, 0),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
		IPAddresses:           []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		DNSNames:              []string{"localhost"},
	}
	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	require.NoError(t, err)
	leaf, err := x509.ParseCertificate(certDER)
	require.NoError(t, err)
	return tls.Certificate{Certificate: [][]byte{certDER}, PrivateKey: priv, Leaf: leaf}, leaf
}

func testRequest() action.Request {
	return action.Request{
		ID:     uuid.MustParse("a3c2f1b0-5d8e-4f7a-9b6c-1e2d3f4a5b6c"),
		GameID: 4,
		Action: table.ActionRaise,
		Amount: 80,
	}
}

func TestSenderPostsJSON(t *testing.T) {
	var got action.Request
	var path, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSender(srv.URL + "/")
	require.NoError(t, s.SendAction(context.Background(), testRequest()))
	require.Equal(t, "/action", path)
	require.Equal(t, "application/json", contentType)
	require.Equal(t, testRequest(), got)

	require.NoError(t, s.RequestPlayerList(context.Background(), action.PlayerListRequest{GameID: 4}))
	require.Equal(t, "/playerlist", path)
}

func TestSenderRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSender(srv.URL, WithRetryDelay(time.Millisecond))
	require.NoError(t, s.SendAction(context.Background(), testRequest()))
	require.Equal(t, int32(3), calls.Load())
}

func TestSenderDoesNotRetryRejections(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "not your turn", http.StatusConflict)
	}))
	defer srv.Close()

	err := NewSender(srv.URL).SendAction(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrRejected)
	require.ErrorContains(t, err, "not your turn")
	require.Equal(t, int32(1), calls.Load())
}

func TestSenderTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewSender(srv.URL, WithTimeout(50*time.Millisecond), WithRetryDelay(5*time.Millisecond))
	err := s.SendAction(context.Background(), testRequest())
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrRejected))
}

func TestSenderMutualTLS(t *testing.T) {
	serverCert, serverLeaf := generateSelfSignedCert(t)
	clientCert, clientLeaf := generateSelfSignedCert(t)

	clientCAs := x509.NewCertPool()
	clientCAs.AddCert(clientLeaf)
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	srv.TLS = &tls.Config{
		Certificates: []tls.Certificate{serverCert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    clientCAs,
	}
	srv.StartTLS()
	defer srv.Close()

	rootCAs := x509.NewCertPool()
	rootCAs.AddCert(serverLeaf)
	s := NewSender(srv.URL, WithLimitedCAs(rootCAs), WithCertificate(clientCert), WithTimeout(2*time.Second))
	require.NoError(t, s.SendAction(context.Background(), testRequest()))

	anonymous := NewSender(srv.URL, WithLimitedCAs(rootCAs), WithTimeout(200*time.Millisecond), WithRetryDelay(20*time.Millisecond))
	require.Error(t, anonymous.SendAction(context.Background(), testRequest()))
}

func TestSenderWithHTTPClient(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewSender(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, s.SendAction(context.Background(), testRequest()))
}
