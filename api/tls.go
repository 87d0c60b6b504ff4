package api

import (
	"crypto/tls"
	"crypto/x509"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/dfirlabs/velocli/api/dialers"
	"github.com/pkg/errors"
)

// BuildClient assembles the mutual tls configuration for the client from
// the in memory pem material. the service is authenticated against the
// configured authority under the fixed ServerName identity.
func (t ConfigClient) BuildClient() (creds *tls.Config, err error) {
	var (
		cert tls.Certificate
	)

	if cert, err = tls.X509KeyPair([]byte(t.ClientCert), []byte(t.ClientPrivateKey)); err != nil {
		return nil, ConfigError{errors.Wrap(err, "failed to parse client certificate")}
	}

	pool := x509.NewCertPool()
	if ok := pool.AppendCertsFromPEM([]byte(t.CACertificate)); !ok {
		return nil, ConfigError{errors.New("failed to append authority certificate")}
	}

	creds = &tls.Config{
		ServerName:   ServerName,
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
	}

	return creds, nil
}

// GRPCGenClient generate grpc tls transport credentials for the client.
func GRPCGenClient(c ConfigClient) (credentials.TransportCredentials, error) {
	var (
		err      error
		tlscreds *tls.Config
	)

	if tlscreds, err = c.BuildClient(); err != nil {
		return nil, err
	}

	return credentials.NewTLS(tlscreds), nil
}

// NewDialer builds the reusable connection descriptor for the configured
// service address. each outgoing call establishes a fresh session from it.
func NewDialer(c ConfigClient, options ...grpc.DialOption) (d dialers.Direct, err error) {
	var (
		creds credentials.TransportCredentials
	)

	if creds, err = GRPCGenClient(c); err != nil {
		return d, err
	}

	if _, _, err = net.SplitHostPort(c.APIConnectionString); err != nil {
		return d, TransportError{errors.Wrapf(err, "malformed connection string: %s", c.APIConnectionString)}
	}

	return dialers.NewDirect(
		c.APIConnectionString,
		dialers.NewDefaults(append(options, grpc.WithTransportCredentials(creds))...),
	), nil
}
