package api

import (
	velocli "github.com/dfirlabs/velocli"
)

// ConfigClient credential material for the api service, in the document
// format written by `velociraptor config api_client`. certificates and
// keys are pem text.
type ConfigClient struct {
	CACertificate       string `yaml:"ca_certificate"`
	ClientCert          string `yaml:"client_cert"`
	ClientPrivateKey    string `yaml:"client_private_key"`
	APIConnectionString string `yaml:"api_connection_string"`
	Name                string `yaml:"name"`
}

// LoadConfig create a new configuration from the specified path using the
// current configuration as the default values for the new configuration.
func (t ConfigClient) LoadConfig(path string) (ConfigClient, error) {
	if err := velocli.ExpandAndDecodeFile(path, &t); err != nil {
		return t, ConfigError{err}
	}

	return t, nil
}
