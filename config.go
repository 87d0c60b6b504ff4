package velocli

import (
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/pkg/errors"
)

// ExpandAndDecodeFile ...
func ExpandAndDecodeFile(path string, dst interface{}) (err error) {
	var (
		raw []byte
	)

	if raw, err = os.ReadFile(path); err != nil {
		return errors.WithStack(err)
	}

	return ExpandAndDecode(raw, dst)
}

// ExpandAndDecode expands environment variables within the raw document
// and then decodes it as yaml.
func ExpandAndDecode(raw []byte, dst interface{}) (err error) {
	return ExpandEnvironAndDecode(raw, dst, os.Getenv)
}

// ExpandEnvironAndDecode ...
func ExpandEnvironAndDecode(raw []byte, dst interface{}, mapping func(string) string) (err error) {
	return errors.WithStack(yaml.Unmarshal([]byte(os.Expand(string(raw), mapping)), dst))
}
