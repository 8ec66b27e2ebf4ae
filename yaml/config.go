package yaml

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/docindex"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file read when none is named explicitly.
const DefaultConfigFile = "docindex.yaml"

// LoadOptions reads Options from the YAML file at path. Returns ENOTFOUND if
// the file does not exist and EINVALID if it cannot be parsed or names an
// unknown key.
func LoadOptions(path string) (docindex.Options, error) {
	var opts docindex.Options

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return opts, docindex.Errorf(docindex.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return opts, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return docindex.Options{}, docindex.Errorf(docindex.EINVALID, "parse config file %s: %v", path, err)
	}
	return opts, nil
}
