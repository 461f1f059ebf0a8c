package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadFile reads a YAML catalog file and unmarshals it on top of the
// built-in defaults. Sections present in the file replace the defaults
// wholesale; absent sections keep them.
func LoadFile(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	c := Default()
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
