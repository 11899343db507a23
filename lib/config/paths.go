package config

import (
	"path/filepath"
)

type CfgPath string

// Resolve anchors a relative path at base, normally the directory holding
// the config file.
func (c CfgPath) Resolve(base string) CfgPath {
	if c == "" || filepath.IsAbs(string(c)) {
		return c
	}
	return CfgPath(filepath.Join(base, string(c)))
}
