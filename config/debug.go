package config

import (
	"encoding/json"

	"github.com/theiskaa/markdown2pdf/style"
)

// DumpDebugJSON serializes a resolved style.Record to indented JSON,
// for inspecting what a TOML overlay actually resolved to.
func DumpDebugJSON(rec style.Record) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}
