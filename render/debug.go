package render

import (
	"encoding/json"

	"github.com/theiskaa/markdown2pdf/token"
)

// DumpTokenTreeJSON serializes a token tree to indented JSON for
// debugging, mirroring config.DumpDebugJSON.
func DumpTokenTreeJSON(tokens []token.Token) ([]byte, error) {
	return json.MarshalIndent(tokens, "", "  ")
}
