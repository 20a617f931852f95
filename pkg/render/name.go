package render

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
)

// PluginName identifies this plugin. It keys the output-name hash and tags
// every diagnostic the rewriter emits.
const PluginName = "remark-graphviz"

// Extension is the file extension of rendered images.
const Extension = ".svg"

// NameFor returns the content-addressed file name for source:
// hex(HMAC-SHA1(key, source)) + ".svg".
// Names must stay stable across releases: rendered trees link to them.
func NameFor(key, source string) string {
	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(source))
	return hex.EncodeToString(mac.Sum(nil)) + Extension
}
