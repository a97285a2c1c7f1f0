// Package assets embeds the browser-side glue script shipped
// alongside every assembled search module.
package assets

import _ "embed"

// DocfindJS is copied verbatim into every output directory next to
// the assembled docfind_bg.wasm, the way the original tool embeds and
// re-emits its wasm-bindgen-generated docfind.js.
//
//go:embed docfind.js
var DocfindJS []byte
