package main

import (
	"mime"

	"github.com/pkg/errors"
)

// registerMIMETypes adds PWA artifact types the platform table may
// lack. Everything else uses standard extension inference.
func registerMIMETypes() error {
	types := map[string]string{
		".webmanifest": "application/manifest+json",
		".wasm":        "application/wasm",
		".mjs":         "text/javascript",
	}
	for ext, typ := range types {
		if err := mime.AddExtensionType(ext, typ); err != nil {
			return errors.Wrapf(err, "register %s", ext)
		}
	}
	return nil
}
