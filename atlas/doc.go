// Package atlas loads MSDF fonts and owns them for the lifetime of a Cache.
//
// A font named "Inter" is a pair of files under the configured directory:
// Inter.json (the metrics document, see package font) and Inter.png (the
// atlas image). Load reads both once; later calls for the same name do no
// I/O. The atlas image is decoded as linear data, never color managed,
// because its channels are distances rather than display colors.
//
// The atlas image is handed to a TextureUploader (package gpu provides one
// backed by wgpu HAL) together with its box-filtered mipmap chain. The
// uploader's result is returned verbatim by Cache.Texture.
//
// Cache is safe for concurrent use. Concurrent Load calls for the same name
// share one load.
package atlas
