// Package ioutils provides file system and image utilities for
// sekai-dl.
//
// This package contains:
//   - Directory creation and payload writing (files only ever hold
//     fully fetched payloads)
//   - Cover art processing: optional resize and JPEG conversion
//     before ID3 embedding
package ioutils
