// Copyright 2026 MatGo Vision. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package imgcodec provides the public image codec API for MatGo:
// decoding PNG, JPEG, BMP and TIFF streams into matrices and encoding
// matrices back out, in memory or through the filesystem.
//
// Decoded color matrices store channels in interleaved BGR(A) order.
//
// Example:
//
//	img, err := imgcodec.Load("in.png", imgcodec.LoadColor)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer img.Release()
//	err = imgcodec.Save("out.jpg", img, []int{imgcodec.ParamJPEGQuality, 90})
package imgcodec

import (
	"github.com/matgo-vision/matgo/internal/imgcodec"
	"github.com/matgo-vision/matgo/internal/mat"
)

// Type aliases for public API

// Flag controls the channel layout of a decoded image.
type Flag = imgcodec.Flag

// Decode flags.
const (
	LoadUnchanged Flag = imgcodec.LoadUnchanged // keep the stream's channels
	LoadGrayscale Flag = imgcodec.LoadGrayscale // force single channel
	LoadColor     Flag = imgcodec.LoadColor     // force three channels
)

// Encoder parameter keys, passed to Encode and Save as flat key/value
// pairs.
const (
	ParamJPEGQuality    = imgcodec.ParamJPEGQuality
	ParamPNGCompression = imgcodec.ParamPNGCompression
)

// Decode reads an image from an in-memory byte stream. Unrecognizable
// data fails with mat.ErrDecode.
func Decode(data []byte, flag Flag) (*mat.Mat, error) {
	return imgcodec.Decode(data, flag)
}

// Encode serializes an 8-bit matrix into the format named by ext
// (".png", ".jpg", ".jpeg", ".bmp", ".tif" or ".tiff").
func Encode(ext string, m *mat.Mat, params []int) ([]byte, error) {
	return imgcodec.Encode(ext, m, params)
}

// Load reads and decodes an image file. Filesystem failures map to
// mat.ErrIO.
func Load(path string, flag Flag) (*mat.Mat, error) {
	return imgcodec.Load(path, flag)
}

// Save encodes m into the format implied by path's extension and
// writes it to disk.
func Save(path string, m *mat.Mat, params []int) error {
	return imgcodec.Save(path, m, params)
}
