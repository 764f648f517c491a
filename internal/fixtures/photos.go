package fixtures

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
)

// Upload file names written by WritePhotos
const (
	BigPhotoName     = "big_photo.jpg"
	InvalidPhotoName = "invalid_format_photo.avif"
)

// MaxUploadBytes is the largest photo the marketplace accepts
const MaxUploadBytes = 20 << 20

// PhotoSet holds absolute paths of the generated upload files
type PhotoSet struct {
	Dir     string
	Valid   []string
	Big     string
	Invalid string
}

// photoColors makes each valid photo a distinct file
var photoColors = []color.RGBA{
	{R: 200, G: 60, B: 40, A: 255},
	{R: 40, G: 160, B: 80, A: 255},
	{R: 30, G: 70, B: 190, A: 255},
}

// WritePhotos generates the upload fixtures in dir, creating it if needed
func WritePhotos(dir string) (PhotoSet, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return PhotoSet{}, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return PhotoSet{}, fmt.Errorf("failed to create %s: %w", abs, err)
	}

	set := PhotoSet{Dir: abs}
	for i, c := range photoColors {
		data, err := encodeJPEG(c, 320, 240)
		if err != nil {
			return PhotoSet{}, err
		}
		path := filepath.Join(abs, fmt.Sprintf("photo_%d.jpg", i+1))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return PhotoSet{}, fmt.Errorf("failed to write %s: %w", path, err)
		}
		set.Valid = append(set.Valid, path)
	}

	big, err := bigJPEG()
	if err != nil {
		return PhotoSet{}, err
	}
	set.Big = filepath.Join(abs, BigPhotoName)
	if err := os.WriteFile(set.Big, big, 0o644); err != nil {
		return PhotoSet{}, fmt.Errorf("failed to write %s: %w", set.Big, err)
	}

	set.Invalid = filepath.Join(abs, InvalidPhotoName)
	if err := os.WriteFile(set.Invalid, avifStub(), 0o644); err != nil {
		return PhotoSet{}, fmt.Errorf("failed to write %s: %w", set.Invalid, err)
	}

	return set, nil
}

func encodeJPEG(c color.RGBA, w, h int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			// Diagonal stripes so the encoder has something to compress
			if (x+y)/16%2 == 0 {
				img.SetRGBA(x, y, c)
			} else {
				img.SetRGBA(x, y, color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255})
			}
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// bigJPEG is a decodable JPEG padded with a trailing comment past MaxUploadBytes
func bigJPEG() ([]byte, error) {
	data, err := encodeJPEG(color.RGBA{R: 120, G: 120, B: 120, A: 255}, 640, 480)
	if err != nil {
		return nil, err
	}
	padding := make([]byte, MaxUploadBytes+1<<20-len(data))
	return append(data, padding...), nil
}

// avifStub is an ISO-BMFF file with an avif brand the upload form rejects
func avifStub() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x00, 0x00, 0x1c})
	buf.WriteString("ftypavif")
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})
	buf.WriteString("avifmif1miaf")
	buf.Write(bytes.Repeat([]byte{0xAB}, 4096))
	return buf.Bytes()
}
