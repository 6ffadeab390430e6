package helper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Foto kegiatan/rapat dikirim frontend sebagai data-URL base64. Sebelum
// disimpan ke kolom JSON, setiap foto dikecilkan (max sisi 1280px) dan
// di-encode ulang ke WebP lossy supaya row DB tidak bengkak.

const (
	fotoMaxDimension = 1280
	fotoWebPQuality  = 75
)

var dataURLPrefixRe = regexp.MustCompile(`^data:image/[a-zA-Z0-9.+-]+;base64,`)

// CompressBase64Image menerima satu data-URL (atau base64 polos) dan
// mengembalikan data-URL WebP terkompresi.
func CompressBase64Image(dataURL string) (string, error) {
	raw := dataURLPrefixRe.ReplaceAllString(strings.TrimSpace(dataURL), "")
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("gagal decode base64: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(decoded))
	if err != nil {
		// coba webp (frontend lama kadang sudah kirim webp)
		img, err = webp.Decode(bytes.NewReader(decoded))
		if err != nil {
			return "", fmt.Errorf("format gambar tidak dikenali: %w", err)
		}
	}

	b := img.Bounds()
	if b.Dx() > fotoMaxDimension || b.Dy() > fotoMaxDimension {
		img = imaging.Fit(img, fotoMaxDimension, fotoMaxDimension, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: fotoWebPQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// CompressBase64Multiple memproses list foto; foto yang gagal dikompres
// disimpan apa adanya supaya submit absensi tidak gagal total.
func CompressBase64Multiple(dataURLs []string) []string {
	out := make([]string, 0, len(dataURLs))
	for _, d := range dataURLs {
		if strings.TrimSpace(d) == "" {
			continue
		}
		compressed, err := CompressBase64Image(d)
		if err != nil {
			out = append(out, d)
			continue
		}
		out = append(out, compressed)
	}
	return out
}
