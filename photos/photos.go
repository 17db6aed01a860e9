// Package photos turns uploaded image files into self-contained data URLs
// that travel inside the snapshot. Encoding happens before the lifecycle
// transition commits, so readers never see a half-attached photo list.
package photos

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// EncodeFiles reads each uploaded file and returns one data URL per file,
// mime type sniffed from content. Callers clamp the result to the item
// photo limit.
func EncodeFiles(files []*multipart.FileHeader) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		b, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		mime := http.DetectContentType(b)
		out = append(out, "data:"+mime+";base64,"+base64.StdEncoding.EncodeToString(b))
	}
	return out, nil
}
