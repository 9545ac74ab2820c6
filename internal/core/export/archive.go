package export

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
)

// Zip packages artifacts into one zip archive, in order. Repeated names get a
// numeric suffix before the extension.
func Zip(artifacts []Artifact) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	seen := make(map[string]int, len(artifacts))
	now := time.Now()

	for _, a := range artifacts {
		name := uniqueName(a.Name, seen)
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: now})
		if err != nil {
			return nil, fmt.Errorf("falha ao adicionar %s ao zip: %w", name, err)
		}
		if _, err := w.Write(a.Content); err != nil {
			return nil, fmt.Errorf("falha ao escrever %s no zip: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("falha ao finalizar zip: %w", err)
	}
	return buf.Bytes(), nil
}

func uniqueName(name string, seen map[string]int) string {
	seen[name]++
	n := seen[name]
	if n == 1 {
		return name
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
	for seen[candidate] > 0 {
		n++
		candidate = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
	seen[candidate] = 1
	return candidate
}
