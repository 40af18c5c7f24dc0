// Package image writes rendered frames to disk as ASCII PPM ("P3") files.
package image

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/david14higgins/Pathtracer/renderer"
)

// WritePPM writes img to path in ASCII PPM P3 format, creating any missing
// parent directories first.
func WritePPM(img *renderer.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("image: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.RGBAt(x, y)
			fmt.Fprintf(w, "%d %d %d\n", r, g, b)
		}
	}
	return w.Flush()
}

// OutputPath derives the renders/<basename-without-.json>.ppm output path
// for a scene file.
func OutputPath(sceneFile string) string {
	base := filepath.Base(sceneFile)
	ext := filepath.Ext(base)
	base = base[:len(base)-len(ext)]
	return filepath.Join("renders", base+".ppm")
}
