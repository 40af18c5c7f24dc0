// Package texture loads PPM ("P3" ASCII and "P6" binary) image files into
// the rendering core's scene.Texture type, reading through a small
// hand-rolled tokenizer rather than a general image decoder, since PPM
// has no standard library codec.
package texture

import (
	"bufio"
	"fmt"
	"io"

	"github.com/david14higgins/Pathtracer/asset"
	"github.com/david14higgins/Pathtracer/scene"
	"github.com/david14higgins/Pathtracer/types"
)

// Load reads a PPM P3 or P6 texture file from path.
func Load(path string) (*scene.Texture, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer res.Close()
	return Decode(res)
}

// Decode reads a PPM P3 or P6 image from r.
func Decode(r io.Reader) (*scene.Texture, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("texture: invalid width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("texture: invalid height: %w", err)
	}
	maxVal, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("texture: invalid maxval: %w", err)
	}
	if maxVal <= 0 {
		return nil, fmt.Errorf("texture: invalid maxval %d", maxVal)
	}

	tex, err := scene.NewTexture(width, height)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}

	switch magic {
	case "P3":
		if err := decodeP3(br, tex, maxVal); err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
	case "P6":
		if err := decodeP6(br, tex, maxVal); err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
	default:
		return nil, fmt.Errorf("texture: unsupported PPM magic %q", magic)
	}

	return tex, nil
}

func decodeP3(br *bufio.Reader, tex *scene.Texture, maxVal int) error {
	for y := 0; y < tex.Height; y++ {
		for x := 0; x < tex.Width; x++ {
			r, err := readIntToken(br)
			if err != nil {
				return err
			}
			g, err := readIntToken(br)
			if err != nil {
				return err
			}
			b, err := readIntToken(br)
			if err != nil {
				return err
			}
			tex.Set(x, y, types.XYZ(float64(r)/float64(maxVal), float64(g)/float64(maxVal), float64(b)/float64(maxVal)))
		}
	}
	return nil
}

func decodeP6(br *bufio.Reader, tex *scene.Texture, maxVal int) error {
	bytesPerSample := 1
	if maxVal > 255 {
		bytesPerSample = 2
	}
	buf := make([]byte, bytesPerSample)

	readSample := func() (int, error) {
		if _, err := io.ReadFull(br, buf); err != nil {
			return 0, err
		}
		if bytesPerSample == 1 {
			return int(buf[0]), nil
		}
		return int(buf[0])<<8 | int(buf[1]), nil
	}

	for y := 0; y < tex.Height; y++ {
		for x := 0; x < tex.Width; x++ {
			r, err := readSample()
			if err != nil {
				return err
			}
			g, err := readSample()
			if err != nil {
				return err
			}
			b, err := readSample()
			if err != nil {
				return err
			}
			tex.Set(x, y, types.XYZ(float64(r)/float64(maxVal), float64(g)/float64(maxVal), float64(b)/float64(maxVal)))
		}
	}
	return nil
}

// readToken skips whitespace and "#" comment lines, then returns the next
// whitespace-delimited token, per the PPM header grammar.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if c == '#' {
			for {
				c, err = br.ReadByte()
				if err != nil {
					return "", err
				}
				if c == '\n' {
					break
				}
			}
			continue
		}
		if isSpace(c) {
			if len(tok) > 0 {
				return string(tok), nil
			}
			continue
		}
		tok = append(tok, c)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	var n int
	for _, c := range []byte(tok) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not an integer: %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
