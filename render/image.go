package render

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/h2non/filetype"
	"github.com/nfnt/resize"

	"github.com/theiskaa/markdown2pdf/pdfdoc"
	"github.com/theiskaa/markdown2pdf/style"
	"github.com/theiskaa/markdown2pdf/token"
)

// maxImageWidthPt bounds how wide a decoded image is allowed to render,
// mirroring pgavlin-markdown-kit's renderImage thumbnailing (it calls
// resize.Thumbnail against a fixed max width before emitting the image).
const maxImageWidthPt = 400

// resolveImage reads t.URL as a local file path, sniffs its format with
// h2non/filetype, decodes it with the matching stdlib image package, and
// scales it down to maxImageWidthPt when it is wider. Any failure along
// this chain degrades to "unresolved" rather than an error — the caller
// falls back to alt text.
func resolveImage(t token.Token) (pdfdoc.Image, bool) {
	data, err := os.ReadFile(t.URL)
	if err != nil {
		return pdfdoc.Image{}, false
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return pdfdoc.Image{}, false
	}

	format := kind.Extension
	img, decodedFormat, err := decodeImage(data, format)
	if err != nil {
		return pdfdoc.Image{}, false
	}

	bounds := img.Bounds()
	w, h := uint(bounds.Dx()), uint(bounds.Dy())
	if w > maxImageWidthPt {
		img = resize.Thumbnail(maxImageWidthPt, h, img, resize.Bicubic)
		bounds = img.Bounds()
		w, h = uint(bounds.Dx()), uint(bounds.Dy())
	}

	var out bytes.Buffer
	if err := encodeImage(&out, img, decodedFormat); err != nil {
		return pdfdoc.Image{}, false
	}

	return pdfdoc.Image{
		Bytes:    out.Bytes(),
		Format:   decodedFormat,
		Alt:      t.Text,
		WidthPt:  float32(w),
		HeightPt: float32(h),
	}, true
}

func decodeImage(data []byte, format string) (image.Image, string, error) {
	r := bytes.NewReader(data)
	switch format {
	case "png":
		img, err := png.Decode(r)
		return img, "png", err
	case "jpg", "jpeg":
		img, err := jpeg.Decode(r)
		return img, "jpg", err
	case "gif":
		img, err := gif.Decode(r)
		return img, "gif", err
	default:
		return nil, "", fmt.Errorf("unsupported image format %q", format)
	}
}

func encodeImage(w *bytes.Buffer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpg":
		return jpeg.Encode(w, img, nil)
	case "gif":
		return gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// renderImage implements the Image row of the inline dispatch table: it
// resolves and decodes the target, pushing it as its own pdfdoc.Image
// element sandwiched between whatever paragraph runs came before and
// after it, or falls back to alt text appended as a plain run.
func (w *walker) renderImage(t token.Token, base style.BasicTextStyle, p *pdfdoc.Paragraph) {
	img, ok := resolveImage(t)
	if !ok {
		w.r.warn(fmt.Sprintf("image %q could not be resolved, using alt text", t.URL))
		p.PushStyled(t.Text, base)
		return
	}
	img.Style = w.r.style.Image

	if len(p.Runs) > 0 {
		w.doc.PushParagraph(p)
		p.Runs = nil
	}
	w.doc.PushImage(img)
}
