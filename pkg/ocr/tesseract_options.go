package ocr

// tesseractOptions holds settings shared by the real and stub Tesseract
// engines so that callers compile identically with or without the
// "tesseract" build tag.
type tesseractOptions struct {
	language    string
	pageSegMode int
}

// TesseractOption configures the Tesseract engine.
type TesseractOption func(*tesseractOptions)

// WithLanguage sets the recognition language(s). Combine several with "+",
// e.g. "eng+deu". The default is "eng".
func WithLanguage(lang string) TesseractOption {
	return func(o *tesseractOptions) { o.language = lang }
}

// WithPageSegMode sets the Tesseract page segmentation mode (0-13). The
// default is 6, a single uniform block of text, which suits photographed
// documents. Out-of-range values are ignored.
func WithPageSegMode(mode int) TesseractOption {
	return func(o *tesseractOptions) {
		if mode < 0 || mode > 13 {
			return
		}
		o.pageSegMode = mode
	}
}

func defaultTesseractOptions() tesseractOptions {
	return tesseractOptions{
		language:    "eng",
		pageSegMode: 6,
	}
}
