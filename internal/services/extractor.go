package services

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Format is the detected document format, derived from the file extension.
type Format string

const (
	FormatPDF       Format = "pdf"
	FormatDOCX      Format = "docx"
	FormatPlainText Format = "txt"
	FormatUnknown   Format = "unknown"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")

	docxTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// Extraction is the per-file outcome. A failed extraction carries the error
// kind and empty text; it never aborts the rest of the batch.
type Extraction struct {
	Text   string
	Format Format
	Err    error
}

func (e Extraction) OK() bool {
	return e.Err == nil
}

type ExtractorService interface {
	Extract(filePath string) Extraction
}

type extractorService struct {
	logger *zap.Logger
}

func NewExtractorService(logger *zap.Logger) ExtractorService {
	return &extractorService{logger: logger}
}

// DetectFormat maps a filename extension to a document format.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".txt":
		return FormatPlainText
	default:
		return FormatUnknown
	}
}

// Extract produces plain text from a staged document. Failures are isolated:
// the returned Extraction has empty text and a non-nil Err, and the failure
// is logged at warn level.
func (e *extractorService) Extract(filePath string) Extraction {
	format := DetectFormat(filePath)

	var (
		text string
		err  error
	)

	switch format {
	case FormatPDF:
		text, err = extractPDF(filePath)
	case FormatDOCX:
		text, err = extractDOCX(filePath)
	case FormatPlainText:
		text, err = extractTXT(filePath)
	default:
		err = ErrUnsupportedFormat
	}

	if err != nil {
		e.logger.Warn("text extraction failed",
			zap.String("file", filePath),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		return Extraction{Format: format, Err: err}
	}

	return Extraction{Text: text, Format: format}
}

func extractPDF(filePath string) (text string, err error) {
	// The pdf package panics on some malformed inputs. Extraction runs in
	// goroutines outside the HTTP recover middleware, so contain it here.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that cannot be decoded contributes nothing.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

// extractDOCX pulls text out of word/document.xml. Paragraph closers become
// newlines before the remaining tags are stripped.
func extractDOCX(filePath string) (string, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to read DOCX body: %w", err)
		}

		data, err := readAllAndClose(rc)
		if err != nil {
			return "", fmt.Errorf("failed to read DOCX body: %w", err)
		}

		body := strings.ReplaceAll(string(data), "</w:p>", "\n")
		body = strings.ReplaceAll(body, "<w:tab/>", "\t")
		return docxTagPattern.ReplaceAllString(body, " "), nil
	}

	return "", errors.New("no document.xml found in docx")
}

func readAllAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func extractTXT(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(data), nil
}
