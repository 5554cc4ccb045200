package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/utils"
)

const maxCVBytes = 10 << 20

var (
	errUnsupportedFormat = errors.New("unsupported file format, use PDF, DOC, DOCX, TXT or MD")
	errCVTooLarge        = errors.New("CV file exceeds 10MB")
	errUnreadableCV      = errors.New("could not read CV file")
	errSkillsUnavailable = errors.New("skill extraction is not configured")
)

// CVReader turns an uploaded CV into a normalized skill list
type CVReader struct {
	docs      *utils.DocumentExtractor
	extractor SkillExtractor
}

// NewCVReader creates a CV reader. A nil extractor disables skill extraction.
func NewCVReader(extractor SkillExtractor) *CVReader {
	return &CVReader{
		docs:      utils.NewDocumentExtractor(),
		extractor: extractor,
	}
}

// readUpload reads a multipart file up to maxCVBytes
func readUpload(header *multipart.FileHeader) ([]byte, error) {
	if header.Size > maxCVBytes {
		return nil, errCVTooLarge
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxCVBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > maxCVBytes {
		return nil, errCVTooLarge
	}
	return data, nil
}

// SkillsFromFile extracts skills from a CV file. PDFs without a text layer
// are sent to the model as documents.
func (r *CVReader) SkillsFromFile(ctx context.Context, filename string, data []byte) ([]string, error) {
	if !r.docs.IsSupportedFormat(filename) {
		return nil, errUnsupportedFormat
	}
	if r.extractor == nil {
		return nil, errSkillsUnavailable
	}

	text, err := r.docs.ExtractText(filename, data)
	if err != nil {
		if utils.IsPDF(data) {
			log.Printf("[CVReader] No text layer in %s (%v), using document extraction", filename, err)
			skills, err := r.extractor.ExtractSkillsFromPDF(ctx, data)
			if err != nil {
				return nil, err
			}
			return matching.NewSkillSet(skills).Skills(), nil
		}
		return nil, fmt.Errorf("%w: %v", errUnreadableCV, err)
	}

	return r.SkillsFromText(ctx, text)
}

// SkillsFromText extracts skills from plain CV text
func (r *CVReader) SkillsFromText(ctx context.Context, text string) ([]string, error) {
	if r.extractor == nil {
		return nil, errSkillsUnavailable
	}
	skills, err := r.extractor.ExtractSkills(ctx, text)
	if err != nil {
		return nil, err
	}
	return matching.NewSkillSet(skills).Skills(), nil
}

// cvErrorStatus maps a CV reading failure to an HTTP status: 400 for bad
// uploads, 503 when extraction is off and 502 for model failures.
func cvErrorStatus(err error) int {
	switch {
	case errors.Is(err, errUnsupportedFormat), errors.Is(err, errCVTooLarge), errors.Is(err, errUnreadableCV):
		return http.StatusBadRequest
	case errors.Is(err, errSkillsUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
