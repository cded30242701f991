package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"tech-oh/internal/domain"
	"tech-oh/internal/logger"
	"tech-oh/internal/metrics"
	"tech-oh/internal/repository"
	"tech-oh/internal/validator"
)

// TimeFormat is the timestamp layout used in CSV exports.
const TimeFormat = time.RFC3339

var csvHeader = []string{"id", "title", "excerpt", "content", "category", "status", "created_at", "updated_at"}

// ExportService streams an author's articles as NDJSON or CSV.
type ExportService struct {
	repo      repository.ArticleRepository
	validator *validator.Validator
}

// NewExportService creates a new ExportService.
func NewExportService(repo repository.ArticleRepository) *ExportService {
	return &ExportService{repo: repo, validator: validator.NewValidator()}
}

// StreamArticles writes the author's articles oldest first, flushing after every
// record, and returns how many were written. An unknown format defaults to NDJSON.
func (s *ExportService) StreamArticles(ctx context.Context, authorID, format string, writer StreamWriter) (count int, err error) {
	if err := s.validator.ValidateIdentityID("author_id", authorID); err != nil {
		return 0, err
	}
	format = domain.NormalizeFormat(format)

	metrics.StartExport()
	start := time.Now()
	defer func() {
		metrics.EndExport(format, metrics.ResultOf(err), time.Since(start).Seconds(), count)
	}()

	log := logger.FromContext(ctx)
	log.InfoContext(ctx, "article export started", "author_id", authorID, "format", format)

	var encode func(domain.Article) ([]byte, error)
	if format == domain.FormatCSV {
		header, err := csvLine(csvHeader)
		if err != nil {
			return 0, err
		}
		if err := writer.Write(header); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
		encode = encodeCSV
	} else {
		encode = encodeNDJSON
	}

	err = s.repo.StreamByAuthor(ctx, authorID, func(a domain.Article) error {
		line, err := encode(a)
		if err != nil {
			return err
		}
		if err := writer.Write(line); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
		writer.Flush()
		count++
		return nil
	})
	if err != nil {
		logFailure(ctx, "article export failed", err, "author_id", authorID, "written", count)
		return count, fmt.Errorf("stream articles: %w", err)
	}

	log.InfoContext(ctx, "article export completed", "author_id", authorID, "format", format, "count", count)
	return count, nil
}

func encodeNDJSON(a domain.Article) ([]byte, error) {
	line, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(line, '\n'), nil
}

func encodeCSV(a domain.Article) ([]byte, error) {
	return csvLine([]string{
		a.ID,
		a.Title,
		deref(a.Excerpt),
		a.Content,
		deref(a.Category),
		string(a.Status),
		a.CreatedAt.Format(TimeFormat),
		a.UpdatedAt.Format(TimeFormat),
	})
}

// csvLine renders one CSV record including quoting and the trailing newline.
func csvLine(record []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(record); err != nil {
		return nil, fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write row: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
