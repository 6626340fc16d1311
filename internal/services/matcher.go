package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"

	"go.uber.org/zap"

	"resume-matcher/internal/models"
)

// MatcherService runs the whole scoring pipeline for one request: stage
// uploads, extract, normalize, score, tier, rank.
type MatcherService interface {
	Match(ctx context.Context, jobDescription string, files []*multipart.FileHeader) (*models.MatchResponse, error)
}

type matcherService struct {
	storage     StorageService
	extractor   ExtractorService
	engine      SimilarityEngine
	topResults  int
	concurrency int
	logger      *zap.Logger
}

func NewMatcherService(
	storage StorageService,
	extractor ExtractorService,
	engine SimilarityEngine,
	topResults int,
	concurrency int,
	logger *zap.Logger,
) MatcherService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &matcherService{
		storage:     storage,
		extractor:   extractor,
		engine:      engine,
		topResults:  topResults,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Match scores every uploaded resume against the job description. Per-file
// failures (save, extraction) degrade that resume to empty text and the
// batch continues; only a degenerate corpus aborts the request.
func (m *matcherService) Match(ctx context.Context, jobDescription string, files []*multipart.FileHeader) (*models.MatchResponse, error) {
	names := make([]string, len(files))
	resumeTexts := make([]string, len(files))

	// Extraction is independent per file; fan out with a bounded number of
	// goroutines and write results by index so upload order survives.
	var wg sync.WaitGroup
	sem := make(chan struct{}, m.concurrency)

	for i, file := range files {
		wg.Add(1)
		go func(i int, file *multipart.FileHeader) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			names[i] = file.Filename
			resumeTexts[i] = Normalize(m.stageAndExtract(file))
		}(i, file)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	corpus := make([]string, 0, len(files)+1)
	corpus = append(corpus, Normalize(jobDescription))
	corpus = append(corpus, resumeTexts...)

	similarities, err := m.engine.Score(corpus)
	if err != nil {
		return nil, fmt.Errorf("similarity scoring failed: %w", err)
	}

	results := AssembleResults(names, similarities)

	m.logger.Info("match complete",
		zap.Int("resumes", len(files)),
		zap.Int("returned", len(TopResults(results, m.topResults))),
	)

	return &models.MatchResponse{
		Message:   "Analysis Complete. Top Matches:",
		Results:   TopResults(results, m.topResults),
		ChartData: ChartSeries(results),
	}, nil
}

// stageAndExtract writes one upload to the staging dir and extracts its
// text. Any failure is logged and reduces the file to empty text; one bad
// file must not block scoring of the others.
func (m *matcherService) stageAndExtract(file *multipart.FileHeader) string {
	_, filePath, err := m.storage.SaveFile(file)
	if err != nil {
		m.logger.Warn("failed to stage upload",
			zap.String("file", file.Filename),
			zap.Error(err),
		)
		return ""
	}

	return m.extractor.Extract(filePath).Text
}
