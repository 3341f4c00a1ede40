package extract

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/0xjaydeep/debrokly/internal/domain/statement"
)

// Service runs the full pipeline over one parsed document: detect the
// bank, run the selected strategy, normalize the candidates. A document
// yielding zero transactions is a valid outcome, not a failure; whether
// that is an error is the caller's call.
type Service struct {
	detector *Detector
	registry *Registry
	logger   *slog.Logger
}

// NewService wires a detector and strategy registry into a pipeline.
func NewService(detector *Detector, registry *Registry, logger *slog.Logger) *Service {
	return &Service{
		detector: detector,
		registry: registry,
		logger:   logger,
	}
}

// NewDefaultService builds a service with the built-in marker sets.
func NewDefaultService(logger *slog.Logger) *Service {
	return NewService(
		NewDetector(DefaultBankMarkers()),
		DefaultRegistry(DefaultHeaderMarkers()),
		logger,
	)
}

// Run extracts the canonical transaction list from a document. The
// pipeline is deterministic: the same document always yields the same
// list in the same order.
func (s *Service) Run(doc *statement.ParsedDocument) []statement.Transaction {
	runID := uuid.New()
	if doc == nil {
		doc = &statement.ParsedDocument{}
	}

	bank := s.detector.Detect(doc)
	strategy := s.registry.Get(bank)
	s.logger.Debug("bank detected",
		"runID", runID, "bank", bank, "strategy", strategy.Bank())

	candidates := strategy.Extract(doc)
	txns := Normalize(candidates)

	s.logger.Info("extraction complete",
		"runID", runID,
		"bank", bank,
		"pages", pageCount(doc),
		"candidates", len(candidates),
		"transactions", len(txns))
	return txns
}

func pageCount(doc *statement.ParsedDocument) int {
	if doc == nil {
		return 0
	}
	return len(doc.Pages)
}
