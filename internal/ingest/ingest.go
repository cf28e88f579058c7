// Package ingest wires the full leaf-to-root pipeline for one uploaded
// statement file: raw bytes → decrypted grid → detected parser → canonical
// rows → billing month → classification partition → merged category map →
// final persistable records.
package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"moabook/cardsheet/internal/billing"
	"moabook/cardsheet/internal/classify"
	"moabook/cardsheet/internal/config"
	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parser"
	"moabook/cardsheet/internal/parsererror"
	"moabook/cardsheet/internal/sheet"
	"moabook/cardsheet/internal/store"
)

// Service runs statement ingestion. The classifier may be nil, in which case
// rows keep their rule-pinned or default categories.
type Service struct {
	cfg        *config.Config
	registry   *parser.Registry
	classifier classify.Classifier
	rules      *store.RuleStore
	log        logging.Logger
}

// Result is the outcome of ingesting one file.
type Result struct {
	Outcome      *models.ParseOutcome
	BillingMonth string
	FileID       string
	Records      []models.Record
}

// New creates an ingestion service.
func New(cfg *config.Config, registry *parser.Registry, classifier classify.Classifier, rules *store.RuleStore, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Service{
		cfg:        cfg,
		registry:   registry,
		classifier: classifier,
		rules:      rules,
		log:        logger,
	}
}

// Ingest converts one statement file into persistable records. File-level
// failures (decryption, format detection, structural parsing) abort the file
// and come back typed; classification failure aborts the classification step
// for the whole file rather than persisting a partial mix of categorized and
// uncategorized rows.
func (s *Service) Ingest(ctx context.Context, data []byte, filename string) (*Result, error) {
	log := s.log.WithField(logging.FieldFile, filename)

	grid, err := sheet.Open(data, filename, s.cfg.PasswordFor(filename))
	if err != nil {
		log.WithError(err).Error("Failed to open workbook")
		return &Result{Outcome: failedOutcome(err)}, err
	}

	p, err := s.registry.Detect(filename, grid)
	if err != nil {
		return &Result{Outcome: failedOutcome(err)}, err
	}

	outcome, err := p.Parse(grid, filename)
	if err != nil {
		return &Result{Outcome: outcome}, err
	}

	billingMonth, found := billing.MonthFromFilename(filename)
	if !found {
		billingMonth, _ = billing.MonthFromRows(outcome.Rows)
	}
	log.WithField(logging.FieldMonth, billingMonth).Debug("Resolved billing month")

	ruleCategories := s.applyRules(outcome.Rows)
	partition := classify.Prepare(effectiveRows(outcome.Rows, ruleCategories), classify.Mode(s.cfg.Classification.Mode))

	merged, err := s.classifyPartition(ctx, partition)
	if err != nil {
		return &Result{Outcome: outcome, BillingMonth: billingMonth}, err
	}

	// User rules outrank classifier output, and preset rows were never sent
	// out in the first place.
	for idx, category := range ruleCategories {
		merged[idx] = category
	}

	fileID := uuid.New().String()
	records := BuildRecords(outcome.Rows, merged, partition.InstallmentIndices, billingMonth, fileID, s.cfg.OwnerFor(filename), outcome.SourceTag)

	log.WithField(logging.FieldCount, len(records)).Info("Ingested statement file")
	return &Result{
		Outcome:      outcome,
		BillingMonth: billingMonth,
		FileID:       fileID,
		Records:      records,
	}, nil
}

// applyRules resolves the user mapping rules for each non-installment row.
func (s *Service) applyRules(rows []models.CanonicalRow) map[int]string {
	pinned := make(map[int]string)
	if s.rules == nil {
		return pinned
	}
	for i, row := range rows {
		if row.IsInstallment {
			continue
		}
		if category, found := s.rules.Lookup(row.Kind, row.Merchant); found {
			pinned[i] = category
		}
	}
	return pinned
}

// classifyPartition issues the expense-kind and income-kind requests
// concurrently; the partitions are index-disjoint and independent. Either
// failure aborts the classification step as a whole.
func (s *Service) classifyPartition(ctx context.Context, partition classify.Partition) (map[int]string, error) {
	if s.classifier == nil {
		return map[int]string{}, nil
	}

	if s.cfg.AI.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.AI.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	var (
		wg         sync.WaitGroup
		expenseMap map[int]string
		incomeMap  map[int]string
		expenseErr error
		incomeErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		expenseMap, expenseErr = s.classifier.Classify(ctx, models.KindExpense, partition.Expense)
	}()
	go func() {
		defer wg.Done()
		incomeMap, incomeErr = s.classifier.Classify(ctx, models.KindIncome, partition.Income)
	}()
	wg.Wait()

	if expenseErr != nil {
		return nil, expenseErr
	}
	if incomeErr != nil {
		return nil, incomeErr
	}
	return classify.MergeCategoryMaps(expenseMap, incomeMap), nil
}

// effectiveRows overlays rule-pinned categories without touching the parsed
// rows; defaultOnly partitioning needs to see the pinned category to record
// the row as preset.
func effectiveRows(rows []models.CanonicalRow, pinned map[int]string) []models.CanonicalRow {
	if len(pinned) == 0 {
		return rows
	}
	out := make([]models.CanonicalRow, len(rows))
	copy(out, rows)
	for idx, category := range pinned {
		out[idx].Category = category
	}
	return out
}

func failedOutcome(err error) *models.ParseOutcome {
	return models.FailedOutcome("", string(parsererror.KindOf(err)), err.Error())
}
