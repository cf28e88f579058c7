package classify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"moabook/cardsheet/internal/logging"
	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsererror"
)

// GeminiClassifier implements Classifier against the Google Gemini API. The
// model is asked to answer one "index: category" line per request item,
// constrained to the closed category set for the transaction kind.
type GeminiClassifier struct {
	apiKey string
	model  string
	log    logging.Logger
}

// NewGeminiClassifier creates a Gemini-backed classifier.
func NewGeminiClassifier(apiKey, model string, logger logging.Logger) *GeminiClassifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &GeminiClassifier{
		apiKey: apiKey,
		model:  model,
		log:    logger,
	}
}

// Classify sends one batch request per partition. Collaborator failures come
// back as a typed CLASSIFICATION_UNAVAILABLE error so the caller can abort
// the whole-file classification step instead of persisting a partial result.
func (c *GeminiClassifier) Classify(ctx context.Context, kind models.TransactionKind, items []Item) (map[int]string, error) {
	if len(items) == 0 {
		return map[int]string{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, &parsererror.ClassificationUnavailableError{Kind: string(kind), Err: err}
	}
	defer func() {
		_ = client.Close()
	}()

	model := client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(c.buildPrompt(kind, items)))
	if err != nil {
		return nil, &parsererror.ClassificationUnavailableError{Kind: string(kind), Err: err}
	}

	requested := make(map[int]bool, len(items))
	for _, item := range items {
		requested[item.Index] = true
	}
	result := c.parseResponse(kind, extractText(resp), requested)
	c.log.WithFields(
		logging.Field{Key: logging.FieldKind, Value: string(kind)},
		logging.Field{Key: logging.FieldCount, Value: len(result)},
	).Debug("Gemini classification completed")
	return result, nil
}

func (c *GeminiClassifier) buildPrompt(kind models.TransactionKind, items []Item) string {
	categories := models.ExpenseCategories
	noun := "지출"
	if kind == models.KindIncome {
		categories = models.IncomeCategories
		noun = "수입"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "다음 %s 내역을 아래 카테고리 중 하나로 분류해줘.\n", noun)
	fmt.Fprintf(&b, "카테고리: %s\n\n", strings.Join(categories, ", "))
	b.WriteString("각 항목에 대해 \"번호: 카테고리\" 형식으로 한 줄씩만 답해줘.\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%d. %s (%d원)\n", item.Index, item.Merchant, item.Amount)
	}
	return b.String()
}

// parseResponse reads "index: category" lines. Unknown category names and
// indices outside the request are dropped; omitted indices simply keep their
// prior category on the caller's side.
func (c *GeminiClassifier) parseResponse(kind models.TransactionKind, text string, requested map[int]bool) map[int]string {
	result := make(map[int]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idxStr, category, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(idxStr), ".")))
		if err != nil {
			continue
		}
		if !requested[idx] {
			c.log.WithField(logging.FieldRow, idx).Debug("Dropping response index outside the request")
			continue
		}
		category = strings.TrimSpace(category)
		if !models.IsValidCategory(kind, category) {
			c.log.WithField(logging.FieldCategory, category).Debug("Dropping unknown category from response")
			continue
		}
		result[idx] = category
	}
	return result
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
