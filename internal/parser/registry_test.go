package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moabook/cardsheet/internal/models"
	"moabook/cardsheet/internal/parsererror"
)

func TestDetectByHeader(t *testing.T) {
	registry := DefaultRegistry(nil)

	tests := []struct {
		name     string
		grid     [][]string
		expected string
	}{
		{
			name:     "hyundai",
			grid:     [][]string{{"이용일", "이용가맹점", "할인금액", "결제원금"}},
			expected: string(models.SourceHyundai),
		},
		{
			name:     "samsung",
			grid:     [][]string{{"이용일", "가맹점명", "할인금액", "이용금액"}},
			expected: string(models.SourceSamsung),
		},
		{
			name:     "lotte",
			grid:     [][]string{{"이용일자", "이용가맹점", "할인금액", "이용금액"}},
			expected: string(models.SourceLotte),
		},
		{
			name:     "kb",
			grid:     [][]string{{"거래일시", "내용", "출금액", "입금액"}},
			expected: string(models.SourceKB),
		},
		{
			name:     "onnuri",
			grid:     [][]string{{"순번", "결제일", "가맹점", "결제금액", "상태"}},
			expected: string(models.SourceOnnuri),
		},
		{
			name:     "seongnam",
			grid:     [][]string{{"순번", "거래일자", "가맹점", "거래금액", "처리상태"}},
			expected: string(models.SourceSeongnam),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The neutral filename forces header-based detection.
			p, err := registry.Detect("data.xlsx", tt.grid)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Name())
		})
	}
}

func TestDetectByFilename(t *testing.T) {
	registry := DefaultRegistry(nil)

	p, err := registry.Detect("현대카드_202503.xlsx", [][]string{{"아직 헤더 없음"}})
	require.NoError(t, err)
	assert.Equal(t, string(models.SourceHyundai), p.Name())
}

func TestDetectExactlyOneAcceptor(t *testing.T) {
	registry := DefaultRegistry(nil)

	// Each source's header must satisfy only its own parser's probe.
	headers := map[string][][]string{
		string(models.SourceHyundai):  {{"이용일", "이용가맹점", "할인금액", "결제원금"}},
		string(models.SourceSamsung):  {{"이용일", "가맹점명", "할인금액", "이용금액"}},
		string(models.SourceLotte):    {{"이용일자", "이용가맹점", "할인금액", "이용금액"}},
		string(models.SourceKB):       {{"거래일시", "내용", "출금액", "입금액"}},
		string(models.SourceOnnuri):   {{"순번", "결제일", "가맹점", "결제금액", "상태"}},
		string(models.SourceSeongnam): {{"순번", "거래일자", "가맹점", "거래금액", "처리상태"}},
	}

	for expected, grid := range headers {
		acceptors := 0
		for _, p := range registry.Parsers() {
			if p.CanParse("data.xlsx", grid) {
				acceptors++
				assert.Equal(t, expected, p.Name())
			}
		}
		assert.Equal(t, 1, acceptors, "header for %s", expected)
	}
}

func TestDetectUnrecognizedFormat(t *testing.T) {
	registry := DefaultRegistry(nil)

	grid := [][]string{{"이건", "아무", "형식도", "아님"}}
	_, err := registry.Detect("data.xlsx", grid)

	var unrecognized *parsererror.UnrecognizedFormatError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, parsererror.KindUnrecognizedFormat, parsererror.KindOf(err))
}

func TestDetectEmptyGrid(t *testing.T) {
	registry := DefaultRegistry(nil)

	_, err := registry.Detect("data.xlsx", nil)
	var unrecognized *parsererror.UnrecognizedFormatError
	require.ErrorAs(t, err, &unrecognized)
}

func TestDefaultRegistryOrder(t *testing.T) {
	registry := DefaultRegistry(nil)

	var names []string
	for _, p := range registry.Parsers() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{
		string(models.SourceOnnuri),
		string(models.SourceSeongnam),
		string(models.SourceHyundai),
		string(models.SourceSamsung),
		string(models.SourceLotte),
		string(models.SourceKB),
	}, names)
}
