package models

// SourceTag identifies the statement layout a file was parsed with.
type SourceTag string

const (
	SourceHyundai  SourceTag = "hyundai"
	SourceKB       SourceTag = "kb"
	SourceLotte    SourceTag = "lotte"
	SourceSamsung  SourceTag = "samsung"
	SourceOnnuri   SourceTag = "onnuri"
	SourceSeongnam SourceTag = "seongnam"
)

// SourceDisplayNames maps source tags to the names shown to users.
var SourceDisplayNames = map[SourceTag]string{
	SourceHyundai:  "현대카드",
	SourceKB:       "KB국민은행",
	SourceLotte:    "롯데카드",
	SourceSamsung:  "삼성카드",
	SourceOnnuri:   "온누리상품권",
	SourceSeongnam: "성남사랑상품권",
}

// Reserved categories. CategoryInstallment is a structural tag: rows inside a
// recognized installment section always carry it and are never reclassified.
const (
	CategoryUncategorizedExpense = "미분류지출"
	CategoryUncategorizedIncome  = "미분류수입"
	CategoryInstallment          = "기존할부"
)

// ExpenseCategories is the closed set of expense category tags the classifier
// may assign.
var ExpenseCategories = []string{
	"식비",
	"카페/간식",
	"교통/차량",
	"쇼핑",
	"생활용품",
	"주거/통신",
	"의료/건강",
	"문화/여가",
	"교육",
	"경조/선물",
	"여행",
	"보험/금융",
	CategoryUncategorizedExpense,
}

// IncomeCategories is the closed set of income category tags.
var IncomeCategories = []string{
	"급여",
	"용돈",
	"금융수입",
	"기타수입",
	CategoryUncategorizedIncome,
}

// DefaultCategory returns the generic default tag for a transaction kind.
func DefaultCategory(kind TransactionKind) string {
	if kind == KindIncome {
		return CategoryUncategorizedIncome
	}
	return CategoryUncategorizedExpense
}

// IsValidCategory reports whether name belongs to the closed category set for
// the given kind. The installment category is structural and valid for
// expenses only.
func IsValidCategory(kind TransactionKind, name string) bool {
	if kind == KindExpense && name == CategoryInstallment {
		return true
	}
	set := ExpenseCategories
	if kind == KindIncome {
		set = IncomeCategories
	}
	for _, c := range set {
		if c == name {
			return true
		}
	}
	return false
}

// OwnerShared is the fallback owner tag when no filename pattern matches.
const OwnerShared = "공용"
