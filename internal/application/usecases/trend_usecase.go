package usecases

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/umrah-feedback/insights-api/internal/domain/entities"
	"github.com/umrah-feedback/insights-api/internal/utils"
)

// SurveyCorpusSource provides the raw survey records for one analysis run
type SurveyCorpusSource interface {
	GetSurveysSince(cutoff time.Time) ([]entities.Survey, error)
}

// TrendStore persists analysis snapshots with replace-by-range semantics and
// serves the stored history back to the dashboard
type TrendStore interface {
	DeleteByRange(trendRange string) error
	Insert(snapshot *entities.TrendHistory) error
	GetLatest() (*entities.TrendHistory, error)
	GetByRange(trendRange string) (*entities.TrendHistory, error)
}

// TrendAnalysisResult is the shaped output of one analysis run
type TrendAnalysisResult struct {
	TopProblems          []string                `json:"top_problems"`
	ProblemCounts        []entities.ProblemCount `json:"problem_counts"`
	Range                string                  `json:"range"`
	TotalSurveysAnalyzed int                     `json:"total_surveys_analyzed"`
}

// TrendUseCase implements the survey trend analysis: extract the free-text
// corpus for a time range, rank the top problems and persist the snapshot.
type TrendUseCase struct {
	surveys SurveyCorpusSource
	trends  TrendStore

	// Serializes delete-then-insert per range. Concurrent runs for different
	// ranges stay independent.
	mu         sync.Mutex
	rangeLocks map[string]*sync.Mutex

	now func() time.Time
}

// NewTrendUseCase creates a new TrendUseCase instance
func NewTrendUseCase(surveys SurveyCorpusSource, trends TrendStore) *TrendUseCase {
	return &TrendUseCase{
		surveys:    surveys,
		trends:     trends,
		rangeLocks: make(map[string]*sync.Mutex),
		now:        func() time.Time { return time.Now().In(utils.GetRiyadhLocation()) },
	}
}

// NormalizeRange maps unknown range tokens to the default "1m"
func NormalizeRange(trendRange string) string {
	switch trendRange {
	case entities.TrendRangeHalfYear, entities.TrendRangeYear:
		return trendRange
	default:
		return entities.TrendRangeMonth
	}
}

// resolveCutoff computes the oldest submission time included in a range,
// using calendar month/year arithmetic.
func resolveCutoff(trendRange string, now time.Time) time.Time {
	switch trendRange {
	case entities.TrendRangeHalfYear:
		return now.AddDate(0, -6, 0)
	case entities.TrendRangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

func (u *TrendUseCase) lockRange(trendRange string) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()

	lock, exists := u.rangeLocks[trendRange]
	if !exists {
		lock = &sync.Mutex{}
		u.rangeLocks[trendRange] = lock
	}

	return lock
}

// AnalyzeTrends runs the full analysis for one range and replaces the stored
// snapshot for that range. Unknown range tokens fall back to "1m".
func (u *TrendUseCase) AnalyzeTrends(trendRange string) (*TrendAnalysisResult, error) {
	trendRange = NormalizeRange(trendRange)

	lock := u.lockRange(trendRange)
	lock.Lock()
	defer lock.Unlock()

	now := u.now()
	cutoff := resolveCutoff(trendRange, now)

	surveys, err := u.surveys.GetSurveysSince(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch surveys for analysis: %w", err)
	}

	log.Printf("📊 Found %d surveys for analysis (range %s)", len(surveys), trendRange)

	corpus := collectTextResponses(surveys)
	counts := analyzeProblems(corpus)

	topProblems := make([]string, len(counts))
	for i, item := range counts {
		topProblems[i] = item.Problem
	}

	// Clear previous snapshots for this range before saving the new one. A
	// failed delete only risks stale rows, so it is logged and not fatal.
	if err := u.trends.DeleteByRange(trendRange); err != nil {
		log.Printf("⚠️ Error clearing previous trend history: %v", err)
	}

	snapshot := &entities.TrendHistory{
		Range: trendRange,
		Problems: entities.TrendProblems{
			List:   topProblems,
			Counts: counts,
		},
		AnalysedAt: now,
	}

	if err := u.trends.Insert(snapshot); err != nil {
		return nil, fmt.Errorf("failed to save trend history: %w", err)
	}

	return &TrendAnalysisResult{
		TopProblems:          topProblems,
		ProblemCounts:        counts,
		Range:                trendRange,
		TotalSurveysAnalyzed: len(surveys),
	}, nil
}

// GetRecentTrends returns the newest stored snapshot, for one range when a
// token is given or across all ranges otherwise
func (u *TrendUseCase) GetRecentTrends(trendRange string) (*entities.TrendHistory, error) {
	if trendRange == "" {
		return u.trends.GetLatest()
	}

	return u.trends.GetByRange(NormalizeRange(trendRange))
}
