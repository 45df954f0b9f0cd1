package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/umrah-feedback/insights-api/internal/domain/entities"
)

type stubSurveySource struct {
	surveys    []entities.Survey
	err        error
	lastCutoff time.Time
	calls      int
}

func (s *stubSurveySource) GetSurveysSince(cutoff time.Time) ([]entities.Survey, error) {
	s.calls++
	s.lastCutoff = cutoff
	if s.err != nil {
		return nil, s.err
	}
	return s.surveys, nil
}

type stubTrendStore struct {
	rows      []entities.TrendHistory
	deleteErr error
	insertErr error
	deletes   int
	inserts   int
}

func (s *stubTrendStore) DeleteByRange(trendRange string) error {
	s.deletes++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	kept := s.rows[:0]
	for _, row := range s.rows {
		if row.Range != trendRange {
			kept = append(kept, row)
		}
	}
	s.rows = kept
	return nil
}

func (s *stubTrendStore) Insert(snapshot *entities.TrendHistory) error {
	s.inserts++
	if s.insertErr != nil {
		return s.insertErr
	}
	s.rows = append(s.rows, *snapshot)
	return nil
}

func (s *stubTrendStore) GetLatest() (*entities.TrendHistory, error) {
	if len(s.rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}
	latest := s.rows[0]
	for _, row := range s.rows[1:] {
		if row.AnalysedAt.After(latest.AnalysedAt) {
			latest = row
		}
	}
	return &latest, nil
}

func (s *stubTrendStore) GetByRange(trendRange string) (*entities.TrendHistory, error) {
	for i := len(s.rows) - 1; i >= 0; i-- {
		if s.rows[i].Range == trendRange {
			row := s.rows[i]
			return &row, nil
		}
	}
	return nil, fmt.Errorf("no rows for range %s", trendRange)
}

func textSurvey(createdAt time.Time, texts ...string) entities.Survey {
	var responses []entities.ResponseItem
	for _, text := range texts {
		responses = append(responses, entities.ResponseItem{Type: "text", Value: text})
	}
	return entities.Survey{
		Title:     "Umrah Feedback",
		Answers:   entities.SurveyAnswers{Responses: responses},
		CreatedAt: createdAt,
	}
}

func newTestUseCase(source *stubSurveySource, store *stubTrendStore, now time.Time) *TrendUseCase {
	u := NewTrendUseCase(source, store)
	u.now = func() time.Time { return now }
	return u
}

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func TestAnalyzeAlwaysReturnsFiveProblems(t *testing.T) {
	cases := []struct {
		name    string
		surveys []entities.Survey
	}{
		{"empty corpus", nil},
		{"no text answers", []entities.Survey{{
			Answers: entities.SurveyAnswers{Responses: []entities.ResponseItem{
				{Type: "rating", Value: float64(4)},
				{Type: "checkbox", Value: []interface{}{"a", "b"}},
				{Type: "text", Value: "   "},
			}},
		}}},
		{"one real phrase", []entities.Survey{textSurvey(testNow, "the queue was terrible")}},
		{"many real phrases", []entities.Survey{textSurvey(testNow,
			"alpha problem one", "beta problem two", "gamma problem three",
			"delta problem four", "epsilon problem five", "zeta problem six",
			"eta problem seven",
		)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := newTestUseCase(&stubSurveySource{surveys: tc.surveys}, &stubTrendStore{}, testNow)
			result, err := u.AnalyzeTrends("1m")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.TopProblems) != 5 {
				t.Errorf("top_problems has %d entries, want 5", len(result.TopProblems))
			}
			if len(result.ProblemCounts) != 5 {
				t.Errorf("problem_counts has %d entries, want 5", len(result.ProblemCounts))
			}
		})
	}
}

func TestRankOrderingAndMonotonicity(t *testing.T) {
	u := newTestUseCase(&stubSurveySource{surveys: []entities.Survey{
		textSurvey(testNow, "big delay at the gate", "big delay at the gate", "the signage was confusing"),
	}}, &stubTrendStore{}, testNow)

	result, err := u.AnalyzeTrends("1m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, item := range result.ProblemCounts {
		if item.Rank != i+1 {
			t.Errorf("counts[%d].rank = %d, want %d", i, item.Rank, i+1)
		}
		if i > 0 && result.ProblemCounts[i-1].Count < item.Count {
			t.Errorf("counts not descending at %d: %d < %d", i, result.ProblemCounts[i-1].Count, item.Count)
		}
		if result.TopProblems[i] != item.Problem {
			t.Errorf("top_problems[%d] = %q, want %q", i, result.TopProblems[i], item.Problem)
		}
	}
}

func TestEmptyCorpusYieldsFallbackListInOrder(t *testing.T) {
	u := newTestUseCase(&stubSurveySource{}, &stubTrendStore{}, testNow)

	result, err := u.AnalyzeTrends("1m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCounts := []int{50, 45, 40, 35, 30}
	for i, fallback := range fallbackProblems {
		if result.TopProblems[i] != fallback {
			t.Errorf("top_problems[%d] = %q, want %q", i, result.TopProblems[i], fallback)
		}
		if result.ProblemCounts[i].Count != wantCounts[i] {
			t.Errorf("counts[%d].count = %d, want %d", i, result.ProblemCounts[i].Count, wantCounts[i])
		}
	}
}

func TestPositiveResponsesExtractNothing(t *testing.T) {
	u := newTestUseCase(&stubSurveySource{surveys: []entities.Survey{
		textSurvey(testNow, "Everything was wonderful and smooth", "Truly a beautiful experience"),
	}}, &stubTrendStore{}, testNow)

	result, err := u.AnalyzeTrends("1m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No indicator matches, so the result is the pure fallback list
	for i, fallback := range fallbackProblems {
		if result.TopProblems[i] != fallback {
			t.Errorf("top_problems[%d] = %q, want fallback %q", i, result.TopProblems[i], fallback)
		}
	}
	if result.TotalSurveysAnalyzed != 1 {
		t.Errorf("total_surveys_analyzed = %d, want 1", result.TotalSurveysAnalyzed)
	}
}

func TestRepeatedAnalysisReplacesSnapshot(t *testing.T) {
	store := &stubTrendStore{}
	u := newTestUseCase(&stubSurveySource{}, store, testNow)

	if _, err := u.AnalyzeTrends("6m"); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := u.AnalyzeTrends("6m"); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	rows := 0
	for _, row := range store.rows {
		if row.Range == "6m" {
			rows++
		}
	}
	if rows != 1 {
		t.Errorf("store holds %d rows for range 6m, want 1", rows)
	}
}

func TestDeleteFailureIsNotFatal(t *testing.T) {
	store := &stubTrendStore{deleteErr: fmt.Errorf("connection reset")}
	u := newTestUseCase(&stubSurveySource{}, store, testNow)

	result, err := u.AnalyzeTrends("1m")
	if err != nil {
		t.Fatalf("analysis should survive a failed delete, got: %v", err)
	}
	if result == nil || store.inserts != 1 {
		t.Errorf("insert should still happen after a failed delete (inserts=%d)", store.inserts)
	}
}

func TestInsertFailureIsFatal(t *testing.T) {
	store := &stubTrendStore{insertErr: fmt.Errorf("disk full")}
	u := newTestUseCase(&stubSurveySource{}, store, testNow)

	if _, err := u.AnalyzeTrends("1m"); err == nil {
		t.Fatal("expected an error when the snapshot insert fails")
	}
}

func TestFetchFailureAbortsBeforePersisting(t *testing.T) {
	store := &stubTrendStore{}
	u := newTestUseCase(&stubSurveySource{err: fmt.Errorf("timeout")}, store, testNow)

	if _, err := u.AnalyzeTrends("1m"); err == nil {
		t.Fatal("expected an error when the survey fetch fails")
	}
	if store.deletes != 0 || store.inserts != 0 {
		t.Errorf("no writes should happen after a failed fetch (deletes=%d inserts=%d)", store.deletes, store.inserts)
	}
}

func TestRangeDefaultsAndCutoffs(t *testing.T) {
	cases := []struct {
		trendRange string
		wantRange  string
		wantCutoff time.Time
	}{
		{"", "1m", time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)},
		{"1m", "1m", time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)},
		// Calendar arithmetic: 2026-08-31 minus 6 months normalizes past February
		{"6m", "6m", time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)},
		{"1y", "1y", time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)},
		{"2w", "1m", time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)},
		{"bogus", "1m", time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		source := &stubSurveySource{}
		u := newTestUseCase(source, &stubTrendStore{}, testNow)

		result, err := u.AnalyzeTrends(tc.trendRange)
		if err != nil {
			t.Fatalf("range %q: unexpected error: %v", tc.trendRange, err)
		}
		if result.Range != tc.wantRange {
			t.Errorf("range %q: result.Range = %q, want %q", tc.trendRange, result.Range, tc.wantRange)
		}
		if !source.lastCutoff.Equal(tc.wantCutoff) {
			t.Errorf("range %q: cutoff = %v, want %v", tc.trendRange, source.lastCutoff, tc.wantCutoff)
		}
	}
}

func TestScenarioMixedRealAndFallback(t *testing.T) {
	u := newTestUseCase(&stubSurveySource{surveys: []entities.Survey{
		textSurvey(testNow, "Long wait for the bus at the hotel, very slow service", "Everything was great"),
	}}, &stubTrendStore{}, testNow)

	result, err := u.AnalyzeTrends("1m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The single real phrase has count 1, so the four inserted fallbacks
	// (counts 50, 45, 40, 35) outrank it and it ends up last
	last := result.ProblemCounts[4]
	if last.Problem != "Long wait for the bus at" {
		t.Errorf("rank-5 problem = %q, want the extracted phrase", last.Problem)
	}
	if last.Count != 1 || last.Rank != 5 {
		t.Errorf("rank-5 entry = {count %d, rank %d}, want {1, 5}", last.Count, last.Rank)
	}

	wantFallbackCounts := []int{50, 45, 40, 35}
	for i, want := range wantFallbackCounts {
		if result.ProblemCounts[i].Problem != fallbackProblems[i] {
			t.Errorf("counts[%d].problem = %q, want %q", i, result.ProblemCounts[i].Problem, fallbackProblems[i])
		}
		if result.ProblemCounts[i].Count != want {
			t.Errorf("counts[%d].count = %d, want %d", i, result.ProblemCounts[i].Count, want)
		}
	}
}

func TestIdenticalPhrasesMerge(t *testing.T) {
	u := newTestUseCase(&stubSurveySource{surveys: []entities.Survey{
		textSurvey(testNow, "insufficient signage"),
		textSurvey(testNow, "Insufficient   signage"),
	}}, &stubTrendStore{}, testNow)

	result, err := u.AnalyzeTrends("1m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, item := range result.ProblemCounts {
		if item.Problem == "Insufficient signage" {
			found = true
			if item.Count != 2 {
				t.Errorf("merged phrase count = %d, want 2", item.Count)
			}
		}
	}
	if !found {
		t.Error("merged phrase missing from the result")
	}
}

func TestGetRecentTrends(t *testing.T) {
	store := &stubTrendStore{rows: []entities.TrendHistory{
		{Range: "1m", AnalysedAt: testNow.Add(-2 * time.Hour)},
		{Range: "6m", AnalysedAt: testNow.Add(-1 * time.Hour)},
	}}
	u := newTestUseCase(&stubSurveySource{}, store, testNow)

	latest, err := u.GetRecentTrends("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.Range != "6m" {
		t.Errorf("latest snapshot range = %q, want 6m", latest.Range)
	}

	monthly, err := u.GetRecentTrends("1m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if monthly.Range != "1m" {
		t.Errorf("snapshot range = %q, want 1m", monthly.Range)
	}

	if _, err := u.GetRecentTrends("1y"); err == nil {
		t.Error("expected an error for a range with no snapshot")
	}
}

func TestCorpusPreservesSurveyAndResponseOrder(t *testing.T) {
	surveys := []entities.Survey{
		textSurvey(testNow.Add(-time.Hour), "first answer", "second answer"),
		textSurvey(testNow, "third answer"),
	}
	surveys[0].Answers.Responses = append(surveys[0].Answers.Responses,
		entities.ResponseItem{Type: "slider", Value: float64(7)},
	)

	corpus := collectTextResponses(surveys)
	want := []string{"first answer", "second answer", "third answer"}
	if len(corpus) != len(want) {
		t.Fatalf("corpus has %d entries, want %d", len(corpus), len(want))
	}
	for i := range want {
		if corpus[i] != want[i] {
			t.Errorf("corpus[%d] = %q, want %q", i, corpus[i], want[i])
		}
	}
}

func TestCorpusTrimsAndSkipsNonText(t *testing.T) {
	surveys := []entities.Survey{{
		Answers: entities.SurveyAnswers{Responses: []entities.ResponseItem{
			{Type: "text", Value: "  padded answer  "},
			{Type: "text", Value: ""},
			{Type: "text", Value: "\t \n"},
			{Type: "text", Value: float64(3)},
			{Type: "rating", Value: "not consumed"},
		}},
	}}

	corpus := collectTextResponses(surveys)
	if len(corpus) != 1 || corpus[0] != "padded answer" {
		t.Errorf("corpus = %v, want only the trimmed text answer", corpus)
	}
}
