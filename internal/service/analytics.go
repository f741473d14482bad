package service

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Maxime-Guy/twigane/internal/cache"
	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/repository"
)

// Activity types recorded by the tracker.
const (
	ActivityChat          = "chat"
	ActivityTranslation   = "translation"
	ActivityQuiz          = "quiz"
	ActivityPronunciation = "pronunciation"
)

// AnalyticsService tracks usage. In-process counters always work; Redis and
// Mongo enrich them when available, so a lost backend degrades persistence
// without breaking the request path.
type AnalyticsService struct {
	cache cache.AnalyticsCache
	repo  repository.ActivityRepo

	mu        sync.Mutex
	counts    map[string]int
	startedAt time.Time
}

// NewAnalyticsService creates a new analytics service. cache and repo may be
// nil when the corresponding backend is unreachable.
func NewAnalyticsService(analyticsCache cache.AnalyticsCache, activityRepo repository.ActivityRepo) *AnalyticsService {
	return &AnalyticsService{
		cache:     analyticsCache,
		repo:      activityRepo,
		counts:    make(map[string]int),
		startedAt: time.Now(),
	}
}

// Persistent reports whether activities are archived beyond process memory.
func (s *AnalyticsService) Persistent() bool {
	return s.repo != nil
}

// Track records one user action. Backend failures are logged and swallowed.
func (s *AnalyticsService) Track(ctx context.Context, userEmail, activityType string, details map[string]string) {
	s.mu.Lock()
	s.counts[activityType]++
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.IncrementRequests(ctx, activityType); err != nil {
			logrus.WithError(err).Warn("failed to increment request counter")
		}
	}

	if userEmail == "" {
		return
	}

	if s.cache != nil {
		if err := s.cache.MarkActive(ctx, userEmail, time.Now()); err != nil {
			logrus.WithError(err).Warn("failed to mark user active")
		}
		if field := progressField(activityType); field != "" {
			if err := s.cache.IncrementProgress(ctx, userEmail, field, 1); err != nil {
				logrus.WithError(err).Warn("failed to increment progress")
			}
		}
	}

	if s.repo != nil {
		activity := &model.Activity{
			ID:        uuid.NewString(),
			UserEmail: userEmail,
			Type:      activityType,
			Details:   details,
			Timestamp: time.Now(),
		}
		if err := s.repo.Insert(ctx, activity); err != nil {
			logrus.WithError(err).Warn("failed to archive activity")
		}
	}
}

// TrackQuizScore records a submitted quiz result for the user's average.
func (s *AnalyticsService) TrackQuizScore(ctx context.Context, userEmail string, percentage float64) {
	if s.cache == nil || userEmail == "" {
		return
	}
	if err := s.cache.AddQuizScore(ctx, userEmail, percentage); err != nil {
		logrus.WithError(err).Warn("failed to record quiz score")
	}
}

func progressField(activityType string) string {
	switch activityType {
	case ActivityChat:
		return cache.FieldChats
	case ActivityTranslation:
		return cache.FieldTranslations
	case ActivityPronunciation:
		return cache.FieldPronunciations
	default:
		return ""
	}
}

// Stats returns the in-process counters and uptime for /stats.
func (s *AnalyticsService) Stats() map[string]interface{} {
	s.mu.Lock()
	counts := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		counts[k] = v
	}
	s.mu.Unlock()

	return map[string]interface{}{
		"requests":       counts,
		"uptime_seconds": int(time.Since(s.startedAt).Seconds()),
	}
}

// AdminOverview aggregates service-wide usage for the admin analytics page.
func (s *AnalyticsService) AdminOverview(ctx context.Context) map[string]interface{} {
	overview := s.Stats()

	if s.cache != nil {
		if active, err := s.cache.ActiveCount(ctx, time.Now()); err == nil {
			overview["daily_active_users"] = active
		}
		if endpoints, err := s.cache.RequestCounts(ctx); err == nil {
			overview["endpoint_counts"] = endpoints
		}
	}

	if s.repo != nil {
		if users, err := s.repo.DistinctUsers(ctx); err == nil {
			overview["total_users"] = len(users)
		}
	}
	return overview
}

// ListUsers builds the admin user listing from the activity archive and the
// progress counters.
func (s *AnalyticsService) ListUsers(ctx context.Context) ([]*model.UserSummary, error) {
	if s.repo == nil {
		return []*model.UserSummary{}, nil
	}

	emails, err := s.repo.DistinctUsers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(emails)

	summaries := make([]*model.UserSummary, 0, len(emails))
	for _, email := range emails {
		summary := &model.UserSummary{Email: email}

		if total, err := s.repo.CountByUser(ctx, email); err == nil {
			summary.TotalActivities = int(total)
		}
		if recent, err := s.repo.ListByUser(ctx, email, 1); err == nil && len(recent) > 0 {
			ts := recent[0].Timestamp
			summary.LastActivity = &ts
		}
		if s.cache != nil {
			if progress, err := s.cache.GetProgress(ctx, email); err == nil {
				summary.ChatCount = progress.ChatCount
				summary.TranslationCount = progress.TranslationCount
				summary.QuizAttempts = progress.QuizAttempts
				summary.PronunciationCount = progress.PronunciationCount
				summary.AvgQuizScore = progress.QuizAverage()
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// Dashboard assembles the learner dashboard for one user.
func (s *AnalyticsService) Dashboard(ctx context.Context, userEmail string) (map[string]interface{}, error) {
	progress := &model.UserProgress{}
	if s.cache != nil {
		if p, err := s.cache.GetProgress(ctx, userEmail); err == nil {
			progress = p
		}
	}

	var activities []*model.Activity
	if s.repo != nil {
		recent, err := s.repo.ListByUser(ctx, userEmail, 50)
		if err != nil {
			return nil, err
		}
		activities = recent
	}

	return map[string]interface{}{
		"email":           userEmail,
		"progress":        progress,
		"quiz_average":    progress.QuizAverage(),
		"streak_days":     streakDays(activities, time.Now()),
		"quiz_scores":     quizHistory(activities),
		"achievements":    achievements(progress),
		"recommendations": recommendations(progress),
	}, nil
}

// streakDays counts consecutive calendar days ending today (or yesterday,
// when the user has not shown up yet today) with at least one activity.
func streakDays(activities []*model.Activity, now time.Time) int {
	if len(activities) == 0 {
		return 0
	}
	days := make(map[string]bool, len(activities))
	for _, a := range activities {
		days[a.Timestamp.Format("2006-01-02")] = true
	}

	day := now
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func quizHistory(activities []*model.Activity) []model.QuizScorePoint {
	points := make([]model.QuizScorePoint, 0)
	for _, a := range activities {
		if a.Type != ActivityQuiz || a.Details == nil {
			continue
		}
		point := model.QuizScorePoint{Date: a.Timestamp.Format("2006-01-02")}
		if raw, ok := a.Details["percentage"]; ok {
			point.Score = parseFloat(raw)
		}
		if raw, ok := a.Details["total_questions"]; ok {
			point.Questions = int(parseFloat(raw))
		}
		points = append(points, point)
		if len(points) == 10 {
			break
		}
	}
	return points
}

func achievements(p *model.UserProgress) []model.Achievement {
	return []model.Achievement{
		{Name: "First Conversation", Earned: p.ChatCount >= 1},
		{Name: "Chatterbox", Earned: p.ChatCount >= 50},
		{Name: "Translator", Earned: p.TranslationCount >= 10},
		{Name: "Quiz Taker", Earned: p.QuizAttempts >= 1},
		{Name: "Quiz Master", Earned: p.QuizAttempts >= 10 && p.QuizAverage() >= 80},
		{Name: "Clear Speaker", Earned: p.PronunciationCount >= 20},
	}
}

func recommendations(p *model.UserProgress) []string {
	recs := make([]string, 0, 3)
	if p.QuizAttempts == 0 {
		recs = append(recs, "Take your first quiz to check what you have learned.")
	} else if p.QuizAverage() < 70 {
		recs = append(recs, "Review vocabulary basics, then retry a beginner quiz.")
	}
	if p.PronunciationCount < 5 {
		recs = append(recs, "Ask how Kinyarwanda words are pronounced to hear native audio.")
	}
	if p.TranslationCount == 0 {
		recs = append(recs, "Try translating an English sentence to Kinyarwanda.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Keep practicing! Ask about Rwandan culture to go deeper.")
	}
	return recs
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
