package service

import (
	"exam_platform_backend/internal/config"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"
	"fmt"
	"sort"
	"strings"
)

const maxAnalyticsLimit = 100

// ScopeFor 根据调用者身份计算数据可见范围
func ScopeFor(claims *util.Claims, classID *uint) repository.Scope {
	if claims == nil {
		return repository.Scope{}
	}
	switch claims.Role {
	case model.Admin:
		return repository.AllData().InClass(classID)
	case model.Teacher:
		return repository.OwnedBy(claims.UserID).InClass(classID)
	case model.Student:
		return repository.SelfOnly(claims.UserID)
	default:
		return repository.Scope{}
	}
}

type AnalyticsService struct {
	Repo *repository.AnalyticsRepository
	Cfg  config.AnalyticsConfig
}

func NewAnalyticsService(repo *repository.AnalyticsRepository, cfg config.AnalyticsConfig) *AnalyticsService {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 5
	}
	if cfg.PerformanceLimit <= 0 {
		cfg.PerformanceLimit = 10
	}
	if cfg.ReportWindow <= 0 {
		cfg.ReportWindow = 5
	}
	return &AnalyticsService{Repo: repo, Cfg: cfg}
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxAnalyticsLimit {
		return maxAnalyticsLimit
	}
	return limit
}

func (s *AnalyticsService) Overview(scope repository.Scope) (*model.AnalyticsOverview, error) {
	row, err := s.Repo.Overview(scope)
	if err != nil {
		return nil, err
	}
	return &model.AnalyticsOverview{
		TotalSubmissions: row.TotalSubmissions,
		AverageScore:     roundOrZero(row.AverageScore),
		ActiveStudents:   row.ActiveStudents,
	}, nil
}

func (s *AnalyticsService) WeakSkills(scope repository.Scope, limit int) ([]model.SkillErrors, error) {
	rows, err := s.Repo.SkillErrors(scope, clampLimit(limit, s.Cfg.DefaultLimit))
	if err != nil {
		return nil, err
	}
	out := make([]model.SkillErrors, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.SkillErrors{Skill: row.Skill, Errors: row.Errors})
	}
	return out, nil
}

func (s *AnalyticsService) WeakAreas(scope repository.Scope, limit int) (*model.WeakAreas, error) {
	limit = clampLimit(limit, s.Cfg.DefaultLimit)

	skillRows, err := s.Repo.SkillBreakdown(scope)
	if err != nil {
		return nil, err
	}
	typeRows, err := s.Repo.TypeBreakdown(scope)
	if err != nil {
		return nil, err
	}
	paperRows, err := s.Repo.PaperAverages(scope)
	if err != nil {
		return nil, err
	}
	studentRows, err := s.Repo.StudentAverages(scope)
	if err != nil {
		return nil, err
	}

	students := rankStudents(studentRows, limit)
	ids := make([]uint, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.StudentID)
	}
	perStudent, err := s.Repo.StudentSkillBreakdown(scope, ids)
	if err != nil {
		return nil, err
	}
	grouped := make(map[uint][]repository.BreakdownRow)
	for _, row := range perStudent {
		grouped[row.StudentID] = append(grouped[row.StudentID], row)
	}

	weak := make([]model.StudentWeakness, 0, len(students))
	for _, st := range students {
		weak = append(weak, model.StudentWeakness{
			StudentPerformance: st,
			WeakSkills:         weakestSkills(grouped[st.StudentID], 3),
		})
	}

	return &model.WeakAreas{
		Skills:        limitSlice(skillAccuracy(skillRows), limit),
		QuestionTypes: limitSlice(typeAccuracy(typeRows), limit),
		Papers:        rankPapers(paperRows, limit),
		Students:      weak,
	}, nil
}

func (s *AnalyticsService) StudentPerformance(scope repository.Scope, limit int) ([]model.StudentPerformance, error) {
	rows, err := s.Repo.StudentAverages(scope)
	if err != nil {
		return nil, err
	}
	return rankStudents(rows, clampLimit(limit, s.Cfg.PerformanceLimit)), nil
}

// StudentReport 只统计该学生本人的提交
func (s *AnalyticsService) StudentReport(studentID uint) (*model.StudentReport, error) {
	scope := repository.SelfOnly(studentID)
	window := s.Cfg.ReportWindow

	overview, err := s.Repo.Overview(scope)
	if err != nil {
		return nil, err
	}
	recentRows, err := s.Repo.RecentSubmissions(scope, window)
	if err != nil {
		return nil, err
	}
	weakRows, err := s.Repo.SkillErrors(scope, 5)
	if err != nil {
		return nil, err
	}
	skillRows, err := s.Repo.SkillBreakdown(scope)
	if err != nil {
		return nil, err
	}
	typeRows, err := s.Repo.TypeBreakdown(scope)
	if err != nil {
		return nil, err
	}

	recent := make([]model.ScorePoint, 0, len(recentRows))
	for _, row := range recentRows {
		recent = append(recent, model.ScorePoint{
			SubmissionID: row.SubmissionID,
			PaperID:      row.PaperID,
			PaperTitle:   row.PaperTitle,
			Score:        util.Round1Ptr(row.Score),
			SubmittedAt:  row.SubmittedAt,
		})
	}
	trend := make([]model.ScorePoint, len(recent))
	for i := range recent {
		trend[len(recent)-1-i] = recent[i]
	}

	weakSkills := make([]model.SkillErrors, 0, len(weakRows))
	for _, row := range weakRows {
		weakSkills = append(weakSkills, model.SkillErrors{Skill: row.Skill, Errors: row.Errors})
	}

	report := &model.StudentReport{
		Overview: model.ReportOverview{
			AverageScore:     roundOrZero(overview.AverageScore),
			TotalSubmissions: overview.TotalSubmissions,
		},
		Trend:         trend,
		Recent:        recent,
		WeakSkills:    weakSkills,
		SkillAccuracy: skillAccuracy(skillRows),
		TypeAccuracy:  typeAccuracy(typeRows),
	}
	if len(recent) > 0 {
		report.Overview.LatestScore = recent[0].Score
	}
	report.Summary = ReportSummary(report.Overview, weakSkills)
	return report, nil
}

// ReportSummary 按平均分分档生成评语，有薄弱技能时点名前两项
func ReportSummary(overview model.ReportOverview, weak []model.SkillErrors) string {
	if overview.TotalSubmissions == 0 {
		return "No submissions yet. Complete a paper to see your progress."
	}

	avg := overview.AverageScore
	var summary string
	switch {
	case avg >= 85:
		summary = fmt.Sprintf("Great work! Your average score is %.1f.", avg)
	case avg >= 70:
		summary = fmt.Sprintf("Solid progress. Your average score is %.1f.", avg)
	default:
		summary = fmt.Sprintf("Keep practicing. Your average score is %.1f.", avg)
	}

	names := make([]string, 0, 2)
	for _, w := range weak {
		if len(names) == 2 {
			break
		}
		names = append(names, w.Skill)
	}
	if len(names) > 0 {
		summary += " Focus next on " + strings.Join(names, " and ") + "."
	}
	return summary
}

func roundOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return util.Round1(*v)
}

func accuracy(correct, total int64) float64 {
	if total == 0 {
		return 0
	}
	return util.Round1(float64(correct) / float64(total) * 100)
}

// mergeBreakdown 按归并后的标签汇总，错误数降序、标签升序
func mergeBreakdown(rows []repository.BreakdownRow, normalize func(string) string) []repository.BreakdownRow {
	byLabel := make(map[string]*repository.BreakdownRow)
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		label := normalize(row.Label)
		if label == "" {
			continue
		}
		agg, ok := byLabel[label]
		if !ok {
			agg = &repository.BreakdownRow{StudentID: row.StudentID, Label: label}
			byLabel[label] = agg
			order = append(order, label)
		}
		agg.Total += row.Total
		agg.Correct += row.Correct
		agg.Errors += row.Errors
	}

	merged := make([]repository.BreakdownRow, 0, len(order))
	for _, label := range order {
		merged = append(merged, *byLabel[label])
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Errors != merged[j].Errors {
			return merged[i].Errors > merged[j].Errors
		}
		return merged[i].Label < merged[j].Label
	})
	return merged
}

func skillAccuracy(rows []repository.BreakdownRow) []model.SkillAccuracy {
	merged := mergeBreakdown(rows, strings.TrimSpace)
	out := make([]model.SkillAccuracy, 0, len(merged))
	for _, row := range merged {
		out = append(out, model.SkillAccuracy{
			Skill:    row.Label,
			Errors:   row.Errors,
			Accuracy: accuracy(row.Correct, row.Total),
			Total:    row.Total,
		})
	}
	return out
}

func typeAccuracy(rows []repository.BreakdownRow) []model.TypeAccuracy {
	merged := mergeBreakdown(rows, func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	out := make([]model.TypeAccuracy, 0, len(merged))
	for _, row := range merged {
		out = append(out, model.TypeAccuracy{
			QuestionType: row.Label,
			Errors:       row.Errors,
			Accuracy:     accuracy(row.Correct, row.Total),
			Total:        row.Total,
		})
	}
	return out
}

// weakestSkills 只保留有错题的技能
func weakestSkills(rows []repository.BreakdownRow, n int) []model.SkillAccuracy {
	out := make([]model.SkillAccuracy, 0, n)
	for _, sa := range skillAccuracy(rows) {
		if sa.Errors == 0 {
			continue
		}
		out = append(out, sa)
		if len(out) == n {
			break
		}
	}
	return out
}

// rankPapers 平均分升序（最差的在前）
func rankPapers(rows []repository.PaperAverageRow, limit int) []model.PaperPerformance {
	out := make([]model.PaperPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.PaperPerformance{
			PaperID:      row.PaperID,
			Title:        row.Title,
			AverageScore: roundOrZero(row.AverageScore),
			Submissions:  row.Submissions,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AverageScore != out[j].AverageScore {
			return out[i].AverageScore < out[j].AverageScore
		}
		return out[i].PaperID < out[j].PaperID
	})
	return limitSlice(out, limit)
}

// rankStudents 平均分升序（最需要帮助的在前）
func rankStudents(rows []repository.StudentAverageRow, limit int) []model.StudentPerformance {
	out := make([]model.StudentPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.StudentPerformance{
			StudentID:    row.StudentID,
			Student:      row.Username,
			AverageScore: roundOrZero(row.AverageScore),
			ExamsTaken:   row.ExamsTaken,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AverageScore != out[j].AverageScore {
			return out[i].AverageScore < out[j].AverageScore
		}
		return out[i].StudentID < out[j].StudentID
	})
	return limitSlice(out, limit)
}

func limitSlice[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
