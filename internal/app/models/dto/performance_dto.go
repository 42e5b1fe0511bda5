package dto

import "time"

// PerformanceFilterRequest carries the dashboard filter parameters.
// All fields are optional; zero values mean no filtering on that
// dimension.
type PerformanceFilterRequest struct {
	Subject   string
	Grade     string
	StudentID int64
	From      time.Time
	To        time.Time
}

// ChapterPerformanceGroupResponse is one row of a performance dashboard.
// Kind is either CHAPTER (anchored on a lesson plan) or TEST_ONLY (a
// synthetic group for a test result without lesson coverage).
type ChapterPerformanceGroupResponse struct {
	Key             string                   `json:"key" example:"1"`
	Kind            string                   `json:"kind" example:"CHAPTER" enums:"CHAPTER,TEST_ONLY"`
	LessonPlan      *LessonPlanResponse      `json:"lessonPlan,omitempty"`
	ChapterRecords  []ChapterRecordResponse  `json:"chapterRecords"`
	TestResults     []TestResultResponse     `json:"testResults"`
	HomeworkRecords []HomeworkRecordResponse `json:"homeworkRecords"`
}

// PerformanceOverviewResponse is the center-wide dashboard payload
type PerformanceOverviewResponse struct {
	Groups      []ChapterPerformanceGroupResponse `json:"groups"`
	TotalGroups int                               `json:"totalGroups"`
}

// StudentReportResponse is the parent-facing report for one student
type StudentReportResponse struct {
	Student            StudentResponse                   `json:"student"`
	Groups             []ChapterPerformanceGroupResponse `json:"groups"`
	MissedChapterCount int                               `json:"missedChapterCount"`
	MissedChapters     []LessonPlanResponse              `json:"missedChapters"`
}

// LinkedStudentsResponse lists the students linked to a parent account
type LinkedStudentsResponse struct {
	Students []StudentResponse `json:"students"`
}
