package performance

import (
	"strconv"
	"time"

	"github.com/ozan/classtrack/internal/app/models"
)

// Mode selects which dashboard the correlation serves
type Mode int

const (
	// ModeCenterWide builds the center overview: test results that cannot be
	// tied to a lesson plan surface as synthetic test-only groups
	ModeCenterWide Mode = iota
	// ModeSingleStudent builds a parent report: test results that cannot be
	// tied to a lesson plan are dropped
	ModeSingleStudent
)

// GroupKind tags the two group variants
type GroupKind int

const (
	// GroupAnchored is a group anchored on a lesson plan
	GroupAnchored GroupKind = iota
	// GroupSyntheticTest is a test-only group with no lesson plan
	GroupSyntheticTest
)

const syntheticKeyPrefix = "test-only-"

// Group is one row of the denormalized chapter performance view.
// LessonPlan is nil exactly when Kind is GroupSyntheticTest; consumers
// must branch on Kind rather than on nil checks.
type Group struct {
	Kind            GroupKind                     `json:"kind"`
	Key             string                        `json:"key"`
	LessonPlan      *models.LessonPlan            `json:"lessonPlan,omitempty"`
	ChapterRecords  []models.StudentChapterRecord `json:"chapterRecords"`
	TestResults     []models.TestResult           `json:"testResults"`
	HomeworkRecords []models.HomeworkRecord       `json:"homeworkRecords"`
}

// anchoredKey builds the map key for a lesson plan anchored group
func anchoredKey(lessonPlanID int64) string {
	return strconv.FormatInt(lessonPlanID, 10)
}

// sortDate returns the date a group is ordered by: the lesson date for
// anchored groups, the result's date taken for synthetic groups.
func (g *Group) sortDate() time.Time {
	if g.Kind == GroupAnchored && g.LessonPlan != nil {
		return g.LessonPlan.LessonDate
	}
	if len(g.TestResults) > 0 {
		return g.TestResults[0].DateTaken
	}
	return time.Time{}
}

// studentNameKey returns the lowest student name attached to the group,
// used as the tie-breaker in center-wide ordering.
func (g *Group) studentNameKey() string {
	name := ""
	for _, rec := range g.ChapterRecords {
		if name == "" || rec.StudentName < name {
			name = rec.StudentName
		}
	}
	for _, res := range g.TestResults {
		if name == "" || res.StudentName < name {
			name = res.StudentName
		}
	}
	return name
}

// FilterParams narrows the four raw collections before correlation.
// It is passed by value and never mutated; the zero value of an optional
// field means "no filtering on that dimension".
type FilterParams struct {
	CenterID  int64
	Subject   string
	Grade     string
	StudentID int64
	From      time.Time
	To        time.Time
}

// HasDateRange reports whether any temporal bound is set
func (p FilterParams) HasDateRange() bool {
	return !p.From.IsZero() || !p.To.IsZero()
}

// inRange reports whether t falls inside [From, To], both inclusive.
// Zero timestamps are unfilterable and never match a set range.
func (p FilterParams) inRange(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	if !p.From.IsZero() && t.Before(p.From) {
		return false
	}
	if !p.To.IsZero() && t.After(p.To) {
		return false
	}
	return true
}
