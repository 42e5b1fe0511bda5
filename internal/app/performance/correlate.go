package performance

import (
	"sort"
	"strconv"

	"github.com/ozan/classtrack/internal/app/models"
)

// resolution is the outcome of resolving a raw record against the known
// lesson plan set. Modeling it explicitly keeps the drop-vs-synthesize
// branching exhaustive instead of scattering nil checks.
type resolution struct {
	resolved bool
	plan     *models.LessonPlan
}

// resolve looks up an optional lesson plan reference in the known set
func resolve(index map[int64]*models.LessonPlan, lessonPlanID *int64) resolution {
	if lessonPlanID == nil {
		return resolution{}
	}
	plan, ok := index[*lessonPlanID]
	if !ok {
		return resolution{}
	}
	return resolution{resolved: true, plan: plan}
}

// Correlate maps lesson plans to the evaluation, testing and homework
// activity associated with them and returns the ordered chapter
// performance groups.
//
// It is a pure function of its inputs: identical inputs produce
// identical, identically ordered output, and any subset of the inputs
// may be empty. Records pointing at lesson plans missing from the known
// set are excluded rather than treated as errors; in center-wide mode an
// unresolvable test result instead becomes a synthetic test-only group.
func Correlate(mode Mode, plans []models.LessonPlan, records []models.StudentChapterRecord, results []models.TestResult, homework []models.HomeworkRecord) []Group {
	index := make(map[int64]*models.LessonPlan, len(plans))
	for i := range plans {
		index[plans[i].ID] = &plans[i]
	}

	groups := make(map[string]*Group)
	var order []string

	ensureAnchored := func(plan *models.LessonPlan) *Group {
		key := anchoredKey(plan.ID)
		if g, ok := groups[key]; ok {
			return g
		}
		g := &Group{
			Kind:            GroupAnchored,
			Key:             key,
			LessonPlan:      plan,
			ChapterRecords:  []models.StudentChapterRecord{},
			TestResults:     []models.TestResult{},
			HomeworkRecords: []models.HomeworkRecord{},
		}
		groups[key] = g
		order = append(order, key)
		return g
	}

	// Evaluation records create the anchored groups. The store does not
	// enforce one record per (student, lesson plan), so duplicates are
	// collapsed to the first occurrence.
	type studentLesson struct {
		studentID    int64
		lessonPlanID int64
	}
	seen := make(map[studentLesson]bool, len(records))
	for _, rec := range records {
		res := resolve(index, &rec.LessonPlanID)
		if !res.resolved {
			continue
		}
		pair := studentLesson{rec.StudentID, rec.LessonPlanID}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		g := ensureAnchored(res.plan)
		g.ChapterRecords = append(g.ChapterRecords, rec)
	}

	// Test results attach to the group of the lesson plan their test is
	// tied to. Synthesizing a test-only group is a fallback for the
	// center overview only, and only when no anchored group can take the
	// result.
	for _, result := range results {
		var res resolution
		if result.Test != nil {
			res = resolve(index, result.Test.LessonPlanID)
		}
		if res.resolved {
			g := ensureAnchored(res.plan)
			g.TestResults = append(g.TestResults, result)
			continue
		}
		if mode != ModeCenterWide {
			continue
		}
		key := syntheticKeyPrefix + strconv.FormatInt(result.ID, 10)
		groups[key] = &Group{
			Kind:            GroupSyntheticTest,
			Key:             key,
			ChapterRecords:  []models.StudentChapterRecord{},
			TestResults:     []models.TestResult{result},
			HomeworkRecords: []models.HomeworkRecord{},
		}
		order = append(order, key)
	}

	// Homework attaches by the direct lesson plan link when the homework
	// carries one. When it does not, the legacy heuristic applies: the
	// first known lesson plan with the same subject wins. Either way the
	// record only lands on a group that already has activity.
	for _, hw := range homework {
		if hw.Homework == nil {
			continue
		}
		var plan *models.LessonPlan
		if hw.Homework.LessonPlanID != nil {
			res := resolve(index, hw.Homework.LessonPlanID)
			if !res.resolved {
				continue
			}
			plan = res.plan
		} else {
			for i := range plans {
				if plans[i].Subject == hw.Homework.Subject {
					plan = &plans[i]
					break
				}
			}
			if plan == nil {
				continue
			}
		}
		g, ok := groups[anchoredKey(plan.ID)]
		if !ok {
			continue
		}
		g.HomeworkRecords = append(g.HomeworkRecords, hw)
	}

	out := make([]Group, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	sortGroups(mode, out)
	return out
}

// sortGroups orders groups by date descending. Center-wide ties are
// broken by student name ascending; single-student ordering is left
// stable since the student is constant.
func sortGroups(mode Mode, groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		di, dj := groups[i].sortDate(), groups[j].sortDate()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		if mode == ModeCenterWide {
			return groups[i].studentNameKey() < groups[j].studentNameKey()
		}
		return false
	})
}
