package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	TokenRepository          *TokenRepository
	CenterRepository         *CenterRepository
	StudentRepository        *StudentRepository
	LessonPlanRepository     *LessonPlanRepository
	ChapterRecordRepository  *ChapterRecordRepository
	TestRepository           *TestRepository
	TestResultRepository     *TestResultRepository
	HomeworkRepository       *HomeworkRepository
	HomeworkRecordRepository *HomeworkRecordRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		TokenRepository:          NewTokenRepository(db),
		CenterRepository:         NewCenterRepository(db),
		StudentRepository:        NewStudentRepository(db),
		LessonPlanRepository:     NewLessonPlanRepository(db),
		ChapterRecordRepository:  NewChapterRecordRepository(db),
		TestRepository:           NewTestRepository(db),
		TestResultRepository:     NewTestResultRepository(db),
		HomeworkRepository:       NewHomeworkRepository(db),
		HomeworkRecordRepository: NewHomeworkRecordRepository(db),
	}
}
