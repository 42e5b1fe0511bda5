package services

// Services defined in this package:
// - AuthService: Handles login, token refresh and logout
// - UserService: Handles staff and parent account management
// - StudentService: Handles student profiles and parent links
// - LessonPlanService: Handles the teaching plan of a center
// - ChapterRecordService: Handles per-student chapter evaluations
// - TestService: Handles tests and test results
// - HomeworkService: Handles homework and per-student homework records
// - PerformanceService: Builds chapter performance dashboards and reports
