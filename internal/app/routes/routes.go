package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ozan/classtrack/internal/app/controllers"
	"github.com/ozan/classtrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	lessonPlanController *controllers.LessonPlanController,
	chapterRecordController *controllers.ChapterRecordController,
	testController *controllers.TestController,
	homeworkController *controllers.HomeworkController,
	performanceController *controllers.PerformanceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.GetProfile)

		// User management (admin provisions accounts for the center)
		users := authenticated.Group("/users")
		users.Use(authMiddleware.StaffOnly())
		{
			users.GET("", userController.GetAllUsers)
			users.GET("/:id", userController.GetUserByID)

			usersAdminProtected := users.Group("")
			usersAdminProtected.Use(authMiddleware.AdminOnly())
			{
				usersAdminProtected.POST("", userController.CreateUser)
				usersAdminProtected.DELETE("/:id", userController.DeactivateUser)
			}
		}

		// Parents see only the students linked to their account
		authenticated.GET("/students/mine", studentController.GetLinkedStudents)

		// Student management
		students := authenticated.Group("/students")
		students.Use(authMiddleware.StaffOnly())
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)

			// Parent linking
			students.POST("/:id/parents", studentController.LinkParent)
			students.DELETE("/:id/parents/:parentId", studentController.UnlinkParent)
		}

		// Lesson plans (the planned curriculum the dashboards group by).
		// Reads are open to every authenticated role, parents included.
		lessonPlans := authenticated.Group("/lesson-plans")
		{
			lessonPlans.GET("", lessonPlanController.GetAllLessonPlans)
			lessonPlans.GET("/:id", lessonPlanController.GetLessonPlanByID)

			lessonPlansStaffProtected := lessonPlans.Group("")
			lessonPlansStaffProtected.Use(authMiddleware.StaffOnly())
			{
				lessonPlansStaffProtected.POST("", lessonPlanController.CreateLessonPlan)
				lessonPlansStaffProtected.PUT("/:id", lessonPlanController.UpdateLessonPlan)
				lessonPlansStaffProtected.DELETE("/:id", lessonPlanController.DeleteLessonPlan)
			}
		}

		// Chapter completion records
		chapterRecords := authenticated.Group("/chapter-records")
		chapterRecords.Use(authMiddleware.StaffOnly())
		{
			chapterRecords.POST("", chapterRecordController.CreateChapterRecord)
			chapterRecords.GET("/:id", chapterRecordController.GetChapterRecordByID)
			chapterRecords.PUT("/:id", chapterRecordController.UpdateChapterRecord)
			chapterRecords.DELETE("/:id", chapterRecordController.DeleteChapterRecord)
		}
		authenticated.GET("/students/:id/chapter-records",
			authMiddleware.StaffOnly(), chapterRecordController.GetChapterRecordsByStudent)

		// Tests and results
		tests := authenticated.Group("/tests")
		tests.Use(authMiddleware.StaffOnly())
		{
			tests.POST("", testController.CreateTest)
			tests.GET("", testController.GetAllTests)
			tests.GET("/:id", testController.GetTestByID)
			tests.PUT("/:id", testController.UpdateTest)
			tests.DELETE("/:id", testController.DeleteTest)

			tests.POST("/:id/results", testController.CreateTestResult)
			tests.GET("/:id/results", testController.GetTestResults)
			tests.DELETE("/:id/results/:resultId", testController.DeleteTestResult)
		}

		// Homeworks and per-student records
		homeworks := authenticated.Group("/homeworks")
		homeworks.Use(authMiddleware.StaffOnly())
		{
			homeworks.POST("", homeworkController.CreateHomework)
			homeworks.GET("", homeworkController.GetAllHomeworks)
			homeworks.GET("/:id", homeworkController.GetHomeworkByID)
			homeworks.PUT("/:id", homeworkController.UpdateHomework)
			homeworks.DELETE("/:id", homeworkController.DeleteHomework)

			homeworks.POST("/:id/records", homeworkController.AssignHomework)
			homeworks.GET("/:id/records", homeworkController.GetHomeworkRecords)
		}
		authenticated.PUT("/homework-records/:recordId",
			authMiddleware.StaffOnly(), homeworkController.UpdateHomeworkRecord)

		// Performance dashboards
		performance := authenticated.Group("/performance")
		{
			performance.GET("/overview", authMiddleware.StaffOnly(), performanceController.GetCenterOverview)

			// Parents reach this through their linked students; the controller
			// enforces the link before building the report.
			performance.GET("/students/:studentId/report", performanceController.GetStudentReport)
		}
	}
}
