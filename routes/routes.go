package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Sh0ckWaveZero/nktc-app-sub003/config"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/handlers"
	"github.com/Sh0ckWaveZero/nktc-app-sub003/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	std := handlers.NewStudentHandler()
	tch := handlers.NewTeacherHandler()
	room := handlers.NewClassroomHandler()
	prog := handlers.NewProgramHandler()
	dept := handlers.NewDepartmentHandler()
	lvl := handlers.NewLevelHandler()
	chk := handlers.NewCheckInHandler()
	rep := handlers.NewReportHandler()
	vst := handlers.NewVisitHandler()
	bhv := handlers.NewBehaviorHandler()
	rcn := handlers.NewReconcileHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/login", auth.Login)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Admin routes =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.GET("/students", std.List)
	admin.POST("/students", std.Create)
	admin.PUT("/students/:id", std.Update)
	admin.DELETE("/students/:id", std.Delete)

	admin.GET("/teachers", tch.List)
	admin.POST("/teachers", tch.Create)
	admin.PUT("/teachers/:id", tch.Update)
	admin.DELETE("/teachers/:id", tch.Delete)

	admin.GET("/classrooms", room.List)
	admin.POST("/classrooms", room.Create)
	admin.PUT("/classrooms/:id", room.Update)
	admin.DELETE("/classrooms/:id", room.Delete)
	admin.PUT("/classrooms/:id/advisors", room.SetAdvisors)

	admin.GET("/programs", prog.List)
	admin.POST("/programs", prog.Create)
	admin.PUT("/programs/:id", prog.Update)
	admin.DELETE("/programs/:id", prog.Delete)

	admin.GET("/departments", dept.List)
	admin.POST("/departments", dept.Create)
	admin.PUT("/departments/:id", dept.Update)
	admin.DELETE("/departments/:id", dept.Delete)

	admin.GET("/levels", lvl.List)
	admin.POST("/levels", lvl.Create)

	// รายงานระดับสถานศึกษา + งานซ่อมข้อมูล
	admin.GET("/reports/attendance", rep.AdminWide)
	admin.POST("/reconcile/classrooms", rcn.Run)

	// ===== Teacher routes =====
	teacher := e.Group("/teacher", authMW, middlewares.RequireRole("teacher", "admin"))

	teacher.PUT("/profile/password", auth.ChangePassword)

	teacher.GET("/students", std.List)
	teacher.GET("/classrooms", room.List)

	teacher.POST("/check-in", chk.Create)
	teacher.GET("/check-in", chk.List)
	teacher.GET("/check-in/mine", chk.Mine)

	teacher.GET("/reports/daily", rep.Daily)
	teacher.GET("/reports/weekly", rep.Weekly)
	teacher.GET("/reports/monthly", rep.Monthly)
	teacher.GET("/reports/range", rep.Range)

	teacher.GET("/visits", vst.Lookup)
	teacher.POST("/visits", vst.Create)

	teacher.POST("/goodness", bhv.CreateGoodness)
	teacher.GET("/goodness", bhv.ListGoodness)
	teacher.POST("/badness", bhv.CreateBadness)
	teacher.GET("/badness", bhv.ListBadness)
	teacher.GET("/trophy", bhv.Trophy)
}
