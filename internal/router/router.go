package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/config"
	"github.com/MalithSamaradiwakara/frontend/internal/middleware"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/MalithSamaradiwakara/frontend/internal/route"
	"github.com/MalithSamaradiwakara/frontend/internal/session"
	"github.com/MalithSamaradiwakara/frontend/internal/view"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers groups all view handler instances for route setup.
type Handlers struct {
	Auth       *view.AuthHandler
	Catalog    *view.CatalogHandler
	Profile    *view.ProfileHandler
	Enrollment *view.EnrollmentHandler
	Quiz       *view.QuizHandler
	Assignment *view.AssignmentHandler
	Teacher    *view.TeacherHandler
	Admin      *view.AdminHandler
}

// SetupRouter configures the Gin engine. Navigation does not go through
// Gin's own tree: every request is dispatched against the ordered route
// table, which resolves the requirement (first match wins), runs the
// guard before the view, and records the resolved shell for rendering.
func SetupRouter(
	table *route.Table,
	handlers *Handlers,
	store *session.Store,
	codec *session.CookieCodec,
	cfg *config.Config,
	templatesGlob string,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	router.SetFuncMap(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	})
	router.LoadHTMLGlob(templatesGlob)

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response is traceable.
	router.Use(response.RequestIDMiddleware())

	// Resolve the session fresh on every request.
	router.Use(middleware.ResolveSession(store, codec))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	views := bind(handlers)

	// Table-driven navigation: unmatched paths fall through to the
	// catch-all redirect home inside Dispatch.
	router.NoRoute(func(c *gin.Context) {
		snap := middleware.GetSession(c)
		outcome := table.Dispatch(c.Request.Method, c.Request.URL.Path, snap.Role)
		if !outcome.Mounted {
			c.Redirect(http.StatusSeeOther, outcome.RedirectTo)
			return
		}

		req := outcome.Match.Requirement
		for k, v := range outcome.Match.Params {
			c.Params = append(c.Params, gin.Param{Key: k, Value: v})
		}
		middleware.SetLayout(c, req.Layout)

		h, ok := views[req.View]
		if !ok {
			log.Error().Str("view", req.View).Str("path", c.Request.URL.Path).Msg("route table names an unbound view")
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h(c)
	})

	return router
}

// bind maps route table view names onto handler methods.
func bind(h *Handlers) map[string]gin.HandlerFunc {
	return map[string]gin.HandlerFunc{
		route.ViewLogin:       h.Auth.LoginPage,
		route.ViewLoginSubmit: h.Auth.LoginSubmit,
		route.ViewLogout:      h.Auth.Logout,
		route.ViewRegister:    h.Auth.RegisterPage,

		route.ViewHome:          h.Catalog.Home,
		route.ViewCourses:       h.Catalog.Courses,
		route.ViewCourseDetails: h.Catalog.CourseDetails,
		route.ViewCourseContent: h.Catalog.CourseContent,
		route.ViewTutors:        h.Catalog.Tutors,
		route.ViewTutorDetails:  h.Catalog.TutorDetails,
		route.ViewMyCourses:     h.Catalog.MyCourses,

		route.ViewMyProfile:         h.Profile.MyProfile,
		route.ViewStudentView:       h.Profile.StudentView,
		route.ViewStudentEdit:       h.Profile.EditForm,
		route.ViewStudentEditSubmit: h.Profile.EditSubmit,
		route.ViewStudentAdd:        h.Profile.AddForm,
		route.ViewStudentAddSubmit:  h.Profile.AddSubmit,
		route.ViewStudentDashboard:  h.Profile.Dashboard,

		route.ViewEnroll:       h.Enrollment.Form,
		route.ViewEnrollSubmit: h.Enrollment.Submit,

		route.ViewStudentQuizzes: h.Quiz.List,
		route.ViewQuizAttempt:    h.Quiz.AttemptForm,
		route.ViewQuizSubmit:     h.Quiz.AttemptSubmit,

		route.ViewStudentAssigns:   h.Assignment.List,
		route.ViewAssignSubmitForm: h.Assignment.SubmitForm,
		route.ViewAssignSubmit:     h.Assignment.Submit,

		route.ViewTeacherDashboard:    h.Teacher.Dashboard,
		route.ViewTeacherCourses:      h.Teacher.Courses,
		route.ViewTeacherStudents:     h.Teacher.Students,
		route.ViewTeacherQuizzes:      h.Teacher.Quizzes,
		route.ViewTeacherQuizNew:      h.Teacher.QuizNew,
		route.ViewTeacherQuizCreate:   h.Teacher.QuizCreate,
		route.ViewTeacherQuizEdit:     h.Teacher.QuizEdit,
		route.ViewTeacherQuizUpdate:   h.Teacher.QuizUpdate,
		route.ViewTeacherQuizDelete:   h.Teacher.QuizDelete,
		route.ViewTeacherQuizAttempts: h.Teacher.QuizAttempts,
		route.ViewTeacherAssigns:      h.Teacher.Assignments,
		route.ViewTeacherAssignSubs:   h.Teacher.AssignmentSubmissions,

		route.ViewAdminHome:          h.Admin.Home,
		route.ViewAdminCourses:       h.Admin.Courses,
		route.ViewAdminCourseNew:     h.Admin.CourseNew,
		route.ViewAdminCourseCreate:  h.Admin.CourseCreate,
		route.ViewAdminCourseEdit:    h.Admin.CourseEdit,
		route.ViewAdminCourseUpdate:  h.Admin.CourseUpdate,
		route.ViewAdminStudents:      h.Admin.Students,
		route.ViewAdminTutors:        h.Admin.Tutors,
		route.ViewAdminTutorNew:      h.Admin.TutorNew,
		route.ViewAdminTutorCreate:   h.Admin.TutorCreate,
		route.ViewAdminTutorEdit:     h.Admin.TutorEdit,
		route.ViewAdminTutorUpdate:   h.Admin.TutorUpdate,
		route.ViewAdminEnrollments:   h.Admin.Enrollments,
		route.ViewAdminEnrollAct:     h.Admin.EnrollmentAction,
		route.ViewAdminCourseDelete:  h.Admin.DeleteCourse,
		route.ViewAdminStudentDelete: h.Admin.DeleteStudent,
		route.ViewAdminTutorDelete:   h.Admin.DeleteTutor,
		route.ViewAdminReports:       h.Admin.Reports,
		route.ViewAdminSettings:      h.Admin.Settings,
	}
}
