package route

import "github.com/MalithSamaradiwakara/frontend/internal/model"

// View names used by the router to bind handlers to requirements.
const (
	ViewLogin               = "login"
	ViewLoginSubmit         = "login_submit"
	ViewLogout              = "logout"
	ViewRegister            = "register"
	ViewHome                = "home"
	ViewCourses             = "courses"
	ViewCourseDetails       = "course_details"
	ViewCourseContent       = "course_content"
	ViewTutors              = "tutors"
	ViewTutorDetails        = "tutor_details"
	ViewMyCourses           = "my_courses"
	ViewMyProfile           = "my_profile"
	ViewStudentView         = "student_view"
	ViewStudentEdit         = "student_edit"
	ViewStudentEditSubmit   = "student_edit_submit"
	ViewStudentAdd          = "student_add"
	ViewStudentAddSubmit    = "student_add_submit"
	ViewEnroll              = "enroll"
	ViewEnrollSubmit        = "enroll_submit"
	ViewStudentDashboard    = "student_dashboard"
	ViewStudentQuizzes      = "student_quizzes"
	ViewQuizAttempt         = "quiz_attempt"
	ViewQuizSubmit          = "quiz_submit"
	ViewStudentAssigns      = "student_assignments"
	ViewAssignSubmitForm    = "assignment_submit_form"
	ViewAssignSubmit        = "assignment_submit"
	ViewTeacherDashboard    = "teacher_dashboard"
	ViewTeacherCourses      = "teacher_courses"
	ViewTeacherStudents     = "teacher_students"
	ViewTeacherQuizzes      = "teacher_quizzes"
	ViewTeacherQuizNew      = "teacher_quiz_new"
	ViewTeacherQuizCreate   = "teacher_quiz_create"
	ViewTeacherQuizEdit     = "teacher_quiz_edit"
	ViewTeacherQuizUpdate   = "teacher_quiz_update"
	ViewTeacherQuizDelete   = "teacher_quiz_delete"
	ViewTeacherQuizAttempts = "teacher_quiz_attempts"
	ViewTeacherAssigns      = "teacher_assignments"
	ViewTeacherAssignSubs   = "teacher_assignment_submissions"
	ViewAdminHome           = "admin_home"
	ViewAdminCourses        = "admin_courses"
	ViewAdminCourseNew      = "admin_course_new"
	ViewAdminCourseCreate   = "admin_course_create"
	ViewAdminCourseEdit     = "admin_course_edit"
	ViewAdminCourseUpdate   = "admin_course_update"
	ViewAdminCourseDelete   = "admin_course_delete"
	ViewAdminStudents       = "admin_students"
	ViewAdminStudentDelete  = "admin_student_delete"
	ViewAdminTutors         = "admin_tutors"
	ViewAdminTutorNew       = "admin_tutor_new"
	ViewAdminTutorCreate    = "admin_tutor_create"
	ViewAdminTutorEdit      = "admin_tutor_edit"
	ViewAdminTutorUpdate    = "admin_tutor_update"
	ViewAdminTutorDelete    = "admin_tutor_delete"
	ViewAdminEnrollments    = "admin_enrollments"
	ViewAdminEnrollAct      = "admin_enrollment_action"
	ViewAdminReports        = "admin_reports"
	ViewAdminSettings       = "admin_settings"
)

var (
	studentOnly = []model.Role{model.RoleStudent}
	teacherOnly = []model.Role{model.RoleTeacher}
	adminOnly   = []model.Role{model.RoleAdmin}
)

// DefaultTable is the application route table, ordered. It mirrors the
// product's navigation structure: public catalog pages, the student
// enrollment and assessment flows, the teacher shell, and the admin shell.
func DefaultTable() *Table {
	return NewTable([]Requirement{
		// Auth
		{Pattern: "/login", View: ViewLogin},
		{Pattern: "/login", View: ViewLoginSubmit, Methods: []string{"POST"}},
		{Pattern: "/logout", View: ViewLogout, Methods: []string{"POST"}},
		{Pattern: "/register", View: ViewRegister},

		// Public catalog
		{Pattern: "/", View: ViewHome},
		{Pattern: "/courses", View: ViewCourses},
		{Pattern: "/course/:courseId", View: ViewCourseDetails},
		{Pattern: "/course/:courseId/content", View: ViewCourseContent},
		{Pattern: "/tutors", View: ViewTutors},
		{Pattern: "/tutors/viewtutors/:id", View: ViewTutorDetails},
		{Pattern: "/my-courses", View: ViewMyCourses},
		{Pattern: "/myprofile/:id", View: ViewMyProfile},

		// Student management
		{Pattern: "/students/view/:id", View: ViewStudentView},
		{Pattern: "/students/edit/:id", Roles: studentOnly, View: ViewStudentEdit},
		{Pattern: "/students/edit/:id", Roles: studentOnly, View: ViewStudentEditSubmit, Methods: []string{"POST"}},
		{Pattern: "/students/addstudent", View: ViewStudentAdd},
		{Pattern: "/students/addstudent", View: ViewStudentAddSubmit, Methods: []string{"POST"}},

		// Enrollment (student only)
		{Pattern: "/enroll/:courseId", Roles: studentOnly, View: ViewEnroll},
		{Pattern: "/enroll/:courseId", Roles: studentOnly, View: ViewEnrollSubmit, Methods: []string{"POST"}},

		// Student assessment flows
		{Pattern: "/student/dashboard", Roles: studentOnly, View: ViewStudentDashboard},
		{Pattern: "/student/:id/quizzes", Roles: studentOnly, View: ViewStudentQuizzes},
		{Pattern: "/student/:id/quizzes/:quizId/attempt", Roles: studentOnly, View: ViewQuizAttempt},
		{Pattern: "/student/:id/quizzes/:quizId/attempt", Roles: studentOnly, View: ViewQuizSubmit, Methods: []string{"POST"}},
		{Pattern: "/student/:id/assignments", Roles: studentOnly, View: ViewStudentAssigns},
		{Pattern: "/student/:id/assignments/:assignmentId/submit", Roles: studentOnly, View: ViewAssignSubmitForm},
		{Pattern: "/student/:id/assignments/:assignmentId/submit", Roles: studentOnly, View: ViewAssignSubmit, Methods: []string{"POST"}},

		// Teacher shell
		{Pattern: "/teacher/dashboard", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherDashboard},
		{Pattern: "/teacher/courses", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherCourses},
		{Pattern: "/teacher/students", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherStudents},
		{Pattern: "/teacher/quizzes", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherQuizzes},
		{Pattern: "/teacher/quizzes/new", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherQuizNew},
		{Pattern: "/teacher/quizzes/new", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherQuizCreate, Methods: []string{"POST"}},
		{Pattern: "/teacher/quizzes/:id/edit", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherQuizEdit},
		{Pattern: "/teacher/quizzes/:id/edit", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherQuizUpdate, Methods: []string{"POST"}},
		{Pattern: "/teacher/quizzes/:id/delete", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherQuizDelete, Methods: []string{"POST"}},
		{Pattern: "/teacher/quizzes/:id/attempts", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherQuizAttempts},
		{Pattern: "/teacher/assignments", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherAssigns},
		{Pattern: "/teacher/assignments/:id/submissions", Roles: teacherOnly, Layout: LayoutTeacherShell, View: ViewTeacherAssignSubs},

		// Admin shell
		{Pattern: "/admin", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminHome},
		{Pattern: "/admin/courses", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminCourses},
		{Pattern: "/admin/courses/new", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminCourseNew},
		{Pattern: "/admin/courses/new", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminCourseCreate, Methods: []string{"POST"}},
		{Pattern: "/admin/courses/:id/edit", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminCourseEdit},
		{Pattern: "/admin/courses/:id/edit", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminCourseUpdate, Methods: []string{"POST"}},
		{Pattern: "/admin/students", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminStudents},
		{Pattern: "/admin/tutors", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminTutors},
		{Pattern: "/admin/tutors/new", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminTutorNew},
		{Pattern: "/admin/tutors/new", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminTutorCreate, Methods: []string{"POST"}},
		{Pattern: "/admin/tutors/:id/edit", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminTutorEdit},
		{Pattern: "/admin/tutors/:id/edit", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminTutorUpdate, Methods: []string{"POST"}},
		{Pattern: "/admin/enrollments", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminEnrollments},
		{Pattern: "/admin/enrollments/:studentId/:courseId/:action", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminEnrollAct, Methods: []string{"POST"}},
		{Pattern: "/admin/courses/:id/delete", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminCourseDelete, Methods: []string{"POST"}},
		{Pattern: "/admin/students/:id/delete", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminStudentDelete, Methods: []string{"POST"}},
		{Pattern: "/admin/tutors/:id/delete", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminTutorDelete, Methods: []string{"POST"}},
		{Pattern: "/admin/reports", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminReports},
		{Pattern: "/admin/settings", Roles: adminOnly, Layout: LayoutAdminShell, View: ViewAdminSettings},
	})
}
