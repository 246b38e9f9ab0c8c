package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/activity"
	"github.com/edutrack/edutrack/core/attendance"
	"github.com/edutrack/edutrack/core/course"
	"github.com/edutrack/edutrack/core/faculty"
	"github.com/edutrack/edutrack/core/fee"
	"github.com/edutrack/edutrack/core/grade"
	"github.com/edutrack/edutrack/core/report"
	"github.com/edutrack/edutrack/core/session"
	"github.com/edutrack/edutrack/core/student"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool
		Logger         core.Logger

		SessionSvc    *session.Service
		StudentSvc    *student.Service
		FacultySvc    *faculty.Service
		CourseSvc     *course.Service
		AttendanceSvc *attendance.Service
		GradeSvc      *grade.Service
		FeeSvc        *fee.Service
		ActivitySvc   *activity.Service
		ReportSvc     *report.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(metricsMiddleware())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = debug

	s.app.GET("/", home)
	s.app.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.app.Group("/v1")
	auth := authMiddleware()
	admin := roleMiddleware(session.RoleAdmin)
	staff := roleMiddleware(session.RoleAdmin, session.RoleFaculty)

	registerSessionAPI(v1, auth, s.opts.SessionSvc)
	registerStudentAPI(v1, auth, admin, s.opts.StudentSvc)
	registerFacultyAPI(v1, auth, admin, s.opts.FacultySvc)
	registerCourseAPI(v1, auth, admin, s.opts.CourseSvc)
	registerAttendanceAPI(v1, auth, staff, s.opts.AttendanceSvc)
	registerGradeAPI(v1, auth, staff, s.opts.GradeSvc)
	registerFeeAPI(v1, auth, admin, s.opts.FeeSvc)
	registerActivityAPI(v1, auth, admin, s.opts.ActivitySvc)
	registerReportAPI(v1, auth, admin, staff, s.opts.ReportSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to EduTrack API!")
}
