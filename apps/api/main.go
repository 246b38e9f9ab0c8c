package main

import (
	"context"
	"log"
	"os"

	"github.com/pkg/errors"

	echoapi "github.com/edutrack/edutrack/apps/api/echo"
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
	logsvc "github.com/edutrack/edutrack/services/logger"
	"github.com/edutrack/edutrack/storage/entitydb"
	"github.com/edutrack/edutrack/storage/kv"
	memorykv "github.com/edutrack/edutrack/storage/kv/memory"
	pgkv "github.com/edutrack/edutrack/storage/kv/postgres"
	rediskv "github.com/edutrack/edutrack/storage/kv/redis"
	sqlitekv "github.com/edutrack/edutrack/storage/kv/sqlite"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger
	if core.Conf.GetString("rollbarToken") != "" {
		logger = logsvc.NewRollbarLogger(std)
	} else {
		logger = core.NewConsoleLogger(std)
	}

	if err := run(logger); err != nil {
		std.Fatalf("main: %+v", err)
	}
}

func run(logger core.Logger) error {
	ctx := context.Background()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}

	db, err := entitydb.Open(ctx, store, logger)
	if err != nil {
		return errors.Wrap(err, "opening entity store")
	}
	defer db.Close()

	activitySvc := activity.NewService(entitydb.NewActivityRepository(db))
	studentRepo := entitydb.NewStudentRepository(db)
	facultyRepo := entitydb.NewFacultyRepository(db)
	courseRepo := entitydb.NewCourseRepository(db)
	attendanceRepo := entitydb.NewAttendanceRepository(db)
	gradeRepo := entitydb.NewGradeRepository(db)
	feeRepo := entitydb.NewFeeRepository(db)

	server := echoapi.NewServer(&echoapi.Options{
		Addr:   core.Conf.GetString("serverAddr"),
		Logger: logger,

		SessionSvc:    session.NewService(entitydb.NewSessionRepository(db)),
		StudentSvc:    student.NewService(studentRepo, activitySvc),
		FacultySvc:    faculty.NewService(facultyRepo, activitySvc),
		CourseSvc:     course.NewService(courseRepo, activitySvc),
		AttendanceSvc: attendance.NewService(attendanceRepo, studentRepo, activitySvc),
		GradeSvc:      grade.NewService(gradeRepo, studentRepo, activitySvc),
		FeeSvc:        fee.NewService(feeRepo, studentRepo, activitySvc),
		ActivitySvc:   activitySvc,
		ReportSvc: report.NewService(
			studentRepo, facultyRepo, courseRepo, attendanceRepo, gradeRepo, feeRepo,
		),
	})
	server.Start()
	return nil
}

func openStore(ctx context.Context) (kv.Store, error) {
	backend := core.Conf.GetString("storageBackend")
	switch backend {
	case "sqlite":
		return sqlitekv.Open(core.Conf.GetString("storagePath"))
	case "postgres":
		return pgkv.Open(ctx, core.Conf.GetString("postgresDSN"))
	case "redis":
		return rediskv.Open(ctx, core.Conf.GetString("redisAddr"))
	case "memory":
		return memorykv.Open(), nil
	default:
		return nil, errors.Errorf("unknown storage backend %q", backend)
	}
}
