// Package entitydb holds the canonical working set of every entity kind in
// memory and writes each kind through to its own persistence slot, whole,
// on every mutation. Slot keys and record encodings are stable, so a dump
// of existing data loads unchanged.
package entitydb

import (
	"context"

	"github.com/pkg/errors"

	"github.com/edutrack/edutrack/core"
	"github.com/edutrack/edutrack/core/activity"
	"github.com/edutrack/edutrack/core/attendance"
	"github.com/edutrack/edutrack/core/course"
	"github.com/edutrack/edutrack/core/faculty"
	"github.com/edutrack/edutrack/core/fee"
	"github.com/edutrack/edutrack/core/grade"
	"github.com/edutrack/edutrack/core/student"
	"github.com/edutrack/edutrack/storage/kv"
)

// Persistence slot keys, one per entity kind plus the logged-in identity.
const (
	slotStudents   = "edutrack_students"
	slotFaculty    = "edutrack_faculty"
	slotCourses    = "edutrack_courses"
	slotAttendance = "edutrack_attendance"
	slotGrades     = "edutrack_grades"
	slotFees       = "edutrack_fees"
	slotActivity   = "edutrack_activity"
	slotIdentity   = "edutrack_user"
)

type DB struct {
	store  kv.Store
	logger core.Logger

	students   *collection[student.Student]
	faculty    *collection[faculty.Faculty]
	courses    *collection[course.Course]
	attendance *collection[attendance.Record]
	grades     *collection[grade.Record]
	fees       *collection[fee.Record]
	activity   *collection[activity.Entry]
}

// Open wires the collections to their slots and loads them. When the
// students slot has never been written the whole fixture set is seeded;
// the presence check is keyed on students only, so a wiped non-student
// slot loads empty rather than being reseeded.
func Open(ctx context.Context, store kv.Store, logger core.Logger) (*DB, error) {
	db, err := Load(ctx, store, logger)
	if err != nil {
		return nil, err
	}

	if _, err := store.Get(ctx, slotStudents); err != nil {
		if errors.Cause(err) != kv.ErrNotFound {
			return nil, errors.Wrap(err, "checking for existing data")
		}
		if err := db.Seed(ctx); err != nil {
			return nil, errors.Wrap(err, "seeding fixture data")
		}
		logger.Info("no existing data found; seeded fixtures")
	}
	return db, nil
}

// Load wires the collections and loads whatever the slots hold, without
// seeding. Absent slots load empty.
func Load(ctx context.Context, store kv.Store, logger core.Logger) (*DB, error) {
	db := &DB{
		store:      store,
		logger:     logger,
		students:   newCollection[student.Student](store, logger, slotStudents, "S", 3),
		faculty:    newCollection[faculty.Faculty](store, logger, slotFaculty, "F", 3),
		courses:    newCollection[course.Course](store, logger, slotCourses, "C", 3),
		attendance: newCollection[attendance.Record](store, logger, slotAttendance, "ATT", 3),
		grades:     newCollection[grade.Record](store, logger, slotGrades, "GRD", 3),
		fees:       newCollection[fee.Record](store, logger, slotFees, "FEE", 3),
		activity:   newCollection[activity.Entry](store, logger, slotActivity, "", 0),
	}

	for _, col := range []interface {
		load(context.Context) error
	}{db.students, db.faculty, db.courses, db.attendance, db.grades, db.fees, db.activity} {
		if err := col.load(ctx); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (db *DB) Close() error { return db.store.Close() }

// SlotForKind maps an entity kind name to its persistence slot key.
func SlotForKind(kind string) (string, bool) {
	slot, ok := map[string]string{
		"students":   slotStudents,
		"faculty":    slotFaculty,
		"courses":    slotCourses,
		"attendance": slotAttendance,
		"grades":     slotGrades,
		"fees":       slotFees,
		"activity":   slotActivity,
		"user":       slotIdentity,
	}[kind]
	return slot, ok
}

// Dump returns every collection keyed by kind, for exports and backups.
func (db *DB) Dump() map[string]interface{} {
	return map[string]interface{}{
		"students":   db.students.all(),
		"faculty":    db.faculty.all(),
		"courses":    db.courses.all(),
		"attendance": db.attendance.all(),
		"grades":     db.grades.all(),
		"fees":       db.fees.all(),
		"activity":   db.activity.all(),
	}
}
