package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/college"
	"github.com/trezcool/elimu/core/user"
)

// Seed populates empty tables with the starter data set. Tables that already
// hold rows are left alone, so it is safe to run at every startup.
func Seed(ctx context.Context, db *sqlx.DB) error {
	seeders := []struct {
		table string
		fn    func(context.Context, *sqlx.DB) error
	}{
		{"user", seedUsers},
		{"student", seedStudents},
		{"course", seedCourses},
		{"faculty", seedFaculty},
		{"activity", seedActivities},
		{"attendance", seedAttendance},
		{"assignment", seedAssignments},
		{"exam", seedExams},
		{"grade", seedGrades},
		{"notification", seedNotifications},
		{"message", seedMessages},
	}

	for _, s := range seeders {
		empty, err := tableEmpty(ctx, db, s.table)
		if err != nil {
			return err
		}
		if !empty {
			continue
		}
		if err := s.fn(ctx, db); err != nil {
			return err
		}
		if err := resetSequence(ctx, db, s.table); err != nil {
			return err
		}
	}
	return nil
}

func tableEmpty(ctx context.Context, db *sqlx.DB, table string) (bool, error) {
	var count int
	err := db.GetContext(ctx, &count, fmt.Sprintf(`SELECT COUNT(*) FROM %q`, table))
	if err != nil {
		return false, errors.Wrapf(err, "counting %s", table)
	}
	return count == 0, nil
}

// resetSequence realigns the id sequence after rows were inserted with
// explicit ids.
func resetSequence(ctx context.Context, db *sqlx.DB, table string) error {
	q := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%q', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %q))`, table, table)
	_, err := db.ExecContext(ctx, q)
	return errors.Wrapf(err, "resetting %s sequence", table)
}

func seedUsers(ctx context.Context, db *sqlx.DB) error {
	for _, usr := range user.Fixtures() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO "user" (id, name, email, password, role) VALUES ($1, $2, $3, $4, $5)`,
			usr.ID, usr.Name, usr.Email, usr.Password, usr.Role,
		)
		if err != nil {
			return errors.Wrap(err, "seeding users")
		}
	}
	return nil
}

func seedStudents(ctx context.Context, db *sqlx.DB) error {
	for _, s := range college.FixtureStudents() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO student (id, name, email, course, year) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.Name, s.Email, s.Course, s.Year,
		)
		if err != nil {
			return errors.Wrap(err, "seeding students")
		}
	}
	return nil
}

func seedCourses(ctx context.Context, db *sqlx.DB) error {
	for _, c := range college.FixtureCourses() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO course (id, title, code, credits) VALUES ($1, $2, $3, $4)`,
			c.ID, c.Title, c.Code, c.Credits,
		)
		if err != nil {
			return errors.Wrap(err, "seeding courses")
		}
	}
	return nil
}

func seedFaculty(ctx context.Context, db *sqlx.DB) error {
	for _, f := range college.FixtureFaculty() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO faculty (id, name, department, email) VALUES ($1, $2, $3, $4)`,
			f.ID, f.Name, f.Department, f.Email,
		)
		if err != nil {
			return errors.Wrap(err, "seeding faculty")
		}
	}
	return nil
}

func seedActivities(ctx context.Context, db *sqlx.DB) error {
	for _, a := range college.FixtureActivities() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO activity (id, activity, time) VALUES ($1, $2, $3)`,
			a.ID, a.Activity, a.Time,
		)
		if err != nil {
			return errors.Wrap(err, "seeding activities")
		}
	}
	return nil
}

func seedAttendance(ctx context.Context, db *sqlx.DB) error {
	for _, a := range college.FixtureAttendance() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO attendance (id, student_id, course_id, date, status) VALUES ($1, $2, $3, $4, $5)`,
			a.ID, a.StudentID, a.CourseID, a.Date, a.Status,
		)
		if err != nil {
			return errors.Wrap(err, "seeding attendance")
		}
	}
	return nil
}

func seedAssignments(ctx context.Context, db *sqlx.DB) error {
	for _, a := range college.FixtureAssignments() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO assignment (id, title, description, course_id, due_date, created_by) VALUES ($1, $2, $3, $4, $5, $6)`,
			a.ID, a.Title, a.Description, a.CourseID, a.DueDate, a.CreatedBy,
		)
		if err != nil {
			return errors.Wrap(err, "seeding assignments")
		}
	}
	return nil
}

func seedExams(ctx context.Context, db *sqlx.DB) error {
	for _, e := range college.FixtureExams() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO exam (id, title, course_id, date, duration, total_marks) VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, e.Title, e.CourseID, e.Date, e.Duration, e.TotalMarks,
		)
		if err != nil {
			return errors.Wrap(err, "seeding exams")
		}
	}
	return nil
}

func seedGrades(ctx context.Context, db *sqlx.DB) error {
	for _, g := range college.FixtureGrades() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO grade (id, student_id, exam_id, marks, grade) VALUES ($1, $2, $3, $4, $5)`,
			g.ID, g.StudentID, g.ExamID, g.Marks, g.Grade,
		)
		if err != nil {
			return errors.Wrap(err, "seeding grades")
		}
	}
	return nil
}

func seedNotifications(ctx context.Context, db *sqlx.DB) error {
	for _, n := range college.FixtureNotifications() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO notification (id, user_id, title, message, type, read, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			n.ID, n.UserID, n.Title, n.Message, n.Type, n.Read, n.CreatedAt,
		)
		if err != nil {
			return errors.Wrap(err, "seeding notifications")
		}
	}
	return nil
}

func seedMessages(ctx context.Context, db *sqlx.DB) error {
	for _, m := range college.FixtureMessages() {
		_, err := db.ExecContext(ctx,
			`INSERT INTO message (id, sender_id, receiver_id, subject, message, read, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.ID, m.SenderID, m.ReceiverID, m.Subject, m.Message, m.Read, m.CreatedAt,
		)
		if err != nil {
			return errors.Wrap(err, "seeding messages")
		}
	}
	return nil
}
