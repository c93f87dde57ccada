package echoapi

import (
	"net/http"
	"net/mail"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/college"
)

type collegeApi struct {
	opts *Options
}

func registerCollegeAPI(g *echo.Group, opts *Options) {
	api := collegeApi{opts: opts}

	sg := g.Group("/students")
	sg.GET("", api.queryStudents)
	sg.POST("", api.createStudent)
	sg.PUT("/:id", api.updateStudent)
	sg.DELETE("/:id", api.destroyStudent)

	cg := g.Group("/courses")
	cg.GET("", api.queryCourses)
	cg.POST("", api.createCourse)
	cg.DELETE("/:id", api.destroyCourse)

	fg := g.Group("/faculty")
	fg.GET("", api.queryFaculty)
	fg.POST("", api.createFaculty)
	fg.DELETE("/:id", api.destroyFaculty)

	g.GET("/activities", api.queryActivities)

	atg := g.Group("/attendance")
	atg.GET("", api.queryAttendance)
	atg.POST("", api.createAttendance)
	atg.PUT("/:id", api.updateAttendance)

	asg := g.Group("/assignments")
	asg.GET("", api.queryAssignments)
	asg.POST("", api.createAssignment)
	asg.DELETE("/:id", api.destroyAssignment)

	eg := g.Group("/exams")
	eg.GET("", api.queryExams)
	eg.POST("", api.createExam)
	eg.DELETE("/:id", api.destroyExam)

	gg := g.Group("/grades")
	gg.GET("", api.queryGrades)
	gg.POST("", api.createGrade)
	gg.PUT("/:id", api.updateGrade)

	ng := g.Group("/notifications")
	ng.GET("", api.queryNotifications)
	ng.POST("", api.createNotification)
	ng.PUT("/:id/read", api.readNotification)

	mg := g.Group("/messages")
	mg.GET("", api.queryMessages)
	mg.POST("", api.createMessage)
	mg.PUT("/:id/read", api.readMessage)
}

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func ok(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Students

func (api *collegeApi) queryStudents(ctx echo.Context) error {
	items, err := api.opts.Repo.QueryStudents(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createStudent(ctx echo.Context) error {
	var data college.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateStudent(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *collegeApi) updateStudent(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var data college.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	updated, err := api.opts.Repo.UpdateStudent(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, updated)
}

func (api *collegeApi) destroyStudent(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.opts.Repo.DeleteStudent(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ok(ctx)
}

// Courses

func (api *collegeApi) queryCourses(ctx echo.Context) error {
	items, err := api.opts.Repo.QueryCourses(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createCourse(ctx echo.Context) error {
	var data college.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateCourse(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *collegeApi) destroyCourse(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.opts.Repo.DeleteCourse(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ok(ctx)
}

// Faculty

func (api *collegeApi) queryFaculty(ctx echo.Context) error {
	items, err := api.opts.Repo.QueryFaculty(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying faculty")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createFaculty(ctx echo.Context) error {
	var data college.NewFaculty
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFaculty")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateFaculty(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating faculty")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *collegeApi) destroyFaculty(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.opts.Repo.DeleteFaculty(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting faculty")
	}
	return ok(ctx)
}

// Activities

func (api *collegeApi) queryActivities(ctx echo.Context) error {
	items, err := api.opts.Repo.QueryActivities(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying activities")
	}
	return ctx.JSON(http.StatusOK, items)
}

// Attendance

func (api *collegeApi) queryAttendance(ctx echo.Context) error {
	var f college.AttendanceFilter
	if err := ctx.Bind(&f); err != nil {
		return errors.Wrap(err, "binding to AttendanceFilter")
	}
	items, err := api.opts.Repo.QueryAttendance(ctx.Request().Context(), f)
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createAttendance(ctx echo.Context) error {
	var data college.NewAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAttendance")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateAttendance(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating attendance")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *collegeApi) updateAttendance(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var data college.UpdateAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateAttendance")
	}
	updated, err := api.opts.Repo.UpdateAttendance(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating attendance")
	}
	return ctx.JSON(http.StatusOK, updated)
}

// Assignments

func (api *collegeApi) queryAssignments(ctx echo.Context) error {
	var f college.AssignmentFilter
	if err := ctx.Bind(&f); err != nil {
		return errors.Wrap(err, "binding to AssignmentFilter")
	}
	items, err := api.opts.Repo.QueryAssignments(ctx.Request().Context(), f)
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createAssignment(ctx echo.Context) error {
	var data college.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateAssignment(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *collegeApi) destroyAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.opts.Repo.DeleteAssignment(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return ok(ctx)
}

// Exams

func (api *collegeApi) queryExams(ctx echo.Context) error {
	var f college.ExamFilter
	if err := ctx.Bind(&f); err != nil {
		return errors.Wrap(err, "binding to ExamFilter")
	}
	items, err := api.opts.Repo.QueryExams(ctx.Request().Context(), f)
	if err != nil {
		return errors.Wrap(err, "querying exams")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createExam(ctx echo.Context) error {
	var data college.NewExam
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewExam")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateExam(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating exam")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *collegeApi) destroyExam(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.opts.Repo.DeleteExam(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting exam")
	}
	return ok(ctx)
}

// Grades

func (api *collegeApi) queryGrades(ctx echo.Context) error {
	var f college.GradeFilter
	if err := ctx.Bind(&f); err != nil {
		return errors.Wrap(err, "binding to GradeFilter")
	}
	items, err := api.opts.Repo.QueryGrades(ctx.Request().Context(), f)
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createGrade(ctx echo.Context) error {
	var data college.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateGrade(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *collegeApi) updateGrade(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var data college.UpdateGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateGrade")
	}
	updated, err := api.opts.Repo.UpdateGrade(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating grade")
	}
	return ctx.JSON(http.StatusOK, updated)
}

// Notifications

func (api *collegeApi) queryNotifications(ctx echo.Context) error {
	var f college.NotificationFilter
	if err := ctx.Bind(&f); err != nil {
		return errors.Wrap(err, "binding to NotificationFilter")
	}
	items, err := api.opts.Repo.QueryNotifications(ctx.Request().Context(), f)
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createNotification(ctx echo.Context) error {
	var data college.NewNotification
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNotification")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateNotification(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating notification")
	}
	api.notifyByEmail(ctx, created)
	return ctx.JSON(http.StatusCreated, created)
}

// notifyByEmail mirrors a stored notification to the recipient's inbox.
// Best effort; a missing user or a dead mailer never fails the request.
func (api *collegeApi) notifyByEmail(ctx echo.Context, n college.Notification) {
	if api.opts.Mail == nil {
		return
	}
	users, err := api.opts.UserSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		api.opts.Logger.Warning("notification email skipped", err)
		return
	}
	for _, usr := range users {
		if usr.ID == n.UserID {
			api.opts.Mail.SendMessages(&core.EmailMessage{
				To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
				Subject: n.Title,
				Body:    n.Message,
			})
			return
		}
	}
}

func (api *collegeApi) readNotification(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.opts.Repo.MarkNotificationRead(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "marking notification read")
	}
	return ok(ctx)
}

// Messages

func (api *collegeApi) queryMessages(ctx echo.Context) error {
	var f college.MessageFilter
	if err := ctx.Bind(&f); err != nil {
		return errors.Wrap(err, "binding to MessageFilter")
	}
	items, err := api.opts.Repo.QueryMessages(ctx.Request().Context(), f)
	if err != nil {
		return errors.Wrap(err, "querying messages")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *collegeApi) createMessage(ctx echo.Context) error {
	var data college.NewMessage
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}
	if err := data.Validate(api.opts.Validate); err != nil {
		return err
	}
	created, err := api.opts.Repo.CreateMessage(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating message")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *collegeApi) readMessage(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.opts.Repo.MarkMessageRead(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "marking message read")
	}
	return ok(ctx)
}
