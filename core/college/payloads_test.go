package college

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/elimu/core"
)

func newTestValidator() *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())
	return validate
}

func Test_NewStudent_Validate(t *testing.T) {
	validate := newTestValidator()

	n := NewStudent{Name: "  Jane Doe ", Email: " JANE@student.edu "}
	assert.NoError(t, n.Validate(validate))
	assert.Equal(t, "Jane Doe", n.Name)
	assert.Equal(t, "jane@student.edu", n.Email)

	n = NewStudent{Email: "jane@student.edu"}
	assert.Error(t, n.Validate(validate))

	n = NewStudent{Name: "Jane", Email: "nope"}
	assert.Error(t, n.Validate(validate))
}

func Test_NewAttendance_Validate(t *testing.T) {
	validate := newTestValidator()

	n := NewAttendance{StudentID: 1, CourseID: 1, Date: "2024-01-15", Status: StatusLate}
	assert.NoError(t, n.Validate(validate))

	n = NewAttendance{StudentID: 1, CourseID: 1, Date: "2024-01-15", Status: "sick"}
	assert.Error(t, n.Validate(validate))
}

func Test_AttendanceFilter_IsEmpty(t *testing.T) {
	assert.True(t, AttendanceFilter{}.IsEmpty())
	assert.False(t, AttendanceFilter{StudentID: 1}.IsEmpty())
	assert.False(t, AttendanceFilter{Date: "2024-01-15"}.IsEmpty())
}
