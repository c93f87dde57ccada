package college

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CalculateGrade(t *testing.T) {
	tests := []struct {
		marks float64
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{80, "A"},
		{79, "B+"},
		{70, "B+"},
		{69.5, "B"},
		{60, "B"},
		{59, "C+"},
		{50, "C+"},
		{49, "C"},
		{40, "C"},
		{39.9, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateGrade(tt.marks), "marks=%v", tt.marks)
	}
}

func Test_NewGrade_derivesLetter(t *testing.T) {
	n := NewGrade{StudentID: 1, ExamID: 1, Marks: 85}
	assert.NoError(t, n.Validate(newTestValidator()))
	assert.Equal(t, "A", n.Grade)

	// an explicit letter is kept as-is
	n = NewGrade{StudentID: 1, ExamID: 1, Marks: 85, Grade: "B"}
	assert.NoError(t, n.Validate(newTestValidator()))
	assert.Equal(t, "B", n.Grade)
}
