package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCourseName(t *testing.T) {
	valid := []string{"E115", "CSC216", "CSC216A", "MATH241", "MA241A"}
	for _, name := range valid {
		assert.NoError(t, ValidateCourseName(name), name)
	}

	invalid := []string{"", "216", "CSC", "CSC21", "CSC2161", "CSCSC216", "CSC216AB", "CSC216A1", "CS-216", "CSC 216"}
	for _, name := range invalid {
		assert.Error(t, ValidateCourseName(name), name)
	}
}
