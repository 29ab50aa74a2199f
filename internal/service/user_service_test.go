package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var rules = EmailRules{
	TeacherDomain: "@ormiston.school.nz",
	StudentPrefix: "st",
	DevPrefix:     "st23030",
}

func TestEmailRulesTeacher(t *testing.T) {
	assert.True(t, rules.IsTeacher("j.smith@ormiston.school.nz"))
	assert.False(t, rules.IsTeacher("st12345@ormiston.school.nz"), "student prefix")
	assert.False(t, rules.IsTeacher("j.smith@gmail.com"), "foreign domain")
}

func TestEmailRulesDev(t *testing.T) {
	assert.True(t, rules.IsDev("st23030@ormiston.school.nz"))
	assert.False(t, rules.IsDev("st12345@ormiston.school.nz"))
	// разработчик проходит только по dev-правилу, не как учитель
	assert.False(t, rules.IsTeacher("st23030@ormiston.school.nz"))
}
