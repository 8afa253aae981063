package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/medverify/pkg/validator"
)

func TestInSet(t *testing.T) {
	set := map[string]bool{"CARDIOLOGY": true, "ENT": true}
	contains := func(v string) bool { return set[strings.ToUpper(strings.TrimSpace(v))] }

	t.Run("members pass", func(t *testing.T) {
		for _, v := range []string{"Cardiology", "cardiology", " ENT "} {
			assert.True(t, validator.InSet("specialty", v, contains, "approved specialties").Check(), v)
		}
	})

	t.Run("non-members fail", func(t *testing.T) {
		rule := validator.InSet("specialty", "FakeSpecialty", contains, "approved specialties")
		assert.False(t, rule.Check())
		assert.Equal(t, "must be one of the approved specialties", rule.Error.Message)
	})

	t.Run("blank never reaches the predicate", func(t *testing.T) {
		called := false
		rule := validator.InSet("specialty", "  ", func(string) bool { called = true; return true }, "x")
		assert.False(t, rule.Check())
		assert.False(t, called)
	})
}
