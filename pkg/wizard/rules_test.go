package wizard_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userdash/pkg/wizard"
)

func TestValidateStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		step   wizard.Step
		record wizard.Record
		fields []string
		msgs   map[string][]string
	}{
		{
			name:   "empty basic info",
			step:   wizard.StepBasicInfo,
			record: wizard.Record{},
			fields: []string{"name", "email"},
			msgs: map[string][]string{
				"name":  {"Name must be at least 2 characters"},
				"email": {"Please enter a valid email address"},
			},
		},
		{
			name:   "name too long",
			step:   wizard.StepBasicInfo,
			record: wizard.Record{Name: strings.Repeat("a", 51), Email: "a@b.co"},
			fields: []string{"name"},
			msgs:   map[string][]string{"name": {"Name must be less than 50 characters"}},
		},
		{
			name:   "email rejects not-an-email",
			step:   wizard.StepBasicInfo,
			record: wizard.Record{Name: "Ada", Email: "not-an-email"},
			fields: []string{"email"},
		},
		{
			name:   "email accepts a@b.co",
			step:   wizard.StepBasicInfo,
			record: wizard.Record{Name: "Ada", Email: "a@b.co"},
		},
		{
			name:   "zipcode rejects four characters",
			step:   wizard.StepAddress,
			record: wizard.Record{Street: "Main St", City: "Rome", Zipcode: "1234"},
			fields: []string{"zipcode"},
			msgs:   map[string][]string{"zipcode": {"Zipcode must be at least 5 characters"}},
		},
		{
			name:   "zipcode accepts five characters",
			step:   wizard.StepAddress,
			record: wizard.Record{Street: "Main St", City: "Rome", Zipcode: "12345"},
		},
		{
			name:   "zipcode too long",
			step:   wizard.StepAddress,
			record: wizard.Record{Street: "Main St", City: "Rome", Zipcode: "12345678901"},
			fields: []string{"zipcode"},
			msgs:   map[string][]string{"zipcode": {"Zipcode must be less than 10 characters"}},
		},
		{
			name:   "address group ignores basic info",
			step:   wizard.StepAddress,
			record: wizard.Record{Street: "Main", City: "R"},
			fields: []string{"street", "city", "zipcode"},
		},
		{
			name:   "review validates both groups",
			step:   wizard.StepReview,
			record: wizard.Record{Name: "A", Street: "Main St", City: "Rome", Zipcode: "12345"},
			fields: []string{"name", "email"},
		},
		{
			name:   "name length counts characters",
			step:   wizard.StepBasicInfo,
			record: wizard.Record{Name: "Ёж", Email: "a@b.co"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verrs := wizard.ValidateStep(tt.step, tt.record)
			assert.Equal(t, tt.fields, verrs.Fields())
			assert.Equal(t, len(tt.fields) == 0, wizard.StepValid(tt.step, tt.record))
			for field, msgs := range tt.msgs {
				assert.Equal(t, msgs, verrs.Get(field))
			}
		})
	}
}

func TestStepHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wizard.StepBasicInfo, wizard.Step(-4).Clamp())
	assert.Equal(t, wizard.StepReview, wizard.Step(9).Clamp())
	assert.False(t, wizard.Step(0).Valid())
	assert.Equal(t, "Address", wizard.StepAddress.Title())
	assert.Equal(t, []string{"Basic Info", "Address", "Review"}, []string{
		wizard.Steps[0].Title(), wizard.Steps[1].Title(), wizard.Steps[2].Title(),
	})
}
