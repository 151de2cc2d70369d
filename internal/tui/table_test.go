package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userdash/pkg/directory"
)

func TestUsersTable(t *testing.T) {
	t.Parallel()

	users := []directory.User{
		{ID: 1, Name: "Leanne Graham", Email: "Sincere@april.biz", Address: directory.Address{City: "Gwenborough"}, Company: directory.Company{Name: "Romaguera-Crona"}},
		{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv", Address: directory.Address{City: "Wisokyburgh"}},
	}

	t.Run("unfiltered", func(t *testing.T) {
		t.Parallel()
		out := UsersTable(directory.Listing{Users: users, Total: 2, Shown: 2})

		for _, want := range []string{"NAME", "Leanne Graham", "Gwenborough", "Romaguera-Crona", "Ervin Howell"} {
			assert.Contains(t, out, want)
		}
		assert.Contains(t, out, "Showing 2 users")
	})

	t.Run("filtered", func(t *testing.T) {
		t.Parallel()
		out := UsersTable(directory.Listing{Query: "gwen", Users: users[:1], Total: 2, Shown: 1, Filtered: true})

		assert.Contains(t, out, "Leanne Graham")
		assert.NotContains(t, out, "Ervin Howell")
		assert.Contains(t, out, `Showing 1 of 2 users matching "gwen"`)
	})
}
