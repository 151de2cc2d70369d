package directory

import "strings"

type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// User is a directory entry as returned by the upstream API.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// Filter returns the users whose name or city contains query, ignoring case.
// The query is trimmed first, so surrounding spaces never narrow the match
// and a blank query returns everyone. The input slice is not modified.
func Filter(users []User, query string) []User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append(make([]User, 0, len(users)), users...)
	}

	out := make([]User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Address.City), q) {
			out = append(out, u)
		}
	}
	return out
}
