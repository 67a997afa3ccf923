// Package demo simulates a small storage layer whose failures are located
// errors, for exercising the library end to end.
package demo

import "github.com/pipe01/errat"

// User is a record in the simulated database.
type User struct {
	ID   uint64
	Name string
}

// Database holds the simulated records.
type Database struct {
	users map[uint64]User
}

func New() *Database {
	return &Database{
		users: map[uint64]User{
			123: {ID: 123, Name: "Alice"},
			124: {ID: 124, Name: ""},
		},
	}
}

// Connect always fails, logging the failure as it is created.
func Connect() (*Database, error) {
	return nil, errat.NewLogged("database connection timeout")
}

// User looks up a user by ID.
func (d *Database) User(id uint64) (User, error) {
	u, ok := d.users[id]
	if !ok {
		return User{}, errat.Newf("user not found with ID: %d", id)
	}

	return u, nil
}

// Process fetches a user and validates it, propagating failures up the
// chain with extra context.
func (d *Database) Process(id uint64) error {
	u, err := d.User(id)
	if err != nil {
		return errat.Newf("process user %d: %v", id, err)
	}

	if u.Name == "" {
		return errat.NewLoggedf("user %d has an empty name", id)
	}

	return nil
}
