package user

import "strings"

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// CreateUserRequest uses pointer fields so "absent" can be told apart from
// a zero value. All three fields are required; presence is the only
// validation, values are stored as given.
type CreateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
}

// MissingFields lists absent required fields in declaration order, for the
// "Missing required fields: ..." error.
func (r CreateUserRequest) MissingFields() []string {
	var missing []string

	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Email == nil {
		missing = append(missing, "email")
	}
	if r.Age == nil {
		missing = append(missing, "age")
	}

	return missing
}

func JoinFields(fields []string) string {
	return strings.Join(fields, ", ")
}

// UpdateUserRequest supports partial updates: only fields present in the
// body overwrite the stored record.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
}

func (r UpdateUserRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Age == nil
}

func (r UpdateUserRequest) ApplyTo(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Age != nil {
		u.Age = *r.Age
	}
}
