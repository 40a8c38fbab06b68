package clinic

import "github.com/google/uuid"

// Employee holds the identity fields shared by every staff member.
// Concrete staff types embed it rather than subclass it.
type Employee struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Phone     string
}

func newEmployee(firstName, lastName, phone string) Employee {
	return Employee{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
