package employees

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/staffbook/internal/models"
)

var (
	demoFirstnames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Margaret", "Ken"}
	demoLastnames  = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Hamilton", "Thompson"}
)

// Seed fills an empty registry with count demo employees and returns how many were created.
// A registry that already holds employees is left untouched. Generated emails that do not
// validate are left blank.
func (s *Staff) Seed(ctx context.Context, count int, newEmail func() string) (int, error) {
	const opn = "Employee.Seed"
	log := s.initLogger(opn)

	existing, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees before seeding: %w", err)
	}
	if existing > 0 {
		log.InfoContext(ctx, "Registry is not empty, seeding skipped", "employees", existing)
		return 0, nil
	}

	var invalidCounter int

	for index := range count {
		employee := demoEmployee(index)

		employee.Email = newEmail()
		if isEmail, _ := ValidateEmployee(employee.Email, ""); !isEmail {
			log.DebugContext(ctx, "Generated email is invalid, left blank", "email", employee.Email)
			employee.Email = ""
			invalidCounter++
		}

		if _, err = s.Create(ctx, employee); err != nil {
			return index, fmt.Errorf("failed to seed employee %d: %w", index+1, err)
		}
	}

	if invalidCounter != 0 {
		log.WarnContext(ctx, "Some demo employees were seeded without email", "value", invalidCounter)
	}

	log.InfoContext(ctx, "Registry seeded", "employees", count)

	return count, nil
}

func demoEmployee(index int) models.Employee {
	return models.Employee{
		Firstname: demoFirstnames[index%len(demoFirstnames)],
		Lastname:  demoLastnames[(index/len(demoFirstnames)+index)%len(demoLastnames)],
		Address:   fmt.Sprintf("%d Registry Street", index+1),
		Phone:     fmt.Sprintf("+1555%07d", index+1),
	}
}
