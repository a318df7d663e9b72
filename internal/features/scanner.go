package features

import "github.com/augurk/augurk/pkg/repository"

func scanFeature(s repository.Scanner) (Feature, error) {
	var f Feature
	err := s.Scan(
		&f.ID,
		&f.Product,
		&f.Group,
		&f.Title,
		&f.Version,
		&f.Payload,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}
