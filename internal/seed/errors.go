package seed

import "errors"

var (
	ErrInvalidDataset   = errors.New("invalid dataset")
	ErrDatabaseNotEmpty = errors.New("database already contains strains")
)
