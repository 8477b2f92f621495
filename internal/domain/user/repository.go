package user

import "context"

// Repository defines the persistence port for users.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, u *User) error
	List(ctx context.Context, offset, limit int) ([]*User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
