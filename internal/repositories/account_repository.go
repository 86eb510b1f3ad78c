package repositories

import (
	"context"
	"strings"
	"time"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
)

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Create(ctx context.Context, account db_models.Account) (db_models.Account, error)
}

func NewAccountRepository(db *infra.MemoryDB) AccountRepository {
	return &accountRepository{db: db}
}

type accountRepository struct {
	db *infra.MemoryDB
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, a := range r.db.Accounts.List() {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *accountRepository) Create(ctx context.Context, account db_models.Account) (db_models.Account, error) {
	return r.db.Accounts.Insert(func(id int) db_models.Account {
		account.ID = id
		account.CreatedAt = time.Now()
		return account
	}), nil
}
