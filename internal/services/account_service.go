package services

import (
	"context"
	"time"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	mem "roamio/pkg/memcache"
	"roamio/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*db_models.Account, error)
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	Logout(ctx context.Context, token string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	revoked     mem.RevokedTokenStore
}

func NewAccountService(accountRepo repositories.AccountRepository, revoked mem.RevokedTokenStore) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo, revoked: revoked}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*db_models.Account, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account, err := a.accountRepo.Create(ctx, db_models.Account{
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout revokes the token until its natural expiry so the auth
// middleware rejects any further use of it.
func (a *AccountService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return utils.ErrInvalidCredentials
	}
	// Validation accepts a signed token without an exp claim; tokens
	// issued here always carry one, so anything without it is foreign.
	if claims.ExpiresAt == nil {
		return utils.ErrInvalidCredentials
	}
	a.revoked.Revoke(token, time.Until(claims.ExpiresAt.Time))
	return nil
}
