package forum

import (
	"context"
	"strings"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var clearAccessTokenSQL = `UPDATE "users" AS "usr"
SET
	"access_token" = NULL,
	"updated_at" = CURRENT_TIMESTAMP
WHERE
	"usr"."deleted_at" IS NULL
AND (
	"usr"."access_token" = ?
) RETURNING *;`

// Users is the account repository. It doubles as the CredentialStore the
// identity layer consumes.
type Users interface {
	repository.Repository[*User]

	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error)
	FindByAccessToken(ctx context.Context, accessToken string) (*User, error)
	FindByAccessTokenTx(ctx context.Context, tx bun.IDB, accessToken string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByIDTx(ctx context.Context, tx bun.IDB, id string) (*User, error)
	ClearAccessToken(ctx context.Context, accessToken string) (*User, error)
	ClearAccessTokenTx(ctx context.Context, tx bun.IDB, accessToken string) (*User, error)

	Register(ctx context.Context, user *User) (*User, error)
	RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error)
	Create(ctx context.Context, record *User, criteria ...repository.InsertCriteria) (*User, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *User, criteria ...repository.InsertCriteria) (*User, error)
}

type users struct {
	repository.Repository[*User]
	db *bun.DB
}

var (
	_ Users           = (*users)(nil)
	_ CredentialStore = (*users)(nil)
)

func NewUsersRepository(db *bun.DB) Users {
	repo := repository.NewRepository[*User](db, repository.ModelHandlers[*User]{
		NewRecord: func() *User { return &User{} },
		GetID: func(u *User) uuid.UUID {
			if u == nil {
				return uuid.Nil
			}
			return u.ID
		},
		SetID: func(u *User, id uuid.UUID) {
			if u != nil {
				u.ID = id
			}
		},
		GetIdentifier: func() string {
			return "email"
		},
	})

	return &users{
		Repository: repo,
		db:         db,
	}
}

func (a *users) FindByEmail(ctx context.Context, email string) (*User, error) {
	return a.FindByEmailTx(ctx, a.db, email)
}

func (a *users) FindByEmailTx(ctx context.Context, tx bun.IDB, email string) (*User, error) {
	// emails are stored lowercased, normalize the probe the same way
	return a.getOne(ctx, tx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (a *users) FindByAccessToken(ctx context.Context, accessToken string) (*User, error) {
	return a.FindByAccessTokenTx(ctx, a.db, accessToken)
}

func (a *users) FindByAccessTokenTx(ctx context.Context, tx bun.IDB, accessToken string) (*User, error) {
	return a.getOne(ctx, tx, "access_token", accessToken)
}

func (a *users) FindByID(ctx context.Context, id string) (*User, error) {
	return a.FindByIDTx(ctx, a.db, id)
}

func (a *users) FindByIDTx(ctx context.Context, tx bun.IDB, id string) (*User, error) {
	uid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{"id": id})
	}
	return a.getOne(ctx, tx, "id", uid.String())
}

func (a *users) getOne(ctx context.Context, tx bun.IDB, column, value string) (*User, error) {
	record := &User{}
	err := tx.NewSelect().
		Model(record).
		Where("?TableAlias."+column+" = ?", value).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{column: value})
		}
		return nil, err
	}

	return record, nil
}

// ClearAccessToken nulls the stored third-party token for whichever account
// holds it and returns the updated record. No matching account is reported as
// record-not-found; callers treating revocation as idempotent swallow that.
func (a *users) ClearAccessToken(ctx context.Context, accessToken string) (*User, error) {
	return a.ClearAccessTokenTx(ctx, a.db, accessToken)
}

func (a *users) ClearAccessTokenTx(ctx context.Context, tx bun.IDB, accessToken string) (*User, error) {
	res, err := a.Repository.RawTx(ctx, tx, clearAccessTokenSQL, accessToken)
	if err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{"access_token": accessToken})
	}

	return res[0], nil
}

func (a *users) Register(ctx context.Context, user *User) (*User, error) {
	return a.RegisterTx(ctx, a.db, user)
}

func (a *users) RegisterTx(ctx context.Context, tx bun.IDB, user *User) (*User, error) {
	return a.CreateTx(ctx, tx, user)
}

func (a *users) Create(ctx context.Context, record *User, criteria ...repository.InsertCriteria) (*User, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *users) CreateTx(ctx context.Context, tx bun.IDB, record *User, criteria ...repository.InsertCriteria) (*User, error) {
	prepareUserDefaults(record)
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}

func prepareUserDefaults(record *User) {
	if record == nil {
		return
	}

	record.Email = strings.TrimSpace(strings.ToLower(record.Email))

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}
