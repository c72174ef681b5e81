package forum

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Threads is the thread repository. Plumbing: the only contract the identity
// layer cares about is that PostedBy identifies the owner.
type Threads interface {
	repository.Repository[*Thread]

	FindByID(ctx context.Context, id string) (*Thread, error)
	ListRecent(ctx context.Context) ([]*Thread, error)
	Create(ctx context.Context, record *Thread, criteria ...repository.InsertCriteria) (*Thread, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *Thread, criteria ...repository.InsertCriteria) (*Thread, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*Thread, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type threads struct {
	repository.Repository[*Thread]
	db *bun.DB
}

var _ Threads = (*threads)(nil)

func NewThreadsRepository(db *bun.DB) Threads {
	repo := repository.NewRepository[*Thread](db, repository.ModelHandlers[*Thread]{
		NewRecord: func() *Thread { return &Thread{} },
		GetID: func(t *Thread) uuid.UUID {
			if t == nil {
				return uuid.Nil
			}
			return t.ID
		},
		SetID: func(t *Thread, id uuid.UUID) {
			if t != nil {
				t.ID = id
			}
		},
	})

	return &threads{
		Repository: repo,
		db:         db,
	}
}

func (a *threads) FindByID(ctx context.Context, id string) (*Thread, error) {
	tid, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{"id": id})
	}

	record := &Thread{}
	err = a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", tid.String()).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"id": id})
		}
		return nil, err
	}

	return record, nil
}

func (a *threads) ListRecent(ctx context.Context) ([]*Thread, error) {
	var records []*Thread
	err := a.db.NewSelect().
		Model(&records).
		Order("created_at DESC").
		Scan(ctx)

	return records, err
}

func (a *threads) Create(ctx context.Context, record *Thread, criteria ...repository.InsertCriteria) (*Thread, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *threads) CreateTx(ctx context.Context, tx bun.IDB, record *Thread, criteria ...repository.InsertCriteria) (*Thread, error) {
	if record != nil && record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}

// UpdateTitle writes only the title and updated_at columns. A whole-record
// update would zero posted_by and with it the thread's ownership.
func (a *threads) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (*Thread, error) {
	res, err := a.db.NewUpdate().
		Model((*Thread)(nil)).
		Set("title = ?", title).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id.String()).
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, repository.NewRecordNotFound().
			WithMetadata(map[string]any{"id": id.String()})
	}

	return a.FindByID(ctx, id.String())
}

func (a *threads) Remove(ctx context.Context, id uuid.UUID) error {
	_, err := a.db.NewDelete().
		Model((*Thread)(nil)).
		Where("id = ?", id.String()).
		Exec(ctx)

	return err
}
