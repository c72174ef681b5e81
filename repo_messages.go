package forum

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Messages is the message repository.
type Messages interface {
	repository.Repository[*Message]

	ListByThread(ctx context.Context, threadID uuid.UUID) ([]*Message, error)
	Create(ctx context.Context, record *Message, criteria ...repository.InsertCriteria) (*Message, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *Message, criteria ...repository.InsertCriteria) (*Message, error)
}

type messages struct {
	repository.Repository[*Message]
	db *bun.DB
}

var _ Messages = (*messages)(nil)

func NewMessagesRepository(db *bun.DB) Messages {
	repo := repository.NewRepository[*Message](db, repository.ModelHandlers[*Message]{
		NewRecord: func() *Message { return &Message{} },
		GetID: func(m *Message) uuid.UUID {
			if m == nil {
				return uuid.Nil
			}
			return m.ID
		},
		SetID: func(m *Message, id uuid.UUID) {
			if m != nil {
				m.ID = id
			}
		},
	})

	return &messages{
		Repository: repo,
		db:         db,
	}
}

func (a *messages) ListByThread(ctx context.Context, threadID uuid.UUID) ([]*Message, error) {
	var records []*Message
	err := a.db.NewSelect().
		Model(&records).
		Where("?TableAlias.thread_id = ?", threadID.String()).
		Order("created_at ASC").
		Scan(ctx)

	return records, err
}

func (a *messages) Create(ctx context.Context, record *Message, criteria ...repository.InsertCriteria) (*Message, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *messages) CreateTx(ctx context.Context, tx bun.IDB, record *Message, criteria ...repository.InsertCriteria) (*Message, error) {
	if record != nil && record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}
