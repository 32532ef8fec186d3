package activitylog

import (
	"context"
	"errors"
	"testing"

	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	entries []activitylog.Entry
	err     error
}

func (f *fakeRepo) Create(ctx context.Context, e activitylog.Entry) (activitylog.Entry, error) {
	if f.err != nil {
		return activitylog.Entry{}, f.err
	}
	f.entries = append(f.entries, e)
	return e, nil
}

func TestActivityLogService_Record_DefaultsToSuccess(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewActivityLogService(repo)

	svc.Record(context.Background(), activitylog.Entry{ActivityType: activitylog.TypeView, Description: "Viewed dashboard"})

	require.Len(t, repo.entries, 1)
	assert.Equal(t, activitylog.OutcomeSuccess, repo.entries[0].Status)
}

func TestActivityLogService_Record_KeepsFailedOutcome(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewActivityLogService(repo)

	svc.Record(context.Background(), activitylog.Entry{ActivityType: activitylog.TypeLogin, Status: activitylog.OutcomeFailed})

	require.Len(t, repo.entries, 1)
	assert.Equal(t, activitylog.OutcomeFailed, repo.entries[0].Status)
}

func TestActivityLogService_Record_SwallowsErrors(t *testing.T) {
	svc := NewActivityLogService(&fakeRepo{err: errors.New("db down")})

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), activitylog.Entry{ActivityType: activitylog.TypeView})
	})
}
