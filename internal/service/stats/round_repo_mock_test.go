package stats

import (
	"context"
	"sync"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

var _ roundRepo = &roundRepoMock{}

type roundRepoMock struct {
	ListSummariesFunc   func(ctx context.Context) ([]domain.RoundSummary, error)
	ListHoleEntriesFunc func(ctx context.Context) ([]domain.HoleEntry, error)

	calls struct {
		ListSummaries []struct {
			Ctx context.Context
		}
		ListHoleEntries []struct {
			Ctx context.Context
		}
	}
	lockListSummaries   sync.RWMutex
	lockListHoleEntries sync.RWMutex
}

func (mock *roundRepoMock) ListSummaries(ctx context.Context) ([]domain.RoundSummary, error) {
	if mock.ListSummariesFunc == nil {
		panic("roundRepoMock.ListSummariesFunc: method is nil but roundRepo.ListSummaries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListSummaries.Lock()
	mock.calls.ListSummaries = append(mock.calls.ListSummaries, callInfo)
	mock.lockListSummaries.Unlock()
	return mock.ListSummariesFunc(ctx)
}

func (mock *roundRepoMock) ListSummariesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSummaries.RLock()
	calls := mock.calls.ListSummaries
	mock.lockListSummaries.RUnlock()
	return calls
}

func (mock *roundRepoMock) ListHoleEntries(ctx context.Context) ([]domain.HoleEntry, error) {
	if mock.ListHoleEntriesFunc == nil {
		panic("roundRepoMock.ListHoleEntriesFunc: method is nil but roundRepo.ListHoleEntries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListHoleEntries.Lock()
	mock.calls.ListHoleEntries = append(mock.calls.ListHoleEntries, callInfo)
	mock.lockListHoleEntries.Unlock()
	return mock.ListHoleEntriesFunc(ctx)
}

func (mock *roundRepoMock) ListHoleEntriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListHoleEntries.RLock()
	calls := mock.calls.ListHoleEntries
	mock.lockListHoleEntries.RUnlock()
	return calls
}
