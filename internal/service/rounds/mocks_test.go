package rounds

import (
	"context"
	"sync"
	"time"

	"github.com/fairwaylabs/golftrack-backend/internal/domain"
)

var (
	_ roundRepo = &roundRepoMock{}
	_ txManager = &txManagerMock{}
)

type roundRepoMock struct {
	InsertRoundFunc            func(ctx context.Context, course string, playedAt time.Time) (int64, error)
	InsertHoleEntriesFunc      func(ctx context.Context, roundID int64, holes []domain.HoleEntry) error
	ListSummariesFunc          func(ctx context.Context) ([]domain.RoundSummary, error)
	GetSummaryFunc             func(ctx context.Context, roundID int64) (*domain.RoundSummary, error)
	ListHoleEntriesByRoundFunc func(ctx context.Context, roundID int64) ([]domain.HoleEntry, error)

	calls struct {
		InsertRound []struct {
			Course   string
			PlayedAt time.Time
		}
		InsertHoleEntries []struct {
			RoundID int64
			Holes   []domain.HoleEntry
		}
	}
	lockInsertRound       sync.RWMutex
	lockInsertHoleEntries sync.RWMutex
}

func (mock *roundRepoMock) InsertRound(ctx context.Context, course string, playedAt time.Time) (int64, error) {
	if mock.InsertRoundFunc == nil {
		panic("roundRepoMock.InsertRoundFunc: method is nil but roundRepo.InsertRound was just called")
	}
	callInfo := struct {
		Course   string
		PlayedAt time.Time
	}{Course: course, PlayedAt: playedAt}
	mock.lockInsertRound.Lock()
	mock.calls.InsertRound = append(mock.calls.InsertRound, callInfo)
	mock.lockInsertRound.Unlock()
	return mock.InsertRoundFunc(ctx, course, playedAt)
}

func (mock *roundRepoMock) InsertRoundCalls() []struct {
	Course   string
	PlayedAt time.Time
} {
	mock.lockInsertRound.RLock()
	calls := mock.calls.InsertRound
	mock.lockInsertRound.RUnlock()
	return calls
}

func (mock *roundRepoMock) InsertHoleEntries(ctx context.Context, roundID int64, holes []domain.HoleEntry) error {
	if mock.InsertHoleEntriesFunc == nil {
		panic("roundRepoMock.InsertHoleEntriesFunc: method is nil but roundRepo.InsertHoleEntries was just called")
	}
	callInfo := struct {
		RoundID int64
		Holes   []domain.HoleEntry
	}{RoundID: roundID, Holes: holes}
	mock.lockInsertHoleEntries.Lock()
	mock.calls.InsertHoleEntries = append(mock.calls.InsertHoleEntries, callInfo)
	mock.lockInsertHoleEntries.Unlock()
	return mock.InsertHoleEntriesFunc(ctx, roundID, holes)
}

func (mock *roundRepoMock) InsertHoleEntriesCalls() []struct {
	RoundID int64
	Holes   []domain.HoleEntry
} {
	mock.lockInsertHoleEntries.RLock()
	calls := mock.calls.InsertHoleEntries
	mock.lockInsertHoleEntries.RUnlock()
	return calls
}

func (mock *roundRepoMock) ListSummaries(ctx context.Context) ([]domain.RoundSummary, error) {
	if mock.ListSummariesFunc == nil {
		panic("roundRepoMock.ListSummariesFunc: method is nil but roundRepo.ListSummaries was just called")
	}
	return mock.ListSummariesFunc(ctx)
}

func (mock *roundRepoMock) GetSummary(ctx context.Context, roundID int64) (*domain.RoundSummary, error) {
	if mock.GetSummaryFunc == nil {
		panic("roundRepoMock.GetSummaryFunc: method is nil but roundRepo.GetSummary was just called")
	}
	return mock.GetSummaryFunc(ctx, roundID)
}

func (mock *roundRepoMock) ListHoleEntriesByRound(ctx context.Context, roundID int64) ([]domain.HoleEntry, error) {
	if mock.ListHoleEntriesByRoundFunc == nil {
		panic("roundRepoMock.ListHoleEntriesByRoundFunc: method is nil but roundRepo.ListHoleEntriesByRound was just called")
	}
	return mock.ListHoleEntriesByRoundFunc(ctx, roundID)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
