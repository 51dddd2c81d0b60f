package services

import (
	"context"
	"errors"
	"sync"

	"sysmap-backend/domain"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("store unavailable")

// fakeStore is an in-memory stand-in for the Supabase-backed readers.
// Error injection is per system id so single branches can fail.
type fakeStore struct {
	mu sync.Mutex

	systems    map[uuid.UUID]domain.System
	childrenOf map[uuid.UUID][]domain.System
	interfaces []domain.Interface

	getErr        map[uuid.UUID]error
	listErr       map[uuid.UUID]error
	interfacesErr error

	// blockGet, when set, makes GetSystem wait until released.
	blockGet chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		systems:    make(map[uuid.UUID]domain.System),
		childrenOf: make(map[uuid.UUID][]domain.System),
		getErr:     make(map[uuid.UUID]error),
		listErr:    make(map[uuid.UUID]error),
	}
}

func (f *fakeStore) addSystem(s domain.System) {
	f.systems[s.ID] = s
	if s.ParentID != nil {
		f.childrenOf[*s.ParentID] = append(f.childrenOf[*s.ParentID], s)
	}
}

func (f *fakeStore) GetSystem(ctx context.Context, id uuid.UUID) (*domain.System, error) {
	f.mu.Lock()
	block := f.blockGet
	f.mu.Unlock()
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.getErr[id]; ok {
		return nil, err
	}
	s, ok := f.systems[id]
	if !ok {
		return nil, errors.New("system not found")
	}
	return &s, nil
}

func (f *fakeStore) ListSystemsByParent(ctx context.Context, parentID *uuid.UUID) ([]domain.System, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if parentID == nil {
		var roots []domain.System
		for _, s := range f.systems {
			if s.ParentID == nil {
				roots = append(roots, s)
			}
		}
		return roots, nil
	}
	if err, ok := f.listErr[*parentID]; ok {
		return nil, err
	}
	return f.childrenOf[*parentID], nil
}

func (f *fakeStore) GetInterface(ctx context.Context, id uuid.UUID) (*domain.Interface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.interfaces {
		if row.ID == id {
			r := row
			return &r, nil
		}
	}
	return nil, errors.New("interface not found")
}

func (f *fakeStore) ListInterfacesTouching(ctx context.Context, ids []uuid.UUID) ([]domain.Interface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.interfacesErr != nil {
		return nil, f.interfacesErr
	}
	member := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		member[id] = struct{}{}
	}
	var out []domain.Interface
	for _, row := range f.interfaces {
		if _, ok := member[row.System1ID]; ok {
			out = append(out, row)
			continue
		}
		if _, ok := member[row.System2ID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// newSystem builds a system row for tests.
func newSystem(name, category string, parentID *uuid.UUID) domain.System {
	return domain.System{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		ParentID: parentID,
	}
}

func newInterface(a, b uuid.UUID, connection string, directional int) domain.Interface {
	return domain.Interface{
		ID:          uuid.New(),
		System1ID:   a,
		System2ID:   b,
		Connection:  connection,
		Directional: directional,
	}
}
