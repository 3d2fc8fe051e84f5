package workbook

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sproutlife/inventory-insights/internal/domain/entity"
	"github.com/sproutlife/inventory-insights/pkg/logger"
)

// SnapshotStore mantiene el snapshot vigente y lo reemplaza por swap de
// puntero en cada refresh. Los lectores concurrentes obtienen el puntero bajo
// RLock y después trabajan sin locks: el snapshot es inmutable.
type SnapshotStore struct {
	loader *Loader
	log    *logger.Logger

	mu      sync.RWMutex
	current *entity.Snapshot
}

// NewSnapshotStore construye el store. No carga nada: la primera lectura o un
// Refresh explícito disparan la carga inicial.
func NewSnapshotStore(loader *Loader, log *logger.Logger) *SnapshotStore {
	return &SnapshotStore{loader: loader, log: log}
}

// Snapshot devuelve el snapshot vigente, cargándolo si aún no existe.
func (s *SnapshotStore) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	s.mu.RLock()
	snap := s.current
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}
	return s.Refresh(ctx)
}

// Refresh recarga el libro y publica el snapshot nuevo. Si la carga falla, el
// snapshot anterior sigue vigente: un refresh fallido nunca deja al tablero
// sin datos.
func (s *SnapshotStore) Refresh(ctx context.Context) (*entity.Snapshot, error) {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	snap.ID = uuid.NewString()
	snap.LoadedAt = time.Now().UTC()

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	s.log.Info().Str("snapshot_id", snap.ID).Msg("Snapshot publicado")
	return snap, nil
}
