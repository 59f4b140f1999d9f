package service

import (
	"context"

	"github.com/Albertgui/teg-backend/internal/worker"
)

// Notificador abstracts the fire-and-forget notification sink. Satisfied by
// *worker.Dispatcher; stubbed in tests. Enqueue failures never propagate to
// the caller — services log and swallow them.
type Notificador interface {
	EnqueueProyecto(ctx context.Context, payload worker.ProyectoNotificacion) error
	EnqueuePartida(ctx context.Context, payload worker.PartidaNotificacion) error
	EnqueueEmail(ctx context.Context, payload worker.AsignacionEmail) error
}
