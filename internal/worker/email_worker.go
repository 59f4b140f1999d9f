package worker

// email_worker.go
// Processes assignment emails from QueueEmail: when a responsable is assigned
// to a project, a short notice is sent to their registered address.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Albertgui/teg-backend/internal/infra"

	"github.com/rs/zerolog/log"
)

// AsignacionEmail is the job envelope sent to QueueEmail.
type AsignacionEmail struct {
	To                string  `json:"to"`
	NombreResponsable string  `json:"nombre_responsable"`
	NombreProyecto    string  `json:"nombre_proyecto"`
	Rol               *string `json:"rol"`
}

// EmailWorker sends assignment notices through the SMTP mailer.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload AsignacionEmail
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.To == "" {
		log.Warn().Msg("email_worker: empty to address — skipping")
		return
	}

	subject := fmt.Sprintf("Asignación al proyecto %s", payload.NombreProyecto)
	body := fmt.Sprintf("Hola %s,\n\nHas sido asignado al proyecto %q.",
		payload.NombreResponsable, payload.NombreProyecto)
	if payload.Rol != nil && *payload.Rol != "" {
		body += fmt.Sprintf(" Rol: %s.", *payload.Rol)
	}
	body += "\n\nSaludos."

	if err := w.mailer.Send(payload.To, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.To).Msg("email_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.To).Msg("email_worker: asignacion notificada")
}
