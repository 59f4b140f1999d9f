package worker

// telegram_worker.go
// Processes Telegram jobs from QueueTelegram: human-readable project and
// partida summaries pushed after every mutating operation. Delivery is
// best-effort — a failed send is logged and dropped, never retried.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Albertgui/teg-backend/internal/dto"
	"github.com/Albertgui/teg-backend/internal/infra"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Acciones reported in the notification header.
const (
	AccionCreacion    = "CREACIÓN"
	AccionEdicion     = "EDICIÓN"
	AccionEliminacion = "ELIMINACIÓN"
	AccionNuevo       = "NUEVO PROYECTO"
)

// ProyectoNotificacion is the snapshot of a project's derived analytics taken
// right after the primary write. It can lag a concurrent edit — acceptable for
// the notification payload only.
type ProyectoNotificacion struct {
	Accion                 string          `json:"accion"`
	Nombre                 string          `json:"nombre"`
	Estado                 string          `json:"estado"`
	PresupuestoUsado       decimal.Decimal `json:"presupuesto_usado"`
	PresupuestoPlanificado decimal.Decimal `json:"presupuesto_planificado"`
	GananciaActual         decimal.Decimal `json:"ganancia_actual"`
	PorcentajeMargen       decimal.Decimal `json:"porcentaje_margen"`
	PorcentajeAvance       decimal.Decimal `json:"porcentaje_avance"`
}

type PartidaNotificacion struct {
	Accion             string          `json:"accion"`
	NombreProyecto     string          `json:"nombre_proyecto"`
	NombrePartida      string          `json:"nombre_partida"`
	MontoTotal         decimal.Decimal `json:"monto_total"`
	PorcentajeAvance   int             `json:"porcentaje_avance"`
	FechaFinalEstimada *string         `json:"fecha_final_estimada"`
}

// TelegramWorker sends formatted messages through the Bot API client.
type TelegramWorker struct {
	client *infra.TelegramClient
}

func NewTelegramWorker(client *infra.TelegramClient) *TelegramWorker {
	return &TelegramWorker{client: client}
}

func (w *TelegramWorker) Process(ctx context.Context, jobType string, raw json.RawMessage) {
	var mensaje string
	switch jobType {
	case JobProyecto:
		var payload ProyectoNotificacion
		if err := json.Unmarshal(raw, &payload); err != nil {
			log.Error().Err(err).Msg("telegram_worker: invalid proyecto payload")
			return
		}
		mensaje = FormatearMensajeProyecto(payload)
	case JobPartida:
		var payload PartidaNotificacion
		if err := json.Unmarshal(raw, &payload); err != nil {
			log.Error().Err(err).Msg("telegram_worker: invalid partida payload")
			return
		}
		mensaje = FormatearMensajePartida(payload)
	default:
		log.Warn().Str("type", jobType).Msg("telegram_worker: unknown job type dropped")
		return
	}

	if err := w.client.SendMessage(ctx, mensaje); err != nil {
		log.Error().Err(err).Msg("telegram_worker: failed to send message")
		return
	}
	log.Info().Str("type", jobType).Msg("telegram_worker: notification sent")
}

// FormatearMensajeProyecto builds the Markdown summary with the alert lines:
// loss (negative margin), critical margin (≤ 10%), and over-budget.
func FormatearMensajeProyecto(p ProyectoNotificacion) string {
	var alertas []string
	emoji := "🚀"
	if p.PorcentajeMargen.IsNegative() {
		emoji = "💀"
		alertas = append(alertas, fmt.Sprintf("🆘 *ALERTA DE PÉRDIDA:* ¡El proyecto está en números rojos! (%s%%)", p.PorcentajeMargen.StringFixed(2)))
	} else if p.PorcentajeMargen.LessThanOrEqual(decimal.NewFromInt(10)) {
		emoji = "🚨"
		alertas = append(alertas, "⚠️ *ZONA DE RIESGO:* El margen de ganancia es crítico (≤ 10%).")
	}
	if p.PresupuestoUsado.GreaterThan(p.PresupuestoPlanificado) {
		alertas = append(alertas, "💸 *EXCESO DE PRESUPUESTO:* Se ha superado el costo planificado.")
	}

	header := "📊 ACTUALIZACIÓN DE ESTADO"
	switch p.Accion {
	case AccionNuevo:
		header = "✨ ¡NUEVO PROYECTO CREADO!"
	case AccionEdicion:
		header = "⚙️ PROYECTO MODIFICADO"
	case AccionEliminacion:
		header = "🗑️ PROYECTO ELIMINADO"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s* %s\n", emoji, header, emoji)
	fmt.Fprintf(&b, "🏗️ *Obra:* %s\n", p.Nombre)
	fmt.Fprintf(&b, "📉 *Estado:* %s\n\n", strings.ToUpper(p.Estado))
	b.WriteString("💰 *RESUMEN FINANCIERO:*\n")
	fmt.Fprintf(&b, "• Usado: `%s` / `%s`\n", FormatoUSD(p.PresupuestoUsado), FormatoUSD(p.PresupuestoPlanificado))
	fmt.Fprintf(&b, "• Ganancia: `%s`\n", FormatoUSD(p.GananciaActual))
	fmt.Fprintf(&b, "• Margen: `%s%%`\n", p.PorcentajeMargen.StringFixed(2))
	for _, a := range alertas {
		b.WriteString(a)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n📊 *AVANCE FÍSICO:* `%s%%`\n", p.PorcentajeAvance.StringFixed(2))
	fmt.Fprintf(&b, "🕒 %s", time.Now().Format("02/01/2006 15:04"))
	return b.String()
}

// FormatearMensajePartida builds the partida message; a 100% progress is
// reported as finalized regardless of which edit path reached it.
func FormatearMensajePartida(p PartidaNotificacion) string {
	emoji, titulo := "📝", "CAMBIO EN PARTIDA"
	if p.PorcentajeAvance >= 100 {
		emoji, titulo = "✅", "PARTIDA FINALIZADA"
	} else if p.Accion == AccionCreacion {
		emoji, titulo = "➕", "NUEVA PARTIDA"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s*\n", emoji, titulo)
	fmt.Fprintf(&b, "🏗️ *Proyecto:* %s\n", p.NombreProyecto)
	fmt.Fprintf(&b, "🛠️ *Partida:* %s\n", p.NombrePartida)
	fmt.Fprintf(&b, "💵 *Costo:* `%s`\n", FormatoUSD(p.MontoTotal))
	fmt.Fprintf(&b, "📉 *Progreso:* `%d%%`\n", p.PorcentajeAvance)
	fmt.Fprintf(&b, "📅 *Finaliza:* %s", FormatoFecha(p.FechaFinalEstimada))
	return b.String()
}

// FormatoUSD renders a decimal as $1,234.56 (negative values as -$1,234.56).
func FormatoUSD(d decimal.Decimal) string {
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)
	entero, centavos := fixed, "00"
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		entero, centavos = fixed[:i], fixed[i+1:]
	}
	var grupos []string
	for len(entero) > 3 {
		grupos = append([]string{entero[len(entero)-3:]}, grupos...)
		entero = entero[:len(entero)-3]
	}
	grupos = append([]string{entero}, grupos...)
	out := "$" + strings.Join(grupos, ",") + "." + centavos
	if neg {
		return "-" + out
	}
	return out
}

// FormatoFecha renders a wire date (2006-01-02) as dd/mm/yyyy.
func FormatoFecha(fecha *string) string {
	if fecha == nil || *fecha == "" {
		return "Sin fecha"
	}
	t, err := time.Parse(dto.FechaLayout, *fecha)
	if err != nil {
		return *fecha
	}
	return t.Format("02/01/2006")
}
