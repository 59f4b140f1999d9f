package dto

import "time"

// FechaLayout is the wire format for all date fields (fecha_inicio, etc.).
const FechaLayout = "2006-01-02"

// ParseFecha converts an optional wire date into a *time.Time.
// Validation has already guaranteed the format, so a parse failure here means
// a contract bug and is returned as-is.
func ParseFecha(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(FechaLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
