package application

import (
	"fmt"
	"time"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

func answerProfile(st *domain.ProfileState, in domain.Intent, now time.Time) string {
	var profile domain.ProfileState
	if st != nil {
		profile = *st
	}
	var exp domain.DocumentsExpiry
	if profile.DocumentsExpiry != nil {
		exp = *profile.DocumentsExpiry
	}
	loc := now.Location()

	switch in.Kind {
	case domain.IntentSoatDue:
		if exp.Soat == "" {
			return "No tengo la fecha de vencimiento del SOAT."
		}
		return fmt.Sprintf("SOAT vence: %s.", longDate(exp.Soat, loc))
	case domain.IntentTecDue:
		if exp.Tecnico == "" {
			return "No tengo la fecha de vencimiento de la Técnico Mecánica."
		}
		return fmt.Sprintf("Técnico Mecánica vence: %s.", longDate(exp.Tecnico, loc))
	case domain.IntentPicoPlaca:
		return fmt.Sprintf("Pico y Placa: %s.", orNotAvailable(exp.PicoPlacaDay))
	}

	return fmt.Sprintf("Perfil — Documentos: %d. Estado: %s.", len(profile.Documents), orNotAvailable(profile.DocumentsStatus))
}
