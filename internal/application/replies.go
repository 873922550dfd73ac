package application

import (
	"fmt"
	"regexp"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

// WelcomeMessage opens every conversation.
const WelcomeMessage = "¡Hola! 👋  Soy tu asistente inteligente. \n\n¿Cómo puedo ayudarte? "

const helpReply = `Puedo responder con lo que haya en cada pantalla (sin abrirla):
• Perfil: SOAT, Técnico, Pico y Placa
• Agenda/Daily: hoy, mañana, semana, mes, próximo mes o una fecha concreta
• Preventivo/General/Emergencia/Rutas: "últimos 5 registros"
• Además: Preguntas Informativas (vehículos livianos) predefinidas en el código.`

var (
	reGreeting = regexp.MustCompile(`(?i)(^|\s)(hola|buenas|saludos)(\s|$)`)
	reHelp     = regexp.MustCompile(`(?i)ayuda|qué puedes|como me puedes ayudar`)
	reStatus   = regexp.MustCompile(`(?i)resumen|estado|cómo va|como va`)
)

type screenKeyword struct {
	keyword string
	screen  domain.Screen
}

// screenKeywords is scanned in order; the first substring hit wins.
var screenKeywords = []screenKeyword{
	{keyword: "perfil", screen: domain.ScreenProfile},
	{keyword: "daily", screen: domain.ScreenDaily},
	{keyword: "agenda", screen: domain.ScreenAgenda},
	{keyword: "calendario", screen: domain.ScreenAgenda},
	{keyword: "general", screen: domain.ScreenGeneral},
	{keyword: "preventivo", screen: domain.ScreenPreventive},
	{keyword: "preventiva", screen: domain.ScreenPreventive},
	{keyword: "emergencia", screen: domain.ScreenEmergency},
	{keyword: "ruta", screen: domain.ScreenRoute},
	{keyword: "rutas", screen: domain.ScreenRoute},
	{keyword: "profile", screen: domain.ScreenProfile},
	{keyword: "route", screen: domain.ScreenRoute},
	{keyword: "emergency", screen: domain.ScreenEmergency},
	{keyword: "preventive", screen: domain.ScreenPreventive},
}

func greetingReply(summary string) string {
	return "¡Hola! 👋 Tengo Preguntas Frecuentes (Perfil/Agenda/Otras) y Preguntas Informativas (predefinidas en código). " +
		"También puedo listar los últimos 5 registros de Preventivo, General, Emergencia y Rutas. \n\n" +
		summary + "\n\n¿Sobre qué quieres saber más?"
}

func genericReply(text, summary string) string {
	return fmt.Sprintf("Entiendo: \"%s\".\n\n%s\n\nPrueba: \"Agenda hoy\", \"¿Cuándo vence el SOAT?\", \"Últimos 5 registros en emergencia\", o \"Últimos 5 registros en rutas\".", text, summary)
}
