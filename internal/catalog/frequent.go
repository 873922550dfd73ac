package catalog

// FrequentGroup is a titled set of quick questions the assistant answers from
// screen data rather than from the catalog.
type FrequentGroup struct {
	Title     string
	Questions []string
}

func Frequent() []FrequentGroup {
	return []FrequentGroup{
		{
			Title: "Perfil",
			Questions: []string{
				"¿Cuándo vence el SOAT?",
				"Vencimiento Técnico Mecánica",
				"¿Qué día tengo Pico y Placa?",
			},
		},
		{
			Title: "Agenda y Citas",
			Questions: []string{
				"Agenda hoy",
				"Agenda mañana",
				"Agenda esta semana",
				"Agenda este mes",
				"Agenda próximo mes",
			},
		},
		{Title: "Preventivo", Questions: []string{"Últimos 5 registros en preventivo"}},
		{Title: "General", Questions: []string{"Últimos 5 registros en general"}},
		{Title: "Emergencia", Questions: []string{"Últimos 5 registros en emergencia"}},
		{Title: "Rutas", Questions: []string{"Últimos 5 registros en rutas"}},
	}
}

// FrequentQuestions flattens Frequent in display order.
func FrequentQuestions() []string {
	var out []string
	for _, g := range Frequent() {
		out = append(out, g.Questions...)
	}
	return out
}
