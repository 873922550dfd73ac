package catalog

// Default returns the light-vehicle maintenance catalog, before cleaning.
func Default() []Category {
	return []Category{
		{
			Title: "Mantenimiento preventivo (vehículos livianos)",
			QAs: []QA{
				{
					Question: "¿Qué incluye un mantenimiento preventivo básico?",
					Answer:   "Cambio de aceite y filtro, revisión de niveles (refrigerante, frenos, dirección/lavaparabrisas), inspección de frenos, neumáticos y luces, chequeo de batería/bornes, revisión de filtros de aire del motor y de cabina, y escaneo OBD-II si aplica.",
				},
				{
					Question: "¿Cada cuánto cambiar el aceite del motor?",
					Answer:   "Sigue el manual. Rango típico: 5.000–10.000 km o 6–12 meses según aceite y uso. Uso severo (tráfico intenso, trayectos cortos, remolque, polvo o calor extremo) requiere intervalos más cortos.",
				},
				{
					Question: "¿Qué filtros se cambian y con qué frecuencia?",
					Answer:   "Aceite (en cada cambio de aceite), aire del motor (15–30 mil km o anual), aire de cabina (12–20 mil km), combustible (40–60 mil km o según fabricante; algunos lo llevan integrado en el tanque sin mantenimiento programado).",
				},
				{
					Question: "¿Cómo saber si necesito alineación o balanceo?",
					Answer:   "Vibración del volante a velocidad, el vehículo \"se va\" a un lado o desgaste irregular de llantas. Balanceo al rotar llantas o tras impactos; alineación tras golpes, cambios de suspensión o si no mantiene trayectoria recta.",
				},
				{
					Question: "¿Cuándo es \"uso severo\" y qué cambia?",
					Answer:   "Ciclos de arranque en frío frecuentes, trayectos cortos, remolque, polvo/barro, calor extremo, tráfico pesado. En estos casos acorta los intervalos de aceite, filtros y revisiones.",
				},
			},
		},
		{
			Title: "Sistema de frenos",
			QAs: []QA{
				{
					Question: "¿Cuándo cambiar pastillas y discos de freno?",
					Answer:   "Pastillas: cuando el espesor útil es <3 mm, hay chirridos/alarma o el pedal vibra. Discos: si están ovalados, con surcos profundos o por debajo del espesor mínimo indicado en la pieza.",
				},
				{
					Question: "¿Cada cuánto cambiar el líquido de frenos?",
					Answer:   "Regla general: cada 2 años o 40.000 km. El líquido (DOT 3/4/5.1) absorbe humedad, lo que reduce el punto de ebullición y puede causar pedal esponjoso. Cambia y purga según manual.",
				},
				{
					Question: "Señales de alerta en el sistema de frenos",
					Answer:   "Testigo de freno/ABS encendido, pedal bajo o esponjoso, tirón a un lado al frenar, ruidos metálicos, olor a quemado o pérdida de eficacia. Revisa de inmediato.",
				},
				{
					Question: "¿El freno de estacionamiento necesita mantenimiento?",
					Answer:   "Sí. Debe ajustarse y revisarse su cable o módulo (si es eléctrico). Si sube demasiado o no retiene en pendientes, requiere ajuste/servicio.",
				},
			},
		},
		{
			Title: "Neumáticos y suspensión",
			QAs: []QA{
				{
					Question: "¿Cuál es la presión correcta de neumáticos?",
					Answer:   "La indicada por el fabricante (etiqueta en marco de puerta o tapa de combustible). Medir en frío. Si tu auto tiene TPMS, úsalo como referencia y confirma con manómetro.",
				},
				{
					Question: "¿Cada cuánto rotar los neumáticos?",
					Answer:   "Cada 8–10 mil km o 6 meses. Respeta el patrón según sean direccionales o asimétricos, y vuelve a balancear tras la rotación.",
				},
				{
					Question: "¿Cuál es la profundidad mínima de la banda de rodadura?",
					Answer:   "Legalmente suele ser ≥1,6 mm (indicador TWI). Para lluvia intensa se recomienda >3 mm. Desgaste irregular puede indicar problemas de alineación/suspensión.",
				},
				{
					Question: "¿Cuándo revisar amortiguadores y bujes?",
					Answer:   "Si hay rebotes excesivos, balanceo en curvas, \"cabeceo\" al frenar, ruidos o fugas. Referencia: 60–100 mil km según uso y vías.",
				},
			},
		},
		{
			Title: "Refrigeración y correas",
			QAs: []QA{
				{
					Question: "¿Cada cuánto cambiar el refrigerante?",
					Answer:   "Depende del tipo (OAT/HOAT) y manual: 2–5 años comúnmente. Nunca mezcles tipos distintos. Revisa nivel en frío entre \"MIN–MAX\".",
				},
				{
					Question: "Síntomas de sobrecalentamiento y qué hacer",
					Answer:   "Aguja o testigo de temperatura altos, olor dulce, pérdida de potencia. Detente con seguridad, apaga A/C, no abras el tapón en caliente y llama asistencia si no baja la temperatura.",
				},
				{
					Question: "Correa de distribución vs. de accesorios",
					Answer:   "Distribución: reemplazo programado (p. ej. 60–120 mil km o años). Si tu motor usa cadena, se inspecciona. Accesorios: suele cambiarse entre 60–100 mil km o si hay grietas/ruidos.",
				},
			},
		},
		{
			Title: "Batería, encendido y electricidad",
			QAs: []QA{
				{
					Question: "Vida útil típica de una batería",
					Answer:   "3–5 años. Señales de fatiga: arranque lento, luces tenues, testigo de batería. Revisa bornes limpios y bien apretados, y prueba de carga en taller.",
				},
				{
					Question: "¿Cuándo cambiar las bujías?",
					Answer:   "Cobre: 20–30 mil km. Iridio/platino: 60–100 mil km. Síntomas de desgaste: tirones en marcha, consumo elevado, ralentí inestable.",
				},
				{
					Question: "Luces y seguridad",
					Answer:   "Verifica regularmente altas, bajas, stop y direccionales. Cambia bombillas por pares para mantener uniformidad y revisa el enfoque de faros.",
				},
			},
		},
		{
			Title: "Consejos confiables para el usuario",
			QAs: []QA{
				{
					Question: "Checklist rápido antes de un viaje",
					Answer:   "Niveles (aceite, refrigerante, frenos, lavaparabrisas), presión de neumáticos (incluida la de repuesto), herramientas/triángulos, limpiaparabrisas, frenos, fugas visibles y papeles al día.",
				},
				{
					Question: "¿Por qué seguir el manual del fabricante?",
					Answer:   "Allí están especificados intervalos, viscosidades, pares de apriete y fluidos correctos. Cumplirlos alarga vida útil y mantiene garantía.",
				},
				{
					Question: "Combustible y filtro de combustible",
					Answer:   "Usa el octanaje recomendado. Cambia el filtro según plan; en sistemas con filtro en tanque, respeta los intervalos de fabricante y evita circular en reserva de forma habitual.",
				},
			},
		},
	}
}
