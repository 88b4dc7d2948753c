package service

import (
	"bytes"
	"strings"
	"text/template"
)

// ChatDisclaimer closes every important assistant reply
const ChatDisclaimer = "Esta IA es una herramienta de apoyo. La decisión final es del entrenador."

var trainingSessionPrompt = template.Must(template.New("training").Parse(
	`Como experto metodólogo UEFA C (RFAF/CEDIFA), genera una sesión de entrenamiento completa.
Categoría: {{.Category}} ({{.Age}})
Nivel: {{.Level}}
Nº Jugadores: {{.PlayerCount}}
Objetivo Principal: {{.Objective}}
Duración: {{.Duration}}
Material: {{.Material}}

La sesión debe incluir:
1. Juego de activación/lúdico.
2. Circuito técnico (analítico o global).
3. Posesión con objetivo táctico.
4. Partido condicionado para el objetivo.
5. Oleada (finalización).

Usa terminología técnica profesional de CEDIFA.
Responde únicamente con un objeto JSON con las claves juego, circuitoTecnico, posesion, partidoCondicionado y oleada.`))

var seasonObjectivesPrompt = template.Must(template.New("season").Parse(
	`Como experto coordinador metodológico RFAF/CEDIFA, propón objetivos específicos para la planificación de temporada.

CONTEXTO:
Categoría: {{.Category}}
Nivel del equipo: {{.Level}}
Fase de Temporada: {{.Phase}}
Tipo de Objetivos: {{.Type}}

REQUISITOS:
- Redacta de 3 a 5 puntos clave.
- Usa terminología académica de fútbol base.
- Ajusta la complejidad al nivel {{.Level}}.
- Sé conciso y directo.

Devuelve solo los puntos clave, sin introducciones ni despedidas.`))

var chatSystemPrompt = template.Must(template.New("chat").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(
	`Eres un "Asistente formativo para entrenadores UEFA C", experto en metodología RFAF y CEDIFA.
Tu tono es profesional, alentador y técnico.

CONTEXTO DEL EQUIPO ACTUAL:
{{with .Team -}}
Nombre: {{.Name}}
Categoría: {{.Category}}
Jugadores: {{.PlayerCount}}
Últimos Partidos: {{join .LastOpponents ", "}}
Objetivos de temporada: {{.Season}}
{{- else -}}
No hay equipo activo seleccionado.
{{- end}}

REGLA CRÍTICA: Al final de cada respuesta importante, incluye SIEMPRE el mensaje: "{{.Disclaimer}}"`))

// trainingSessionSchema is the structured response the provider must follow
var trainingSessionSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"juego":               map[string]string{"type": "STRING"},
		"circuitoTecnico":     map[string]string{"type": "STRING"},
		"posesion":            map[string]string{"type": "STRING"},
		"partidoCondicionado": map[string]string{"type": "STRING"},
		"oleada":              map[string]string{"type": "STRING"},
	},
	"required": []string{"juego", "circuitoTecnico", "posesion", "partidoCondicionado", "oleada"},
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
