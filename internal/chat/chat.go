// Package chat answers FAQ messages with canned replies. The input is
// lowercased and tested against an ordered trigger list; the first rule
// with a matching substring wins.
package chat

import "strings"

// Welcome opens every conversation.
const Welcome = "¡Hola! Soy tu asistente virtual de CuraVital. ¿En qué puedo ayudarte hoy? " +
	"Puedo responder preguntas sobre cuidado de heridas, tipos de úlceras, o ayudarte a solicitar un turno."

const defaultReply = "Gracias por tu consulta. Para obtener información más específica sobre tu caso, " +
	"te recomiendo agendar una consulta con nuestros especialistas. " +
	"¿Te ayudo a solicitar un turno o tenés alguna otra pregunta sobre cuidado de heridas?"

type rule struct {
	triggers []string
	reply    string
}

// Rule order matters: the first matching rule wins, so "consulta sobre
// úlcera venosa" gets the scheduling reply. Unaccented variants cover
// users typing without tildes.
var rules = []rule{
	{
		triggers: []string{"hola", "buenos días", "buenas tardes"},
		reply:    "¡Hola! ¿Cómo estás? ¿En qué puedo ayudarte con el cuidado de tus heridas?",
	},
	{
		triggers: []string{"turno", "cita", "consulta"},
		reply: "Para solicitar un turno, podés usar nuestro formulario online o llamar al " +
			"+54 11 2345-6789. ¿Qué tipo de consulta necesitás?",
	},
	{
		triggers: []string{"úlcera venosa", "ulcera venosa"},
		reply: "Las úlceras venosas son heridas que aparecen cuando las venas no funcionan correctamente. " +
			"Es importante mantener la herida limpia, elevar las piernas cuando sea posible, y usar " +
			"vendajes compresivos según lo indique tu profesional. ¿Tenés alguna pregunta específica?",
	},
	{
		triggers: []string{"úlcera diabética", "ulcera diabetica", "diabetes"},
		reply: "Las úlceras diabéticas requieren cuidado especial. Es fundamental controlar los niveles " +
			"de azúcar, revisar los pies diariamente, usar calzado adecuado, y mantener la herida " +
			"limpia y cubierta. ¿Necesitás más información sobre el cuidado diario?",
	},
	{
		triggers: []string{"dolor", "duele"},
		reply: "El dolor en las heridas puede ser normal durante la cicatrización, pero no debe ser severo. " +
			"Si experimentás dolor intenso, cambios en el color de la piel, o signos de infección, es " +
			"importante que consultes inmediatamente. ¿El dolor es constante o solo al tocar la herida?",
	},
	{
		triggers: []string{"infección", "infeccion", "pus", "rojo"},
		reply: "Los signos de infección incluyen: enrojecimiento excesivo, calor, hinchazón, pus, mal olor, " +
			"o líneas rojas que se extienden desde la herida. Si presentás alguno de estos síntomas, " +
			"contactá inmediatamente a un profesional. ¿Qué síntomas estás observando?",
	},
	{
		triggers: []string{"vendaje", "curación", "limpiar"},
		reply: "Para el cuidado de heridas: 1) Lavate las manos, 2) Limpiá suavemente con solución salina, " +
			"3) Aplicá el vendaje según las indicaciones, 4) Cambiá el vendaje según la frecuencia " +
			"recomendada. Siempre seguí las instrucciones de tu profesional de la salud.",
	},
	{
		triggers: []string{"horario", "horarios"},
		reply: "Nuestros horarios son: Lunes a Viernes de 8:00 a 18:00, Sábados de 9:00 a 13:00. " +
			"Los domingos atendemos solo emergencias. ¿Necesitás algo más?",
	},
	{
		triggers: []string{"precio", "costo", "obra social"},
		reply: "Trabajamos con las principales obras sociales y prepagas. Para consultas sobre costos y " +
			"cobertura, te recomiendo llamar al +54 11 2345-6789 y nuestro equipo administrativo te " +
			"podrá brindar información detallada.",
	},
	{
		triggers: []string{"emergencia", "urgente"},
		reply: "🚨 Si tenés una emergencia médica, llamá inmediatamente al +54 11 2345-6789 o dirigite a " +
			"la guardia médica más cercana. No uses el chat para emergencias.",
	},
}

// Reply returns the canned response for a message.
func Reply(message string) string {
	m := strings.ToLower(message)
	for _, r := range rules {
		for _, t := range r.triggers {
			if strings.Contains(m, t) {
				return r.reply
			}
		}
	}
	return defaultReply
}
