package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/LuisMD0/ProyectoAsist/internal/registro"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/looplab/fsm"
	"github.com/patrickmn/go-cache"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // NOTA: En producción, validar el dominio aquí por seguridad
	},
}

// ChatSession almacena el estado del asistente de registro de cada usuario
type ChatSession struct {
	FSM       *fsm.FSM
	Conn      *websocket.Conn
	Handler   *ChatHandler
	Profesor  string
	Materia   string
	Carrera   string
	Fecha     string
	LastInput string
	mu        sync.Mutex
}

type ChatHandler struct {
	Servicio     *registro.Servicio
	SessionCache *cache.Cache
}

func NewChatHandler(servicio *registro.Servicio) *ChatHandler {
	return &ChatHandler{
		Servicio:     servicio,
		SessionCache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (h *ChatHandler) ShowChat(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", nil)
}

// NewChatSession crea una nueva sesión con su máquina de estados
func NewChatSession(conn *websocket.Conn, handler *ChatHandler) *ChatSession {
	session := &ChatSession{
		Conn:    conn,
		Handler: handler,
	}

	// Definir la máquina de estados del asistente
	session.FSM = fsm.NewFSM(
		"idle", // Estado inicial
		fsm.Events{
			// --- Flujo principal ---
			{Name: "start", Src: []string{"idle"}, Dst: "menu"},
			{Name: "begin_registro", Src: []string{"menu"}, Dst: "awaiting_profesor"},
			{Name: "show_stats", Src: []string{"menu"}, Dst: "showing_stats"},

			// --- Pasos del registro ---
			{Name: "provide_profesor", Src: []string{"awaiting_profesor"}, Dst: "awaiting_materia"},
			{Name: "provide_materia", Src: []string{"awaiting_materia"}, Dst: "awaiting_carrera"},
			{Name: "provide_carrera", Src: []string{"awaiting_carrera"}, Dst: "awaiting_fecha"},
			{Name: "provide_fecha", Src: []string{"awaiting_fecha"}, Dst: "awaiting_asistio"},

			// Al responder sí/no se registra y volvemos al menú
			{Name: "provide_asistio", Src: []string{"awaiting_asistio"}, Dst: "menu"},

			// La tabla de estadísticas vuelve sola al menú
			{Name: "stats_done", Src: []string{"showing_stats"}, Dst: "menu"},

			// --- Reset y Ayuda ---
			{Name: "reset", Src: []string{"awaiting_profesor", "awaiting_materia", "awaiting_carrera", "awaiting_fecha", "awaiting_asistio", "showing_stats"}, Dst: "menu"},
			{Name: "help", Src: []string{"menu", "awaiting_profesor", "awaiting_materia", "awaiting_carrera", "awaiting_fecha", "awaiting_asistio"}, Dst: "menu"},
		},
		fsm.Callbacks{
			// Callbacks de entrada a estados
			"enter_menu":              session.onEnterMenu,
			"enter_awaiting_profesor": session.onEnterAwaitingProfesor,
			"enter_awaiting_materia":  session.onEnterAwaitingMateria,
			"enter_awaiting_carrera":  session.onEnterAwaitingCarrera,
			"enter_awaiting_fecha":    session.onEnterAwaitingFecha,
			"enter_awaiting_asistio":  session.onEnterAwaitingAsistio,
			"enter_showing_stats":     session.onEnterShowingStats,

			// Callbacks de transición
			"after_help": session.onHelp,
		},
	)

	return session
}

// ProcessMessage procesa el mensaje del usuario
func (s *ChatSession) ProcessMessage(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	input = strings.TrimSpace(input)
	s.LastInput = input

	if input == "" {
		return
	}

	currentState := s.FSM.Current()
	log.Printf("State: %s, Input: %s", currentState, input)

	ctx := context.Background()
	lower := strings.ToLower(input)

	// Comandos globales de navegación
	if lower == "menu" || lower == "menú" || lower == "volver" || lower == "inicio" {
		s.FSM.Event(ctx, "reset")
		return
	}

	if lower == "ayuda" || lower == "help" {
		s.FSM.Event(ctx, "help")
		return
	}

	// Lógica específica por estado
	switch currentState {
	case "idle":
		s.FSM.Event(ctx, "start")

	case "menu":
		s.handleMenuInput(ctx, lower)

	case "awaiting_profesor":
		s.handleProfesorInput(ctx, input)

	case "awaiting_materia":
		s.handleMateriaInput(ctx, input)

	case "awaiting_carrera":
		s.handleCarreraInput(ctx, input)

	case "awaiting_fecha":
		s.handleFechaInput(ctx, lower)

	case "awaiting_asistio":
		s.handleAsistioInput(ctx, lower)
	}
}

// ============= Handlers de Input (Lógica de decisión) =============

func (s *ChatSession) handleMenuInput(ctx context.Context, input string) {
	switch {
	case input == "1" || input == "a" || input == "registrar":
		s.FSM.Event(ctx, "begin_registro")
	case input == "2" || input == "b" || input == "estadisticas" || input == "estadísticas":
		s.FSM.Event(ctx, "show_stats")
	default:
		s.sendMessage(botMsg("No entendí esa opción. Escribí <strong>1</strong> para registrar asistencia o <strong>2</strong> para ver estadísticas."))
	}
}

func (s *ChatSession) handleProfesorInput(ctx context.Context, input string) {
	if input == "0" {
		s.Profesor = registro.OtroMaestro
		s.FSM.Event(ctx, "provide_profesor")
		return
	}

	profesor, ok := elegirOpcion(input, s.Handler.Servicio.Roster.Profesores)
	if !ok {
		s.sendMessage(botMsg("⚠️ No encontré ese profesor. Elegí un número de la lista o <strong>0</strong> para \"" + registro.OtroMaestro + "\"."))
		return
	}
	s.Profesor = profesor
	s.FSM.Event(ctx, "provide_profesor")
}

func (s *ChatSession) handleMateriaInput(ctx context.Context, input string) {
	materia, ok := elegirOpcion(input, s.Handler.Servicio.Roster.Materias)
	if !ok {
		s.sendMessage(botMsg("⚠️ No encontré esa materia. Elegí un número de la lista."))
		return
	}
	s.Materia = materia
	s.FSM.Event(ctx, "provide_materia")
}

func (s *ChatSession) handleCarreraInput(ctx context.Context, input string) {
	if input == "0" {
		s.Carrera = "" // sin carrera
		s.FSM.Event(ctx, "provide_carrera")
		return
	}

	carrera, ok := elegirOpcion(input, s.Handler.Servicio.Roster.Carreras)
	if !ok {
		s.sendMessage(botMsg("⚠️ No encontré esa carrera. Elegí un número de la lista o <strong>0</strong> si no aplica."))
		return
	}
	s.Carrera = carrera
	s.FSM.Event(ctx, "provide_carrera")
}

func (s *ChatSession) handleFechaInput(ctx context.Context, input string) {
	if input == "hoy" {
		s.Fecha = time.Now().Format("2006-01-02")
		s.FSM.Event(ctx, "provide_fecha")
		return
	}

	if _, err := time.Parse("2006-01-02", input); err != nil {
		s.sendMessage(botMsg("⚠️ Fecha inválida. Usá el formato <strong>AAAA-MM-DD</strong> o escribí <strong>hoy</strong>."))
		return
	}
	s.Fecha = input
	s.FSM.Event(ctx, "provide_fecha")
}

func (s *ChatSession) handleAsistioInput(ctx context.Context, input string) {
	var asistio bool
	switch input {
	case "si", "sí", "s", "yes":
		asistio = true
	case "no", "n":
		asistio = false
	default:
		s.sendMessage(botMsg("Respondé <strong>sí</strong> o <strong>no</strong>."))
		return
	}

	if err := s.Handler.Servicio.Registrar(s.Profesor, s.Materia, s.Carrera, s.Fecha, asistio); err != nil {
		s.sendMessage(botMsg("❌ " + err.Error()))
	} else {
		s.sendMessage(botMsg("✅ ¡Asistencia registrada exitosamente!"))
	}

	s.Profesor, s.Materia, s.Carrera, s.Fecha = "", "", "", ""
	s.FSM.Event(ctx, "provide_asistio")
}

// ============= Callbacks (Respuestas visuales al entrar a estados) =============

func (s *ChatSession) onEnterMenu(_ context.Context, e *fsm.Event) {
	s.sendMenuOptions()
}

func (s *ChatSession) onEnterAwaitingProfesor(_ context.Context, e *fsm.Event) {
	s.sendMessage(botMsg("¿Qué profesor dio la clase?"))
	s.sendListaOpciones(s.Handler.Servicio.Roster.Profesores, "0 - "+registro.OtroMaestro)
}

func (s *ChatSession) onEnterAwaitingMateria(_ context.Context, e *fsm.Event) {
	s.sendMessage(botMsg("Perfecto, <strong>" + s.Profesor + "</strong>. ¿Qué materia?"))
	s.sendListaOpciones(s.Handler.Servicio.Roster.Materias, "")
}

func (s *ChatSession) onEnterAwaitingCarrera(_ context.Context, e *fsm.Event) {
	s.sendMessage(botMsg("¿Para qué carrera?"))
	s.sendListaOpciones(s.Handler.Servicio.Roster.Carreras, "0 - No Aplica")
}

func (s *ChatSession) onEnterAwaitingFecha(_ context.Context, e *fsm.Event) {
	s.sendMessage(botMsg("¿Qué fecha? Formato <strong>AAAA-MM-DD</strong>, o escribí <strong>hoy</strong>."))
}

func (s *ChatSession) onEnterAwaitingAsistio(_ context.Context, e *fsm.Event) {
	s.sendMessage(botMsg("¿El profesor asistió a la clase del <strong>" + s.Fecha + "</strong>? Escribí <strong>sí</strong> o <strong>no</strong>"))
}

func (s *ChatSession) onEnterShowingStats(ctx context.Context, e *fsm.Event) {
	s.renderEstadisticas()

	// Usamos una goroutine para esperar un poco y luego volver al menú.
	go func() {
		time.Sleep(600 * time.Millisecond) // Pausa para que el usuario lea la tabla

		if err := s.FSM.Event(context.Background(), "stats_done"); err != nil {
			log.Printf("Error volviendo al menú: %v", err)
		}
	}()
}

func (s *ChatSession) onHelp(_ context.Context, e *fsm.Event) {
	html := `<div class="message-container bot"><div class="avatar">🤖</div><div class="message-content">`
	html += `<p><strong>💡 Ayuda rápida:</strong></p>`
	html += `<p style="margin-top: 12px; color: var(--text-secondary); line-height: 1.8;">`
	html += `• <strong>1</strong> para registrar la asistencia de una clase.<br>`
	html += `• <strong>2</strong> para ver las estadísticas por carrera.<br>`
	html += `• <strong>menu</strong> para volver al inicio en cualquier paso.<br>`
	html += `</p></div></div>`
	s.sendMessage(html)
}

// ============= Helpers de Renderizado =============

func (s *ChatSession) renderEstadisticas() {
	stats, err := s.Handler.Servicio.EstadisticasPorCarrera()
	if err != nil {
		log.Println("Error:", err)
		s.sendMessage(botMsg("❌ Ocurrió un error al leer las estadísticas."))
		return
	}
	if len(stats) == 0 {
		s.sendMessage(botMsg("📊 Todavía no hay registros de asistencia."))
		return
	}

	s.sendMessage(botMsg("📊 Estadísticas globales por carrera:"))

	html := `<div class="result-card">`
	html += `<div style="display:grid; grid-template-columns: 2fr 1fr 1fr; gap:8px; font-size:0.85em; color:#C4C7C5; border-top:1px solid #444; padding-top:8px;">`
	html += `<div style="font-weight:bold;">Carrera</div><div style="font-weight:bold;">Total Clases</div><div style="font-weight:bold;">Cumplimiento</div>`

	for _, e := range stats {
		carrera := e.Carrera
		if carrera == "" {
			carrera = "Sin carrera"
		}
		html += `<div>` + carrera + `</div>`
		html += `<div>` + strconv.Itoa(e.TotalClases) + `</div>`
		html += `<div>` + strconv.FormatFloat(e.TasaCumplimiento, 'f', 2, 64) + `%</div>`
	}
	html += `</div></div>`

	s.sendMessage(html)
}

func (s *ChatSession) sendListaOpciones(opciones []string, extra string) {
	html := `<div class="message-container bot"><div class="avatar">🤖</div><div class="message-content"><p style="line-height: 1.8;">`
	if extra != "" {
		html += `<strong>` + extra + `</strong><br>`
	}
	for i, opt := range opciones {
		html += strconv.Itoa(i+1) + ` - ` + opt + `<br>`
	}
	html += `</p></div></div>`
	s.sendMessage(html)
}

func (s *ChatSession) sendMenuOptions() {
	html := `<div class="message-container bot"><div class="avatar">🤖</div>`
	html += `<div class="message-content">`
	html += `<p><strong>¿Qué necesitás hacer?</strong></p>`
	html += `<p style="margin-top: 16px; color: var(--text-secondary); line-height: 1.8;">`
	html += `<strong style="color: var(--text-primary);">1</strong> - Registrar la asistencia de una clase<br>`
	html += `<strong style="color: var(--text-primary);">2</strong> - Ver estadísticas globales por carrera`
	html += `</p>`
	html += `<p style="margin-top: 12px; color: var(--text-tertiary); font-size: 13px;">`
	html += `Escribí el número de la opción para comenzar.`
	html += `</p></div></div>`

	s.sendMessage(html)
}

func (s *ChatSession) sendMessage(html string) {
	s.Conn.WriteMessage(websocket.TextMessage, []byte(html))
}

// ============= WebSocket Handler =============

func (h *ChatHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade:", err)
		return
	}
	defer conn.Close()

	// Crear la sesión y registrarla para poder ver cuántas hay activas
	session := NewChatSession(conn, h)
	sessionKey := conn.RemoteAddr().String()
	h.SessionCache.Set(sessionKey, session, cache.DefaultExpiration)
	defer h.SessionCache.Delete(sessionKey)
	log.Printf("Sesiones de chat activas: %d", h.SessionCache.ItemCount())

	ctx := context.Background()

	// Disparamos el evento de inicio para mostrar el menú
	session.FSM.Event(ctx, "start")

	// Loop de lectura
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Println("Read Error:", err)
			break
		}
		session.ProcessMessage(string(msg))
	}
}

// ============= Helpers Globales =============

func botMsg(text string) string {
	return `<div class="message-container bot"><div class="avatar">🤖</div><div class="message-content"><p>` + text + `</p></div></div>`
}

// elegirOpcion acepta el número de la lista (base 1) o el nombre escrito,
// ignorando mayúsculas y acentos
func elegirOpcion(input string, opciones []string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(opciones) {
			return opciones[n-1], true
		}
		return "", false
	}

	normalizado := normalizar(input)
	for _, opt := range opciones {
		if normalizar(opt) == normalizado {
			return opt, true
		}
	}
	return "", false
}

// Helper for loose matching (case-insensitive + ignore accents)
func normalizar(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	)
	return r.Replace(s)
}
