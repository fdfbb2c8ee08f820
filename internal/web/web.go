// Package web отдает браузерные страницы приложения: публичное табло,
// личный кабинет и административную консоль. Страницы — тонкие шаблоны,
// все данные они запрашивают у JSON API.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/streamscore/scoreboard-hub/internal/lib/sl"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler отдает HTML-страницы приложения.
type Handler struct {
	log  *slog.Logger
	tmpl *template.Template
}

// New разбирает встроенные шаблоны и возвращает Handler.
func New(log *slog.Logger) (*Handler, error) {
	const op = "web.New"

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Handler{log: log, tmpl: tmpl}, nil
}

// Home отдает главную страницу.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", nil)
}

// SignIn отдает страницу входа.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	h.render(w, "signin.html", nil)
}

// SignUp отдает страницу регистрации.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	h.render(w, "signup.html", nil)
}

// Dashboard отдает список табло пользователя.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, "dashboard.html", nil)
}

// DashboardCreate отдает форму создания табло.
func (h *Handler) DashboardCreate(w http.ResponseWriter, r *http.Request) {
	h.render(w, "create.html", nil)
}

// DashboardBilling отдает страницу платежей пользователя.
func (h *Handler) DashboardBilling(w http.ResponseWriter, r *http.Request) {
	h.render(w, "billing.html", nil)
}

// Control отдает пульт управления счетом конкретного матча.
func (h *Handler) Control(w http.ResponseWriter, r *http.Request) {
	h.render(w, "control.html", map[string]string{"ID": chi.URLParam(r, "id")})
}

// Admin отдает административную консоль.
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	h.render(w, "admin.html", nil)
}

// Display отдает публичную страницу табло. Страница сама опрашивает API
// раз в две секунды и при неактивном матче показывает заглушку.
func (h *Handler) Display(w http.ResponseWriter, r *http.Request) {
	h.render(w, "display.html", map[string]string{"ID": chi.URLParam(r, "id")})
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("failed to render template", slog.String("template", name), sl.Err(err))
	}
}
