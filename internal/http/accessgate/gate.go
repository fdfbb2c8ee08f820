// Package accessgate реализует единую точку принятия решений о доступе.
//
// Гейт — тотальная функция от (метод, путь, личность) к решению: пропустить,
// перенаправить, ответить 401 или 403. Правила сопоставляются с путём по
// самому длинному префиксу с учётом границ сегментов: /api/dashboard-extra
// не попадает под правило /api/dashboard. Решение принимается ровно один
// раз на запрос, до выполнения обработчика, и нигде не кешируется.
package accessgate

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/render"

	"github.com/streamscore/scoreboard-hub/internal/http/middlewarectx"
	"github.com/streamscore/scoreboard-hub/internal/http/response"
	"github.com/streamscore/scoreboard-hub/internal/models"
)

// Decision — вид решения гейта.
type Decision int

const (
	// Allow пропускает запрос к обработчику.
	Allow Decision = iota
	// Redirect перенаправляет браузер на другой адрес.
	Redirect
	// Unauthorized отвечает 401 с JSON-телом.
	Unauthorized
	// Forbidden отвечает 403 с JSON-телом.
	Forbidden
)

// Outcome — решение гейта вместе с адресом перенаправления.
type Outcome struct {
	Decision    Decision
	RedirectURL string
}

// RuleKind определяет политику правила.
type RuleKind int

const (
	// UIAdmin — страницы администратора: аноним уходит на вход,
	// не-администратор — на главную.
	UIAdmin RuleKind = iota
	// UIAuth — страницы кабинета: аноним уходит на вход.
	UIAuth
	// APIAdmin — административный API: аноним получает 401,
	// аутентифицированный не-администратор — 403.
	APIAdmin
	// APIAuth — пользовательский API: аноним получает 401.
	APIAuth
)

// Rule — правило доступа для префикса пути.
type Rule struct {
	Prefix string
	Kind   RuleKind
	// PublicGetByID открывает анонимный GET дочернего ресурса /{id}.
	// Нужен публичной ленте табло, которую опрашивает встраиваемая страница.
	PublicGetByID bool
}

// Адреса перенаправлений браузерных правил.
const (
	SignInURL = "/auth/signin"
	HomeURL   = "/"
)

// DefaultRules — таблица правил сервиса. Все остальные пути не охраняются.
func DefaultRules() []Rule {
	return []Rule{
		{Prefix: "/admin", Kind: UIAdmin},
		{Prefix: "/dashboard", Kind: UIAuth},
		{Prefix: "/api/admin", Kind: APIAdmin},
		{Prefix: "/api/dashboard", Kind: APIAuth},
		{Prefix: "/api/scoreboards", Kind: APIAuth, PublicGetByID: true},
	}
}

// Gate принимает решения о доступе по таблице правил.
type Gate struct {
	rules []Rule // отсортированы по убыванию длины префикса
}

// New создает Gate. Правила сортируются так, чтобы первым совпадал
// самый длинный префикс.
func New(rules []Rule) *Gate {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i].Prefix) > len(sorted[j].Prefix)
	})
	return &Gate{rules: sorted}
}

// Decide возвращает решение для запроса. identity == nil означает анонима.
func (g *Gate) Decide(method, path string, identity *models.Identity) Outcome {
	for _, rule := range g.rules {
		rest, ok := matchPrefix(path, rule.Prefix)
		if !ok {
			continue
		}
		return g.apply(rule, method, rest, identity)
	}
	return Outcome{Decision: Allow}
}

func (g *Gate) apply(rule Rule, method, rest string, identity *models.Identity) Outcome {
	switch rule.Kind {
	case UIAdmin:
		if identity == nil {
			return Outcome{Decision: Redirect, RedirectURL: SignInURL}
		}
		if !identity.IsAdmin() {
			return Outcome{Decision: Redirect, RedirectURL: HomeURL}
		}
		return Outcome{Decision: Allow}
	case UIAuth:
		if identity == nil {
			return Outcome{Decision: Redirect, RedirectURL: SignInURL}
		}
		return Outcome{Decision: Allow}
	case APIAdmin:
		if identity == nil {
			return Outcome{Decision: Unauthorized}
		}
		if !identity.IsAdmin() {
			return Outcome{Decision: Forbidden}
		}
		return Outcome{Decision: Allow}
	case APIAuth:
		if rule.PublicGetByID && method == http.MethodGet && isSingleSegment(rest) {
			return Outcome{Decision: Allow}
		}
		if identity == nil {
			return Outcome{Decision: Unauthorized}
		}
		return Outcome{Decision: Allow}
	}
	return Outcome{Decision: Allow}
}

// Middleware применяет решение гейта до выполнения обработчика.
func Middleware(gate *Gate, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identity *models.Identity
			if ident, ok := middlewarectx.IdentityFromContext(r.Context()); ok {
				identity = &ident
			}

			outcome := gate.Decide(r.Method, r.URL.Path, identity)
			switch outcome.Decision {
			case Redirect:
				http.Redirect(w, r, outcome.RedirectURL, http.StatusFound)
			case Unauthorized:
				log.Info("request rejected by access gate",
					slog.String("path", r.URL.Path), slog.Int("status", http.StatusUnauthorized))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Unauthorized())
			case Forbidden:
				log.Info("request rejected by access gate",
					slog.String("path", r.URL.Path), slog.Int("status", http.StatusForbidden))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Forbidden())
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// matchPrefix сопоставляет путь с префиксом по границе сегмента и
// возвращает остаток пути без ведущего слэша.
func matchPrefix(path, prefix string) (string, bool) {
	if path == prefix {
		return "", true
	}
	if strings.HasPrefix(path, prefix+"/") {
		return strings.TrimPrefix(path, prefix+"/"), true
	}
	return "", false
}

// isSingleSegment сообщает, что остаток пути — ровно один непустой сегмент.
func isSingleSegment(rest string) bool {
	return rest != "" && !strings.Contains(strings.TrimSuffix(rest, "/"), "/")
}
