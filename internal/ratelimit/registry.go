package ratelimit

import (
	"github.com/rubencm33/Practica-PokedexApi/internal/config"
)

// Registry holds one limiter per endpoint category. Each limiter has its own
// lock, so hitting the search limit never serializes pokedex traffic.
type Registry struct {
	Register *Limiter
	Login    *Limiter
	Pokedex  *Limiter
	Search   *Limiter
	Detail   *Limiter
	Card     *Limiter
}

// NewRegistry builds all category limiters from config.
func NewRegistry(cfg config.RateLimitConfig) *Registry {
	return &Registry{
		Register: NewLimiter(cfg.Register.Max, cfg.Register.Window),
		Login:    NewLimiter(cfg.Login.Max, cfg.Login.Window),
		Pokedex:  NewLimiter(cfg.Pokedex.Max, cfg.Pokedex.Window),
		Search:   NewLimiter(cfg.Search.Max, cfg.Search.Window),
		Detail:   NewLimiter(cfg.Detail.Max, cfg.Detail.Window),
		Card:     NewLimiter(cfg.Card.Max, cfg.Card.Window),
	}
}

// Reset clears every limiter, for test isolation.
func (r *Registry) Reset() {
	for _, l := range []*Limiter{r.Register, r.Login, r.Pokedex, r.Search, r.Detail, r.Card} {
		l.Reset()
	}
}
