package health

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status is the health payload.
type Status struct {
	OK          bool   `json:"ok"`
	Catalog     string `json:"catalog"`
	LLMProvider string `json:"llmProvider"`
	Database    string `json:"database,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB          Pinger
	Catalog     string
	LLMProvider string
	Timeout     time.Duration
}

// NewService constructs a new health service. db may be nil.
func NewService(db Pinger, catalogSource, llmProvider string) *Service {
	return &Service{DB: db, Catalog: catalogSource, LLMProvider: llmProvider, Timeout: 2 * time.Second}
}

// Status reports configured sources and, when a database is attached, whether it answers.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Catalog: s.Catalog, LLMProvider: s.LLMProvider}
	if s.DB == nil {
		return st
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		st.OK = false
		st.Database = "unreachable"
		return st
	}
	st.Database = "ok"
	return st
}
