// Command webchat serves the browser chat surface. It talks to the core only
// through Chat/Reset plus read-only store projections for the sidebar.
package main

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	receptionistx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/agents/receptionist"
	storex "github.com/tanpawarit/Chative-Booking-Receptionist/agent/store"
	toolx "github.com/tanpawarit/Chative-Booking-Receptionist/agent/tool"
	configx "github.com/tanpawarit/Chative-Booking-Receptionist/pkg/config"
	_ "github.com/tanpawarit/Chative-Booking-Receptionist/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/Chative-Booking-Receptionist/pkg/openrouter"
)

type AppConfig struct {
	Addr               string `envconfig:"ADDR" split_words:"true" default:":8080"`
	RecentAppointments int    `envconfig:"RECENT_APPOINTMENTS" split_words:"true" default:"10"`
}

// sessionManager hands out one Agent per session id. Turns within a session
// are expected to arrive sequentially; sessions are independent.
type sessionManager struct {
	mu       sync.Mutex
	agents   map[string]*receptionistx.Agent
	newAgent func() (*receptionistx.Agent, error)
}

func (m *sessionManager) agent(sessionID string) (*receptionistx.Agent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a, ok := m.agents[sessionID]; ok {
		return a, nil
	}
	a, err := m.newAgent()
	if err != nil {
		return nil, err
	}
	m.agents[sessionID] = a
	return a, nil
}

func (m *sessionManager) reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a, ok := m.agents[sessionID]; ok {
		a.Reset()
	}
}

type chatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type resetRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("WEBCHAT")

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	model, err := openrouterx.NewChatModel(*openRouterCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create chat model")
	}

	storeCfg := configx.MustNew[storex.Config]("STORE")
	st, err := storex.NewFileStore(*storeCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create file store")
	}

	registry, err := toolx.NewRegistry(st)
	if err != nil {
		log.Fatal().Err(err).Msg("create tool registry")
	}
	executor := toolx.NewExecutor(registry)

	sessions := &sessionManager{
		agents: make(map[string]*receptionistx.Agent),
		newAgent: func() (*receptionistx.Agent, error) {
			return receptionistx.New(model, executor)
		},
	}

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.POST("/chat", func(c *gin.Context) {
			var req chatRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			agent, err := sessions.agent(strings.TrimSpace(req.SessionID))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}

			reply, err := agent.Chat(c.Request.Context(), req.Message)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"reply": reply})
		})

		api.POST("/reset", func(c *gin.Context) {
			var req resetRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			sessions.reset(strings.TrimSpace(req.SessionID))
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/business", func(c *gin.Context) {
			info, err := st.BusinessInfo(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, info)
		})

		api.GET("/services", func(c *gin.Context) {
			catalog, err := st.Services(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, catalog)
		})

		api.GET("/appointments", func(c *gin.Context) {
			appts, err := st.Appointments(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if n := appCfg.RecentAppointments; n > 0 && len(appts) > n {
				appts = appts[len(appts)-n:]
			}
			c.JSON(http.StatusOK, gin.H{"appointments": appts})
		})
	}

	log.Info().Str("addr", appCfg.Addr).Msg("webchat listening")
	if err := router.Run(appCfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("webchat server stopped")
	}
}
